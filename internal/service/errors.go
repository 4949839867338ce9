package service

import (
	"errors"
)

// 제출/조회 과정에서 사용자에게 그대로 보여줄 수 있는 에러들이다
// 내부 원인(HTTP 상태, 서비스 에러 본문 등)은 각 계층 경계에서 이 중 하나로
// 변환되며, 원시 전송 에러가 호출자까지 올라가는 일은 없다
// ErrNotAuthenticated 를 제외하면 전부 사용자가 다시 시도해서 복구할 수 있다
var (
	ErrEmptyMessage     = errors.New("메시지를 입력해주세요")
	ErrMessageTooLong   = errors.New("메시지는 200자까지만 쓸 수 있습니다")
	ErrTargetMissing    = errors.New("마니또 대상을 찾을 수 없습니다")
	ErrTransformFailed  = errors.New("메시지 변환에 실패했습니다")
	ErrStorage          = errors.New("메시지 전송에 실패했습니다")
	ErrInvalidUserCode  = errors.New("잘못된 개인 코드입니다. 다시 확인해주세요")
	ErrNotAuthenticated = errors.New("로그인이 필요합니다")
)
