package models

import (
	"gorm.io/gorm"
)

// User 는 방에 소속된 참가자를 나타낸다
// user_code 는 방 안에서 참가자를 식별하는 유일한 인증 수단이다
// 비밀번호가 아니라 배포용 코드이므로 해시 없이 그대로 저장한다
type User struct {
	gorm.Model
	RoomID   uint   `gorm:"index;not null" json:"room_id"`
	UserCode string `gorm:"uniqueIndex;size:6;not null" json:"user_code"` // 개인 코드, 6자리
	Nickname string `json:"nickname,omitempty"`                           // 닉네임, 없을 수 있음
	IsActive bool   `gorm:"not null;default:true" json:"is_active"`
}
