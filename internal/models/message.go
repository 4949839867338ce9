package models

import (
	"gorm.io/gorm"
)

// MaxMessageRunes 는 메시지 길이 제한이다
// 바이트 수가 아니라 유니코드 문자 수 기준으로 센다 (한글 메시지가 대부분이므로)
const MaxMessageRunes = 200

// Message 는 마니또에게 전달된 편지 한 통이다
// 생성 이후에는 절대 수정하지 않는다 (append-only)
// Content 는 말투 변환을 거쳐 실제로 전달되는 본문이고,
// OriginalContent 는 작성자가 입력한 원문이다
// 원문은 감사/복구 용도로만 보관하며 받는 사람에게는 노출하지 않는다
type Message struct {
	gorm.Model
	RoomID          uint   `gorm:"index;not null" json:"room_id"`
	SenderID        uint   `gorm:"index;not null" json:"sender_id"`
	ReceiverID      uint   `gorm:"index;not null" json:"receiver_id"`
	Content         string `gorm:"type:text;not null" json:"content"`
	OriginalContent string `gorm:"type:text;not null" json:"-"`
}
