package models

import (
	"gorm.io/gorm"
)

// Room 은 하나의 마니또 이벤트 인스턴스를 나타낸다
// 방은 운영자가 이벤트 시작 전에 미리 만들어 두며, 이벤트 기간 동안에는
// is_active 플래그 외의 필드를 변경하지 않는다
type Room struct {
	gorm.Model
	RoomCode string `gorm:"uniqueIndex;size:6;not null" json:"room_code"` // 방 코드, 6자리 고유값
	Name     string `gorm:"not null" json:"name"`                         // 방 이름
	IsActive bool   `gorm:"not null;default:true" json:"is_active"`       // 참여 가능 여부
}
