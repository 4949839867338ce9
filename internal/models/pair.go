package models

import (
	"gorm.io/gorm"
)

// ManittoPair 는 마니또 배정을 나타내는 단방향 간선이다 (giver → receiver)
// giver_id 당 활성 배정은 최대 하나이며, 배정이 공개된 이후에는 수정하지 않는다
type ManittoPair struct {
	gorm.Model
	RoomID     uint `gorm:"index;not null" json:"room_id"`
	GiverID    uint `gorm:"uniqueIndex;not null" json:"giver_id"`
	ReceiverID uint `gorm:"index;not null" json:"receiver_id"`
}
