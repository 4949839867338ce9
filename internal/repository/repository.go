package repository

import (
	"errors"

	"manitto_web/internal/storage"
)

// ErrNotFound 는 조회 결과가 없을 때 각 repository 가 돌려주는 공통 신호이다
// gorm 의 내부 에러를 상위 계층으로 흘려보내지 않기 위해 여기서 변환한다
var ErrNotFound = errors.New("record not found")

type Repositories struct {
	User    UserRepository
	Room    RoomRepository
	Pair    ManittoPairRepository
	Message MessageRepository
}

func NewRepositories(db *storage.PostgresDB) *Repositories {
	return &Repositories{
		User:    NewUserRepository(db),
		Room:    NewRoomRepository(db),
		Pair:    NewManittoPairRepository(db),
		Message: NewMessageRepository(db),
	}
}
