package service

import (
	"context"
	"errors"
	"strings"

	"manitto_web/internal/models"
	"manitto_web/internal/repository"
)

type UserService struct {
	userRepo repository.UserRepository
	roomRepo repository.RoomRepository
}

func NewUserService(userRepo repository.UserRepository, roomRepo repository.RoomRepository) *UserService {
	return &UserService{userRepo: userRepo, roomRepo: roomRepo}
}

// AuthenticateByCode 는 개인 코드로 참가자를 인증한다
// 코드는 대소문자를 구분하지 않으며, 참가자와 소속 방이 모두 활성 상태여야 한다
// 어떤 이유로든 실패하면 ErrInvalidUserCode 하나로 수렴시킨다
// (코드가 틀렸는지, 비활성인지는 구분해서 알려주지 않는다)
func (s *UserService) AuthenticateByCode(ctx context.Context, code string) (*models.User, *models.Room, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))

	user, err := s.userRepo.FindByCode(ctx, normalized)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, ErrInvalidUserCode
		}
		return nil, nil, err
	}
	if !user.IsActive {
		return nil, nil, ErrInvalidUserCode
	}

	room, err := s.roomRepo.FindByID(ctx, user.RoomID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, ErrInvalidUserCode
		}
		return nil, nil, err
	}
	if !room.IsActive {
		return nil, nil, ErrInvalidUserCode
	}

	return user, room, nil
}
