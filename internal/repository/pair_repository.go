package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"manitto_web/internal/models"
	"manitto_web/internal/storage"
)

type ManittoPairRepository interface {
	FindReceiverByGiver(ctx context.Context, giverID uint) (*models.User, error)
}

type manittoPairRepository struct {
	db *storage.PostgresDB
}

func NewManittoPairRepository(db *storage.PostgresDB) ManittoPairRepository {
	return &manittoPairRepository{db: db}
}

// FindReceiverByGiver 는 giver 에게 배정된 받는 사람을 조회한다
// 배정이 없으면 ErrNotFound 를 돌려주며, 호출자는 이를 "대상 없음"이라는
// 최종 상태로 취급한다 (재시도할 일이 아니다)
func (r *manittoPairRepository) FindReceiverByGiver(ctx context.Context, giverID uint) (*models.User, error) {
	var pair models.ManittoPair
	err := r.db.WithContext(ctx).Where("giver_id = ?", giverID).First(&pair).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var receiver models.User
	err = r.db.WithContext(ctx).First(&receiver, pair.ReceiverID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// 배정 행은 있는데 상대 참가자가 없는 경우도 대상 없음으로 취급한다
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &receiver, nil
}
