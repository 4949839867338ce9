package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"manitto_web/internal/models"
	"manitto_web/internal/storage"
)

type UserRepository interface {
	FindByID(ctx context.Context, id uint) (*models.User, error)
	FindByCode(ctx context.Context, userCode string) (*models.User, error)
}

type userRepository struct {
	db *storage.PostgresDB
}

func NewUserRepository(db *storage.PostgresDB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) FindByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// FindByCode 는 개인 코드로 참가자를 조회한다
// 인증에 사용되므로 코드는 호출 전에 정규화(대문자 변환)되어 있어야 한다
func (r *userRepository) FindByCode(ctx context.Context, userCode string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("user_code = ?", userCode).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}
