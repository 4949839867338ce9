package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"manitto_web/internal/models"
	"manitto_web/internal/storage"
)

type RoomRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Room, error)
	FindByCode(ctx context.Context, roomCode string) (*models.Room, error)
}

type roomRepository struct {
	db *storage.PostgresDB
}

func NewRoomRepository(db *storage.PostgresDB) RoomRepository {
	return &roomRepository{db: db}
}

func (r *roomRepository) FindByID(ctx context.Context, id uint) (*models.Room, error) {
	var room models.Room
	err := r.db.WithContext(ctx).First(&room, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &room, nil
}

func (r *roomRepository) FindByCode(ctx context.Context, roomCode string) (*models.Room, error) {
	var room models.Room
	err := r.db.WithContext(ctx).Where("room_code = ?", roomCode).First(&room).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &room, nil
}
