package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"manitto_web/internal/models"
	"manitto_web/internal/repository"
)

func TestAuthenticateByCode(t *testing.T) {
	db := setupTestDB(t)
	room := seedRoom(t, db, "ROOM01")
	user := seedUser(t, db, room.ID, "A1B2C3")

	inactiveRoom := &models.Room{RoomCode: "ROOM02", Name: "닫힌 방", IsActive: false}
	require.NoError(t, db.Create(inactiveRoom).Error)
	userInClosedRoom := seedUser(t, db, inactiveRoom.ID, "G7H8I9")

	inactiveUser := &models.User{RoomID: room.ID, UserCode: "J1K2L3", IsActive: false}
	require.NoError(t, db.Create(inactiveUser).Error)

	repos := repository.NewRepositories(db)
	svc := NewUserService(repos.User, repos.Room)

	t.Run("valid code", func(t *testing.T) {
		gotUser, gotRoom, err := svc.AuthenticateByCode(context.Background(), "A1B2C3")
		require.NoError(t, err)
		assert.Equal(t, user.ID, gotUser.ID)
		assert.Equal(t, room.RoomCode, gotRoom.RoomCode)
	})

	t.Run("lowercase code is normalized", func(t *testing.T) {
		gotUser, _, err := svc.AuthenticateByCode(context.Background(), "a1b2c3")
		require.NoError(t, err)
		assert.Equal(t, user.ID, gotUser.ID)
	})

	t.Run("unknown code", func(t *testing.T) {
		_, _, err := svc.AuthenticateByCode(context.Background(), "ZZZZZZ")
		assert.ErrorIs(t, err, ErrInvalidUserCode)
	})

	t.Run("inactive user", func(t *testing.T) {
		_, _, err := svc.AuthenticateByCode(context.Background(), "J1K2L3")
		assert.ErrorIs(t, err, ErrInvalidUserCode)
	})

	t.Run("inactive room", func(t *testing.T) {
		_, _, err := svc.AuthenticateByCode(context.Background(), userInClosedRoom.UserCode)
		assert.ErrorIs(t, err, ErrInvalidUserCode)
	})
}
