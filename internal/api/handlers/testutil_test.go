package handlers

import (
	"context"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"manitto_web/internal/middleware"
	"manitto_web/internal/models"
	"manitto_web/internal/repository"
	"manitto_web/internal/service"
	"manitto_web/internal/storage"
)

// 핸들러 테스트용 환경. 인메모리 DB 위에 실제 서비스와 미들웨어를 얹는다
type testEnv struct {
	db       *storage.PostgresDB
	services *service.Services
	router   *gin.Engine
	secret   []byte
}

type echoTransformer struct{}

func (echoTransformer) Transform(ctx context.Context, original string) (string, error) {
	return original + " 😊", nil
}

func setupEnv(t *testing.T, transformer service.Transformer) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Room{}, &models.User{}, &models.ManittoPair{}, &models.Message{},
	))

	wrapped := &storage.PostgresDB{DB: db}
	repos := repository.NewRepositories(wrapped)
	services := service.NewServices(repos, transformer, zap.NewNop())
	secret := []byte("test-secret")

	r := gin.New()
	authHandler := NewAuthHandler(services.User, secret)
	messageHandler := NewMessageHandler(services.Message)

	api := r.Group("/api")
	api.POST("/join", authHandler.Join)
	api.POST("/logout", authHandler.Logout)

	authorized := api.Group("/")
	authorized.Use(middleware.AuthMiddleware(secret))
	authorized.GET("/inbox", messageHandler.Inbox)
	authorized.POST("/messages", messageHandler.Submit)
	authorized.GET("/target", messageHandler.Target)

	return &testEnv{db: wrapped, services: services, router: r, secret: secret}
}

func (env *testEnv) seedRoom(t *testing.T, code string) *models.Room {
	t.Helper()
	room := &models.Room{RoomCode: code, Name: "테스트 방", IsActive: true}
	require.NoError(t, env.db.Create(room).Error)
	return room
}

func (env *testEnv) seedUser(t *testing.T, roomID uint, code string) *models.User {
	t.Helper()
	user := &models.User{RoomID: roomID, UserCode: code, IsActive: true}
	require.NoError(t, env.db.Create(user).Error)
	return user
}

func (env *testEnv) seedPair(t *testing.T, roomID, giverID, receiverID uint) {
	t.Helper()
	pair := &models.ManittoPair{RoomID: roomID, GiverID: giverID, ReceiverID: receiverID}
	require.NoError(t, env.db.Create(pair).Error)
}
