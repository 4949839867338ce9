package main

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"manitto_web/internal/api"
	"manitto_web/internal/models"
	"manitto_web/internal/repository"
	"manitto_web/internal/service"
	"manitto_web/internal/storage"
	"manitto_web/internal/transform"
	"manitto_web/pkg/config"
)

func main() {
	// 애플리케이션 설정 로드
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// 데이터베이스 연결 초기화
	db, err := storage.NewPostgresDB(cfg.DB.Host, cfg.DB.User, cfg.DB.Password, cfg.DB.Name, cfg.DB.Port)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// 모델 정의에 따라 테이블 구조 마이그레이션
	if err := db.AutoMigrate(&models.Room{}, &models.User{}, &models.ManittoPair{}, &models.Message{}); err != nil {
		log.Fatalf("Failed to auto migrate database: %v", err)
	}

	// 말투 프로필은 설정값으로 고른다. 모르는 이름이면 여기서 기동을 멈춘다
	profile, err := transform.ProfileByName(cfg.Transform.Profile)
	if err != nil {
		log.Fatalf("Failed to load tone profile: %v", err)
	}

	// 변환 클라이언트 초기화
	transformer := transform.NewClient(
		cfg.Transform.Endpoint,
		cfg.Transform.ServiceKey,
		profile,
		time.Duration(cfg.Transform.TimeoutSeconds)*time.Second,
		logger,
	)

	// repositories / services 초기화
	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, transformer, logger)

	// Gin 라우터 설정
	r := gin.Default()
	api.SetupRoutes(r, api.RouteDeps{
		Services:         services,
		Rewriter:         transform.NewOpenAIClient(cfg.Transform.OpenAIKey),
		Profile:          profile,
		SessionSecret:    []byte(cfg.Session.Secret),
		TransformAuthKey: cfg.Transform.ServiceKey,
		Logger:           logger,
	})

	// 서버 시작
	if err := r.Run(cfg.Server.Address); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
