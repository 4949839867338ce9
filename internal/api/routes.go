package api

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"manitto_web/internal/api/handlers"
	"manitto_web/internal/middleware"
	"manitto_web/internal/service"
	"manitto_web/internal/transform"
)

// RouteDeps 는 라우트 구성에 필요한 의존성 묶음이다
type RouteDeps struct {
	Services         *service.Services
	Rewriter         handlers.Rewriter
	Profile          transform.Profile
	SessionSecret    []byte
	TransformAuthKey string
	Logger           *zap.Logger
}

func SetupRoutes(r *gin.Engine, deps RouteDeps) {
	// handlers 초기화
	authHandler := handlers.NewAuthHandler(deps.Services.User, deps.SessionSecret)
	messageHandler := handlers.NewMessageHandler(deps.Services.Message)
	wsHandler := handlers.NewWebSocketHandler(deps.Services.Notifier)
	transformHandler := handlers.NewTransformHandler(deps.Rewriter, deps.Profile, deps.TransformAuthKey, deps.Logger)

	r.Use(middleware.RequestLogger(deps.Logger))

	// 404 처리
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "찾을 수 없는 경로입니다",
		})
	})

	// API 라우트 그룹
	api := r.Group("/api")

	// 공개 라우트
	{
		api.POST("/join", authHandler.Join)
		api.POST("/logout", authHandler.Logout)

		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"status": "ok",
			})
		})
	}

	// 인증이 필요한 라우트
	authorized := api.Group("/")
	authorized.Use(middleware.AuthMiddleware(deps.SessionSecret))
	{
		authorized.GET("/inbox", messageHandler.Inbox)      // 편지함 조회
		authorized.POST("/messages", messageHandler.Submit) // 편지 제출
		authorized.GET("/target", messageHandler.Target)    // 마니또 대상 조회
		authorized.GET("/ws", wsHandler.HandleWebSocket)    // 새 편지 알림 연결
	}

	// 말투 변환 엔드포인트
	// 다른 origin 의 클라이언트도 호출할 수 있어야 하므로 preflight 를 허용한다
	functions := r.Group("/functions")
	functions.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"POST", "OPTIONS"},
		AllowHeaders:    []string{"Authorization", "Content-Type", "apikey", "x-client-info"},
	}))
	{
		functions.POST("/transform-message", transformHandler.TransformMessage)
		// gin 은 그룹 미들웨어를 매칭된 라우트에서만 실행하므로
		// preflight 가 cors 미들웨어에 닿으려면 OPTIONS 라우트가 있어야 한다
		functions.OPTIONS("/transform-message", func(c *gin.Context) {
			c.Status(http.StatusNoContent)
		})
	}
}
