package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"manitto_web/internal/service"
	"manitto_web/internal/utils"
)

// AuthMiddleware 는 요청의 세션 토큰을 검증하는 Gin 미들웨어이다
// 브라우저는 httpOnly 쿠키로, API 호출자는 Authorization 헤더로 토큰을 보낸다
// 인증 실패는 401 로 끝나며, 클라이언트는 참여(join) 화면으로 돌아간다
func AuthMiddleware(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := tokenFromRequest(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": service.ErrNotAuthenticated.Error()})
			c.Abort()
			return
		}

		claims, err := utils.ParseToken(secret, token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": service.ErrNotAuthenticated.Error()})
			c.Abort()
			return
		}

		// 인증된 신원을 컨텍스트에 싣는다. 이후 핸들러는 이 값만 신뢰한다
		c.Set("userID", claims.UserID)
		c.Set("userCode", claims.UserCode)
		c.Set("roomID", claims.RoomID)
		c.Set("roomCode", claims.RoomCode)
		c.Next()
	}
}

func tokenFromRequest(c *gin.Context) string {
	if cookie, err := c.Cookie(utils.SessionCookieName); err == nil && cookie != "" {
		return cookie
	}

	authHeader := c.GetHeader("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && parts[0] == "Bearer" {
		return parts[1]
	}
	return ""
}
