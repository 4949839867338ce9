package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"manitto_web/internal/service"
	"manitto_web/internal/utils"
)

// AuthHandler 는 개인 코드 인증과 세션 발급/파기를 처리한다
type AuthHandler struct {
	userService *service.UserService
	secret      []byte
}

// NewAuthHandler 는 새 AuthHandler 인스턴스를 만든다
func NewAuthHandler(userService *service.UserService, secret []byte) *AuthHandler {
	return &AuthHandler{userService: userService, secret: secret}
}

// JoinInput 은 참여 요청의 구조이다
type JoinInput struct {
	Code string `json:"code" binding:"required"`
}

// Join 은 6자리 개인 코드로 참가자를 인증하고 세션을 발급한다
func (h *AuthHandler) Join(c *gin.Context) {
	var input JoinInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "6자리 코드를 입력해주세요"})
		return
	}

	code := strings.ToUpper(strings.TrimSpace(input.Code))
	if len(code) != 6 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "6자리 코드를 입력해주세요"})
		return
	}

	user, room, err := h.userService.AuthenticateByCode(c.Request.Context(), code)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": service.ErrInvalidUserCode.Error()})
		return
	}

	token, err := utils.GenerateToken(h.secret, user.ID, user.UserCode, room.ID, room.RoomCode)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "세션 발급에 실패했습니다"})
		return
	}

	// 브라우저용 httpOnly 쿠키. API 호출자는 응답의 token 을 bearer 로 쓴다
	c.SetCookie(utils.SessionCookieName, token, int(utils.SessionMaxAge.Seconds()), "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{
		"token":     token,
		"user_code": user.UserCode,
		"room_code": room.RoomCode,
		"nickname":  user.Nickname,
	})
}

// Logout 은 세션 쿠키를 지운다
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(utils.SessionCookieName, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "로그아웃 되었습니다"})
}
