package handlers

import (
	"context"
	"errors"
	"net/http"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"manitto_web/internal/models"
	"manitto_web/internal/transform"
)

// Rewriter 는 변환 엔드포인트가 쓰는 업스트림 모델 호출의 추상이다
type Rewriter interface {
	Rewrite(ctx context.Context, profile transform.Profile, message string) (string, error)
}

// TransformHandler 는 말투 변환 엔드포인트 자체를 처리한다
// 앱 내부의 변환 클라이언트(또는 외부 호출자)가 이 엔드포인트를 호출한다
type TransformHandler struct {
	rewriter   Rewriter
	profile    transform.Profile
	serviceKey string
	logger     *zap.Logger
}

// NewTransformHandler 는 새 TransformHandler 인스턴스를 만든다
func NewTransformHandler(rewriter Rewriter, profile transform.Profile, serviceKey string, logger *zap.Logger) *TransformHandler {
	return &TransformHandler{
		rewriter:   rewriter,
		profile:    profile,
		serviceKey: serviceKey,
		logger:     logger,
	}
}

// TransformInput 은 변환 요청의 구조이다
type TransformInput struct {
	Message string `json:"message"`
}

// TransformMessage 는 원본 메시지를 활성 프로필의 말투로 다시 쓴다
// 변환 결과가 200자를 넘으면 원본을 그대로 돌려준다
// 업스트림 에러의 상세 내용은 서버 로그에만 남긴다
func (h *TransformHandler) TransformMessage(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "Bearer "+h.serviceKey {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization"})
		return
	}

	var input TransformInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON in request body"})
		return
	}

	if input.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message is required"})
		return
	}
	if utf8.RuneCountInString(input.Message) > models.MaxMessageRunes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message too long"})
		return
	}

	transformed, err := h.rewriter.Rewrite(c.Request.Context(), h.profile, input.Message)
	if err != nil {
		if errors.Is(err, transform.ErrEmptyCompletion) {
			h.logger.Warn("변환 결과 없음", zap.String("profile", h.profile.Name))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "No transformed message received"})
			return
		}
		h.logger.Error("업스트림 변환 실패", zap.String("profile", h.profile.Name), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to transform message"})
		return
	}

	// 변환 결과가 길이 제한을 넘으면 말투 개선을 포기하고 원본을 쓴다
	finalMessage := transformed
	if utf8.RuneCountInString(transformed) > models.MaxMessageRunes {
		finalMessage = input.Message
	}

	c.JSON(http.StatusOK, gin.H{
		"originalMessage":    input.Message,
		"transformedMessage": finalMessage,
	})
}
