package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"manitto_web/internal/service"
)

// MessageHandler 는 편지 제출, 편지함 조회, 마니또 대상 조회를 처리한다
type MessageHandler struct {
	messageService *service.MessageService
}

// NewMessageHandler 는 새 MessageHandler 인스턴스를 만든다
func NewMessageHandler(messageService *service.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

// SubmitInput 은 편지 제출 요청의 구조이다
type SubmitInput struct {
	Message string `json:"message"`
}

// Submit 은 편지 한 통을 제출한다
// 본문 검증 → 대상 조회 → 말투 변환 → 저장을 거치며, 각 실패는 사용자에게
// 보여줄 수 있는 짧은 메시지로 변환되어 돌아간다
func (h *MessageHandler) Submit(c *gin.Context) {
	var input SubmitInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": service.ErrEmptyMessage.Error()})
		return
	}

	userID := c.GetUint("userID")

	message, err := h.messageService.Submit(c.Request.Context(), userID, input.Message)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyMessage), errors.Is(err, service.ErrMessageTooLong):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrTargetMissing):
			c.JSON(http.StatusBadRequest, gin.H{"error": service.ErrTargetMissing.Error()})
		case errors.Is(err, service.ErrTransformFailed):
			c.JSON(http.StatusBadGateway, gin.H{"error": service.ErrTransformFailed.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": service.ErrStorage.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":         message.ID,
		"content":    message.Content,
		"created_at": message.CreatedAt,
	})
}

// Inbox 는 보낸/받은 편지를 최신순으로 돌려준다
func (h *MessageHandler) Inbox(c *gin.Context) {
	userID := c.GetUint("userID")
	inbox := h.messageService.LoadInbox(c.Request.Context(), userID)
	c.JSON(http.StatusOK, inbox)
}

// Target 은 로그인한 참가자에게 배정된 마니또 대상을 돌려준다
func (h *MessageHandler) Target(c *gin.Context) {
	userID := c.GetUint("userID")

	receiver, err := h.messageService.Target(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrTargetMissing) {
			c.JSON(http.StatusNotFound, gin.H{"error": service.ErrTargetMissing.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": service.ErrStorage.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user_code": receiver.UserCode,
		"nickname":  receiver.Nickname,
	})
}
