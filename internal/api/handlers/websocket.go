package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"manitto_web/internal/service"
)

// WebSocket 업그레이더
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // 주의: 프로덕션에서는 origin 을 검사해야 한다
	},
}

// WebSocketHandler 는 새 편지 알림용 WebSocket 연결을 처리한다
type WebSocketHandler struct {
	notifier *service.Notifier
}

// NewWebSocketHandler 는 새 WebSocketHandler 인스턴스를 만든다
func NewWebSocketHandler(notifier *service.Notifier) *WebSocketHandler {
	return &WebSocketHandler{notifier: notifier}
}

// HandleWebSocket 은 인증된 참가자의 연결을 알림 레지스트리에 등록한다
// 클라이언트가 보내는 메시지는 없으며, 읽기 루프는 연결 종료 감지용이다
func (h *WebSocketHandler) HandleWebSocket(c *gin.Context) {
	userID := c.GetUint("userID")

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "WebSocket 연결에 실패했습니다"})
		return
	}

	client := &service.NotifierClient{
		Conn:   conn,
		UserID: userID,
	}
	h.notifier.Register(client)
	defer h.notifier.Unregister(client)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
