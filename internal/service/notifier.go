package service

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// NewMessageEvent 는 받는 사람에게 푸시되는 새 편지 알림이다
// 익명성을 지키기 위해 보낸 사람 정보는 담지 않는다
type NewMessageEvent struct {
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
}

// NotifierClient 는 알림을 받는 WebSocket 연결 하나이다
type NotifierClient struct {
	Conn   *websocket.Conn
	UserID uint

	sendMux sync.Mutex // 같은 연결에 대한 동시 쓰기 방지
}

// Notifier 는 사용자별 WebSocket 연결을 관리하고 새 편지 알림을 푸시한다
// 전달은 베스트 에포트이다. 연결이 없거나 쓰기에 실패해도 편지 저장 결과에는
// 영향을 주지 않는다
type Notifier struct {
	clients    map[uint]map[*NotifierClient]bool // userID -> 연결 집합
	clientsMux sync.RWMutex
	logger     *zap.Logger
}

func NewNotifier(logger *zap.Logger) *Notifier {
	return &Notifier{
		clients: make(map[uint]map[*NotifierClient]bool),
		logger:  logger,
	}
}

// Register 는 연결을 등록한다. 같은 사용자가 여러 탭에서 접속할 수 있다
func (n *Notifier) Register(client *NotifierClient) {
	n.clientsMux.Lock()
	defer n.clientsMux.Unlock()

	if n.clients[client.UserID] == nil {
		n.clients[client.UserID] = make(map[*NotifierClient]bool)
	}
	n.clients[client.UserID][client] = true
}

// Unregister 는 연결을 제거하고 닫는다
func (n *Notifier) Unregister(client *NotifierClient) {
	n.clientsMux.Lock()
	defer n.clientsMux.Unlock()

	if conns, ok := n.clients[client.UserID]; ok {
		if conns[client] {
			delete(conns, client)
			client.Conn.Close()
		}
		if len(conns) == 0 {
			delete(n.clients, client.UserID)
		}
	}
}

// 알림 쓰기 하나에 허용하는 시간이다. 읽지 않는 연결이
// 편지 제출 응답을 붙잡지 않게 한다
const notifyWriteTimeout = 2 * time.Second

// NotifyNewMessage 는 받는 사람의 모든 연결에 새 편지 알림을 보낸다
func (n *Notifier) NotifyNewMessage(receiverID uint, createdAt time.Time) {
	event := NewMessageEvent{Type: "new_message", CreatedAt: createdAt}

	n.clientsMux.RLock()
	conns := make([]*NotifierClient, 0, len(n.clients[receiverID]))
	for client := range n.clients[receiverID] {
		conns = append(conns, client)
	}
	n.clientsMux.RUnlock()

	for _, client := range conns {
		client.sendMux.Lock()
		client.Conn.SetWriteDeadline(time.Now().Add(notifyWriteTimeout))
		err := client.Conn.WriteJSON(event)
		client.sendMux.Unlock()
		if err != nil {
			n.logger.Warn("새 편지 알림 전송 실패",
				zap.Uint("receiver_id", receiverID),
				zap.Error(err))
			n.Unregister(client)
		}
	}
}
