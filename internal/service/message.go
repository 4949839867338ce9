package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"manitto_web/internal/models"
	"manitto_web/internal/repository"
)

// 저장소 호출 하나에 허용하는 시간이다. 원작에는 상한이 없어서 응답 없는
// 호출이 제출 전체를 붙잡을 수 있었다
const storageTimeout = 5 * time.Second

// MessageService 는 편지 제출 파이프라인과 편지함 조회를 담당한다
type MessageService struct {
	messageRepo repository.MessageRepository
	pairRepo    repository.ManittoPairRepository
	userRepo    repository.UserRepository
	transformer Transformer
	notifier    *Notifier
	logger      *zap.Logger
}

func NewMessageService(
	messageRepo repository.MessageRepository,
	pairRepo repository.ManittoPairRepository,
	userRepo repository.UserRepository,
	transformer Transformer,
	notifier *Notifier,
	logger *zap.Logger,
) *MessageService {
	return &MessageService{
		messageRepo: messageRepo,
		pairRepo:    pairRepo,
		userRepo:    userRepo,
		transformer: transformer,
		notifier:    notifier,
		logger:      logger,
	}
}

// Submit 은 편지 한 통을 검증 → 대상 조회 → 말투 변환 → 저장 순서로 처리한다
// 각 단계는 이전 단계의 결과에 의존하므로 순차적으로만 진행한다
//
// 성공하면 정확히 한 행이 저장되고, 어느 단계에서든 실패하면 아무것도
// 저장되지 않는다. 변환 실패 시 원문을 대신 저장하는 일은 없다. 저장된
// 모든 편지는 변환 단계(또는 문서화된 길이 초과 폴백)를 거쳤다는 보장을
// 지키기 위해서다
//
// 중복 제출 방지 키는 없다. 같은 사람이 동시에 두 번 제출하면 두 행이
// 생긴다 (알려진 한계)
func (s *MessageService) Submit(ctx context.Context, senderID uint, raw string) (*models.Message, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, ErrEmptyMessage
	}
	if utf8.RuneCountInString(trimmed) > models.MaxMessageRunes {
		return nil, ErrMessageTooLong
	}

	receiver, err := s.findReceiver(ctx, senderID)
	if err != nil {
		return nil, err
	}

	transformed, err := s.transformer.Transform(ctx, trimmed)
	if err != nil {
		s.logger.Warn("말투 변환 실패",
			zap.Uint("sender_id", senderID),
			zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrTransformFailed, err)
	}

	// room_id 는 클라이언트 입력이 아니라 보낸 사람의 소속에서 다시 구한다
	sender, err := s.findSender(ctx, senderID)
	if err != nil {
		return nil, err
	}

	message := &models.Message{
		RoomID:          sender.RoomID,
		SenderID:        senderID,
		ReceiverID:      receiver.ID,
		Content:         transformed,
		OriginalContent: trimmed,
	}

	dbCtx, cancel := context.WithTimeout(ctx, storageTimeout)
	defer cancel()
	if err := s.messageRepo.Create(dbCtx, message); err != nil {
		s.logger.Error("편지 저장 실패",
			zap.Uint("sender_id", senderID),
			zap.Error(err))
		return nil, ErrStorage
	}

	// 새 편지 알림은 베스트 에포트이다. 실패해도 제출 결과에는 영향이 없다
	if s.notifier != nil {
		s.notifier.NotifyNewMessage(receiver.ID, message.CreatedAt)
	}

	return message, nil
}

// Target 은 보낸 사람에게 배정된 마니또 대상을 돌려준다
func (s *MessageService) Target(ctx context.Context, senderID uint) (*models.User, error) {
	return s.findReceiver(ctx, senderID)
}

func (s *MessageService) findReceiver(ctx context.Context, senderID uint) (*models.User, error) {
	dbCtx, cancel := context.WithTimeout(ctx, storageTimeout)
	defer cancel()

	receiver, err := s.pairRepo.FindReceiverByGiver(dbCtx, senderID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTargetMissing
		}
		s.logger.Error("마니또 배정 조회 실패", zap.Uint("sender_id", senderID), zap.Error(err))
		return nil, ErrStorage
	}
	return receiver, nil
}

func (s *MessageService) findSender(ctx context.Context, senderID uint) (*models.User, error) {
	dbCtx, cancel := context.WithTimeout(ctx, storageTimeout)
	defer cancel()

	sender, err := s.userRepo.FindByID(dbCtx, senderID)
	if err != nil {
		s.logger.Error("보낸 사람 조회 실패", zap.Uint("sender_id", senderID), zap.Error(err))
		return nil, ErrStorage
	}
	return sender, nil
}

// InboxEntry 는 편지함에 표시되는 편지 한 통이다
// 익명성을 위해 상대가 누구인지는 담지 않는다
type InboxEntry struct {
	ID        uint      `json:"id"`
	Content   string    `json:"content"`
	TimeLabel string    `json:"time_label"`
	CreatedAt time.Time `json:"created_at"`
}

// Inbox 는 받은 편지와 보낸 편지를 최신순으로 담는다
type Inbox struct {
	Received []InboxEntry `json:"received"`
	Sent     []InboxEntry `json:"sent"`
}

// LoadInbox 는 사용자의 보낸/받은 편지를 조회한다
// 두 조회 중 하나라도 실패하면 부분 결과 대신 양쪽 모두 빈 목록을 돌려준다
// 편지함 조회는 전부 아니면 전무이다
func (s *MessageService) LoadInbox(ctx context.Context, userID uint) Inbox {
	dbCtx, cancel := context.WithTimeout(ctx, storageTimeout)
	defer cancel()

	now := time.Now()

	received, err := s.messageRepo.FindByReceiverID(dbCtx, userID)
	if err != nil {
		s.logger.Error("받은 편지 조회 실패", zap.Uint("user_id", userID), zap.Error(err))
		return Inbox{Received: []InboxEntry{}, Sent: []InboxEntry{}}
	}

	sent, err := s.messageRepo.FindBySenderID(dbCtx, userID)
	if err != nil {
		s.logger.Error("보낸 편지 조회 실패", zap.Uint("user_id", userID), zap.Error(err))
		return Inbox{Received: []InboxEntry{}, Sent: []InboxEntry{}}
	}

	return Inbox{
		Received: toInboxEntries(received, now),
		Sent:     toInboxEntries(sent, now),
	}
}

func toInboxEntries(messages []models.Message, now time.Time) []InboxEntry {
	entries := make([]InboxEntry, 0, len(messages))
	for _, msg := range messages {
		entries = append(entries, InboxEntry{
			ID:        msg.ID,
			Content:   msg.Content,
			TimeLabel: relativeTimeLabel(now, msg.CreatedAt),
			CreatedAt: msg.CreatedAt,
		})
	}
	return entries
}

// relativeTimeLabel 은 작성 시점과의 차이를 사람이 읽는 라벨로 바꾼다
// 분 단위 내림이다: 90초는 "1분 전", 1440분은 "1일 전"이 된다
func relativeTimeLabel(now, createdAt time.Time) string {
	minutes := int(now.Sub(createdAt).Minutes())
	switch {
	case minutes < 1:
		return "방금 전"
	case minutes < 60:
		return fmt.Sprintf("%d분 전", minutes)
	case minutes < 1440:
		return fmt.Sprintf("%d시간 전", minutes/60)
	default:
		return fmt.Sprintf("%d일 전", minutes/1440)
	}
}
