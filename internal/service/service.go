package service

import (
	"context"

	"go.uber.org/zap"

	"manitto_web/internal/repository"
)

// Transformer 는 말투 변환 단계의 추상이다
// 실제 구현은 transform.Client 이고, 테스트에서는 가짜 구현을 주입한다
type Transformer interface {
	Transform(ctx context.Context, original string) (string, error)
}

type Services struct {
	User     *UserService
	Message  *MessageService
	Notifier *Notifier
}

func NewServices(repos *repository.Repositories, transformer Transformer, logger *zap.Logger) *Services {
	notifier := NewNotifier(logger)

	userService := NewUserService(repos.User, repos.Room)
	messageService := NewMessageService(repos.Message, repos.Pair, repos.User, transformer, notifier, logger)
	return &Services{
		User:     userService,
		Message:  messageService,
		Notifier: notifier,
	}
}
