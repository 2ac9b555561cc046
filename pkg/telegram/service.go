// Файл: pkg/telegram/service.go
package telegram

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type ServiceInterface interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
}

type Service struct {
	api *tgbotapi.BotAPI
}

func NewService(botToken string) (*Service, error) {
	api, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, fmt.Errorf("не удалось инициализировать Telegram бота: %w", err)
	}
	return &Service{api: api}, nil
}

func (s *Service) SendMessage(ctx context.Context, chatID int64, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := s.api.Send(msg); err != nil {
		return fmt.Errorf("telegram send: %w", err)
	}
	return nil
}

// LogService - заглушка, когда TELEGRAM_BOT_TOKEN не задан.
type LogService struct {
	logger *zap.Logger
}

func NewLogService(logger *zap.Logger) *LogService {
	return &LogService{logger: logger}
}

func (s *LogService) SendMessage(_ context.Context, chatID int64, text string) error {
	s.logger.Info("[MOCK PUSH] Сообщение в Telegram не отправлено", zap.Int64("chatID", chatID), zap.Int("length", len(text)))
	return nil
}

// New возвращает рабочий сервис или заглушку. Ошибка инициализации бота не фатальна.
func New(botToken string, logger *zap.Logger) ServiceInterface {
	if botToken == "" {
		return NewLogService(logger)
	}
	svc, err := NewService(botToken)
	if err != nil {
		logger.Error("Telegram недоступен, используется заглушка", zap.Error(err))
		return NewLogService(logger)
	}
	return svc
}
