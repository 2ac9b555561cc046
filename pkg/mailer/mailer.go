// Package mailer отправляет письма-уведомления через Resend.
// Без API ключа используется заглушка, которая только пишет в лог.
package mailer

import (
	"context"
	"fmt"
	"html"

	"github.com/resend/resend-go/v3"
	"go.uber.org/zap"
)

type Sender interface {
	Send(ctx context.Context, toEmail, subject, text string) error
}

type resendSender struct {
	client    *resend.Client
	fromEmail string
}

func NewResendSender(apiKey, fromEmail string) Sender {
	return &resendSender{
		client:    resend.NewClient(apiKey),
		fromEmail: fromEmail,
	}
}

func (s *resendSender) Send(ctx context.Context, toEmail, subject, text string) error {
	params := &resend.SendEmailRequest{
		From:    s.fromEmail,
		To:      []string{toEmail},
		Subject: subject,
		Text:    text,
		Html:    fmt.Sprintf("<p>%s</p>", html.EscapeString(text)),
	}
	if _, err := s.client.Emails.SendWithContext(ctx, params); err != nil {
		return fmt.Errorf("resend: %w", err)
	}
	return nil
}

type logSender struct {
	logger *zap.Logger
}

func NewLogSender(logger *zap.Logger) Sender {
	return &logSender{logger: logger}
}

func (s *logSender) Send(_ context.Context, toEmail, subject, _ string) error {
	s.logger.Info("[MOCK EMAIL] Письмо не отправлено, RESEND_API_KEY не задан",
		zap.String("to", toEmail), zap.String("subject", subject))
	return nil
}

func New(apiKey, fromEmail string, logger *zap.Logger) Sender {
	if apiKey == "" {
		return NewLogSender(logger)
	}
	return NewResendSender(apiKey, fromEmail)
}
