package service

import (
	"context"

	"github.com/google/uuid"
	gopkgmail "gopkg.in/gomail.v2"
)

// SMTPDialer — то, что умеет gomail.Dialer; выделено для подмены в тестах
type SMTPDialer interface {
	DialAndSend(m ...*gopkgmail.Message) error
}

type DispatchResult struct {
	MessageID string
	Filename  string
}

type MailService interface {
	// Send отправляет лист требования вложением и переводит заказ
	// в статус "Em Processamento" после успешной доставки
	Send(ctx context.Context, orderID uuid.UUID, recipients []string) (*DispatchResult, error)
}
