package service

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"io"
	"strings"
	texttemplate "text/template"
	"time"

	"github.com/esc4n0rx/Integra/internal/models"
	"github.com/esc4n0rx/Integra/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
	gopkgmail "gopkg.in/gomail.v2"
)

const mailSubjectPrefix = "Novo Pedido Gerado"

const mailHTMLTemplate = `
<div style="font-family: Arial, sans-serif; padding: 20px; max-width: 600px;">
  <h2 style="color: #333;">Novo Pedido Gerado</h2>
  <p>Um novo pedido foi gerado no sistema.</p>
  <table style="width: 100%; border-collapse: collapse; margin: 20px 0;">
    <tr><td style="padding: 8px; font-weight: bold;">Número do Pedido:</td><td style="padding: 8px;">{{.Code}}</td></tr>
    <tr><td style="padding: 8px; font-weight: bold;">Data:</td><td style="padding: 8px;">{{.Date}}</td></tr>
    <tr><td style="padding: 8px; font-weight: bold;">Solicitante:</td><td style="padding: 8px;">{{.Requester}}</td></tr>
    <tr><td style="padding: 8px; font-weight: bold;">Total de Itens:</td><td style="padding: 8px;">{{.ItemCount}}</td></tr>
    <tr><td style="padding: 8px; font-weight: bold;">Observações:</td><td style="padding: 8px;">{{.Notes}}</td></tr>
  </table>
  <p>A planilha de requisição está anexada a este email.</p>
  <p style="color: #777; font-size: 12px;">Este é um email automático, por favor não responda.</p>
</div>`

const mailPlainTemplate = `Olá,

Um novo pedido foi gerado no sistema.

Número do Pedido: {{.Code}}
Data: {{.Date}}
Solicitante: {{.Requester}}
Total de Itens: {{.ItemCount}}

Observações: {{.Notes}}

A planilha de requisição está anexada a este email.

Este é um email automático, por favor não responda.
`

type mailService struct {
	repo             *repository.Repository
	export           ExportService
	dialer           SMTPDialer
	from             string
	defaultRecipient string
	log              *zap.Logger
	now              func() time.Time
}

func NewMailService(repo *repository.Repository, export ExportService, dialer SMTPDialer, from, defaultRecipient string, log *zap.Logger) MailService {
	return &mailService{
		repo:             repo,
		export:           export,
		dialer:           dialer,
		from:             from,
		defaultRecipient: defaultRecipient,
		log:              log,
		now:              time.Now,
	}
}

func (s *mailService) Send(ctx context.Context, orderID uuid.UUID, recipients []string) (*DispatchResult, error) {
	if len(recipients) == 0 {
		if s.defaultRecipient == "" {
			return nil, ErrNoRecipients
		}
		recipients = []string{s.defaultRecipient}
	}

	order, err := s.repo.Orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	attachment, err := s.export.ExportPickList(order)
	if err != nil {
		return nil, err
	}

	filename := pickListFilename(order, s.now())
	messageID := fmt.Sprintf("<%s@integra>", uuid.NewString())

	msg, err := s.buildMessage(order, recipients, filename, attachment, messageID)
	if err != nil {
		return nil, err
	}

	if err := s.dialer.DialAndSend(msg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEmailDispatch, err)
	}

	// Статус меняется только после успешной отправки; неудача апдейта
	// не отменяет уже доставленный email
	if err := s.repo.Orders.UpdateFields(ctx, order.ID, map[string]any{
		"status":     models.OrderStatusInProcessing,
		"updated_at": s.now(),
	}); err != nil {
		s.log.Warn("order sent by email but status update failed",
			zap.String("order_id", order.ID.String()), zap.Error(err))
	}

	return &DispatchResult{MessageID: messageID, Filename: filename}, nil
}

func (s *mailService) buildMessage(order *models.Order, recipients []string, filename string, attachment []byte, messageID string) (*gopkgmail.Message, error) {
	data := map[string]any{
		"Code":      orderCode(order),
		"Date":      formatDate(order.Date),
		"Requester": order.Requester,
		"ItemCount": len(order.Items),
		"Notes":     notesOrDefault(order),
	}

	htmlTmpl, err := template.New("mail").Parse(mailHTMLTemplate)
	if err != nil {
		return nil, err
	}
	var htmlBody bytes.Buffer
	if err := htmlTmpl.Execute(&htmlBody, data); err != nil {
		return nil, err
	}

	plainTmpl, err := texttemplate.New("mail").Parse(mailPlainTemplate)
	if err != nil {
		return nil, err
	}
	var plainBody bytes.Buffer
	if err := plainTmpl.Execute(&plainBody, data); err != nil {
		return nil, err
	}

	m := gopkgmail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", recipients...)
	m.SetHeader("Subject", fmt.Sprintf("%s - %s - %s", mailSubjectPrefix, orderCode(order), formatDate(order.Date)))
	m.SetHeader("Message-ID", messageID)
	m.SetBody("text/plain", plainBody.String())
	m.AddAlternative("text/html", htmlBody.String())
	m.Attach(filename, gopkgmail.SetCopyFunc(func(w io.Writer) error {
		_, err := w.Write(attachment)
		return err
	}))
	return m, nil
}

func pickListFilename(order *models.Order, now time.Time) string {
	code := strings.ReplaceAll(orderCode(order), "/", "-")
	return fmt.Sprintf("Requisicao_%s_%s.xlsx", code, now.Format("2006-01-02"))
}

func notesOrDefault(order *models.Order) string {
	if n := orderNotes(order); n != "" {
		return n
	}
	return "Nenhuma observação"
}
