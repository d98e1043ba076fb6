package services

import (
	"strings"

	"github.com/alphabatem/common/context"
	"github.com/hmosawi/folio_api/dto"
	"github.com/hmosawi/folio_api/model"
	"github.com/hmosawi/folio_api/shared"
	log "github.com/sirupsen/logrus"
)

type MessageService struct {
	context.DefaultService

	store    messageStore
	notifier contactNotifier
}

// messageStore is the slice of the database layer the message flow needs.
type messageStore interface {
	CreateMessage(message *model.Message) (*model.Message, error)
	GetMessage(id string) (*model.Message, error)
	GetMessages(unreadOnly bool) ([]model.Message, error)
	SetMessageEmailStatus(id, status string) error
	MarkMessageRead(id string) error
	DeleteMessage(id string) error
}

type contactNotifier interface {
	Configured() bool
	SendContactNotification(message *model.Message) error
}

const MESSAGE_SVC = "message_svc"

func (svc MessageService) Id() string {
	return MESSAGE_SVC
}

func (svc *MessageService) Configure(ctx *context.Context) error {
	return svc.DefaultService.Configure(ctx)
}

func (svc *MessageService) Start() error {
	svc.store = svc.Service(POSTGRES_SVC).(*PostgresService)
	svc.notifier = svc.Service(EMAIL_SVC).(*EmailService)
	return nil
}

// Submit stores a visitor message and then attempts the owner notification.
// The stored message is the source of truth: a failed or skipped email never
// rolls the submission back, it only shows in the email status.
func (svc *MessageService) Submit(req dto.SubmitMessageRequest) (*model.Message, error) {
	locale := req.Locale
	if locale == "" {
		locale = shared.LocaleArabic
	}

	message := &model.Message{
		SenderName:  strings.TrimSpace(req.SenderName),
		SenderEmail: strings.TrimSpace(req.SenderEmail),
		ServiceType: strings.TrimSpace(req.ServiceType),
		Budget:      strings.TrimSpace(req.Budget),
		Body:        strings.TrimSpace(req.Body),
		EmailStatus: shared.EmailStatusPending,
		Locale:      locale,
	}

	if _, err := svc.store.CreateMessage(message); err != nil {
		return nil, err
	}

	if svc.notifier.Configured() {
		status := shared.EmailStatusSent
		if err := svc.notifier.SendContactNotification(message); err != nil {
			log.WithError(err).WithField("message_id", message.ID).Error("Failed to send contact notification")
			status = shared.EmailStatusFailed
		}

		if err := svc.store.SetMessageEmailStatus(message.ID, status); err != nil {
			log.WithError(err).WithField("message_id", message.ID).Error("Failed to record email status")
		} else {
			message.EmailStatus = status
		}
	}

	return message, nil
}

func (svc *MessageService) List(unreadOnly bool) ([]model.Message, error) {
	return svc.store.GetMessages(unreadOnly)
}

func (svc *MessageService) Get(id string) (*model.Message, error) {
	return svc.store.GetMessage(id)
}

func (svc *MessageService) MarkRead(id string) error {
	return svc.store.MarkMessageRead(id)
}

func (svc *MessageService) Delete(id string) error {
	return svc.store.DeleteMessage(id)
}
