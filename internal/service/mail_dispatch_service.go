// FILE: internal/service/mail_dispatch_service.go
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"contract-renewal-be/internal/dto"
	"contract-renewal-be/internal/pkg/logger"
	"contract-renewal-be/internal/pkg/mailer"
	"contract-renewal-be/internal/repository/unitofwork"
	"contract-renewal-be/pkg/pacific"
)

// Pause between consecutive sends so the SMTP relay's rate limits are
// never hit.
const interSendDelay = 400 * time.Millisecond

// IMailDispatchService drains the reminder topic. The bus blocks each
// publish until the dispatcher acks, so a scan that queued reminders
// observes them fully handled by the time its publishes return.
type IMailDispatchService interface {
	Consume(ctx context.Context) error
}

type mailDispatchService struct {
	pubSub       *gochannel.GoChannel
	topicName    string
	uowFactory   unitofwork.RepositoryFactory
	emailService mailer.IEmailService
	clock        pacific.Clock
	clientURL    string
	logger       logger.ILogger
}

func NewMailDispatchService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	emailService mailer.IEmailService,
	clock pacific.Clock,
	clientURL string,
	logger logger.ILogger,
) IMailDispatchService {
	return &mailDispatchService{
		pubSub:       pubSub,
		topicName:    topicName,
		uowFactory:   uowFactory,
		emailService: emailService,
		clock:        clock,
		clientURL:    clientURL,
		logger:       logger,
	}
}

func (s *mailDispatchService) Consume(ctx context.Context) error {
	messages, err := s.pubSub.Subscribe(ctx, s.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			s.processMessage(ctx, msg)
			time.Sleep(interSendDelay)
		}
	}()

	return nil
}

func (s *mailDispatchService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.ReminderMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		s.logger.Error("MailDispatchService", "Failed to unmarshal reminder message", map[string]interface{}{
			"error": err.Error(),
		})
		// Malformed payloads are unrecoverable; ack to stop the retry loop.
		msg.Ack()
		return
	}

	eventURL := fmt.Sprintf("%s/events/%s", s.clientURL, payload.EventId)
	err := s.emailService.SendEventReminder(
		payload.To,
		payload.EventTitle,
		payload.VendorName,
		payload.EventDate,
		payload.DaysLeft,
		eventURL,
	)
	if err != nil {
		s.logger.Error("MailDispatchService", "Reminder send failed", map[string]interface{}{
			"event_id": payload.EventId.String(),
			"to":       payload.To,
			"error":    err.Error(),
		})
		// Ack without stamping: the event stays eligible and the next
		// scan queues it again. Nacking would redeliver in a tight
		// loop against a relay that is already refusing us.
		msg.Ack()
		return
	}

	// Stamp only after a successful send; a failed send must stay
	// eligible for the next scan.
	today := s.clock.Today()
	uow := s.uowFactory.NewUnitOfWork(ctx)
	err = uow.RenewalEventRepository().UpdateFields(ctx, payload.EventId, map[string]interface{}{
		"last_reminder_sent": today,
	})
	if err != nil {
		s.logger.Warn("MailDispatchService", "Failed to stamp last reminder", map[string]interface{}{
			"event_id": payload.EventId.String(),
			"error":    err.Error(),
		})
	}

	s.logger.Info("MailDispatchService", "Reminder sent", map[string]interface{}{
		"event_id":  payload.EventId.String(),
		"days_left": payload.DaysLeft,
	})
	msg.Ack()
}
