package service

import (
	"context"
	"encoding/json"

	"registration-sheets-be/internal/dto"
	"registration-sheets-be/internal/pkg/logger"
	"registration-sheets-be/internal/pkg/mailer"
	"registration-sheets-be/pkg/events"
	"registration-sheets-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub         *gochannel.GoChannel
	topicName      string
	eventPublisher *nats.Publisher
	emailService   mailer.IEmailService
	reportEmail    string
	logger         logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	eventPublisher *nats.Publisher,
	emailService mailer.IEmailService,
	reportEmail string,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:         pubSub,
		topicName:      topicName,
		eventPublisher: eventPublisher,
		emailService:   emailService,
		reportEmail:    reportEmail,
		logger:         log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var progress dto.RunProgress
	if err := json.Unmarshal(msg.Payload, &progress); err != nil {
		cs.logger.Error("consumer", "failed to unmarshal progress message", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack()
		return
	}

	switch progress.Status {
	case dto.ProgressGenerated:
		cs.logger.Info("consumer", "sheet generated", map[string]interface{}{
			"run_id":              progress.RunId,
			"registration_number": progress.RegistrationNumber,
		})
	case dto.ProgressFailed:
		cs.logger.Warn("consumer", "sheet failed", map[string]interface{}{
			"run_id":              progress.RunId,
			"registration_number": progress.RegistrationNumber,
			"reason":              progress.Reason,
		})
	case dto.ProgressCompleted:
		cs.handleRunCompleted(ctx, progress)
	default:
		cs.logger.Warn("consumer", "unknown progress status", map[string]interface{}{
			"run_id": progress.RunId,
			"status": progress.Status,
		})
	}

	msg.Ack()
}

func (cs *consumerService) handleRunCompleted(ctx context.Context, progress dto.RunProgress) {
	cs.logger.Info("consumer", "generation run completed", map[string]interface{}{
		"run_id":    progress.RunId,
		"parent_id": progress.ParentId,
		"generated": progress.Generated,
		"failed":    progress.Failed,
	})

	if cs.eventPublisher != nil {
		evt := events.SheetRunCompleted{
			RunId:     progress.RunId,
			ParentId:  progress.ParentId,
			Generated: progress.Generated,
			Failed:    progress.Failed,
		}
		if err := cs.eventPublisher.Publish(ctx, evt); err != nil {
			cs.logger.Warn("consumer", "failed to publish run completed event", map[string]interface{}{
				"run_id": progress.RunId,
				"error":  err.Error(),
			})
		}
	}

	if cs.emailService != nil && cs.reportEmail != "" {
		go func() {
			if err := cs.emailService.SendRunReport(cs.reportEmail, progress.OpportunityName, progress.Generated, progress.Failed); err != nil {
				cs.logger.Warn("consumer", "failed to send run report email", map[string]interface{}{
					"run_id": progress.RunId,
					"error":  err.Error(),
				})
			}
		}()
	}
}
