package service

import (
	"context"
	"encoding/json"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/datatypes"

	"carepal-be/internal/dto"
	"carepal-be/internal/model"
	"carepal-be/internal/pkg/logger"
	"carepal-be/internal/repository/unitofwork"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the classification telemetry topic and persists
// each result as a system_log row, so every pipeline decision is auditable
// after the fact.
type consumerService struct {
	pubSub     *gochannel.GoChannel
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewConsumerService(pubSub *gochannel.GoChannel, uowFactory unitofwork.RepositoryFactory, log logger.ILogger) IConsumerService {
	return &consumerService{
		pubSub:     pubSub,
		uowFactory: uowFactory,
		logger:     log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, ClassificationTopic)
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
	var telemetry dto.ClassificationTelemetry
	if err := json.Unmarshal(msg.Payload, &telemetry); err != nil {
		cs.logger.Error("consumer", "Failed to unmarshal classification telemetry", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // malformed payloads never become valid, drop them
		return
	}

	level := "INFO"
	if len(telemetry.UsedFallback) > 0 {
		level = "WARN"
	}

	row := &model.SystemLog{
		Level:   level,
		Module:  "classify",
		Message: "classification result",
		Details: datatypes.JSON(msg.Payload),
	}

	if err := cs.uowFactory.SystemLogRepository().Create(ctx, row); err != nil {
		cs.logger.Error("consumer", "Failed to persist classification telemetry", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Nack()
		return
	}

	msg.Ack()
}
