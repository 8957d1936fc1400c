package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"carepal-be/internal/dto"
)

// ClassificationTopic is the in-process channel carrying classification
// telemetry from the chat flow to the consumer service.
const ClassificationTopic = "CLASSIFICATION_RESULT"

type IPublisherService interface {
	PublishClassification(ctx context.Context, telemetry dto.ClassificationTelemetry) error
}

type publisherService struct {
	pubSub *gochannel.GoChannel
}

func NewPublisherService(pubSub *gochannel.GoChannel) IPublisherService {
	return &publisherService{pubSub: pubSub}
}

func (s *publisherService) PublishClassification(ctx context.Context, telemetry dto.ClassificationTelemetry) error {
	payload, err := json.Marshal(telemetry)
	if err != nil {
		return fmt.Errorf("marshal classification telemetry: %w", err)
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.SetContext(ctx)
	return s.pubSub.Publish(ClassificationTopic, msg)
}
