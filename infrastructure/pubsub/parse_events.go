package pubsub

import (
	"context"

	"cloud.google.com/go/pubsub"
	"vidlink/domain/repository"
	"vidlink/infrastructure/logger"
)

// ParseEventPublisher delivers parse events to a Google Pub/Sub topic.
type ParseEventPublisher struct {
	client *pubsub.Client
	topic  string
}

func NewParseEventPublisher(client *pubsub.Client, topic string) repository.IEventPublisher {
	return &ParseEventPublisher{client: client, topic: topic}
}

func (p *ParseEventPublisher) Publish(ctx context.Context, payload []byte) error {
	topic := p.client.Topic(p.topic)

	// Create the topic if it doesn't exist.
	exists, err := topic.Exists(ctx)
	if err != nil {
		return err
	}
	if !exists {
		logger.GetLogger().WithField("topic", p.topic).Info("Topic doesn't exist - creating it")
		if _, err := p.client.CreateTopic(ctx, p.topic); err != nil {
			return err
		}
	}

	serverID, err := topic.Publish(ctx, &pubsub.Message{Data: payload}).Get(ctx)
	if err != nil {
		return err
	}

	logger.GetLogger().WithField("serverID", serverID).Debug("Parse event published")
	return nil
}
