package servicebus

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/messaging/azservicebus"
	"vidlink/domain/repository"
	"vidlink/infrastructure/logger"
)

// ParseEventPublisher delivers parse events to an Azure Service Bus queue.
type ParseEventPublisher struct {
	client *azservicebus.Client
	queue  string
}

func NewParseEventPublisher(client *azservicebus.Client, queue string) repository.IEventPublisher {
	return &ParseEventPublisher{client: client, queue: queue}
}

func (p *ParseEventPublisher) Publish(ctx context.Context, payload []byte) error {
	sender, err := p.client.NewSender(p.queue, nil)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while making new sender service bus.")
		return err
	}
	defer func() {
		if err := sender.Close(context.Background()); err != nil {
			logger.GetLogger().WithField("error", err).Error("Error while closing sender.")
		}
	}()

	if err := sender.SendMessage(ctx, &azservicebus.Message{Body: payload}, nil); err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while sending message.")
		return err
	}
	return nil
}
