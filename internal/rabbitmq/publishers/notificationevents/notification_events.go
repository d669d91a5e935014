// Package notificationevents publishes fired notifications to a RabbitMQ
// exchange so external delivery workers can pick them up.
package notificationevents

import (
	"apptrack/internal/core/domain/common"
	"apptrack/internal/core/domain/logging"
	"apptrack/internal/core/domain/notification"
	"apptrack/internal/rabbitmq"
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

type event struct {
	ID        string `json:"id"`
	OwnerID   string `json:"owner_id"`
	Title     string `json:"title"`
	Type      string `json:"type"`
	Message   string `json:"message"`
	CreatedAt string `json:"created_at"`
}

type Publisher struct {
	log        logging.Logger
	channel    *rabbitmq.Channel
	exchange   string
	routingKey string
}

func New(
	log logging.Logger,
	channel *rabbitmq.Channel,
	exchange string,
	routingKey string,
) (*Publisher, error) {
	if log == nil {
		return nil, fmt.Errorf("log argument must not be nil")
	}
	if channel == nil {
		return nil, fmt.Errorf("channel argument must not be nil")
	}
	err := channel.ExchangeDeclare(
		exchange,
		"fanout",
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		return nil, err
	}
	return &Publisher{
		log:        log,
		channel:    channel,
		exchange:   exchange,
		routingKey: routingKey,
	}, nil
}

func (p *Publisher) Publish(ctx context.Context, n notification.Notification) error {
	body, err := json.Marshal(event{
		ID:        string(n.ID),
		OwnerID:   string(n.OwnerID),
		Title:     n.Title,
		Type:      n.Type.String(),
		Message:   n.Message,
		CreatedAt: common.FormatTimestamp(n.CreatedAt),
	})
	if err != nil {
		return err
	}
	err = p.channel.PublishWithContext(
		ctx,
		p.exchange,
		p.routingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now().UTC(),
			Body:         body,
		},
	)
	if err != nil {
		return err
	}
	p.log.Info(
		ctx,
		"Notification event has been successfully published.",
		logging.Entry("notificationID", n.ID),
		logging.Entry("exchange", p.exchange),
	)
	return nil
}
