// Package notify publishes RSVP events to a message broker.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/streadway/amqp"

	"eventory/internal/domain"
)

const (
	ProviderAMQP = "amqp"
	ProviderNoop = "noop"

	// RsvpSubmittedType is set as the AMQP message type.
	RsvpSubmittedType = "rsvp.submitted"
)

type Config struct {
	Provider string
	URL      string
	Queue    string
}

// NewPublisher returns an AMQP publisher for provider "amqp" and a no-op one otherwise.
func NewPublisher(config Config, logger *slog.Logger) (domain.NotificationPublisher, error) {
	switch config.Provider {
	case ProviderAMQP:
		p, err := dialAMQP(config, logger)
		if err != nil {
			return nil, err
		}
		return p, nil
	case ProviderNoop, "":
		return &noopPublisher{logger: logger}, nil
	default:
		logger.Warn("unknown notify provider, using noop", "provider", config.Provider)
		return &noopPublisher{logger: logger}, nil
	}
}

// amqpChannel is the part of *amqp.Channel the publisher uses.
type amqpChannel interface {
	Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

type amqpPublisher struct {
	mu      sync.Mutex
	conn    *amqp.Connection
	channel amqpChannel
	queue   string
	logger  *slog.Logger
}

func dialAMQP(config Config, logger *slog.Logger) (*amqpPublisher, error) {
	if config.URL == "" {
		return nil, fmt.Errorf("amqp publisher: url is required")
	}
	conn, err := amqp.Dial(config.URL)
	if err != nil {
		return nil, fmt.Errorf("dial amqp: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open amqp channel: %w", err)
	}
	q, err := ch.QueueDeclare(
		config.Queue,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("declare queue %q: %w", config.Queue, err)
	}
	logger.Info("connected to amqp broker", "queue", q.Name)
	return &amqpPublisher{conn: conn, channel: ch, queue: q.Name, logger: logger}, nil
}

func (p *amqpPublisher) PublishRsvpSubmitted(ctx context.Context, msg *domain.RsvpSubmitted) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	pub, err := rsvpSubmittedPublishing(msg)
	if err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.channel.Publish("", p.queue, false, false, pub); err != nil {
		return fmt.Errorf("publish %s: %w", RsvpSubmittedType, err)
	}
	p.logger.DebugContext(ctx, "notification published", "type", RsvpSubmittedType, "response_id", msg.ResponseID)
	return nil
}

func (p *amqpPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.channel.Close(); err != nil {
		return err
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}

func rsvpSubmittedPublishing(msg *domain.RsvpSubmitted) (amqp.Publishing, error) {
	body, err := json.Marshal(msg)
	if err != nil {
		return amqp.Publishing{}, fmt.Errorf("encode %s: %w", RsvpSubmittedType, err)
	}
	return amqp.Publishing{
		ContentType:  "application/json",
		Type:         RsvpSubmittedType,
		MessageId:    msg.ResponseID,
		Timestamp:    msg.SubmittedAt,
		DeliveryMode: amqp.Persistent,
		Body:         body,
	}, nil
}

type noopPublisher struct {
	logger *slog.Logger
}

func (n *noopPublisher) PublishRsvpSubmitted(ctx context.Context, msg *domain.RsvpSubmitted) error {
	n.logger.DebugContext(ctx, "notification would be published (noop)", "type", RsvpSubmittedType, "response_id", msg.ResponseID)
	return nil
}

func (n *noopPublisher) Close() error { return nil }
