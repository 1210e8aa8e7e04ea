package events

import (
	"context"
	"log/slog"

	"github.com/SscSPs/banking_portal/internal/core/ports"
)

// NoopPublisher drops events. It is used when no broker is configured or reachable.
type NoopPublisher struct {
	logger *slog.Logger
}

var _ ports.EventPublisher = (*NoopPublisher)(nil)

// NewNoopPublisher creates a NoopPublisher that logs each skipped event at debug level.
func NewNoopPublisher(logger *slog.Logger) *NoopPublisher {
	return &NoopPublisher{logger: logger}
}

func (p *NoopPublisher) PublishTransaction(ctx context.Context, event ports.TransactionEvent) error {
	p.logger.Debug("Ledger event publish skipped",
		slog.String("transaction_id", event.TransactionID),
		slog.String("routing_key", routingKey(event)))
	return nil
}

func (p *NoopPublisher) Close() error { return nil }

// NewEventPublisher connects to RabbitMQ when amqpURL is set. An empty URL or an
// unreachable broker yields a NoopPublisher so the ledger keeps serving requests.
func NewEventPublisher(amqpURL, exchange string, logger *slog.Logger) ports.EventPublisher {
	if amqpURL == "" {
		logger.Info("RABBITMQ_URL not set; ledger events disabled")
		return NewNoopPublisher(logger)
	}
	p, err := NewRabbitMQPublisher(amqpURL, exchange, logger)
	if err != nil {
		logger.Warn("RabbitMQ unavailable; ledger events disabled", slog.String("error", err.Error()))
		return NewNoopPublisher(logger)
	}
	logger.Info("Ledger events publishing to RabbitMQ", slog.String("exchange", exchange))
	return p
}
