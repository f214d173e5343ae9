package messaging

import (
	"context"

	"go.uber.org/zap"

	"github.com/feral-file/ff-goblet/internal/domain"
	"github.com/feral-file/ff-goblet/internal/logger"
)

// Publisher defines the interface for publishing events to message queue
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishEvent publishes a committed ledger event to the message broker
	PublishEvent(ctx context.Context, event *domain.LedgerEvent) error
	// Close closes the connection
	Close()
	// CloseChan returns a channel that is closed when the publisher is closed
	CloseChan() <-chan struct{}
}

// PublishAll publishes events in order. The events are already committed, so failures are logged and skipped.
func PublishAll(ctx context.Context, publisher Publisher, events []*domain.LedgerEvent) {
	if publisher == nil {
		return
	}

	for _, event := range events {
		if err := publisher.PublishEvent(ctx, event); err != nil {
			logger.ErrorCtx(ctx, err,
				zap.String("message", "Failed to publish ledger event"),
				zap.String("eventID", event.ID),
				zap.String("subject", event.Subject()),
			)
		}
	}
}

type nopPublisher struct {
	closed chan struct{}
}

// NewNopPublisher creates a publisher that drops every event, used when no broker is configured
func NewNopPublisher() Publisher {
	return &nopPublisher{closed: make(chan struct{})}
}

func (p *nopPublisher) PublishEvent(ctx context.Context, event *domain.LedgerEvent) error {
	logger.DebugCtx(ctx, "Dropping ledger event, no broker configured", zap.String("subject", event.Subject()))
	return nil
}

func (p *nopPublisher) Close() {
	select {
	case <-p.closed:
	default:
		close(p.closed)
	}
}

func (p *nopPublisher) CloseChan() <-chan struct{} {
	return p.closed
}
