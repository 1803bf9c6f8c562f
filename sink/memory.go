package sink

import (
	"context"
	"log/slog"
	"sync"

	"github.com/alecthomas/errors"
	"github.com/katalvlaran/netmst/report"
)

var (
	// ErrTopicFull is returned when a MemoryTopic's buffer has no room.
	ErrTopicFull = errors.New("sink: topic buffer full")
	// ErrTopicClosed is returned when publishing to a closed MemoryTopic.
	ErrTopicClosed = errors.New("sink: topic closed")
)

// MemoryTopic is an in-memory, buffered topic.
// Publish never blocks; it fails with ErrTopicFull instead.
type MemoryTopic struct {
	logger   *slog.Logger
	mu       sync.RWMutex
	closed   bool
	messages chan report.Envelope
}

var _ Sink = (*MemoryTopic)(nil)

// NewMemoryTopic creates a topic buffering up to capacity messages (128 if capacity <= 0).
func NewMemoryTopic(logger *slog.Logger, capacity int) *MemoryTopic {
	if capacity <= 0 {
		capacity = 128
	}
	return &MemoryTopic{
		logger:   logger,
		messages: make(chan report.Envelope, capacity),
	}
}

func (m *MemoryTopic) Publish(ctx context.Context, env report.Envelope) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return ErrTopicClosed
	}
	select {
	case m.messages <- env:
		return nil
	default:
		return errors.Errorf("failed to publish %s: %w", env.ID, ErrTopicFull)
	}
}

// Subscribe delivers messages to handler from a background goroutine until
// ctx is cancelled or the topic is closed. Handler errors are logged.
func (m *MemoryTopic) Subscribe(ctx context.Context, handler func(context.Context, report.Envelope) error) error {
	go func() {
		for {
			select {
			case msg, ok := <-m.messages:
				if !ok {
					return
				}
				if err := handler(ctx, msg); err != nil {
					m.logger.Error("Failed to handle message", "id", msg.ID, "error", err)
				}
			case <-ctx.Done():
				return
			}
		}
	}()
	return nil
}

// Len returns the number of buffered, undelivered messages.
func (m *MemoryTopic) Len() int { return len(m.messages) }

// Close closes the topic. Buffered messages are still delivered to subscribers.
func (m *MemoryTopic) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.closed {
		m.closed = true
		close(m.messages)
	}
	return nil
}
