package sink

import (
	"chat-feed/domain"
	"chat-feed/errors"
	"context"
	"log/slog"
	"time"
)

// GrpcSink buffers live deliveries for one connected stream. The broker's
// fan-out pushes into the channel and the stream's writer goroutine drains it
// onto the wire, so a slow client only ever blocks its own deliveries.
type GrpcSink struct {
	messages chan domain.Message
	log      *slog.Logger
	timeout  time.Duration
}

func NewGrpcSink(log *slog.Logger, bufferSize int, timeout time.Duration) *GrpcSink {
	return &GrpcSink{
		messages: make(chan domain.Message, bufferSize),
		log:      log,
		timeout:  timeout,
	}
}

// Deliver queues one message for the stream. When the buffer stays full for
// the whole timeout the delivery fails; the caller degrades this follower to
// log-only and the message survives in the inbox log.
func (s *GrpcSink) Deliver(ctx context.Context, m domain.Message) error {
	select {
	case s.messages <- m:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(s.timeout):
		s.log.Warn("sink buffer full, dropping live delivery", "sender", m.Sender)
		return errors.ErrDeliveryTimeout
	}
}

// Messages is drained by the gRPC handler that owns this sink.
func (s *GrpcSink) Messages() <-chan domain.Message {
	return s.messages
}
