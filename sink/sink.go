// Package sink contains output sinks for solved results.
//
// A Sink accepts an encoded-on-demand report.Envelope. Implementations:
//
//   - MemoryTopic: a buffered in-process topic with subscribers.
//   - Outbox: a SQL table (SQLite, PostgreSQL or MySQL) polled by a relay.
//   - Writer: newline-delimited messages on an io.Writer.
package sink

import (
	"context"

	"github.com/katalvlaran/netmst/report"
)

// Sink publishes result envelopes.
type Sink interface {
	Publish(ctx context.Context, env report.Envelope) error
}
