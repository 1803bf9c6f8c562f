package sink

import (
	"context"
	"io"
	"sync"

	"github.com/alecthomas/errors"
	"github.com/katalvlaran/netmst/report"
)

// ErrBinaryFraming is returned by NewWriter for an encoder whose payloads may
// contain newline bytes.
var ErrBinaryFraming = errors.New("sink: newline framing needs an uncompressed JSON encoder")

// Writer writes each encoded envelope followed by a newline to an io.Writer.
type Writer struct {
	mu      sync.Mutex
	w       io.Writer
	encoder report.Encoder
}

var _ Sink = (*Writer)(nil)

// NewWriter returns a Writer sink encoding with encoder.
// It fails with ErrBinaryFraming unless encoder.LineSafe().
func NewWriter(w io.Writer, encoder report.Encoder) (*Writer, error) {
	if !encoder.LineSafe() {
		return nil, errors.Errorf("%w: got %s", ErrBinaryFraming, encoder.ContentType())
	}
	return &Writer{w: w, encoder: encoder}, nil
}

func (s *Writer) Publish(ctx context.Context, env report.Envelope) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}
	data, err := s.encoder.Marshal(env)
	if err != nil {
		return errors.WithStack(err)
	}
	data = append(data, '\n')

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.w.Write(data); err != nil {
		return errors.Errorf("failed to write %s: %w", env.ID, err)
	}
	return nil
}
