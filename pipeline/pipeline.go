// Package pipeline wires an input source, the parser, the MST engine and an
// output sink into the file-arrival handler.
//
// For each arrived object the Handler:
//
//  1. skips objects outside the configured bucket;
//  2. fetches the text from the Source;
//  3. parses it with connection.Parse;
//  4. skips an empty graph;
//  5. relabels node identifiers onto a dense range (connection.Compact);
//  6. computes the spanning forest;
//  7. wraps the result in an Envelope and publishes it to the Sink.
//
// A failure on one object is logged and reported in the joined error, and the
// next object is processed. Nothing is retried.
package pipeline

import (
	"context"
	"log/slog"

	"github.com/alecthomas/errors"
	"github.com/go-playground/validator/v10"
	"github.com/katalvlaran/netmst/connection"
	"github.com/katalvlaran/netmst/prim_kruskal"
	"github.com/katalvlaran/netmst/report"
	"github.com/katalvlaran/netmst/sink"
	"github.com/katalvlaran/netmst/source"
)

// ErrEmptyGraph is returned by Solve when the input declares no connections.
var ErrEmptyGraph = errors.New("pipeline: parsed graph is empty")

// Config is passed to New; nothing is read from globals.
type Config struct {
	// ExpectedBucket is the only source bucket whose objects are processed.
	ExpectedBucket string `validate:"required"`
	// Destination identifies the output (a DSN, or "-" for stdout).
	Destination string `validate:"required"`
}

var validate = validator.New()

// Validate checks the struct tags of c.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			errs := make([]error, 0, len(fieldErrs))
			for _, fe := range fieldErrs {
				errs = append(errs, errors.Errorf("%s failed %q validation", fe.Field(), fe.Tag()))
			}
			return errors.Errorf("invalid pipeline config: %w", errors.Join(errs...))
		}
		return errors.Errorf("invalid pipeline config: %w", err)
	}
	return nil
}

// Summary counts what Handle did with a batch of records.
type Summary struct {
	Received  int // objects handed to Handle
	Skipped   int // objects from an unexpected bucket
	Empty     int // objects whose graph had no connections
	Published int // results delivered to the sink
	Failed    int // objects that errored
}

// Handler processes file-arrival records.
type Handler struct {
	config Config
	source source.Source
	sink   sink.Sink
	logger *slog.Logger
	method string
}

// Option configures a Handler.
type Option func(*Handler)

// WithMethod selects the MST algorithm (prim_kruskal.MethodKruskal by default).
func WithMethod(method string) Option {
	return func(h *Handler) { h.method = method }
}

// New validates config and returns a Handler.
func New(config Config, src source.Source, snk sink.Sink, logger *slog.Logger, options ...Option) (*Handler, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if src == nil || snk == nil || logger == nil {
		return nil, errors.New("pipeline: source, sink and logger are required")
	}
	h := &Handler{
		config: config,
		source: src,
		sink:   snk,
		logger: logger,
		method: prim_kruskal.MethodKruskal,
	}
	for _, option := range options {
		option(h)
	}
	return h, nil
}

// Solve parses text and computes its spanning forest, tagging the result with sourcePath.
// It returns ErrEmptyGraph for an input with no connections.
func (h *Handler) Solve(text, sourcePath string) (report.Result, error) {
	conns, _, err := connection.Parse(text)
	if err != nil {
		return report.Result{}, errors.WithStack(err)
	}
	if len(conns) == 0 {
		return report.Result{}, ErrEmptyGraph
	}

	// The engine indexes nodes densely; identifiers in files may be sparse or huge.
	dense, ids, err := connection.Compact(conns)
	if err != nil {
		return report.Result{}, errors.WithStack(err)
	}
	mst, err := prim_kruskal.Compute(dense, len(ids), prim_kruskal.WithMethod(h.method))
	if err != nil {
		return report.Result{}, errors.WithStack(err)
	}
	return report.NewResult(connection.Expand(mst, ids), sourcePath), nil
}

// Handle processes objects in order and publishes one envelope per solved object.
// The returned error joins every per-object failure.
func (h *Handler) Handle(ctx context.Context, objects []source.Object) (Summary, error) {
	summary := Summary{Received: len(objects)}
	if len(objects) == 0 {
		h.logger.InfoContext(ctx, "No records found in the event")
		return summary, nil
	}

	var errs []error
	for _, obj := range objects {
		if err := ctx.Err(); err != nil {
			errs = append(errs, errors.WithStack(err))
			break
		}
		if obj.Bucket != h.config.ExpectedBucket {
			h.logger.WarnContext(ctx, "Skipping file from unexpected bucket", "bucket", obj.Bucket, "key", obj.Key)
			summary.Skipped++
			continue
		}

		published, err := h.handleObject(ctx, obj)
		switch {
		case errors.Is(err, ErrEmptyGraph):
			h.logger.InfoContext(ctx, "Parsed graph is empty", "object", obj.String())
			summary.Empty++
		case err != nil:
			h.logger.ErrorContext(ctx, "Failed to process file", "object", obj.String(), "error", err)
			summary.Failed++
			errs = append(errs, errors.Errorf("%s: %w", obj, err))
		case published:
			summary.Published++
		}
	}
	return summary, errors.Join(errs...)
}

func (h *Handler) handleObject(ctx context.Context, obj source.Object) (bool, error) {
	logger := h.logger.With("object", obj.String())
	logger.DebugContext(ctx, "Processing file")

	text, err := h.source.Fetch(ctx, obj)
	if err != nil {
		return false, err
	}
	logger.DebugContext(ctx, "File content fetched", "bytes", len(text))

	result, err := h.Solve(text, obj.Path(h.source.Scheme()))
	if err != nil {
		return false, err
	}

	env := report.NewEnvelope(result)
	if err := h.sink.Publish(ctx, env); err != nil {
		return false, errors.Errorf("failed to publish to %s: %w", h.config.Destination, err)
	}
	logger.InfoContext(ctx, "Result published",
		"id", env.ID,
		"total_cost", result.TotalCost,
		"connections", len(result.Connections))
	return true, nil
}
