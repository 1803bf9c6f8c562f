package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/errors"
	"github.com/katalvlaran/netmst/pipeline"
	"github.com/katalvlaran/netmst/report"
	"github.com/katalvlaran/netmst/sink"
	"github.com/katalvlaran/netmst/source"
)

// OutputFlags select how results are encoded.
type OutputFlags struct {
	Format string `help:"Payload codec." enum:"json,msgpack" default:"json" env:"NETMST_FORMAT"`
	Zstd   bool   `help:"Compress payloads with zstd." env:"NETMST_ZSTD"`
}

func (o OutputFlags) Encoder() (report.Encoder, error) {
	codec, err := report.CodecByName(o.Format)
	if err != nil {
		return report.Encoder{}, err
	}
	compression := report.CompressionNone
	if o.Zstd {
		compression = report.CompressionZstd
	}
	return report.NewEncoder(codec, compression), nil
}

// SolveCmd solves local files, one JSON envelope per line on stdout.
type SolveCmd struct {
	Output OutputFlags `embed:""`
	Method string      `help:"MST algorithm." enum:"kruskal,prim" default:"kruskal"`
	Files  []string    `arg:"" help:"Edge-list files." type:"existingfile"`
}

func (c *SolveCmd) Run(ctx context.Context, logger *slog.Logger, stdout io.Writer) error {
	encoder, err := c.Output.Encoder()
	if err != nil {
		return err
	}
	out, err := sink.NewWriter(stdout, encoder)
	if err != nil {
		return errors.Errorf("stdout output is newline framed: %w", err)
	}

	var errs []error
	for _, file := range c.Files {
		abs, err := filepath.Abs(file)
		if err != nil {
			errs = append(errs, errors.WithStack(err))
			continue
		}
		// Each file's directory acts as its bucket.
		dir, name := filepath.Dir(abs), filepath.Base(abs)
		src := source.NewFS("file").WithBucket(dir, os.DirFS(dir))
		handler, err := pipeline.New(pipeline.Config{ExpectedBucket: dir, Destination: "-"}, src, out, logger,
			pipeline.WithMethod(c.Method))
		if err != nil {
			return err
		}
		if _, err := handler.Handle(ctx, []source.Object{{Bucket: dir, Key: name}}); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// ProcessCmd runs the pipeline the way a file-arrival notification would.
type ProcessCmd struct {
	Output         OutputFlags `embed:""`
	Method         string      `help:"MST algorithm." enum:"kruskal,prim" default:"kruskal"`
	Bucket         string      `help:"Name of the bucket served from --root." required:"" env:"NETMST_BUCKET"`
	Root           string      `help:"Directory holding the bucket's objects." type:"existingdir" required:"" env:"NETMST_ROOT"`
	ExpectedBucket string      `help:"Only process objects from this bucket (defaults to --bucket)." env:"NETMST_EXPECTED_BUCKET"`
	Outbox         string      `help:"SQL outbox DSN (sqlite://, postgres://, mysql://); stdout (JSON only) if empty." placeholder:"DSN" env:"NETMST_OUTBOX"`
	Keys           []string    `arg:"" help:"Object keys, as KEY or BUCKET:KEY."`
}

func (c *ProcessCmd) Run(ctx context.Context, logger *slog.Logger, stdout io.Writer) error {
	encoder, err := c.Output.Encoder()
	if err != nil {
		return err
	}

	var (
		out         sink.Sink
		destination = "-"
	)
	if c.Outbox == "" {
		writer, err := sink.NewWriter(stdout, encoder)
		if err != nil {
			return errors.Errorf("stdout output is newline framed, use --outbox for binary payloads: %w", err)
		}
		out = writer
	} else {
		outbox, err := sink.OpenOutbox(ctx, c.Outbox, encoder)
		if err != nil {
			return err
		}
		defer outbox.Close()
		out = outbox
		// The DSN may carry credentials.
		scheme, _, _ := strings.Cut(c.Outbox, "://")
		destination = scheme + " outbox"
	}

	expected := c.ExpectedBucket
	if expected == "" {
		expected = c.Bucket
	}
	src := source.NewFS("file").WithBucket(c.Bucket, os.DirFS(c.Root))
	handler, err := pipeline.New(pipeline.Config{ExpectedBucket: expected, Destination: destination}, src, out, logger,
		pipeline.WithMethod(c.Method))
	if err != nil {
		return err
	}

	summary, err := handler.Handle(ctx, c.objects())
	logger.InfoContext(ctx, "Batch complete",
		"received", summary.Received,
		"published", summary.Published,
		"skipped", summary.Skipped,
		"empty", summary.Empty,
		"failed", summary.Failed)
	return err
}

func (c *ProcessCmd) objects() []source.Object {
	objects := make([]source.Object, 0, len(c.Keys))
	for _, key := range c.Keys {
		if bucket, rest, ok := strings.Cut(key, ":"); ok {
			objects = append(objects, source.Object{Bucket: bucket, Key: rest})
			continue
		}
		objects = append(objects, source.Object{Bucket: c.Bucket, Key: key})
	}
	return objects
}
