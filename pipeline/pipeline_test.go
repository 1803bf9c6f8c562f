package pipeline_test

import (
	"context"
	"errors"
	"io/fs"
	"testing"

	"github.com/katalvlaran/netmst/connection"
	"github.com/katalvlaran/netmst/logging"
	"github.com/katalvlaran/netmst/pipeline"
	"github.com/katalvlaran/netmst/prim_kruskal"
	"github.com/katalvlaran/netmst/report"
	"github.com/katalvlaran/netmst/sink"
	"github.com/katalvlaran/netmst/source"
	"github.com/psanford/memfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const bucket = "network-optimization-bucket"

// collector is a Sink that keeps every envelope.
type collector struct {
	envelopes []report.Envelope
	err       error
}

func (c *collector) Publish(_ context.Context, env report.Envelope) error {
	if c.err != nil {
		return c.err
	}
	c.envelopes = append(c.envelopes, env)
	return nil
}

func newSource(t *testing.T, files map[string]string) *source.FS {
	t.Helper()
	mfs := memfs.New()
	for name, content := range files {
		require.NoError(t, mfs.WriteFile(name, []byte(content), 0o600))
	}
	return source.NewFS("s3").WithBucket(bucket, mfs)
}

func newHandler(t *testing.T, src source.Source, snk sink.Sink, options ...pipeline.Option) *pipeline.Handler {
	t.Helper()
	h, err := pipeline.New(pipeline.Config{ExpectedBucket: bucket, Destination: "memory"}, src, snk, logging.NewForTesting(), options...)
	require.NoError(t, err)
	return h
}

func TestConfig_Validate(t *testing.T) {
	assert.NoError(t, pipeline.Config{ExpectedBucket: "b", Destination: "-"}.Validate())

	err := pipeline.Config{Destination: "-"}.Validate()
	assert.ErrorContains(t, err, "ExpectedBucket")

	err = pipeline.Config{}.Validate()
	assert.ErrorContains(t, err, "ExpectedBucket")
	assert.ErrorContains(t, err, "Destination")

	_, err = pipeline.New(pipeline.Config{}, newSource(t, nil), &collector{}, logging.NewForTesting())
	assert.Error(t, err)

	_, err = pipeline.New(pipeline.Config{ExpectedBucket: "b", Destination: "-"}, nil, &collector{}, logging.NewForTesting())
	assert.Error(t, err)
}

func TestHandler_Solve(t *testing.T) {
	h := newHandler(t, newSource(t, nil), &collector{})

	res, err := h.Solve("4\n0 1 3\n1 2 1\n2 3 4\n0 3 2\n", "s3://b/k")
	require.NoError(t, err)
	assert.Equal(t, int64(6), res.TotalCost)
	assert.Len(t, res.Connections, 3)
	assert.Equal(t, "s3://b/k", res.SourcePath)

	_, err = h.Solve("0\n", "x")
	assert.ErrorIs(t, err, pipeline.ErrEmptyGraph)

	_, err = h.Solve("2\n1 2 3\ninvalid_line\n", "x")
	assert.ErrorIs(t, err, connection.ErrLineFormat)

	_, err = h.Solve("1\n-1 2 3\n", "x")
	assert.ErrorIs(t, err, connection.ErrNegativeNode)
}

func TestHandler_SolveSparseIdentifiers(t *testing.T) {
	h := newHandler(t, newSource(t, nil), &collector{})

	var (
		res report.Result
		err error
	)
	require.NotPanics(t, func() { res, err = h.Solve("1\n0 1152921504606846976 1\n", "x") })
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.TotalCost)
	assert.Equal(t, []report.Link{{From: 0, To: 1152921504606846976, Cost: 1}}, res.Connections)

	// Same plan as the square graph, with every id scaled far apart.
	res, err = h.Solve("4\n0 10000000000 3\n10000000000 20000000000 1\n20000000000 30000000000 4\n0 30000000000 2\n", "x")
	require.NoError(t, err)
	assert.Equal(t, int64(6), res.TotalCost)
	assert.Equal(t, []report.Link{
		{From: 10000000000, To: 20000000000, Cost: 1},
		{From: 0, To: 30000000000, Cost: 2},
		{From: 0, To: 10000000000, Cost: 3},
	}, res.Connections)
}

func TestHandler_HandleKeepsGoingPastBadIdentifiers(t *testing.T) {
	src := newSource(t, map[string]string{
		"huge.txt":     "1\n0 1152921504606846976 1\n",
		"negative.txt": "1\n-4 2 1\n",
		"next.txt":     "1\n0 1 10\n",
	})
	out := &collector{}
	h := newHandler(t, src, out)

	summary, err := h.Handle(context.Background(), []source.Object{
		{Bucket: bucket, Key: "huge.txt"},
		{Bucket: bucket, Key: "negative.txt"},
		{Bucket: bucket, Key: "next.txt"},
	})
	assert.ErrorIs(t, err, connection.ErrNegativeNode)
	assert.Equal(t, pipeline.Summary{Received: 3, Published: 2, Failed: 1}, summary)
	require.Len(t, out.envelopes, 2)
	assert.Equal(t, int64(1), out.envelopes[0].Data.TotalCost)
	assert.Equal(t, "s3://"+bucket+"/next.txt", out.envelopes[1].Data.SourcePath)
}

func TestHandler_SolvePrim(t *testing.T) {
	h := newHandler(t, newSource(t, nil), &collector{}, pipeline.WithMethod(prim_kruskal.MethodPrim))
	res, err := h.Solve("5\n0 1 1\n1 2 1\n2 3 1\n3 0 1\n0 2 2\n", "x")
	require.NoError(t, err)
	assert.Equal(t, int64(3), res.TotalCost)

	bad := newHandler(t, newSource(t, nil), &collector{}, pipeline.WithMethod("nope"))
	_, err = bad.Solve("1\n0 1 1\n", "x")
	assert.ErrorIs(t, err, prim_kruskal.ErrUnknownMethod)
}

func TestHandler_Handle(t *testing.T) {
	src := newSource(t, map[string]string{
		"good.txt":  "1\n0 1 10\n",
		"empty.txt": "0\n",
		"bad.txt":   "3\n1 2 3\n2 3 1\n",
		"cycle.txt": "5\n0 1 1\n1 2 1\n2 3 1\n3 0 1\n0 2 2\n",
	})
	out := &collector{}
	h := newHandler(t, src, out)

	summary, err := h.Handle(context.Background(), []source.Object{
		{Bucket: bucket, Key: "good.txt"},
		{Bucket: "someone-else", Key: "good.txt"},
		{Bucket: bucket, Key: "empty.txt"},
		{Bucket: bucket, Key: "bad.txt"},
		{Bucket: bucket, Key: "missing.txt"},
		{Bucket: bucket, Key: "cycle.txt"},
	})

	// Failures are joined but do not stop later objects.
	require.Error(t, err)
	assert.ErrorIs(t, err, connection.ErrCountMismatch)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Equal(t, pipeline.Summary{Received: 6, Skipped: 1, Empty: 1, Published: 2, Failed: 2}, summary)

	require.Len(t, out.envelopes, 2)
	first := out.envelopes[0].Data
	assert.Equal(t, int64(10), first.TotalCost)
	assert.Equal(t, []report.Link{{From: 0, To: 1, Cost: 10}}, first.Connections)
	assert.Equal(t, "s3://"+bucket+"/good.txt", first.SourcePath)
	assert.Equal(t, first.SourcePath, out.envelopes[0].Source)
	assert.Equal(t, int64(3), out.envelopes[1].Data.TotalCost)
}

func TestHandler_HandleNoRecords(t *testing.T) {
	h := newHandler(t, newSource(t, nil), &collector{})
	summary, err := h.Handle(context.Background(), nil)
	require.NoError(t, err)
	assert.Zero(t, summary)
}

func TestHandler_PublishFailure(t *testing.T) {
	boom := errors.New("queue unavailable")
	h := newHandler(t, newSource(t, map[string]string{"a.txt": "1\n0 1 1\n"}), &collector{err: boom})

	summary, err := h.Handle(context.Background(), []source.Object{{Bucket: bucket, Key: "a.txt"}})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, summary.Failed)
}

func TestHandler_MemoryTopic(t *testing.T) {
	topic := sink.NewMemoryTopic(logging.NewForTesting(), 8)
	h := newHandler(t, newSource(t, map[string]string{"a.txt": "2\n0 1 4\n1 2 5\n"}), topic)

	summary, err := h.Handle(context.Background(), []source.Object{{Bucket: bucket, Key: "a.txt"}})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Published)
	assert.Equal(t, 1, topic.Len())
}

func TestHandler_Cancelled(t *testing.T) {
	out := &collector{}
	h := newHandler(t, newSource(t, map[string]string{"a.txt": "1\n0 1 1\n"}), out)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := h.Handle(ctx, []source.Object{{Bucket: bucket, Key: "a.txt"}})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.envelopes)
}
