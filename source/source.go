// Package source delivers raw edge-list text for file-arrival records.
//
// An Object names a file by bucket and key, the way an object-store
// notification does. A Source fetches its contents. FS serves buckets from
// io/fs file systems (os.DirFS in production, an in-memory FS in tests).
package source

import (
	"context"
	"io/fs"
	"path"
	"strings"

	"github.com/alecthomas/errors"
)

// ErrUnknownBucket is returned by FS.Fetch for a bucket it does not serve.
var ErrUnknownBucket = errors.New("source: unknown bucket")

// Object identifies one arrived file.
type Object struct {
	Bucket string `json:"bucket"`
	Key    string `json:"key"`
}

// Path returns the provenance tag of the object, "<scheme>://bucket/key".
func (o Object) Path(scheme string) string {
	return scheme + "://" + o.Bucket + "/" + strings.TrimPrefix(o.Key, "/")
}

func (o Object) String() string { return o.Bucket + "/" + strings.TrimPrefix(o.Key, "/") }

// Source fetches the text of an Object.
type Source interface {
	Fetch(ctx context.Context, obj Object) (string, error)
	// Scheme is the provenance scheme used in Object.Path, eg. "file".
	Scheme() string
}

// FS is a Source over a set of named io/fs file systems, one per bucket.
// It is safe for concurrent use if the underlying file systems are.
type FS struct {
	scheme  string
	buckets map[string]fs.FS
}

var _ Source = (*FS)(nil)

// NewFS returns an FS source with no buckets, tagging provenance with scheme.
func NewFS(scheme string) *FS {
	return &FS{scheme: scheme, buckets: map[string]fs.FS{}}
}

// WithBucket registers fsys under name and returns the receiver.
// Must be called before the FS is shared between goroutines.
func (s *FS) WithBucket(name string, fsys fs.FS) *FS {
	s.buckets[name] = fsys
	return s
}

func (s *FS) Scheme() string { return s.scheme }

// Fetch reads obj.Key from the bucket's file system.
func (s *FS) Fetch(ctx context.Context, obj Object) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", errors.WithStack(err)
	}
	fsys, ok := s.buckets[obj.Bucket]
	if !ok {
		return "", errors.Errorf("%w: %q", ErrUnknownBucket, obj.Bucket)
	}

	name := path.Clean(strings.TrimPrefix(obj.Key, "/"))
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return "", errors.Errorf("failed to fetch %s: %w", obj, err)
	}
	return string(data), nil
}
