package report

import (
	"encoding/json"
	"strings"

	"github.com/alecthomas/errors"
	"github.com/klauspost/compress/zstd"
	"github.com/vmihailenco/msgpack/v5"
)

// Codec encodes values to bytes and back.
type Codec interface {
	Encode(v any) ([]byte, error)
	Decode(data []byte, v any) error
	Name() string
	ContentType() string
}

// JSON is the JSON codec.
type JSON struct{}

var _ Codec = JSON{}

func (JSON) Encode(v any) ([]byte, error)    { return errors.WithStack2(json.Marshal(v)) }
func (JSON) Decode(data []byte, v any) error { return errors.WithStack(json.Unmarshal(data, v)) }
func (JSON) Name() string                    { return "json" }
func (JSON) ContentType() string             { return "application/json; charset=utf-8" }

// MsgPack is the MessagePack codec.
type MsgPack struct{}

var _ Codec = MsgPack{}

func (MsgPack) Encode(v any) ([]byte, error)    { return errors.WithStack2(msgpack.Marshal(v)) }
func (MsgPack) Decode(data []byte, v any) error { return errors.WithStack(msgpack.Unmarshal(data, v)) }
func (MsgPack) Name() string                    { return "msgpack" }
func (MsgPack) ContentType() string             { return "application/msgpack" }

// CodecByName returns the codec registered under name ("json" or "msgpack").
func CodecByName(name string) (Codec, error) {
	switch strings.ToLower(name) {
	case "json", "":
		return JSON{}, nil
	case "msgpack":
		return MsgPack{}, nil
	default:
		return nil, errors.Errorf("unknown codec %q", name)
	}
}

// Compression selects an optional compression stage after encoding.
type Compression string

const (
	CompressionNone Compression = "none"
	CompressionZstd Compression = "zstd"
)

// Encoder runs a Codec followed by optional compression.
// The zero value encodes plain JSON.
type Encoder struct {
	Codec       Codec
	Compression Compression
}

// NewEncoder returns an Encoder for the given codec and compression.
func NewEncoder(codec Codec, compression Compression) Encoder {
	return Encoder{Codec: codec, Compression: compression}
}

func (e Encoder) codec() Codec {
	if e.Codec == nil {
		return JSON{}
	}
	return e.Codec
}

// ContentType describes encoded payloads, eg. "application/json; charset=utf-8+zstd".
func (e Encoder) ContentType() string {
	if e.Compression == CompressionZstd {
		return e.codec().ContentType() + "+zstd"
	}
	return e.codec().ContentType()
}

// LineSafe reports whether payloads are free of newline bytes, so they can be
// framed one per line. Only uncompressed JSON qualifies: MessagePack and zstd
// output is binary.
func (e Encoder) LineSafe() bool {
	_, isJSON := e.codec().(JSON)
	return isJSON && (e.Compression == CompressionNone || e.Compression == "")
}

// Marshal encodes then compresses v.
func (e Encoder) Marshal(v any) ([]byte, error) {
	data, err := e.codec().Encode(v)
	if err != nil {
		return nil, errors.Errorf("%s encoding failed: %w", e.codec().Name(), err)
	}

	switch e.Compression {
	case CompressionNone, "":
		return data, nil
	case CompressionZstd:
		enc, err := zstd.NewWriter(nil)
		if err != nil {
			return nil, errors.Wrap(err, "zstd writer")
		}
		defer enc.Close()
		return enc.EncodeAll(data, nil), nil
	default:
		return nil, errors.Errorf("unknown compression %q", e.Compression)
	}
}

// Unmarshal decompresses then decodes data into v.
func (e Encoder) Unmarshal(data []byte, v any) error {
	switch e.Compression {
	case CompressionNone, "":
	case CompressionZstd:
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return errors.Wrap(err, "zstd reader")
		}
		defer dec.Close()
		data, err = dec.DecodeAll(data, nil)
		if err != nil {
			return errors.Errorf("zstd decompression failed: %w", err)
		}
	default:
		return errors.Errorf("unknown compression %q", e.Compression)
	}

	if err := e.codec().Decode(data, v); err != nil {
		return errors.Errorf("%s decoding failed: %w", e.codec().Name(), err)
	}
	return nil
}
