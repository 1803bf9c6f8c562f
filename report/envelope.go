package report

import (
	"time"

	"go.jetify.com/typeid/v2"
)

// EventType is the CloudEvents type of every Envelope.
const EventType = "github.com/katalvlaran/netmst/report.Result"

// IDPrefix is the TypeID prefix of Envelope IDs.
const IDPrefix = "mst_result"

// Envelope wraps a Result as a CloudEvent (https://cloudevents.io/).
//
// eg.
//
//	{
//	  "specversion": "1.0",
//	  "type": "github.com/katalvlaran/netmst/report.Result",
//	  "source": "file:///data/network-optimization-bucket/net.txt",
//	  "id": "mst_result_01jxw3…",
//	  "time": "2026-10-18T10:00:00Z",
//	  "data": {"total_cost": 6, "connections": [...], "source_path": "..."}
//	}
type Envelope struct {
	SpecVersion string    `json:"specversion" msgpack:"specversion"`
	Type        string    `json:"type" msgpack:"type"`
	Source      string    `json:"source" msgpack:"source"`
	ID          string    `json:"id" msgpack:"id"`
	Time        time.Time `json:"time" msgpack:"time"`
	Data        Result    `json:"data" msgpack:"data"`
}

// NewEnvelope wraps result with a fresh TypeID and the current UTC time.
// The CloudEvents source is the result's provenance tag.
func NewEnvelope(result Result) Envelope {
	return Envelope{
		SpecVersion: "1.0",
		Type:        EventType,
		Source:      result.SourcePath,
		ID:          typeid.MustGenerate(IDPrefix).String(),
		Time:        time.Now().UTC(),
		Data:        result,
	}
}
