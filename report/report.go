// Package report turns a spanning-forest result into the message handed to an
// output sink: the Result structure, its CloudEvents-shaped Envelope, and the
// codecs (JSON, MessagePack, optional zstd) used to put it on the wire.
package report

import (
	"github.com/katalvlaran/netmst/connection"
	"github.com/katalvlaran/netmst/prim_kruskal"
)

// Link is one selected connection in wire form.
type Link struct {
	From int `json:"from" msgpack:"from"`
	To   int `json:"to" msgpack:"to"`
	Cost int `json:"cost" msgpack:"cost"`
}

// Result is the outcome of solving one input file.
type Result struct {
	TotalCost   int64  `json:"total_cost" msgpack:"total_cost"`
	Connections []Link `json:"connections" msgpack:"connections"`
	// SourcePath is an opaque provenance tag naming the input file.
	SourcePath string `json:"source_path" msgpack:"source_path"`
}

// NewResult builds a Result from an MST in acceptance order.
// Connections is never nil, so an empty forest encodes as [].
func NewResult(mst []connection.Connection, sourcePath string) Result {
	links := make([]Link, 0, len(mst))
	for _, c := range mst {
		links = append(links, Link{From: c.NodeA, To: c.NodeB, Cost: c.Cost})
	}

	return Result{
		TotalCost:   prim_kruskal.TotalCost(mst),
		Connections: links,
		SourcePath:  sourcePath,
	}
}
