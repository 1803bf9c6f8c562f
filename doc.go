// Package netmst plans minimum-cost network connections.
//
// Given a text file listing candidate links between numbered nodes with a cost
// each, netmst selects the cheapest set of links that keeps every node of a
// connected component reachable, with no redundant links: a minimum spanning
// forest.
//
// Everything is organized under small subpackages:
//
//	connection/   the Connection edge type and the line-oriented edge-list parser
//	prim_kruskal/ Kruskal (default) and Prim, plus the DisjointSet union-find
//	report/       Result, the CloudEvents-shaped Envelope and JSON/MessagePack codecs
//	source/       Object (bucket + key) and io/fs backed sources
//	sink/         in-memory topic, newline writer and SQL outbox (sqlite, postgres, mysql)
//	pipeline/     the file-arrival handler wiring source → parser → engine → sink
//	logging/      slog construction (tint or JSON)
//	cmd/netmst/   the command line
//
// Input format:
//
//	3          ← number of connections
//	0 1 4      ← nodeA nodeB cost
//	1 2 1
//	0 2 2
//
// yields the connections 1-2(1) and 0-2(2) with total cost 3.
//
//	go install github.com/katalvlaran/netmst/cmd/netmst@latest
package netmst
