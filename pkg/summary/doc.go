// Package summary renders compact, human-readable textual summaries of graphs.
//
// # Overview
//
// A summary consists of a single header line encoding the graph's class,
// size, and title, optionally followed by attribute tables and a rendering
// of the edge list. The header looks like:
//
//	IGRAPH U--- 4 5 --
//
// The four-character code describes basic properties of the graph: the
// first character is U for undirected or D for directed; the second is N
// when the graph has a vertex attribute called "name"; the third is W when
// it has an edge attribute called "weight"; the fourth is T when it has a
// vertex attribute called "type".
//
// # Edge List Strategies
//
// Edges can be rendered in three ways, chosen by [Config.Format]:
//
//   - [FormatCompressed]: every edge on one line in arrow notation
//   - [FormatAdjacency]: one row per vertex, packed into columns when a
//     width bound allows
//   - [FormatEdgeList]: one row per edge, with attribute values when
//     enabled
//
// [FormatAuto] selects among the three based on edge attributes and the
// median out-degree.
//
// # Usage
//
//	cfg := summary.DefaultConfig()
//	cfg.Verbosity = 1
//	text, err := summary.Render(g, cfg)
//
// The graph is consumed exclusively through the read-only [View] interface;
// this package never mutates it. Rendering is a pure function of its two
// inputs, so concurrent calls are safe as long as the View itself tolerates
// concurrent readers.
package summary
