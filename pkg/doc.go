// Package pkg provides the core libraries for graphsum.
//
// # Overview
//
// Graphsum renders compact textual summaries of graphs in the style of
// igraph's summary output. The pkg directory is organized into:
//
//  1. [graph] - In-memory graph structure with attributes and JSON I/O
//  2. [summary] - The summary renderer (header, attribute blocks, edge lists)
//  3. [dot] - Graphviz DOT export and SVG rendering
//  4. [errors] - Structured errors with stable codes
//  5. [buildinfo] - Version metadata for the CLI
//
// # Architecture
//
// The typical data flow:
//
//	graph.json document
//	         ↓
//	    [graph] package (parse, validate, build structure)
//	         ↓
//	    [summary] package (select format, render, wrap)
//	         ↓
//	    terminal output
//
// # Quick Start
//
// Load a graph and print its summary:
//
//	import (
//	    "fmt"
//	    "github.com/m1-s/graphsum/pkg/graph"
//	    "github.com/m1-s/graphsum/pkg/summary"
//	)
//
//	g, _ := graph.ReadGraphFile("graph.json")
//	out, _ := summary.Render(g, summary.DefaultConfig())
//	fmt.Println(out)
//
// Any type implementing [summary.View] can be summarized; [graph.Graph] is
// the bundled implementation.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/summary/...  # Specific package
//	go test -run Example       # Examples only
//
// [graph]: https://pkg.go.dev/github.com/m1-s/graphsum/pkg/graph
// [summary]: https://pkg.go.dev/github.com/m1-s/graphsum/pkg/summary
// [dot]: https://pkg.go.dev/github.com/m1-s/graphsum/pkg/dot
// [errors]: https://pkg.go.dev/github.com/m1-s/graphsum/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/m1-s/graphsum/pkg/buildinfo
package pkg
