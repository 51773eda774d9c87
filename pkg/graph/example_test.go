package graph_test

import (
	"bytes"
	"fmt"

	"github.com/m1-s/graphsum/pkg/graph"
	"github.com/m1-s/graphsum/pkg/summary"
)

// Graph must satisfy the read-only view the summary renderer consumes.
var _ summary.View = (*graph.Graph)(nil)

func ExampleWriteGraph() {
	g := graph.New(false)
	g.AddVertex("a")
	g.AddVertex("b")
	_, _ = g.AddEdge(0, 1)
	g.SetAttribute("name", "tiny")

	var buf bytes.Buffer
	if err := graph.WriteGraph(g, &buf); err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Print(buf.String())
	// Output:
	// {
	//   "directed": false,
	//   "attributes": [
	//     {
	//       "name": "name",
	//       "value": "tiny"
	//     }
	//   ],
	//   "vertices": [
	//     {
	//       "name": "a"
	//     },
	//     {
	//       "name": "b"
	//     }
	//   ],
	//   "edges": [
	//     {
	//       "source": 0,
	//       "target": 1
	//     }
	//   ]
	// }
}

func ExampleReadGraph() {
	doc := `{
		"directed": true,
		"vertices": [{"name": "app"}, {"name": "lib"}],
		"edges": [{"source": 0, "target": 1}]
	}`

	g, err := graph.ReadGraph(bytes.NewReader([]byte(doc)))
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	fmt.Println("Vertices:", g.VertexCount())
	fmt.Println("Edges:", g.EdgeCount())
	fmt.Println("Successors of app:", g.Successors(0))
	// Output:
	// Vertices: 2
	// Edges: 1
	// Successors of app: [1]
}
