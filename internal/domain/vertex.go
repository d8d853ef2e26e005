package domain

import "fmt"

// Vertex is a corner of the traced polygon on the integer lattice.
type Vertex struct {
	Row int64
	Col int64
}

// Origin is the implicit starting point of every trace.
var Origin = Vertex{}

// Move returns the vertex reached by walking distance cells towards d.
func (v Vertex) Move(d Direction, distance int64) Vertex {
	dr, dc := d.Delta()
	return Vertex{Row: v.Row + dr*distance, Col: v.Col + dc*distance}
}

func (v Vertex) String() string {
	return fmt.Sprintf("(%d,%d)", v.Row, v.Col)
}
