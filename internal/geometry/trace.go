// Package geometry traces a dig plan into a lattice polygon and counts the
// lattice points it covers.
package geometry

import (
	"fmt"

	"github.com/bft-labs/lagoon/internal/domain"
)

// Trace walks the plan from the origin and returns every corner visited,
// starting with the origin itself. The result has plan.Len()+1 vertices.
func Trace(plan domain.Plan) []domain.Vertex {
	vertices := make([]domain.Vertex, 0, plan.Len()+1)
	pos := domain.Origin
	vertices = append(vertices, pos)
	for i := 0; i < plan.Len(); i++ {
		ins := plan.At(i)
		pos = pos.Move(ins.Direction, ins.Distance)
		vertices = append(vertices, pos)
	}
	return vertices
}

// CheckClosed returns ErrOpenPath if the trace does not end where it started.
func CheckClosed(vertices []domain.Vertex) error {
	if len(vertices) == 0 {
		return nil
	}
	first, last := vertices[0], vertices[len(vertices)-1]
	if first != last {
		return fmt.Errorf("%w: ends at %s", domain.ErrOpenPath, last)
	}
	return nil
}
