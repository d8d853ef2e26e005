package geometry

import "github.com/bft-labs/lagoon/internal/domain"

// ShoelaceArea returns the geometric area enclosed by the vertices.
// Only adjacent pairs are summed; the sequence must already be closed.
func ShoelaceArea(vertices []domain.Vertex) int64 {
	var sum int64
	for i := 1; i < len(vertices); i++ {
		a, b := vertices[i-1], vertices[i]
		sum += a.Col*b.Row - a.Row*b.Col
	}
	if sum < 0 {
		sum = -sum
	}
	return sum / 2
}

// Interior returns the number of lattice points strictly inside the polygon,
// using Pick's theorem: A = I + B/2 - 1.
func Interior(vertices []domain.Vertex, boundary int64) int64 {
	return ShoelaceArea(vertices) - boundary/2 + 1
}

// Area returns the number of lattice points inside or on the polygon.
func Area(vertices []domain.Vertex, boundary int64) int64 {
	return Interior(vertices, boundary) + boundary
}
