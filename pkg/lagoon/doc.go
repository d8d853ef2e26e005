// Package lagoon computes how many cubic meters a dig plan excavates.
//
// A dig plan is a list of lines such as
//
//	R 6 (#70c710)
//
// Each line is decoded into a direction and a distance, the instructions are
// traced from the origin into a closed rectilinear polygon, and the number of
// lattice points inside or on that polygon is returned.
//
// Example usage:
//
//	res, err := lagoon.Solve(text)
//	if err != nil {
//	    var pe *lagoon.ParseError
//	    if errors.As(err, &pe) { ... }
//	}
//	fmt.Println("Answer", res.Total)
//
// # Version
//
// See version.go for version constants that can be used programmatically.
package lagoon
