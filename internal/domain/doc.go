// Package domain contains the core entities and value objects for lagoon.
//
// This package is the innermost layer. It has no dependencies on
// infrastructure concerns (file system, logging, CLI) and contains only the
// dig plan model and its error taxonomy.
//
// # Entities
//
//   - [Direction]: one of Up, Down, Left, Right
//   - [Instruction]: a direction and a distance
//   - [Plan]: the ordered, immutable list of instructions
//   - [Vertex]: a (row, col) lattice point on the traced path
//
// # Errors
//
// Parse failures are reported as [*ParseError], which unwraps to one of
// [ErrEmptyInput], [ErrMalformedLine] or [ErrInvalidDirection].
package domain
