package lagoon

import (
	"github.com/bft-labs/lagoon/internal/domain"
	"github.com/bft-labs/lagoon/internal/geometry"
	"github.com/bft-labs/lagoon/internal/parser"
	"github.com/bft-labs/lagoon/pkg/log"
)

// Re-exported domain types.
type (
	Direction   = domain.Direction
	Instruction = domain.Instruction
	Plan        = domain.Plan
	Vertex      = domain.Vertex
	ParseError  = domain.ParseError
	ErrorKind   = domain.ErrorKind
	Decoder     = parser.Decoder
)

// Re-exported errors, for use with errors.Is.
var (
	ErrEmptyInput       = domain.ErrEmptyInput
	ErrMalformedLine    = domain.ErrMalformedLine
	ErrInvalidDirection = domain.ErrInvalidDirection
	ErrOpenPath         = domain.ErrOpenPath
)

// Result is the outcome of solving one dig plan.
type Result struct {
	Plan     Plan
	Vertices []Vertex

	// Boundary is the number of lattice points on the trench.
	Boundary int64
	// Shoelace is the geometric area of the polygon.
	Shoelace int64
	// Interior is the number of lattice points strictly inside.
	Interior int64
	// Total is Interior + Boundary.
	Total int64
}

// DecoderByName returns the "hex" or "literal" decoder.
func DecoderByName(name string) (Decoder, error) {
	return parser.DecoderByName(name)
}

// Solve parses text and returns the number of lattice points the plan encloses.
func Solve(text string, opts ...Option) (Result, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	plan, err := parser.Parse(text, o.decoder)
	if err != nil {
		return Result{}, err
	}
	o.logger.Debug("plan parsed",
		log.String("decoder", o.decoder.Name()),
		log.Int("instructions", plan.Len()),
	)

	return solve(plan, o)
}

// SolvePlan computes the result for an already parsed plan.
func SolvePlan(plan Plan, opts ...Option) (Result, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return solve(plan, o)
}

func solve(plan Plan, o options) (Result, error) {
	vertices := geometry.Trace(plan)
	if o.checkClosed {
		if err := geometry.CheckClosed(vertices); err != nil {
			return Result{}, err
		}
	}

	boundary := plan.Boundary()
	shoelace := geometry.ShoelaceArea(vertices)
	interior := geometry.Interior(vertices, boundary)

	res := Result{
		Plan:     plan,
		Vertices: vertices,
		Boundary: boundary,
		Shoelace: shoelace,
		Interior: interior,
		Total:    interior + boundary,
	}
	o.logger.Debug("plan solved",
		log.Int64("boundary", res.Boundary),
		log.Int64("shoelace", res.Shoelace),
		log.Int64("interior", res.Interior),
		log.Int64("total", res.Total),
	)
	return res, nil
}
