package domain

import (
	"fmt"
	"strings"
)

// Instruction is a single dig step: move Distance cells towards Direction.
type Instruction struct {
	Direction Direction
	Distance  int64
}

// String renders the instruction as "Dir: <name>, Dist: <n>".
func (i Instruction) String() string {
	return fmt.Sprintf("Dir: %s, Dist: %d", i.Direction, i.Distance)
}

// Plan is the ordered list of instructions read from one input.
// A Plan is never modified after construction.
type Plan struct {
	instructions []Instruction
}

// NewPlan creates a plan from the given instructions.
// The slice is copied so later changes by the caller do not leak in.
func NewPlan(instructions []Instruction) Plan {
	cp := make([]Instruction, len(instructions))
	copy(cp, instructions)
	return Plan{instructions: cp}
}

// Len returns the number of instructions in the plan.
func (p Plan) Len() int {
	return len(p.instructions)
}

// Empty returns true if the plan has no instructions.
func (p Plan) Empty() bool {
	return len(p.instructions) == 0
}

// At returns the i-th instruction.
func (p Plan) At(i int) Instruction {
	return p.instructions[i]
}

// Instructions returns a copy of the instructions in traversal order.
func (p Plan) Instructions() []Instruction {
	cp := make([]Instruction, len(p.instructions))
	copy(cp, p.instructions)
	return cp
}

// Boundary returns the total length of the dug trench, i.e. the sum of all
// instruction distances.
func (p Plan) Boundary() int64 {
	var total int64
	for _, ins := range p.instructions {
		total += ins.Distance
	}
	return total
}

func (p Plan) String() string {
	lines := make([]string, len(p.instructions))
	for i, ins := range p.instructions {
		lines[i] = ins.String()
	}
	return strings.Join(lines, "\n")
}
