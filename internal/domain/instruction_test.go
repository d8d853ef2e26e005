package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlan_Boundary(t *testing.T) {
	plan := NewPlan([]Instruction{
		{Direction: Right, Distance: 6},
		{Direction: Down, Distance: 5},
		{Direction: Left, Distance: 6},
		{Direction: Up, Distance: 5},
	})

	assert.Equal(t, 4, plan.Len())
	assert.Equal(t, int64(22), plan.Boundary())
	assert.False(t, plan.Empty())
	assert.True(t, NewPlan(nil).Empty())
	assert.Equal(t, int64(0), NewPlan(nil).Boundary())
}

func TestPlan_IsImmutable(t *testing.T) {
	src := []Instruction{{Direction: Right, Distance: 1}}
	plan := NewPlan(src)

	src[0].Distance = 99
	assert.Equal(t, int64(1), plan.At(0).Distance)

	out := plan.Instructions()
	out[0].Distance = 42
	assert.Equal(t, int64(1), plan.At(0).Distance)
}

func TestPlan_String(t *testing.T) {
	plan := NewPlan([]Instruction{
		{Direction: Right, Distance: 461937},
		{Direction: Down, Distance: 56407},
	})
	assert.Equal(t, "Dir: Right, Dist: 461937\nDir: Down, Dist: 56407", plan.String())
}

func TestVertex_Move(t *testing.T) {
	v := Origin.Move(Right, 3).Move(Down, 2).Move(Left, 5).Move(Up, 7)
	assert.Equal(t, Vertex{Row: -5, Col: -2}, v)
	assert.Equal(t, "(-5,-2)", v.String())
}
