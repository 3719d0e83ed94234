package util

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestWorldToGrid(t *testing.T) {
	tests := []struct {
		pos  mgl32.Vec3
		want GridCoord
	}{
		{mgl32.Vec3{0, 0, 0}, GridCoord{0, 0}},
		{mgl32.Vec3{24.9, 100, -24.9}, GridCoord{0, 0}},
		{mgl32.Vec3{25, 0, 0}, GridCoord{1, 0}},
		{mgl32.Vec3{-25, 0, 0}, GridCoord{0, 0}},
		{mgl32.Vec3{-25.1, 0, 0}, GridCoord{-1, 0}},
		{mgl32.Vec3{-75, 0, 130}, GridCoord{-1, 3}},
		{mgl32.Vec3{1000, -50, 50}, GridCoord{20, 1}},
	}

	for _, tt := range tests {
		got := WorldToGrid(tt.pos, 50)
		assert.Equal(t, tt.want, got, "WorldToGrid(%v)", tt.pos)
	}
}

func TestGridToWorld(t *testing.T) {
	assert.Equal(t, mgl32.Vec3{-50, 0, 100}, GridToWorld(GridCoord{-1, 2}, 50))
	assert.Equal(t, mgl32.Vec3{0, 0, 0}, GridToWorld(GridCoord{}, 50))
}

func TestGridKey(t *testing.T) {
	assert.Equal(t, "3_-7", NewGridCoord(3, -7).Key())
	assert.Equal(t, NewGridCoord(3, -7).Key(), GridCoord{X: 3, Z: -7}.Key())
	assert.NotEqual(t, NewGridCoord(1, 12).Key(), NewGridCoord(11, 2).Key())
}

func TestChebyshevDist(t *testing.T) {
	c := NewGridCoord(2, -1)
	assert.Equal(t, int32(0), c.ChebyshevDist(c))
	assert.Equal(t, int32(3), c.ChebyshevDist(NewGridCoord(-1, 0)))
	assert.Equal(t, int32(4), c.ChebyshevDist(NewGridCoord(3, 3)))
}

func TestHash2Stable(t *testing.T) {
	assert.Equal(t, Hash2(7, 10, -3), Hash2(7, 10, -3))
	assert.NotEqual(t, Hash2(7, 10, -3), Hash2(7, -3, 10))
}

func TestDampFactor(t *testing.T) {
	assert.Equal(t, float32(0), DampFactor(8, 0))
	assert.Equal(t, float32(0), DampFactor(0, 1))
	f := DampFactor(8, 1.0/60)
	assert.Greater(t, f, float32(0))
	assert.Less(t, f, float32(1))
	assert.InDelta(t, 0.1248, f, 1e-3)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, float32(5), Clamp(-3, 5, 10))
	assert.Equal(t, float32(10), Clamp(30, 5, 10))
	assert.Equal(t, float32(7), Clamp(7, 5, 10))
}
