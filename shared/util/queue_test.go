package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUniqueQueue(t *testing.T) {
	q := NewUniqueQueue[string]()
	assert.True(t, q.Enqueue("city"))
	assert.True(t, q.Enqueue("tower"))
	assert.False(t, q.Enqueue("city"), "chave repetida")
	assert.Equal(t, 2, q.Len())
	assert.True(t, q.Contains("tower"))

	k, ok := q.Dequeue()
	assert.True(t, ok)
	assert.Equal(t, "city", k)
	assert.False(t, q.Contains("city"))

	// Depois de sair, pode entrar de novo
	assert.True(t, q.Enqueue("city"))

	q.Clear()
	_, ok = q.Dequeue()
	assert.False(t, ok)
	assert.Equal(t, 0, q.Len())
}

func TestRingOverwritesOldest(t *testing.T) {
	r := NewRing[float32](3)
	assert.Equal(t, 4, r.Cap())
	assert.Empty(t, r.Values())

	for i := 1; i <= 6; i++ {
		r.Push(float32(i))
	}
	assert.Equal(t, 4, r.Len())
	assert.Equal(t, []float32{3, 4, 5, 6}, r.Values())

	avg, max := FrameStats(r)
	assert.InDelta(t, 4.5, avg, 1e-6)
	assert.Equal(t, float32(6), max)
}

func TestFrameStatsEmpty(t *testing.T) {
	avg, max := FrameStats(NewRing[float32](8))
	assert.Zero(t, avg)
	assert.Zero(t, max)
}
