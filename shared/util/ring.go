package util

// Ring guarda as últimas N amostras; cheio, a mais antiga é sobrescrita.
type Ring[T any] struct {
	entries []T
	mask    uint64
	next    uint64
}

// NewRing cria um buffer com a capacidade dada (arredondada para potência de 2).
func NewRing[T any](capacity int) *Ring[T] {
	n := nextPowerOfTwo(capacity)
	return &Ring[T]{
		entries: make([]T, n),
		mask:    uint64(n - 1),
	}
}

// Push adiciona uma amostra.
func (r *Ring[T]) Push(v T) {
	r.entries[r.next&r.mask] = v
	r.next++
}

// Len retorna quantas amostras estão guardadas.
func (r *Ring[T]) Len() int {
	if r.next < uint64(len(r.entries)) {
		return int(r.next)
	}
	return len(r.entries)
}

// Cap retorna a capacidade.
func (r *Ring[T]) Cap() int {
	return len(r.entries)
}

// Values retorna as amostras da mais antiga para a mais nova.
func (r *Ring[T]) Values() []T {
	n := r.Len()
	out := make([]T, n)
	start := r.next - uint64(n)
	for i := 0; i < n; i++ {
		out[i] = r.entries[(start+uint64(i))&r.mask]
	}
	return out
}

// FrameStats resume um histórico de tempos de frame (segundos).
func FrameStats(r *Ring[float32]) (avg, max float32) {
	vals := r.Values()
	if len(vals) == 0 {
		return 0, 0
	}
	var sum float32
	for _, v := range vals {
		sum += v
		if v > max {
			max = v
		}
	}
	return sum / float32(len(vals)), max
}

func nextPowerOfTwo(x int) int {
	res := 2
	for res < x {
		res <<= 1
	}
	return res
}
