package util

// UniqueQueue é uma fila FIFO em que cada chave aparece no máximo uma vez.
// Usada para espalhar trabalho caro (carga de modelos) ao longo dos frames.
// Não é thread-safe.
type UniqueQueue[K comparable] struct {
	items   []K
	present map[K]bool
}

// NewUniqueQueue cria uma nova UniqueQueue.
func NewUniqueQueue[K comparable]() *UniqueQueue[K] {
	return &UniqueQueue[K]{
		items:   make([]K, 0, 8),
		present: make(map[K]bool),
	}
}

// Enqueue adiciona a chave se ainda não estiver na fila.
// Retorna true se foi adicionada.
func (q *UniqueQueue[K]) Enqueue(key K) bool {
	if q.present[key] {
		return false
	}
	q.items = append(q.items, key)
	q.present[key] = true
	return true
}

// Dequeue remove e retorna a chave mais antiga.
func (q *UniqueQueue[K]) Dequeue() (K, bool) {
	if len(q.items) == 0 {
		var zero K
		return zero, false
	}
	k := q.items[0]
	q.items = q.items[1:]
	delete(q.present, k)
	return k, true
}

// Contains verifica se uma chave está na fila.
func (q *UniqueQueue[K]) Contains(key K) bool {
	return q.present[key]
}

// Len retorna o número de itens na fila.
func (q *UniqueQueue[K]) Len() int {
	return len(q.items)
}

// Clear limpa a fila.
func (q *UniqueQueue[K]) Clear() {
	q.items = q.items[:0]
	q.present = make(map[K]bool)
}
