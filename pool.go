package sampling

import "sync"

// Pool provides sync.Pool-based Sampler reuse for pipelines that create
// and drop many short-lived windows. The Pool itself is safe for
// concurrent use; the Samplers it returns are not.
type Pool[T, R any] struct {
	pool sync.Pool
}

// NewPool returns a Pool ready for use.
func NewPool[T, R any]() *Pool[T, R] {
	return &Pool[T, R]{
		pool: sync.Pool{
			New: func() any {
				return New[T, R]()
			},
		},
	}
}

// Get returns a Sampler with the requested capacity, a zeroed window, and
// an empty registry. Callers must return it via Put when done.
func (p *Pool[T, R]) Get(capacity int) *Sampler[T, R] {
	s := p.pool.Get().(*Sampler[T, R])
	s.SetCapacity(capacity)
	s.Reset()
	return s
}

// Put returns a Sampler to the pool for reuse. The caller must not use the
// Sampler after calling Put.
func (p *Pool[T, R]) Put(s *Sampler[T, R]) {
	if s == nil {
		return
	}
	p.pool.Put(s)
}
