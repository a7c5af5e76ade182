package core

import "sync"

// Pool provides sync.Pool-based reuse of scratch vectors for the operator
// sweeps that need a temporary of the grid size.
type Pool struct {
	pool sync.Pool
}

// NewPool returns a Pool ready for use.
func NewPool() *Pool {
	return &Pool{
		pool: sync.Pool{
			New: func() any {
				return new([]float64)
			},
		},
	}
}

// Get returns a zeroed vector of length n. Callers must return it via Put
// when done.
func (p *Pool) Get(n int) *[]float64 {
	v := p.pool.Get().(*[]float64)
	*v = EnsureLen(*v, n)
	Fill(*v, 0)
	return v
}

// Put returns a vector to the pool for reuse.
// The caller must not use the vector after calling Put.
func (p *Pool) Put(v *[]float64) {
	if v == nil {
		return
	}
	p.pool.Put(v)
}
