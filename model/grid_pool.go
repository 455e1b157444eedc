package model

import "sync"

// GridToPool returns a grid to the pool for reuse
func GridToPool(grid *Grid, pool *GridPool) {
	if pool == nil || grid == nil {
		return
	}

	pool.Put(grid)
}

// GridPool recycles grid storage between generations
type GridPool struct {
	pool sync.Pool
}

func NewGridPool() *GridPool {
	return &GridPool{
		pool: sync.Pool{
			New: func() any {
				return &Grid{}
			},
		},
	}
}

// Get retrieves an all-dead grid of the given length from the pool
func (p *GridPool) Get(length int) *Grid {
	if err := ValidateLength(length); err != nil {
		panic(err)
	}
	g := p.pool.Get().(*Grid)
	g.reset(length)
	return g
}

// Put returns a grid to the pool. The grid must not be used afterwards.
func (p *GridPool) Put(g *Grid) {
	p.pool.Put(g)
}
