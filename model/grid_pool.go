package model

import "sync"

// cellBuffer is the unit stored in the pool
type cellBuffer struct {
	rows [][]Cell
}

// BufferPool recycles cell buffers between generations.
// A single pool may be shared by any number of grids of any size.
type BufferPool struct {
	pool sync.Pool
}

func NewBufferPool() *BufferPool {
	return &BufferPool{
		pool: sync.Pool{
			New: func() interface{} {
				return &cellBuffer{}
			},
		},
	}
}

// Get retrieves a size x size buffer from the pool with every cell Dead
func (p *BufferPool) Get(size int) [][]Cell {
	rows := p.pool.Get().(*cellBuffer).rows

	// Resize cells if needed
	if len(rows) != size {
		rows = make([][]Cell, size)
	}
	for i := range rows {
		if len(rows[i]) != size {
			rows[i] = make([]Cell, size)
		} else {
			clear(rows[i])
		}
	}
	return rows
}

// Put returns a buffer to the pool. The caller must not touch rows afterwards.
func (p *BufferPool) Put(rows [][]Cell) {
	if rows == nil {
		return
	}
	p.pool.Put(&cellBuffer{rows: rows})
}
