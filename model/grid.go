package model

import (
	"crypto/md5"
	"fmt"

	"github.com/pkg/errors"
)

// Grid is a square Game of Life board with clamped (non-wrapping) edges.
//
// Get, SetLive and SetDead panic with an error wrapping ErrOutOfBounds when
// given a position outside the grid. Callers holding untrusted coordinates
// should validate them first with Contains or Check.
//
// A Grid is not safe for concurrent use.
type Grid struct {
	size       int
	generation int
	cells      [][]Cell // indexed [y][x]
	pool       *BufferPool
}

// GridOption configures a Grid at construction
type GridOption func(*Grid)

// WithBufferPool makes the grid draw its generation buffers from p
func WithBufferPool(p *BufferPool) GridOption {
	return func(g *Grid) {
		if p != nil {
			g.pool = p
		}
	}
}

// NewGrid creates a size x size grid with every cell Dead. It panics if size is not positive.
func NewGrid(size int, opts ...GridOption) *Grid {
	if size < 1 {
		panic(errors.Errorf("[NewGrid] size must be positive, got %d", size))
	}
	g := &Grid{size: size}
	for _, opt := range opts {
		opt(g)
	}
	if g.pool == nil {
		g.pool = NewBufferPool()
	}
	g.cells = g.pool.Get(size)
	return g
}

// Size returns the edge length of the grid
func (g *Grid) Size() int {
	return g.size
}

// Generation returns the number of Advance calls since creation or the last Clear
func (g *Grid) Generation() int {
	return g.generation
}

// Contains reports whether p lies inside the grid
func (g *Grid) Contains(p Position) bool {
	return p.X >= 0 && p.X < g.size && p.Y >= 0 && p.Y < g.size
}

// Check returns an error wrapping ErrOutOfBounds if p lies outside the grid
func (g *Grid) Check(p Position) error {
	if g.Contains(p) {
		return nil
	}
	return errors.Wrapf(ErrOutOfBounds, "%s outside %dx%d grid", p, g.size, g.size)
}

func (g *Grid) mustContain(p Position) {
	if err := g.Check(p); err != nil {
		panic(err)
	}
}

// Get returns the state of the cell at p
func (g *Grid) Get(p Position) Cell {
	g.mustContain(p)
	return g.cells[p.Y][p.X]
}

// SetLive marks the cell at p as Live
func (g *Grid) SetLive(p Position) {
	g.mustContain(p)
	g.cells[p.Y][p.X] = Live
}

// SetDead marks the cell at p as Dead
func (g *Grid) SetDead(p Position) {
	g.mustContain(p)
	g.cells[p.Y][p.X] = Dead
}

// Clear kills every cell and resets the generation counter
func (g *Grid) Clear() {
	for y := range g.size {
		clear(g.cells[y])
	}
	g.generation = 0
}

// CountNeighbors counts the live cells around p. The 3x3 block is clamped to
// the grid, so edge cells have 5 candidate neighbors and corners 3.
func (g *Grid) CountNeighbors(p Position) int {
	g.mustContain(p)
	return g.countNeighbors(p.X, p.Y)
}

func (g *Grid) countNeighbors(x, y int) int {
	count := 0

	minX := max(0, x-1)
	maxX := min(g.size-1, x+1)
	minY := max(0, y-1)
	maxY := min(g.size-1, y+1)

	for ny := minY; ny <= maxY; ny++ {
		for nx := minX; nx <= maxX; nx++ {
			if nx == x && ny == y {
				continue // Skip the cell itself
			}
			if g.cells[ny][nx] == Live {
				count++
			}
		}
	}

	return count
}

// Advance computes the next generation for every cell against the current one,
// then swaps the new generation in.
func (g *Grid) Advance() {
	next := g.pool.Get(g.size)
	for y := range g.size {
		for x := range g.size {
			next[y][x] = g.cells[y][x].Next(g.countNeighbors(x, y))
		}
	}

	prev := g.cells
	g.cells = next
	g.pool.Put(prev)
	g.generation++
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for y := range g.size {
		for x := range g.size {
			if g.cells[y][x] == Live {
				count++
			}
		}
	}
	return
}

// LivePositions lists the live cells in row-major order
func (g *Grid) LivePositions() []Position {
	var live []Position
	for y := range g.size {
		for x := range g.size {
			if g.cells[y][x] == Live {
				live = append(live, Position{X: x, Y: y})
			}
		}
	}
	return live
}

// Clone returns an independent copy sharing only the buffer pool
func (g *Grid) Clone() *Grid {
	c := &Grid{
		size:       g.size,
		generation: g.generation,
		pool:       g.pool,
	}
	c.cells = g.pool.Get(g.size)
	for y := range g.size {
		copy(c.cells[y], g.cells[y])
	}
	return c
}

// Equal reports whether both grids have the same size and cell states.
// The generation counter is ignored.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.size != other.size {
		return false
	}
	for y := range g.size {
		for x := range g.size {
			if g.cells[y][x] != other.cells[y][x] {
				return false
			}
		}
	}
	return true
}

// Hash returns an MD5 digest of the current cell states
func (g *Grid) Hash() string {
	h := md5.New()
	fmt.Fprintf(h, "%d:", g.size)
	row := make([]byte, g.size)
	for y := range g.size {
		for x := range g.size {
			row[x] = byte(g.cells[y][x])
		}
		h.Write(row)
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}
