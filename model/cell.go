package model

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/gol-engine/rules"
)

// ErrOutOfBounds is the cause of every panic raised by Grid accessors and the
// error returned by Grid.Check for a position outside the grid.
var ErrOutOfBounds = errors.New("position out of bounds")

// Cell is the state of a single grid position
type Cell uint8

const (
	Dead Cell = iota
	Live
)

// String implements fmt.Stringer
func (c Cell) String() string {
	if c == Live {
		return "Live"
	}
	return "Dead"
}

// IsLive reports whether the cell is alive
func (c Cell) IsLive() bool {
	return c == Live
}

// Next returns the cell's state in the following generation given its live neighbor count
func (c Cell) Next(neighbors int) Cell {
	if rules.ApplyConwayRules(neighbors, c.IsLive()) {
		return Live
	}
	return Dead
}

// Position locates a cell; X is the column and Y the row.
type Position struct {
	X, Y int
}

// NewPosition returns the position (x, y)
func NewPosition(x, y int) Position {
	return Position{X: x, Y: y}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}
