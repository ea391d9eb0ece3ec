package model

import (
	"time"

	"golang.org/x/exp/rand"
)

// IntnSource is the slice of a random number generator used for seeding
type IntnSource interface {
	Intn(n int) int
}

// NewRand returns a deterministic generator for seed, or a time-seeded one when seed is 0
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewSource(seed))
}

// SeedRandom makes count uniformly random SetLive calls. Positions may repeat,
// so the number of live cells added can be lower than count.
func SeedRandom(g *Grid, rng IntnSource, count int) {
	for range count {
		g.SetLive(Position{X: rng.Intn(g.size), Y: rng.Intn(g.size)})
	}
}

// glider in its south-east travelling phase, offsets from the top-left corner
var glider = []Position{
	{X: 1, Y: 0},
	{X: 2, Y: 1},
	{X: 0, Y: 2}, {X: 1, Y: 2}, {X: 2, Y: 2},
}

// blinker is a horizontal period-2 oscillator
var blinker = []Position{
	{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0},
}

// AddGlider adds a glider pattern with its top-left corner at origin
func AddGlider(g *Grid, origin Position) int {
	return addPattern(g, origin, glider)
}

// AddBlinker adds a blinker oscillator pattern with its left end at origin
func AddBlinker(g *Grid, origin Position) int {
	return addPattern(g, origin, blinker)
}

// addPattern sets the pattern's cells live, skipping those outside the grid,
// and returns how many were placed.
func addPattern(g *Grid, origin Position, pattern []Position) int {
	placed := 0
	for _, offset := range pattern {
		p := Position{X: origin.X + offset.X, Y: origin.Y + offset.Y}
		if !g.Contains(p) {
			continue
		}
		g.SetLive(p)
		placed++
	}
	return placed
}
