package model

import "testing"

type scriptedRand struct {
	values []int
	next   int
}

func (r *scriptedRand) Intn(n int) int {
	v := r.values[r.next%len(r.values)] % n
	r.next++
	return v
}

func TestSeedRandomUsesSource(t *testing.T) {
	g := NewGrid(10)
	SeedRandom(g, &scriptedRand{values: []int{1, 2, 3, 4, 1, 2}}, 3)

	// the third draw repeats (1,2)
	assertLiveSet(t, g, NewPosition(1, 2), NewPosition(3, 4))
}

func TestSeedRandomDeterministicPerSeed(t *testing.T) {
	a, b := NewGrid(50), NewGrid(50)
	SeedRandom(a, NewRand(99), 500)
	SeedRandom(b, NewRand(99), 500)

	if !a.Equal(b) {
		t.Fatalf("same seed produced different grids")
	}
	if n := a.CountLivingCells(); n == 0 || n > 500 {
		t.Fatalf("unexpected live count %d", n)
	}
}

func TestGliderTravels(t *testing.T) {
	g := NewGrid(20)
	if placed := AddGlider(g, NewPosition(1, 1)); placed != 5 {
		t.Fatalf("AddGlider placed %d cells, want 5", placed)
	}

	for range 4 {
		g.Advance()
	}
	assertLiveSet(t, g,
		NewPosition(3, 2),
		NewPosition(4, 3),
		NewPosition(2, 4), NewPosition(3, 4), NewPosition(4, 4),
	)
}

func TestPatternsClipAtEdge(t *testing.T) {
	g := NewGrid(4)
	if placed := AddGlider(g, NewPosition(2, 1)); placed != 3 {
		t.Fatalf("AddGlider placed %d cells, want 3", placed)
	}
	assertLiveSet(t, g, NewPosition(3, 1), NewPosition(2, 3), NewPosition(3, 3))

	g.Clear()
	if placed := AddBlinker(g, NewPosition(-1, 0)); placed != 2 {
		t.Fatalf("AddBlinker placed %d cells, want 2", placed)
	}
	assertLiveSet(t, g, NewPosition(0, 0), NewPosition(1, 0))
}
