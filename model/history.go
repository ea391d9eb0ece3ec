package model

// DefaultHistoryDepth keeps enough generations to catch still lifes and
// oscillators up to period 5.
const DefaultHistoryDepth = 5

// History remembers the hashes of recent generations to detect a grid that
// has settled into a still life or a short cycle.
type History struct {
	depth  int
	hashes []string
}

// NewHistory returns a History holding up to depth hashes; depth < 1 uses DefaultHistoryDepth.
func NewHistory(depth int) *History {
	if depth < 1 {
		depth = DefaultHistoryDepth
	}
	return &History{depth: depth}
}

// Observe reports whether g repeats one of the remembered generations, then records it
func (h *History) Observe(g *Grid) bool {
	current := g.Hash()

	stagnant := false
	for _, hash := range h.hashes {
		if hash == current {
			stagnant = true
			break
		}
	}

	h.hashes = append(h.hashes, current)
	if len(h.hashes) > h.depth {
		h.hashes = h.hashes[1:]
	}
	return stagnant
}

// Len returns the number of remembered generations
func (h *History) Len() int {
	return len(h.hashes)
}

// Reset forgets every remembered generation
func (h *History) Reset() {
	h.hashes = nil
}
