package model

// DefaultHistorySize is how many recent generations are kept for cycle detection
const DefaultHistorySize = 5

// History remembers the hashes of the most recent generations
type History struct {
	size   int
	hashes []string
}

func NewHistory(size int) *History {
	if size <= 0 {
		size = DefaultHistorySize
	}
	return &History{size: size, hashes: make([]string, 0, size)}
}

// Push records g as the newest generation
func (h *History) Push(g *Grid) {
	h.hashes = append(h.hashes, g.Hash())

	if len(h.hashes) > h.size {
		h.hashes = h.hashes[1:]
	}
}

// Period returns k when g matches the generation pushed k steps ago, or 0
func (h *History) Period(g *Grid) int {
	hash := g.Hash()
	for k := 1; k <= len(h.hashes); k++ {
		if h.hashes[len(h.hashes)-k] == hash {
			return k
		}
	}
	return 0
}

// Len returns the number of remembered generations
func (h *History) Len() int {
	return len(h.hashes)
}
