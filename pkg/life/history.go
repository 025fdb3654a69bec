package life

import (
	"crypto/md5"
	"fmt"
)

// Verdict classifies the latest generation pushed to a History.
type Verdict int

const (
	// Evolving means the generation has not been seen recently.
	Evolving Verdict = iota
	// Extinct means no cell is alive.
	Extinct
	// StillLife means the generation equals the previous one.
	StillLife
	// Cycling means the generation repeats one seen a few steps ago.
	Cycling
)

func (v Verdict) String() string {
	switch v {
	case Extinct:
		return "extinct"
	case StillLife:
		return "still"
	case Cycling:
		return "cycling"
	default:
		return "evolving"
	}
}

// Settled reports whether the board will not produce anything new.
func (v Verdict) Settled() bool { return v != Evolving }

// DefaultHistoryDepth covers every period in the pattern library.
const DefaultHistoryDepth = 5

// History remembers hashes of recent generations to detect boards that died
// out, froze or fell into a short cycle.
type History struct {
	depth  int
	hashes []string
}

// NewHistory keeps the last depth generations. depth <= 0 uses DefaultHistoryDepth.
func NewHistory(depth int) *History {
	if depth <= 0 {
		depth = DefaultHistoryDepth
	}
	return &History{depth: depth}
}

// Reset forgets every recorded generation.
func (h *History) Reset() { h.hashes = h.hashes[:0] }

// Len returns the number of remembered generations.
func (h *History) Len() int { return len(h.hashes) }

// Push records g and classifies it against the remembered generations.
func (h *History) Push(g *Grid) Verdict {
	hash := gridHash(g)
	verdict := Evolving
	switch {
	case g.Population() == 0:
		verdict = Extinct
	case len(h.hashes) > 0 && h.hashes[len(h.hashes)-1] == hash:
		verdict = StillLife
	default:
		for i := len(h.hashes) - 2; i >= 0; i-- {
			if h.hashes[i] == hash {
				verdict = Cycling
				break
			}
		}
	}

	h.hashes = append(h.hashes, hash)
	if len(h.hashes) > h.depth {
		h.hashes = h.hashes[1:]
	}
	return verdict
}

func gridHash(g *Grid) string {
	return fmt.Sprintf("%d:%d:%x", g.maxX, g.maxY, md5.Sum(g.cells))
}
