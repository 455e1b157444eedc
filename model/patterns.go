package model

import (
	"math/rand"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-grid/rules"
)

// Pattern names accepted by Seed
const (
	PatternGapLine = "gap-line"
	PatternGlider  = "glider"
	PatternBlinker = "blinker"
	PatternBlock   = "block"
	PatternRandom  = "random"
	PatternMixed   = "mixed"
)

// ErrUnknownPattern is returned by Seed for unrecognised pattern names
var ErrUnknownPattern = errors.New("unknown pattern")

// Patterns lists every pattern name accepted by Seed
func Patterns() []string {
	return []string{PatternGapLine, PatternGlider, PatternBlinker, PatternBlock, PatternRandom, PatternMixed}
}

func (g *Grid) stamp(origin Coord, pattern [][]bool) {
	for y, row := range pattern {
		for x, cell := range row {
			s := rules.Dead
			if cell {
				s = rules.Alive
			}
			g.Set(origin.Add(Coord{X: x, Y: y}), s)
		}
	}
}

// AddGlider adds a glider pattern with its top-left corner at origin
func (g *Grid) AddGlider(origin Coord) {
	g.stamp(origin, [][]bool{
		{false, true, false},
		{false, false, true},
		{true, true, true},
	})
}

// AddBlinker adds a horizontal blinker oscillator
func (g *Grid) AddBlinker(origin Coord) {
	g.stamp(origin, [][]bool{{true, true, true}})
}

// AddBlock adds a 2x2 still life
func (g *Grid) AddBlock(origin Coord) {
	g.stamp(origin, [][]bool{
		{true, true},
		{true, true},
	})
}

// AddGapLine fills row y with living cells except for the middle column
func (g *Grid) AddGapLine(y int) {
	for x := 0; x < g.length; x++ {
		if x == g.length/2 {
			continue
		}
		g.Set(Coord{X: x, Y: y}, rules.Alive)
	}
}

// Randomize brings cells to life with the given probability. A nil rng
// uses a time seeded source.
func (g *Grid) Randomize(rng *rand.Rand, density float64) {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	for i := range g.cells {
		if rng.Float64() < density {
			g.cells[i] = rules.Alive
		}
	}
}

// Seed stamps the named pattern onto g. rng may be nil, see Randomize.
func Seed(g *Grid, pattern string, rng *rand.Rand, density float64) error {
	n := g.Len()
	switch pattern {
	case PatternGapLine:
		g.AddGapLine(n / 2)
	case PatternGlider:
		g.AddGlider(Coord{X: 1, Y: 1})
	case PatternBlinker:
		g.AddBlinker(Coord{X: n/2 - 1, Y: n / 2})
	case PatternBlock:
		g.AddBlock(Coord{X: n/2 - 1, Y: n/2 - 1})
	case PatternRandom:
		g.Randomize(rng, density)
	case PatternMixed:
		if n >= 10 {
			g.AddGlider(Coord{X: 5, Y: 5})
			if n >= 20 {
				g.AddGlider(Coord{X: n - 8, Y: 5})
			}
			g.AddBlinker(Coord{X: n / 4, Y: n / 4})
			if n >= 30 {
				g.AddBlinker(Coord{X: 3 * n / 4, Y: 3 * n / 4})
			}
		}
		g.Randomize(rng, density)
	default:
		return errors.Wrapf(ErrUnknownPattern, "[Seed] %q", pattern)
	}
	return nil
}
