package model

import (
	"crypto/md5"
	"fmt"
	"log"
	"runtime"
	"slices"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-gol-grid/rules"
)

// MaxLength is the largest supported side length
const MaxLength = 1 << 15

// ErrInvalidLength is returned for side lengths outside [0, MaxLength]
var ErrInvalidLength = errors.New("invalid grid length")

// Grid is one generation of an N x N universe. Everything outside the
// square is permanently dead.
type Grid struct {
	length int
	cells  []rules.State // row-major, index y*length+x
}

// ValidateLength reports whether length can be used to build a grid
func ValidateLength(length int) error {
	if length < 0 {
		return errors.Wrapf(ErrInvalidLength, "[ValidateLength] length must not be negative, got %d", length)
	}
	if length > MaxLength {
		return errors.Wrapf(ErrInvalidLength, "[ValidateLength] length must not exceed %d, got %d", MaxLength, length)
	}
	return nil
}

// NewGrid creates a grid with every cell dead. A zero length yields an
// empty grid; a length outside [0, MaxLength] is a programming error and panics.
func NewGrid(length int) *Grid {
	if err := ValidateLength(length); err != nil {
		panic(err)
	}
	return &Grid{
		length: length,
		cells:  make([]rules.State, length*length),
	}
}

// Len returns the side length of the grid
func (g *Grid) Len() int {
	return g.length
}

// Size returns the number of tracked cells
func (g *Grid) Size() int {
	return len(g.cells)
}

func (g *Grid) inBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.length && c.Y >= 0 && c.Y < g.length
}

func (g *Grid) index(c Coord) int {
	return c.Y*g.length + c.X
}

// State returns the state of the cell at c, and false if c is off the grid
func (g *Grid) State(c Coord) (rules.State, bool) {
	if !g.inBounds(c) {
		return rules.Dead, false
	}
	return g.cells[g.index(c)], true
}

// StateOrDead returns the state at c, treating off-grid cells as dead
func (g *Grid) StateOrDead(c Coord) rules.State {
	s, _ := g.State(c)
	return s
}

// Set sets the state of the cell at c. Off-grid coordinates are ignored.
func (g *Grid) Set(c Coord, s rules.State) {
	if g.inBounds(c) {
		g.cells[g.index(c)] = s
	}
}

// LiveNeighbors counts the living cells in the Moore neighborhood of c
func (g *Grid) LiveNeighbors(c Coord) uint {
	var count uint
	for _, off := range NeighborOffsets {
		if g.StateOrDead(c.Add(off)) == rules.Alive {
			count++
		}
	}
	return count
}

// NextGeneration returns a new grid holding the following generation.
// The receiver is not modified.
func (g *Grid) NextGeneration() *Grid {
	return g.NextGenerationPool(nil)
}

// NextGenerationPool is NextGeneration drawing the result from pool when
// pool is non-nil
func (g *Grid) NextGenerationPool(pool *GridPool) *Grid {
	next := g.nextGrid(pool)
	if g.length == 0 {
		return next
	}

	var (
		eg            errgroup.Group
		numWorkers    = min(runtime.NumCPU(), g.length)
		rowsPerWorker = (g.length + numWorkers - 1) / numWorkers // Ceiling division
	)

	// Each worker owns a disjoint range of rows in next
	for i := 0; i < numWorkers; i++ {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, g.length)
		)
		if startRow >= g.length {
			break
		}

		eg.Go(func() error {
			for y := startRow; y < endRow; y++ {
				for x := 0; x < g.length; x++ {
					g.stepCell(next, Coord{X: x, Y: y})
				}
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		log.Printf("error in parallel processing: %v", err)
	}

	return next
}

// NextGenerationBounded calculates the next generation only inside the
// bounding box of living cells plus a one cell margin. Cells further out
// have no living neighbors and stay dead.
func (g *Grid) NextGenerationBounded(pool *GridPool) *Grid {
	next := g.nextGrid(pool)

	lo, hi, ok := g.BoundingBox()
	if !ok {
		return next
	}

	for y := max(0, lo.Y-1); y <= min(g.length-1, hi.Y+1); y++ {
		for x := max(0, lo.X-1); x <= min(g.length-1, hi.X+1); x++ {
			g.stepCell(next, Coord{X: x, Y: y})
		}
	}

	return next
}

func (g *Grid) nextGrid(pool *GridPool) *Grid {
	if pool != nil {
		return pool.Get(g.length)
	}
	return NewGrid(g.length)
}

func (g *Grid) stepCell(next *Grid, c Coord) {
	i := g.index(c)
	next.cells[i] = rules.NextState(g.cells[i], g.LiveNeighbors(c))
}

// Equal reports whether both grids have the same length and cell states
func (g *Grid) Equal(o *Grid) bool {
	if g == nil || o == nil {
		return g == o
	}
	return g.length == o.length && slices.Equal(g.cells, o.cells)
}

// Clone returns a deep copy of the grid
func (g *Grid) Clone() *Grid {
	return &Grid{
		length: g.length,
		cells:  slices.Clone(g.cells),
	}
}

// CountAlive returns the total number of living cells
func (g *Grid) CountAlive() (count int) {
	for _, s := range g.cells {
		if s == rules.Alive {
			count++
		}
	}
	return
}

// Alive returns the coordinates of living cells in row-major order
func (g *Grid) Alive() []Coord {
	var alive []Coord
	for i, s := range g.cells {
		if s == rules.Alive {
			alive = append(alive, Coord{X: i % g.length, Y: i / g.length})
		}
	}
	return alive
}

// BoundingBox returns the smallest box containing every living cell.
// ok is false when nothing is alive.
func (g *Grid) BoundingBox() (lo, hi Coord, ok bool) {
	for _, c := range g.Alive() {
		if !ok {
			lo, hi, ok = c, c, true
			continue
		}
		lo.X, lo.Y = min(lo.X, c.X), min(lo.Y, c.Y)
		hi.X, hi.Y = max(hi.X, c.X), max(hi.Y, c.Y)
	}
	return
}

// Hash returns an MD5 digest of the grid state
func (g *Grid) Hash() string {
	h := md5.New()
	fmt.Fprintf(h, "%d:", g.length)
	for _, s := range g.cells {
		h.Write([]byte{byte(s)})
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// String renders one line per x, one glyph per y
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.length * (g.length + 1))
	for x := 0; x < g.length; x++ {
		for y := 0; y < g.length; y++ {
			sb.WriteRune(g.cells[g.index(Coord{X: x, Y: y})].Rune())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (g *Grid) reset(length int) {
	g.length = length
	if cap(g.cells) < length*length {
		g.cells = make([]rules.State, length*length)
		return
	}
	g.cells = g.cells[:length*length]
	clear(g.cells)
}
