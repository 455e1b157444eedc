package model

import (
	"io"
	"log"
	"os"
	"os/exec"
	"strings"

	"github.com/sheikhrachel/go-gol-grid/rules"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	clearCmd = "clear"
)

// TerminalRenderer writes generations to a terminal
type TerminalRenderer struct {
	Out   io.Writer
	Block bool // draw double-width blocks instead of the plain glyphs
}

func (r *TerminalRenderer) out() io.Writer {
	if r.Out == nil {
		return os.Stdout
	}
	return r.Out
}

// Display renders the grid
func (r *TerminalRenderer) Display(g *Grid) error {
	if !r.Block {
		_, err := io.WriteString(r.out(), g.String())
		return err
	}

	var sb strings.Builder
	for x := 0; x < g.Len(); x++ {
		for y := 0; y < g.Len(); y++ {
			if g.StateOrDead(Coord{X: x, Y: y}) == rules.Alive {
				sb.WriteString(gridPosBlock)
			} else {
				sb.WriteString(gridPosEmpty)
			}
		}
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(r.out(), sb.String())
	return err
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	cmd := exec.Command(clearCmd)
	cmd.Stdout = r.out()
	if err := cmd.Run(); err != nil {
		log.Printf("error clearing terminal: %v", err)
	}
}
