package model

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/exec"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	macosClearCmd = "clear"
)

// TerminalRenderer draws each generation as text. It implements Observer.
type TerminalRenderer struct {
	Out io.Writer
	// ClearScreen clears the terminal before every frame
	ClearScreen bool
}

// NewTerminalRenderer returns a renderer writing to out, or stdout if out is nil
func NewTerminalRenderer(out io.Writer, clearScreen bool) *TerminalRenderer {
	if out == nil {
		out = os.Stdout
	}
	return &TerminalRenderer{Out: out, ClearScreen: clearScreen}
}

// OnGeneration renders the generation header followed by the grid
func (r *TerminalRenderer) OnGeneration(gen Generation) {
	if r.ClearScreen {
		r.Clear()
	}
	fmt.Fprintf(r.Out, "Gen: %d | Living: %d | Born: %d | Died: %d\n",
		gen.Number, gen.Grid.CountLivingCells(), len(gen.Born), len(gen.Died))
	r.Display(gen.Grid)
}

// Display renders the grid to the terminal
func (r *TerminalRenderer) Display(g *Grid) {
	w := bufio.NewWriter(r.Out)
	for y := range g.height {
		for x := range g.width {
			if g.Get(x, y) {
				w.WriteString(gridPosBlock)
			} else {
				w.WriteString(gridPosEmpty)
			}
		}
		w.WriteByte('\n')
	}
	if err := w.Flush(); err != nil {
		fmt.Fprintln(os.Stderr, "Error rendering grid:", err)
	}
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	cmd := exec.Command(macosClearCmd)
	cmd.Stdout = r.Out
	if err := cmd.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error clearing terminal:", err)
	}
}
