package model

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	ansiClearScreen = "\033[H\033[2J"
)

// TerminalRenderer implements basic terminal rendering
type TerminalRenderer struct {
	Out   io.Writer
	Alive string
	Dead  string
}

// NewTerminalRenderer returns a renderer writing block glyphs to stdout
func NewTerminalRenderer() *TerminalRenderer {
	return &TerminalRenderer{Out: os.Stdout, Alive: gridPosBlock, Dead: gridPosEmpty}
}

// Display renders the board, one line per row
func (r *TerminalRenderer) Display(b *Board) error {
	var sb strings.Builder
	for _, row := range b.cells {
		for _, alive := range row {
			if alive {
				sb.WriteString(r.Alive)
			} else {
				sb.WriteString(r.Dead)
			}
		}
		sb.WriteByte('\n')
	}
	if _, err := io.WriteString(r.Out, sb.String()); err != nil {
		return errors.Wrap(err, "[Display] failed to write board")
	}
	return nil
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() error {
	if _, err := fmt.Fprint(r.Out, ansiClearScreen); err != nil {
		return errors.Wrap(err, "[Clear] failed to clear terminal")
	}
	return nil
}
