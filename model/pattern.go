package model

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

const (
	// DefaultAliveGlyph marks a living cell in text art
	DefaultAliveGlyph = '•'
	// DefaultDeadGlyph marks a dead cell in text art
	DefaultDeadGlyph = ' '
	// PlaintextAliveGlyph is the living cell of the plaintext .cells format
	PlaintextAliveGlyph = 'O'

	commentPrefix = "!"
)

// ParseLines builds a board from text art. Every rune equal to alive is a living
// cell, any other rune is dead. Rows keep their own length.
func ParseLines(lines []string, alive rune) *Board {
	cells := make([][]bool, len(lines))
	for i, line := range lines {
		runes := []rune(line)
		cells[i] = make([]bool, len(runes))
		for j, r := range runes {
			cells[i][j] = r == alive
		}
	}
	return &Board{cells: cells}
}

// ParsePattern reads text art line by line, skipping lines starting with "!"
func ParsePattern(r io.Reader, alive rune) (*Board, error) {
	var (
		lines   []string
		scanner = bufio.NewScanner(r)
	)
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if strings.HasPrefix(line, commentPrefix) {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "[ParsePattern] failed to read pattern")
	}
	return ParseLines(lines, alive), nil
}

// LoadPattern parses the pattern stored in a file
func LoadPattern(filename string, alive rune) (*Board, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "[LoadPattern] failed to open file: %+v", filename)
	}
	defer f.Close()

	board, err := ParsePattern(f, alive)
	if err != nil {
		return nil, errors.Wrapf(err, "[LoadPattern] failed to parse file: %+v", filename)
	}
	return board, nil
}

// Format renders a board as text art, one line per row
func Format(b *Board, alive, dead rune) string {
	var sb strings.Builder
	for i, row := range b.cells {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for _, cell := range row {
			if cell {
				sb.WriteRune(alive)
			} else {
				sb.WriteRune(dead)
			}
		}
	}
	return sb.String()
}
