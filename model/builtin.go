package model

import (
	"math/rand"
	"slices"
	"strings"
)

var builtinPatterns = map[string][]string{
	"blinker": {
		"     ",
		"  •  ",
		"  •  ",
		"  •  ",
		"     ",
	},
	"glider": {
		"        ",
		"  •     ",
		"   •    ",
		" •••    ",
		"        ",
		"        ",
		"        ",
		"        ",
	},
	"beacon": {
		"      ",
		" ••   ",
		" ••   ",
		"   •• ",
		"   •• ",
		"      ",
	},
	"block": {
		"    ",
		" •• ",
		" •• ",
		"    ",
	},
	"beehive": {
		"      ",
		"  ••  ",
		" •  • ",
		"  ••  ",
		"      ",
	},
}

// Builtin returns a new board holding the named pattern
func Builtin(name string) (*Board, bool) {
	lines, ok := builtinPatterns[strings.ToLower(name)]
	if !ok {
		return nil, false
	}
	return ParseLines(lines, DefaultAliveGlyph), true
}

// BuiltinNames lists the available pattern names in order
func BuiltinNames() []string {
	names := make([]string, 0, len(builtinPatterns))
	for name := range builtinPatterns {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Randomize creates a rectangular board where each cell is alive with the given probability
func Randomize(width, height int, density float64, rng *rand.Rand) *Board {
	b := NewEmptyBoard(width, height)
	for y := range b.cells {
		for x := range b.cells[y] {
			b.cells[y][x] = rng.Float64() < density
		}
	}
	return b
}
