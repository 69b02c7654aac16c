package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFingerprint(t *testing.T) {
	blinker := newGame(" • ", " • ", " • ")

	assert.Equal(t, Fingerprint(blinker), Fingerprint(blinker.Next().Next()))
	assert.NotEqual(t, Fingerprint(blinker), Fingerprint(blinker.Next()))
	assert.Len(t, Fingerprint(newGame()), 32)
}

func TestFingerprint_DistinguishesRowShape(t *testing.T) {
	a := NewBoard([][]bool{{true, false}, {true}})
	b := NewBoard([][]bool{{true}, {false, true}})

	assert.NotEqual(t, Fingerprint(a), Fingerprint(b))
}
