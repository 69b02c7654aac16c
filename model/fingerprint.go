package model

import (
	"crypto/md5"
	"fmt"
)

const (
	cellDead byte = iota
	cellAlive
	rowEnd
)

// Fingerprint returns an MD5 digest of the board's cells and row shape
func Fingerprint(b *Board) string {
	h := md5.New()
	buf := make([]byte, 0, 64)
	for _, row := range b.cells {
		buf = buf[:0]
		for _, alive := range row {
			if alive {
				buf = append(buf, cellAlive)
			} else {
				buf = append(buf, cellDead)
			}
		}
		buf = append(buf, rowEnd)
		h.Write(buf)
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}
