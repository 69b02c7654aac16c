package utils

// History remembers the fingerprints of recent generations to detect cycles
type History struct {
	size   int
	hashes []string
}

// NewHistory keeps at most size fingerprints
func NewHistory(size int) *History {
	return &History{size: max(size, 1)}
}

// Observe records a fingerprint. When it equals one seen within the window it
// returns the distance back to it: 1 for a still life, 2 for a blinker.
func (h *History) Observe(hash string) (period int, ok bool) {
	for i := len(h.hashes) - 1; i >= 0; i-- {
		if h.hashes[i] == hash {
			period, ok = len(h.hashes)-i, true
			break
		}
	}

	h.hashes = append(h.hashes, hash)
	// Keep only the last size states
	if len(h.hashes) > h.size {
		h.hashes = h.hashes[1:]
	}
	return
}

// Len returns the number of remembered fingerprints
func (h *History) Len() int {
	return len(h.hashes)
}

// Reset forgets every fingerprint
func (h *History) Reset() {
	h.hashes = nil
}
