package ecd

// FrameBuilder synthesizes the byte content of successive data frames from a
// distribution list. A single frame buffer is reused across calls.
type FrameBuilder struct {
	distributions []Distribution
	quiescent     byte
	frame         []byte
}

// NewFrameBuilder returns a builder for frames of cellsPerFrame cells.
func NewFrameBuilder(distributions []Distribution, cellsPerFrame int, quiescent byte) *FrameBuilder {
	return &FrameBuilder{
		distributions: distributions,
		quiescent:     quiescent,
		frame:         make([]byte, cellsPerFrame),
	}
}

// Build fills the builder's buffer with the content of data frame n (0-based
// across the whole run) and returns it. Every cell starts quiescent; each
// distribution whose sequence still has a value for frame n writes that value
// into its cell progression, with later distributions winning on overlap.
// The returned slice is overwritten by the next call.
func (b *FrameBuilder) Build(n int) []byte {
	fill(b.frame, b.quiescent)

	for _, d := range b.distributions {
		// a sequence shorter than n has ended; it contributes nothing
		if n >= len(d.Values) {
			continue
		}

		v := d.Values[n]
		for cell := d.First - 1; cell < d.Last; cell += d.Step {
			b.frame[cell] = v
		}
	}

	return b.frame
}

func fill(buf []byte, v byte) {
	for i := range buf {
		buf[i] = v
	}
}
