package layer

// Scratch is the int cache shared by the layers of a stack while they compute a grid. Buffers handed out
// by Ints remain valid until the next Reset, after which they are reused. The contents of a fresh buffer
// are undefined; layers overwrite every element they hand back.
//
// A Scratch is not safe for concurrent use. Callers own one per top-level query and Reset it on entry.
type Scratch struct {
	buf  []int
	off  int
	used int
}

// NewScratch returns an empty Scratch.
func NewScratch() *Scratch {
	return &Scratch{}
}

// Ints returns a buffer of n ints.
func (s *Scratch) Ints(n int) []int {
	if s.off+n > len(s.buf) {
		// Buffers handed out earlier keep the old backing array, so growing never invalidates them.
		s.buf = make([]int, max(2*len(s.buf), n, 256))
		s.off = 0
	}
	b := s.buf[s.off : s.off+n : s.off+n]
	s.off += n
	s.used += n
	return b
}

// Reset returns all buffers handed out to the pool.
func (s *Scratch) Reset() {
	s.off, s.used = 0, 0
}

// InUse returns the number of ints handed out since the last Reset.
func (s *Scratch) InUse() int {
	return s.used
}
