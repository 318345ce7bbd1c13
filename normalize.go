package touchinput

// MouseNormalizer turns mouse button levels into up to three independent
// pointer streams, one per button, with ids equal to the MouseButton value.
// The zero value is ready to use.
type MouseNormalizer struct {
	down [MouseButtonCount]bool
	last [MouseButtonCount]Vec3
}

// Normalize appends this frame's samples for each button. pressed holds the
// current level of each button; edges are detected against the previous
// call. A held button yields Stationary when the cursor has not moved since
// its last sample and Moved otherwise.
func (n *MouseNormalizer) Normalize(dst []PointerSample, pos Vec3, pressed [MouseButtonCount]bool, dt float64) []PointerSample {
	for i := 0; i < MouseButtonCount; i++ {
		s := PointerSample{ID: i, Position: pos, DeltaTime: dt, TapCount: 1}
		switch {
		case pressed[i] && !n.down[i]:
			n.down[i] = true
			s.Phase = PhaseBegan
			s.DeltaTime = 0
		case pressed[i]:
			if pos == n.last[i] {
				s.Phase = PhaseStationary
			} else {
				s.Phase = PhaseMoved
				s.DeltaPosition = pos.Sub(n.last[i])
			}
		case n.down[i]:
			n.down[i] = false
			s.Phase = PhaseEnded
			s.DeltaPosition = pos.Sub(n.last[i])
		default:
			continue
		}
		n.last[i] = pos
		dst = append(dst, s)
	}
	return dst
}

// Cancel appends a Canceled sample for every held button and releases them.
func (n *MouseNormalizer) Cancel(dst []PointerSample) []PointerSample {
	for i := 0; i < MouseButtonCount; i++ {
		if !n.down[i] {
			continue
		}
		n.down[i] = false
		dst = append(dst, PointerSample{ID: i, Position: n.last[i], Phase: PhaseCanceled})
	}
	return dst
}

// Held reports whether button is currently down.
func (n *MouseNormalizer) Held(button MouseButton) bool {
	return int(button) < MouseButtonCount && n.down[button]
}

// touchTrack is one pointer id held by a native touch.
type touchTrack struct {
	used   bool
	native int64
	last   Vec3
	seen   bool // had a sample this frame
}

// TouchNormalizer maps platform touch identifiers onto pointer ids and
// buffers one frame of samples. Ids are allocated lowest-free first, from
// Base up to MaxPointers-1. A touch that finds no free id produces samples
// with id -1, which TouchInput drops.
type TouchNormalizer struct {
	Base    int
	tracks  [MaxPointers]touchTrack
	pending []PointerSample
}

// NewTouchNormalizer returns a normalizer allocating ids from base.
func NewTouchNormalizer(base int) *TouchNormalizer {
	return &TouchNormalizer{Base: base}
}

func (n *TouchNormalizer) lookup(native int64) int {
	for i := n.Base; i < MaxPointers; i++ {
		if n.tracks[i].used && n.tracks[i].native == native {
			return i
		}
	}
	return -1
}

func (n *TouchNormalizer) alloc(native int64) int {
	for i := n.Base; i < MaxPointers; i++ {
		if !n.tracks[i].used {
			n.tracks[i] = touchTrack{used: true, native: native}
			return i
		}
	}
	return -1
}

// Press records a new contact. Pressing an already tracked touch is treated
// as a move.
func (n *TouchNormalizer) Press(native int64, pos Vec3) {
	if n.lookup(native) >= 0 {
		n.Move(native, pos)
		return
	}
	id := n.alloc(native)
	if id >= 0 {
		t := &n.tracks[id]
		t.last = pos
		t.seen = true
	}
	n.pending = append(n.pending, PointerSample{ID: id, Position: pos, Phase: PhaseBegan, TapCount: 1})
}

// Move records the current position of a tracked touch: Stationary if it
// equals the previous position, Moved otherwise. Unknown touches are ignored.
func (n *TouchNormalizer) Move(native int64, pos Vec3) {
	id := n.lookup(native)
	if id < 0 {
		return
	}
	t := &n.tracks[id]
	s := PointerSample{ID: id, Position: pos, Phase: PhaseStationary, TapCount: 1}
	if pos != t.last {
		s.Phase = PhaseMoved
		s.DeltaPosition = pos.Sub(t.last)
	}
	t.last = pos
	t.seen = true
	n.pending = append(n.pending, s)
}

// Release ends a tracked touch at pos and frees its id.
func (n *TouchNormalizer) Release(native int64, pos Vec3) {
	id := n.lookup(native)
	if id < 0 {
		return
	}
	t := &n.tracks[id]
	n.pending = append(n.pending, PointerSample{
		ID: id, Position: pos, DeltaPosition: pos.Sub(t.last), Phase: PhaseEnded, TapCount: 1,
	})
	*t = touchTrack{}
}

// Cancel aborts a tracked touch at its last position and frees its id.
func (n *TouchNormalizer) Cancel(native int64) {
	id := n.lookup(native)
	if id < 0 {
		return
	}
	t := &n.tracks[id]
	n.pending = append(n.pending, PointerSample{ID: id, Position: t.last, Phase: PhaseCanceled})
	*t = touchTrack{}
}

// CancelAll aborts every tracked touch, as when the platform drops all
// pointers at once.
func (n *TouchNormalizer) CancelAll() {
	for i := n.Base; i < MaxPointers; i++ {
		t := &n.tracks[i]
		if !t.used {
			continue
		}
		n.pending = append(n.pending, PointerSample{ID: i, Position: t.last, Phase: PhaseCanceled})
		*t = touchTrack{}
	}
}

// Active reports how many touches are being tracked.
func (n *TouchNormalizer) Active() int {
	count := 0
	for i := n.Base; i < MaxPointers; i++ {
		if n.tracks[i].used {
			count++
		}
	}
	return count
}

// Flush appends the buffered samples plus a Stationary sample for every
// tracked touch that had none this frame, then starts a new frame. Every
// sample except Began gets DeltaTime dt.
func (n *TouchNormalizer) Flush(dst []PointerSample, dt float64) []PointerSample {
	for _, s := range n.pending {
		if s.Phase != PhaseBegan {
			s.DeltaTime = dt
		}
		dst = append(dst, s)
	}
	n.pending = n.pending[:0]

	for i := n.Base; i < MaxPointers; i++ {
		t := &n.tracks[i]
		if !t.used {
			continue
		}
		if !t.seen {
			dst = append(dst, PointerSample{
				ID: i, Position: t.last, DeltaTime: dt, Phase: PhaseStationary, TapCount: 1,
			})
		}
		t.seen = false
	}
	return dst
}
