package touchinput

// Injector is a Source of synthetic pointer samples. Each pointer id has its
// own queue; every frame AppendSamples pops at most one sample per id, in id
// order, so a press and its release always land on different frames.
//
// Positions are screen coordinates, exactly like real input.
type Injector struct {
	// DeltaTime is reported on every non-Began sample. Zero means 1/60.
	DeltaTime float64

	queues [MaxPointers][]PointerSample
	tail   [MaxPointers]Vec3
}

// NewInjector creates an empty injector.
func NewInjector() *Injector {
	return &Injector{}
}

func (in *Injector) push(id int, s PointerSample) {
	if !validPointerID(id) {
		return
	}
	s.ID = id
	in.queues[id] = append(in.queues[id], s)
	in.tail[id] = s.Position
}

// InjectPress queues a Began sample for pointer id at (x, y).
func (in *Injector) InjectPress(id int, x, y float64) {
	in.push(id, PointerSample{Position: Vec3{X: x, Y: y}, Phase: PhaseBegan, TapCount: 1})
}

// InjectMove queues a Moved sample, or Stationary if (x, y) equals the
// previous queued position.
func (in *Injector) InjectMove(id int, x, y float64) {
	if !validPointerID(id) {
		return
	}
	pos := Vec3{X: x, Y: y}
	s := PointerSample{Position: pos, Phase: PhaseStationary, TapCount: 1}
	if pos != in.tail[id] {
		s.Phase = PhaseMoved
		s.DeltaPosition = pos.Sub(in.tail[id])
	}
	in.push(id, s)
}

// InjectHold queues frames Stationary samples at the previous queued position.
func (in *Injector) InjectHold(id, frames int) {
	if !validPointerID(id) {
		return
	}
	for i := 0; i < frames; i++ {
		in.push(id, PointerSample{Position: in.tail[id], Phase: PhaseStationary, TapCount: 1})
	}
}

// InjectRelease queues an Ended sample for pointer id at (x, y).
func (in *Injector) InjectRelease(id int, x, y float64) {
	if !validPointerID(id) {
		return
	}
	pos := Vec3{X: x, Y: y}
	in.push(id, PointerSample{
		Position: pos, DeltaPosition: pos.Sub(in.tail[id]), Phase: PhaseEnded, TapCount: 1,
	})
}

// InjectCancel queues a Canceled sample at the previous queued position.
func (in *Injector) InjectCancel(id int) {
	if !validPointerID(id) {
		return
	}
	in.push(id, PointerSample{Position: in.tail[id], Phase: PhaseCanceled})
}

// InjectTap queues a press followed by a release at the same point.
// Consumes two frames.
func (in *Injector) InjectTap(id int, x, y float64) {
	in.InjectPress(id, x, y)
	in.InjectRelease(id, x, y)
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY),
// linearly interpolated moves over frames-2 intermediate frames, and
// release at (toX, toY). The total sequence consumes frames frames.
// Minimum frames is 2 (press + release).
func (in *Injector) InjectDrag(id int, fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	in.InjectPress(id, fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		in.InjectMove(id, fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	in.InjectRelease(id, toX, toY)
}

// Pending returns the number of queued samples across all pointers.
func (in *Injector) Pending() int {
	n := 0
	for i := range in.queues {
		n += len(in.queues[i])
	}
	return n
}

// AppendSamples implements Source.
func (in *Injector) AppendSamples(dst []PointerSample) []PointerSample {
	dt := in.DeltaTime
	if dt == 0 {
		dt = 1.0 / 60
	}
	for id := range in.queues {
		q := in.queues[id]
		if len(q) == 0 {
			continue
		}
		s := q[0]
		copy(q, q[1:])
		in.queues[id] = q[:len(q)-1]
		if s.Phase != PhaseBegan {
			s.DeltaTime = dt
		}
		dst = append(dst, s)
	}
	return dst
}
