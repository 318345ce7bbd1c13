// Package gioinput adapts Gio pointer events to touchinput samples.
//
// Forward every pointer.Event a frame delivers to [Source.Event], then let
// TouchInput.Update collect them:
//
//	src := gioinput.New()
//	input.AddSource(src)
//	...
//	for {
//		ev, ok := gtx.Event(pointer.Filter{Target: tag, Kinds: pointer.Press | pointer.Drag | pointer.Release | pointer.Cancel | pointer.Move})
//		if !ok {
//			break
//		}
//		if e, ok := ev.(pointer.Event); ok {
//			src.Event(e)
//		}
//	}
//	input.Update()
package gioinput

import (
	"time"

	"gioui.org/io/pointer"

	"github.com/phanxgames/touchinput"
)

// DefaultDeltaTime is reported when event timestamps give no frame duration.
const DefaultDeltaTime = 1.0 / 60

var buttonMasks = [touchinput.MouseButtonCount]pointer.Buttons{
	pointer.ButtonPrimary,
	pointer.ButtonSecondary,
	pointer.ButtonTertiary,
}

// Source buffers Gio pointer events between frames. Mouse buttons become
// pointers 0..2 and touches get ids from touchinput.MouseButtonCount up, the
// same layout as touchinput.EbitenSource.
type Source struct {
	mouse   touchinput.MouseNormalizer
	touch   *touchinput.TouchNormalizer
	pending []touchinput.PointerSample

	mousePos touchinput.Vec3
	buttons  pointer.Buttons
	edged    bool
	edgePos  touchinput.Vec3

	lastEvent time.Duration
	lastFlush time.Duration
}

// New creates an empty source.
func New() *Source {
	return &Source{touch: touchinput.NewTouchNormalizer(touchinput.MouseButtonCount)}
}

func pressedSet(b pointer.Buttons) [touchinput.MouseButtonCount]bool {
	var out [touchinput.MouseButtonCount]bool
	for i, m := range buttonMasks {
		out[i] = b.Contain(m)
	}
	return out
}

// Event records one Gio pointer event. A Cancel releases every held button
// and touch. Scroll, Enter and Leave are ignored.
func (s *Source) Event(e pointer.Event) {
	if e.Time > s.lastEvent {
		s.lastEvent = e.Time
	}
	// The router cancels with a bare event that names no pointer or
	// source, and sends no release afterwards.
	if e.Kind == pointer.Cancel {
		s.pending = s.mouse.Cancel(s.pending)
		s.buttons = 0
		s.edged = false
		s.touch.CancelAll()
		return
	}
	pos := touchinput.Vec3{X: float64(e.Position.X), Y: float64(e.Position.Y)}
	if e.Source == pointer.Touch {
		s.touchEvent(e, pos)
		return
	}

	switch e.Kind {
	case pointer.Press, pointer.Release, pointer.Drag, pointer.Move:
	default:
		return
	}
	s.mousePos = pos
	if e.Buttons == s.buttons {
		return
	}
	// Button edges are normalized as they arrive so a press and release
	// within one frame are both seen.
	s.buttons = e.Buttons
	s.pending = s.mouse.Normalize(s.pending, pos, pressedSet(e.Buttons), 0)
	s.edged = true
	s.edgePos = pos
}

func (s *Source) touchEvent(e pointer.Event, pos touchinput.Vec3) {
	id := int64(e.PointerID)
	switch e.Kind {
	case pointer.Press:
		s.touch.Press(id, pos)
	case pointer.Drag, pointer.Move:
		s.touch.Move(id, pos)
	case pointer.Release:
		s.touch.Release(id, pos)
	}
}

func (s *Source) frameDelta() float64 {
	if s.lastFlush == 0 || s.lastEvent <= s.lastFlush {
		return DefaultDeltaTime
	}
	return (s.lastEvent - s.lastFlush).Seconds()
}

// AppendSamples implements touchinput.Source.
func (s *Source) AppendSamples(dst []touchinput.PointerSample) []touchinput.PointerSample {
	dt := s.frameDelta()
	s.lastFlush = s.lastEvent

	for _, sm := range s.pending {
		if sm.Phase != touchinput.PhaseBegan {
			sm.DeltaTime = dt
		}
		dst = append(dst, sm)
	}
	s.pending = s.pending[:0]

	if !s.edged || s.mousePos != s.edgePos {
		dst = s.mouse.Normalize(dst, s.mousePos, pressedSet(s.buttons), dt)
	}
	s.edged = false

	return s.touch.Flush(dst, dt)
}
