package touchinput

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// EbitenSource polls Ebitengine's mouse and touch state once per frame.
// Mouse buttons are pointers 0..2; touches get ids from MouseButtonCount up.
// Call AppendSamples from the game's Update.
type EbitenSource struct {
	// DisableMouse and DisableTouch skip polling the respective device.
	DisableMouse bool
	DisableTouch bool

	mouse MouseNormalizer
	touch *TouchNormalizer

	ids          []ebiten.TouchID
	justPressed  []ebiten.TouchID
	justReleased []ebiten.TouchID
	released     []touchPoint
	current      []touchPoint
}

// NewEbitenSource creates a source polling both mouse and touch input.
func NewEbitenSource() *EbitenSource {
	return &EbitenSource{touch: NewTouchNormalizer(MouseButtonCount)}
}

// frameDelta returns the duration of one tick in seconds.
func frameDelta() float64 {
	tps := ebiten.TPS()
	if tps <= 0 {
		return 1.0 / float64(ebiten.DefaultTPS)
	}
	return 1.0 / float64(tps)
}

// AppendSamples implements Source.
func (s *EbitenSource) AppendSamples(dst []PointerSample) []PointerSample {
	dt := frameDelta()
	if !s.DisableMouse {
		dst = s.appendMouse(dst, dt)
	}
	if !s.DisableTouch {
		dst = s.appendTouches(dst, dt)
	}
	return dst
}

func (s *EbitenSource) appendMouse(dst []PointerSample, dt float64) []PointerSample {
	mx, my := ebiten.CursorPosition()
	pressed := [MouseButtonCount]bool{
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight),
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle),
	}
	return s.mouse.Normalize(dst, Vec3{X: float64(mx), Y: float64(my)}, pressed, dt)
}

func (s *EbitenSource) appendTouches(dst []PointerSample, dt float64) []PointerSample {
	s.justReleased = inpututil.AppendJustReleasedTouchIDs(s.justReleased[:0])
	s.released = s.released[:0]
	for _, id := range s.justReleased {
		x, y := inpututil.TouchPositionInPreviousTick(id)
		s.released = append(s.released, touchPoint{id: id, x: x, y: y})
	}

	s.justPressed = inpututil.AppendJustPressedTouchIDs(s.justPressed[:0])
	s.ids = ebiten.AppendTouchIDs(s.ids[:0])
	s.current = s.current[:0]
	for _, id := range s.ids {
		x, y := ebiten.TouchPosition(id)
		s.current = append(s.current, touchPoint{id: id, x: x, y: y})
	}

	s.applyTouches(s.released, s.justPressed, s.current)
	return s.touch.Flush(dst, dt)
}

// touchPoint is one touch position read from Ebitengine.
type touchPoint struct {
	id   ebiten.TouchID
	x, y int
}

// applyTouches feeds one tick of touch state to the normalizer: releases
// first, so a freed id can be reused by a touch pressed in the same tick,
// then every current touch as a press or a move.
func (s *EbitenSource) applyTouches(released []touchPoint, justPressed []ebiten.TouchID, current []touchPoint) {
	for _, p := range released {
		s.touch.Release(int64(p.id), Vec3{X: float64(p.x), Y: float64(p.y)})
	}
	for _, p := range current {
		pos := Vec3{X: float64(p.x), Y: float64(p.y)}
		if slices.Contains(justPressed, p.id) {
			s.touch.Press(int64(p.id), pos)
		} else {
			s.touch.Move(int64(p.id), pos)
		}
	}
}
