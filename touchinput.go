package touchinput

import (
	"fmt"
	"math"
	"math/bits"
	"strconv"
	"strings"
)

// MaxPointers is the number of pointer slots tracked per TouchInput.
// Samples with an id outside [0, MaxPointers) are dropped.
const MaxPointers = 20

// MouseButtonCount is the number of mouse buttons emulated as pointers.
const MouseButtonCount = 3

// Vec2 is a 2D vector used for hit-shape points and local coordinates.
type Vec2 struct {
	X, Y float64
}

// Vec3 is a 3D vector used for screen positions, ray origins, and directions.
// Screen positions use Z = 0.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Scale returns v * s.
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

// Len returns the Euclidean length of v.
func (v Vec3) Len() float64 { return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z) }

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Phase is the lifecycle stage of a pointer sample.
type Phase uint8

const (
	PhaseBegan      Phase = iota // pointer went down this frame
	PhaseMoved                   // pointer is down and changed position
	PhaseStationary              // pointer is down and did not move
	PhaseEnded                   // pointer was lifted
	PhaseCanceled                // the platform stopped tracking the pointer
)

var phaseNames = [...]string{"began", "moved", "stationary", "ended", "canceled"}

func (p Phase) String() string {
	if int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return "Phase(" + strconv.Itoa(int(p)) + ")"
}

// MarshalText implements encoding.TextMarshaler.
func (p Phase) MarshalText() ([]byte, error) {
	if int(p) >= len(phaseNames) {
		return nil, fmt.Errorf("marshal phase: unknown value %d", p)
	}
	return []byte(phaseNames[p]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Phase) UnmarshalText(text []byte) error {
	s := strings.ToLower(string(text))
	for i, name := range phaseNames {
		if s == name {
			*p = Phase(i)
			return nil
		}
	}
	return fmt.Errorf("unmarshal phase: unknown phase %q", text)
}

// EventType identifies a touch event delivered to listeners.
type EventType uint8

const (
	EventTouchDown       EventType = iota // pointer began over the object
	EventTouchMove                        // owned pointer moved or stayed put
	EventTouchUpAsButton                  // owned pointer lifted over the same object
	EventTouchUp                          // owned pointer lifted anywhere
	EventTouchEnter                       // pointer started hovering the object
	EventTouchExit                        // pointer stopped hovering the object
	eventTypeCount
)

var eventNames = [eventTypeCount]string{
	"onTouchDown", "onTouchMove", "onTouchUpAsButton", "onTouchUp", "onTouchEnter", "onTouchExit",
}

func (e EventType) String() string {
	if e < eventTypeCount {
		return eventNames[e]
	}
	return "EventType(" + strconv.Itoa(int(e)) + ")"
}

// MouseButton identifies a mouse button. Each button is emulated as its own
// pointer whose id equals the button value.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// LayerMask is a bitmask of the 32 object layers. Bit n selects layer n.
type LayerMask uint32

const (
	NoLayers  LayerMask = 0
	AllLayers LayerMask = ^LayerMask(0)
)

// LayerMaskOf returns a mask with the given layers set. Layers outside 0..31
// are ignored.
func LayerMaskOf(layers ...uint8) LayerMask {
	var m LayerMask
	for _, l := range layers {
		if l < 32 {
			m |= 1 << l
		}
	}
	return m
}

// Has reports whether layer is selected by the mask.
func (m LayerMask) Has(layer uint8) bool {
	return layer < 32 && m&(1<<layer) != 0
}

// MarshalText encodes the mask as "all", "none", or a comma separated layer list.
func (m LayerMask) MarshalText() ([]byte, error) {
	switch m {
	case AllLayers:
		return []byte("all"), nil
	case NoLayers:
		return []byte("none"), nil
	}
	parts := make([]string, 0, bits.OnesCount32(uint32(m)))
	for l := 0; l < 32; l++ {
		if m&(1<<l) != 0 {
			parts = append(parts, strconv.Itoa(l))
		}
	}
	return []byte(strings.Join(parts, ",")), nil
}

// UnmarshalText accepts "all", "none", a hex mask ("0x0f"), or a comma
// separated list of layer numbers ("0,3,5").
func (m *LayerMask) UnmarshalText(text []byte) error {
	s := strings.TrimSpace(strings.ToLower(string(text)))
	switch {
	case s == "all" || s == "everything" || s == "-1":
		*m = AllLayers
		return nil
	case s == "none" || s == "nothing" || s == "":
		*m = NoLayers
		return nil
	case strings.HasPrefix(s, "0x"):
		v, err := strconv.ParseUint(s[2:], 16, 32)
		if err != nil {
			return fmt.Errorf("layer mask %q: %w", text, err)
		}
		*m = LayerMask(v)
		return nil
	}
	var out LayerMask
	for _, part := range strings.Split(s, ",") {
		l, err := strconv.ParseUint(strings.TrimSpace(part), 10, 8)
		if err != nil || l > 31 {
			return fmt.Errorf("layer mask %q: invalid layer %q", text, part)
		}
		out |= 1 << l
	}
	*m = out
	return nil
}
