package touchinput

import (
	"encoding/json"
	"testing"
)

func TestLayerMaskOf(t *testing.T) {
	tests := []struct {
		name   string
		layers []uint8
		want   LayerMask
	}{
		{"none", nil, NoLayers},
		{"single", []uint8{0}, 1},
		{"several", []uint8{1, 3, 31}, 1<<1 | 1<<3 | 1<<31},
		{"out of range ignored", []uint8{2, 32, 200}, 1 << 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LayerMaskOf(tt.layers...); got != tt.want {
				t.Errorf("LayerMaskOf(%v) = %#x, want %#x", tt.layers, got, tt.want)
			}
		})
	}
}

func TestLayerMaskHas(t *testing.T) {
	m := LayerMaskOf(4)
	if !m.Has(4) || m.Has(5) {
		t.Errorf("Has: got (4)=%v (5)=%v", m.Has(4), m.Has(5))
	}
	if AllLayers.Has(32) {
		t.Error("AllLayers.Has(32) = true, want false")
	}
	if NoLayers.Has(0) {
		t.Error("NoLayers.Has(0) = true")
	}
}

func TestLayerMaskText(t *testing.T) {
	tests := []struct {
		text string
		want LayerMask
	}{
		{"all", AllLayers},
		{"Everything", AllLayers},
		{"-1", AllLayers},
		{"none", NoLayers},
		{"", NoLayers},
		{"0x0f", 0x0f},
		{"0,3, 5", LayerMaskOf(0, 3, 5)},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			var m LayerMask
			if err := m.UnmarshalText([]byte(tt.text)); err != nil {
				t.Fatal(err)
			}
			if m != tt.want {
				t.Errorf("UnmarshalText(%q) = %#x, want %#x", tt.text, m, tt.want)
			}
		})
	}

	for _, bad := range []string{"32", "a,b", "0xzz", "1,,2"} {
		var m LayerMask
		if err := m.UnmarshalText([]byte(bad)); err == nil {
			t.Errorf("UnmarshalText(%q) should fail", bad)
		}
	}

	for _, m := range []LayerMask{AllLayers, NoLayers, LayerMaskOf(2, 7)} {
		text, err := m.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var back LayerMask
		if err := back.UnmarshalText(text); err != nil || back != m {
			t.Errorf("%#x -> %q -> %#x (%v)", m, text, back, err)
		}
	}
}

func TestPhaseText(t *testing.T) {
	for p := PhaseBegan; p <= PhaseCanceled; p++ {
		text, err := p.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		if string(text) != p.String() {
			t.Errorf("MarshalText = %q, String = %q", text, p.String())
		}
		var back Phase
		if err := back.UnmarshalText(text); err != nil || back != p {
			t.Errorf("UnmarshalText(%q) = %v, %v", text, back, err)
		}
	}
	if _, err := Phase(9).MarshalText(); err == nil {
		t.Error("MarshalText of unknown phase should fail")
	}
	if got := Phase(9).String(); got != "Phase(9)" {
		t.Errorf("String = %q", got)
	}

	var s struct{ P Phase }
	if err := json.Unmarshal([]byte(`{"P":"Ended"}`), &s); err != nil || s.P != PhaseEnded {
		t.Errorf("json phase = %v, %v", s.P, err)
	}
}

func TestEventTypeString(t *testing.T) {
	tests := []struct {
		e    EventType
		want string
	}{
		{EventTouchDown, "onTouchDown"},
		{EventTouchMove, "onTouchMove"},
		{EventTouchUpAsButton, "onTouchUpAsButton"},
		{EventTouchUp, "onTouchUp"},
		{EventTouchEnter, "onTouchEnter"},
		{EventTouchExit, "onTouchExit"},
		{EventType(42), "EventType(42)"},
	}
	for _, tt := range tests {
		if got := tt.e.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestVec3(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, 6, 3}
	if got := b.Sub(a); got != (Vec3{3, 4, 0}) {
		t.Errorf("Sub = %v", got)
	}
	if got := b.Sub(a).Len(); got != 5 {
		t.Errorf("Len = %v, want 5", got)
	}
	if got := a.Add(b).Scale(2); got != (Vec3{10, 16, 12}) {
		t.Errorf("Add.Scale = %v", got)
	}
	r := Ray{Origin: a, Direction: Vec3{Z: 1}}
	if got := r.At(2); got != (Vec3{1, 2, 5}) {
		t.Errorf("At = %v", got)
	}
}
