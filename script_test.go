package touchinput

import (
	"strings"
	"testing"
)

func TestLoadScriptErrors(t *testing.T) {
	tests := []struct {
		name string
		json string
		want string
	}{
		{"invalid json", `{`, "parse input script"},
		{"no steps", `{"steps":[]}`, "no steps"},
		{"unknown action", `{"steps":[{"action":"scroll"}]}`, `unknown action "scroll"`},
		{"pointer too high", `{"steps":[{"action":"tap","pointer":20}]}`, "out of range"},
		{"negative pointer", `{"steps":[{"action":"tap","pointer":-1}]}`, "out of range"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadScript([]byte(tt.json), nil)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want it to contain %q", err, tt.want)
			}
		})
	}
}

func TestScriptRunnerFrames(t *testing.T) {
	r, err := LoadScript([]byte(`{"steps":[
		{"action":"tap","x":50,"y":50},
		{"action":"wait","frames":2},
		{"action":"drag","pointer":1,"fromX":50,"fromY":50,"toX":150,"toY":50,"frames":3}
	]}`), nil)
	if err != nil {
		t.Fatal(err)
	}
	if r.Injector() == nil {
		t.Fatal("Injector() = nil")
	}

	var perFrame []int
	for i := 0; i < 50 && !r.Done(); i++ {
		perFrame = append(perFrame, len(r.AppendSamples(nil)))
	}
	// tap (2), wait (2 empty), drag (3)
	want := []int{1, 1, 0, 0, 1, 1, 1}
	if len(perFrame) != len(want) {
		t.Fatalf("frames = %v, want %v", perFrame, want)
	}
	for i := range want {
		if perFrame[i] != want[i] {
			t.Errorf("frame %d: %d samples, want %d", i, perFrame[i], want[i])
		}
	}
}

func TestScriptRunnerDrivesTouchInput(t *testing.T) {
	in, _, rec, _, _ := newFixture(t, DefaultConfig())
	r, err := LoadScript([]byte(`{"steps":[
		{"action":"press","pointer":2,"x":50,"y":50},
		{"action":"hold","pointer":2,"frames":1},
		{"action":"move","pointer":2,"x":150,"y":50},
		{"action":"release","pointer":2,"x":150,"y":50},
		{"action":"press","pointer":3,"x":150,"y":50},
		{"action":"cancel","pointer":3}
	]}`), nil)
	if err != nil {
		t.Fatal(err)
	}
	in.AddSource(r)
	for i := 0; i < 50 && !r.Done(); i++ {
		in.Update()
	}
	if !r.Done() {
		t.Fatal("script did not finish")
	}
	assertEvents(t, rec.take(),
		"onTouchDown:A", "onTouchMove:A", "onTouchMove:A", "onTouchUp:A",
		"onTouchDown:B")
	if obj, _ := in.Owner(3); obj != nil {
		t.Errorf("Owner(3) = %v, want nil after cancel", obj.Name)
	}
}

func TestScriptRunnerUsesGivenInjector(t *testing.T) {
	inj := NewInjector()
	r, err := LoadScript([]byte(`{"steps":[{"action":"tap"}]}`), inj)
	if err != nil {
		t.Fatal(err)
	}
	if r.Injector() != inj {
		t.Error("Injector() is not the one passed to LoadScript")
	}
}
