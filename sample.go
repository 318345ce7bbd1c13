package touchinput

// PointerSample is one normalized pointer reading for one frame.
type PointerSample struct {
	// ID is stable for the lifetime of one contact. Valid ids are
	// 0 <= ID < MaxPointers.
	ID int
	// Position is the screen-space position (Z is normally 0).
	Position Vec3
	// DeltaPosition and DeltaTime are measured from the previous sample with
	// the same ID. Both are zero on the Began sample.
	DeltaPosition Vec3
	DeltaTime     float64
	Phase         Phase
	// TapCount is filled in by the normalizer and passed through untouched.
	TapCount int
}

// Source supplies the pointer samples for one frame. AppendSamples is called
// once per frame by TouchInput.Update and must not block.
type Source interface {
	AppendSamples(dst []PointerSample) []PointerSample
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc func(dst []PointerSample) []PointerSample

// AppendSamples calls f(dst).
func (f SourceFunc) AppendSamples(dst []PointerSample) []PointerSample {
	return f(dst)
}

// validPointerID reports whether id addresses a pointer slot.
func validPointerID(id int) bool {
	return id >= 0 && id < MaxPointers
}
