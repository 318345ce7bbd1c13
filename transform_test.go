package touchinput

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertMatrix(t *testing.T, name string, got, want [6]float64) {
	t.Helper()
	for i := range got {
		if math.Abs(got[i]-want[i]) > epsilon {
			t.Errorf("%s[%d] = %v, want %v (full: %v vs %v)", name, i, got[i], want[i], got, want)
		}
	}
}

// --- computeLocalTransform ---

func TestLocalTransform(t *testing.T) {
	tests := []struct {
		name  string
		setup func(o *Object)
		want  [6]float64
	}{
		{"identity", func(o *Object) {}, [6]float64{1, 0, 0, 1, 0, 0}},
		{"translation", func(o *Object) { o.X, o.Y = 10, 20 }, [6]float64{1, 0, 0, 1, 10, 20}},
		{"scale", func(o *Object) { o.ScaleX, o.ScaleY = 2, 3 }, [6]float64{2, 0, 0, 3, 0, 0}},
		// cos(90)=0, sin(90)=1 → a=0, b=1, c=-1, d=0
		{"rot90", func(o *Object) { o.Rotation = math.Pi / 2 }, [6]float64{0, 1, -1, 0, 0, 0}},
		{"pivot", func(o *Object) { o.X, o.Y, o.PivotX, o.PivotY = 100, 100, 10, 20 }, [6]float64{1, 0, 0, 1, 90, 80}},
		{"scaled pivot", func(o *Object) { o.ScaleX, o.ScaleY, o.PivotX, o.PivotY = 2, 2, 5, 5 }, [6]float64{2, 0, 0, 2, -10, -10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := NewObject("test")
			tt.setup(o)
			assertMatrix(t, tt.name, computeLocalTransform(o), tt.want)
		})
	}
}

// --- multiplyAffine / invertAffine ---

func TestMultiplyAffineIdentity(t *testing.T) {
	m := [6]float64{2, 1, -1, 3, 5, 7}
	assertMatrix(t, "I*m", multiplyAffine(identityTransform, m), m)
	assertMatrix(t, "m*I", multiplyAffine(m, identityTransform), m)
}

func TestMultiplyAffineTranslations(t *testing.T) {
	a := [6]float64{1, 0, 0, 1, 10, 20}
	b := [6]float64{1, 0, 0, 1, 5, 7}
	assertMatrix(t, "a*b", multiplyAffine(a, b), [6]float64{1, 0, 0, 1, 15, 27})
}

func TestInvertAffineComplex(t *testing.T) {
	o := NewObject("test")
	o.X, o.Y = 30, -12
	o.ScaleX, o.ScaleY = 1.5, 0.5
	o.Rotation = 0.7
	m := computeLocalTransform(o)
	assertMatrix(t, "m*inv(m)", multiplyAffine(m, invertAffine(m)), identityTransform)
}

func TestInvertAffineSingularReturnsIdentity(t *testing.T) {
	// ScaleX=0 produces a singular matrix (determinant=0).
	assertMatrix(t, "singular→identity", invertAffine([6]float64{0, 0, 0, 1, 10, 20}), identityTransform)
	assertMatrix(t, "zero-scale→identity", invertAffine([6]float64{0, 0, 0, 0, 50, 100}), identityTransform)
}

// --- updateWorldTransform ---

func TestWorldTransformParentChild(t *testing.T) {
	parent := NewObject("parent")
	child := NewObject("child")
	parent.AddChild(child)

	parent.X = 100
	child.X = 10
	updateWorldTransform(parent, identityTransform, 0, false)

	assertNear(t, "parent.tx", parent.worldTransform[4], 100)
	assertNear(t, "child.tx", child.worldTransform[4], 110)
}

func TestWorldZAccumulates(t *testing.T) {
	parent := NewObject("parent")
	child := NewObject("child")
	parent.AddChild(child)

	parent.SetDepth(2)
	child.SetDepth(3)
	updateWorldTransform(parent, identityTransform, 1, false)

	assertNear(t, "parent.WorldZ", parent.WorldZ(), 3)
	assertNear(t, "child.WorldZ", child.WorldZ(), 6)
}

func TestDirtyFlagSkipsClean(t *testing.T) {
	parent := NewObject("parent")
	child := NewObject("child")
	parent.AddChild(child)

	parent.X = 100
	child.X = 10
	updateWorldTransform(parent, identityTransform, 0, false)

	// Change child X directly (no setter → stays clean).
	child.X = 999
	updateWorldTransform(parent, identityTransform, 0, false)

	assertNear(t, "child.tx (stale)", child.worldTransform[4], 110)
}

func TestDirtyFlagRecomputes(t *testing.T) {
	parent := NewObject("parent")
	child := NewObject("child")
	parent.AddChild(child)

	parent.X = 100
	child.X = 10
	updateWorldTransform(parent, identityTransform, 0, false)

	child.SetPosition(20, 0)
	updateWorldTransform(parent, identityTransform, 0, false)

	assertNear(t, "child.tx (updated)", child.worldTransform[4], 120)
}

func TestParentRecomputedPropagates(t *testing.T) {
	parent := NewObject("parent")
	child := NewObject("child")
	parent.AddChild(child)

	parent.X = 100
	child.X = 10
	updateWorldTransform(parent, identityTransform, 0, false)

	// Child is not dirty itself but must follow its parent.
	parent.SetPosition(200, 0)
	updateWorldTransform(parent, identityTransform, 0, false)

	assertNear(t, "child.tx (from parent)", child.worldTransform[4], 210)
}

func TestDeepHierarchy(t *testing.T) {
	objs := make([]*Object, 10)
	for i := range objs {
		objs[i] = NewObject("")
		objs[i].X = 10
		if i > 0 {
			objs[i-1].AddChild(objs[i])
		}
	}
	updateWorldTransform(objs[0], identityTransform, 0, false)

	// Each level adds 10 to tx.
	assertNear(t, "deep.tx", objs[9].worldTransform[4], 100)
}

// --- WorldToLocal / LocalToWorld ---

func TestWorldToLocalRoundtrip(t *testing.T) {
	parent := NewObject("parent")
	child := NewObject("child")
	parent.AddChild(child)

	parent.X, parent.Y = 100, 50
	child.X, child.Y = 10, 20
	child.ScaleX, child.ScaleY = 2, 3
	child.Rotation = math.Pi / 6
	updateWorldTransform(parent, identityTransform, 0, false)

	wx, wy := 150.0, 80.0
	lx, ly := child.WorldToLocal(wx, wy)
	wx2, wy2 := child.LocalToWorld(lx, ly)
	assertNear(t, "roundtrip.x", wx2, wx)
	assertNear(t, "roundtrip.y", wy2, wy)
}

func TestWorldToLocalZeroScale(t *testing.T) {
	o := NewObject("test")
	o.ScaleX, o.ScaleY = 0, 0
	updateWorldTransform(o, identityTransform, 0, true)

	// Degenerate transforms fall back to identity instead of producing NaN.
	lx, ly := o.WorldToLocal(100, 200)
	if math.IsNaN(lx) || math.IsNaN(ly) {
		t.Errorf("WorldToLocal = (%v,%v), want finite", lx, ly)
	}
}

// --- Setters ---

func TestSettersDirty(t *testing.T) {
	setters := []struct {
		name string
		fn   func(o *Object)
	}{
		{"SetPosition", func(o *Object) { o.SetPosition(1, 2) }},
		{"SetDepth", func(o *Object) { o.SetDepth(3) }},
		{"SetScale", func(o *Object) { o.SetScale(2, 2) }},
		{"SetRotation", func(o *Object) { o.SetRotation(1) }},
		{"SetPivot", func(o *Object) { o.SetPivot(5, 5) }},
		{"MarkDirty", func(o *Object) { o.MarkDirty() }},
	}
	for _, s := range setters {
		o := NewObject("test")
		o.transformDirty = false
		s.fn(o)
		if !o.transformDirty {
			t.Errorf("%s should set dirty", s.name)
		}
	}
}
