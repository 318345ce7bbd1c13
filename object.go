package touchinput

import "sort"

// HitShape is a custom hit region in an object's local coordinates.
type HitShape interface {
	Contains(x, y float64) bool
}

// objectIDCounter is a plain counter (no atomic: objects are built and used
// on the game loop goroutine).
var objectIDCounter uint32

func nextObjectID() uint32 {
	objectIDCounter++
	return objectIDCounter
}

// Object is a node of the World's scene tree and the target of touch events.
// Only visible, interactable objects with a HitShape can be hit; objects
// without one act as containers that still pass transforms to children.
type Object struct {
	// Identity
	ID   uint32
	Name string

	// Hierarchy
	Parent         *Object
	children       []*Object
	sortedChildren []*Object
	childrenSorted bool

	// Transform (local). Z is added to the parent's world Z; rays travel
	// along +Z, so a larger Z is farther from a camera.
	X, Y, Z  float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64
	PivotX   float64
	PivotY   float64

	worldTransform [6]float64
	worldZ         float64
	transformDirty bool

	// Interaction
	Visible      bool
	Interactable bool
	// Layer is tested against the hit-test LayerMask (0..31).
	Layer uint8
	// ZIndex orders siblings for painter order; higher is on top.
	ZIndex   int
	HitShape HitShape

	// Metadata
	UserData any
	EntityID uint32

	listeners listenerSet
	disposed  bool
}

// NewObject creates a visible, interactable object with unit scale.
func NewObject(name string) *Object {
	return &Object{
		ID:             nextObjectID(),
		Name:           name,
		ScaleX:         1,
		ScaleY:         1,
		Visible:        true,
		Interactable:   true,
		transformDirty: true,
		childrenSorted: true,
	}
}

// NewHitObject creates an object with the given hit shape.
func NewHitObject(name string, shape HitShape) *Object {
	o := NewObject(name)
	o.HitShape = shape
	return o
}

// AddChild appends child to this object's children, detaching it from any
// previous parent first.
func (o *Object) AddChild(child *Object) {
	if child == nil || child == o {
		return
	}
	if child.Parent != nil {
		child.Parent.RemoveChild(child)
	}
	child.Parent = o
	o.children = append(o.children, child)
	o.childrenSorted = false
	child.transformDirty = true
}

// RemoveChild detaches child. It is a no-op if child is not a direct child.
func (o *Object) RemoveChild(child *Object) {
	for i, c := range o.children {
		if c == child {
			copy(o.children[i:], o.children[i+1:])
			o.children[len(o.children)-1] = nil
			o.children = o.children[:len(o.children)-1]
			child.Parent = nil
			o.childrenSorted = false
			return
		}
	}
}

// Children returns the child list. The returned slice MUST NOT be mutated.
func (o *Object) Children() []*Object {
	return o.children
}

// SetZIndex sets the sibling order and marks the parent for re-sorting.
func (o *Object) SetZIndex(z int) {
	o.ZIndex = z
	if o.Parent != nil {
		o.Parent.childrenSorted = false
	}
}

// Dispose removes the object and its subtree from the tree and drops all of
// their listeners. Pointers that still own or hover a disposed object are
// treated as owning nothing.
func (o *Object) Dispose() {
	if o.Parent != nil {
		o.Parent.RemoveChild(o)
	}
	o.dispose()
}

func (o *Object) dispose() {
	for _, c := range o.children {
		c.Parent = nil
		c.dispose()
	}
	o.children = nil
	o.sortedChildren = nil
	o.listeners = listenerSet{}
	o.disposed = true
}

// IsDisposed reports whether Dispose has been called.
func (o *Object) IsDisposed() bool {
	return o.disposed
}

// paintOrder returns the children sorted by ZIndex, stable on insertion order.
func (o *Object) paintOrder() []*Object {
	if o.childrenSorted {
		if o.sortedChildren != nil {
			return o.sortedChildren
		}
		return o.children
	}
	o.childrenSorted = true
	needSort := false
	for _, c := range o.children {
		if c.ZIndex != 0 {
			needSort = true
			break
		}
	}
	if !needSort {
		o.sortedChildren = nil
		return o.children
	}
	o.sortedChildren = append(o.sortedChildren[:0], o.children...)
	sort.SliceStable(o.sortedChildren, func(i, j int) bool {
		return o.sortedChildren[i].ZIndex < o.sortedChildren[j].ZIndex
	})
	return o.sortedChildren
}
