package touchinput

// slot associates a pointer with a target object and the camera that found
// it. It does not own either.
type slot struct {
	object *Object
	camera Viewpoint
}

// empty reports whether the slot holds no live object. A disposed object
// counts as gone.
func (s *slot) empty() bool { return s.object == nil || s.object.disposed }

func (s *slot) set(obj *Object, cam Viewpoint) {
	s.object = obj
	s.camera = cam
}

func (s *slot) clear() {
	s.object = nil
	s.camera = nil
}

// slotTable holds the per-pointer ownership slots and, when enter/exit
// tracking is enabled, the parallel hover slots. Both are allocated once
// and indexed directly by pointer id.
type slotTable struct {
	owner [MaxPointers]slot
	hover []slot // nil when enter/exit tracking is disabled
}

func newSlotTable(trackHover bool) slotTable {
	var t slotTable
	if trackHover {
		t.hover = make([]slot, MaxPointers)
	}
	return t
}

func (t *slotTable) tracksHover() bool { return t.hover != nil }

// reset empties every slot without reallocating.
func (t *slotTable) reset() {
	for i := range t.owner {
		t.owner[i].clear()
	}
	for i := range t.hover {
		t.hover[i].clear()
	}
}
