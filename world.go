package touchinput

// World is the built-in Scene: a tree of Objects plus an ordered list of
// cameras. It hit-tests rays against each object's HitShape on the plane
// z = object world Z.
type World struct {
	root    *Object
	cameras []*Camera
	hitBuf  []*Object
}

// NewWorld creates a world with an empty root container.
func NewWorld() *World {
	return &World{root: NewObject("root")}
}

// Root returns the world's root object.
func (w *World) Root() *Object {
	return w.root
}

// Update refreshes world transforms and advances camera follow and scroll
// animations by dt seconds.
func (w *World) Update(dt float64) {
	updateWorldTransform(w.root, identityTransform, 0, false)
	for _, cam := range w.cameras {
		cam.update(float32(dt))
	}
}

// NewCamera creates a camera with the given viewport and appends it to the
// world's camera list.
func (w *World) NewCamera(name string, viewport Rect) *Camera {
	cam := NewCamera(name, viewport)
	w.cameras = append(w.cameras, cam)
	return cam
}

// AddCamera appends an existing camera to the camera list.
func (w *World) AddCamera(cam *Camera) {
	w.cameras = append(w.cameras, cam)
}

// RemoveCamera removes a camera from the world.
func (w *World) RemoveCamera(cam *Camera) {
	for i, c := range w.cameras {
		if c == cam {
			w.cameras = append(w.cameras[:i], w.cameras[i+1:]...)
			return
		}
	}
}

// Cameras returns the world's camera list in creation order. The returned
// slice MUST NOT be mutated.
func (w *World) Cameras() []*Camera {
	return w.cameras
}

// CameraByName returns the first camera with the given name.
func (w *World) CameraByName(name string) (*Camera, bool) {
	for _, c := range w.cameras {
		if c.Name == name {
			return c, true
		}
	}
	return nil, false
}

// Viewpoints returns the cameras as Viewpoints, in creation order.
func (w *World) Viewpoints() []Viewpoint {
	vps := make([]Viewpoint, len(w.cameras))
	for i, c := range w.cameras {
		vps[i] = c
	}
	return vps
}

// collectHittable walks the tree in painter order (DFS, ZIndex-sorted),
// appending hittable objects to buf. Invisible or non-interactable subtrees
// are skipped.
func collectHittable(o *Object, buf []*Object) []*Object {
	if !o.Visible || !o.Interactable {
		return buf
	}
	if o.HitShape != nil {
		buf = append(buf, o)
	}
	for _, child := range o.paintOrder() {
		buf = collectHittable(child, buf)
	}
	return buf
}

// Raycast returns the nearest object whose hit shape the ray crosses within
// maxDistance, on a layer selected by mask. Among objects at the same
// distance the topmost in painter order wins.
func (w *World) Raycast(ray Ray, maxDistance float64, mask LayerMask) (RaycastHit, bool) {
	if ray.Direction.Z == 0 || mask == NoLayers {
		return RaycastHit{}, false
	}
	updateWorldTransform(w.root, identityTransform, 0, false)
	w.hitBuf = collectHittable(w.root, w.hitBuf[:0])

	dirLen := ray.Direction.Len()
	var best RaycastHit
	found := false
	// Reverse painter order: topmost first, so only a strictly nearer
	// object can replace it.
	for i := len(w.hitBuf) - 1; i >= 0; i-- {
		o := w.hitBuf[i]
		if !mask.Has(o.Layer) {
			continue
		}
		t := (o.worldZ - ray.Origin.Z) / ray.Direction.Z
		dist := t * dirLen
		if t < 0 || dist > maxDistance {
			continue
		}
		if found && dist >= best.Distance {
			continue
		}
		p := ray.At(t)
		lx, ly := o.WorldToLocal(p.X, p.Y)
		if !o.HitShape.Contains(lx, ly) {
			continue
		}
		best = RaycastHit{Object: o, Point: p, Distance: dist}
		found = true
	}
	return best, found
}
