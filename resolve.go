package touchinput

// Ray is a half-line in world space.
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Scale(t))
}

// RaycastHit describes the nearest intersection found by a Raycaster.
type RaycastHit struct {
	Object   *Object
	Point    Vec3
	Distance float64
}

// Viewpoint converts screen positions into world-space rays. Camera is the
// built-in implementation.
type Viewpoint interface {
	ScreenPointToRay(screen Vec3) Ray
	// FarClip is the maximum hit distance for rays built by this viewpoint.
	FarClip() float64
}

// Raycaster finds the nearest object intersected by a ray, considering only
// objects on layers selected by mask and no farther than maxDistance.
type Raycaster interface {
	Raycast(ray Ray, maxDistance float64, mask LayerMask) (RaycastHit, bool)
}

// Scene is the hit-test provider plus the viewpoints it contains. World is
// the built-in implementation.
type Scene interface {
	Raycaster
	Viewpoints() []Viewpoint
}

// resolution is the outcome of casting one pointer position through a camera.
type resolution struct {
	camera Viewpoint
	ray    Ray
	hit    RaycastHit
	ok     bool
}

// castFrom builds a ray from cam through pos and hit-tests it within the
// camera's far clip distance.
func castFrom(rc Raycaster, cam Viewpoint, pos Vec3, mask LayerMask) resolution {
	ray := cam.ScreenPointToRay(pos)
	hit, ok := rc.Raycast(ray, cam.FarClip(), mask)
	return resolution{camera: cam, ray: ray, hit: hit, ok: ok && hit.Object != nil}
}

// resolveFirst tries each camera in list order and returns the first one
// whose ray hits something. An earlier camera always wins over a later one,
// whatever the hit distances. With no hit, the returned resolution has ok
// false and describes the last camera tried (if any).
func resolveFirst(rc Raycaster, cams []Viewpoint, pos Vec3, mask LayerMask) resolution {
	var last resolution
	for _, cam := range cams {
		if cam == nil {
			continue
		}
		last = castFrom(rc, cam, pos, mask)
		if last.ok {
			return last
		}
	}
	return last
}
