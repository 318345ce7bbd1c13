package touchinput

import (
	"errors"
	"fmt"
	"time"

	"github.com/pion/logging"
)

var (
	// ErrNilScene is returned by NewTouchInput when no scene is given.
	ErrNilScene = errors.New("touchinput: nil scene")
	// ErrUnknownCamera is returned when a configured camera name does not
	// exist in the scene.
	ErrUnknownCamera = errors.New("touchinput: unknown camera")
)

// cameraLookup is implemented by scenes that can find cameras by name.
type cameraLookup interface {
	CameraByName(name string) (*Camera, bool)
}

// TouchInput turns per-frame pointer samples into touch events addressed to
// the objects under each pointer.
//
// Each pointer id owns the object it went down on until it ends or is
// canceled; move and up events go to that owner. With enter/exit tracking
// enabled, a second slot per id follows the object currently hovered.
//
// TouchInput is not safe for concurrent use. Call Update (or ProcessFrame)
// once per frame from the game loop.
type TouchInput struct {
	scene   Scene
	cameras []Viewpoint

	mask       LayerMask
	stationary bool

	slots   slotTable
	sources []Source
	buf     []PointerSample

	store EntityStore
	log   logging.LeveledLogger
	debug bool
	stats FrameStats

	dispatching bool
}

// NewTouchInput creates a TouchInput over scene. The camera list is taken
// from cfg.Cameras, else from cfg.CameraNames looked up in the scene, else
// from every viewpoint the scene holds right now. cfg should start from
// DefaultConfig; a mask of NoLayers is accepted but logged as a warning.
func NewTouchInput(scene Scene, cfg Config) (*TouchInput, error) {
	if scene == nil {
		return nil, ErrNilScene
	}

	log := cfg.Logger
	if log == nil {
		l, err := newLogger(cfg.LogLevel)
		if err != nil {
			return nil, err
		}
		log = l
	}

	cams, err := selectCameras(scene, cfg)
	if err != nil {
		return nil, err
	}
	if len(cams) == 0 {
		log.Warn("no cameras available; pointers will never hit anything")
	}
	if cfg.TouchLayerMask == NoLayers {
		log.Warn("touch layer mask selects no layers; pointers will never hit anything (start from DefaultConfig)")
	}

	return &TouchInput{
		scene:      scene,
		cameras:    cams,
		mask:       cfg.TouchLayerMask,
		stationary: cfg.StationaryTouchEnable,
		slots:      newSlotTable(cfg.TouchEnterExitEnable),
		log:        log,
		debug:      cfg.Debug,
	}, nil
}

func selectCameras(scene Scene, cfg Config) ([]Viewpoint, error) {
	if len(cfg.Cameras) > 0 {
		return append([]Viewpoint(nil), cfg.Cameras...), nil
	}
	if len(cfg.CameraNames) > 0 {
		lookup, ok := scene.(cameraLookup)
		if !ok {
			return nil, fmt.Errorf("select cameras: scene %T cannot look up cameras by name", scene)
		}
		cams := make([]Viewpoint, 0, len(cfg.CameraNames))
		for _, name := range cfg.CameraNames {
			cam, ok := lookup.CameraByName(name)
			if !ok {
				return nil, fmt.Errorf("select cameras: %w %q", ErrUnknownCamera, name)
			}
			cams = append(cams, cam)
		}
		return cams, nil
	}
	return append([]Viewpoint(nil), scene.Viewpoints()...), nil
}

// Cameras returns a copy of the ordered camera list used for hit resolution.
func (ti *TouchInput) Cameras() []Viewpoint {
	return append([]Viewpoint(nil), ti.cameras...)
}

// AddSource registers a sample source polled by Update.
func (ti *TouchInput) AddSource(src Source) {
	ti.sources = append(ti.sources, src)
}

// SetEntityStore sets the optional ECS bridge.
func (ti *TouchInput) SetEntityStore(store EntityStore) {
	ti.store = store
}

// Update collects this frame's samples from every source, in registration
// order, and processes them.
func (ti *TouchInput) Update() {
	buf := ti.buf[:0]
	for _, src := range ti.sources {
		buf = src.AppendSamples(buf)
	}
	ti.buf = buf
	ti.ProcessFrame(buf)
}

// ProcessFrame processes one frame's samples in order and resets the frame
// statistics.
func (ti *TouchInput) ProcessFrame(samples []PointerSample) {
	var t0 time.Time
	if ti.debug {
		t0 = time.Now()
	}
	ti.stats = FrameStats{}
	for i := range samples {
		ti.Process(samples[i])
	}
	if ti.debug {
		ti.stats.Duration = time.Since(t0)
		ti.debugLog(ti.stats)
	}
}

// Process runs the pointer state machine for a single sample.
func (ti *TouchInput) Process(s PointerSample) {
	if ti.dispatching {
		ti.stats.Dropped++
		ti.log.Warnf("pointer %d %s sample dropped: processed from inside a listener", s.ID, s.Phase)
		return
	}
	ti.stats.Samples++
	if !validPointerID(s.ID) {
		ti.stats.Dropped++
		return
	}

	switch s.Phase {
	case PhaseCanceled:
		ti.slots.owner[s.ID].clear()
	case PhaseBegan:
		ti.onBegan(s)
	case PhaseStationary:
		if ti.stationary {
			ti.onMoved(s)
		}
	case PhaseMoved:
		ti.onMoved(s)
	case PhaseEnded:
		ti.onEnded(s)
	default:
		ti.stats.Dropped++
	}
}

// onBegan gives the pointer to the first object hit through the camera list.
func (ti *TouchInput) onBegan(s PointerSample) {
	r := resolveFirst(ti.scene, ti.cameras, s.Position, ti.mask)
	if !r.ok {
		return
	}
	obj := r.hit.Object
	ti.slots.owner[s.ID].set(obj, r.camera)
	ti.dispatch(newContext(EventTouchDown, obj, s, r))
}

// onMoved sends a move to the owner, hit or not, then updates hover state.
func (ti *TouchInput) onMoved(s PointerSample) {
	own := &ti.slots.owner[s.ID]
	if !own.empty() {
		r := resolution{camera: own.camera, ray: own.camera.ScreenPointToRay(s.Position)}
		ti.dispatch(newContext(EventTouchMove, own.object, s, r))
	}
	ti.touchEnterExit(s)
}

// onEnded releases hover and ownership. The owner gets onTouchUpAsButton
// only if its own camera still hits it at the release point.
func (ti *TouchInput) onEnded(s PointerSample) {
	if ti.slots.tracksHover() {
		hv := &ti.slots.hover[s.ID]
		if !hv.empty() {
			obj, cam := hv.object, hv.camera
			hv.clear()
			r := resolution{camera: cam, ray: cam.ScreenPointToRay(s.Position)}
			ti.dispatch(newContext(EventTouchExit, obj, s, r))
		}
	}

	own := &ti.slots.owner[s.ID]
	if own.empty() {
		return
	}
	obj, cam := own.object, own.camera
	own.clear()

	r := castFrom(ti.scene, cam, s.Position, ti.mask)
	if r.ok && r.hit.Object == obj {
		ti.dispatch(newContext(EventTouchUpAsButton, obj, s, r))
		ti.dispatch(newContext(EventTouchUp, obj, s, r))
		return
	}
	ti.dispatch(newContext(EventTouchUp, obj, s, r))
}

// touchEnterExit tracks the hovered object for a moving pointer.
// An existing hover is re-tested through its own camera only; a pointer with
// no hover searches the whole camera list.
func (ti *TouchInput) touchEnterExit(s PointerSample) {
	if !ti.slots.tracksHover() {
		return
	}
	hv := &ti.slots.hover[s.ID]

	if !hv.empty() {
		last := hv.object
		r := castFrom(ti.scene, hv.camera, s.Position, ti.mask)
		if !r.ok {
			hv.clear()
			ti.dispatch(newContext(EventTouchExit, last, s, r))
			return
		}
		if r.hit.Object == last {
			return
		}
		// r came from hv.camera, so the stored camera stays valid.
		hv.set(r.hit.Object, hv.camera)
		ti.dispatch(newContext(EventTouchExit, last, s, r))
		ti.dispatch(newContext(EventTouchEnter, r.hit.Object, s, r))
		return
	}

	r := resolveFirst(ti.scene, ti.cameras, s.Position, ti.mask)
	if !r.ok {
		return
	}
	hv.set(r.hit.Object, r.camera)
	ti.dispatch(newContext(EventTouchEnter, r.hit.Object, s, r))
}

func newContext(e EventType, obj *Object, s PointerSample, r resolution) TouchContext {
	return TouchContext{
		Event:         e,
		Object:        obj,
		PointerID:     s.ID,
		Phase:         s.Phase,
		Position:      s.Position,
		DeltaPosition: s.DeltaPosition,
		DeltaTime:     s.DeltaTime,
		TapCount:      s.TapCount,
		Camera:        r.camera,
		Ray:           r.ray,
		Hit:           r.hit,
		HasHit:        r.ok,
	}
}

// Resolve reports what a pointer at screen position pos would go down on:
// the first camera in list order whose ray hits an object.
func (ti *TouchInput) Resolve(pos Vec3) (RaycastHit, Viewpoint, bool) {
	r := resolveFirst(ti.scene, ti.cameras, pos, ti.mask)
	if !r.ok {
		return RaycastHit{}, nil, false
	}
	return r.hit, r.camera, true
}

// Owner returns the object and camera owning pointer id, or nil if the
// pointer owns nothing.
func (ti *TouchInput) Owner(id int) (*Object, Viewpoint) {
	if !validPointerID(id) {
		return nil, nil
	}
	s := ti.slots.owner[id]
	if s.empty() {
		return nil, nil
	}
	return s.object, s.camera
}

// Hover returns the object and camera pointer id is hovering, or nil when
// nothing is hovered or enter/exit tracking is disabled.
func (ti *TouchInput) Hover(id int) (*Object, Viewpoint) {
	if !validPointerID(id) || !ti.slots.tracksHover() {
		return nil, nil
	}
	s := ti.slots.hover[id]
	if s.empty() {
		return nil, nil
	}
	return s.object, s.camera
}

// Reset forgets every owned and hovered object without dispatching anything.
// Use it when the platform drops all pointers at once, e.g. on focus loss.
func (ti *TouchInput) Reset() {
	ti.slots.reset()
}
