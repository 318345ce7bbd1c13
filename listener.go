package touchinput

// TouchContext carries the data for one event delivery. It is built fresh for
// every dispatch and is only meaningful during the handler call.
type TouchContext struct {
	Event  EventType
	Object *Object

	PointerID     int
	Phase         Phase
	Position      Vec3
	DeltaPosition Vec3
	DeltaTime     float64
	TapCount      int

	// Camera and Ray are the viewpoint and ray used for this event.
	Camera Viewpoint
	Ray    Ray
	// Hit is the most recent raycast result for this sample; valid when HasHit.
	Hit    RaycastHit
	HasHit bool
}

// TouchDownHandler receives onTouchDown.
type TouchDownHandler interface {
	OnTouchDown(ctx TouchContext)
}

// TouchMoveHandler receives onTouchMove.
type TouchMoveHandler interface {
	OnTouchMove(ctx TouchContext)
}

// TouchUpAsButtonHandler receives onTouchUpAsButton.
type TouchUpAsButtonHandler interface {
	OnTouchUpAsButton(ctx TouchContext)
}

// TouchUpHandler receives onTouchUp.
type TouchUpHandler interface {
	OnTouchUp(ctx TouchContext)
}

// TouchEnterHandler receives onTouchEnter.
type TouchEnterHandler interface {
	OnTouchEnter(ctx TouchContext)
}

// TouchExitHandler receives onTouchExit.
type TouchExitHandler interface {
	OnTouchExit(ctx TouchContext)
}

// ListenerFuncs is a listener built from plain functions. Only the non-nil
// fields are registered.
type ListenerFuncs struct {
	OnTouchDown       func(TouchContext)
	OnTouchMove       func(TouchContext)
	OnTouchUpAsButton func(TouchContext)
	OnTouchUp         func(TouchContext)
	OnTouchEnter      func(TouchContext)
	OnTouchExit       func(TouchContext)
}

type listenerEntry struct {
	id    uint32
	owner any
	fn    func(TouchContext)
}

// listenerSet holds one handler slice per event type, in attach order.
type listenerSet struct {
	byEvent [eventTypeCount][]listenerEntry
	nextID  uint32
}

// ListenerHandle detaches a listener added with Object.AddListener.
type ListenerHandle struct {
	id  uint32
	set *listenerSet
}

// Remove detaches the listener from every event it was registered for.
// A dispatch already in progress still completes with the old list.
// Calling Remove more than once is a no-op.
func (h ListenerHandle) Remove() {
	if h.set == nil {
		return
	}
	for e := range h.set.byEvent {
		h.set.byEvent[e] = removeListenerEntry(h.set.byEvent[e], h.id)
	}
}

// removeListenerEntry returns s without id. It never writes to s, so a
// dispatch iterating the old slice is unaffected.
func removeListenerEntry(s []listenerEntry, id uint32) []listenerEntry {
	for i := range s {
		if s[i].id == id {
			out := make([]listenerEntry, 0, len(s)-1)
			out = append(out, s[:i]...)
			return append(out, s[i+1:]...)
		}
	}
	return s
}

// add resolves which events l handles and appends it to those lists. It
// reports false if l handles none of them.
func (ls *listenerSet) add(l any) (uint32, bool) {
	ls.nextID++
	id := ls.nextID
	found := false
	reg := func(e EventType, fn func(TouchContext)) {
		if fn == nil {
			return
		}
		ls.byEvent[e] = append(ls.byEvent[e], listenerEntry{id: id, owner: l, fn: fn})
		found = true
	}

	switch v := l.(type) {
	case ListenerFuncs:
		reg(EventTouchDown, v.OnTouchDown)
		reg(EventTouchMove, v.OnTouchMove)
		reg(EventTouchUpAsButton, v.OnTouchUpAsButton)
		reg(EventTouchUp, v.OnTouchUp)
		reg(EventTouchEnter, v.OnTouchEnter)
		reg(EventTouchExit, v.OnTouchExit)
	case *ListenerFuncs:
		if v != nil {
			return ls.add(*v)
		}
	default:
		if h, ok := l.(TouchDownHandler); ok {
			reg(EventTouchDown, h.OnTouchDown)
		}
		if h, ok := l.(TouchMoveHandler); ok {
			reg(EventTouchMove, h.OnTouchMove)
		}
		if h, ok := l.(TouchUpAsButtonHandler); ok {
			reg(EventTouchUpAsButton, h.OnTouchUpAsButton)
		}
		if h, ok := l.(TouchUpHandler); ok {
			reg(EventTouchUp, h.OnTouchUp)
		}
		if h, ok := l.(TouchEnterHandler); ok {
			reg(EventTouchEnter, h.OnTouchEnter)
		}
		if h, ok := l.(TouchExitHandler); ok {
			reg(EventTouchExit, h.OnTouchExit)
		}
	}
	return id, found
}

func (ls *listenerSet) count(e EventType) int {
	return len(ls.byEvent[e])
}

// AddListener attaches l to the object. l may implement any of the
// TouchXxxHandler interfaces or be a ListenerFuncs. The set of events l
// receives is fixed here, at attach time. If l handles no event, the returned
// handle is inert.
func (o *Object) AddListener(l any) ListenerHandle {
	id, ok := o.listeners.add(l)
	if !ok {
		return ListenerHandle{}
	}
	return ListenerHandle{id: id, set: &o.listeners}
}

// ListenerCount reports how many listeners receive event e on this object.
func (o *Object) ListenerCount(e EventType) int {
	return o.listeners.count(e)
}
