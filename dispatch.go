package touchinput

// EntityStore is the interface for optional ECS integration.
// When set on a TouchInput, every dispatched event whose object has a
// non-zero EntityID is also forwarded to the store.
type EntityStore interface {
	EmitEvent(event TouchEvent)
}

// TouchEvent carries touch event data for the ECS bridge.
type TouchEvent struct {
	Type          EventType
	EntityID      uint32
	PointerID     int
	Phase         Phase
	Position      Vec3
	DeltaPosition Vec3
	DeltaTime     float64
	TapCount      int
}

// dispatch delivers ctx to every listener on ctx.Object registered for
// ctx.Event, in attach order. A panicking listener is logged and skipped.
func (ti *TouchInput) dispatch(ctx TouchContext) {
	obj := ctx.Object
	if obj == nil {
		return
	}
	ti.stats.Dispatches++

	ti.dispatching = true
	entries := obj.listeners.byEvent[ctx.Event]
	for i := 0; i < len(entries); i++ {
		ti.invoke(entries[i], ctx)
	}
	ti.dispatching = false

	ti.emitTouchEvent(ctx)
}

// invoke runs one handler and contains any panic it raises.
func (ti *TouchInput) invoke(e listenerEntry, ctx TouchContext) {
	defer func() {
		if r := recover(); r != nil {
			ti.stats.ListenerPanics++
			ti.log.Errorf("%s listener %T on object %q (pointer %d) panicked: %v",
				ctx.Event, e.owner, ctx.Object.Name, ctx.PointerID, r)
		}
	}()
	e.fn(ctx)
}

func (ti *TouchInput) emitTouchEvent(ctx TouchContext) {
	if ti.store == nil || ctx.Object.EntityID == 0 {
		return
	}
	ti.store.EmitEvent(TouchEvent{
		Type:          ctx.Event,
		EntityID:      ctx.Object.EntityID,
		PointerID:     ctx.PointerID,
		Phase:         ctx.Phase,
		Position:      ctx.Position,
		DeltaPosition: ctx.DeltaPosition,
		DeltaTime:     ctx.DeltaTime,
		TapCount:      ctx.TapCount,
	})
}
