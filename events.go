package willowxr

// --- Handler registry ---

type eventHandler struct {
	id uint32
	fn func(InteractionEvent)
}

// anyEvent is the registry slot for handlers that receive every event type.
const anyEvent = numEventTypes

type handlerRegistry struct {
	byType [numEventTypes + 1][]eventHandler
	nextID uint32
}

// CallbackHandle allows removing a registered scene-level callback.
type CallbackHandle struct {
	id   uint32
	reg  *handlerRegistry
	slot EventType
}

// Remove unregisters this callback so it no longer fires.
// The entry is removed from the slice to avoid nil iteration waste.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	h.reg.byType[h.slot] = removeEventHandler(h.reg.byType[h.slot], h.id)
}

func removeEventHandler(s []eventHandler, id uint32) []eventHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = eventHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

func (r *handlerRegistry) add(slot EventType, fn func(InteractionEvent)) CallbackHandle {
	r.nextID++
	id := r.nextID
	r.byType[slot] = append(r.byType[slot], eventHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: r, slot: slot}
}

// dispatch calls the handlers for ev's type, then the catch-all handlers.
// Handlers may remove themselves or register others while running; changes
// take effect from the next event.
func (r *handlerRegistry) dispatch(ev InteractionEvent) {
	if ev.Type >= numEventTypes {
		return
	}
	for _, slot := range [2]EventType{ev.Type, anyEvent} {
		list := r.byType[slot]
		if len(list) == 0 {
			continue
		}
		snapshot := make([]eventHandler, len(list))
		copy(snapshot, list)
		for _, h := range snapshot {
			h.fn(ev)
		}
	}
}

// --- Scene-level event registration ---

// On registers a scene-level callback for one interaction event type.
// Callbacks run synchronously on the frame goroutine, after the event has
// been forwarded to the EntityStore.
func (s *Scene) On(t EventType, fn func(InteractionEvent)) CallbackHandle {
	if t >= numEventTypes || fn == nil {
		return CallbackHandle{}
	}
	return s.handlers.add(t, fn)
}

// OnEvent registers a scene-level callback for every interaction event.
func (s *Scene) OnEvent(fn func(InteractionEvent)) CallbackHandle {
	if fn == nil {
		return CallbackHandle{}
	}
	return s.handlers.add(anyEvent, fn)
}

// OnGrab registers a callback for right-hand grabs.
func (s *Scene) OnGrab(fn func(InteractionEvent)) CallbackHandle {
	return s.On(EventGrab, fn)
}

// OnRelease registers a callback for releases by either hand.
func (s *Scene) OnRelease(fn func(InteractionEvent)) CallbackHandle {
	return s.On(EventRelease, fn)
}

// OnScale registers a callback for every scale applied by a two-hand
// scaling session.
func (s *Scene) OnScale(fn func(InteractionEvent)) CallbackHandle {
	return s.On(EventScale, fn)
}
