// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gesture

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"cogentcore.org/gesture/events"
	"cogentcore.org/gesture/logx"
	"cogentcore.org/gesture/system"
)

var (
	// ErrUnsupportedGesture is returned by [Engine.AddListener] for an
	// event type outside the supported set.
	ErrUnsupportedGesture = errors.New("unsupported gesture type")

	// ErrInvalidArgument is returned by [Engine.AddListener] for a nil
	// element or callback.
	ErrInvalidArgument = errors.New("invalid argument")
)

// Engine is the listener registry and dispatch hub: it normalizes raw
// events from its [system.Source] into unified events, feeds them to
// the per-listener gesture state machines, and coordinates pointer
// capture. Construct one per independent input context with
// [NewEngine]; there is no global instance.
type Engine struct {
	// mu serializes all state transitions: raw event handlers, timer
	// callbacks, and the public API all run under it. User callbacks
	// run after it is released (see pending).
	mu sync.Mutex

	src      system.Source
	caps     system.Capabilities
	defaults *Options

	listeners map[ListenerID]*Listener
	byTriple  map[tripleKey]ListenerID
	nextID    ListenerID

	// captures maps each captured stream identity to the element and
	// listener holding it.
	captures map[events.StreamID]*captureRecord

	// captureListeners fans capture lifecycle events out to listeners
	// registered for GotCapture / LostCapture per element.
	captureListeners map[system.Element]*events.Listeners

	// pending holds callback deliveries queued during a locked
	// transition, run by flush after the mutex is released so that
	// callbacks can safely call back into the engine.
	pending []func()

	disposed bool
}

// tripleKey identifies a registration for idempotence: registering the
// same (element, type, callback) again returns the existing listener.
type tripleKey struct {
	el  system.Element
	typ events.Types
	fun uintptr
}

// NewEngine returns a new [Engine] on the given raw input source, with
// the given default options applied to every listener that does not
// override them (nil means [NewOptions] defaults). Platform
// capabilities are probed once here and used unchanged thereafter.
func NewEngine(src system.Source, defaults *Options) *Engine {
	if defaults == nil {
		defaults = NewOptions()
	}
	return &Engine{
		src:              src,
		caps:             src.Capabilities(),
		defaults:         defaults,
		listeners:        map[ListenerID]*Listener{},
		byTriple:         map[tripleKey]ListenerID{},
		captures:         map[events.StreamID]*captureRecord{},
		captureListeners: map[system.Element]*events.Listeners{},
	}
}

// Capabilities returns the capability record probed at construction.
func (en *Engine) Capabilities() system.Capabilities {
	return en.caps
}

// Options returns a clone of the engine's default options, suitable
// for per-listener modification.
func (en *Engine) Options() *Options {
	return en.defaults.Clone()
}

// SetDebug toggles debug logging for gesture recognition and capture.
func (en *Engine) SetDebug(debug bool) {
	logx.SetDebug(debug)
}

// NumListeners returns the number of active listener registrations.
func (en *Engine) NumListeners() int {
	en.mu.Lock()
	defer en.mu.Unlock()
	return len(en.listeners)
}

// AddListener registers the given callback for the given event type on
// the given element, returning the registration id. opts of nil uses
// the engine defaults; otherwise opts is cloned into the listener.
// Registering an identical (element, type, callback) triple again
// returns the existing id without installing anything.
func (en *Engine) AddListener(el system.Element, typ events.Types, fun func(events.Event), opts *Options) (ListenerID, error) {
	if el == nil || fun == nil {
		return 0, fmt.Errorf("%w: element and callback must be non-nil", ErrInvalidArgument)
	}
	if typ <= events.UnknownType || typ >= events.TypesN {
		return 0, fmt.Errorf("%w: %d", ErrUnsupportedGesture, typ)
	}
	fp := reflect.ValueOf(fun).Pointer()

	en.mu.Lock()
	defer en.mu.Unlock()

	key := tripleKey{el: el, typ: typ, fun: fp}
	if id, ok := en.byTriple[key]; ok {
		return id, nil
	}

	li := &Listener{
		Target: el,
		Type:   typ,
		en:     en,
		fun:    fun,
		funPtr: fp,
	}
	if opts == nil {
		li.opts = en.defaults.Clone()
	} else {
		li.opts = opts.Clone()
	}
	li.mach = newMachine(li)

	if err := en.install(li); err != nil {
		li.closeSubs()
		return 0, err
	}

	en.nextID++
	li.ID = en.nextID
	en.listeners[li.ID] = li
	en.byTriple[key] = li.ID

	if typ == events.GotCapture || typ == events.LostCapture {
		ls := en.captureListeners[el]
		if ls == nil {
			ls = &events.Listeners{}
			en.captureListeners[el] = ls
		}
		ls.Add(typ, fun)
	}
	logx.Debug("gesture: listener added", "id", li.ID, "type", typ.String())
	return li.ID, nil
}

// RemoveListener removes the registration with the given id: raw
// subscriptions are closed, pending timers canceled, and any held
// pointer capture released. It returns false if the id is unknown,
// and never returns an error.
func (en *Engine) RemoveListener(id ListenerID) bool {
	en.mu.Lock()
	li, ok := en.listeners[id]
	if ok {
		en.removeLocked(li)
	}
	en.mu.Unlock()
	en.flush()
	return ok
}

// RemoveAll removes every registration targeting the given element,
// returning the number removed.
func (en *Engine) RemoveAll(el system.Element) int {
	en.mu.Lock()
	n := 0
	for _, li := range en.listeners {
		if li.Target == el {
			en.removeLocked(li)
			n++
		}
	}
	en.mu.Unlock()
	en.flush()
	return n
}

// Dispose removes every registration engine-wide. The engine must not
// be used afterwards; call it at application teardown to avoid leaking
// native subscriptions.
func (en *Engine) Dispose() {
	en.mu.Lock()
	for _, li := range en.listeners {
		en.removeLocked(li)
	}
	en.disposed = true
	en.mu.Unlock()
	en.flush()
}

// removeLocked tears one listener down. Engine mutex held. The
// registration is removed from the registry regardless of partial
// platform cleanup failure, to avoid leaking registry entries.
func (en *Engine) removeLocked(li *Listener) {
	li.removed = true
	li.mach.stop()
	// captures claimed manually via [events.Event.Capture] are owned
	// by the listener, not its machine, so stop cannot release them
	for sid, rec := range en.captures {
		if rec.owner == li {
			delete(en.captures, sid)
			if err := rec.el.ReleasePointerCapture(sid.ID); err != nil {
				logx.Debug("gesture: pointer capture release failed", "stream", sid.String(), "err", err)
			}
			en.emitCaptureLocked(events.LostCapture, rec.el, sid)
		}
	}
	li.closeSubs()
	delete(en.listeners, li.ID)
	delete(en.byTriple, tripleKey{el: li.Target, typ: li.Type, fun: li.funPtr})
	if li.Type == events.GotCapture || li.Type == events.LostCapture {
		if ls := en.captureListeners[li.Target]; ls != nil {
			ls.Delete(li.Type, li.fun)
		}
	}
	logx.Debug("gesture: listener removed", "id", li.ID)
}

// install subscribes the listener to the raw event kinds its type
// needs, using the pointer channel when the platform has it and the
// separate mouse and touch channels otherwise.
func (en *Engine) install(li *Listener) error {
	var kinds []system.RawKinds
	switch {
	case li.Type.IsPhase():
		kinds = en.phaseKinds(li.Type)
	case li.Type == events.GotCapture || li.Type == events.LostCapture:
		// fed by the capture coordinator, no raw subscriptions
		return nil
	default:
		kinds = append(kinds, en.phaseKinds(events.Start)...)
		kinds = append(kinds, en.phaseKinds(events.Move)...)
		kinds = append(kinds, en.phaseKinds(events.End)...)
		kinds = append(kinds, en.phaseKinds(events.Cancel)...)
		if li.opts.UsePointerCapture && en.caps.HasCapture {
			// only revocation needs a platform subscription: the
			// capture coordinator emits GotCapture itself when its
			// own claim succeeds
			kinds = append(kinds, system.LostPointerCapture)
		}
		if li.Type == events.Rotate || li.Type == events.PinchZoom {
			kinds = append(kinds, system.Wheel)
		}
	}
	for _, kind := range kinds {
		sub, err := en.src.Subscribe(li.Target, kind, func(re *system.RawEvent) {
			en.handleRaw(li, re)
		})
		if err != nil {
			return err
		}
		li.subs = append(li.subs, sub)
	}
	return nil
}

// phaseKinds returns the raw kinds feeding the given phase on this
// platform.
func (en *Engine) phaseKinds(phase events.Types) []system.RawKinds {
	if en.caps.HasPointer {
		switch phase {
		case events.Start:
			return []system.RawKinds{system.PointerDown}
		case events.Move:
			return []system.RawKinds{system.PointerMove}
		case events.End:
			return []system.RawKinds{system.PointerUp}
		case events.Cancel:
			return []system.RawKinds{system.PointerCancel}
		}
		return nil
	}
	var kinds []system.RawKinds
	switch phase {
	case events.Start:
		if en.caps.HasMouse {
			kinds = append(kinds, system.MouseDown)
		}
		if en.caps.HasTouch {
			kinds = append(kinds, system.TouchStart)
		}
	case events.Move:
		if en.caps.HasMouse {
			kinds = append(kinds, system.MouseMove)
		}
		if en.caps.HasTouch {
			kinds = append(kinds, system.TouchMove)
		}
	case events.End:
		if en.caps.HasMouse {
			kinds = append(kinds, system.MouseUp)
		}
		if en.caps.HasTouch {
			kinds = append(kinds, system.TouchEnd)
		}
	case events.Cancel:
		if en.caps.HasTouch {
			kinds = append(kinds, system.TouchCancel)
		}
	}
	return kinds
}

// handleRaw is the entry point for every raw event delivered to a
// listener's subscription.
func (en *Engine) handleRaw(li *Listener, re *system.RawEvent) {
	en.mu.Lock()
	if en.disposed || li.removed {
		en.mu.Unlock()
		return
	}
	if li.opts.PreventDefault {
		re.PreventDefault()
	}
	switch re.Kind {
	case system.Wheel:
		if wh, ok := li.mach.(wheeler); ok {
			wh.wheel(re)
		}
	case system.LostPointerCapture:
		en.platformLostCapture(li, re)
	default:
		phase := phaseOf(re.Kind)
		if phase != events.UnknownType {
			for _, ev := range normalizePhase(li.opts, phase, re) {
				if !li.opts.DeviceAllowed(ev.Dev) {
					continue
				}
				li.mach.phase(ev, re)
			}
		}
	}
	en.mu.Unlock()
	en.flush()
}

// flush runs callback deliveries queued during locked transitions.
func (en *Engine) flush() {
	for {
		en.mu.Lock()
		p := en.pending
		en.pending = nil
		en.mu.Unlock()
		if len(p) == 0 {
			return
		}
		for _, f := range p {
			f()
		}
	}
}

// phaseOf maps a raw kind to its canonical phase, or UnknownType for
// non-phase kinds.
func phaseOf(kind system.RawKinds) events.Types {
	switch kind {
	case system.MouseDown, system.TouchStart, system.PointerDown:
		return events.Start
	case system.MouseMove, system.TouchMove, system.PointerMove:
		return events.Move
	case system.MouseUp, system.TouchEnd, system.PointerUp:
		return events.End
	case system.TouchCancel, system.PointerCancel:
		return events.Cancel
	}
	return events.UnknownType
}

// newMachine constructs the state machine for the listener's type.
func newMachine(li *Listener) machine {
	switch li.Type {
	case events.LongClick:
		return &longClick{li: li}
	case events.DoubleClick:
		return &doubleClick{li: li}
	case events.Swipe:
		return &swipe{li: li}
	case events.Fling:
		return &fling{li: li}
	case events.DragStart, events.Drag, events.DragEnd:
		return &drag{li: li}
	case events.Rotate:
		return &rotate{li: li}
	case events.PinchZoom:
		return &pinchZoom{li: li, scale: 1}
	}
	return &passThrough{li: li}
}
