// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gesture

import (
	"time"

	"cogentcore.org/gesture/events"
	"cogentcore.org/gesture/logx"
	"cogentcore.org/gesture/math32"
	"cogentcore.org/gesture/system"
)

// ListenerID identifies one listener registration. IDs are unique for
// the lifetime of the engine and never reused.
type ListenerID int64

// Listener is one (element, event type, callback) registration: it
// owns the gesture state machine for its type, the raw subscriptions
// it installed, and the effective options. Created by
// [Engine.AddListener], destroyed by [Engine.RemoveListener],
// [Engine.RemoveAll], or [Engine.Dispose].
type Listener struct {
	// ID is the unique registration identifier.
	ID ListenerID

	// Target is the element the listener is registered on.
	Target system.Element

	// Type is the event type the listener receives.
	Type events.Types

	en      *Engine
	opts    *Options
	fun     func(events.Event)
	funPtr  uintptr
	subs    []system.Subscription
	mach    machine
	removed bool
}

// Options returns the listener's effective options.
func (li *Listener) Options() *Options {
	return li.opts
}

// emit queues delivery of the given synthetic event to the listener's
// callback, if the event type matches the registered type (the drag
// machine emits DragStart, Drag, and DragEnd; each registration only
// receives its own type). Called with the engine mutex held; the
// callback itself runs after the mutex is released.
func (li *Listener) emit(ev events.Event) {
	if ev.Type() != li.Type {
		return
	}
	if cs, ok := ev.(interface{ SetCapturer(events.Capturer) }); ok {
		cs.SetCapturer(listenerCapturer{li: li})
	}
	li.en.pending = append(li.en.pending, func() {
		li.fun(ev)
	})
}

// newBase constructs a synthetic event base of the given type for the
// given stream, positioned at the given client/page coordinates.
func (li *Listener) newBase(typ events.Types, sid events.StreamID, client, page math32.Vector2) events.Base {
	return events.Base{
		Typ:       typ,
		Dev:       sid.Device,
		PointerID: sid.ID,
		Client:    client,
		Page:      page,
		Primary:   true,
		GenTime:   time.Now(),
	}
}

// capture requests pointer capture of the given stream for this
// listener's target. Engine mutex held.
func (li *Listener) capture(sid events.StreamID) bool {
	return li.en.captureLocked(li, sid)
}

// release releases pointer capture of the given stream if this
// listener holds it. Engine mutex held.
func (li *Listener) release(sid events.StreamID) {
	li.en.releaseLocked(li, sid)
}

// closeSubs closes all raw subscriptions item by item, so one platform
// failure does not abort removal of the remaining subscriptions.
func (li *Listener) closeSubs() {
	for _, sub := range li.subs {
		if err := sub.Close(); err != nil {
			logx.Warn("gesture: raw unsubscribe failed", "listener", li.ID, "err", err)
		}
	}
	li.subs = nil
}

// listenerCapturer binds [events.Event.Capture] and
// [events.Event.ReleaseCapture] to the listener that produced the
// event. The methods run on the consumer's side of dispatch, so they
// take the engine mutex themselves.
type listenerCapturer struct {
	li *Listener
}

func (lc listenerCapturer) Capture(sid events.StreamID) bool {
	en := lc.li.en
	en.mu.Lock()
	got := en.captureLocked(lc.li, sid)
	en.mu.Unlock()
	en.flush()
	return got
}

func (lc listenerCapturer) Release(sid events.StreamID) {
	en := lc.li.en
	en.mu.Lock()
	en.releaseLocked(lc.li, sid)
	en.mu.Unlock()
	en.flush()
}
