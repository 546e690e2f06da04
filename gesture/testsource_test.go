// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gesture

import (
	"sync"

	"cogentcore.org/gesture/events"
	"cogentcore.org/gesture/math32"
	"cogentcore.org/gesture/system"
)

// fakeElement is a test [system.Element] recording capture calls.
type fakeElement struct {
	bounds      math32.Box2
	captureErr  error
	captures    []int64
	releases    []int64
	numCaptured int
}

func newFakeElement() *fakeElement {
	return &fakeElement{bounds: math32.B2(0, 0, 200, 200)}
}

func (fe *fakeElement) Bounds() math32.Box2 { return fe.bounds }

func (fe *fakeElement) SetPointerCapture(id int64) error {
	if fe.captureErr != nil {
		return fe.captureErr
	}
	fe.captures = append(fe.captures, id)
	fe.numCaptured++
	return nil
}

func (fe *fakeElement) ReleasePointerCapture(id int64) error {
	fe.releases = append(fe.releases, id)
	fe.numCaptured--
	return nil
}

// fakeSub is one subscription installed on a [fakeSource].
type fakeSub struct {
	el     system.Element
	kind   system.RawKinds
	fun    func(re *system.RawEvent)
	closed bool
}

func (fs *fakeSub) Close() error {
	fs.closed = true
	return nil
}

// fakeSource is a test [system.Source] that delivers injected raw
// events synchronously to matching open subscriptions.
type fakeSource struct {
	caps system.Capabilities
	subs []*fakeSub
}

// newFakeSource returns a source with the full pointer-channel
// capability set.
func newFakeSource() *fakeSource {
	return &fakeSource{caps: system.Capabilities{
		HasPointer: true, HasTouch: true, HasMouse: true, HasCapture: true,
	}}
}

// newTouchSource returns a source without the pointer channel, so the
// engine subscribes to the separate mouse and touch channels.
func newTouchSource() *fakeSource {
	return &fakeSource{caps: system.Capabilities{
		HasTouch: true, HasMouse: true, HasCapture: true,
	}}
}

func (fs *fakeSource) Subscribe(el system.Element, kind system.RawKinds, fun func(re *system.RawEvent)) (system.Subscription, error) {
	sub := &fakeSub{el: el, kind: kind, fun: fun}
	fs.subs = append(fs.subs, sub)
	return sub, nil
}

func (fs *fakeSource) Capabilities() system.Capabilities { return fs.caps }

// send delivers a raw event to every open subscription for the given
// element and the event's kind.
func (fs *fakeSource) send(el system.Element, re *system.RawEvent) {
	for _, sub := range fs.subs {
		if !sub.closed && sub.el == el && sub.kind == re.Kind {
			sub.fun(re)
		}
	}
}

// numOpenSubs counts open subscriptions for the given element.
func (fs *fakeSource) numOpenSubs(el system.Element) int {
	n := 0
	for _, sub := range fs.subs {
		if !sub.closed && sub.el == el {
			n++
		}
	}
	return n
}

// raw event constructors for the pointer channel

func ptrEvent(kind system.RawKinds, dev events.Devices, id int64, x, y float32) *system.RawEvent {
	return &system.RawEvent{
		Kind:        kind,
		PointerType: dev,
		PointerID:   id,
		Client:      math32.Vec2(x, y),
		Page:        math32.Vec2(x, y),
		Flags:       system.RawInContact,
	}
}

func ptrDown(id int64, x, y float32) *system.RawEvent {
	return ptrEvent(system.PointerDown, events.Mouse, id, x, y)
}

func ptrMove(id int64, x, y float32) *system.RawEvent {
	return ptrEvent(system.PointerMove, events.Mouse, id, x, y)
}

func ptrUp(id int64, x, y float32) *system.RawEvent {
	return ptrEvent(system.PointerUp, events.Mouse, id, x, y)
}

func ptrCancel(id int64, x, y float32) *system.RawEvent {
	return ptrEvent(system.PointerCancel, events.Mouse, id, x, y)
}

// touch-channel constructors; each position pair becomes one contact
// with ids assigned from ids.

func touchEvent(kind system.RawKinds, ids []int64, pts []math32.Vector2) *system.RawEvent {
	re := &system.RawEvent{Kind: kind}
	tps := make([]system.TouchPoint, len(ids))
	for i := range ids {
		tps[i] = system.TouchPoint{ID: ids[i], Client: pts[i], Page: pts[i]}
	}
	switch kind {
	case system.TouchEnd, system.TouchCancel:
		re.Changed = tps
	default:
		re.Touches = tps
	}
	return re
}

// recorder collects delivered events; timer-fired emissions arrive on
// other goroutines, so access is locked.
type recorder struct {
	mu  sync.Mutex
	evs []events.Event
}

func (r *recorder) cb(ev events.Event) {
	r.mu.Lock()
	r.evs = append(r.evs, ev)
	r.mu.Unlock()
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.evs)
}

func (r *recorder) events() []events.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]events.Event{}, r.evs...)
}

func (r *recorder) last() events.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.evs) == 0 {
		return nil
	}
	return r.evs[len(r.evs)-1]
}

func (r *recorder) reset() {
	r.mu.Lock()
	r.evs = nil
	r.mu.Unlock()
}
