// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gesture

import (
	"cogentcore.org/gesture/events"
	"cogentcore.org/gesture/math32"
	"cogentcore.org/gesture/system"
)

// contact is one live touch contact tracked for two-finger gestures.
type contact struct {
	pos  math32.Vector2
	page math32.Vector2
}

// rotate accumulates rotation from three independent sources feeding
// the same angle state: modifier-qualified wheel ticks, pen twist
// deltas from a recorded baseline, and two-finger twist with
// shortest-path wrapping. All three emit the same payload shape, so
// callbacks are source-agnostic.
type rotate struct {
	li *Listener

	// angle is the accumulated angle normalized into [0, 360);
	// total is the unnormalized signed rotation.
	angle float32
	total float32

	// pen baseline tracking
	penActive bool
	penOwner  events.StreamID
	penBase   float32

	// two-finger tracking
	contacts  map[int64]contact
	tfActive  bool
	ids       [2]int64
	lastAngle float32
}

func (rt *rotate) apply(delta float32) {
	rt.total += delta
	rt.angle = normDeg(rt.angle + delta)
}

func (rt *rotate) wheel(re *system.RawEvent) {
	// the rotate modifier must be the only one held, so it cannot be
	// confused with the pinch-zoom modifier combination
	if !re.Mods.Only(rt.li.opts.RotateModifier) {
		return
	}
	d := re.WheelDelta.Y
	if d == 0 {
		d = re.WheelDelta.X
	}
	if d == 0 {
		return
	}
	delta := -math32.Sign(d) * rt.li.opts.RotateStepDeg
	rt.apply(delta)
	sid := events.StreamID{Device: events.Mouse, ID: events.MouseID}
	rev := &events.RotateEvent{
		Base:   rt.li.newBase(events.Rotate, sid, re.Client, re.Page),
		Angle:  rt.angle,
		Total:  rt.total,
		Delta:  delta,
		Center: re.Client,
		Source: events.WheelSource,
	}
	rev.Mods = re.Mods
	rev.RawSrc = re
	rt.li.emit(rev)
}

func (rt *rotate) phase(ev *events.Base, re *system.RawEvent) {
	switch ev.Dev {
	case events.Pen:
		rt.pen(ev, re)
	case events.TouchScreen:
		rt.touch(ev, re)
	}
}

// pen accumulates twist deltas from the baseline recorded on the first
// pen event of a stream. The baseline event itself emits nothing.
func (rt *rotate) pen(ev *events.Base, re *system.RawEvent) {
	switch ev.Typ {
	case events.Start, events.Move:
		if !rt.penActive {
			rt.penActive = true
			rt.penOwner = ev.Stream()
			rt.penBase = re.Twist
			return
		}
		if ev.Stream() != rt.penOwner {
			return
		}
		delta := wrapDeg(re.Twist - rt.penBase)
		if math32.Abs(delta) < rotateNoiseFloor {
			return
		}
		rt.penBase = re.Twist
		rt.apply(delta)
		rev := &events.RotateEvent{
			Base:   rt.li.newBase(events.Rotate, rt.penOwner, ev.Client, ev.Page),
			Angle:  rt.angle,
			Total:  rt.total,
			Delta:  delta,
			Center: ev.Client,
			Source: events.PenSource,
		}
		rev.RawSrc = re
		rt.li.emit(rev)

	case events.End, events.Cancel:
		if ev.Stream() == rt.penOwner {
			rt.penActive = false
		}
	}
}

// touch tracks live contacts and derives rotation from the angle of
// the vector between exactly two of them, matched by identifier in
// either order.
func (rt *rotate) touch(ev *events.Base, re *system.RawEvent) {
	if rt.contacts == nil {
		rt.contacts = map[int64]contact{}
	}
	switch ev.Typ {
	case events.Start, events.Move:
		rt.contacts[ev.PointerID] = contact{pos: ev.Client, page: ev.Page}
	case events.End, events.Cancel:
		delete(rt.contacts, ev.PointerID)
	}

	if !rt.tfActive {
		if len(rt.contacts) != 2 {
			return
		}
		ids := contactIDs(rt.contacts)
		p0, p1 := rt.contacts[ids[0]].pos, rt.contacts[ids[1]].pos
		if p0.DistanceTo(p1) < rt.li.opts.MinFingerDistance {
			return
		}
		rt.tfActive = true
		rt.ids = ids
		rt.lastAngle = angleBetweenDeg(p0, p1)
		return
	}

	c0, ok0 := rt.contacts[rt.ids[0]]
	c1, ok1 := rt.contacts[rt.ids[1]]
	if !ok0 || !ok1 {
		// fewer than two of the tracked touches remain
		rt.tfActive = false
		return
	}
	if ev.Typ != events.Move {
		return
	}
	a := angleBetweenDeg(c0.pos, c1.pos)
	delta := wrapDeg(a - rt.lastAngle)
	if math32.Abs(delta) < rotateNoiseFloor {
		return
	}
	rt.lastAngle = a
	rt.apply(delta)
	center := c0.pos.Lerp(c1.pos, 0.5)
	sid := events.StreamID{Device: events.TouchScreen, ID: rt.ids[0]}
	rev := &events.RotateEvent{
		Base:    rt.li.newBase(events.Rotate, sid, center, c0.page.Lerp(c1.page, 0.5)),
		Angle:   rt.angle,
		Total:   rt.total,
		Delta:   delta,
		Center:  center,
		Touches: [2]math32.Vector2{c0.pos, c1.pos},
		Source:  events.TwoFingerSource,
	}
	rev.RawSrc = re
	rt.li.emit(rev)
}

func (rt *rotate) stop() {
	rt.penActive = false
	rt.tfActive = false
	rt.contacts = nil
}

// contactIDs returns the two contact identifiers in a stable order.
func contactIDs(cs map[int64]contact) [2]int64 {
	var ids [2]int64
	i := 0
	for id := range cs {
		if i < 2 {
			ids[i] = id
		}
		i++
	}
	if ids[0] > ids[1] {
		ids[0], ids[1] = ids[1], ids[0]
	}
	return ids
}
