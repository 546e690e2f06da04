// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gesture

import (
	"time"

	"cogentcore.org/gesture/events"
	"cogentcore.org/gesture/math32"
	"cogentcore.org/gesture/system"
)

const (
	// coastFrame is the inertia emission interval, one 60 fps frame.
	coastFrame = time.Second / 60

	// coastMinSpeed is the speed floor in px/sec below which an
	// inertia coast stops.
	coastMinSpeed = 30
)

// drag tracks a press-move-release session on a drag listener,
// emitting DragStart, Drag, and DragEnd with raw and bounds-clamped
// offsets. With keep-state enabled the total offset accumulates across
// sessions; with inertia enabled a fast release keeps the offset
// coasting under exponential damping, and DragEnd is deferred until
// the coast stops.
type drag struct {
	li *Listener

	active   bool
	owner    events.StreamID
	startPos math32.Vector2
	bounds   math32.Box2

	// carried is the cumulative offset folded in from prior sessions
	// when keep-state is enabled. Preserved across Cancel.
	carried math32.Vector2

	samples []sample

	coasting   bool
	coast      *time.Timer
	coastVel   math32.Vector2
	coastTotal math32.Vector2
	coastPos   math32.Vector2
	coastPage  math32.Vector2
}

// clamp applies the configured per-axis bounds to a total offset,
// returning the clamped offset and the per-axis out-of-bounds flags.
func (dr *drag) clamp(d math32.Vector2) (math32.Vector2, bool, bool) {
	cx, obx := dr.li.opts.Range.X.Clamp(d.X)
	cy, oby := dr.li.opts.Range.Y.Clamp(d.Y)
	return math32.Vec2(cx, cy), obx, oby
}

// emitDrag emits one drag-family event with the given total offset.
func (dr *drag) emitDrag(typ events.Types, sid events.StreamID, pos, page, total math32.Vector2, inertial bool, re *system.RawEvent) {
	clamped, obx, oby := dr.clamp(total)
	dev := &events.DragEvent{
		Base:         dr.li.newBase(typ, sid, pos, page),
		Delta:        total,
		Clamped:      clamped,
		OutOfBoundsX: obx,
		OutOfBoundsY: oby,
		Bounds:       dr.bounds,
		Inertial:     inertial,
	}
	dev.RawSrc = re
	dr.li.emit(dev)
}

func (dr *drag) phase(ev *events.Base, re *system.RawEvent) {
	switch ev.Typ {
	case events.Start:
		if dr.active {
			return
		}
		if dr.coasting {
			dr.finishCoast()
		}
		dr.active = true
		dr.owner = ev.Stream()
		dr.startPos = ev.Client
		dr.bounds = dr.li.Target.Bounds()
		dr.samples = dr.samples[:0]
		dr.samples = pushSample(dr.samples, ev.Client, ev.GenTime)
		dr.li.capture(dr.owner)
		dr.emitDrag(events.DragStart, dr.owner, ev.Client, ev.Page, dr.carried, false, re)

	case events.Move:
		if !dr.active || ev.Stream() != dr.owner {
			return
		}
		total := dr.carried.Add(ev.Client.Sub(dr.startPos))
		dr.samples = pushSample(dr.samples, ev.Client, ev.GenTime)
		dr.emitDrag(events.Drag, dr.owner, ev.Client, ev.Page, total, false, re)

	case events.End:
		if !dr.active || ev.Stream() != dr.owner {
			return
		}
		total := dr.carried.Add(ev.Client.Sub(dr.startPos))
		dr.li.release(dr.owner)
		dr.active = false

		vel := windowVelocity(dr.samples)
		if dr.li.opts.Inertia && vel.Length() >= dr.li.opts.FlingMinVelocity {
			dr.coasting = true
			dr.coastVel = vel
			dr.coastTotal = total
			dr.coastPos = ev.Client
			dr.coastPage = ev.Page
			stopTimer(&dr.coast)
			dr.coast = time.AfterFunc(coastFrame, dr.coastStep)
			return
		}
		if dr.li.opts.KeepState {
			dr.carried, _, _ = dr.clamp(total)
		}
		dr.emitDrag(events.DragEnd, dr.owner, ev.Client, ev.Page, total, false, re)

	case events.Cancel:
		if dr.coasting {
			dr.finishCoast()
		}
		if !dr.active || ev.Stream() != dr.owner {
			return
		}
		// in-flight session abandoned; carried offset preserved
		dr.li.release(dr.owner)
		dr.active = false
	}
}

// coastStep advances the inertia coast by one frame: velocity is
// damped, the offset advances, and a Drag event is emitted; the coast
// finishes when speed drops below the floor.
func (dr *drag) coastStep() {
	en := dr.li.en
	en.mu.Lock()
	if !dr.coasting || dr.li.removed {
		en.mu.Unlock()
		return
	}
	dr.coastVel = dr.coastVel.MulScalar(dr.li.opts.FlingDecay)
	step := dr.coastVel.DivScalar(60)
	dr.coastTotal = dr.coastTotal.Add(step)
	dr.coastPos = dr.coastPos.Add(step)
	dr.coastPage = dr.coastPage.Add(step)
	dr.emitDrag(events.Drag, dr.owner, dr.coastPos, dr.coastPage, dr.coastTotal, true, nil)
	if dr.coastVel.Length() < coastMinSpeed {
		dr.finishCoast()
	} else {
		dr.coast = time.AfterFunc(coastFrame, dr.coastStep)
	}
	en.mu.Unlock()
	en.flush()
}

// finishCoast ends an inertia coast: the coasted offset folds into the
// carried offset under keep-state, and the deferred DragEnd is
// emitted. Engine mutex held.
func (dr *drag) finishCoast() {
	stopTimer(&dr.coast)
	dr.coasting = false
	if dr.li.opts.KeepState {
		dr.carried, _, _ = dr.clamp(dr.coastTotal)
	}
	dr.emitDrag(events.DragEnd, dr.owner, dr.coastPos, dr.coastPage, dr.coastTotal, true, nil)
}

func (dr *drag) stop() {
	stopTimer(&dr.coast)
	dr.coasting = false
	if dr.active {
		dr.li.release(dr.owner)
	}
	dr.active = false
	dr.samples = nil
}
