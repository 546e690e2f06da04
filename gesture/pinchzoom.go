// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gesture

import (
	"cogentcore.org/gesture/events"
	"cogentcore.org/gesture/logx"
	"cogentcore.org/gesture/math32"
	"cogentcore.org/gesture/system"
)

// pinchZoom accumulates a scale factor from two sources feeding the
// same state: modifier-qualified wheel ticks, and the ratio of
// successive two-finger distances. The accumulated scale is clamped to
// the configured [min, max] range, and per-step two-finger factors
// outside the guard band are rejected as mis-tracking.
type pinchZoom struct {
	li *Listener

	// scale is the accumulated total scale, starting at 1.
	scale float32

	contacts map[int64]contact
	tfActive bool
	ids      [2]int64
	lastDist float32
}

func (pz *pinchZoom) wheel(re *system.RawEvent) {
	if !re.Mods.Only(pz.li.opts.PinchZoomModifiers) {
		return
	}
	d := re.WheelDelta.Y
	if d == 0 {
		return
	}
	factor := 1 + pz.li.opts.PinchZoomStep
	if d > 0 {
		factor = 1 - pz.li.opts.PinchZoomStep
	}
	pz.scale = math32.Clamp(pz.scale*factor, pz.li.opts.MinScale, pz.li.opts.MaxScale)
	sid := events.StreamID{Device: events.Mouse, ID: events.MouseID}
	pev := &events.PinchZoomEvent{
		Base:   pz.li.newBase(events.PinchZoom, sid, re.Client, re.Page),
		Scale:  pz.scale,
		Delta:  factor,
		Center: re.Client,
		Source: events.WheelSource,
	}
	pev.Mods = re.Mods
	pev.RawSrc = re
	pz.li.emit(pev)
}

func (pz *pinchZoom) phase(ev *events.Base, re *system.RawEvent) {
	if ev.Dev != events.TouchScreen {
		return
	}
	if pz.contacts == nil {
		pz.contacts = map[int64]contact{}
	}
	switch ev.Typ {
	case events.Start, events.Move:
		pz.contacts[ev.PointerID] = contact{pos: ev.Client, page: ev.Page}
	case events.End, events.Cancel:
		delete(pz.contacts, ev.PointerID)
	}

	if !pz.tfActive {
		if len(pz.contacts) != 2 {
			return
		}
		ids := contactIDs(pz.contacts)
		d := pz.contacts[ids[0]].pos.DistanceTo(pz.contacts[ids[1]].pos)
		if d < pz.li.opts.MinFingerDistance {
			return
		}
		pz.tfActive = true
		pz.ids = ids
		pz.lastDist = d
		return
	}

	c0, ok0 := pz.contacts[pz.ids[0]]
	c1, ok1 := pz.contacts[pz.ids[1]]
	if !ok0 || !ok1 {
		pz.tfActive = false
		return
	}
	if ev.Typ != events.Move {
		return
	}
	d := c0.pos.DistanceTo(c1.pos)
	if pz.lastDist <= 0 || d <= 0 {
		pz.lastDist = d
		return
	}
	factor := d / pz.lastDist
	if factor < pz.li.opts.PinchGuardMin || factor > pz.li.opts.PinchGuardMax {
		// sensor noise or contact mis-tracking: re-baseline, no emit
		logx.Debug("gesture: pinch step rejected", "factor", factor)
		pz.lastDist = d
		return
	}
	pz.lastDist = d
	pz.scale = math32.Clamp(pz.scale*factor, pz.li.opts.MinScale, pz.li.opts.MaxScale)
	center := c0.pos.Lerp(c1.pos, 0.5)
	sid := events.StreamID{Device: events.TouchScreen, ID: pz.ids[0]}
	pev := &events.PinchZoomEvent{
		Base:     pz.li.newBase(events.PinchZoom, sid, center, c0.page.Lerp(c1.page, 0.5)),
		Scale:    pz.scale,
		Delta:    factor,
		Distance: d,
		Center:   center,
		Touches:  [2]math32.Vector2{c0.pos, c1.pos},
		Source:   events.TwoFingerSource,
	}
	pev.RawSrc = re
	pz.li.emit(pev)
}

func (pz *pinchZoom) stop() {
	pz.tfActive = false
	pz.contacts = nil
}
