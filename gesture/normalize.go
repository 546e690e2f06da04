// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gesture

import (
	"time"

	"cogentcore.org/gesture/events"
	"cogentcore.org/gesture/system"
)

// mousePressure is the synthetic pressure reported for plain mouse
// events while a button is pressed.
const mousePressure = 0.5

// normalizePhase converts one raw native event into canonical phase
// events. Touch kinds produce one event per contact in the list
// relevant to the phase (the active list for start/move, the changed
// list for end/cancel); mouse and pointer kinds produce exactly one.
// A malformed event with no usable geometry produces a single event
// with zero geometry rather than failing.
func normalizePhase(op *Options, phase events.Types, re *system.RawEvent) []*events.Base {
	now := time.Now()
	switch re.Kind {
	case system.TouchStart, system.TouchMove, system.TouchEnd, system.TouchCancel:
		list := re.Touches
		if phase == events.End || phase == events.Cancel {
			list = re.Changed
		}
		if len(list) == 0 {
			ev := &events.Base{Typ: phase, Dev: events.TouchScreen, Primary: true, Mods: re.Mods, GenTime: now, RawSrc: re}
			return []*events.Base{ev}
		}
		evs := make([]*events.Base, 0, len(list))
		for i, tp := range list {
			evs = append(evs, &events.Base{
				Typ:       phase,
				Dev:       events.TouchScreen,
				PointerID: tp.ID,
				Client:    tp.Client.Add(op.TouchOffset),
				Page:      tp.Page.Add(op.TouchOffset),
				Press:     tp.Pressure,
				Primary:   i == 0,
				Mods:      re.Mods,
				GenTime:   now,
				RawSrc:    re,
			})
		}
		return evs

	case system.PointerDown, system.PointerMove, system.PointerUp, system.PointerCancel:
		dev := re.PointerType
		if dev == events.NoDevice {
			dev = events.Mouse
		}
		ev := &events.Base{
			Typ:       phase,
			Dev:       dev,
			PointerID: re.PointerID,
			Client:    re.Client,
			Page:      re.Page,
			Press:     re.Pressure,
			Primary:   !re.Flags.HasFlag(system.RawPrimaryKnown) || re.Flags.HasFlag(system.RawPrimary),
			Mods:      re.Mods,
			GenTime:   now,
			RawSrc:    re,
		}
		if dev == events.TouchScreen {
			// same contact-point offset as the touch channel
			ev.Client = ev.Client.Add(op.TouchOffset)
			ev.Page = ev.Page.Add(op.TouchOffset)
		}
		return []*events.Base{ev}

	case system.MouseDown, system.MouseMove, system.MouseUp:
		ev := &events.Base{
			Typ:       phase,
			Dev:       events.Mouse,
			PointerID: events.MouseID,
			Client:    re.Client,
			Page:      re.Page,
			Primary:   true,
			Mods:      re.Mods,
			GenTime:   now,
			RawSrc:    re,
		}
		if re.Flags.HasFlag(system.RawInContact) {
			ev.Press = mousePressure
		}
		return []*events.Base{ev}
	}
	return nil
}
