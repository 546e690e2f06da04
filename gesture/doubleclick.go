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

// doubleClick recognizes two press starts within the configured delay.
// The event fires on the second start, carrying the inter-tap interval
// and the first tap's position.
type doubleClick struct {
	li *Listener

	// active is whether a first-tap press is currently down.
	active bool

	// completed marks that the current sequence already emitted, so a
	// third rapid tap cannot chain a second DoubleClick without a
	// fresh first tap.
	completed bool

	owner     events.StreamID
	firstPos  math32.Vector2
	firstPage math32.Vector2
	firstTime time.Time

	// lastTapTime is the start time of the most recent recorded tap.
	// Deliberately preserved across Cancel so a cancel between two
	// legitimate taps does not break detection.
	lastTapTime time.Time
}

func (dc *doubleClick) phase(ev *events.Base, re *system.RawEvent) {
	switch ev.Typ {
	case events.Start:
		now := ev.GenTime
		if !dc.lastTapTime.IsZero() && !dc.completed &&
			now.Sub(dc.lastTapTime) < dc.li.opts.DoubleClickDelay {
			dev := &events.DoubleClickEvent{
				Base:     dc.li.newBase(events.DoubleClick, ev.Stream(), dc.firstPos, dc.firstPage),
				Interval: now.Sub(dc.lastTapTime),
			}
			dev.RawSrc = re
			dc.li.emit(dev)
			dc.completed = true
			dc.lastTapTime = time.Time{}
			return
		}
		// record as the first tap of a potential pair
		dc.active = true
		dc.completed = false
		dc.owner = ev.Stream()
		dc.firstPos = ev.Client
		dc.firstPage = ev.Page
		dc.firstTime = now
		dc.lastTapTime = now
		dc.li.capture(dc.owner)

	case events.End:
		if !dc.active || ev.Stream() != dc.owner {
			return
		}
		dc.li.release(dc.owner)
		dc.active = false
		// a stale first tap cannot combine with a much later tap
		if ev.GenTime.Sub(dc.firstTime) > dc.li.opts.DoubleClickDelay {
			dc.lastTapTime = time.Time{}
		}

	case events.Cancel:
		if !dc.active || ev.Stream() != dc.owner {
			return
		}
		dc.li.release(dc.owner)
		dc.active = false
	}
}

func (dc *doubleClick) stop() {
	if dc.active {
		dc.li.release(dc.owner)
	}
	dc.active = false
	dc.completed = false
	dc.lastTapTime = time.Time{}
}
