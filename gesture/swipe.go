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

// swipe recognizes a quick directional stroke: a press-move-release
// sequence that covers at least the swipe threshold distance within
// the swipe timeout. Direction is classified by the dominant axis,
// horizontal winning ties. Nothing is emitted during moves.
type swipe struct {
	li *Listener

	active    bool
	owner     events.StreamID
	startPos  math32.Vector2
	startTime time.Time
	cur       math32.Vector2
	curPage   math32.Vector2

	grace   *time.Timer
	inGrace bool
}

func (sw *swipe) phase(ev *events.Base, re *system.RawEvent) {
	switch ev.Typ {
	case events.Start:
		if sw.active || sw.inGrace {
			return
		}
		sw.active = true
		sw.owner = ev.Stream()
		sw.startPos = ev.Client
		sw.startTime = ev.GenTime
		sw.cur = ev.Client
		sw.curPage = ev.Page
		sw.li.capture(sw.owner)

	case events.Move:
		if !sw.active || ev.Stream() != sw.owner {
			return
		}
		sw.cur = ev.Client
		sw.curPage = ev.Page

	case events.End:
		if !sw.active || ev.Stream() != sw.owner {
			return
		}
		sw.cur = ev.Client
		sw.curPage = ev.Page
		elapsed := ev.GenTime.Sub(sw.startTime)
		disp := sw.cur.Sub(sw.startPos)
		dist := disp.Length()
		if elapsed <= sw.li.opts.SwipeTimeout && dist >= sw.li.opts.SwipeThreshold {
			speed := float32(0)
			if secs := float32(elapsed.Seconds()); secs > 0 {
				speed = dist / secs
			}
			sev := &events.SwipeEvent{
				Base:      sw.li.newBase(events.Swipe, sw.owner, sw.cur, sw.curPage),
				Direction: classifyDirection(disp),
				Distance:  dist,
				Duration:  elapsed,
				Speed:     speed,
			}
			sev.RawSrc = re
			sw.li.emit(sev)
		}
		sw.li.release(sw.owner)
		sw.active = false
		sw.beginGrace()

	case events.Cancel:
		if !sw.active || ev.Stream() != sw.owner {
			return
		}
		sw.li.release(sw.owner)
		sw.active = false
	}
}

func (sw *swipe) beginGrace() {
	stopTimer(&sw.grace)
	sw.inGrace = true
	sw.grace = time.AfterFunc(sw.li.opts.GraceDelay, func() {
		en := sw.li.en
		en.mu.Lock()
		sw.inGrace = false
		sw.grace = nil
		en.mu.Unlock()
	})
}

func (sw *swipe) stop() {
	stopTimer(&sw.grace)
	if sw.active {
		sw.li.release(sw.owner)
	}
	sw.active = false
	sw.inGrace = false
}
