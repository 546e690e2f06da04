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

// longClick recognizes a press held in place for the configured delay:
// Idle -> Armed (timer running) -> Triggered or back to Idle. A press
// released before the timer fires is a regular click and emits
// nothing. While an attempt is owned by one stream identity, starts
// from any identity are ignored until it resolves.
type longClick struct {
	li *Listener

	// active is whether an attempt is in progress (Armed or Triggered).
	active    bool
	triggered bool
	owner     events.StreamID
	startPos  math32.Vector2
	startPage math32.Vector2
	startTime time.Time

	// timer is the arm timer; grace suppresses re-arming briefly after
	// an attempt resolves. One handle each, always stopped before
	// being replaced.
	timer   *time.Timer
	grace   *time.Timer
	inGrace bool
}

func (lc *longClick) phase(ev *events.Base, re *system.RawEvent) {
	switch ev.Typ {
	case events.Start:
		if lc.active || lc.inGrace {
			return
		}
		lc.active = true
		lc.triggered = false
		lc.owner = ev.Stream()
		lc.startPos = ev.Client
		lc.startPage = ev.Page
		lc.startTime = ev.GenTime
		lc.li.capture(lc.owner)
		stopTimer(&lc.timer)
		lc.timer = time.AfterFunc(lc.li.opts.LongClickDelay, lc.fire)

	case events.End, events.Cancel:
		if !lc.active || ev.Stream() != lc.owner {
			return
		}
		stopTimer(&lc.timer)
		lc.li.release(lc.owner)
		lc.active = false
		lc.triggered = false
		lc.beginGrace()
	}
}

// fire runs when the arm timer elapses with the press still down.
func (lc *longClick) fire() {
	en := lc.li.en
	en.mu.Lock()
	if !lc.active || lc.triggered || lc.li.removed {
		en.mu.Unlock()
		return
	}
	lc.triggered = true
	lc.timer = nil
	logx.Debug("gesture: longclick fired", "stream", lc.owner.String())
	ev := &events.LongClickEvent{
		Base:     lc.li.newBase(events.LongClick, lc.owner, lc.startPos, lc.startPage),
		Duration: lc.li.opts.LongClickDelay,
	}
	lc.li.emit(ev)
	lc.li.release(lc.owner)
	en.mu.Unlock()
	en.flush()
}

// beginGrace suppresses re-arming until the grace delay elapses, so
// trailing synthetic events from the same physical press cannot start
// a second attempt. Engine mutex held.
func (lc *longClick) beginGrace() {
	stopTimer(&lc.grace)
	lc.inGrace = true
	lc.grace = time.AfterFunc(lc.li.opts.GraceDelay, func() {
		en := lc.li.en
		en.mu.Lock()
		lc.inGrace = false
		lc.grace = nil
		en.mu.Unlock()
	})
}

func (lc *longClick) stop() {
	stopTimer(&lc.timer)
	stopTimer(&lc.grace)
	if lc.active {
		lc.li.release(lc.owner)
	}
	lc.active = false
	lc.triggered = false
	lc.inGrace = false
}
