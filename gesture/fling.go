// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gesture

import (
	"time"

	"cogentcore.org/gesture/events"
	"cogentcore.org/gesture/logx"
	"cogentcore.org/gesture/system"
)

// fling recognizes a release with velocity: positions are sampled over
// a bounded window during the stroke, and on release the velocity
// between the oldest and newest retained samples decides whether a
// Fling fires. The event carries the velocity vector and a damped
// position prediction (see [events.FlingEvent.PositionAt]).
type fling struct {
	li *Listener

	active  bool
	owner   events.StreamID
	samples []sample

	grace   *time.Timer
	inGrace bool
}

func (fl *fling) phase(ev *events.Base, re *system.RawEvent) {
	switch ev.Typ {
	case events.Start:
		if fl.active || fl.inGrace {
			return
		}
		fl.active = true
		fl.owner = ev.Stream()
		fl.samples = fl.samples[:0]
		fl.samples = pushSample(fl.samples, ev.Client, ev.GenTime)
		fl.li.capture(fl.owner)

	case events.Move:
		if !fl.active || ev.Stream() != fl.owner {
			return
		}
		fl.samples = pushSample(fl.samples, ev.Client, ev.GenTime)

	case events.End:
		if !fl.active || ev.Stream() != fl.owner {
			return
		}
		vel := windowVelocity(fl.samples)
		speed := vel.Length()
		if speed >= fl.li.opts.FlingMinVelocity {
			logx.Debug("gesture: fling fired", "stream", fl.owner.String(), "speed", speed)
			fev := &events.FlingEvent{
				Base:      fl.li.newBase(events.Fling, fl.owner, ev.Client, ev.Page),
				Direction: classifyDirection(vel),
				Velocity:  vel,
				Speed:     speed,
				Decay:     fl.li.opts.FlingDecay,
			}
			fev.RawSrc = re
			fl.li.emit(fev)
		}
		fl.li.release(fl.owner)
		fl.active = false
		fl.beginGrace()

	case events.Cancel:
		if !fl.active || ev.Stream() != fl.owner {
			return
		}
		fl.li.release(fl.owner)
		fl.active = false
	}
}

func (fl *fling) beginGrace() {
	stopTimer(&fl.grace)
	fl.inGrace = true
	fl.grace = time.AfterFunc(fl.li.opts.GraceDelay, func() {
		en := fl.li.en
		en.mu.Lock()
		fl.inGrace = false
		fl.grace = nil
		en.mu.Unlock()
	})
}

func (fl *fling) stop() {
	stopTimer(&fl.grace)
	if fl.active {
		fl.li.release(fl.owner)
	}
	fl.active = false
	fl.inGrace = false
	fl.samples = nil
}
