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

// machine is one per-listener gesture state machine. Each gesture type
// has its own implementation carrying only the working state that
// gesture needs, so drag state can never appear on a swipe listener.
// All methods are called with the engine mutex held.
type machine interface {
	// phase consumes one normalized phase event (Start, Move, End,
	// or Cancel) together with its originating raw event.
	phase(ev *events.Base, re *system.RawEvent)

	// stop cancels any pending timers, releases any held capture, and
	// resets to idle, for listener teardown and engine disposal.
	stop()
}

// wheeler is implemented by machines that additionally consume wheel
// ticks (rotate, pinch-zoom).
type wheeler interface {
	wheel(re *system.RawEvent)
}

// stopTimer stops and clears a pending timer handle in place. Always
// used before replacing a timer and on every state-machine exit path,
// so a stale timer can never fire against reset state.
func stopTimer(tm **time.Timer) {
	if *tm != nil {
		(*tm).Stop()
		*tm = nil
	}
}

// classifyDirection returns the dominant axis direction of the given
// displacement or velocity vector. Horizontal wins ties.
func classifyDirection(d math32.Vector2) events.Directions {
	if d.X == 0 && d.Y == 0 {
		return events.NoDirection
	}
	if math32.Abs(d.X) >= math32.Abs(d.Y) {
		if d.X < 0 {
			return events.Left
		}
		return events.Right
	}
	if d.Y < 0 {
		return events.Up
	}
	return events.Down
}

// wrapDeg wraps an angle delta in degrees to the signed shortest path
// in (-180, 180], so a sequence crossing the 0/360 boundary reports a
// small delta instead of a full-turn jump.
func wrapDeg(d float32) float32 {
	d = math32.Mod(d, 360)
	if d > 180 {
		d -= 360
	} else if d <= -180 {
		d += 360
	}
	return d
}

// normDeg normalizes an accumulated angle into [0, 360).
func normDeg(a float32) float32 {
	a = math32.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}

// angleBetweenDeg returns the angle in degrees of the vector from a
// to b, relative to the positive X axis.
func angleBetweenDeg(a, b math32.Vector2) float32 {
	return math32.RadToDeg(b.Angle(a))
}

// rotateNoiseFloor is the minimum angle delta in degrees that pen and
// two-finger rotation report; smaller deltas are sensor noise.
const rotateNoiseFloor = 1

// sample is one position observation in a velocity estimation window.
type sample struct {
	pos math32.Vector2
	t   time.Time
}

// flingSamples is the size of the velocity sample window: the most
// recent positions retained for release-velocity estimation.
const flingSamples = 5

// windowVelocity computes the per-axis velocity in px/sec between the
// oldest and newest retained samples. It returns the zero vector when
// fewer than two samples are retained or no time elapsed between them.
func windowVelocity(samples []sample) math32.Vector2 {
	n := len(samples)
	if n < 2 {
		return math32.Vector2{}
	}
	oldest, newest := samples[0], samples[n-1]
	dt := float32(newest.t.Sub(oldest.t).Seconds())
	if dt <= 0 {
		return math32.Vector2{}
	}
	return newest.pos.Sub(oldest.pos).DivScalar(dt)
}

// pushSample appends a sample, evicting the oldest beyond the
// window size.
func pushSample(samples []sample, pos math32.Vector2, t time.Time) []sample {
	samples = append(samples, sample{pos: pos, t: t})
	if len(samples) > flingSamples {
		samples = samples[1:]
	}
	return samples
}
