// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"fmt"
	"time"

	"cogentcore.org/gesture/math32"
)

// LongClickEvent is the payload of a [LongClick] gesture: a press held
// in place for the configured delay. Pos is the press start position.
type LongClickEvent struct {
	Base

	// Duration is how long the press had been held when the event
	// fired, equal to the configured long-click delay.
	Duration time.Duration
}

func (ev *LongClickEvent) String() string {
	return fmt.Sprintf("%v{Stream: %v, Pos: %v, Duration: %v}", ev.Typ, ev.Stream(), ev.Client, ev.Duration)
}

// DoubleClickEvent is the payload of a [DoubleClick] gesture.
// Pos is the position of the first tap.
type DoubleClickEvent struct {
	Base

	// Interval is the time between the two tap starts.
	Interval time.Duration
}

func (ev *DoubleClickEvent) String() string {
	return fmt.Sprintf("%v{Stream: %v, Pos: %v, Interval: %v}", ev.Typ, ev.Stream(), ev.Client, ev.Interval)
}

// SwipeEvent is the payload of a [Swipe] gesture: a quick directional
// stroke. Pos is the stroke end position.
type SwipeEvent struct {
	Base

	// Direction is the dominant axis direction of the stroke
	// (horizontal wins ties).
	Direction Directions

	// Distance is the Euclidean start-to-end distance in px.
	Distance float32

	// Duration is the start-to-end elapsed time.
	Duration time.Duration

	// Speed is Distance divided by Duration, in px/sec.
	Speed float32
}

func (ev *SwipeEvent) String() string {
	return fmt.Sprintf("%v{Stream: %v, Direction: %v, Distance: %v, Duration: %v}", ev.Typ, ev.Stream(), ev.Direction, ev.Distance, ev.Duration)
}

// FlingEvent is the payload of a [Fling] gesture: a release with
// velocity above the configured minimum.
type FlingEvent struct {
	Base

	// Direction is the dominant axis direction of the velocity.
	Direction Directions

	// Velocity is the per-axis release velocity in px/sec.
	Velocity math32.Vector2

	// Speed is the magnitude of Velocity in px/sec.
	Speed float32

	// Decay is the per-frame damping factor used by [FlingEvent.PositionAt].
	Decay float32
}

// PositionAt predicts the coasting position of the flung point t after
// release, applying exponential damping normalized to a 60 fps frame
// rate: each axis advances by v * decay^(t*60) integrated over frames.
func (ev *FlingEvent) PositionAt(t time.Duration) math32.Vector2 {
	frames := float32(t.Seconds()) * 60
	if frames <= 0 || ev.Decay >= 1 || ev.Decay <= 0 {
		return ev.Client
	}
	// geometric series sum of per-frame steps (v/60) * decay^i
	scale := (1 - math32.Pow(ev.Decay, frames)) / (1 - ev.Decay)
	step := ev.Velocity.DivScalar(60)
	return ev.Client.Add(step.MulScalar(scale))
}

func (ev *FlingEvent) String() string {
	return fmt.Sprintf("%v{Stream: %v, Direction: %v, Velocity: %v}", ev.Typ, ev.Stream(), ev.Direction, ev.Velocity)
}

// DragEvent is the payload of [DragStart], [Drag], and [DragEnd]
// events. Pos is the current pointer position.
type DragEvent struct {
	Base

	// Delta is the raw total drag offset: the in-flight session delta
	// plus any offset carried over from prior sessions on the same
	// listener (when keep-state is enabled).
	Delta math32.Vector2

	// Clamped is Delta clamped per-axis to the configured bounds.
	// Equal to Delta when the axis is unconstrained.
	Clamped math32.Vector2

	// OutOfBoundsX is whether the raw X delta exceeded the configured
	// X bounds and was clamped.
	OutOfBoundsX bool

	// OutOfBoundsY is whether the raw Y delta exceeded the configured
	// Y bounds and was clamped.
	OutOfBoundsY bool

	// Bounds is the bounding rectangle of the target element,
	// captured at drag start.
	Bounds math32.Box2

	// Inertial is whether this event was emitted by the post-release
	// inertia loop rather than by pointer movement.
	Inertial bool
}

func (ev *DragEvent) String() string {
	return fmt.Sprintf("%v{Stream: %v, Delta: %v, Clamped: %v}", ev.Typ, ev.Stream(), ev.Delta, ev.Clamped)
}

// RotateEvent is the payload of a [Rotate] gesture, with the same shape
// for all three sources (wheel, pen, two-finger).
type RotateEvent struct {
	Base

	// Angle is the accumulated angle normalized into [0, 360).
	Angle float32

	// Total is the total signed rotation in degrees since tracking
	// began, not normalized.
	Total float32

	// Delta is the signed shortest-path change in degrees since the
	// previous emission.
	Delta float32

	// Center is the rotation center: the midpoint of the two touches
	// for two-finger rotation, the event position otherwise.
	Center math32.Vector2

	// Touches are the two touch positions for two-finger rotation,
	// zero otherwise.
	Touches [2]math32.Vector2

	// Source is the input source the rotation was derived from.
	Source RotateSources
}

func (ev *RotateEvent) String() string {
	return fmt.Sprintf("%v{Stream: %v, Angle: %v, Delta: %v, Source: %v}", ev.Typ, ev.Stream(), ev.Angle, ev.Delta, ev.Source)
}

// PinchZoomEvent is the payload of a [PinchZoom] gesture, with the same
// shape for both sources (wheel, two-finger).
type PinchZoomEvent struct {
	Base

	// Scale is the accumulated total scale factor, clamped to the
	// configured [min, max] range.
	Scale float32

	// Delta is the per-step scale factor applied by this event.
	Delta float32

	// Distance is the current inter-finger distance in px for
	// two-finger pinch, 0 for wheel.
	Distance float32

	// Center is the pinch center: the midpoint of the two touches for
	// two-finger pinch, the event position otherwise.
	Center math32.Vector2

	// Touches are the two touch positions for two-finger pinch,
	// zero otherwise.
	Touches [2]math32.Vector2

	// Source is the input source the scale was derived from.
	Source RotateSources
}

func (ev *PinchZoomEvent) String() string {
	return fmt.Sprintf("%v{Stream: %v, Scale: %v, Delta: %v, Source: %v}", ev.Typ, ev.Stream(), ev.Scale, ev.Delta, ev.Source)
}
