// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gesture

import (
	"os"
	"time"

	"cogentcore.org/gesture/events"
	"cogentcore.org/gesture/events/key"
	"cogentcore.org/gesture/math32"
	"github.com/jinzhu/copier"
	"github.com/pelletier/go-toml/v2"
)

// AxisRange is an optional [Min, Max] bound for one drag axis.
// The zero value is unconstrained.
type AxisRange struct {
	// Bounded is whether this axis is constrained at all.
	Bounded bool

	Min float32
	Max float32
}

// Bounds returns a constrained [AxisRange] with the given limits.
func Bounds(min, max float32) AxisRange {
	return AxisRange{Bounded: true, Min: min, Max: max}
}

// Clamp returns v clamped to the range, and whether v was out of
// bounds. An unconstrained range returns v unchanged.
func (ar AxisRange) Clamp(v float32) (float32, bool) {
	if !ar.Bounded {
		return v, false
	}
	cv := math32.Clamp(v, ar.Min, ar.Max)
	return cv, cv != v
}

// DragRange bounds drag offsets per axis; an unconstrained axis
// (the zero value) allows free movement on that axis.
type DragRange struct {
	X AxisRange
	Y AxisRange
}

// Options are the thresholds, timeouts, and flags governing gesture
// recognition. The engine holds a defaults instance that each listener
// registration clones, optionally overridden per listener.
type Options struct {

	// LongClickDelay is how long a press must be held in place before
	// a LongClick event fires.
	LongClickDelay time.Duration `default:"500ms"`

	// DoubleClickDelay is the maximum time between two press starts
	// for them to count as a DoubleClick.
	DoubleClickDelay time.Duration `default:"300ms"`

	// GraceDelay is how long after a gesture resolves before its state
	// machine will arm again, absorbing trailing platform events from
	// the same physical gesture.
	GraceDelay time.Duration `default:"300ms"`

	// SwipeThreshold is the minimum start-to-end distance in px for a
	// stroke to count as a Swipe.
	SwipeThreshold float32 `default:"50"`

	// SwipeTimeout is the maximum stroke duration for a Swipe.
	SwipeTimeout time.Duration `default:"300ms"`

	// FlingMinVelocity is the minimum release speed in px/sec for a
	// Fling to fire.
	FlingMinVelocity float32 `default:"600"`

	// FlingDecay is the per-frame damping factor for fling position
	// prediction and drag inertia, normalized to 60 fps.
	FlingDecay float32 `default:"0.95"`

	// RotateStepDeg is the angle change per modifier-qualified wheel
	// tick, in degrees.
	RotateStepDeg float32 `default:"5"`

	// RotateModifier is the modifier key that qualifies a wheel tick
	// as rotation, when it is the only modifier held down.
	RotateModifier key.Modifiers

	// PinchZoomStep is the scale change per modifier-qualified wheel
	// tick: each tick multiplies scale by (1 ± PinchZoomStep).
	PinchZoomStep float32 `default:"0.1"`

	// PinchZoomModifiers is the modifier combination that qualifies a
	// wheel tick as pinch-zoom.
	PinchZoomModifiers key.Modifiers

	// MinScale and MaxScale clamp the accumulated pinch-zoom scale.
	MinScale float32 `default:"0.1"`
	MaxScale float32 `default:"10"`

	// PinchGuardMin and PinchGuardMax bound the per-step two-finger
	// scale factor; steps outside the band are rejected as sensor
	// noise or contact mis-tracking.
	PinchGuardMin float32 `default:"0.5"`
	PinchGuardMax float32 `default:"2"`

	// MinFingerDistance is the minimum distance in px between two
	// touches for two-finger rotate and pinch tracking.
	MinFingerDistance float32 `default:"30"`

	// UsePointerCapture is whether state machines request pointer
	// capture at stream start, keeping events routed to the target
	// when the pointer leaves its bounds.
	UsePointerCapture bool `default:"true"`

	// PreventDefault is whether the default platform action is
	// suppressed on the raw events consumed by a listener.
	PreventDefault bool

	// Range bounds drag offsets per axis.
	Range DragRange

	// KeepState is whether drag offsets accumulate across drag
	// sessions on the same listener.
	KeepState bool

	// Inertia is whether a drag listener keeps emitting damped Drag
	// events after release when the release velocity is high enough.
	Inertia bool

	// MouseOnly, TouchOnly, and PenOnly filter which device families a
	// listener responds to. At most one should be set; none means all.
	MouseOnly bool
	TouchOnly bool
	PenOnly   bool

	// TouchOffset is added to touch-sourced coordinates, compensating
	// for the finger-vs-visual contact point offset on touchscreens.
	TouchOffset math32.Vector2
}

// NewOptions returns a new [Options] with all defaults set.
func NewOptions() *Options {
	op := &Options{}
	op.Defaults()
	return op
}

// Defaults sets default values.
func (op *Options) Defaults() {
	op.LongClickDelay = 500 * time.Millisecond
	op.DoubleClickDelay = 300 * time.Millisecond
	op.GraceDelay = 300 * time.Millisecond
	op.SwipeThreshold = 50
	op.SwipeTimeout = 300 * time.Millisecond
	op.FlingMinVelocity = 600
	op.FlingDecay = 0.95
	op.RotateStepDeg = 5
	op.RotateModifier = key.Shift
	op.PinchZoomStep = 0.1
	op.PinchZoomModifiers = key.Control | key.Shift
	op.MinScale = 0.1
	op.MaxScale = 10
	op.PinchGuardMin = 0.5
	op.PinchGuardMax = 2
	op.MinFingerDistance = 30
	op.UsePointerCapture = true
}

// Clone returns a deep copy of the options.
func (op *Options) Clone() *Options {
	cp := &Options{}
	if err := copier.CopyWithOption(cp, op, copier.Option{DeepCopy: true}); err != nil {
		*cp = *op
	}
	return cp
}

// Open reads the options from the given TOML file.
func (op *Options) Open(filename string) error {
	b, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	return toml.Unmarshal(b, op)
}

// Save writes the options to the given TOML file.
func (op *Options) Save(filename string) error {
	b, err := toml.Marshal(op)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0666)
}

// DeviceAllowed returns whether the given device family passes this
// listener's device filters.
func (op *Options) DeviceAllowed(dv events.Devices) bool {
	switch {
	case op.MouseOnly:
		return dv == events.Mouse
	case op.TouchOnly:
		return dv == events.TouchScreen
	case op.PenOnly:
		return dv == events.Pen
	}
	return true
}
