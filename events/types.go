// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

// Types determines the type of unified input event, and also the
// level at which one can select which events to listen to.
// The first four types are the canonical phases every input stream
// goes through regardless of source device; the rest are synthetic
// gesture events derived from phase sequences by the per-listener
// gesture state machines, plus the pointer-capture lifecycle signals.
type Types int32

const (
	// UnknownType is the zero value, an unknown event type.
	UnknownType Types = iota

	// Start happens when an input stream begins: a mouse button is
	// pressed, a touch contact begins, or a pen makes contact.
	Start

	// Move happens when an already-started input stream changes
	// position. These can be numerous and it is typically more
	// efficient to listen to gesture events derived from them.
	Move

	// End happens when an input stream terminates normally: button
	// release, touch lift, pen lift.
	End

	// Cancel happens when the platform interrupts an input stream
	// (e.g., a touch taken over by a system gesture). Every gesture
	// state machine treats Cancel as a forced reset.
	Cancel

	// LongClick is a synthetic event for a press held in place for at
	// least the configured long-click delay (500 msec default), fired
	// while the press is still down.
	LongClick

	// DoubleClick is a synthetic event for two presses in rapid
	// succession, within the configured double-click delay
	// (300 msec default).
	DoubleClick

	// Swipe is a synthetic event for a quick directional stroke:
	// a press-move-release sequence covering at least the swipe
	// threshold distance within the swipe timeout.
	Swipe

	// Fling is a synthetic event for a release with velocity: fired on
	// stream end when the velocity over the final samples exceeds the
	// configured minimum, carrying the velocity vector and a damped
	// position prediction.
	Fling

	// DragStart is fired when a drag session begins on a drag listener,
	// carrying the target bounds and any carried-over offset.
	DragStart

	// Drag is fired for each movement during a drag session, with raw
	// and bounds-clamped deltas.
	Drag

	// DragEnd is fired when a drag session ends, with the final deltas.
	DragEnd

	// GotCapture is fired when pointer capture is acquired for the
	// stream identity, routing subsequent events to the capturing
	// element regardless of position.
	GotCapture

	// LostCapture is fired when pointer capture for a stream identity
	// is released or revoked by the platform.
	LostCapture

	// Rotate is a synthetic rotation event, from modifier-qualified
	// wheel ticks, pen twist, or two-finger twist.
	Rotate

	// PinchZoom is a synthetic scale event, from modifier-qualified
	// wheel ticks or two-finger pinch.
	PinchZoom

	// TypesN is the number of event types.
	TypesN
)

var typeNames = [TypesN]string{
	"unknown", "start", "move", "end", "cancel",
	"longclick", "doubleclick", "swipe", "fling",
	"dragstart", "drag", "dragend",
	"gotcapture", "lostcapture", "rotate", "pinchzoom",
}

func (tp Types) String() string {
	if tp < 0 || tp >= TypesN {
		return "invalid"
	}
	return typeNames[tp]
}

// IsPhase returns whether this type is one of the four canonical
// raw stream phases (Start, Move, End, Cancel).
func (tp Types) IsPhase() bool {
	return tp >= Start && tp <= Cancel
}

// IsGesture returns whether this type is a synthetic gesture type
// derived by a state machine (as opposed to a phase or capture signal).
func (tp Types) IsGesture() bool {
	switch tp {
	case LongClick, DoubleClick, Swipe, Fling, DragStart, Drag, DragEnd, Rotate, PinchZoom:
		return true
	}
	return false
}

// Devices is the family of physical input device an event
// originated from.
type Devices int32

const (
	// NoDevice is the zero value, for events with no device source.
	NoDevice Devices = iota

	// Mouse is a plain mouse device.
	Mouse

	// TouchScreen is a direct touch contact.
	TouchScreen

	// Pen is a pen / stylus device.
	Pen

	// DevicesN is the number of device families.
	DevicesN
)

var deviceNames = [DevicesN]string{"none", "mouse", "touch", "pen"}

func (dv Devices) String() string {
	if dv < 0 || dv >= DevicesN {
		return "invalid"
	}
	return deviceNames[dv]
}

// Directions is the primary direction of a swipe or fling,
// classified by the dominant displacement axis.
type Directions int32

const (
	NoDirection Directions = iota
	Left
	Right
	Up
	Down

	DirectionsN
)

var directionNames = [DirectionsN]string{"none", "left", "right", "up", "down"}

func (dr Directions) String() string {
	if dr < 0 || dr >= DirectionsN {
		return "invalid"
	}
	return directionNames[dr]
}

// RotateSources is the input source a Rotate or PinchZoom event was
// derived from. Callbacks can usually ignore this: every source emits
// the same payload shape.
type RotateSources int32

const (
	// WheelSource is a modifier-qualified mouse wheel tick.
	WheelSource RotateSources = iota

	// PenSource is pen twist / rotation data.
	PenSource

	// TwoFingerSource is a two-finger touch gesture.
	TwoFingerSource

	RotateSourcesN
)

var rotateSourceNames = [RotateSourcesN]string{"wheel", "pen", "twofinger"}

func (rs RotateSources) String() string {
	if rs < 0 || rs >= RotateSourcesN {
		return "invalid"
	}
	return rotateSourceNames[rs]
}
