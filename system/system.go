// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package system abstracts the platform raw input layer: the native
// event record, the subscription surface that delivers raw events for
// a target element, and the per-platform capability probe.
// The gesture engine is the only consumer; platform bindings (browser,
// test fakes) are the producers.
package system

import (
	"cogentcore.org/gesture/events"
	"cogentcore.org/gesture/events/key"
	"cogentcore.org/gesture/math32"
)

// RawKinds is the kind of native input event a [Source] can deliver.
// The mouse, touch, and pointer channels are separate because
// platforms expose one or the other: when pointer events are
// available the engine subscribes only to those, otherwise it
// subscribes to the mouse and touch channels.
type RawKinds int32

const (
	UnknownKind RawKinds = iota

	MouseDown
	MouseMove
	MouseUp

	TouchStart
	TouchMove
	TouchEnd
	TouchCancel

	PointerDown
	PointerMove
	PointerUp
	PointerCancel

	// Wheel is a scroll-wheel tick, used by the rotate and pinch-zoom
	// machines when qualified by modifier keys.
	Wheel

	// GotPointerCapture and LostPointerCapture are the platform
	// capture lifecycle signals.
	GotPointerCapture
	LostPointerCapture

	RawKindsN
)

var rawKindNames = [RawKindsN]string{
	"unknown",
	"mousedown", "mousemove", "mouseup",
	"touchstart", "touchmove", "touchend", "touchcancel",
	"pointerdown", "pointermove", "pointerup", "pointercancel",
	"wheel",
	"gotpointercapture", "lostpointercapture",
}

func (rk RawKinds) String() string {
	if rk < 0 || rk >= RawKindsN {
		return "invalid"
	}
	return rawKindNames[rk]
}

// RawFlags encode boolean properties of a raw event as bitflags.
type RawFlags int64

const (
	// RawInContact is whether a button is pressed or a contact is
	// touching during the event.
	RawInContact RawFlags = 1 << iota

	// RawPrimary is whether the pointer is the primary one for its
	// device family. Only meaningful when RawPrimaryKnown is also set;
	// an event without RawPrimaryKnown is treated as primary.
	RawPrimary

	// RawPrimaryKnown is whether the platform reported primary-ness
	// at all.
	RawPrimaryKnown
)

// HasFlag returns whether all of the given flags are set.
func (rf RawFlags) HasFlag(f RawFlags) bool {
	return rf&f == f
}

// TouchPoint is one platform touch contact within a raw touch event's
// touch lists.
type TouchPoint struct {
	// ID is the platform-assigned touch identifier, stable for the
	// lifetime of the contact.
	ID int64

	// Client is the client-space position.
	Client math32.Vector2

	// Page is the page-space position.
	Page math32.Vector2

	// Pressure is the contact force in [0, 1], 0 if unavailable.
	Pressure float32
}

// RawEvent is one native input event as delivered by a [Source].
// Which fields are populated depends on Kind: touch kinds carry the
// touch lists, pointer kinds carry the direct pointer fields, mouse
// kinds carry only position and flags.
type RawEvent struct {
	Kind RawKinds

	// PointerType is the device family for pointer-channel events
	// (mouse, touch, or pen); NoDevice for other channels.
	PointerType events.Devices

	// PointerID is the platform pointer identifier for pointer-channel
	// events.
	PointerID int64

	Flags RawFlags

	// Client and Page are the event position for mouse and pointer
	// kinds; touch kinds carry positions in the touch lists instead.
	Client math32.Vector2
	Page   math32.Vector2

	// Pressure is the contact pressure for pointer kinds, 0 if the
	// platform does not report it.
	Pressure float32

	// Twist is pen rotation data in degrees for pointer kinds from
	// pen devices, 0 otherwise.
	Twist float32

	// Touches is the full active contact list for touch kinds.
	Touches []TouchPoint

	// Changed is the changed contact list for touch kinds, which is
	// the relevant list for end and cancel phases.
	Changed []TouchPoint

	// WheelDelta is the scroll delta for Wheel events.
	WheelDelta math32.Vector2

	// Mods are the active keyboard modifiers.
	Mods key.Modifiers

	// DefaultPrevented records that [RawEvent.PreventDefault] was
	// called; OnPreventDefault additionally forwards to the platform
	// when set.
	DefaultPrevented bool
	OnPreventDefault func()

	// PropagationStopped records that [RawEvent.StopPropagation] was
	// called; OnStopPropagation additionally forwards to the platform
	// when set.
	PropagationStopped bool
	OnStopPropagation  func()
}

// PreventDefault suppresses the platform default action for this event.
func (re *RawEvent) PreventDefault() {
	re.DefaultPrevented = true
	if re.OnPreventDefault != nil {
		re.OnPreventDefault()
	}
}

// StopPropagation stops further platform propagation of this event.
func (re *RawEvent) StopPropagation() {
	re.PropagationStopped = true
	if re.OnStopPropagation != nil {
		re.OnStopPropagation()
	}
}

// Subscription is one installed raw event subscription, returned by
// [Source.Subscribe]; Close removes it.
type Subscription interface {
	Close() error
}

// Element is the target of listener registration: an abstract region
// that raw events are delivered for, with best-effort pointer capture.
type Element interface {
	// Bounds returns the current bounding rectangle of the element.
	Bounds() math32.Box2

	// SetPointerCapture requests exclusive routing of the given
	// platform pointer id to this element. Platforms without capture
	// support return an error; callers must treat failure as benign.
	SetPointerCapture(id int64) error

	// ReleasePointerCapture releases a previously acquired capture of
	// the given platform pointer id.
	ReleasePointerCapture(id int64) error
}

// Source is the raw input source: it installs native event handlers
// for target elements and reports platform capabilities.
type Source interface {
	// Subscribe installs a handler for the given raw event kind on the
	// given element, returning the subscription for later removal.
	Subscribe(el Element, kind RawKinds, fun func(re *RawEvent)) (Subscription, error)

	// Capabilities reports what this platform supports. The engine
	// calls this once at construction and uses the snapshot
	// thereafter.
	Capabilities() Capabilities
}

// Capabilities is the immutable record of platform input support,
// probed once at engine construction.
type Capabilities struct {
	// HasPointer is whether the unified pointer event channel is
	// available. When set, the engine subscribes to pointer kinds and
	// ignores the mouse and touch channels.
	HasPointer bool

	// HasTouch is whether the touch event channel is available.
	HasTouch bool

	// HasMouse is whether the mouse event channel is available.
	HasMouse bool

	// HasCapture is whether pointer capture is supported.
	HasCapture bool
}
