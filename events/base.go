// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events defines the unified input event model: the canonical
// phase and gesture event types, the normalized event record shared by
// all of them, and the listener dispatch map.
package events

import (
	"fmt"
	"time"

	"cogentcore.org/gesture/events/key"
	"cogentcore.org/gesture/math32"
)

// StreamID uniquely names one continuous press-to-release input
// sequence: the device family plus the platform-assigned identifier
// within that family. All events in one physical sequence share the
// same StreamID, and a gesture state machine never mixes identities
// within one recognition attempt.
type StreamID struct {
	Device Devices
	ID     int64
}

// MouseID is the constant stream identifier synthesized for plain
// mouse events, which have no platform identifier of their own.
const MouseID int64 = 1

func (sid StreamID) String() string {
	return fmt.Sprintf("%v:%d", sid.Device, sid.ID)
}

// RawEvent is the originating platform event backing a normalized
// [Event], used for default-action suppression and propagation control.
// Both are best-effort no-ops when the platform does not support them.
type RawEvent interface {
	PreventDefault()
	StopPropagation()
}

// Capturer requests or releases exclusive routing of a stream identity
// to the element associated with the event that exposed it.
// [Event.Capture] and [Event.ReleaseCapture] forward to it.
type Capturer interface {
	Capture(sid StreamID) bool
	Release(sid StreamID)
}

// Event is the interface for all unified input events: the four raw
// phases, capture lifecycle signals, and synthetic gesture events.
// All of them share the [Base] implementation.
type Event interface {
	fmt.Stringer

	// Type returns the type of the event.
	Type() Types

	// Device returns the device family the event originated from.
	Device() Devices

	// Stream returns the stream identity that produced the event.
	Stream() StreamID

	// Pos returns the client-space position of the event.
	Pos() math32.Vector2

	// PagePos returns the page-space position of the event.
	PagePos() math32.Vector2

	// Pressure returns the contact pressure, 0 if unavailable.
	Pressure() float32

	// IsPrimary returns whether the stream is the primary one for its
	// device family (always true for mouse).
	IsPrimary() bool

	// Time returns the time the event was generated.
	Time() time.Time

	// IsHandled returns whether a listener has marked the event as
	// handled, stopping delivery to earlier-registered listeners.
	IsHandled() bool

	// SetHandled marks the event as handled.
	SetHandled()

	// Raw returns the originating platform event, or nil for purely
	// synthetic emissions (e.g. a timer-fired LongClick).
	Raw() RawEvent

	// PreventDefault suppresses the platform default action of the
	// originating raw event, if any.
	PreventDefault()

	// StopPropagation stops further platform propagation of the
	// originating raw event, if any.
	StopPropagation()

	// Capture requests pointer capture of this event's stream identity
	// for the listener's target element. Best-effort: returns false if
	// unavailable or already claimed.
	Capture() bool

	// ReleaseCapture releases pointer capture of this event's stream
	// identity, if held via this listener.
	ReleaseCapture()
}

// Base is the base implementation of [Event], used directly for the
// raw phases and capture signals, and embedded by the gesture payload
// structs. It is created fresh for every raw event and every synthetic
// emission, and not mutated after construction apart from the Handled
// flag and the dispatch-time capturer binding.
type Base struct {
	// Typ is the type of the event.
	Typ Types

	// Dev is the device family the event originated from.
	Dev Devices

	// PointerID is the platform identifier of the input stream within
	// its device family ([MouseID] for plain mouse events).
	PointerID int64

	// Client is the client-space position.
	Client math32.Vector2

	// Page is the page-space position.
	Page math32.Vector2

	// Press is the contact pressure in [0, 1], 0 if unavailable.
	Press float32

	// Primary is whether the stream is the primary one for its family.
	Primary bool

	// GenTime is the time the event was generated.
	GenTime time.Time

	// Mods are the active keyboard modifiers.
	Mods key.Modifiers

	// RawSrc is the originating platform event, nil for purely
	// synthetic emissions.
	RawSrc RawEvent

	handled  bool
	capturer Capturer
}

// NewBase returns a new [Base] event of the given type, stamped with
// the current time.
func NewBase(typ Types) *Base {
	return &Base{Typ: typ, GenTime: time.Now()}
}

func (ev *Base) Type() Types              { return ev.Typ }
func (ev *Base) Device() Devices          { return ev.Dev }
func (ev *Base) Stream() StreamID         { return StreamID{Device: ev.Dev, ID: ev.PointerID} }
func (ev *Base) Pos() math32.Vector2      { return ev.Client }
func (ev *Base) PagePos() math32.Vector2  { return ev.Page }
func (ev *Base) Pressure() float32        { return ev.Press }
func (ev *Base) IsPrimary() bool          { return ev.Primary }
func (ev *Base) Time() time.Time          { return ev.GenTime }
func (ev *Base) IsHandled() bool          { return ev.handled }
func (ev *Base) SetHandled()              { ev.handled = true }
func (ev *Base) Raw() RawEvent            { return ev.RawSrc }

// SetCapturer binds the capture coordinator that [Event.Capture] and
// [Event.ReleaseCapture] forward to. Set by the engine at dispatch.
func (ev *Base) SetCapturer(ca Capturer) { ev.capturer = ca }

func (ev *Base) PreventDefault() {
	if ev.RawSrc != nil {
		ev.RawSrc.PreventDefault()
	}
}

func (ev *Base) StopPropagation() {
	if ev.RawSrc != nil {
		ev.RawSrc.StopPropagation()
	}
}

func (ev *Base) Capture() bool {
	if ev.capturer == nil {
		return false
	}
	return ev.capturer.Capture(ev.Stream())
}

func (ev *Base) ReleaseCapture() {
	if ev.capturer != nil {
		ev.capturer.Release(ev.Stream())
	}
}

func (ev *Base) String() string {
	return fmt.Sprintf("%v{Stream: %v, Pos: %v, Time: %v}", ev.Typ, ev.Stream(), ev.Client, ev.GenTime.Format("04:05.000"))
}
