// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gesture

import (
	"testing"

	"cogentcore.org/gesture/events"
	"cogentcore.org/gesture/math32"
	"cogentcore.org/gesture/system"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeTouchPerContact(t *testing.T) {
	op := NewOptions()
	re := &system.RawEvent{
		Kind: system.TouchStart,
		Touches: []system.TouchPoint{
			{ID: 5, Client: math32.Vec2(10, 20), Page: math32.Vec2(10, 120), Pressure: 0.8},
			{ID: 6, Client: math32.Vec2(30, 40), Page: math32.Vec2(30, 140), Pressure: 0.6},
		},
	}
	evs := normalizePhase(op, events.Start, re)
	assert.Len(t, evs, 2)

	assert.Equal(t, events.Start, evs[0].Typ)
	assert.Equal(t, events.TouchScreen, evs[0].Dev)
	assert.Equal(t, int64(5), evs[0].PointerID)
	assert.Equal(t, math32.Vec2(10, 20), evs[0].Client)
	assert.Equal(t, math32.Vec2(10, 120), evs[0].Page)
	assert.Equal(t, float32(0.8), evs[0].Press)
	assert.True(t, evs[0].Primary)

	assert.Equal(t, int64(6), evs[1].PointerID)
	assert.False(t, evs[1].Primary)
}

func TestNormalizeTouchEndUsesChanged(t *testing.T) {
	op := NewOptions()
	re := &system.RawEvent{
		Kind: system.TouchEnd,
		// one contact remains down, one lifted: only the lifted one
		// is reported for the End phase
		Touches: []system.TouchPoint{{ID: 5, Client: math32.Vec2(10, 20)}},
		Changed: []system.TouchPoint{{ID: 6, Client: math32.Vec2(30, 40)}},
	}
	evs := normalizePhase(op, events.End, re)
	assert.Len(t, evs, 1)
	assert.Equal(t, int64(6), evs[0].PointerID)
	assert.Equal(t, events.End, evs[0].Typ)
}

func TestNormalizeTouchOffset(t *testing.T) {
	op := NewOptions()
	op.TouchOffset = math32.Vec2(0, -20)
	re := &system.RawEvent{
		Kind:    system.TouchMove,
		Touches: []system.TouchPoint{{ID: 5, Client: math32.Vec2(10, 100), Page: math32.Vec2(10, 200)}},
	}
	evs := normalizePhase(op, events.Move, re)
	assert.Len(t, evs, 1)
	assert.Equal(t, math32.Vec2(10, 80), evs[0].Client)
	assert.Equal(t, math32.Vec2(10, 180), evs[0].Page)
}

func TestNormalizeMalformedTouch(t *testing.T) {
	op := NewOptions()
	re := &system.RawEvent{Kind: system.TouchCancel}
	evs := normalizePhase(op, events.Cancel, re)
	assert.Len(t, evs, 1)
	assert.Equal(t, events.Cancel, evs[0].Typ)
	assert.Equal(t, events.TouchScreen, evs[0].Dev)
	assert.Equal(t, math32.Vector2{}, evs[0].Client)
	assert.True(t, evs[0].Primary)
}

func TestNormalizePointerDevice(t *testing.T) {
	op := NewOptions()
	re := ptrEvent(system.PointerDown, events.Pen, 7, 10, 20)
	re.Pressure = 0.4
	evs := normalizePhase(op, events.Start, re)
	assert.Len(t, evs, 1)
	assert.Equal(t, events.Pen, evs[0].Dev)
	assert.Equal(t, int64(7), evs[0].PointerID)
	assert.Equal(t, float32(0.4), evs[0].Press)

	// an unknown pointer device defaults to mouse
	re = ptrEvent(system.PointerDown, events.NoDevice, 7, 10, 20)
	evs = normalizePhase(op, events.Start, re)
	assert.Equal(t, events.Mouse, evs[0].Dev)
}

func TestNormalizePointerPrimary(t *testing.T) {
	op := NewOptions()

	// primary state unknown: assumed primary
	re := ptrEvent(system.PointerDown, events.TouchScreen, 7, 10, 20)
	evs := normalizePhase(op, events.Start, re)
	assert.True(t, evs[0].Primary)

	re.Flags = system.RawInContact | system.RawPrimaryKnown
	evs = normalizePhase(op, events.Start, re)
	assert.False(t, evs[0].Primary)

	re.Flags |= system.RawPrimary
	evs = normalizePhase(op, events.Start, re)
	assert.True(t, evs[0].Primary)
}

func TestNormalizePointerTouchOffset(t *testing.T) {
	op := NewOptions()
	op.TouchOffset = math32.Vec2(5, -10)

	// the offset applies to touch-sourced pointer events only
	re := ptrEvent(system.PointerMove, events.TouchScreen, 7, 100, 100)
	evs := normalizePhase(op, events.Move, re)
	assert.Equal(t, math32.Vec2(105, 90), evs[0].Client)

	re = ptrEvent(system.PointerMove, events.Mouse, 1, 100, 100)
	evs = normalizePhase(op, events.Move, re)
	assert.Equal(t, math32.Vec2(100, 100), evs[0].Client)
}

func TestNormalizeMouse(t *testing.T) {
	op := NewOptions()
	re := &system.RawEvent{
		Kind:   system.MouseDown,
		Client: math32.Vec2(10, 20),
		Page:   math32.Vec2(10, 120),
		Flags:  system.RawInContact,
	}
	evs := normalizePhase(op, events.Start, re)
	assert.Len(t, evs, 1)
	assert.Equal(t, events.Mouse, evs[0].Dev)
	assert.Equal(t, events.MouseID, evs[0].PointerID)
	assert.True(t, evs[0].Primary)
	assert.Equal(t, float32(mousePressure), evs[0].Press)

	// no button down means no contact pressure
	re = &system.RawEvent{Kind: system.MouseMove, Client: math32.Vec2(10, 20)}
	evs = normalizePhase(op, events.Move, re)
	assert.Equal(t, float32(0), evs[0].Press)
}
