// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gesture

import (
	"path/filepath"
	"testing"
	"time"

	"cogentcore.org/gesture/events"
	"cogentcore.org/gesture/events/key"
	"cogentcore.org/gesture/math32"
	"github.com/stretchr/testify/assert"
)

func TestOptionsDefaults(t *testing.T) {
	op := NewOptions()
	assert.Equal(t, 500*time.Millisecond, op.LongClickDelay)
	assert.Equal(t, 300*time.Millisecond, op.DoubleClickDelay)
	assert.Equal(t, float32(50), op.SwipeThreshold)
	assert.Equal(t, float32(600), op.FlingMinVelocity)
	assert.Equal(t, float32(0.95), op.FlingDecay)
	assert.Equal(t, key.Shift, op.RotateModifier)
	assert.Equal(t, key.Control|key.Shift, op.PinchZoomModifiers)
	assert.Equal(t, float32(0.1), op.MinScale)
	assert.Equal(t, float32(10), op.MaxScale)
	assert.True(t, op.UsePointerCapture)
	assert.False(t, op.Range.X.Bounded)
	assert.False(t, op.KeepState)
}

func TestOptionsClone(t *testing.T) {
	op := NewOptions()
	op.Range.X = Bounds(-5, 5)
	cp := op.Clone()
	assert.Equal(t, op, cp)

	cp.LongClickDelay = time.Second
	cp.Range.X.Max = 99
	assert.Equal(t, 500*time.Millisecond, op.LongClickDelay)
	assert.Equal(t, float32(5), op.Range.X.Max)
}

func TestOptionsSaveOpen(t *testing.T) {
	op := NewOptions()
	op.SwipeThreshold = 75
	op.LongClickDelay = 750 * time.Millisecond
	op.TouchOffset = math32.Vec2(0, -12)
	op.Range.Y = Bounds(-100, 100)

	fn := filepath.Join(t.TempDir(), "gesture.toml")
	assert.NoError(t, op.Save(fn))

	lop := &Options{}
	assert.NoError(t, lop.Open(fn))
	assert.Equal(t, op, lop)
}

func TestOptionsOpenMissing(t *testing.T) {
	op := &Options{}
	assert.Error(t, op.Open(filepath.Join(t.TempDir(), "nothere.toml")))
}

func TestAxisRangeClamp(t *testing.T) {
	ar := AxisRange{}
	v, ob := ar.Clamp(1e6)
	assert.Equal(t, float32(1e6), v)
	assert.False(t, ob)

	ar = Bounds(-10, 10)
	v, ob = ar.Clamp(5)
	assert.Equal(t, float32(5), v)
	assert.False(t, ob)
	v, ob = ar.Clamp(15)
	assert.Equal(t, float32(10), v)
	assert.True(t, ob)
	v, ob = ar.Clamp(-15)
	assert.Equal(t, float32(-10), v)
	assert.True(t, ob)
}

func TestDeviceAllowed(t *testing.T) {
	op := NewOptions()
	assert.True(t, op.DeviceAllowed(events.Mouse))
	assert.True(t, op.DeviceAllowed(events.TouchScreen))
	assert.True(t, op.DeviceAllowed(events.Pen))

	op.TouchOnly = true
	assert.False(t, op.DeviceAllowed(events.Mouse))
	assert.True(t, op.DeviceAllowed(events.TouchScreen))

	op.TouchOnly = false
	op.PenOnly = true
	assert.True(t, op.DeviceAllowed(events.Pen))
	assert.False(t, op.DeviceAllowed(events.TouchScreen))
}
