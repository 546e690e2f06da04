// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gesture

import (
	"testing"
	"time"

	"cogentcore.org/gesture/events"
	"cogentcore.org/gesture/math32"
	"github.com/stretchr/testify/assert"
)

func TestLongClickFires(t *testing.T) {
	src := newFakeSource()
	el := newFakeElement()
	en := NewEngine(src, nil)
	defer en.Dispose()

	op := en.Options()
	op.LongClickDelay = 60 * time.Millisecond
	rec := &recorder{}
	_, err := en.AddListener(el, events.LongClick, rec.cb, op)
	assert.NoError(t, err)

	src.send(el, ptrDown(1, 40, 50))
	assert.Equal(t, 0, rec.count())
	assert.Equal(t, []int64{1}, el.captures)

	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, 1, rec.count())
	lev := rec.last().(*events.LongClickEvent)
	assert.Equal(t, events.LongClick, lev.Type())
	assert.Equal(t, 60*time.Millisecond, lev.Duration)
	assert.Equal(t, math32.Vec2(40, 50), lev.Pos())
	assert.Equal(t, events.StreamID{Device: events.Mouse, ID: 1}, lev.Stream())
	assert.Equal(t, []int64{1}, el.releases)

	// release after firing must not produce a second event
	src.send(el, ptrUp(1, 40, 50))
	assert.Equal(t, 1, rec.count())
}

func TestLongClickReleasedEarly(t *testing.T) {
	src := newFakeSource()
	el := newFakeElement()
	en := NewEngine(src, nil)
	defer en.Dispose()

	op := en.Options()
	op.LongClickDelay = 60 * time.Millisecond
	rec := &recorder{}
	_, err := en.AddListener(el, events.LongClick, rec.cb, op)
	assert.NoError(t, err)

	src.send(el, ptrDown(1, 40, 50))
	src.send(el, ptrUp(1, 40, 50))
	assert.Equal(t, []int64{1}, el.releases)

	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, 0, rec.count())
}

func TestLongClickCancelResets(t *testing.T) {
	src := newFakeSource()
	el := newFakeElement()
	en := NewEngine(src, nil)
	defer en.Dispose()

	op := en.Options()
	op.LongClickDelay = 60 * time.Millisecond
	rec := &recorder{}
	_, err := en.AddListener(el, events.LongClick, rec.cb, op)
	assert.NoError(t, err)

	src.send(el, ptrDown(1, 40, 50))
	src.send(el, ptrCancel(1, 40, 50))
	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, 0, rec.count())
}

func TestLongClickGrace(t *testing.T) {
	src := newFakeSource()
	el := newFakeElement()
	en := NewEngine(src, nil)
	defer en.Dispose()

	op := en.Options()
	op.LongClickDelay = 60 * time.Millisecond
	op.GraceDelay = 150 * time.Millisecond
	rec := &recorder{}
	_, err := en.AddListener(el, events.LongClick, rec.cb, op)
	assert.NoError(t, err)

	// a resolved attempt suppresses re-arming during the grace period
	src.send(el, ptrDown(1, 40, 50))
	src.send(el, ptrUp(1, 40, 50))
	src.send(el, ptrDown(1, 40, 50))
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, 0, rec.count())
	src.send(el, ptrUp(1, 40, 50))

	// after the grace period arming works again
	time.Sleep(150 * time.Millisecond)
	src.send(el, ptrDown(1, 40, 50))
	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, 1, rec.count())
}

func TestLongClickIgnoresSecondStream(t *testing.T) {
	src := newFakeSource()
	el := newFakeElement()
	en := NewEngine(src, nil)
	defer en.Dispose()

	op := en.Options()
	op.LongClickDelay = 60 * time.Millisecond
	rec := &recorder{}
	_, err := en.AddListener(el, events.LongClick, rec.cb, op)
	assert.NoError(t, err)

	src.send(el, ptrDown(1, 40, 50))
	src.send(el, ptrDown(2, 90, 90))
	src.send(el, ptrUp(2, 90, 90))

	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, 1, rec.count())
	assert.Equal(t, events.StreamID{Device: events.Mouse, ID: 1}, rec.last().Stream())
}
