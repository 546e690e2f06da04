// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListenersCallOrder(t *testing.T) {
	ls := Listeners{}
	var order []int
	ls.Add(Start, func(ev Event) { order = append(order, 1) })
	ls.Add(Start, func(ev Event) { order = append(order, 2) })
	ls.Add(Move, func(ev Event) { order = append(order, 99) })

	ls.Call(NewBase(Start))
	// last added is called first, and only matching types run
	assert.Equal(t, []int{2, 1}, order)
}

func TestListenersCallHandled(t *testing.T) {
	ls := Listeners{}
	var order []int
	ls.Add(Start, func(ev Event) { order = append(order, 1) })
	ls.Add(Start, func(ev Event) {
		order = append(order, 2)
		ev.SetHandled()
	})

	ls.Call(NewBase(Start))
	assert.Equal(t, []int{2}, order)

	// an already-handled event is not delivered at all
	order = nil
	ev := NewBase(Start)
	ev.SetHandled()
	ls.Call(ev)
	assert.Empty(t, order)
}

func TestListenersDelete(t *testing.T) {
	ls := Listeners{}
	n1, n2 := 0, 0
	f1 := func(ev Event) { n1++ }
	f2 := func(ev Event) { n2++ }
	ls.Add(Start, f1)
	ls.Add(Start, f2)

	ls.Delete(Start, f1)
	ls.Call(NewBase(Start))
	assert.Equal(t, 0, n1)
	assert.Equal(t, 1, n2)

	// deleting an unregistered function is a no-op
	ls.Delete(Start, f1)
	ls.Delete(Move, f2)
	ls.Call(NewBase(Start))
	assert.Equal(t, 2, n2)
}
