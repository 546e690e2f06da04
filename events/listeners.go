// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import "reflect"

// Listeners registers lists of event listener functions to receive
// different event types. Listeners are closure methods with all
// context captured, registered on specific targets.
type Listeners map[Types][]func(ev Event)

// Init ensures that the map is constructed.
func (ls *Listeners) Init() {
	if *ls != nil {
		return
	}
	*ls = make(map[Types][]func(Event))
}

// Add adds a function for the given type.
func (ls *Listeners) Add(typ Types, fun func(Event)) {
	ls.Init()
	(*ls)[typ] = append((*ls)[typ], fun)
}

// Delete removes the given function for the given type, comparing by
// function pointer identity. It does nothing if the function is not
// registered.
func (ls *Listeners) Delete(typ Types, fun func(Event)) {
	ets := (*ls)[typ]
	fp := reflect.ValueOf(fun).Pointer()
	for i, f := range ets {
		if reflect.ValueOf(f).Pointer() == fp {
			(*ls)[typ] = append(ets[:i:i], ets[i+1:]...)
			return
		}
	}
}

// Call calls all functions for the given event. It goes in _reverse_
// order so the last functions added are the first called, and it stops
// when the event is marked as Handled. This allows for a natural and
// optional override behavior, as compared to requiring more complex
// priority-based mechanisms.
func (ls *Listeners) Call(ev Event) {
	if ev.IsHandled() {
		return
	}
	ets := (*ls)[ev.Type()]
	for i := len(ets) - 1; i >= 0; i-- {
		ets[i](ev)
		if ev.IsHandled() {
			break
		}
	}
}
