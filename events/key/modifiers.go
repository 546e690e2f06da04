// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package key defines keyboard modifier state as needed for
// modifier-qualified wheel gestures (rotate, pinch-zoom).
package key

import "strings"

// Modifiers are the key modifiers that can be active during an input
// event, stored as bitflags.
type Modifiers int64

const (
	// Shift is the shift key.
	Shift Modifiers = 1 << iota

	// Control is the control key.
	Control

	// Alt is the alt key.
	Alt

	// Meta is the system meta key (the command key on macOS,
	// the windows key on Windows).
	Meta
)

var modifierNames = []struct {
	mod  Modifiers
	name string
}{
	{Shift, "Shift"},
	{Control, "Control"},
	{Alt, "Alt"},
	{Meta, "Meta"},
}

// HasAll returns whether all of the given modifiers are active.
func (mo Modifiers) HasAll(mods Modifiers) bool {
	return mo&mods == mods
}

// HasAny returns whether any of the given modifiers are active.
func (mo Modifiers) HasAny(mods Modifiers) bool {
	return mo&mods != 0
}

// Only returns whether exactly the given modifiers are active,
// and no others.
func (mo Modifiers) Only(mods Modifiers) bool {
	return mo == mods
}

// ModifiersString returns the string representation of the modifiers,
// with "+" joining each active modifier.
func (mo Modifiers) ModifiersString() string {
	var ns []string
	for _, mn := range modifierNames {
		if mo.HasAll(mn.mod) {
			ns = append(ns, mn.name)
		}
	}
	return strings.Join(ns, "+")
}
