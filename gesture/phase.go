// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gesture

import (
	"cogentcore.org/gesture/events"
	"cogentcore.org/gesture/system"
)

// passThrough delivers raw phase events (Start, Move, End, Cancel)
// directly to the listener with no state tracking.
type passThrough struct {
	li *Listener
}

func (pt *passThrough) phase(ev *events.Base, re *system.RawEvent) {
	pt.li.emit(ev)
}

func (pt *passThrough) stop() {}
