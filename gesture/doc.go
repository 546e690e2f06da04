// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package gesture unifies mouse, touch, pen, and generic pointer input
into a single event model and recognizes higher-level gestures on top
of it: long click, double click, swipe, fling, drag with bounds and
optional inertia, rotate, and pinch-zoom.

An [Engine] is constructed on a [system.Source], the abstraction over
native input delivery, and listeners are registered per element and
event type:

	en := gesture.NewEngine(src, nil)
	id, err := en.AddListener(el, events.Swipe, func(ev events.Event) {
		sw := ev.(*events.SwipeEvent)
		fmt.Println(sw.Direction, sw.Distance)
	}, nil)

Each listener owns an isolated gesture state machine: two listeners on
the same element never share state, and concurrent input streams
(multi-touch) cannot corrupt each other's recognition attempts. The
engine requests pointer capture at stream start where the platform
supports it, so movement keeps reporting to the target element after
the pointer leaves its bounds; platforms without capture degrade
gracefully.

Recognition failures are silent: a callback either receives a gesture
event or nothing. Only registration-time misuse returns errors.
*/
package gesture
