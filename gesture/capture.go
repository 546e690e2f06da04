// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gesture

import (
	"time"

	"cogentcore.org/gesture/events"
	"cogentcore.org/gesture/logx"
	"cogentcore.org/gesture/system"
)

// captureRecord maps one captured stream identity to the element and
// listener holding exclusive routing for it.
type captureRecord struct {
	el    system.Element
	owner *Listener
}

// captureLocked requests pointer capture of the given stream for the
// given listener. Best-effort: returns false without error propagation
// when capture is disabled, unsupported, already claimed, or refused
// by the platform. Engine mutex held.
func (en *Engine) captureLocked(li *Listener, sid events.StreamID) bool {
	if !li.opts.UsePointerCapture || !en.caps.HasCapture {
		return false
	}
	if _, held := en.captures[sid]; held {
		// a second claim is a no-op failure, not an override
		return false
	}
	if err := li.Target.SetPointerCapture(sid.ID); err != nil {
		logx.Debug("gesture: pointer capture failed", "stream", sid.String(), "err", err)
		return false
	}
	en.captures[sid] = &captureRecord{el: li.Target, owner: li}
	en.emitCaptureLocked(events.GotCapture, li.Target, sid)
	return true
}

// releaseLocked releases pointer capture of the given stream if the
// given listener holds it; only the capturing listener may release.
// Engine mutex held.
func (en *Engine) releaseLocked(li *Listener, sid events.StreamID) {
	rec, ok := en.captures[sid]
	if !ok || rec.owner != li {
		return
	}
	delete(en.captures, sid)
	if err := rec.el.ReleasePointerCapture(sid.ID); err != nil {
		logx.Debug("gesture: pointer capture release failed", "stream", sid.String(), "err", err)
	}
	en.emitCaptureLocked(events.LostCapture, rec.el, sid)
}

// platformLostCapture handles a platform-initiated capture revocation
// delivered on the given listener's subscription: the record is
// cleared if that listener held it, and LostCapture is fanned out.
// State machines keep running; capture is an enhancement, not a
// correctness requirement. Engine mutex held.
func (en *Engine) platformLostCapture(li *Listener, re *system.RawEvent) {
	sid := events.StreamID{Device: re.PointerType, ID: re.PointerID}
	if sid.Device == events.NoDevice {
		sid.Device = events.Mouse
		sid.ID = events.MouseID
	}
	rec, ok := en.captures[sid]
	if !ok || rec.owner != li {
		return
	}
	delete(en.captures, sid)
	logx.Debug("gesture: capture revoked by platform", "stream", sid.String())
	en.emitCaptureLocked(events.LostCapture, rec.el, sid)
}

// emitCaptureLocked queues a capture lifecycle event to every
// GotCapture / LostCapture listener on the given element, via the
// element's listener map (last registered called first, stopping when
// handled). Engine mutex held.
func (en *Engine) emitCaptureLocked(typ events.Types, el system.Element, sid events.StreamID) {
	ls := en.captureListeners[el]
	if ls == nil {
		return
	}
	ev := &events.Base{
		Typ:       typ,
		Dev:       sid.Device,
		PointerID: sid.ID,
		Primary:   true,
		GenTime:   time.Now(),
	}
	en.pending = append(en.pending, func() {
		ls.Call(ev)
	})
}
