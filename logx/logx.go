// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides leveled logging on top of the standard
// log/slog, with a single user-controlled level that the engine's
// debug toggle maps onto.
package logx

import (
	"fmt"
	"log/slog"
)

// UserLevel is the verbosity level the user has selected via flags or
// settings. Events below this level are not logged.
var UserLevel = defaultUserLevel

// SetDebug sets [UserLevel] to [slog.LevelDebug] if debug is true,
// and the build default otherwise.
func SetDebug(debug bool) {
	if debug {
		UserLevel = slog.LevelDebug
	} else {
		UserLevel = defaultUserLevel
	}
}

func enabled(level slog.Level) bool {
	return level >= UserLevel
}

// Debug logs the given message at [slog.LevelDebug].
func Debug(msg string, args ...any) {
	if enabled(slog.LevelDebug) {
		slog.Debug(msg, args...)
	}
}

// Warn logs the given message at [slog.LevelWarn].
func Warn(msg string, args ...any) {
	if enabled(slog.LevelWarn) {
		slog.Warn(msg, args...)
	}
}

// Error logs the given error at [slog.LevelError] if it is non-nil,
// and returns it either way, allowing inline use on swallowed errors.
func Error(err error, msg ...string) error {
	if err == nil {
		return nil
	}
	if enabled(slog.LevelError) {
		if len(msg) > 0 {
			slog.Error(fmt.Sprintf("%s: %v", msg[0], err))
		} else {
			slog.Error(err.Error())
		}
	}
	return err
}
