// Copyright (c) 2026, The kframe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides the shared zerolog logger for kframe.
// The engine is silent by default: operational tracing is emitted at
// Debug level only, enabled by setting KFRAME_DEBUG=1 in the environment.
// KFRAME_PRETTY=1 switches from JSON to human-readable console output.
package logx

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger is the package-wide logger used by all kframe packages.
var Logger = NewLogger()

// NewLogger returns a zerolog logger configured from the environment.
func NewLogger() zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	if os.Getenv("KFRAME_PRETTY") == "1" {
		logger = logger.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
	if os.Getenv("KFRAME_DEBUG") == "1" {
		logger = logger.Level(zerolog.DebugLevel)
	} else {
		logger = logger.Level(zerolog.WarnLevel)
	}
	return logger
}

// Debug starts a Debug level event on the shared logger.
func Debug() *zerolog.Event { return Logger.Debug() }

// Warn starts a Warn level event on the shared logger.
func Warn() *zerolog.Event { return Logger.Warn() }
