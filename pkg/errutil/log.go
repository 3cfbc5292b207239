// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Arnlite Contributors

// Package errutil provides oops-aware error logging and test assertions.
package errutil

import (
	"log/slog"

	"github.com/samber/oops"
)

// LogError logs an error at ERROR level. Oops errors are expanded into
// structured attributes (code and context); other errors log as a plain
// error string.
func LogError(logger *slog.Logger, msg string, err error) {
	oopsErr, ok := oops.AsOops(err)
	if !ok {
		logger.Error(msg, "error", err)
		return
	}

	attrs := []any{"error", oopsErr.Error()}
	if code := oopsErr.Code(); code != "" {
		attrs = append(attrs, "code", code)
	}
	if ctx := oopsErr.Context(); len(ctx) > 0 {
		attrs = append(attrs, "context", ctx)
	}
	logger.Error(msg, attrs...)
}
