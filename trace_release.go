// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !fifo_debug

package fifo

import "log/slog"

// SetLogger sets the logger used for block lifecycle tracing.
// Without the fifo_debug build tag this does nothing; the signature is
// kept so callers compile either way.
func SetLogger(l *slog.Logger) {}

// TraceEnabled is false unless built with the fifo_debug tag.
const TraceEnabled = false

func traceBlockAlloc(pos uint64) {}

func traceBlockRelease(pos uint64) {}
