// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build fifo_debug

package fifo

import (
	"log/slog"
	"os"
)

var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))

// SetLogger sets the logger used for block lifecycle tracing.
func SetLogger(l *slog.Logger) {
	logger = l
}

// TraceEnabled is true when built with the fifo_debug tag.
const TraceEnabled = true

// traceBlockAlloc is called by the producer after linking a new block.
// pos is the tail position stored in the block's first slot.
func traceBlockAlloc(pos uint64) {
	logger.Debug("fifo: block alloc", "pos", pos)
}

// traceBlockRelease is called by the consumer after unlinking a block.
// pos is the head position that crossed the block boundary.
func traceBlockRelease(pos uint64) {
	logger.Debug("fifo: block release", "pos", pos)
}
