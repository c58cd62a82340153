// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build fifo_debug

package fifo

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestTraceLogger(t *testing.T) {
	var buf bytes.Buffer
	prev := logger
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(prev)

	q := newSPSC[int](Options{blockSize: 2})
	for i := range 3 {
		q.Enqueue(&i)
	}
	for range 3 {
		q.Dequeue()
	}

	out := buf.String()
	if got := strings.Count(out, "fifo: block alloc"); got != 1 {
		t.Fatalf("alloc records: got %d, want 1\n%s", got, out)
	}
	if got := strings.Count(out, "fifo: block release"); got != 1 {
		t.Fatalf("release records: got %d, want 1\n%s", got, out)
	}
	if !strings.Contains(out, "pos=2") {
		t.Fatalf("missing boundary position in trace:\n%s", out)
	}
}
