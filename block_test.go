// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fifo

import "testing"

// chainLen counts blocks from headBlock to the end of the chain.
func chainLen[T any](q *SPSC[T]) int {
	n := 0
	for b := q.headBlock; b != nil; b = b.next {
		n++
	}
	return n
}

// checkChain verifies the structural invariants that hold whenever no
// operation is in flight.
func checkChain[T any](t *testing.T, q *SPSC[T]) {
	t.Helper()

	tail := q.tail.LoadAcquire()
	if q.head > tail {
		t.Fatalf("head %d > tail %d", q.head, tail)
	}
	if q.tailBlock.next != nil {
		t.Fatalf("tailBlock.next is set")
	}

	last := q.headBlock
	for last.next != nil {
		last = last.next
	}
	if last != q.tailBlock {
		t.Fatalf("tailBlock not reachable from headBlock")
	}

	// Blocks spanned by [head-1, tail-1]: the head block holds the last
	// consumed position until the head crosses its boundary.
	n := q.mask + 1
	want := int((tail-1)/n - (q.head-1)/n + 1)
	if got := chainLen(q); got != want {
		t.Fatalf("head=%d tail=%d block=%d: chain length %d, want %d", q.head, tail, n, got, want)
	}
}

func TestChainInvariants(t *testing.T) {
	for _, n := range []int{1, 2, 4, 16} {
		q := newSPSC[int](Options{blockSize: n})
		checkChain(t, q)

		for i := range 5*n + 3 {
			q.Enqueue(&i)
			checkChain(t, q)
		}
		for range 5*n + 3 {
			if _, err := q.Dequeue(); err != nil {
				t.Fatalf("block %d: Dequeue: %v", n, err)
			}
			checkChain(t, q)
		}

		q.Clear()
		checkChain(t, q)
		if q.head != 1 || q.tail.LoadRelaxed() != 1 || q.cachedTail != 1 {
			t.Fatalf("block %d: Clear: head=%d tail=%d cachedTail=%d, want 1", n, q.head, q.tail.LoadRelaxed(), q.cachedTail)
		}
		if chainLen(q) != 1 {
			t.Fatalf("block %d: Clear: chain length %d, want 1", n, chainLen(q))
		}
	}
}

// TestFirstSlotUnused tests that cursors start at 1, so the first element
// lands in slot 1 of the first block.
func TestFirstSlotUnused(t *testing.T) {
	q := newSPSC[int](Options{blockSize: 4})
	first := q.headBlock

	v := 42
	q.Enqueue(&v)
	if first.slots[0] != 0 || first.slots[1] != 42 {
		t.Fatalf("slots: got %v, want [0 42 ...]", first.slots)
	}
}

// TestReleasedBlockUnlinked tests that the consumer unlinks a block when
// its head crosses into the next one.
func TestReleasedBlockUnlinked(t *testing.T) {
	q := newSPSC[int](Options{blockSize: 2})
	first := q.headBlock

	for i := range 3 {
		q.Enqueue(&i)
	}
	if first.next == nil {
		t.Fatalf("producer did not link a second block")
	}

	q.Dequeue() // position 1, still in first block
	if q.headBlock != first {
		t.Fatalf("head block advanced early")
	}
	q.Dequeue() // position 2, first slot of second block
	if q.headBlock == first {
		t.Fatalf("head block did not advance at boundary")
	}
	if first.next != nil {
		t.Fatalf("released block still linked")
	}
}

// TestSlotCleared tests that removed slots are zeroed so referenced
// objects can be collected.
func TestSlotCleared(t *testing.T) {
	q := newSPSC[*int](Options{blockSize: 4})
	b := q.headBlock

	a, c := 1, 2
	pa, pc := &a, &c
	q.Enqueue(&pa)
	q.Enqueue(&pc)

	if _, err := q.Dequeue(); err != nil {
		t.Fatalf("Dequeue: %v", err)
	}
	if err := q.Discard(); err != nil {
		t.Fatalf("Discard: %v", err)
	}
	if b.slots[1] != nil || b.slots[2] != nil {
		t.Fatalf("slots not cleared: %v", b.slots)
	}
}

func TestRoundToPow2(t *testing.T) {
	cases := map[int]int{-5: 1, 0: 1, 1: 1, 2: 2, 3: 4, 7: 8, 8: 8, 9: 16, 1 << 20: 1 << 20, 1<<20 + 1: 1 << 21}
	for in, want := range cases {
		if got := roundToPow2(in); got != want {
			t.Errorf("roundToPow2(%d): got %d, want %d", in, got, want)
		}
	}
}

type countingReleaser struct{ n *int }

func (r *countingReleaser) Release() { *r.n++ }

type valueReleasable struct{}

func (valueReleasable) Release() {}

func TestIsReleaser(t *testing.T) {
	if isReleaser[int]() {
		t.Errorf("int reported as Releaser")
	}
	if !isReleaser[countingReleaser]() {
		t.Errorf("pointer-receiver Releaser not detected")
	}
	if !isReleaser[valueReleasable]() {
		t.Errorf("value-receiver Releaser not detected")
	}
}

// TestTraceHooks exercises the block lifecycle hooks in whichever build
// mode is active.
func TestTraceHooks(t *testing.T) {
	if TraceEnabled {
		t.Skip("skip: covered by TestTraceLogger under fifo_debug")
	}
	SetLogger(nil)
	traceBlockAlloc(1)
	traceBlockRelease(1)
}
