// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fifo

import (
	"code.hybscloud.com/atomix"
	"golang.org/x/sys/cpu"
)

// SPSC is an unbounded single-producer single-consumer queue.
//
// Elements live in a chain of fixed-size blocks. The producer appends a
// block when its tail crosses a block boundary; the consumer unlinks a
// block when its head crosses into the next one. The release-store of tail
// in Enqueue and the acquire-load of tail in Dequeue are the only
// synchronization between the two sides: slot writes and block links made
// by the producer become visible once the consumer observes the tail that
// covers them.
//
// Ownership:
//
//	tail       producer writes (release), consumer reads (acquire)
//	tailBlock  producer only
//	head       consumer only
//	cachedTail consumer only
//	headBlock  consumer only
//	count      atomic, producer increments before publishing tail
//
// Memory: O(len) plus at most one partially used block at each end
type SPSC[T any] struct {
	_          cpu.CacheLinePad
	tail       atomix.Uint64 // Producer writes here
	tailBlock  *block[T]     // Block the producer is filling
	_          cpu.CacheLinePad
	head       uint64    // Consumer reads from here
	cachedTail uint64    // Consumer's cached view of tail
	headBlock  *block[T] // Block the consumer is draining
	_          cpu.CacheLinePad
	count      atomix.Int64 // Maintained only when trackSize is set
	_          cpu.CacheLinePad
	mask       uint64
	trackSize  bool
	releasable bool
}

// NewSPSC creates an SPSC queue with the default block size for T.
func NewSPSC[T any]() *SPSC[T] {
	return newSPSC[T](Options{})
}

func newSPSC[T any](opts Options) *SPSC[T] {
	q := &SPSC[T]{}
	q.configure(opts)
	return q
}

// configure applies opts to a zero queue and installs the first block.
func (q *SPSC[T]) configure(opts Options) {
	n := opts.blockSize
	if n == 0 {
		n = blockSizeFor[T]()
	}
	q.mask = uint64(n - 1)
	q.trackSize = opts.trackSize
	q.releasable = isReleaser[T]()
	q.init()
}

// init installs a fresh block and resets both cursors to 1.
// The cursors never start at 0, so slot 0 of the first block stays unused.
func (q *SPSC[T]) init() {
	b := newBlock[T](q.mask + 1)
	q.headBlock = b
	q.tailBlock = b
	q.head = 1
	q.cachedTail = 1
	q.count.StoreRelaxed(0)
	q.tail.StoreRelease(1)
}

// destroy discards every element and unlinks the whole chain.
// Not safe to run concurrently with Enqueue or Dequeue.
func (q *SPSC[T]) destroy() {
	q.cachedTail = q.tail.LoadAcquire()
	for q.Discard() == nil {
	}
	for b := q.headBlock; b != nil; {
		next := b.next
		b.next = nil
		traceBlockRelease(q.head)
		b = next
	}
	q.headBlock = nil
	q.tailBlock = nil
}

// Enqueue appends a copy of *elem to the queue (producer only).
// Enqueue never blocks and never fails; the chain grows as needed.
func (q *SPSC[T]) Enqueue(elem *T) {
	tail := q.tail.LoadRelaxed()
	idx := tail & q.mask
	if idx == 0 {
		// Plain store: the consumer reaches next only after it has
		// acquired a tail that covers this slot.
		b := newBlock[T](q.mask + 1)
		q.tailBlock.next = b
		q.tailBlock = b
		traceBlockAlloc(tail)
	}

	*q.tailBlock.at(idx) = *elem
	if q.trackSize {
		q.count.Add(1)
	}
	q.tail.StoreRelease(tail + 1)
}

// Dequeue removes and returns the oldest element (consumer only).
// Returns (zero-value, ErrWouldBlock) if the queue is empty.
func (q *SPSC[T]) Dequeue() (T, error) {
	slot := q.advance()
	if slot == nil {
		var zero T
		return zero, ErrWouldBlock
	}

	elem := *slot
	var zero T
	*slot = zero
	return elem, nil
}

// Discard removes the oldest element without returning it (consumer only).
// If T implements [Releaser], Release is called on the element first.
// Returns ErrWouldBlock if the queue is empty.
func (q *SPSC[T]) Discard() error {
	slot := q.advance()
	if slot == nil {
		return ErrWouldBlock
	}

	if q.releasable {
		any(slot).(Releaser).Release()
	}
	var zero T
	*slot = zero
	return nil
}

// advance claims the slot at head and moves head forward.
// Returns nil when no element is available.
func (q *SPSC[T]) advance() *T {
	head := q.head
	if head == q.cachedTail {
		q.cachedTail = q.tail.LoadAcquire()
		if head == q.cachedTail {
			return nil
		}
	}

	q.head = head + 1
	idx := head & q.mask
	if idx == 0 {
		// The producer linked next before publishing the tail acquired
		// above, and it never touches old again.
		old := q.headBlock
		q.headBlock = old.next
		old.next = nil
		traceBlockRelease(head)
	}
	if q.trackSize {
		q.count.Add(-1)
	}
	return q.headBlock.at(idx)
}

// Front returns a pointer to the oldest element without removing it
// (consumer only). Returns nil if the queue is empty.
//
// The pointer is valid until the next Dequeue, Discard or Clear.
func (q *SPSC[T]) Front() *T {
	head := q.head
	if head == q.cachedTail {
		q.cachedTail = q.tail.LoadAcquire()
		if head == q.cachedTail {
			return nil
		}
	}

	idx := head & q.mask
	b := q.headBlock
	if idx == 0 {
		b = b.next
	}
	return b.at(idx)
}

// Size returns the number of queued elements.
//
// The result is a snapshot, not a synchronization point: under concurrent
// Enqueue it may lag behind. Without size tracking Size reads the
// consumer's head and must be called from the consumer goroutine. With
// [Builder.TrackSize] it may be called from any goroutine.
func (q *SPSC[T]) Size() int {
	if q.trackSize {
		return int(q.count.LoadRelaxed())
	}
	return int(q.tail.LoadRelaxed() - q.head)
}

// Empty reports whether Size is zero.
func (q *SPSC[T]) Empty() bool {
	return q.Size() == 0
}

// Clear discards all elements and resets the queue to its initial state.
//
// Clear is not thread-safe: no Enqueue, Dequeue or Discard may run
// concurrently with it.
func (q *SPSC[T]) Clear() {
	q.destroy()
	q.init()
}

// BlockSize returns the number of slots per block.
func (q *SPSC[T]) BlockSize() int {
	return int(q.mask + 1)
}

// TracksSize reports whether the queue maintains a dedicated size counter.
func (q *SPSC[T]) TracksSize() bool {
	return q.trackSize
}
