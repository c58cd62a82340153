// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package fifo provides an unbounded lock-free single-producer
// single-consumer FIFO queue.
//
// The queue stores elements in a chain of fixed-size blocks. The producer
// never blocks: when its tail crosses a block boundary it links a new
// block. The consumer never blocks either: it gets an element or
// [ErrWouldBlock], and it drops each block once its head moves past it.
//
// # Quick Start
//
// Direct constructors:
//
//	q := fifo.NewSPSC[Event]()
//	qi := fifo.NewSPSCIndirect()
//	qp := fifo.NewSPSCPtr()
//
// Builder API for non-default configuration:
//
//	q := fifo.Build[Event](fifo.New().BlockSize(64).TrackSize())
//
// # Basic Usage
//
//	q := fifo.NewSPSC[int]()
//
//	// Enqueue (producer goroutine, never blocks)
//	value := 42
//	q.Enqueue(&value)
//
//	// Dequeue (consumer goroutine, non-blocking)
//	elem, err := q.Dequeue()
//	if fifo.IsWouldBlock(err) {
//	    // Queue is empty - try again later
//	}
//
//	// Peek and drop
//	if p := q.Front(); p != nil {
//	    inspect(*p)
//	    q.Discard()
//	}
//
// # Pipeline Stage
//
//	q := fifo.NewSPSC[Data]()
//
//	go func() { // Producer (Stage 1)
//	    for data := range input {
//	        q.Enqueue(&data)
//	    }
//	}()
//
//	go func() { // Consumer (Stage 2)
//	    backoff := iox.Backoff{}
//	    for {
//	        data, err := q.Dequeue()
//	        if err != nil {
//	            backoff.Wait()
//	            continue
//	        }
//	        backoff.Reset()
//	        process(data)
//	    }
//	}()
//
// # Block Size
//
// The default block size depends on the element size:
//
//	size <= 32 bytes    128 slots
//	size <= 128 bytes    32 slots
//	size < 1024 bytes     4 slots
//	otherwise             1 slot
//
// [Builder.BlockSize] overrides it; the value rounds up to a power of 2.
// Observable behavior does not depend on the block size.
//
// # Size
//
// Size is a snapshot, not a synchronization primitive. By default it is
// derived from the tail and head cursors and must be called from the
// consumer goroutine. [Builder.TrackSize] adds an atomic counter that
// makes Size callable from any goroutine.
//
// # Element Release
//
// Element types whose pointer implements [Releaser] are released when
// they leave the queue without being returned: by Discard, and by Clear
// for every queued element. Dequeue hands ownership to the caller and
// does not release.
//
// # Memory Ordering
//
// The release-store of the tail cursor in Enqueue and the acquire-load of
// it in Dequeue form the only synchronization edge. Everything else is
// owned by one side:
//
//	tail           producer writes, consumer acquires
//	tail block     producer
//	block next     producer links before publishing, consumer unlinks after crossing
//	head, cached tail, head block   consumer
//
// Slots are written only by the producer before the release and read or
// cleared only by the consumer after the acquire, so no slot is ever
// touched by both sides at once.
//
// # Thread Safety
//
// Exactly one producer goroutine and one consumer goroutine. Violating
// this (e.g., two producers) causes undefined behavior including data
// corruption. Clear must not run concurrently with any other operation.
//
// # Race Detection
//
// Go's race detector cannot observe happens-before relationships
// established through atomix acquire-release operations. Tests that run
// a producer and a consumer concurrently are skipped when [RaceEnabled]
// is true.
//
// # Debug Tracing
//
// Building with -tags fifo_debug logs block allocation and release
// through [log/slog]. [SetLogger] replaces the logger. Without the tag the
// trace hooks compile to nothing.
//
// # Dependencies
//
// This package uses [code.hybscloud.com/iox] for semantic errors,
// [code.hybscloud.com/atomix] for atomic primitives with explicit
// memory ordering, and [golang.org/x/sys/cpu] for cache line padding.
package fifo
