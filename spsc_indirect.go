// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fifo

import "unsafe"

// SPSCIndirect is an unbounded SPSC queue for uintptr values.
//
// Useful for passing pool indices or handles between two goroutines.
type SPSCIndirect struct {
	q SPSC[uintptr]
}

// NewSPSCIndirect creates an SPSC queue for uintptr values with the
// default block size.
func NewSPSCIndirect() *SPSCIndirect {
	return newSPSCIndirect(Options{})
}

func newSPSCIndirect(opts Options) *SPSCIndirect {
	q := &SPSCIndirect{}
	q.q.configure(opts)
	return q
}

// Enqueue adds an element (producer only).
func (q *SPSCIndirect) Enqueue(elem uintptr) {
	q.q.Enqueue(&elem)
}

// Dequeue removes and returns an element (consumer only).
// Returns (0, ErrWouldBlock) if the queue is empty.
func (q *SPSCIndirect) Dequeue() (uintptr, error) {
	return q.q.Dequeue()
}

// Size returns the number of queued elements. See [SPSC.Size].
func (q *SPSCIndirect) Size() int {
	return q.q.Size()
}

// Empty reports whether Size is zero.
func (q *SPSCIndirect) Empty() bool {
	return q.q.Empty()
}

// Clear discards all elements. Not thread-safe.
func (q *SPSCIndirect) Clear() {
	q.q.Clear()
}

// BlockSize returns the number of slots per block.
func (q *SPSCIndirect) BlockSize() int {
	return q.q.BlockSize()
}

// SPSCPtr is an unbounded SPSC queue for unsafe.Pointer values.
// Useful for zero-copy pointer passing between goroutines.
type SPSCPtr struct {
	q SPSC[unsafe.Pointer]
}

// NewSPSCPtr creates an SPSC queue for unsafe.Pointer values with the
// default block size.
func NewSPSCPtr() *SPSCPtr {
	return newSPSCPtr(Options{})
}

func newSPSCPtr(opts Options) *SPSCPtr {
	q := &SPSCPtr{}
	q.q.configure(opts)
	return q
}

// Enqueue adds an element (producer only).
func (q *SPSCPtr) Enqueue(elem unsafe.Pointer) {
	q.q.Enqueue(&elem)
}

// Dequeue removes and returns an element (consumer only).
// Returns (nil, ErrWouldBlock) if the queue is empty.
func (q *SPSCPtr) Dequeue() (unsafe.Pointer, error) {
	return q.q.Dequeue()
}

// Size returns the number of queued elements. See [SPSC.Size].
func (q *SPSCPtr) Size() int {
	return q.q.Size()
}

// Empty reports whether Size is zero.
func (q *SPSCPtr) Empty() bool {
	return q.q.Empty()
}

// Clear discards all elements. Not thread-safe.
func (q *SPSCPtr) Clear() {
	q.q.Clear()
}

// BlockSize returns the number of slots per block.
func (q *SPSCPtr) BlockSize() int {
	return q.q.BlockSize()
}
