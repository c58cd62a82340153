// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fifo

import "unsafe"

// Queue is the combined producer-consumer interface for an unbounded
// SPSC FIFO queue.
//
// Enqueue never fails. Dequeue and Discard return ErrWouldBlock when the
// queue is empty. Exactly one goroutine may act as producer and exactly
// one as consumer.
//
// Example:
//
//	q := fifo.NewSPSC[int]()
//
//	// Producer
//	val := 42
//	q.Enqueue(&val)
//
//	// Consumer
//	elem, err := q.Dequeue()
//	if err == nil {
//	    fmt.Println(elem)
//	}
type Queue[T any] interface {
	Producer[T]
	Consumer[T]

	// Size returns an approximate element count.
	Size() int

	// Empty reports whether Size is zero.
	Empty() bool

	// Clear discards all elements. Not safe with concurrent producers
	// or consumers.
	Clear()
}

// Producer is the interface for enqueueing elements.
//
// The element is passed by pointer to avoid copying large structs. The
// queue stores a copy of the pointed-to value, so the original can be
// modified after Enqueue returns.
type Producer[T any] interface {
	// Enqueue adds an element to the queue. It never blocks and
	// never fails. Single producer only.
	Enqueue(elem *T)
}

// Consumer is the interface for dequeueing elements.
//
// Removed slots are cleared to allow garbage collection of referenced
// objects.
type Consumer[T any] interface {
	// Dequeue removes and returns the oldest element.
	// Returns (zero-value, ErrWouldBlock) if the queue is empty.
	Dequeue() (T, error)

	// Discard removes the oldest element without returning it.
	// Returns ErrWouldBlock if the queue is empty.
	Discard() error

	// Front returns the oldest element in place, or nil if the
	// queue is empty.
	Front() *T
}

// Releaser is implemented by element types that hold resources.
//
// Release is called on an element that leaves the queue without being
// handed to the consumer: by Discard, and by Clear for every element
// still queued. Elements returned by Dequeue are owned by the caller and
// are not released. Release is called on the queued element in place,
// through a pointer, just before its slot is cleared.
//
// Example:
//
//	type Frame struct{ buf []byte }
//
//	func (f *Frame) Release() { pool.Put(f.buf) }
//
//	q := fifo.NewSPSC[Frame]()
//	q.Clear() // every queued Frame is released
type Releaser interface {
	Release()
}

// QueueIndirect is the combined interface for indirect (uintptr) queues.
//
// QueueIndirect passes indices or handles instead of full objects, e.g.
// slots of a buffer pool owned elsewhere.
type QueueIndirect interface {
	ProducerIndirect
	ConsumerIndirect
	Size() int
	Empty() bool
	Clear()
}

// ProducerIndirect enqueues uintptr values.
type ProducerIndirect interface {
	// Enqueue adds an element to the queue. It never blocks.
	Enqueue(elem uintptr)
}

// ConsumerIndirect dequeues uintptr values (non-blocking).
type ConsumerIndirect interface {
	// Dequeue removes and returns the oldest element.
	// Returns (0, ErrWouldBlock) immediately if the queue is empty.
	Dequeue() (uintptr, error)
}

// QueuePtr is the combined interface for unsafe.Pointer queues.
//
// QueuePtr passes pointers directly without copying. The producer
// transfers ownership of the pointed-to object to the consumer.
//
// Example:
//
//	q := fifo.NewSPSCPtr()
//
//	// Producer
//	msg := &Message{Data: largePayload}
//	q.Enqueue(unsafe.Pointer(msg))
//	// msg ownership transferred - do not use msg after this
//
//	// Consumer
//	ptr, _ := q.Dequeue()
//	msg := (*Message)(ptr)
type QueuePtr interface {
	ProducerPtr
	ConsumerPtr
	Size() int
	Empty() bool
	Clear()
}

// ProducerPtr enqueues unsafe.Pointer values.
type ProducerPtr interface {
	// Enqueue adds an element to the queue. It never blocks.
	Enqueue(elem unsafe.Pointer)
}

// ConsumerPtr dequeues unsafe.Pointer values (non-blocking).
type ConsumerPtr interface {
	// Dequeue removes and returns the oldest element.
	// Returns (nil, ErrWouldBlock) immediately if the queue is empty.
	Dequeue() (unsafe.Pointer, error)
}

var (
	_ Queue[int]    = (*SPSC[int])(nil)
	_ QueueIndirect = (*SPSCIndirect)(nil)
	_ QueuePtr      = (*SPSCPtr)(nil)
)
