// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fifo

// Options configures queue creation.
type Options struct {
	// Slots per block (power of 2). Zero selects a size from the
	// element size.
	blockSize int

	// Maintain a dedicated element counter for Size
	trackSize bool
}

// Builder creates queues with fluent configuration.
//
// Example:
//
//	// Default block size, no size counter
//	q := fifo.Build[Event](fifo.New())
//
//	// 64-slot blocks, Size callable from any goroutine
//	q := fifo.Build[Event](fifo.New().BlockSize(64).TrackSize())
//
//	// Indirect and pointer queues
//	qi := fifo.New().BlockSize(256).BuildIndirect()
//	qp := fifo.New().BuildPtr()
type Builder struct {
	opts Options
}

// New creates a queue builder with default options.
func New() *Builder {
	return &Builder{}
}

// BlockSize sets the number of slots per block.
//
// The size rounds up to the next power of 2. For example, n=3 results in
// 4 slots per block and n=1000 in 1024. A size of 1 allocates one block
// per element.
//
// Panics if n < 1.
func (b *Builder) BlockSize(n int) *Builder {
	if n < 1 {
		panic("fifo: block size must be >= 1")
	}
	b.opts.blockSize = roundToPow2(n)
	return b
}

// TrackSize enables a dedicated element counter.
//
// Without it Size is derived from the cursors and must be called from the
// consumer goroutine. With it Size reads an atomic counter and may be
// called from any goroutine, at the cost of one atomic add per Enqueue
// and per removal.
func (b *Builder) TrackSize() *Builder {
	b.opts.trackSize = true
	return b
}

// Build creates an SPSC queue for elements of type T.
func Build[T any](b *Builder) *SPSC[T] {
	return newSPSC[T](b.opts)
}

// BuildIndirect creates an SPSC queue for uintptr values.
func (b *Builder) BuildIndirect() *SPSCIndirect {
	return newSPSCIndirect(b.opts)
}

// BuildPtr creates an SPSC queue for unsafe.Pointer values.
func (b *Builder) BuildPtr() *SPSCPtr {
	return newSPSCPtr(b.opts)
}

// roundToPow2 rounds n up to the next power of 2.
func roundToPow2(n int) int {
	if n <= 1 {
		return 1
	}
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n |= n >> 32
	return n + 1
}
