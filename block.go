// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fifo

import "unsafe"

// block is one fixed-size segment of the queue's chain.
//
// next is written by the producer before it publishes the first element
// of the following block, and read by the consumer only after it has
// acquired that element's tail.
type block[T any] struct {
	slots []T
	next  *block[T]
}

func newBlock[T any](n uint64) *block[T] {
	return &block[T]{slots: make([]T, n)}
}

// at returns the slot at idx. idx must be masked by the queue.
func (b *block[T]) at(idx uint64) *T {
	// Pointer arithmetic avoids slice bounds checking in hot path.
	// Equivalent to &b.slots[idx]
	var zero T
	return (*T)(unsafe.Add(unsafe.Pointer(unsafe.SliceData(b.slots)), uintptr(idx)*unsafe.Sizeof(zero)))
}

// Block size tiers by element size in bytes.
// A block size of 1 degrades to a linked list.
const (
	smallElem  = 32
	mediumElem = 128
	largeElem  = 1024

	smallBlock  = 128
	mediumBlock = 32
	largeBlock  = 4
	hugeBlock   = 1
)

// blockSizeFor returns the default block size for T.
func blockSizeFor[T any]() int {
	var zero T
	switch size := unsafe.Sizeof(zero); {
	case size <= smallElem:
		return smallBlock
	case size <= mediumElem:
		return mediumBlock
	case size < largeElem:
		return largeBlock
	default:
		return hugeBlock
	}
}

// isReleaser reports whether *T implements Releaser.
func isReleaser[T any]() bool {
	_, ok := any((*T)(nil)).(Releaser)
	return ok
}
