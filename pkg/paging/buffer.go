package paging

import (
	"fmt"

	"github.com/buildbarn/bb-paged-buffer/pkg/util"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Buffer is a growable sequence of elements. Its contents are stored in
// blocks that are not guaranteed to be contiguous, translated through a
// BlockTable that is owned exclusively by the Buffer.
//
// Buffer does not permit concurrent access. This also applies to
// buffers passed to Append() as the source.
type Buffer[T any] struct {
	table *BlockTable[T]
}

// NewBuffer creates a Buffer that is initially empty. Blocks for
// storing its contents are obtained from the provided allocator.
func NewBuffer[T any](blockAllocator BlockAllocator[T], blockFaultObserver BlockFaultObserver) *Buffer[T] {
	return &Buffer[T]{
		table: NewBlockTable(blockAllocator, blockFaultObserver),
	}
}

// SetData replaces the contents of the Buffer with the provided values.
// The length of the Buffer becomes equal to the number of values.
func (b *Buffer[T]) SetData(values []T) error {
	if err := b.table.Reinitialize(values); err != nil {
		return util.StatusWrapf(err, "Failed to set %d element(s)", len(values))
	}
	return nil
}

// Append copies all elements of another Buffer to the end of this
// Buffer. Elements are copied by value, meaning that no blocks are
// shared between both buffers afterwards. It is valid to append a
// Buffer to itself.
func (b *Buffer[T]) Append(other *Buffer[T]) error {
	values := make([]T, other.table.GetLength())
	for i := range values {
		value, err := other.table.Get(i)
		if err != nil {
			return util.StatusWrapf(err, "Failed to read element %d of source buffer", i)
		}
		values[i] = value
	}

	length := b.table.GetLength()
	if err := b.table.reserve(length, length+len(values)); err != nil {
		return util.StatusWrapf(err, "Failed to append %d element(s)", len(values))
	}
	for i, value := range values {
		b.table.put(length+i, value)
	}
	return nil
}

// At returns the element stored at a given index. Negative indices
// count backwards from the end of the Buffer, meaning that -1 refers to
// the last element. Valid indices are in the range [-length, length).
func (b *Buffer[T]) At(index int) (T, error) {
	length := b.table.GetLength()
	if index < -length || index >= length {
		var zero T
		return zero, status.Errorf(codes.OutOfRange, "Invalid index %d is out of range [%d, %d]", index, -length, length-1)
	}
	if index < 0 {
		index += length
	}
	return b.table.Get(index)
}

// GetLength returns the number of elements stored in the Buffer.
func (b *Buffer[T]) GetLength() int {
	return b.table.GetLength()
}

// GetSizeSummary returns diagnostic information on the amount of
// storage used by the Buffer.
func (b *Buffer[T]) GetSizeSummary() SizeSummary {
	return b.table.GetSizeSummary()
}

func (b *Buffer[T]) String() string {
	return fmt.Sprintf("length:%d, blocks:%s", b.table.GetLength(), b.table.GetSizeSummary())
}
