package paging

import (
	"fmt"
	"math"

	"github.com/buildbarn/bb-paged-buffer/pkg/util"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// SizeSummary contains diagnostic information on how much storage a
// BlockTable uses.
type SizeSummary struct {
	Length     int
	BlockCount int
}

func (s SizeSummary) String() string {
	return fmt.Sprintf("{len:%d, block_size:%d}", s.Length, s.BlockCount)
}

// BlockTable translates logical indices to cells stored in blocks. The
// logical index space is partitioned into ranges of GetBlockCapacity()
// elements, each of which is backed by at most one block. Blocks are
// allocated lazily, at the moment the first write into their range
// takes place. They are never freed.
//
// BlockTable keeps track of a length. All logical indices in the range
// [0, length) can be read. The block containing the last element is
// always allocated. Blocks in front of it may be absent if elements
// were written out of order. Cells in such blocks read as the zero
// value of T, which is identical to what a freshly allocated block
// would contain.
//
// BlockTable does not permit concurrent access.
type BlockTable[T any] struct {
	blockAllocator     BlockAllocator[T]
	blockCapacity      int
	blockFaultObserver BlockFaultObserver

	blocks map[int]Block[T]
	length int
}

// NewBlockTable creates a BlockTable that is empty and has length zero.
func NewBlockTable[T any](blockAllocator BlockAllocator[T], blockFaultObserver BlockFaultObserver) *BlockTable[T] {
	return &BlockTable[T]{
		blockAllocator:     blockAllocator,
		blockCapacity:      blockAllocator.GetBlockCapacity(),
		blockFaultObserver: blockFaultObserver,

		blocks: map[int]Block[T]{},
	}
}

// Get the value of the element stored at a logical index. The index
// must be in the range [0, length).
func (bt *BlockTable[T]) Get(index int) (T, error) {
	var zero T
	if index < 0 || index >= bt.length {
		return zero, status.Errorf(codes.OutOfRange, "Cannot find index %d in block table of length %d", index, bt.length)
	}

	blockIndex, offset := index/bt.blockCapacity, index%bt.blockCapacity
	block, ok := bt.blocks[blockIndex]
	if !ok {
		if blockIndex == (bt.length-1)/bt.blockCapacity {
			panic(fmt.Sprintf("Block %d containing the last element of a block table of length %d is not allocated", blockIndex, bt.length))
		}
		return zero, nil
	}
	return block.Get(offset), nil
}

// Set the value of the element stored at a logical index. If the index
// lies at or past the current length, the length is extended to
// include it. Writing into a range that is not backed by a block yet
// causes a block to be allocated. If allocation fails, the BlockTable
// is left unmodified.
func (bt *BlockTable[T]) Set(index int, value T) error {
	if index < 0 || index == math.MaxInt {
		return status.Errorf(codes.OutOfRange, "Cannot set index %d in block table", index)
	}
	if err := bt.reserve(index, index+1); err != nil {
		return err
	}
	bt.put(index, value)
	return nil
}

// Append a value, increasing the length by exactly one.
func (bt *BlockTable[T]) Append(value T) error {
	return bt.Set(bt.length, value)
}

// Reinitialize the contents of the BlockTable, so that it contains
// exactly the provided values. Blocks that back elements past the new
// length remain allocated, but their contents become unreachable.
//
// Either all blocks needed to store the values can be allocated or the
// BlockTable is left unmodified.
func (bt *BlockTable[T]) Reinitialize(values []T) error {
	if err := bt.reserve(0, len(values)); err != nil {
		return err
	}
	for i, value := range values {
		bt.put(i, value)
	}
	bt.length = len(values)
	return nil
}

// GetLength returns the number of elements that can be read.
func (bt *BlockTable[T]) GetLength() int {
	return bt.length
}

// GetBlockCapacity returns the number of elements stored in every block.
func (bt *BlockTable[T]) GetBlockCapacity() int {
	return bt.blockCapacity
}

// GetBlockCount returns the number of blocks that have been allocated.
func (bt *BlockTable[T]) GetBlockCount() int {
	return len(bt.blocks)
}

// IsBlockAllocated returns whether a block has been allocated for a
// given block index.
func (bt *BlockTable[T]) IsBlockAllocated(blockIndex int) bool {
	_, ok := bt.blocks[blockIndex]
	return ok
}

// GetSizeSummary returns the length and the number of allocated blocks.
func (bt *BlockTable[T]) GetSizeSummary() SizeSummary {
	return SizeSummary{
		Length:     bt.length,
		BlockCount: len(bt.blocks),
	}
}

// put stores a value in a block that has already been reserved.
func (bt *BlockTable[T]) put(index int, value T) {
	bt.blocks[index/bt.blockCapacity].Put(index%bt.blockCapacity, value)
	if bt.length <= index {
		bt.length = index + 1
	}
}

// reserve ensures that all logical indices in the range [first, last)
// are backed by blocks. Either all missing blocks are allocated, or
// none of them are.
func (bt *BlockTable[T]) reserve(first, last int) error {
	if first >= last {
		return nil
	}

	type pendingBlock struct {
		blockIndex   int
		logicalIndex int
		block        Block[T]
	}
	var pendingBlocks []pendingBlock
	for blockIndex := first / bt.blockCapacity; blockIndex <= (last-1)/bt.blockCapacity; blockIndex++ {
		if _, ok := bt.blocks[blockIndex]; ok {
			continue
		}
		block, err := bt.blockAllocator.NewBlock()
		if err != nil {
			for _, pb := range pendingBlocks {
				pb.block.Release()
			}
			return util.StatusWrapf(err, "Failed to allocate block %d", blockIndex)
		}
		pendingBlocks = append(pendingBlocks, pendingBlock{
			blockIndex:   blockIndex,
			logicalIndex: max(first, blockIndex*bt.blockCapacity),
			block:        block,
		})
	}

	for _, pb := range pendingBlocks {
		bt.blocks[pb.blockIndex] = pb.block
		bt.blockFaultObserver.BlockFaulted(pb.blockIndex, pb.logicalIndex)
	}
	return nil
}
