package paging

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// DefaultMaximumBlockCount is the number of blocks a single buffer may
// use when a limit is configured without an explicit value. Combined
// with DefaultBlockCapacity, this gives buffers a capacity of 256
// elements.
const DefaultMaximumBlockCount = 64

type maximumCountBlockAllocator[T any] struct {
	base          BlockAllocator[T]
	maximumBlocks int
	currentBlocks int
}

// NewMaximumCountBlockAllocator creates a decorator for BlockAllocator
// that limits the number of blocks that may be outstanding at any point
// in time. Requests for additional blocks fail with
// codes.ResourceExhausted. Releasing a block makes room for a new one.
func NewMaximumCountBlockAllocator[T any](base BlockAllocator[T], maximumBlocks int) BlockAllocator[T] {
	return &maximumCountBlockAllocator[T]{
		base:          base,
		maximumBlocks: maximumBlocks,
	}
}

func (ba *maximumCountBlockAllocator[T]) NewBlock() (Block[T], error) {
	if ba.currentBlocks >= ba.maximumBlocks {
		return nil, status.Errorf(codes.ResourceExhausted, "All %d blocks have already been allocated", ba.maximumBlocks)
	}
	block, err := ba.base.NewBlock()
	if err != nil {
		return nil, err
	}
	ba.currentBlocks++
	return &maximumCountBlock[T]{
		Block:     block,
		allocator: ba,
	}, nil
}

func (ba *maximumCountBlockAllocator[T]) GetBlockCapacity() int {
	return ba.base.GetBlockCapacity()
}

type maximumCountBlock[T any] struct {
	Block[T]
	allocator *maximumCountBlockAllocator[T]
	released  bool
}

func (b *maximumCountBlock[T]) Release() {
	if b.released {
		panic("Attempted to release a block that was already released")
	}
	b.released = true
	b.allocator.currentBlocks--
	b.Block.Release()
}
