package paging

type inMemoryBlockAllocator[T any] struct {
	blockCapacity int
}

// NewInMemoryBlockAllocator creates a block allocator that stores its
// blocks directly in memory, each being backed by a slice that is fully
// allocated upon creation. There is no upper bound on the number of
// blocks that can be handed out.
func NewInMemoryBlockAllocator[T any](blockCapacity int) BlockAllocator[T] {
	if blockCapacity <= 0 {
		panic("Block capacity must be positive")
	}
	return &inMemoryBlockAllocator[T]{
		blockCapacity: blockCapacity,
	}
}

func (ba *inMemoryBlockAllocator[T]) NewBlock() (Block[T], error) {
	return inMemoryBlock[T]{
		cells: make([]T, ba.blockCapacity),
	}, nil
}

func (ba *inMemoryBlockAllocator[T]) GetBlockCapacity() int {
	return ba.blockCapacity
}

type inMemoryBlock[T any] struct {
	cells []T
}

func (b inMemoryBlock[T]) Get(offset int) T {
	return b.cells[offset]
}

func (b inMemoryBlock[T]) Put(offset int, value T) {
	b.cells[offset] = value
}

func (inMemoryBlock[T]) Release() {}
