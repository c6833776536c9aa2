package paging

// BlockAllocator is used by BlockTable to obtain blocks of storage in
// response to block faults. All blocks returned by a single allocator
// have the same capacity.
type BlockAllocator[T any] interface {
	NewBlock() (Block[T], error)
	GetBlockCapacity() int
}
