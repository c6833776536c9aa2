package paging

// DefaultBlockCapacity is the number of cells stored in a single block
// when no explicit capacity is configured.
const DefaultBlockCapacity = 4

// Block is a fixed-capacity array of cells. It is the unit at which
// storage is handed out by a BlockAllocator. All cells of a newly
// allocated block hold the zero value of T.
//
// Offsets passed to Get() and Put() must be in the range [0, capacity).
// Violating this is a programming error.
type Block[T any] interface {
	Get(offset int) T
	Put(offset int, value T)
	Release()
}
