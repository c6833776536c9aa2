package mock

//go:generate mockgen -destination paging.go -package mock -mock_names Int64Block=MockBlock,Int64BlockAllocator=MockBlockAllocator github.com/buildbarn/bb-paged-buffer/internal/mock/aliases Int64Block,Int64BlockAllocator
//go:generate mockgen -destination paging_observer.go -package mock github.com/buildbarn/bb-paged-buffer/pkg/paging BlockFaultObserver
