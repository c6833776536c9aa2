package aliases

import (
	"github.com/buildbarn/bb-paged-buffer/pkg/paging"
)

// This file contains aliases for instantiations of the generic
// interfaces provided by package paging. The only reason this file
// exists is to allow mockgen to emit mocks for them, as it is not
// capable of emitting mocks for a specific instantiation of a generic
// interface.

// Int64Block is an alias of paging.Block[int64].
type Int64Block = paging.Block[int64]

// Int64BlockAllocator is an alias of paging.BlockAllocator[int64].
type Int64BlockAllocator = paging.BlockAllocator[int64]
