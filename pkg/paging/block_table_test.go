package paging_test

import (
	"testing"

	"github.com/buildbarn/bb-paged-buffer/internal/mock"
	"github.com/buildbarn/bb-paged-buffer/pkg/paging"
	"github.com/buildbarn/bb-paged-buffer/pkg/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestBlockTableSetGet(t *testing.T) {
	ctrl := gomock.NewController(t)

	blockAllocator := mock.NewMockBlockAllocator(ctrl)
	blockAllocator.EXPECT().GetBlockCapacity().Return(4)
	blockFaultObserver := mock.NewMockBlockFaultObserver(ctrl)
	blockTable := paging.NewBlockTable[int64](blockAllocator, blockFaultObserver)
	require.Equal(t, 4, blockTable.GetBlockCapacity())

	// In the initial state nothing can be read, as the table has
	// length zero.
	_, err := blockTable.Get(0)
	testutil.RequireEqualStatus(t, status.Error(codes.OutOfRange, "Cannot find index 0 in block table of length 0"), err)
	require.Equal(t, paging.SizeSummary{Length: 0, BlockCount: 0}, blockTable.GetSizeSummary())

	// Writing to index 5 lands in the second block. This should
	// cause exactly that block to be allocated.
	block1 := mock.NewMockBlock(ctrl)
	blockAllocator.EXPECT().NewBlock().Return(block1, nil)
	blockFaultObserver.EXPECT().BlockFaulted(1, 5)
	block1.EXPECT().Put(1, int64(42))
	require.NoError(t, blockTable.Set(5, 42))
	require.Equal(t, 6, blockTable.GetLength())
	require.False(t, blockTable.IsBlockAllocated(0))
	require.True(t, blockTable.IsBlockAllocated(1))
	require.Equal(t, 1, blockTable.GetBlockCount())

	block1.EXPECT().Get(1).Return(int64(42))
	v, err := blockTable.Get(5)
	require.NoError(t, err)
	require.Equal(t, int64(42), v)

	// Index 2 lies within the length of the table, but no block
	// was ever allocated for it. It reads as zero, without causing
	// any allocation.
	v, err = blockTable.Get(2)
	require.NoError(t, err)
	require.Equal(t, int64(0), v)
	require.Equal(t, 1, blockTable.GetBlockCount())

	_, err = blockTable.Get(6)
	testutil.RequireEqualStatus(t, status.Error(codes.OutOfRange, "Cannot find index 6 in block table of length 6"), err)
	_, err = blockTable.Get(-1)
	testutil.RequireEqualStatus(t, status.Error(codes.OutOfRange, "Cannot find index -1 in block table of length 6"), err)

	// Writing to an index below the length should reuse the
	// existing block and leave the length untouched.
	block1.EXPECT().Put(0, int64(7))
	require.NoError(t, blockTable.Set(4, 7))
	require.Equal(t, 6, blockTable.GetLength())

	// Appending continues at the current length.
	block1.EXPECT().Put(2, int64(8))
	require.NoError(t, blockTable.Append(8))
	require.Equal(t, paging.SizeSummary{Length: 7, BlockCount: 1}, blockTable.GetSizeSummary())

	// Negative indices cannot be written.
	testutil.RequireEqualStatus(
		t,
		status.Error(codes.OutOfRange, "Cannot set index -1 in block table"),
		blockTable.Set(-1, 3))
}

func TestBlockTableAllocationFailure(t *testing.T) {
	ctrl := gomock.NewController(t)

	blockAllocator := mock.NewMockBlockAllocator(ctrl)
	blockAllocator.EXPECT().GetBlockCapacity().Return(4)
	blockFaultObserver := mock.NewMockBlockFaultObserver(ctrl)
	blockTable := paging.NewBlockTable[int64](blockAllocator, blockFaultObserver)

	t.Run("Set", func(t *testing.T) {
		// Errors from the allocator should be propagated. The
		// table should remain empty.
		blockAllocator.EXPECT().NewBlock().Return(nil, status.Error(codes.ResourceExhausted, "Out of blocks"))
		testutil.RequireEqualStatus(
			t,
			status.Error(codes.ResourceExhausted, "Failed to allocate block 0: Out of blocks"),
			blockTable.Append(1))
		require.Equal(t, paging.SizeSummary{Length: 0, BlockCount: 0}, blockTable.GetSizeSummary())
	})

	t.Run("Reinitialize", func(t *testing.T) {
		// Storing ten values requires three blocks. If the third
		// block cannot be allocated, the first two should be
		// released. No block faults should be reported.
		block0 := mock.NewMockBlock(ctrl)
		block1 := mock.NewMockBlock(ctrl)
		gomock.InOrder(
			blockAllocator.EXPECT().NewBlock().Return(block0, nil),
			blockAllocator.EXPECT().NewBlock().Return(block1, nil),
			blockAllocator.EXPECT().NewBlock().Return(nil, status.Error(codes.ResourceExhausted, "Out of blocks")))
		block0.EXPECT().Release()
		block1.EXPECT().Release()

		testutil.RequireEqualStatus(
			t,
			status.Error(codes.ResourceExhausted, "Failed to allocate block 2: Out of blocks"),
			blockTable.Reinitialize([]int64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}))
		require.Equal(t, paging.SizeSummary{Length: 0, BlockCount: 0}, blockTable.GetSizeSummary())
	})
}

func TestBlockTableInMemory(t *testing.T) {
	ctrl := gomock.NewController(t)

	t.Run("LazyAllocation", func(t *testing.T) {
		blockFaultObserver := mock.NewMockBlockFaultObserver(ctrl)
		blockTable := paging.NewBlockTable(paging.NewInMemoryBlockAllocator[int64](4), blockFaultObserver)

		// Before writing, no block is present. Afterwards,
		// exactly one block for the written range exists.
		for blockIndex := 0; blockIndex < 3; blockIndex++ {
			require.False(t, blockTable.IsBlockAllocated(blockIndex))
			blockFaultObserver.EXPECT().BlockFaulted(blockIndex, blockIndex*4)
			for offset := 0; offset < 4; offset++ {
				require.NoError(t, blockTable.Append(int64(blockIndex*4+offset)))
				require.True(t, blockTable.IsBlockAllocated(blockIndex))
				require.Equal(t, blockIndex+1, blockTable.GetBlockCount())
			}
		}
		require.False(t, blockTable.IsBlockAllocated(3))
	})

	t.Run("GrowthMonotonicity", func(t *testing.T) {
		blockTable := paging.NewBlockTable(paging.NewInMemoryBlockAllocator[int64](4), paging.NopBlockFaultObserver)

		previousLength := 0
		for _, index := range []int{3, 0, 10, 7, 10, 2, 11, 1} {
			require.NoError(t, blockTable.Set(index, int64(index*100)))
			expectedLength := max(previousLength, index+1)
			require.Equal(t, expectedLength, blockTable.GetLength())
			previousLength = expectedLength

			// Reads should immediately observe the written
			// value, and keep on doing so.
			for i := 0; i < 2; i++ {
				v, err := blockTable.Get(index)
				require.NoError(t, err)
				require.Equal(t, int64(index*100), v)
			}
		}
		require.Equal(t, paging.SizeSummary{Length: 12, BlockCount: 3}, blockTable.GetSizeSummary())
	})

	t.Run("ReinitializeShorter", func(t *testing.T) {
		blockTable := paging.NewBlockTable(paging.NewInMemoryBlockAllocator[int64](4), paging.NopBlockFaultObserver)

		require.NoError(t, blockTable.Reinitialize([]int64{1, 2, 3, 4, 5, 6, 7, 8, 9}))
		require.Equal(t, paging.SizeSummary{Length: 9, BlockCount: 3}, blockTable.GetSizeSummary())

		// Reinitializing with fewer values lowers the length,
		// but leaves the blocks allocated.
		require.NoError(t, blockTable.Reinitialize([]int64{10, 20}))
		require.Equal(t, paging.SizeSummary{Length: 2, BlockCount: 3}, blockTable.GetSizeSummary())
		_, err := blockTable.Get(2)
		testutil.RequireEqualStatus(t, status.Error(codes.OutOfRange, "Cannot find index 2 in block table of length 2"), err)

		// Appending continues right after the new length,
		// overwriting stale contents.
		require.NoError(t, blockTable.Append(30))
		v, err := blockTable.Get(2)
		require.NoError(t, err)
		require.Equal(t, int64(30), v)
		require.Equal(t, paging.SizeSummary{Length: 3, BlockCount: 3}, blockTable.GetSizeSummary())
	})
}

func TestSizeSummaryString(t *testing.T) {
	require.Equal(t, "{len:7, block_size:2}", paging.SizeSummary{Length: 7, BlockCount: 2}.String())
}
