package swifft

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBatchChunkIsPositive(t *testing.T) {
	require.Greater(t, batchChunk(), 0)
}

func TestComputeMultipleHandlesChunkLargerThanInput(t *testing.T) {
	blocks := []*InBlock{NewInBlock()}
	got := ComputeMultiple(blocks)
	require.Len(t, got, 1)
	require.Equal(t, Compute(blocks[0]), got[0])
}

func TestComputeMultipleEmpty(t *testing.T) {
	got := ComputeMultiple(nil)
	require.Empty(t, got)
}
