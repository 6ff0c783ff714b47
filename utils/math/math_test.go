package math

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDivCeil(t *testing.T) {
	require.Equal(t, 0, DivCeil(0, 3))
	require.Equal(t, 1, DivCeil(1, 3))
	require.Equal(t, 1, DivCeil(3, 3))
	require.Equal(t, 2, DivCeil(4, 3))
	require.Equal(t, uint64(3), DivCeil(uint64(5), uint64(2)))
}

func TestMinMax(t *testing.T) {
	require.Equal(t, 3, Max(1, 3))
	require.Equal(t, 1, Min(1, 3))
	require.Equal(t, "b", Max("a", "b"))
}
