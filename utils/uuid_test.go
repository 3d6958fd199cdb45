package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsID(t *testing.T) {
	require.True(t, IsID(GenerateID()))
	require.False(t, IsID("listing-1"))
	require.False(t, IsID(""))
}
