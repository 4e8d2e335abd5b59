package hdbscan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCondense_FiltersByMinClusterSize(t *testing.T) {
	edges := []Edge{
		{U: 0, V: 1, W: 1},
		{U: 2, V: 3, W: 2},
		{U: 1, V: 2, W: 10},
	}
	h, err := BuildHierarchy(edges, 4, 2, nil)
	require.NoError(t, err)

	condensed := Condense(h, 2)
	for _, c := range condensed {
		assert.GreaterOrEqual(t, len(c.Members), 2)
	}

	// Singleton leaves from the both-below-min splits must be excluded.
	for _, c := range condensed {
		assert.NotEqual(t, 1, len(c.Members))
	}

	// The root always qualifies here, and must remain first.
	require.NotEmpty(t, condensed)
	assert.Equal(t, h.Root().ID, condensed[0].ID)
}

func TestCondense_EmptyWhenNBelowMinClusterSize(t *testing.T) {
	h, err := BuildHierarchy(nil, 1, 5, nil)
	require.NoError(t, err)
	condensed := Condense(h, 5)
	assert.Empty(t, condensed)
}
