package hdbscan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeCoreDistances_MinSamples1(t *testing.T) {
	// Points: (0,0), (3,0), (0,4) -- distances: d01=3, d02=4, d12=5.
	distMatrix := []float64{
		0, 3, 4,
		3, 0, 5,
		4, 5, 0,
	}
	core := computeCoreDistances(distMatrix, 3, 1)
	assert.Equal(t, []float64{3, 3, 4}, core)
}

func TestComputeCoreDistances_MinSamples2(t *testing.T) {
	distMatrix := []float64{
		0, 3, 4,
		3, 0, 5,
		4, 5, 0,
	}
	core := computeCoreDistances(distMatrix, 3, 2)
	assert.Equal(t, []float64{4, 5, 5}, core)
}

func TestComputeCoreDistances_MinSamplesClampsToNMinus2(t *testing.T) {
	distMatrix := []float64{
		0, 3, 4,
		3, 0, 5,
		4, 5, 0,
	}
	// minSamples=5 > n=3: k clamps to n-2=1, same as minSamples=2.
	core := computeCoreDistances(distMatrix, 3, 5)
	assert.Equal(t, []float64{4, 5, 5}, core)
}

func TestComputeCoreDistances_MinSamplesBelowOneClampsToZero(t *testing.T) {
	distMatrix := []float64{
		0, 1,
		1, 0,
	}
	core := computeCoreDistances(distMatrix, 2, 0)
	assert.Equal(t, []float64{1, 1}, core)
}
