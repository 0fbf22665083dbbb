package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSizes(t *testing.T) {
	sizes, err := parseSizes("100, 200,400")
	require.NoError(t, err)
	assert.Equal(t, []int{100, 200, 400}, sizes)

	_, err = parseSizes("100")
	assert.Error(t, err, "one size cannot show growth")

	_, err = parseSizes("100,abc")
	assert.Error(t, err)

	_, err = parseSizes("100,-5")
	assert.Error(t, err)
}

func TestBenchRunnersCoverKnownAlgorithms(t *testing.T) {
	runners := benchRunners()
	for _, name := range []string{"linear-search", "binary-search", "bubble-sort", "merge-sort", "fib-iterative"} {
		assert.Contains(t, runners, name)
	}
}
