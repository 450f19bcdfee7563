package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/tools/go/analysis"
)

func TestAnalyzers(t *testing.T) {
	list := analyzers()
	assert.NoError(t, analysis.Validate(list))

	names := make(map[string]bool, len(list))
	for _, a := range list {
		names[a.Name] = true
	}
	for _, want := range []string{"shadow", "bodyclose", "noexit", "rawhttp", "SA4006"} {
		assert.True(t, names[want], want)
	}
	assert.False(t, names["ST1000"])
}
