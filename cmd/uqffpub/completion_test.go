package main

import (
	"strings"
	"testing"

	"github.com/posener/complete"
	"github.com/stretchr/testify/assert"
)

func TestCompleteModels(t *testing.T) {
	tests := []struct {
		name     string
		partial  string
		expected int
	}{
		{"empty input", "", 10},
		{"namespace prefix", "meta-llama/", 4},
		{"partial name", "microsoft/Phi-3.5-m", 1},
		{"no match", "xyz", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Act
			results := completeModels(tt.partial)

			// Assert
			assert.Len(t, results, tt.expected)
			for _, r := range results {
				assert.True(t, strings.HasPrefix(r, tt.partial), "result %q does not start with %q", r, tt.partial)
			}
		})
	}
}

func TestModelPredictor(t *testing.T) {
	p := newModelPredictor()

	results := p.Predict(complete.Args{Last: "google/"})

	assert.Equal(t, []string{"google/gemma-2-27b-it"}, results)
}
