package main

import (
	"strings"

	"github.com/posener/complete"

	"github.com/d2verb/uqffpub/internal/catalog"
)

// newModelPredictor returns a predictor for --model_id.
// Suggests the source ids of the built-in catalog.
func newModelPredictor() complete.Predictor {
	return complete.PredictFunc(func(args complete.Args) []string {
		return completeModels(args.Last)
	})
}

// completeModels returns catalog model ids starting with partial.
func completeModels(partial string) []string {
	models := catalog.Models(catalog.Default())
	results := make([]string, 0, len(models))
	for _, m := range models {
		if strings.HasPrefix(m, partial) {
			results = append(results, m)
		}
	}
	return results
}
