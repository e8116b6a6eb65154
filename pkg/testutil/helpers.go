// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/krfincalc/krfincalc/pkg/output"
)

// FindResult finds a result by name in the results slice.
// Returns a pointer to the result if found, nil otherwise.
func FindResult(results []output.Result, name string) *output.Result {
	for i := range results {
		if results[i].Name == name {
			return &results[i]
		}
	}
	return nil
}

// FindField finds a field by label in a result.
// Returns a pointer to the field if found, nil otherwise.
func FindField(result *output.Result, label string) *output.Field {
	if result == nil {
		return nil
	}
	for i := range result.Fields {
		if result.Fields[i].Label == label {
			return &result.Fields[i]
		}
	}
	return nil
}
