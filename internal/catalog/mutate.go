package catalog

import (
	"fmt"
	"math"
	"strings"
)

// Add validates a new record against the catalogue rules and returns the
// sequence with the record appended. The stored name is the trimmed input
// with its original casing. Violations wrap ErrValidation and leave the
// input slice untouched.
func Add(records []Record, name string, length, width, height float64) ([]Record, Record, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return records, Record{}, Wrap(ErrValidation, "add", "name must not be empty", nil)
	}
	if !positive(length) || !positive(width) || !positive(height) {
		return records, Record{}, Wrap(ErrValidation, "add",
			fmt.Sprintf("dimensions must be positive numbers (got %g x %g x %g)", length, width, height), nil)
	}
	if _, exists := Find(records, trimmed); exists {
		return records, Record{}, Wrap(ErrValidation, "add",
			fmt.Sprintf("fruit %q already exists", trimmed), nil)
	}

	record := Record{Name: trimmed, Length: length, Width: width, Height: height}
	return append(records, record), record, nil
}

// positive rejects NaN and infinities as well as zero and negative values;
// none of them can be stored as a JSON number.
func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1) && !math.IsNaN(v)
}

// Remove deletes the first record whose name matches under case folding and
// returns the reduced sequence along with the removed record. A missing
// name wraps ErrNotFound and leaves the input slice untouched.
func Remove(records []Record, name string) ([]Record, Record, error) {
	idx := IndexOf(records, name)
	if idx < 0 {
		return records, Record{}, Wrap(ErrNotFound, "remove",
			fmt.Sprintf("fruit %q not found", strings.TrimSpace(name)), nil)
	}

	removed := records[idx]
	reduced := make([]Record, 0, len(records)-1)
	reduced = append(reduced, records[:idx]...)
	reduced = append(reduced, records[idx+1:]...)
	return reduced, removed, nil
}
