// Package catalog owns the fruit catalogue: the Record model, the JSON
// file store, and the mutation rules the CLI applies on add and remove.
//
// # Storage
//
// A catalogue is a plain JSON array of records (default: fruits.json).
// Each record carries exactly four fields: name, length, width, height.
// The format has no envelope and no version field, so the file stays easy
// to inspect or edit by hand.
//
// # Invariants
//
// Record names are unique under case folding. The store does not enforce
// this when loading an existing file; only Add validates new input. Files
// are trusted as-is, which keeps load behaviour stable for hand-edited
// catalogues.
package catalog
