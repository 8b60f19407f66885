// Package textutil provides the case folding used for fruit name
// comparison.
//
// Every case-insensitive lookup, removal, and duplicate check in the
// catalogue goes through this one definition so matching behaves the same
// everywhere. Folding is Unicode case folding via golang.org/x/text, which
// is locale-independent and deterministic across environments.
package textutil
