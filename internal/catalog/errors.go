package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// The closed set of failure kinds the catalogue can produce. Callers
// classify wrapped errors with errors.Is against these sentinels.
var (
	ErrRead       = errors.New("read error")
	ErrParse      = errors.New("parse error")
	ErrWrite      = errors.New("write error")
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("not found")
)

// Wrap builds an error message with operation context while tagging it with
// the provided kind for later classification. The kind should be one of the
// exported sentinel errors above.
func Wrap(kind error, operation, message string, err error) error {
	detail := buildDetail(operation, message)
	if kind == nil {
		kind = ErrRead
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", kind, detail, err)
	}
	return fmt.Errorf("%w: %s", kind, detail)
}

func buildDetail(operation, message string) string {
	parts := make([]string, 0, 2)
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "catalogue failure"
	}
	return strings.Join(parts, ": ")
}

// Recoverable reports whether a load failure should fall back to the
// built-in default catalogue instead of aborting the invocation.
func Recoverable(err error) bool {
	return errors.Is(err, ErrRead) || errors.Is(err, ErrParse)
}
