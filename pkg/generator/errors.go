package generator

import (
	"errors"
	"fmt"
)

// ErrDepthExceeded is returned when a content tree nests deeper than the
// configured maximum. The bound guards the recursive walk against
// pathologically deep trees.
var ErrDepthExceeded = errors.New("generator: content tree exceeds maximum depth")

// UnknownComponentTypeError is returned when a content node's type has no
// schema entry. The miss is fatal for the whole generation: there is no
// per-node recovery or default substitution.
type UnknownComponentTypeError struct {
	Type string
}

func (e *UnknownComponentTypeError) Error() string {
	return fmt.Sprintf("generator: component type %q not registered", e.Type)
}
