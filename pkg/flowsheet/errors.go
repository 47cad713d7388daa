package flowsheet

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	ErrUnknownEquipmentType = errors.New("unknown equipment type")
	ErrDanglingReference    = errors.New("dangling node or port reference")
	ErrInvalidDirection     = errors.New("invalid port direction")
	ErrPhaseMismatch        = errors.New("stream phase mismatch")
	ErrOutOfDomain          = errors.New("parameter value out of domain")
	ErrNodeNotFound         = errors.New("node not found")
	ErrUnknownParameter     = errors.New("unknown parameter")
	ErrNotAFeedNode         = errors.New("node is not a feed source")
)

// GraphError provides structured error information for graph operations.
type GraphError struct {
	Op     string // Operation that failed (e.g., "AddNode", "Connect")
	Entity string // Entity type ("node", "edge", "parameter")
	ID     string // Entity ID (if applicable)
	Port   string // Port ID (for connection operations)
	Cause  error  // Underlying error
}

// Error implements the error interface.
func (e *GraphError) Error() string {
	if e.ID != "" {
		if e.Port != "" {
			return fmt.Sprintf("%s %s %s (port %s): %v", e.Op, e.Entity, e.ID, e.Port, e.Cause)
		}
		return fmt.Sprintf("%s %s %s: %v", e.Op, e.Entity, e.ID, e.Cause)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Entity, e.Cause)
}

// Unwrap returns the underlying cause for error chain support.
func (e *GraphError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target error matches this error or its cause.
func (e *GraphError) Is(target error) bool {
	if target == nil {
		return false
	}
	return errors.Is(e.Cause, target)
}

func opError(op, entity, id, port string, cause error) *GraphError {
	return &GraphError{Op: op, Entity: entity, ID: id, Port: port, Cause: cause}
}
