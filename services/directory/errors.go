package directory

import "fmt"

// ValidationError indicates a malformed or missing field, rejected before any write.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// ConflictError indicates that a unique field is already registered.
type ConflictError struct {
	Field string
	Value string
}

func (e ConflictError) Error() string {
	return fmt.Sprintf("%s %q is already registered", e.Field, e.Value)
}

// NotFoundError indicates that no record matches the addressed identity.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

// SourceUnavailableError indicates that a batch source stream could not be
// opened or read. It aborts the whole batch; rows committed before the failure
// remain.
type SourceUnavailableError struct {
	Source string
	Err    error
}

func (e SourceUnavailableError) Error() string {
	return fmt.Sprintf("import source %s unavailable: %v", e.Source, e.Err)
}

func (e SourceUnavailableError) Unwrap() error { return e.Err }
