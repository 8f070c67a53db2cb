package memory

import "fmt"

// ValidationError reports malformed input: an empty required field, a score
// out of range, or an unknown enum value. Surfaced to callers as a client
// error and never retried.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NotFoundError reports that a referenced entry or relationship does not
// exist. Retrieval of an empty result set is not an error; NotFoundError is
// reserved for operations that name a specific record.
type NotFoundError struct {
	Kind string // "entry" or "relationship"
	ID   string
}

func (e NotFoundError) Error() string {
	if e.ID == "" {
		return e.Kind + " not found"
	}
	return fmt.Sprintf("%s not found: %s", e.Kind, e.ID)
}

// StorageError wraps a failure in the underlying store. Surfaced as a server
// error; request-path callers propagate it upward without retrying, the
// retention service logs it and retries on its next cycle.
type StorageError struct {
	Op  string
	Err error
}

func (e StorageError) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e StorageError) Unwrap() error {
	return e.Err
}
