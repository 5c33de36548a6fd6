package apperrors

import "fmt"

// ValidationError rejects a request before it reaches the store: missing
// fields, non-positive capacity, start >= end, unknown references.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func Validation(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// ConflictError reports an overlap found by the conflict checker. At least
// one of Teacher/Room is true; the message names the colliding dimension.
type ConflictError struct {
	Teacher bool
	Room    bool
}

func (e *ConflictError) Error() string {
	switch {
	case e.Teacher && e.Room:
		return "schedule conflict: teacher and room are already booked in this slot"
	case e.Teacher:
		return "schedule conflict: teacher is already booked in this slot"
	case e.Room:
		return "schedule conflict: room is already booked in this slot"
	default:
		return "schedule conflict"
	}
}

// UniquenessError is the persistence-layer second line of defense: a UNIQUE
// constraint fired on a row the conflict checker admitted. Callers treat it
// like a ConflictError.
type UniquenessError struct {
	Constraint string
}

func (e *UniquenessError) Error() string {
	return fmt.Sprintf("duplicate slot: constraint %s violated", e.Constraint)
}

// NotFoundError reports an operation against a nonexistent row. Non-fatal.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return e.Entity + " not found"
}

func NotFound(entity string) *NotFoundError {
	return &NotFoundError{Entity: entity}
}

// ReferencedError rejects deleting a catalog row that assignments still
// point at (RESTRICT delete policy).
type ReferencedError struct {
	Entity string
}

func (e *ReferencedError) Error() string {
	return e.Entity + " is referenced by existing assignments"
}

// StorageError wraps an underlying store failure. Fatal for the current
// operation only; the conflict checker treats it as a conflict (fail closed).
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage failure during %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

func Storage(op string, err error) *StorageError {
	return &StorageError{Op: op, Err: err}
}
