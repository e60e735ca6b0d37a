// Package guard detects values that bypassed their constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate on a zero-value guard
// when the caller supplies no error of its own.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in commands, queries and entities so that a zero
// value (built with a struct literal instead of NewXxx) fails validation.
//
// Example:
//
//	type GetJobQuery struct {
//	    id    job.ID
//	    guard guard.ConstructorGuard
//	}
//
//	func NewGetJobQuery(id job.ID) GetJobQuery {
//	    return GetJobQuery{id: id, guard: guard.NewConstructorGuard()}
//	}
//
//	func (q GetJobQuery) Validate() error {
//	    return q.guard.Validate(ErrGetJobQueryIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard marks the enclosing value as built by its constructor.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. A zero-value guard returns
// validationError, or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
