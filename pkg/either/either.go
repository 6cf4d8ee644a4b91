package either

import (
	"time"

	"github.com/google/uuid"
)

// Either is the two-sided shape: exactly one of a success payload S or an
// error payload E while not emptied. It is a plain value with no internal
// synchronization; copying duplicates the active payload, and only the
// consuming operations (TakeSuccess, TakeError, Move) enter the emptied
// state.
type Either[S, E any] struct {
	store     storage[S, E]
	id        uuid.UUID
	createdAt time.Time
}

// FromSuccess widens a one-sided success into the two-sided shape. The
// opposite payload type E is supplied at the call site, so the conversion
// needs no runtime check and always succeeds. Identity metadata carries
// over from the source. The reverse, narrowing conversion is never offered.
func FromSuccess[E, S any](s SuccessOf[S]) Either[S, E] {
	mustBeWellFormed[S, E]()
	return Either[S, E]{
		store:     successStorage[S, E](s.val),
		id:        s.id,
		createdAt: s.createdAt,
	}
}

// FromError widens a one-sided error into the two-sided shape.
func FromError[S, E any](e ErrorOf[E]) Either[S, E] {
	mustBeWellFormed[S, E]()
	return Either[S, E]{
		store:     errorStorage[S, E](e.val),
		id:        e.id,
		createdAt: e.createdAt,
	}
}

func (e Either[S, E]) IsSuccess() bool {
	return e.store.state == stateSuccess
}

func (e Either[S, E]) IsError() bool {
	return e.store.state == stateError
}

// IsEmptied reports whether the payload has been moved out. An emptied
// instance answers false to both IsSuccess and IsError and fails every
// payload accessor.
func (e Either[S, E]) IsEmptied() bool {
	return e.store.state == stateEmptied
}

// Success returns the success payload without transferring ownership.
func (e Either[S, E]) Success() (S, error) {
	if e.store.state != stateSuccess {
		var zero S
		return zero, badAccess("Either.Success")
	}
	return e.store.succ, nil
}

func (e Either[S, E]) MustSuccess() S {
	if e.store.state != stateSuccess {
		panic(badAccess("Either.MustSuccess"))
	}
	return e.store.succ
}

// Error returns the error payload without transferring ownership.
func (e Either[S, E]) Error() (E, error) {
	if e.store.state != stateError {
		var zero E
		return zero, badAccess("Either.Error")
	}
	return e.store.err, nil
}

func (e Either[S, E]) MustError() E {
	if e.store.state != stateError {
		panic(badAccess("Either.MustError"))
	}
	return e.store.err
}

// TakeSuccess transfers the success payload out and marks the container
// emptied; every later accessor on it fails with bad access. A
// wrong-variant take fails without touching the container.
func (e *Either[S, E]) TakeSuccess() (S, error) {
	if e.store.state != stateSuccess {
		var zero S
		return zero, badAccess("Either.TakeSuccess")
	}
	val := e.store.succ
	e.store.empty()
	return val, nil
}

// TakeError transfers the error payload out and marks the container emptied.
func (e *Either[S, E]) TakeError() (E, error) {
	if e.store.state != stateError {
		var zero E
		return zero, badAccess("Either.TakeError")
	}
	val := e.store.err
	e.store.empty()
	return val, nil
}

// Move transfers the whole instance: the returned value holds whatever the
// source held, and the source becomes emptied. Moving an emptied instance
// yields another emptied instance.
func (e *Either[S, E]) Move() Either[S, E] {
	moved := *e
	e.store.empty()
	return moved
}

// AssignSuccess replaces the success payload from a one-sided success. It
// requires the container to currently hold success; assigning into an
// error-holding or emptied container is a bad assign, never a re-tag.
// Identity metadata is adopted from the source on success.
func (e *Either[S, E]) AssignSuccess(s SuccessOf[S]) error {
	if e.store.state != stateSuccess {
		return badAssign("Either.AssignSuccess")
	}
	e.store.succ = s.val
	e.id = s.id
	e.createdAt = s.createdAt
	return nil
}

// AssignError replaces the error payload from a one-sided error, under the
// same current-state rule as AssignSuccess.
func (e *Either[S, E]) AssignError(v ErrorOf[E]) error {
	if e.store.state != stateError {
		return badAssign("Either.AssignError")
	}
	e.store.err = v.val
	e.id = v.id
	e.createdAt = v.createdAt
	return nil
}

func (e Either[S, E]) Id() uuid.UUID {
	return e.id
}

func (e Either[S, E]) CreatedAt() time.Time {
	return e.createdAt
}
