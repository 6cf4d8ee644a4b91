package either

import (
	"time"

	"github.com/google/uuid"
)

// SuccessOf is the one-sided success shape: an Either whose error side is
// statically impossible. It carries a single payload slot and no
// discriminant; IsSuccess and IsError return constants.
type SuccessOf[S any] struct {
	val       S
	id        uuid.UUID
	createdAt time.Time
}

// ErrorOf is the one-sided error shape, the mirror of SuccessOf.
type ErrorOf[E any] struct {
	val       E
	id        uuid.UUID
	createdAt time.Time
}

// Success constructs the one-sided success shape holding val. Together
// with Error it is the only sanctioned construction entry point.
func Success[S any](val S) SuccessOf[S] {
	mustOwnPayload[S]("success")
	return SuccessOf[S]{
		val:       val,
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
	}
}

// Error constructs the one-sided error shape holding val.
func Error[E any](val E) ErrorOf[E] {
	mustOwnPayload[E]("error")
	return ErrorOf[E]{
		val:       val,
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
	}
}

func (s SuccessOf[S]) IsSuccess() bool {
	return true
}

func (s SuccessOf[S]) IsError() bool {
	return false
}

// Success returns the held payload. The error is always nil; it exists to
// keep the accessor contract uniform across shapes.
func (s SuccessOf[S]) Success() (S, error) {
	return s.val, nil
}

func (s SuccessOf[S]) MustSuccess() S {
	return s.val
}

// TakeSuccess returns the payload by value. The shape has no emptied
// state, so taking does not invalidate the source.
func (s SuccessOf[S]) TakeSuccess() (S, error) {
	return s.val, nil
}

// Error always fails: the shape holds no error payload by construction.
func (s SuccessOf[S]) Error() (Unit, error) {
	return Unit{}, badAccess("SuccessOf.Error")
}

func (s SuccessOf[S]) MustError() Unit {
	panic(badAccess("SuccessOf.MustError"))
}

func (s SuccessOf[S]) Id() uuid.UUID {
	return s.id
}

func (s SuccessOf[S]) CreatedAt() time.Time {
	return s.createdAt
}

func (e ErrorOf[E]) IsSuccess() bool {
	return false
}

func (e ErrorOf[E]) IsError() bool {
	return true
}

// Error returns the held payload; the error is always nil.
func (e ErrorOf[E]) Error() (E, error) {
	return e.val, nil
}

func (e ErrorOf[E]) MustError() E {
	return e.val
}

// TakeError returns the payload by value without invalidating the source.
func (e ErrorOf[E]) TakeError() (E, error) {
	return e.val, nil
}

// Success always fails: the shape holds no success payload by construction.
func (e ErrorOf[E]) Success() (Unit, error) {
	return Unit{}, badAccess("ErrorOf.Success")
}

func (e ErrorOf[E]) MustSuccess() Unit {
	panic(badAccess("ErrorOf.MustSuccess"))
}

func (e ErrorOf[E]) Id() uuid.UUID {
	return e.id
}

func (e ErrorOf[E]) CreatedAt() time.Time {
	return e.createdAt
}
