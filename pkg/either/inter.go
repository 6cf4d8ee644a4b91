package either

import (
	"time"

	"github.com/google/uuid"
)

// Inspector is the variant-query contract shared by every shape. The
// one-sided shapes answer with constants; Either reads its discriminant,
// and both answers are false once the instance is emptied.
type Inspector interface {
	IsSuccess() bool
	IsError() bool
	// Id returns the identity assigned at construction
	Id() uuid.UUID
	// CreatedAt time of construction (UTC)
	CreatedAt() time.Time
}

// SuccessProvider extends Inspector for shapes able to yield a success payload
type SuccessProvider[S any] interface {
	Inspector
	// Success peeks at the success payload without transferring ownership
	Success() (S, error)
	// MustSuccess panics with *BadAccessError when success is not held
	MustSuccess() S
}

// ErrorProvider extends Inspector for shapes able to yield an error payload
type ErrorProvider[E any] interface {
	Inspector
	// Error peeks at the error payload without transferring ownership
	Error() (E, error)
	// MustError panics with *BadAccessError when error is not held
	MustError() E
}
