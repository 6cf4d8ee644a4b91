package either

import "reflect"

var unitType = reflect.TypeFor[Unit]()

// mustOwnPayload rejects payload types the container cannot own outright.
// A pointer payload would make the container alias a value instead of
// owning it.
func mustOwnPayload[T any](side string) {
	t := reflect.TypeFor[T]()
	if isPointerKind(t) {
		panic(&IllFormedError{Reason: side + " payload " + t.String() + " is a reference type"})
	}
}

// mustBeWellFormed rejects instantiations the type system cannot: both
// sides Unit, or a pointer-kind payload on either side. It runs once per
// widening and panics with *IllFormedError, the way a declaration-site
// constraint would reject the pair.
func mustBeWellFormed[S, E any]() {
	if reflect.TypeFor[S]() == unitType && reflect.TypeFor[E]() == unitType {
		panic(&IllFormedError{Reason: "Either[Unit, Unit]"})
	}
	mustOwnPayload[S]("success")
	mustOwnPayload[E]("error")
}

func isPointerKind(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Ptr, reflect.UnsafePointer:
		return true
	default:
		return false
	}
}
