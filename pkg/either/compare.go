package either

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Equal reports payload equality under the variant discipline: both
// success with equal success payloads, or both error with equal error
// payloads. A success instance never equals an error instance regardless
// of payload content, and an emptied instance equals nothing, an emptied
// peer included. Identity metadata does not participate.
func Equal[S, E comparable](lhs, rhs Either[S, E]) bool {
	switch {
	case lhs.IsSuccess() && rhs.IsSuccess():
		return lhs.store.succ == rhs.store.succ
	case lhs.IsError() && rhs.IsError():
		return lhs.store.err == rhs.store.err
	default:
		return false
	}
}

// EqualSuccessOf compares two one-sided successes by payload.
func EqualSuccessOf[S comparable](lhs, rhs SuccessOf[S]) bool {
	return lhs.val == rhs.val
}

// EqualErrorOf compares two one-sided errors by payload.
func EqualErrorOf[E comparable](lhs, rhs ErrorOf[E]) bool {
	return lhs.val == rhs.val
}

// Hash folds the active variant and its payload projection into a 64-bit
// key for collection use. Distinct variants holding structurally equal
// payloads hash differently; all emptied instances share one key.
func Hash[S, E any](e Either[S, E]) uint64 {
	switch e.store.state {
	case stateSuccess:
		return hashSuccess(e.store.succ)
	case stateError:
		return hashError(e.store.err)
	default:
		return xxhash.Sum64String("emptied")
	}
}

// HashSuccessOf hashes a one-sided success; the key matches Hash of the
// widened instance.
func HashSuccessOf[S any](s SuccessOf[S]) uint64 {
	return hashSuccess(s.val)
}

// HashErrorOf hashes a one-sided error; the key matches Hash of the
// widened instance.
func HashErrorOf[E any](e ErrorOf[E]) uint64 {
	return hashError(e.val)
}

func hashSuccess(val any) uint64 {
	return xxhash.Sum64String("success:" + fmt.Sprint(val))
}

func hashError(val any) uint64 {
	return xxhash.Sum64String("error:" + fmt.Sprint(val))
}
