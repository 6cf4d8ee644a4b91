// Package either provides a disjoint-union value type holding exactly one
// of two outcomes: a success payload S or an error payload E.
//
// Construction goes through the factory functions only:
// - Success/Error: build the one-sided shapes whose variant is a compile-time fact
// - FromSuccess/FromError: widen a one-sided shape into the two-sided Either[S, E]
//
// Key operations on Either[S, E]:
// - IsSuccess/IsError/IsEmptied: query the active variant
// - Success/Error, MustSuccess/MustError: peek at the active payload
// - TakeSuccess/TakeError/Move: consume the payload, leaving the source emptied
// - AssignSuccess/AssignError: replace the payload when the state already matches
// - Equal/Hash/String/Fprint: comparison, hashing, and textual projection
//
// A wrong-variant access never returns a sentinel value; it fails
// immediately with a typed BadAccessError or BadAssignError.
package either
