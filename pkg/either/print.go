package either

import (
	"fmt"
	"io"
)

const emptiedText = "<emptied>"

// String renders the active payload's textual form: success's if success,
// error's if error. An emptied instance renders as a marker because a
// Stringer may not fail; Fprint is the checked projection.
func (e Either[S, E]) String() string {
	switch e.store.state {
	case stateSuccess:
		return fmt.Sprint(e.store.succ)
	case stateError:
		return fmt.Sprint(e.store.err)
	default:
		return emptiedText
	}
}

func (s SuccessOf[S]) String() string {
	return fmt.Sprint(s.val)
}

func (e ErrorOf[E]) String() string {
	return fmt.Sprint(e.val)
}

// Fprint writes the active payload's textual form to w. Projecting an
// emptied instance fails with bad access.
func Fprint[S, E any](w io.Writer, e Either[S, E]) (int, error) {
	switch e.store.state {
	case stateSuccess:
		return fmt.Fprint(w, e.store.succ)
	case stateError:
		return fmt.Fprint(w, e.store.err)
	default:
		return 0, badAccess("Fprint")
	}
}
