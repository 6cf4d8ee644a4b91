package either

// storageState is the discriminant of the two-sided shape. The zero value
// is emptied, so a zero Either answers false to both IsSuccess and IsError
// and fails every payload accessor.
type storageState uint8

const (
	stateEmptied storageState = iota
	stateError
	stateSuccess
)

// storage holds both payload slots beside the discriminant. Exactly one
// slot is meaningful while the state is not emptied; the other stays at
// its zero value.
type storage[S, E any] struct {
	state storageState
	succ  S
	err   E
}

func successStorage[S, E any](val S) storage[S, E] {
	return storage[S, E]{state: stateSuccess, succ: val}
}

func errorStorage[S, E any](val E) storage[S, E] {
	return storage[S, E]{state: stateError, err: val}
}

// empty zeroes both slots and re-tags the storage as emptied.
func (s *storage[S, E]) empty() {
	var zeroS S
	var zeroE E
	s.succ = zeroS
	s.err = zeroE
	s.state = stateEmptied
}
