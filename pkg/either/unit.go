package either

// Unit is the zero-information payload for the absent side of a one-sided
// shape. SuccessOf and ErrorOf use it as the statically impossible
// opposite payload type.
type Unit struct{}
