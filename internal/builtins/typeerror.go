package builtins

// TypeMismatchError is returned by a host module function when a Value of
// the wrong kind was supplied (e.g. stringifying a Function). The
// interpreter recognizes this type and surfaces it as a catchable
// TypeError rather than the generic HostError used for other host-call
// failures.
type TypeMismatchError struct {
	Message string
}

func (e *TypeMismatchError) Error() string { return e.Message }
