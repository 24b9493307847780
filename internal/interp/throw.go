package interp

import "github.com/kaelscript/kael/internal/runtime"

// ThrownValue wraps a thrown runtime.Value as a Go error so it can unwind
// through ordinary Go call returns until a try/catch handler (or the
// program's top level) intercepts it. It is distinct from runtime.Completion:
// a Completion only ever carries control-flow signals produced within a
// single function's statement list, while a throw must cross function-call
// boundaries that Completion never reaches on its own.
type ThrownValue struct {
	Value runtime.Value
}

func (t *ThrownValue) Error() string {
	return "uncaught exception: " + t.Value.String()
}

func throwValue(v runtime.Value) error {
	return &ThrownValue{Value: v}
}
