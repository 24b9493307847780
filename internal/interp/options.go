package interp

import "io"

type options struct {
	stdout         io.Writer
	stderr         io.Writer
	trace          bool
	allowedModules []string
}

func defaultOptions() options {
	return options{stdout: io.Discard, stderr: io.Discard}
}

// Option configures an Interpreter at construction time.
type Option func(*options)

// WithStdout directs console.log/console.info output to w instead of
// discarding it.
func WithStdout(w io.Writer) Option {
	return func(o *options) { o.stdout = w }
}

// WithStderr directs console.error/console.warn output to w instead of
// discarding it. When omitted, console.error/console.warn output is
// discarded even if WithStdout is set — the two streams are independent.
func WithStderr(w io.Writer) Option {
	return func(o *options) { o.stderr = w }
}

// WithTrace enables call-stack trace collection, used to populate the
// stack trace on an uncaught error.
func WithTrace(trace bool) Option {
	return func(o *options) { o.trace = trace }
}

// WithAllowedModules restricts require() to the given module names. An
// empty or omitted allowlist permits every built-in module.
func WithAllowedModules(modules []string) Option {
	return func(o *options) { o.allowedModules = modules }
}
