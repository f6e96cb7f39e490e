// Package engine translates a resolved build configuration into a TeX
// engine subprocess: argument construction, environment, spawning, and
// classification of the engine's diagnostic output.
package engine

import (
	"fmt"
	"os"
)

// Invocation is one runnable engine command: program, arguments,
// environment additions, and working directory. It is inert until handed
// to Engine.Start.
type Invocation struct {
	Program string
	Args    []string
	Env     []string // KEY=VALUE pairs appended to the parent environment
	Dir     string
}

// AppendArgs adds positional arguments in order.
func (i *Invocation) AppendArgs(args ...string) {
	i.Args = append(i.Args, args...)
}

// Setenv adds one environment variable to the child's environment.
func (i *Invocation) Setenv(key, value string) {
	i.Env = append(i.Env, key+"="+value)
}

// environ is the full child environment: parent plus additions.
func (i *Invocation) environ() []string {
	return append(os.Environ(), i.Env...)
}

// String renders the invocation for debug logging.
func (i *Invocation) String() string {
	return fmt.Sprintf("%s %v (dir=%s)", i.Program, i.Args, i.Dir)
}
