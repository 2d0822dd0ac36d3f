// Package config holds the ambient, non-Lox-semantic settings that
// control how the CLI driver runs a script: whether to trace bytecode
// execution and how large to pre-allocate the VM's operand stack. These
// are process configuration, not part of any Lox program's observable
// behavior, so reading them from the environment does not conflict with
// the language itself having no environment-variable access.
package config

import "github.com/caarlos0/env/v6"

// Runtime is parsed from the environment once at process startup.
type Runtime struct {
	// Trace enables per-instruction bytecode tracing to stdout, printing
	// the operand stack and the next instruction before it executes.
	Trace bool `env:"LOX_TRACE" envDefault:"false"`

	// StackCap is the VM operand stack's initial capacity, in slots.
	StackCap int `env:"LOX_STACK_CAP" envDefault:"256"`
}

// Load reads Runtime from the process environment.
func Load() (Runtime, error) {
	var rt Runtime
	if err := env.Parse(&rt); err != nil {
		return Runtime{}, err
	}
	return rt, nil
}
