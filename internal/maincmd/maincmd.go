// Package maincmd wires the Lox compiler and VM to a command line: run a
// script file, or drop into a REPL when no file is given.
package maincmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/loxlang/lox/internal/config"
	"github.com/loxlang/lox/lang/compiler"
	"github.com/loxlang/lox/lang/strtable"
	"github.com/loxlang/lox/lang/vm"
	"github.com/mna/mainer"
)

const binName = "lox"

var shortUsage = fmt.Sprintf(`usage: %s [<script>]
Run '%[1]s --help' for details.
`, binName)

var longUsage = fmt.Sprintf(`usage: %s [<script>]
       %[1]s -h|--help
       %[1]s -v|--version

Compiler and virtual machine for the Lox programming language.

With no <script>, starts an interactive REPL. With a <script> path,
compiles and executes that file.

Valid flag options are:
       -h --help                 Show this help and exit.
       -v --version              Print version and exit.
`, binName)

// Exit codes: 0 on success, 64 for a command-line usage error, 65 when
// the compiler reports a syntax error, 70 when the VM reports a runtime
// error, and 74 when the script file cannot be read.
const (
	exitUsage   mainer.ExitCode = 64
	exitCompile mainer.ExitCode = 65
	exitRuntime mainer.ExitCode = 70
	exitIOError mainer.ExitCode = 74
)

// Cmd is the lox command's entry point, invoked by cmd/lox/main.go.
type Cmd struct {
	BuildVersion string
	BuildDate    string

	Help    bool `flag:"h,help"`
	Version bool `flag:"v,version"`

	args []string
}

func (c *Cmd) SetArgs(args []string) { c.args = args }
func (c *Cmd) SetFlags(map[string]bool) {}

func (c *Cmd) Validate() error {
	if c.Help || c.Version {
		return nil
	}
	if len(c.args) > 1 {
		return errors.New("usage: lox [<script>]")
	}
	return nil
}

func (c *Cmd) Main(args []string, stdio mainer.Stdio) mainer.ExitCode {
	p := mainer.Parser{EnvVars: false, EnvPrefix: "LOX_"}
	if err := p.Parse(args, c); err != nil {
		fmt.Fprintf(stdio.Stderr, "invalid arguments: %s\n%s", err, shortUsage)
		return exitUsage
	}

	switch {
	case c.Help:
		fmt.Fprint(stdio.Stdout, longUsage)
		return mainer.Success
	case c.Version:
		fmt.Fprintf(stdio.Stdout, "%s %s %s\n", binName, c.BuildVersion, c.BuildDate)
		return mainer.Success
	}

	if len(c.args) > 1 {
		fmt.Fprintf(stdio.Stderr, "%s", shortUsage)
		return exitUsage
	}

	rt, err := config.Load()
	if err != nil {
		fmt.Fprintf(stdio.Stderr, "lox: invalid configuration: %s\n", err)
		return exitUsage
	}

	ctx := mainer.CancelOnSignal(context.Background(), os.Interrupt)
	machine := vm.New(strtable.New(), stdio.Stdout, rt.StackCap, rt.Trace)

	if len(c.args) == 1 {
		return runFile(ctx, machine, stdio, c.args[0])
	}
	return repl(ctx, machine, stdio)
}

func runFile(ctx context.Context, machine *vm.VM, stdio mainer.Stdio, path string) mainer.ExitCode {
	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(stdio.Stderr, "lox: %s\n", err)
		return exitIOError
	}

	err = machine.Interpret(ctx, string(source))
	return exitCodeFor(stdio, err)
}

// exitCodeFor maps an Interpret error to a process exit code, printing
// it to stderr along the way. nil maps to success.
func exitCodeFor(stdio mainer.Stdio, err error) mainer.ExitCode {
	if err == nil {
		return mainer.Success
	}

	var cerr *compiler.CompileError
	var rerr *vm.RuntimeError
	switch {
	case errors.As(err, &cerr):
		fmt.Fprintln(stdio.Stderr, cerr.Error())
		return exitCompile
	case errors.As(err, &rerr):
		fmt.Fprintln(stdio.Stderr, rerr.Error())
		return exitRuntime
	default:
		fmt.Fprintln(stdio.Stderr, err.Error())
		return exitRuntime
	}
}
