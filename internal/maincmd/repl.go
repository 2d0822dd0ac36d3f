package maincmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/chzyer/readline"
	"github.com/loxlang/lox/lang/vm"
	"github.com/mna/mainer"
)

// maxReplLine caps how much of one REPL input line is fed to the
// compiler.
const maxReplLine = 1024

// repl reads one line at a time from stdio via readline, feeding each to
// machine and reporting (but not exiting on) compile or runtime errors,
// so one bad line does not end the session.
func repl(ctx context.Context, machine *vm.VM, stdio mainer.Stdio) mainer.ExitCode {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      "> ",
		Stdin:       io.NopCloser(stdio.Stdin),
		Stdout:      stdio.Stdout,
		Stderr:      stdio.Stderr,
		HistoryFile: "",
	})
	if err != nil {
		fmt.Fprintf(stdio.Stderr, "lox: %s\n", err)
		return exitIOError
	}
	defer rl.Close()

	for {
		if ctx.Err() != nil {
			return mainer.Success
		}

		line, err := rl.Readline()
		switch {
		case errors.Is(err, io.EOF):
			return mainer.Success
		case errors.Is(err, readline.ErrInterrupt):
			continue
		case err != nil:
			fmt.Fprintf(stdio.Stderr, "lox: %s\n", err)
			return mainer.Success
		}

		if len(line) > maxReplLine {
			line = line[:maxReplLine]
		}
		if line == "" {
			continue
		}

		// A compile or runtime error reports to stderr and continues to
		// the next line, rather than ending the session.
		if ierr := machine.Interpret(ctx, line); ierr != nil {
			exitCodeFor(stdio, ierr)
		}
	}
}
