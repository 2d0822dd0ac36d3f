// Package vm implements the stack-based bytecode interpreter: a
// fetch-decode-execute loop over a compiler.Compile-produced
// bytecode.Chunk, an operand stack, and a globals table keyed by interned
// variable names.
package vm

import (
	"context"
	"fmt"
	"io"

	"github.com/dolthub/swiss"
	"github.com/loxlang/lox/lang/bytecode"
	"github.com/loxlang/lox/lang/compiler"
	"github.com/loxlang/lox/lang/strtable"
	"github.com/loxlang/lox/lang/value"
)

// VM is one bytecode interpreter. It is not safe for concurrent use, but
// a single VM can Interpret many times in sequence (as the REPL does),
// preserving globals across calls.
type VM struct {
	chunk *bytecode.Chunk
	ip    int
	stack []value.Value

	globals *swiss.Map[*strtable.Entry, value.Value]
	strings *strtable.Table

	stdout io.Writer
	trace  bool
}

// New returns a VM that interns strings into strings, writes OpPrint
// output to stdout, pre-allocates its operand stack to stackCap slots,
// and (if trace is true) logs each instruction and the stack before
// executing it.
func New(strings *strtable.Table, stdout io.Writer, stackCap int, trace bool) *VM {
	return &VM{
		stack:   make([]value.Value, 0, stackCap),
		globals: swiss.NewMap[*strtable.Entry, value.Value](64),
		strings: strings,
		stdout:  stdout,
		trace:   trace,
	}
}

// Interpret compiles source and, if compilation succeeds, executes it.
// A *compiler.CompileError is returned unwrapped so callers can map it to
// exit code 65 (compile error); a *RuntimeError likewise maps to exit
// code 70 (runtime error).
func (vm *VM) Interpret(ctx context.Context, source string) error {
	chunk, cerr := compiler.Compile(source, vm.strings)
	if cerr != nil {
		return cerr
	}

	vm.chunk = chunk
	vm.ip = 0
	vm.resetStack()
	return vm.run(ctx)
}

func (vm *VM) readByte() byte {
	b := vm.chunk.Code[vm.ip]
	vm.ip++
	return b
}

func (vm *VM) readShort() int {
	hi := vm.chunk.Code[vm.ip]
	lo := vm.chunk.Code[vm.ip+1]
	vm.ip += 2
	return int(hi)<<8 | int(lo)
}

func (vm *VM) readConstant() value.Value {
	return vm.chunk.Constants[vm.readByte()]
}

//nolint:gocyclo
func (vm *VM) run(ctx context.Context) error {
loop:
	for {
		if err := ctx.Err(); err != nil {
			return vm.runtimeError("%s", err)
		}

		if vm.trace {
			vm.traceStep()
		}

		op := bytecode.Op(vm.readByte())
		switch op {
		case bytecode.OpConstant:
			vm.push(vm.readConstant())

		case bytecode.OpNil:
			vm.push(value.Nil)
		case bytecode.OpTrue:
			vm.push(value.Bool(true))
		case bytecode.OpFalse:
			vm.push(value.Bool(false))
		case bytecode.OpPop:
			vm.pop()

		case bytecode.OpGetLocal:
			slot := vm.readByte()
			vm.push(vm.stack[slot])
		case bytecode.OpSetLocal:
			slot := vm.readByte()
			vm.stack[slot] = vm.peek(0)

		case bytecode.OpGetGlobal:
			name := vm.readConstant().AsString()
			v, ok := vm.globals.Get(name)
			if !ok {
				return vm.runtimeError("Undefined variable '%s'.", name.S)
			}
			vm.push(v)
		case bytecode.OpDefineGlobal:
			name := vm.readConstant().AsString()
			vm.globals.Put(name, vm.pop())
		case bytecode.OpSetGlobal:
			name := vm.readConstant().AsString()
			if _, ok := vm.globals.Get(name); !ok {
				return vm.runtimeError("Undefined variable '%s'.", name.S)
			}
			vm.globals.Put(name, vm.peek(0))

		case bytecode.OpEqual:
			b, a := vm.pop(), vm.pop()
			vm.push(value.Bool(a.Equals(b)))
		case bytecode.OpGreater:
			if err := vm.binaryNumberOp(func(a, b float64) value.Value { return value.Bool(a > b) }); err != nil {
				return err
			}
		case bytecode.OpLess:
			if err := vm.binaryNumberOp(func(a, b float64) value.Value { return value.Bool(a < b) }); err != nil {
				return err
			}

		case bytecode.OpAdd:
			if err := vm.add(); err != nil {
				return err
			}
		case bytecode.OpSubtract:
			if err := vm.binaryNumberOp(func(a, b float64) value.Value { return value.Number(a - b) }); err != nil {
				return err
			}
		case bytecode.OpMultiply:
			if err := vm.binaryNumberOp(func(a, b float64) value.Value { return value.Number(a * b) }); err != nil {
				return err
			}
		case bytecode.OpDivide:
			if err := vm.binaryNumberOp(func(a, b float64) value.Value { return value.Number(a / b) }); err != nil {
				return err
			}

		case bytecode.OpNot:
			vm.push(value.Bool(!vm.pop().Truthy()))
		case bytecode.OpNegate:
			if !vm.peek(0).IsNumber() {
				return vm.runtimeError("Operand must be a number.")
			}
			vm.push(value.Number(-vm.pop().AsNumber()))

		case bytecode.OpPrint:
			fmt.Fprintln(vm.stdout, vm.pop().String())

		case bytecode.OpJump:
			offset := vm.readShort()
			vm.ip += offset
		case bytecode.OpJumpIfFalse:
			offset := vm.readShort()
			if !vm.peek(0).Truthy() {
				vm.ip += offset
			}
		case bytecode.OpLoop:
			offset := vm.readShort()
			vm.ip -= offset

		case bytecode.OpReturn:
			break loop

		default:
			return vm.runtimeError("Unknown opcode %s.", op)
		}
	}
	return nil
}

// add implements Lox's overloaded `+`: numeric addition if both operands
// are numbers, string concatenation (interning the result) if both are
// strings, and a runtime error for any other combination.
func (vm *VM) add() error {
	b, a := vm.peek(0), vm.peek(1)
	switch {
	case a.IsNumber() && b.IsNumber():
		vm.pop()
		vm.pop()
		vm.push(value.Number(a.AsNumber() + b.AsNumber()))
	case a.IsString() && b.IsString():
		vm.pop()
		vm.pop()
		concatenated := a.AsString().S + b.AsString().S
		vm.push(value.String(vm.strings.Intern(concatenated)))
	default:
		return vm.runtimeError("Operands must be two numbers or two strings.")
	}
	return nil
}

func (vm *VM) binaryNumberOp(op func(a, b float64) value.Value) error {
	if !vm.peek(0).IsNumber() || !vm.peek(1).IsNumber() {
		return vm.runtimeError("Operands must be numbers.")
	}
	b := vm.pop()
	a := vm.pop()
	vm.push(op(a.AsNumber(), b.AsNumber()))
	return nil
}

func (vm *VM) traceStep() {
	fmt.Fprint(vm.stdout, "          ")
	for _, v := range vm.stack {
		fmt.Fprintf(vm.stdout, "[ %s ]", v)
	}
	fmt.Fprintln(vm.stdout)
	bytecode.DisassembleInstruction(vm.stdout, vm.chunk, vm.ip)
}
