package vm

import "github.com/loxlang/lox/lang/value"

func (vm *VM) push(v value.Value) {
	vm.stack = append(vm.stack, v)
}

func (vm *VM) pop() value.Value {
	last := len(vm.stack) - 1
	v := vm.stack[last]
	vm.stack = vm.stack[:last]
	return v
}

// peek looks distance slots down from the top of the stack without
// popping: peek(0) is the top.
func (vm *VM) peek(distance int) value.Value {
	return vm.stack[len(vm.stack)-1-distance]
}

func (vm *VM) resetStack() {
	vm.stack = vm.stack[:0]
}
