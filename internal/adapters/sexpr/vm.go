package sexpr

import (
	"context"
	"fmt"
	"os"

	"go.trai.ch/zerr"
)

type vm struct {
	stack   []Value
	globals map[string]Value
}

func newVM() *vm {
	return &vm{
		globals: make(map[string]Value),
	}
}

// maxSteps bounds a single run. The language has no loop forms, so honest
// chunks stay far below it; a corrupted jump target cannot spin forever.
const maxSteps = 1 << 20

// run assumes the chunk has passed validate, so constant and jump indexes are
// trusted; stack depth and step count are still checked because the encoded
// stack discipline itself is not validated.
func (m *vm) run(ctx context.Context, c *Chunk) (Value, error) {
	if err := ctx.Err(); err != nil {
		return NilValue(), err
	}

	steps := 0
	pc := 0
	for pc < len(c.Code) {
		if steps++; steps > maxSteps {
			return NilValue(), zerr.New("step budget exceeded")
		}
		instr := c.Code[pc]
		pc++

		switch instr.Op {
		case OpConst:
			m.push(c.Consts[instr.A])
		case OpGlobal:
			name := c.Consts[instr.A].Str
			v, ok := m.globals[name]
			if !ok {
				return NilValue(), zerr.With(zerr.New("undefined global"), "name", name)
			}
			m.push(v)
		case OpSetGlobal:
			v, err := m.peek()
			if err != nil {
				return NilValue(), err
			}
			m.globals[c.Consts[instr.A].Str] = v
		case OpCall:
			name := c.Consts[instr.A].Str
			fn, ok := builtins[name]
			if !ok {
				return NilValue(), zerr.With(zerr.New("unknown function"), "name", name)
			}
			args, err := m.popN(instr.B)
			if err != nil {
				return NilValue(), err
			}
			out, err := fn(args)
			if err != nil {
				return NilValue(), zerr.With(err, "function", name)
			}
			m.push(out)
		case OpJump:
			pc = instr.A
		case OpJumpIfFalse:
			v, err := m.pop()
			if err != nil {
				return NilValue(), err
			}
			if !v.Truthy() {
				pc = instr.A
			}
		case OpPop:
			if _, err := m.pop(); err != nil {
				return NilValue(), err
			}
		}
	}

	return m.pop()
}

func (m *vm) push(v Value) {
	m.stack = append(m.stack, v)
}

func (m *vm) pop() (Value, error) {
	if len(m.stack) == 0 {
		return NilValue(), zerr.New("stack underflow")
	}
	v := m.stack[len(m.stack)-1]
	m.stack = m.stack[:len(m.stack)-1]
	return v, nil
}

func (m *vm) peek() (Value, error) {
	if len(m.stack) == 0 {
		return NilValue(), zerr.New("stack underflow")
	}
	return m.stack[len(m.stack)-1], nil
}

func (m *vm) popN(n int) ([]Value, error) {
	if len(m.stack) < n {
		return nil, zerr.New("stack underflow")
	}
	args := make([]Value, n)
	copy(args, m.stack[len(m.stack)-n:])
	m.stack = m.stack[:len(m.stack)-n]
	return args, nil
}

type builtin func(args []Value) (Value, error)

var builtins = map[string]builtin{
	"+":      fold(func(a, b int64) (int64, error) { return a + b, nil }),
	"-":      fold(func(a, b int64) (int64, error) { return a - b, nil }),
	"*":      fold(func(a, b int64) (int64, error) { return a * b, nil }),
	"/":      fold(divide),
	"eq":     eq,
	"concat": concat,
	"list":   list,
	"len":    length,
	"print":  printValues,
}

func divide(a, b int64) (int64, error) {
	if b == 0 {
		return 0, zerr.New("division by zero")
	}
	return a / b, nil
}

// fold applies op left to right across integer arguments.
func fold(op func(a, b int64) (int64, error)) builtin {
	return func(args []Value) (Value, error) {
		if len(args) == 0 {
			return NilValue(), zerr.New("expected at least one argument")
		}
		acc, err := wantInt(args[0])
		if err != nil {
			return NilValue(), err
		}
		for _, arg := range args[1:] {
			n, err := wantInt(arg)
			if err != nil {
				return NilValue(), err
			}
			if acc, err = op(acc, n); err != nil {
				return NilValue(), err
			}
		}
		return IntValue(acc), nil
	}
}

func wantInt(v Value) (int64, error) {
	if v.Kind != KindInt {
		return 0, zerr.With(zerr.New("expected an integer"), "got", v.String())
	}
	return v.Int, nil
}

func eq(args []Value) (Value, error) {
	if len(args) != 2 {
		return NilValue(), zerr.New("eq expects two arguments")
	}
	if args[0].Equal(args[1]) {
		return IntValue(1), nil
	}
	return NilValue(), nil
}

func concat(args []Value) (Value, error) {
	var out string
	for _, arg := range args {
		if arg.Kind != KindStr {
			return NilValue(), zerr.With(zerr.New("expected a string"), "got", arg.String())
		}
		out += arg.Str
	}
	return StrValue(out), nil
}

func list(args []Value) (Value, error) {
	return ListValue(args...), nil
}

func length(args []Value) (Value, error) {
	if len(args) != 1 {
		return NilValue(), zerr.New("len expects one argument")
	}
	switch args[0].Kind {
	case KindStr:
		return IntValue(int64(len(args[0].Str))), nil
	case KindList:
		return IntValue(int64(len(args[0].List))), nil
	}
	return NilValue(), zerr.With(zerr.New("len expects a string or list"), "got", args[0].String())
}

func printValues(args []Value) (Value, error) {
	parts := make([]any, len(args))
	for i, arg := range args {
		parts[i] = arg.String()
	}
	fmt.Fprintln(os.Stdout, parts...)
	return NilValue(), nil
}
