package sexpr

import (
	"context"

	"github.com/scriptdeck/quickload/internal/core/ports"
	"go.trai.ch/zerr"
)

// Op is a bytecode opcode.
type Op uint8

const (
	// OpConst pushes Consts[A].
	OpConst Op = iota
	// OpGlobal pushes the global named by Consts[A].
	OpGlobal
	// OpSetGlobal stores the stack top into the global named by Consts[A],
	// leaving the value on the stack.
	OpSetGlobal
	// OpCall invokes the builtin named by Consts[A] with B arguments.
	OpCall
	// OpJump moves the program counter to A.
	OpJump
	// OpJumpIfFalse pops the stack top and jumps to A when it is not truthy.
	OpJumpIfFalse
	// OpPop discards the stack top.
	OpPop

	opCount
)

// Instr is one bytecode instruction.
type Instr struct {
	Op Op  `msgpack:"o"`
	A  int `msgpack:"a,omitempty"`
	B  int `msgpack:"b,omitempty"`
}

var _ ports.Executable = (*Chunk)(nil)

// Chunk is a compiled module: a constant pool and bytecode. It is the unit
// the loader persists and revives without re-parsing source text.
type Chunk struct {
	Name   string  `msgpack:"n"`
	Consts []Value `msgpack:"c"`
	Code   []Instr `msgpack:"x"`
}

// Run executes the chunk on a fresh VM and returns the module's export value,
// the value of its last top-level form.
func (c *Chunk) Run(ctx context.Context) (any, error) {
	out, err := newVM().run(ctx, c)
	if err != nil {
		return nil, zerr.With(err, "module", c.Name)
	}
	return out, nil
}

// validate bounds-checks every instruction so a decoded chunk can never index
// outside its constant pool or jump outside its code.
func (c *Chunk) validate() error {
	for pc, instr := range c.Code {
		if instr.Op >= opCount {
			return zerr.With(zerr.New("unknown opcode"), "pc", pc)
		}
		switch instr.Op {
		case OpConst:
			if instr.A < 0 || instr.A >= len(c.Consts) {
				return zerr.With(zerr.New("constant index out of range"), "pc", pc)
			}
		case OpGlobal, OpSetGlobal, OpCall:
			if instr.A < 0 || instr.A >= len(c.Consts) {
				return zerr.With(zerr.New("constant index out of range"), "pc", pc)
			}
			if c.Consts[instr.A].Kind != KindStr {
				return zerr.With(zerr.New("name constant is not a string"), "pc", pc)
			}
			if instr.Op == OpCall && instr.B < 0 {
				return zerr.With(zerr.New("negative argument count"), "pc", pc)
			}
		case OpJump, OpJumpIfFalse:
			if instr.A < 0 || instr.A > len(c.Code) {
				return zerr.With(zerr.New("jump target out of range"), "pc", pc)
			}
		}
	}
	return nil
}
