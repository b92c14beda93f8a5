package sexpr

import (
	"fmt"

	"go.trai.ch/zerr"
)

// Compile parses and compiles module source text into a chunk. name labels
// the chunk in errors and diagnostics.
func Compile(name, src string) (*Chunk, error) {
	forms, err := parse(name, src)
	if err != nil {
		return nil, err
	}

	c := &compiler{
		chunk: &Chunk{Name: name},
		seen:  make(map[string]int),
	}
	if len(forms) == 0 {
		c.emit(Instr{Op: OpConst, A: c.constant(NilValue())})
		return c.chunk, nil
	}
	for i, f := range forms {
		if err := c.expr(f); err != nil {
			return nil, err
		}
		if i < len(forms)-1 {
			c.emit(Instr{Op: OpPop})
		}
	}
	return c.chunk, nil
}

type compiler struct {
	chunk *Chunk
	seen  map[string]int
}

func (c *compiler) emit(instr Instr) int {
	c.chunk.Code = append(c.chunk.Code, instr)
	return len(c.chunk.Code) - 1
}

// constant interns v in the pool. The parser only produces nil, int, and
// string constants, so a flat key covers every case.
func (c *compiler) constant(v Value) int {
	key := fmt.Sprintf("%d\x00%d\x00%s", v.Kind, v.Int, v.Str)
	if idx, ok := c.seen[key]; ok {
		return idx
	}
	c.chunk.Consts = append(c.chunk.Consts, v)
	idx := len(c.chunk.Consts) - 1
	c.seen[key] = idx
	return idx
}

func (c *compiler) expr(f form) error {
	switch f.kind {
	case formInt:
		c.emit(Instr{Op: OpConst, A: c.constant(IntValue(f.num))})
	case formStr:
		c.emit(Instr{Op: OpConst, A: c.constant(StrValue(f.text))})
	case formSym:
		if f.text == "nil" {
			c.emit(Instr{Op: OpConst, A: c.constant(NilValue())})
			return nil
		}
		c.emit(Instr{Op: OpGlobal, A: c.constant(StrValue(f.text))})
	case formList:
		return c.call(f)
	}
	return nil
}

func (c *compiler) call(f form) error {
	if len(f.kids) == 0 {
		return c.fail(f, "empty call form")
	}
	head := f.kids[0]
	if head.kind != formSym {
		return c.fail(f, "call head must be a symbol")
	}

	switch head.text {
	case "def":
		return c.def(f)
	case "if":
		return c.cond(f)
	case "do":
		return c.seq(f)
	}

	if _, ok := builtins[head.text]; !ok {
		return c.fail(f, "unknown function "+head.text)
	}
	for _, arg := range f.kids[1:] {
		if err := c.expr(arg); err != nil {
			return err
		}
	}
	c.emit(Instr{Op: OpCall, A: c.constant(StrValue(head.text)), B: len(f.kids) - 1})
	return nil
}

// def evaluates its expression and binds it to a global, leaving the value as
// the form's result.
func (c *compiler) def(f form) error {
	if len(f.kids) != 3 || f.kids[1].kind != formSym {
		return c.fail(f, "def expects (def name expr)")
	}
	if err := c.expr(f.kids[2]); err != nil {
		return err
	}
	c.emit(Instr{Op: OpSetGlobal, A: c.constant(StrValue(f.kids[1].text))})
	return nil
}

func (c *compiler) cond(f form) error {
	if len(f.kids) != 3 && len(f.kids) != 4 {
		return c.fail(f, "if expects (if cond then) or (if cond then else)")
	}
	if err := c.expr(f.kids[1]); err != nil {
		return err
	}
	jumpToElse := c.emit(Instr{Op: OpJumpIfFalse})
	if err := c.expr(f.kids[2]); err != nil {
		return err
	}
	jumpToEnd := c.emit(Instr{Op: OpJump})
	c.chunk.Code[jumpToElse].A = len(c.chunk.Code)
	if len(f.kids) == 4 {
		if err := c.expr(f.kids[3]); err != nil {
			return err
		}
	} else {
		c.emit(Instr{Op: OpConst, A: c.constant(NilValue())})
	}
	c.chunk.Code[jumpToEnd].A = len(c.chunk.Code)
	return nil
}

func (c *compiler) seq(f form) error {
	if len(f.kids) == 1 {
		c.emit(Instr{Op: OpConst, A: c.constant(NilValue())})
		return nil
	}
	for i, kid := range f.kids[1:] {
		if err := c.expr(kid); err != nil {
			return err
		}
		if i < len(f.kids)-2 {
			c.emit(Instr{Op: OpPop})
		}
	}
	return nil
}

func (c *compiler) fail(f form, msg string) error {
	return errAt(zerr.New(msg), c.chunk.Name, f.line)
}
