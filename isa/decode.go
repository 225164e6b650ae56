package isa

import "encoding/binary"

const (
	stackAddrWidth   = 2
	programAddrWidth = 8
	symbolAddrWidth  = 8
)

// cursor reads fixed-width little-endian fields out of a borrowed byte
// slice, advancing as it goes. It never allocates and never writes to buf.
type cursor struct {
	buf []byte
	pos int
}

func (c *cursor) readStackAddr() (StackAddr, bool) {
	if c.pos+stackAddrWidth > len(c.buf) {
		return 0, false
	}
	v := binary.LittleEndian.Uint16(c.buf[c.pos:])
	c.pos += stackAddrWidth
	return StackAddr(v), true
}

func (c *cursor) readProgramAddr() (ProgramAddr, bool) {
	if c.pos+programAddrWidth > len(c.buf) {
		return 0, false
	}
	v := binary.LittleEndian.Uint64(c.buf[c.pos:])
	c.pos += programAddrWidth
	return ProgramAddr(v), true
}

func (c *cursor) readSymbolAddr() (SymbolAddr, bool) {
	if c.pos+symbolAddrWidth > len(c.buf) {
		return 0, false
	}
	v := binary.LittleEndian.Uint64(c.buf[c.pos:])
	c.pos += symbolAddrWidth
	return SymbolAddr(v), true
}

// bad builds the Bad variant and returns the bytes consumed so far
// (1 opcode byte plus whatever operand bytes were read before truncation).
func (c *cursor) bad(op OpCode, expected, found int) (Instruction, int) {
	return Bad{Opcode: op, Expected: expected, Found: found}, 1 + c.pos
}

// DecodeOne decodes a single instruction at the start of program, returning
// the decoded instruction and the number of bytes consumed. An empty
// program decodes to Bad{opcode: invalid, expected: 0, found: 0} consuming
// zero bytes. A reserved opcode byte decodes to Invalid, consuming exactly
// one byte. A recognised opcode that runs out of bytes mid-operand decodes
// to Bad with Found equal to the number of operands read before the
// failure.
func DecodeOne(program []byte) (Instruction, int) {
	if len(program) == 0 {
		return Bad{Opcode: OpInvalid, Expected: 0, Found: 0}, 0
	}

	op := OpCode(program[0])
	info, known := opcodeTable[op]
	if !known {
		return Invalid{}, 1
	}

	c := &cursor{buf: program[1:]}

	switch op {
	case OpNop:
		return NoOp{}, 1
	case OpPop:
		return Pop{}, 1
	case OpPrint:
		return Print{}, 1
	case OpCrash:
		return Crash{}, 1

	case OpLoad:
		target, ok := c.readStackAddr()
		if !ok {
			return c.bad(op, info.operands, 0)
		}
		src, ok := c.readStackAddr()
		if !ok {
			return c.bad(op, info.operands, 1)
		}
		return Load{Target: target, SourcePtr: src}, 1 + c.pos

	case OpStore:
		targetPtr, ok := c.readStackAddr()
		if !ok {
			return c.bad(op, info.operands, 0)
		}
		source, ok := c.readStackAddr()
		if !ok {
			return c.bad(op, info.operands, 1)
		}
		return Store{TargetPtr: targetPtr, Source: source}, 1 + c.pos

	case OpPush:
		source, ok := c.readStackAddr()
		if !ok {
			return c.bad(op, info.operands, 0)
		}
		return Push{Source: source}, 1 + c.pos

	case OpJal:
		target, ok := c.readProgramAddr()
		if !ok {
			return c.bad(op, info.operands, 0)
		}
		return Jal{Target: target}, 1 + c.pos

	case OpJnn:
		target, ok := c.readProgramAddr()
		if !ok {
			return c.bad(op, info.operands, 0)
		}
		subject, ok := c.readStackAddr()
		if !ok {
			return c.bad(op, info.operands, 1)
		}
		return Jnn{Target: target, Subject: subject}, 1 + c.pos

	case OpJnz:
		target, ok := c.readProgramAddr()
		if !ok {
			return c.bad(op, info.operands, 0)
		}
		subject, ok := c.readStackAddr()
		if !ok {
			return c.bad(op, info.operands, 1)
		}
		return Jnz{Target: target, Subject: subject}, 1 + c.pos

	case OpLNeg, OpNumNeg, OpInc, OpDec, OpBwNeg:
		result, ok := c.readProgramAddr()
		if !ok {
			return c.bad(op, info.operands, 0)
		}
		subject, ok := c.readStackAddr()
		if !ok {
			return c.bad(op, info.operands, 1)
		}
		switch op {
		case OpLNeg:
			return LNeg{Result: result, Subject: subject}, 1 + c.pos
		case OpNumNeg:
			return NumNeg{Result: result, Subject: subject}, 1 + c.pos
		case OpInc:
			return Inc{Result: result, Subject: subject}, 1 + c.pos
		case OpDec:
			return Dec{Result: result, Subject: subject}, 1 + c.pos
		default:
			return BwNeg{Result: result, Subject: subject}, 1 + c.pos
		}

	case OpAnd, OpOr, OpXor, OpAdd, OpSub, OpMul, OpDiv, OpMod, OpShl, OpShr, OpUshr:
		first, ok := c.readStackAddr()
		if !ok {
			return c.bad(op, info.operands, 0)
		}
		second, ok := c.readStackAddr()
		if !ok {
			return c.bad(op, info.operands, 1)
		}
		third, ok := c.readStackAddr()
		if !ok {
			return c.bad(op, info.operands, 2)
		}
		switch op {
		case OpAnd:
			return And{Result: first, A: second, B: third}, 1 + c.pos
		case OpOr:
			return Or{Result: first, A: second, B: third}, 1 + c.pos
		case OpXor:
			return Xor{Result: first, A: second, B: third}, 1 + c.pos
		case OpAdd:
			return Add{Sum: first, A: second, B: third}, 1 + c.pos
		case OpSub:
			return Sub{Diff: first, Minuend: second, Subtrahend: third}, 1 + c.pos
		case OpMul:
			return Mul{Product: first, Multiplicand: second, Multiplier: third}, 1 + c.pos
		case OpDiv:
			return Div{Quotient: first, Dividend: second, Divisor: third}, 1 + c.pos
		case OpMod:
			return Mod{Remainder: first, Dividend: second, Divisor: third}, 1 + c.pos
		case OpShl:
			return Shl{Result: first, Subject: second, Shift: third}, 1 + c.pos
		case OpShr:
			return Shr{Result: first, Subject: second, Shift: third}, 1 + c.pos
		default:
			return Ushr{Result: first, Subject: second, Shift: third}, 1 + c.pos
		}

	case OpTrap:
		exceptionType, ok := c.readSymbolAddr()
		if !ok {
			return c.bad(op, info.operands, 0)
		}
		handler, ok := c.readProgramAddr()
		if !ok {
			return c.bad(op, info.operands, 1)
		}
		return Trap{ExceptionType: exceptionType, Handler: handler}, 1 + c.pos

	case OpEmit:
		exceptionPtr, ok := c.readStackAddr()
		if !ok {
			return c.bad(op, info.operands, 0)
		}
		return Emit{ExceptionPtr: exceptionPtr}, 1 + c.pos

	case OpErr:
		messagePtr, ok := c.readStackAddr()
		if !ok {
			return c.bad(op, info.operands, 0)
		}
		return Err{MessagePtr: messagePtr}, 1 + c.pos
	}

	// opcodeTable and this switch are kept in lockstep; reaching here means
	// an opcode was added to the table without a matching decode arm.
	panic("isa: opcode " + op.String() + " has a table entry but no decode arm")
}

func putStackAddr(dst []byte, v StackAddr) []byte {
	var buf [stackAddrWidth]byte
	binary.LittleEndian.PutUint16(buf[:], uint16(v))
	return append(dst, buf[:]...)
}

func putProgramAddr(dst []byte, v ProgramAddr) []byte {
	var buf [programAddrWidth]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(v))
	return append(dst, buf[:]...)
}

func putSymbolAddr(dst []byte, v SymbolAddr) []byte {
	var buf [symbolAddrWidth]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(v))
	return append(dst, buf[:]...)
}

// Encode writes instr to its binary wire form: the opcode byte followed by
// its operand fields in declaration order, little-endian. Encoding Bad
// panics — Bad is a decode-only diagnostic, never a value a caller
// legitimately wants serialized back to the wire.
func Encode(instr Instruction) []byte {
	out := make([]byte, 0, 9)
	out = append(out, byte(instr.Op()))

	switch v := instr.(type) {
	case NoOp, Pop, Print, Crash, Invalid:
		// no operands
	case Load:
		out = putStackAddr(out, v.Target)
		out = putStackAddr(out, v.SourcePtr)
	case Store:
		out = putStackAddr(out, v.TargetPtr)
		out = putStackAddr(out, v.Source)
	case Push:
		out = putStackAddr(out, v.Source)
	case Jal:
		out = putProgramAddr(out, v.Target)
	case Jnn:
		out = putProgramAddr(out, v.Target)
		out = putStackAddr(out, v.Subject)
	case Jnz:
		out = putProgramAddr(out, v.Target)
		out = putStackAddr(out, v.Subject)
	case LNeg:
		out = putProgramAddr(out, v.Result)
		out = putStackAddr(out, v.Subject)
	case NumNeg:
		out = putProgramAddr(out, v.Result)
		out = putStackAddr(out, v.Subject)
	case Inc:
		out = putProgramAddr(out, v.Result)
		out = putStackAddr(out, v.Subject)
	case Dec:
		out = putProgramAddr(out, v.Result)
		out = putStackAddr(out, v.Subject)
	case BwNeg:
		out = putProgramAddr(out, v.Result)
		out = putStackAddr(out, v.Subject)
	case And:
		out = putStackAddr(out, v.Result)
		out = putStackAddr(out, v.A)
		out = putStackAddr(out, v.B)
	case Or:
		out = putStackAddr(out, v.Result)
		out = putStackAddr(out, v.A)
		out = putStackAddr(out, v.B)
	case Xor:
		out = putStackAddr(out, v.Result)
		out = putStackAddr(out, v.A)
		out = putStackAddr(out, v.B)
	case Add:
		out = putStackAddr(out, v.Sum)
		out = putStackAddr(out, v.A)
		out = putStackAddr(out, v.B)
	case Sub:
		out = putStackAddr(out, v.Diff)
		out = putStackAddr(out, v.Minuend)
		out = putStackAddr(out, v.Subtrahend)
	case Mul:
		out = putStackAddr(out, v.Product)
		out = putStackAddr(out, v.Multiplicand)
		out = putStackAddr(out, v.Multiplier)
	case Div:
		out = putStackAddr(out, v.Quotient)
		out = putStackAddr(out, v.Dividend)
		out = putStackAddr(out, v.Divisor)
	case Mod:
		out = putStackAddr(out, v.Remainder)
		out = putStackAddr(out, v.Dividend)
		out = putStackAddr(out, v.Divisor)
	case Shl:
		out = putStackAddr(out, v.Result)
		out = putStackAddr(out, v.Subject)
		out = putStackAddr(out, v.Shift)
	case Shr:
		out = putStackAddr(out, v.Result)
		out = putStackAddr(out, v.Subject)
		out = putStackAddr(out, v.Shift)
	case Ushr:
		out = putStackAddr(out, v.Result)
		out = putStackAddr(out, v.Subject)
		out = putStackAddr(out, v.Shift)
	case Trap:
		out = putSymbolAddr(out, v.ExceptionType)
		out = putProgramAddr(out, v.Handler)
	case Emit:
		out = putStackAddr(out, v.ExceptionPtr)
	case Err:
		out = putStackAddr(out, v.MessagePtr)
	case Bad:
		panic("isa: Encode called with a Bad instruction; Bad is decode-only")
	default:
		panic("isa: Encode: unhandled instruction type")
	}

	return out
}
