package isa

import (
	"fmt"
	"testing"
)

func assert(t *testing.T, cond bool, format string, args ...any) {
	t.Helper()
	if !cond {
		t.Fatalf(format, args...)
	}
}

func TestDecodeNop(t *testing.T) {
	instr, n := DecodeOne([]byte{0x01})
	assert(t, n == 1, "bytes consumed = %d, want 1", n)
	_, ok := instr.(NoOp)
	assert(t, ok, "decoded %T, want NoOp", instr)

	d := NewDecoder([]byte{0x01})
	d.Advance()
	assert(t, d.Empty(), "decoder should report empty after consuming the only instruction")
}

func TestDecodeLoad(t *testing.T) {
	program := []byte{0x03, 0x02, 0x00, 0x05, 0x00}
	instr, n := DecodeOne(program)
	assert(t, n == 5, "bytes consumed = %d, want 5", n)
	load, ok := instr.(Load)
	assert(t, ok, "decoded %T, want Load", instr)
	assert(t, load.Target == StackAddr(2), "Target = %d, want 2", load.Target)
	assert(t, load.SourcePtr == StackAddr(5), "SourcePtr = %d, want 5", load.SourcePtr)
}

// TestDecodeTruncatedLoad checks that a load with zero complete StackAddr
// operands read reports Bad with Found=0.
func TestDecodeTruncatedLoad(t *testing.T) {
	instr, n := DecodeOne([]byte{0x03, 0x02})
	bad, ok := instr.(Bad)
	assert(t, ok, "decoded %T, want Bad", instr)
	assert(t, bad.Opcode == OpLoad, "Opcode = %v, want load", bad.Opcode)
	assert(t, bad.Expected == 2, "Expected = %d, want 2", bad.Expected)
	assert(t, bad.Found == 0, "Found = %d, want 0", bad.Found)
	assert(t, n == 1, "bytes consumed = %d, want 1 (only the opcode byte)", n)

	d := NewDecoder([]byte{0x03, 0x02})
	result := d.Advance()
	_, badOk := result.(Bad)
	assert(t, badOk, "streaming decoder's Current should be Bad after running out of operand bytes")
}

func TestDecodeEmptyProgram(t *testing.T) {
	instr, n := DecodeOne(nil)
	bad, ok := instr.(Bad)
	assert(t, ok, "decoded %T, want Bad", instr)
	assert(t, bad.Opcode == OpInvalid && bad.Expected == 0 && bad.Found == 0, "got %+v, want Bad{Invalid,0,0}", bad)
	assert(t, n == 0, "bytes consumed = %d, want 0", n)
}

// TestDecodeReservedByte checks that every byte not in the enumeration
// decodes to Invalid, consuming exactly one byte.
func TestDecodeReservedByte(t *testing.T) {
	reserved := []byte{0x00, 0x02, 0x05, 0x0A, 0x13, 0x25, 0x4B, 0xDF, 0xFC}
	for _, b := range reserved {
		instr, n := DecodeOne([]byte{b})
		_, ok := instr.(Invalid)
		assert(t, ok, "byte 0x%02X decoded to %T, want Invalid", b, instr)
		assert(t, n == 1, "byte 0x%02X consumed %d bytes, want 1", b, n)
	}
}

// TestRoundTripAllOpcodes checks decode(encode(x)) == x for every
// representable instruction.
func TestRoundTripAllOpcodes(t *testing.T) {
	cases := []Instruction{
		NoOp{},
		Load{Target: 2, SourcePtr: 5},
		Store{TargetPtr: 7, Source: 9},
		Push{Source: 3},
		Pop{},
		Jal{Target: 0x1122334455667788},
		Jnn{Target: 42, Subject: 1},
		Jnz{Target: 42, Subject: 1},
		LNeg{Result: 10, Subject: 1},
		NumNeg{Result: 10, Subject: 1},
		Inc{Result: 10, Subject: 1},
		Dec{Result: 10, Subject: 1},
		BwNeg{Result: 10, Subject: 1},
		And{Result: 1, A: 2, B: 3},
		Or{Result: 1, A: 2, B: 3},
		Xor{Result: 1, A: 2, B: 3},
		Add{Sum: 1, A: 2, B: 3},
		Sub{Diff: 1, Minuend: 2, Subtrahend: 3},
		Mul{Product: 1, Multiplicand: 2, Multiplier: 3},
		Div{Quotient: 1, Dividend: 2, Divisor: 3},
		Mod{Remainder: 1, Dividend: 2, Divisor: 3},
		Shl{Result: 1, Subject: 2, Shift: 3},
		Shr{Result: 1, Subject: 2, Shift: 3},
		Ushr{Result: 1, Subject: 2, Shift: 3},
		Trap{ExceptionType: 99, Handler: 1000},
		Emit{ExceptionPtr: 4},
		Print{},
		Err{MessagePtr: 6},
		Crash{},
	}

	for _, want := range cases {
		encoded := Encode(want)
		got, n := DecodeOne(encoded)
		assert(t, n == len(encoded), "%T: consumed %d bytes, want %d", want, n, len(encoded))
		assert(t, got == want, "%T: decode(encode(x)) = %+v, want %+v", want, got, want)
	}
}

func TestTruncatedOperandsReportExpectedAndFound(t *testing.T) {
	full := Encode(Add{Sum: 1, A: 2, B: 3})
	for found := 0; found < 3; found++ {
		truncated := full[:1+found*stackAddrWidth]
		instr, _ := DecodeOne(truncated)
		bad, ok := instr.(Bad)
		assert(t, ok, "truncated at %d operands: decoded %T, want Bad", found, instr)
		assert(t, bad.Opcode == OpAdd, "Opcode = %v, want add", bad.Opcode)
		assert(t, bad.Expected == 3, "Expected = %d, want 3", bad.Expected)
		assert(t, bad.Found == found, "Found = %d, want %d", bad.Found, found)
	}
}

func TestEncodeInvalidWritesReservedOpcode(t *testing.T) {
	encoded := Encode(Invalid{})
	assert(t, fmt.Sprint(encoded) == fmt.Sprint([]byte{0x00}), "Encode(Invalid{}) = %v, want [0]", encoded)
}

func TestEncodeBadPanics(t *testing.T) {
	defer func() {
		r := recover()
		assert(t, r != nil, "Encode(Bad{...}) should panic")
	}()
	Encode(Bad{Opcode: OpLoad, Expected: 2, Found: 1})
}

func TestStreamingDecoderAdvancesAndReportsEmpty(t *testing.T) {
	program := Encode(NoOp{})
	program = append(program, Encode(Push{Source: 1})...)
	program = append(program, Encode(Pop{})...)

	d := NewDecoder(program)
	assert(t, !d.Empty(), "decoder should not be empty before any Advance")
	assert(t, d.ProgramCounter() == 0, "ProgramCounter before any Advance = %d, want 0", d.ProgramCounter())

	count := 0
	for !d.Empty() {
		d.Advance()
		count++
	}
	assert(t, count == 3, "decoded %d instructions, want 3", count)
	assert(t, d.ProgramCounter() == len(program), "final ProgramCounter = %d, want %d", d.ProgramCounter(), len(program))
}

func TestStreamingDecoderLoadResetsCursor(t *testing.T) {
	d := NewDecoder(Encode(NoOp{}))
	d.Advance()
	assert(t, d.Empty(), "decoder should be empty after consuming its only instruction")

	d.Load(Encode(Push{Source: 1}))
	assert(t, d.ProgramCounter() == 0, "ProgramCounter after Load = %d, want 0", d.ProgramCounter())
	assert(t, d.Current() == nil, "Current after Load should be nil until the next Advance")

	instr := d.Advance()
	push, ok := instr.(Push)
	assert(t, ok, "decoded %T, want Push", instr)
	assert(t, push.Source == StackAddr(1), "Source = %d, want 1", push.Source)
}
