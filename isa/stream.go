package isa

// Decoder wraps an owned, read-only program slice and a program-counter
// cursor, exposing a lazy, restartable sequence of decoded instructions.
// It never allocates per step; the program slice is the sole buffer.
//
// Decoder is not safe for concurrent use. A caller needing concurrent
// access must provide its own external synchronization.
type Decoder struct {
	program []byte
	pc      int
	current Instruction
}

// NewDecoder returns a Decoder positioned at the start of program.
func NewDecoder(program []byte) *Decoder {
	d := &Decoder{}
	d.Load(program)
	return d
}

// Load resets the cursor to zero and swaps in a new program.
func (d *Decoder) Load(program []byte) {
	d.program = program
	d.pc = 0
	d.current = nil
}

// Empty reports whether the program counter has reached or passed the end
// of the loaded program.
func (d *Decoder) Empty() bool {
	return d.pc >= len(d.program)
}

// Advance decodes one instruction at the current position, stores it as
// the current instruction, advances the program counter by the number of
// bytes consumed, and returns the decoded instruction.
func (d *Decoder) Advance() Instruction {
	instr, n := DecodeOne(d.program[d.pc:])
	d.current = instr
	d.pc += n
	return instr
}

// Current returns the most recently decoded instruction, or nil if Advance
// has never been called since the last Load.
func (d *Decoder) Current() Instruction {
	return d.current
}

// ProgramCounter returns the byte position immediately after the most
// recently decoded instruction (0 before any call to Advance).
func (d *Decoder) ProgramCounter() int {
	return d.pc
}
