package isa

// StackAddr is an offset into the stack's address space. It is the operand
// width used by every instruction that reads or writes stack-relative
// storage. On the wire it is a little-endian 16-bit unsigned integer.
type StackAddr uint16

// ProgramAddr is an offset into the program byte slice, used by branch and
// trap-handler operands. Pinned to 64 bits so the wire format doesn't vary
// with the host machine word.
type ProgramAddr uint64

// SymbolAddr is an index into an external symbol table, used by trap
// operands. Pinned to 64 bits for the same reason as ProgramAddr.
type SymbolAddr uint64

// HeapAddr is a runtime-only machine pointer. It never appears on the wire
// and the codec never encodes or decodes one; it exists purely so a caller
// embedding this package has a named type to carry heap addresses through
// alongside the other three address spaces.
type HeapAddr uintptr
