// Package isa implements the stack-machine instruction set: the opcode
// enumeration, per-opcode typed instruction records, the bit-exact binary
// decoder and its streaming variant, and the mnemonic assembler and
// disassembler. It does not execute programs.
package isa
