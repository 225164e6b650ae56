package isa

import "strings"

// OpCode is the one-byte tag at the head of every encoded instruction.
// Values are part of the wire contract; gaps in the numbering are
// intentional and reserved.
type OpCode byte

const (
	OpInvalid OpCode = 0x00
	OpNop     OpCode = 0x01

	OpLoad  OpCode = 0x03
	OpStore OpCode = 0x04

	OpPush OpCode = 0x08
	OpPop  OpCode = 0x09

	OpJal OpCode = 0x10
	OpJnn OpCode = 0x11
	OpJnz OpCode = 0x12

	OpLNeg   OpCode = 0x20
	OpNumNeg OpCode = 0x21
	OpInc    OpCode = 0x22
	OpDec    OpCode = 0x23
	OpBwNeg  OpCode = 0x24

	OpAnd  OpCode = 0x40
	OpOr   OpCode = 0x41
	OpXor  OpCode = 0x42
	OpAdd  OpCode = 0x43
	OpSub  OpCode = 0x44
	OpMul  OpCode = 0x45
	OpDiv  OpCode = 0x46
	OpMod  OpCode = 0x47
	OpShl  OpCode = 0x48
	OpShr  OpCode = 0x49
	OpUshr OpCode = 0x4A

	OpTrap OpCode = 0xE0
	OpEmit OpCode = 0xE1

	OpPrint OpCode = 0xFD
	OpErr   OpCode = 0xFE
	OpCrash OpCode = 0xFF
)

// opcodeInfo is the single place the opcode->operand-count->mnemonic
// mapping lives, so a reader never has to cross-reference two tables to
// see the full contract for an opcode.
type opcodeInfo struct {
	mnemonic string
	operands int
}

var opcodeTable = map[OpCode]opcodeInfo{
	OpNop: {"nop", 0},

	OpLoad:  {"load", 2},
	OpStore: {"store", 2},

	OpPush: {"push", 1},
	OpPop:  {"pop", 0},

	OpJal: {"jal", 1},
	OpJnn: {"jnn", 2},
	OpJnz: {"jnz", 2},

	OpLNeg:   {"lneg", 2},
	OpNumNeg: {"numneg", 2},
	OpInc:    {"inc", 2},
	OpDec:    {"dec", 2},
	OpBwNeg:  {"bwneg", 2},

	OpAnd:  {"and", 3},
	OpOr:   {"or", 3},
	OpXor:  {"xor", 3},
	OpAdd:  {"add", 3},
	OpSub:  {"sub", 3},
	OpMul:  {"mul", 3},
	OpDiv:  {"div", 3},
	OpMod:  {"mod", 3},
	OpShl:  {"shl", 3},
	OpShr:  {"shr", 3},
	OpUshr: {"ushr", 3},

	OpTrap: {"trap", 2},
	OpEmit: {"emit", 1},

	OpPrint: {"print", 0},
	OpErr:   {"err", 1},
	OpCrash: {"crash", 0},
}

// mnemonicToOp is the reverse of opcodeTable, built once at package init.
var mnemonicToOp map[string]OpCode

func init() {
	mnemonicToOp = make(map[string]OpCode, len(opcodeTable))
	for op, info := range opcodeTable {
		mnemonicToOp[info.mnemonic] = op
	}
}

// String returns the opcode's mnemonic, or "?unknown?" for reserved or
// out-of-range values.
func (op OpCode) String() string {
	if info, ok := opcodeTable[op]; ok {
		return info.mnemonic
	}
	return "?unknown?"
}

// Assemble returns the opcode whose lowercased mnemonic equals the
// lowercased input, or OpInvalid if none matches. Lengths must match
// exactly; prefix matches never count because the lookup is keyed on the
// whole string.
func Assemble(mnemonic string) OpCode {
	if mnemonic == "" {
		return OpInvalid
	}
	if op, ok := mnemonicToOp[strings.ToLower(mnemonic)]; ok {
		return op
	}
	return OpInvalid
}

// Disassemble returns the mnemonic for op, or ok=false if op is reserved
// or otherwise has no mnemonic entry.
func Disassemble(op OpCode) (mnemonic string, ok bool) {
	info, ok := opcodeTable[op]
	if !ok {
		return "", false
	}
	return info.mnemonic, true
}
