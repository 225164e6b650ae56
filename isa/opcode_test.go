package isa

import (
	"strings"
	"testing"
)

// TestAssembleDisassembleRoundTrip checks that every mnemonic'd opcode
// round-trips through Assemble and Disassemble in both directions,
// case-insensitively.
func TestAssembleDisassembleRoundTrip(t *testing.T) {
	for op, info := range opcodeTable {
		upper := strings.ToUpper(info.mnemonic)
		got := Assemble(upper)
		assert(t, got == op, "Assemble(%q) = 0x%02X, want 0x%02X", upper, byte(got), byte(op))

		mnemonic, ok := Disassemble(got)
		assert(t, ok, "Disassemble(0x%02X) reported no mnemonic", byte(got))
		assert(t, mnemonic == info.mnemonic, "Disassemble(Assemble(%q)) = %q, want %q", upper, mnemonic, info.mnemonic)
	}
}

func TestAssembleUnknownMnemonic(t *testing.T) {
	assert(t, Assemble("xyz") == OpInvalid, "Assemble(\"xyz\") should be OpInvalid")
	assert(t, Assemble("") == OpInvalid, "Assemble(\"\") should be OpInvalid")
}

func TestAssembleCaseInsensitive(t *testing.T) {
	for _, variant := range []string{"nop", "NOP", "Nop", "nOp"} {
		assert(t, Assemble(variant) == OpNop, "Assemble(%q) should be OpNop", variant)
	}
}

func TestAssemblePrefixDoesNotMatch(t *testing.T) {
	assert(t, Assemble("no") == OpInvalid, "Assemble(\"no\") (a prefix of nop) must not match")
	assert(t, Assemble("nopx") == OpInvalid, "Assemble(\"nopx\") (an extension of nop) must not match")
}

func TestDisassembleReservedOpcode(t *testing.T) {
	_, ok := Disassemble(OpInvalid)
	assert(t, !ok, "Disassemble(OpInvalid) should report ok=false")

	_, ok = Disassemble(OpCode(0x02))
	assert(t, !ok, "Disassemble of a reserved byte should report ok=false")
}

func TestMnemonicsAreUniqueLowercaseNonEmpty(t *testing.T) {
	seen := make(map[string]OpCode)
	for op, info := range opcodeTable {
		assert(t, info.mnemonic != "", "opcode 0x%02X has an empty mnemonic", byte(op))
		assert(t, info.mnemonic == strings.ToLower(info.mnemonic), "mnemonic %q is not lowercase", info.mnemonic)
		if other, ok := seen[info.mnemonic]; ok {
			t.Fatalf("mnemonic %q used by both 0x%02X and 0x%02X", info.mnemonic, byte(other), byte(op))
		}
		seen[info.mnemonic] = op
	}
}
