package main

import (
	"fmt"

	"stackvm/isa"
)

// formatInstruction renders one decoded instruction as its mnemonic
// followed by its operands in declared order, hex, the same token shapes
// vmasm accepts back in.
func formatInstruction(instr isa.Instruction) string {
	mnemonic, ok := isa.Disassemble(instr.Op())
	if !ok {
		return "??"
	}

	switch v := instr.(type) {
	case isa.NoOp, isa.Pop, isa.Print, isa.Crash:
		return mnemonic
	case isa.Load:
		return fmt.Sprintf("%s 0x%04x 0x%04x", mnemonic, uint16(v.Target), uint16(v.SourcePtr))
	case isa.Store:
		return fmt.Sprintf("%s 0x%04x 0x%04x", mnemonic, uint16(v.TargetPtr), uint16(v.Source))
	case isa.Push:
		return fmt.Sprintf("%s 0x%04x", mnemonic, uint16(v.Source))
	case isa.Jal:
		return fmt.Sprintf("%s 0x%x", mnemonic, uint64(v.Target))
	case isa.Jnn:
		return fmt.Sprintf("%s 0x%x 0x%04x", mnemonic, uint64(v.Target), uint16(v.Subject))
	case isa.Jnz:
		return fmt.Sprintf("%s 0x%x 0x%04x", mnemonic, uint64(v.Target), uint16(v.Subject))
	case isa.LNeg:
		return fmt.Sprintf("%s 0x%x 0x%04x", mnemonic, uint64(v.Result), uint16(v.Subject))
	case isa.NumNeg:
		return fmt.Sprintf("%s 0x%x 0x%04x", mnemonic, uint64(v.Result), uint16(v.Subject))
	case isa.Inc:
		return fmt.Sprintf("%s 0x%x 0x%04x", mnemonic, uint64(v.Result), uint16(v.Subject))
	case isa.Dec:
		return fmt.Sprintf("%s 0x%x 0x%04x", mnemonic, uint64(v.Result), uint16(v.Subject))
	case isa.BwNeg:
		return fmt.Sprintf("%s 0x%x 0x%04x", mnemonic, uint64(v.Result), uint16(v.Subject))
	case isa.And:
		return fmt.Sprintf("%s 0x%04x 0x%04x 0x%04x", mnemonic, uint16(v.Result), uint16(v.A), uint16(v.B))
	case isa.Or:
		return fmt.Sprintf("%s 0x%04x 0x%04x 0x%04x", mnemonic, uint16(v.Result), uint16(v.A), uint16(v.B))
	case isa.Xor:
		return fmt.Sprintf("%s 0x%04x 0x%04x 0x%04x", mnemonic, uint16(v.Result), uint16(v.A), uint16(v.B))
	case isa.Add:
		return fmt.Sprintf("%s 0x%04x 0x%04x 0x%04x", mnemonic, uint16(v.Sum), uint16(v.A), uint16(v.B))
	case isa.Sub:
		return fmt.Sprintf("%s 0x%04x 0x%04x 0x%04x", mnemonic, uint16(v.Diff), uint16(v.Minuend), uint16(v.Subtrahend))
	case isa.Mul:
		return fmt.Sprintf("%s 0x%04x 0x%04x 0x%04x", mnemonic, uint16(v.Product), uint16(v.Multiplicand), uint16(v.Multiplier))
	case isa.Div:
		return fmt.Sprintf("%s 0x%04x 0x%04x 0x%04x", mnemonic, uint16(v.Quotient), uint16(v.Dividend), uint16(v.Divisor))
	case isa.Mod:
		return fmt.Sprintf("%s 0x%04x 0x%04x 0x%04x", mnemonic, uint16(v.Remainder), uint16(v.Dividend), uint16(v.Divisor))
	case isa.Shl:
		return fmt.Sprintf("%s 0x%04x 0x%04x 0x%04x", mnemonic, uint16(v.Result), uint16(v.Subject), uint16(v.Shift))
	case isa.Shr:
		return fmt.Sprintf("%s 0x%04x 0x%04x 0x%04x", mnemonic, uint16(v.Result), uint16(v.Subject), uint16(v.Shift))
	case isa.Ushr:
		return fmt.Sprintf("%s 0x%04x 0x%04x 0x%04x", mnemonic, uint16(v.Result), uint16(v.Subject), uint16(v.Shift))
	case isa.Trap:
		return fmt.Sprintf("%s 0x%x 0x%x", mnemonic, uint64(v.ExceptionType), uint64(v.Handler))
	case isa.Emit:
		return fmt.Sprintf("%s 0x%04x", mnemonic, uint16(v.ExceptionPtr))
	case isa.Err:
		return fmt.Sprintf("%s 0x%04x", mnemonic, uint16(v.MessagePtr))
	default:
		return mnemonic
	}
}
