package main

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"stackvm/isa"
)

var commentPattern = regexp.MustCompile(`//.*$`)

// assemble reads a mnemonic listing, one instruction per line, and
// returns the assembled binary program. Blank lines and `//` comments are
// stripped first. Labels and operand expressions are not supported: every
// operand token is an unsigned Go integer literal (decimal, or 0x-, 0o- or
// 0b-prefixed; a bare leading 0 means octal).
func assemble(r io.Reader) ([]byte, error) {
	var out []byte

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := commentPattern.ReplaceAllString(scanner.Text(), "")
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		mnemonic := fields[0]
		op := isa.Assemble(mnemonic)
		if op == isa.OpInvalid {
			return nil, fmt.Errorf("line %d: unknown mnemonic %q", lineNo, mnemonic)
		}

		operands, err := parseOperands(fields[1:])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}

		instr, err := build(op, operands)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		out = append(out, isa.Encode(instr)...)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func parseOperands(fields []string) ([]uint64, error) {
	operands := make([]uint64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseUint(f, 0, 64)
		if err != nil {
			return nil, fmt.Errorf("operand %q is not a valid integer literal: %w", f, err)
		}
		operands[i] = v
	}
	return operands, nil
}

// build constructs the typed Instruction for op from its operand values,
// in each opcode's declared operand order. This switch mirrors
// isa.DecodeOne's dispatch shape, the dual operation for text instead of
// bytes.
func build(op isa.OpCode, operands []uint64) (isa.Instruction, error) {
	want, err := operandCount(op)
	if err != nil {
		return nil, err
	}
	if len(operands) != want {
		return nil, fmt.Errorf("%s expects %d operand(s), got %d", op, want, len(operands))
	}

	stack := func(i int) isa.StackAddr { return isa.StackAddr(operands[i]) }
	prog := func(i int) isa.ProgramAddr { return isa.ProgramAddr(operands[i]) }
	sym := func(i int) isa.SymbolAddr { return isa.SymbolAddr(operands[i]) }

	switch op {
	case isa.OpNop:
		return isa.NoOp{}, nil
	case isa.OpLoad:
		return isa.Load{Target: stack(0), SourcePtr: stack(1)}, nil
	case isa.OpStore:
		return isa.Store{TargetPtr: stack(0), Source: stack(1)}, nil
	case isa.OpPush:
		return isa.Push{Source: stack(0)}, nil
	case isa.OpPop:
		return isa.Pop{}, nil
	case isa.OpJal:
		return isa.Jal{Target: prog(0)}, nil
	case isa.OpJnn:
		return isa.Jnn{Target: prog(0), Subject: stack(1)}, nil
	case isa.OpJnz:
		return isa.Jnz{Target: prog(0), Subject: stack(1)}, nil
	case isa.OpLNeg:
		return isa.LNeg{Result: prog(0), Subject: stack(1)}, nil
	case isa.OpNumNeg:
		return isa.NumNeg{Result: prog(0), Subject: stack(1)}, nil
	case isa.OpInc:
		return isa.Inc{Result: prog(0), Subject: stack(1)}, nil
	case isa.OpDec:
		return isa.Dec{Result: prog(0), Subject: stack(1)}, nil
	case isa.OpBwNeg:
		return isa.BwNeg{Result: prog(0), Subject: stack(1)}, nil
	case isa.OpAnd:
		return isa.And{Result: stack(0), A: stack(1), B: stack(2)}, nil
	case isa.OpOr:
		return isa.Or{Result: stack(0), A: stack(1), B: stack(2)}, nil
	case isa.OpXor:
		return isa.Xor{Result: stack(0), A: stack(1), B: stack(2)}, nil
	case isa.OpAdd:
		return isa.Add{Sum: stack(0), A: stack(1), B: stack(2)}, nil
	case isa.OpSub:
		return isa.Sub{Diff: stack(0), Minuend: stack(1), Subtrahend: stack(2)}, nil
	case isa.OpMul:
		return isa.Mul{Product: stack(0), Multiplicand: stack(1), Multiplier: stack(2)}, nil
	case isa.OpDiv:
		return isa.Div{Quotient: stack(0), Dividend: stack(1), Divisor: stack(2)}, nil
	case isa.OpMod:
		return isa.Mod{Remainder: stack(0), Dividend: stack(1), Divisor: stack(2)}, nil
	case isa.OpShl:
		return isa.Shl{Result: stack(0), Subject: stack(1), Shift: stack(2)}, nil
	case isa.OpShr:
		return isa.Shr{Result: stack(0), Subject: stack(1), Shift: stack(2)}, nil
	case isa.OpUshr:
		return isa.Ushr{Result: stack(0), Subject: stack(1), Shift: stack(2)}, nil
	case isa.OpTrap:
		return isa.Trap{ExceptionType: sym(0), Handler: prog(1)}, nil
	case isa.OpEmit:
		return isa.Emit{ExceptionPtr: stack(0)}, nil
	case isa.OpPrint:
		return isa.Print{}, nil
	case isa.OpErr:
		return isa.Err{MessagePtr: stack(0)}, nil
	case isa.OpCrash:
		return isa.Crash{}, nil
	default:
		return nil, fmt.Errorf("unassemblable opcode %s", op)
	}
}

// operandCount reports how many operand tokens op's mnemonic takes. isa
// does not export its operand-count table, so this package keeps its own
// copy keyed by mnemonic rather than opcode value, resolved through
// Disassemble so the two tables can't silently diverge on the
// opcode<->mnemonic half of the mapping.
func operandCount(op isa.OpCode) (int, error) {
	mnemonic, ok := isa.Disassemble(op)
	if !ok {
		return 0, fmt.Errorf("opcode %s has no mnemonic", op)
	}
	n, ok := operandsByMnemonic[mnemonic]
	if !ok {
		return 0, fmt.Errorf("mnemonic %q has no known operand count", mnemonic)
	}
	return n, nil
}

var operandsByMnemonic = map[string]int{
	"nop": 0, "load": 2, "store": 2, "push": 1, "pop": 0,
	"jal": 1, "jnn": 2, "jnz": 2,
	"lneg": 2, "numneg": 2, "inc": 2, "dec": 2, "bwneg": 2,
	"and": 3, "or": 3, "xor": 3, "add": 3, "sub": 3, "mul": 3, "div": 3,
	"mod": 3, "shl": 3, "shr": 3, "ushr": 3,
	"trap": 2, "emit": 1,
	"print": 0, "err": 1, "crash": 0,
}
