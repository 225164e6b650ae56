// Command vmdis streams a binary program through the isa package's
// streaming decoder and prints one mnemonic line per decoded instruction.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"stackvm/isa"
)

func disasmCmd(c *cli.Context) error {
	args := c.Args()
	if args.Len() < 1 {
		return cli.Exit("usage: vmdis disasm <file>", 1)
	}

	data, err := os.ReadFile(args.First())
	if err != nil {
		return cli.Exit(err, 1)
	}

	return disassemble(data, os.Stdout)
}

// disassemble prints one line per decoded instruction. Hitting Bad ends
// the stream (the decoder doesn't know how to resync mid-operand); it is
// surfaced as an ordinary diagnostic line, not a panic or an abrupt
// process exit.
func disassemble(program []byte, w io.Writer) error {
	d := isa.NewDecoder(program)
	for !d.Empty() {
		pc := d.ProgramCounter()
		instr := d.Advance()

		switch v := instr.(type) {
		case isa.Invalid:
			fmt.Fprintf(w, "%06x: ??\n", pc)
		case isa.Bad:
			fmt.Fprintf(w, "%06x: %s\n", pc, v)
			return nil
		default:
			fmt.Fprintf(w, "%06x: %s\n", pc, formatInstruction(instr))
		}
	}
	return nil
}

func main() {
	app := cli.NewApp()
	app.Name = "vmdis"
	app.Usage = "disassemble a stack-machine binary program"
	app.Action = func(c *cli.Context) error {
		cli.ShowAppHelp(c)
		return nil
	}
	app.Commands = []*cli.Command{
		{
			Name:      "disasm",
			Aliases:   []string{"d"},
			Usage:     "disassemble a binary program file",
			ArgsUsage: "file",
			Action:    disasmCmd,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
