// Command vmasm assembles a mnemonic instruction listing into the binary
// wire format consumed by package isa.
package main

import (
	"flag"
	"log"
	"os"
)

func main() {
	log.SetFlags(0)

	out := flag.String("o", "", "output file (defaults to stdout)")
	flag.Parse()

	args := flag.Args()
	if len(args) != 1 {
		log.Fatal("usage: vmasm [-o outfile] <source file>")
	}

	in, err := os.Open(args[0])
	if err != nil {
		log.Fatal(err)
	}
	defer in.Close()

	program, err := assemble(in)
	if err != nil {
		log.Fatal(err)
	}

	if *out == "" {
		if _, err := os.Stdout.Write(program); err != nil {
			log.Fatal(err)
		}
		return
	}

	if err := os.WriteFile(*out, program, 0644); err != nil {
		log.Fatal(err)
	}
}
