// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/ezrec/rvasm/asm"
	"github.com/ezrec/rvasm/rv32"
)

// Config is the optional TOML configuration file.
type Config struct {
	Base    uint32 `toml:"base"`
	Verbose bool   `toml:"verbose"`
}

func main() {
	var compile string
	var disassemble string
	var output string
	var configFile string
	var base uint64
	var list bool
	var verbose bool

	flag.StringVar(&compile, "c", "", ".s file to assemble")
	flag.StringVar(&disassemble, "d", "", ".bin image to disassemble")
	flag.StringVar(&output, "o", "-", "Output file")
	flag.StringVar(&configFile, "config", "", "TOML configuration file")
	flag.Uint64Var(&base, "base", 0, "Base address for disassembly")
	flag.BoolVar(&list, "l", false, "List supported mnemonics")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	config := Config{Base: uint32(base), Verbose: verbose}
	if len(configFile) != 0 {
		if _, err := toml.DecodeFile(configFile, &config); err != nil {
			log.Fatalf("%v: %v", configFile, err)
		}
	}

	assembler := asm.NewAssembler(rv32.New())
	assembler.Verbose = config.Verbose

	if list {
		for name := range assembler.Mnemonics() {
			fmt.Println(name)
		}
		return
	}

	switch {
	case len(compile) != 0:
		data, err := os.ReadFile(compile)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
		res := assembler.Assemble(string(data))
		for _, e := range res.Errors {
			fmt.Fprintf(os.Stderr, "%v: %v\n", compile, e)
		}
		if len(res.Errors) != 0 {
			os.Exit(1)
		}
		if err := emit(output, res.Bytes); err != nil {
			log.Fatalf("%v: %v", output, err)
		}

	case len(disassemble) != 0:
		data, err := os.ReadFile(disassemble)
		if err != nil {
			log.Fatalf("%v: %v", disassemble, err)
		}
		res := assembler.Disassemble(data, config.Base)
		for _, e := range res.Errors {
			fmt.Fprintf(os.Stderr, "%v: %v\n", disassemble, e)
		}
		listing := strings.Join(res.Lines, "\n") + "\n"
		if err := emit(output, []byte(listing)); err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		if len(res.Errors) != 0 {
			os.Exit(1)
		}

	default:
		flag.Usage()
		os.Exit(2)
	}
}

// emit writes data to a file, or to stdout for "-".
func emit(output string, data []byte) error {
	if output == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(output, data, 0644)
}
