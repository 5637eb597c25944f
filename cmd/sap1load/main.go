// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"log"
	"os"

	"github.com/ezrec/sap1/asm"
	"github.com/ezrec/sap1/config"
	"github.com/ezrec/sap1/gpio"
	"github.com/ezrec/sap1/loader"
	"github.com/ezrec/sap1/report"
	"github.com/ezrec/sap1/translate"
)

// DEFAULT_PROGRAM is the listing loaded when none is named.
const DEFAULT_PROGRAM = "output.txt"

func main() {
	var board string
	var port string
	var dryRun bool
	var verbose bool
	var wide bool
	var msb bool
	var color bool
	var lang string

	flag.StringVar(&board, "b", "", ".star board file to use")
	flag.StringVar(&port, "p", "", "Serial port of the controller (overrides board)")
	flag.BoolVar(&dryRun, "n", false, "Dry run: assemble and trace, do not touch hardware")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.BoolVar(&wide, "wide", false, "Allow data literals from 0x00 to 0xFF")
	flag.BoolVar(&msb, "msb", false, "Shift MSB first (overrides board)")
	flag.BoolVar(&color, "color", false, "Colorize the program table")
	flag.StringVar(&lang, "lang", "", "Message language, ie en-US (default from the OS locale)")

	flag.Parse()

	if flag.NArg() > 1 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args()[1:])
	}

	if len(lang) != 0 {
		translate.Use(lang)
	}

	program := DEFAULT_PROGRAM
	if flag.NArg() == 1 {
		program = flag.Arg(0)
	}

	bd := config.Default()
	if len(board) != 0 {
		inf, err := os.Open(board)
		if err != nil {
			log.Fatalf("%v: %v", board, err)
		}
		bd, err = config.Load(board, inf)
		inf.Close()
		if err != nil {
			log.Fatalf("%v: %v", board, err)
		}
	}
	if len(port) != 0 {
		bd.Port = port
	}
	if msb {
		bd.Order = loader.MSB_FIRST
	}

	// Assemble everything before any hardware is touched.
	inf, err := os.Open(program)
	if err != nil {
		log.Fatalf("%v: %v", program, err)
	}
	assembler := &asm.Assembler{
		Verbose:      verbose,
		WideLiterals: wide,
	}
	img, err := assembler.Parse(inf)
	inf.Close()
	if err != nil {
		log.Fatalf("%v: %v", program, err)
	}

	err = report.Write(os.Stdout, img, color)
	if err != nil {
		log.Fatal(err)
	}

	ld := loader.NewLoader()
	bd.Apply(ld)
	ld.Verbose = verbose

	if dryRun {
		trace := &gpio.Trace{Verbose: verbose, Wiring: bd.Wiring}
		err = ld.Load(img, trace)
		if err != nil {
			log.Fatal(err)
		}
		log.Printf("dry run: %d pin writes, %v of delays", trace.Writes, trace.Elapsed)
		return
	}

	pins, err := gpio.OpenFirmata(bd.Port, bd.Wiring)
	if err != nil {
		log.Fatalf("%v: %v", bd.Port, err)
	}
	log.Printf("Communication started")

	err = ld.Load(img, pins)
	cerr := pins.Close()
	if err != nil {
		log.Fatalf("%v: %v", bd.Port, err)
	}
	if cerr != nil {
		log.Fatalf("%v: %v", bd.Port, cerr)
	}
}
