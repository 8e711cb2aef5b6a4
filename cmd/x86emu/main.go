// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/ezrec/x86emu/cpu"
	"github.com/ezrec/x86emu/emulator"
	"github.com/ezrec/x86emu/translate"
)

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "Usage: %v [-v] [-c file.s] [-s out.bin] [image]\n", filepath.Base(os.Args[0]))
	flag.PrintDefaults()
}

func main() {
	var compile string
	var save string
	var verbose bool

	flag.Usage = usage
	flag.StringVar(&compile, "c", "", ".s file to assemble and run")
	flag.StringVar(&save, "s", "", "Save assembled image, do not execute")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	want := 1
	if len(compile) != 0 {
		want = 0
	}
	if flag.NArg() != want || (len(save) != 0 && len(compile) == 0) {
		flag.Usage()
		os.Exit(1)
	}

	if verbose {
		log.Printf("x86emu: language %v", translate.Language())
	}

	emu := emulator.NewEmulator()
	emu.Verbose = verbose

	// Assemble a new boot image.
	if len(compile) != 0 {
		inf, err := os.Open(compile)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
		defer inf.Close()

		asm := &cpu.Assembler{Verbose: verbose, Origin: emulator.LOAD_OFFSET}
		for key, value := range emu.Defines() {
			asm.Predefine(key, value)
		}
		emu.Program, err = asm.Parse(inf)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
		emu.Rom.Data = emu.Program.Binary()
	} else {
		image := flag.Arg(0)
		var err error
		if image == "-" {
			_, err = emu.Rom.ReadFrom(os.Stdin)
		} else {
			err = emu.Rom.Unmarshal(os.DirFS(filepath.Dir(image)), filepath.Base(image))
		}
		if err != nil {
			log.Fatalf("%v: %v", image, err)
		}
	}

	if len(save) != 0 {
		ouf, err := os.Create(save)
		if err != nil {
			log.Fatalf("%v: %v", save, err)
		}
		_, err = emu.Rom.WriteTo(ouf)
		if err == nil {
			err = ouf.Close()
		}
		if err != nil {
			log.Fatalf("%v: %v", save, err)
		}
		return
	}

	err := emu.Reset()
	if err != nil {
		log.Fatal(err)
	}

	exit := 0
	err = emu.Run()
	if err != nil {
		log.Print(err)
		exit = 1
	}

	err = emu.Dump(os.Stdout)
	if err != nil {
		log.Fatal(err)
	}

	os.Exit(exit)
}
