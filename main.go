// main.go - entry point for the ZX Spectrum 48K core

package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

func usage() {
	fmt.Printf("Usage: %s [options] [filename...]\n", os.Args[0])
	fmt.Println("Options:")
	fmt.Println("  -h, --help           Display command information")
	fmt.Println("  -d, --debug          Enable debugging output")
	fmt.Println("A windowless build is made with 'go build -tags headless'.")
	fmt.Println("Available file formats:")
	fmt.Println("  .scr                 Screen data (6912 bytes)")
	fmt.Println("  .rom                 System ROM (16384 bytes)")
	fmt.Println("  .sna                 Snapshot file (49179 bytes)")
	fmt.Println("Default ROM '48.rom' will be loaded if no ROM is specified.")
}

func main() {
	debug := flag.Bool("d", false, "Enable debugging output")
	flag.BoolVar(debug, "debug", false, "Enable debugging output")
	flag.Usage = usage
	flag.Parse()

	var romFile, snaFile string
	var scrFiles []string

	for _, arg := range flag.Args() {
		switch {
		case strings.HasSuffix(arg, ".rom"):
			romFile = arg
		case strings.HasSuffix(arg, ".sna"):
			snaFile = arg
		case strings.HasSuffix(arg, ".scr"):
			scrFiles = append(scrFiles, arg)
		default:
			fmt.Fprintf(os.Stderr, "Unknown file type: %s\n", arg)
		}
	}

	system := NewSystem(true)
	system.SetTrace(*debug)

	if romFile == "" {
		romFile = "48.rom"
		fmt.Println("Loading default ROM: 48.rom")
	} else {
		fmt.Printf("Loading ROM file: %s\n", romFile)
	}
	if err := system.LoadROM(romFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ROM: %v\n", err)
		os.Exit(1)
	}

	if snaFile != "" {
		fmt.Printf("Loading SNA snapshot file: %s\n", snaFile)
		if err := system.LoadSNA(snaFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error loading snapshot: %v\n", err)
			os.Exit(1)
		}
	}

	for _, scrFile := range scrFiles {
		fmt.Printf("Loading screen file: %s\n", scrFile)
		if err := system.LoadSCR(scrFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error loading screen: %v\n", err)
			os.Exit(1)
		}
	}

	if err := run(system); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
