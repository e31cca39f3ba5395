package main

import (
	"flag"
	"fmt"
	"os"

	kbuildminer "github.com/KernelHaven/KbuildMinerExtractor"
)

const foldersUsage = `kbuildminer folders - Show the top-level makefolders of a kernel tree

Usage:
  kbuildminer folders [options] TREE

Options:
  --list        Print as one comma-separated line (miner argument form)
  -h, --help    Show help

A makefolder is a top-level directory containing a Makefile or Kbuild
file; the external miner takes the comma-separated list as its entry
points.

Examples:
  kbuildminer folders ~/src/linux
  kbuildminer folders --list ~/src/linux
`

func (c *cli) cmdFolders(args []string) int {
	fs := flag.NewFlagSet("folders", flag.ContinueOnError)
	fs.Usage = func() { fmt.Fprint(os.Stderr, foldersUsage) }

	asList := fs.Bool("list", false, "comma-separated output")
	help := fs.Bool("h", false, "show help")
	fs.BoolVar(help, "help", false, "show help")

	if err := fs.Parse(args); err != nil {
		return exitError
	}

	if *help || c.helpFlag {
		_, _ = fmt.Fprint(os.Stdout, foldersUsage)
		return exitOK
	}

	if fs.NArg() != 1 {
		printError("expected exactly one tree root")
		fmt.Fprint(os.Stderr, foldersUsage)
		return exitError
	}

	if *asList {
		list, err := kbuildminer.TopFoldersList(fs.Arg(0))
		if err != nil {
			printError("cannot read tree: %v", err)
			return exitError
		}
		fmt.Println(list)
		return exitOK
	}

	folders, err := kbuildminer.TopFolders(fs.Arg(0))
	if err != nil {
		printError("cannot read tree: %v", err)
		return exitError
	}
	for _, folder := range folders {
		fmt.Println(folder)
	}
	return exitOK
}
