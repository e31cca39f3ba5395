package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	kbuildminer "github.com/KernelHaven/KbuildMinerExtractor"
	"github.com/KernelHaven/KbuildMinerExtractor/cmd/internal/cliutil"
)

const convertUsage = `kbuildminer convert - Convert a KbuildMiner output file

Usage:
  kbuildminer convert [options] FILE

Options:
  -o, --output FILE   Write conditions to FILE instead of stdout
  --quiet             Suppress diagnostic output
  -h, --help          Show help

Output is one "path: condition" line per file. Files whose condition
could not be recovered show the never-satisfied constant "0".

Examples:
  kbuildminer convert -m vars.yaml pcs.txt
  kbuildminer convert -o conditions.txt pcs.txt
`

func (c *cli) cmdConvert(args []string) int {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	fs.Usage = func() { fmt.Fprint(os.Stderr, convertUsage) }

	output := fs.String("o", "", "output file")
	fs.StringVar(output, "output", "", "output file")
	quiet := fs.Bool("quiet", false, "suppress diagnostics")
	help := fs.Bool("h", false, "show help")
	fs.BoolVar(help, "help", false, "show help")

	if err := fs.Parse(args); err != nil {
		return exitError
	}

	if *help || c.helpFlag {
		_, _ = fmt.Fprint(os.Stdout, convertUsage)
		return exitOK
	}

	if fs.NArg() != 1 {
		printError("expected exactly one input file")
		fmt.Fprint(os.Stderr, convertUsage)
		return exitError
	}

	model, ret := c.convert(fs.Arg(0))
	if model == nil {
		return ret
	}

	w, closeOutput, err := cliutil.GetOutput(*output)
	if err != nil {
		printError("cannot open output: %v", err)
		return exitError
	}

	for path, condition := range model.Files() {
		fmt.Fprintf(w, "%s: %s\n", path, condition)
	}
	if err := closeOutput(); err != nil {
		printError("writing output: %v", err)
		return exitError
	}

	errors := 0
	if *quiet {
		for _, d := range model.Diagnostics() {
			if d.Severity == kbuildminer.SeverityError {
				errors++
			}
		}
	} else {
		errors = cliutil.PrintDiagnostics(os.Stderr, model.Diagnostics())
	}
	if errors > 0 {
		return exitDiagnostics
	}
	return exitOK
}

// convert runs the shared conversion pipeline for the convert and dump
// commands. Returns a nil model and an exit code on failure.
func (c *cli) convert(inputPath string) (*kbuildminer.BuildModel, int) {
	vars, err := c.loadVarModel()
	if err != nil {
		printError("cannot load variability model: %v", err)
		return nil, exitError
	}

	var opts []kbuildminer.Option
	if logger := c.setupLogger(); logger != nil {
		opts = append(opts, kbuildminer.WithLogger(logger))
	}

	model, err := kbuildminer.Convert(context.Background(),
		kbuildminer.File(inputPath), vars, opts...)
	if err != nil {
		printError("conversion failed: %v", err)
		return nil, exitError
	}
	return model, exitOK
}
