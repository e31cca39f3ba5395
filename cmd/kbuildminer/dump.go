package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
)

const dumpUsage = `kbuildminer dump - Output the build model as JSON

Usage:
  kbuildminer dump [options] FILE

Options:
  --compact     Minified JSON (no indentation)
  --no-diags    Omit diagnostics from output
  -h, --help    Show help

Examples:
  kbuildminer dump -m vars.yaml pcs.txt
  kbuildminer dump pcs.txt | jq '.files'
`

// dumpOutput is the JSON shape produced by the dump command.
type dumpOutput struct {
	Files       []dumpFile       `json:"files"`
	Diagnostics []dumpDiagnostic `json:"diagnostics,omitempty"`
}

type dumpFile struct {
	Path      string `json:"path"`
	Condition string `json:"condition"`
}

type dumpDiagnostic struct {
	Severity string `json:"severity"`
	Code     string `json:"code"`
	Message  string `json:"message"`
	Path     string `json:"path,omitempty"`
	Line     int    `json:"line,omitempty"`
}

func (c *cli) cmdDump(args []string) int {
	fs := flag.NewFlagSet("dump", flag.ContinueOnError)
	fs.Usage = func() { fmt.Fprint(os.Stderr, dumpUsage) }

	compact := fs.Bool("compact", false, "minified JSON")
	noDiags := fs.Bool("no-diags", false, "omit diagnostics")
	help := fs.Bool("h", false, "show help")
	fs.BoolVar(help, "help", false, "show help")

	if err := fs.Parse(args); err != nil {
		return exitError
	}

	if *help || c.helpFlag {
		_, _ = fmt.Fprint(os.Stdout, dumpUsage)
		return exitOK
	}

	if fs.NArg() != 1 {
		printError("expected exactly one input file")
		fmt.Fprint(os.Stderr, dumpUsage)
		return exitError
	}

	model, ret := c.convert(fs.Arg(0))
	if model == nil {
		return ret
	}

	out := dumpOutput{Files: make([]dumpFile, 0, model.Len())}
	for path, condition := range model.Files() {
		out.Files = append(out.Files, dumpFile{Path: path, Condition: condition.String()})
	}
	if !*noDiags {
		for _, d := range model.Diagnostics() {
			out.Diagnostics = append(out.Diagnostics, dumpDiagnostic{
				Severity: d.Severity.String(),
				Code:     d.Code,
				Message:  d.Message,
				Path:     d.Path,
				Line:     d.Line,
			})
		}
	}

	var data []byte
	var err error
	if *compact {
		data, err = json.Marshal(out)
	} else {
		data, err = json.MarshalIndent(out, "", "  ")
	}
	if err != nil {
		printError("failed to marshal JSON: %v", err)
		return exitError
	}

	fmt.Println(string(data))
	return exitOK
}
