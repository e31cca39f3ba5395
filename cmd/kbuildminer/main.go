// Command kbuildminer converts KbuildMiner output files into per-file
// presence conditions.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"
	"strings"

	kbuildminer "github.com/KernelHaven/KbuildMinerExtractor"
	"github.com/KernelHaven/KbuildMinerExtractor/cmd/internal/cliutil"
	"github.com/KernelHaven/KbuildMinerExtractor/varmodel"
)

// Exit codes.
const (
	exitOK          = 0 // success
	exitError       = 1 // user error or processing failure
	exitDiagnostics = 2 // conversion finished but lines were lost to error diagnostics
)

const usage = `kbuildminer - KbuildMiner output converter

Usage:
  kbuildminer <command> [options] [arguments]

Commands:
  convert Convert a KbuildMiner output file to presence conditions
  dump    Output the build model as JSON
  folders Show the top-level makefolders of a kernel tree
  version Show version

Common options:
  -m, --model FILE  Variability model (YAML mapping or "NAME TYPE" lines)
  -v, --verbose     Enable debug logging
  -vv               Enable trace logging (implies -v)
  -h, --help        Show help

Examples:
  kbuildminer convert -m vars.yaml pcs.txt
  kbuildminer convert pcs.txt                # keep all _MODULE variables
  kbuildminer dump -m vars.yaml pcs.txt | jq
  kbuildminer folders ~/src/linux
`

type cli struct {
	verbose   int
	modelPath string
	helpFlag  bool
}

func main() {
	os.Exit(run())
}

func run() int {
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }

	var c cli
	args := os.Args[1:]
	var cmdArgs []string
	var cmd string

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "-h" || arg == "--help":
			c.helpFlag = true
		case arg == "-v" || arg == "--verbose":
			if c.verbose < 1 {
				c.verbose = 1
			}
		case arg == "-vv":
			c.verbose = 2
		case arg == "-m" || arg == "--model":
			if i+1 < len(args) {
				i++
				c.modelPath = args[i]
			}
		case strings.HasPrefix(arg, "--model="):
			c.modelPath = arg[8:]
		case len(arg) > 0 && arg[0] == '-':
			cmdArgs = append(cmdArgs, arg)
		default:
			if cmd == "" {
				cmd = arg
			} else {
				cmdArgs = append(cmdArgs, arg)
			}
		}
	}

	if c.helpFlag && cmd == "" {
		_, _ = fmt.Fprint(os.Stdout, usage)
		return exitOK
	}

	if cmd == "" {
		_, _ = fmt.Fprint(os.Stderr, usage)
		return exitError
	}

	switch cmd {
	case "convert":
		return c.cmdConvert(cmdArgs)
	case "dump":
		return c.cmdDump(cmdArgs)
	case "folders":
		return c.cmdFolders(cmdArgs)
	case "version":
		printVersion()
		return exitOK
	case "help":
		_, _ = fmt.Fprint(os.Stdout, usage)
		return exitOK
	default:
		_, _ = fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", cmd)
		_, _ = fmt.Fprint(os.Stderr, usage)
		return exitError
	}
}

func (c *cli) setupLogger() *slog.Logger {
	if c.verbose == 0 {
		return nil
	}
	level := slog.LevelDebug
	if c.verbose >= 2 {
		level = kbuildminer.LevelTrace
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// loadVarModel reads the -m model file, or returns an empty model when
// none was given.
func (c *cli) loadVarModel() (*varmodel.Model, error) {
	if c.modelPath == "" {
		return varmodel.New(), nil
	}
	return varmodel.LoadFile(c.modelPath)
}

func printVersion() {
	version := "(devel)"
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		version = info.Main.Version
	}
	fmt.Printf("kbuildminer %s\n", version)
}

func printError(format string, args ...any) {
	cliutil.PrintError(format, args...)
}
