package kbuildminer

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/KernelHaven/KbuildMinerExtractor/buildmodel"
	"github.com/KernelHaven/KbuildMinerExtractor/internal/parser"
	"github.com/KernelHaven/KbuildMinerExtractor/internal/rewrite"
	"github.com/KernelHaven/KbuildMinerExtractor/internal/types"
	"github.com/KernelHaven/KbuildMinerExtractor/logic"
	"github.com/KernelHaven/KbuildMinerExtractor/varmodel"
)

// invalidMarker is the literal KbuildMiner emits when it could not
// determine a presence condition.
const invalidMarker = "InvalidExpression()"

// maxLineSize bounds a single input line (1 MiB).
const maxLineSize = 1 << 20

// convertLines runs the line-at-a-time conversion loop. Each line is
// fully parsed, rewritten and recorded before the next one is read.
func convertLines(ctx context.Context, r io.Reader, name string, vars *varmodel.Model, cfg convertConfig) (*buildmodel.BuildModel, error) {
	logger := types.Logger{L: cfg.logger}
	logger.Log(slog.LevelDebug, "conversion started", slog.String("source", name))

	model := buildmodel.New()
	if cfg.diagLimit > 0 {
		model.SetDiagnosticLimit(cfg.diagLimit)
	}
	cache := parser.NewVariableCache()
	pcParser := parser.New(cache, componentLogger(cfg.logger, "parser"))

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lineNo := 0
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		lineNo++
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		convertLine(model, pcParser, vars, line, lineNo, logger)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}

	logger.Log(slog.LevelDebug, "conversion complete",
		slog.Int("lines", lineNo),
		slog.Int("files", model.Len()),
		slog.Int("variables", cache.Len()),
		slog.Int("diagnostics", len(model.Diagnostics())))
	return model, nil
}

// convertLine handles one "<path>: <expression>" line. The path always
// receives a False baseline first; a successfully parsed and rewritten
// condition then replaces it.
func convertLine(model *buildmodel.BuildModel, pcParser *parser.Parser, vars *varmodel.Model, line string, lineNo int, logger types.Logger) {
	sep := strings.IndexByte(line, ':')
	if sep < 0 {
		model.Report(buildmodel.Diagnostic{
			Severity: buildmodel.SeverityError,
			Code:     buildmodel.DiagMalformedLine,
			Message:  fmt.Sprintf("missing ':' separator in line %q", line),
			Line:     lineNo,
		})
		return
	}
	path := line[:sep]

	model.Add(path, logic.False)

	// The separator is the two characters ": "; the condition text
	// starts right after it.
	var pc string
	if sep+2 <= len(line) {
		pc = line[sep+2:]
	}

	if logger.TraceEnabled() {
		logger.Trace("converting line",
			slog.Int("line", lineNo),
			slog.String("path", path))
	}

	if strings.Contains(pc, invalidMarker) {
		model.Report(buildmodel.Diagnostic{
			Severity: buildmodel.SeverityWarning,
			Code:     buildmodel.DiagInvalidExpression,
			Message:  fmt.Sprintf("presence condition for file %s is invalid", path),
			Path:     path,
			Line:     lineNo,
		})
		return
	}

	condition, err := pcParser.Parse(pc)
	if err != nil {
		model.Report(buildmodel.Diagnostic{
			Severity: buildmodel.SeverityError,
			Code:     buildmodel.DiagExpressionParse,
			Message:  fmt.Sprintf("cannot parse expression %q: %v", pc, err),
			Path:     path,
			Line:     lineNo,
		})
		return
	}

	condition = rewrite.RemoveNonTristateModules(condition, vars)
	model.Add(path, condition)
}
