package buildmodel

import (
	"testing"

	"github.com/KernelHaven/KbuildMinerExtractor/internal/testutil"
	"github.com/KernelHaven/KbuildMinerExtractor/logic"
)

func TestAddReplaces(t *testing.T) {
	b := New()
	path := "drivers/usb/core/usb.c"

	b.Add(path, logic.False)
	testutil.True(t, b.Get(path) == logic.False, "baseline should be False")

	cond := logic.NewVariable("USB")
	b.Add(path, cond)
	testutil.True(t, b.Get(path) == logic.Formula(cond), "second add should replace the baseline")
	testutil.Equal(t, 1, b.Len())
}

func TestGetUnknownPath(t *testing.T) {
	b := New()
	if b.Get("nope.c") != nil {
		t.Error("unknown path should yield nil")
	}
	testutil.False(t, b.Contains("nope.c"))
}

func TestFilesFirstSeenOrder(t *testing.T) {
	b := New()
	b.Add("c.c", logic.False)
	b.Add("a.c", logic.False)
	b.Add("b.c", logic.False)
	// replacing must not move a path to the back
	b.Add("c.c", logic.NewVariable("X"))

	var paths []string
	for path, cond := range b.Files() {
		paths = append(paths, path)
		if path == "c.c" {
			testutil.Equal(t, "X", cond.String())
		}
	}
	want := []string{"c.c", "a.c", "b.c"}
	for i := range want {
		testutil.Equal(t, want[i], paths[i], "position %d", i)
	}
}

func TestDiagnostics(t *testing.T) {
	b := New()
	testutil.Len(t, b.Diagnostics(), 0)

	b.Report(Diagnostic{
		Severity: SeverityWarning,
		Code:     DiagInvalidExpression,
		Message:  "presence condition for file drivers/x.c is invalid",
		Path:     "drivers/x.c",
		Line:     12,
	})
	b.Report(Diagnostic{
		Severity: SeverityError,
		Code:     DiagExpressionParse,
		Message:  "cannot parse",
	})

	diags := b.Diagnostics()
	testutil.Len(t, diags, 2)
	testutil.Equal(t, SeverityWarning, diags[0].Severity)
	testutil.Equal(t, SeverityError, diags[1].Severity)
}

func TestDiagnosticLimit(t *testing.T) {
	b := New()
	b.SetDiagnosticLimit(2)

	for i := 1; i <= 4; i++ {
		b.Report(Diagnostic{
			Severity: SeverityError,
			Code:     DiagExpressionParse,
			Message:  "cannot parse",
			Line:     i,
		})
	}

	diags := b.Diagnostics()
	testutil.Len(t, diags, 2)
	// the first reports are kept, later ones are dropped
	testutil.Equal(t, 1, diags[0].Line)
	testutil.Equal(t, 2, diags[1].Line)
}

func TestDiagnosticLimitUnlimitedByDefault(t *testing.T) {
	b := New()
	for i := 0; i < 10; i++ {
		b.Report(Diagnostic{Severity: SeverityError, Message: "boom"})
	}
	testutil.Len(t, b.Diagnostics(), 10)
}

func TestDiagnosticString(t *testing.T) {
	tests := []struct {
		name string
		diag Diagnostic
		want string
	}{
		{
			"full location",
			Diagnostic{Severity: SeverityWarning, Message: "is invalid", Path: "drivers/x.c", Line: 12},
			"[warning] drivers/x.c:12: is invalid",
		},
		{
			"no line",
			Diagnostic{Severity: SeverityError, Message: "boom", Path: "a.c"},
			"[error] a.c: boom",
		},
		{
			"no location",
			Diagnostic{Severity: SeverityError, Message: "boom"},
			"[error] boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.Equal(t, tt.want, tt.diag.String())
		})
	}
}

func TestSeverityString(t *testing.T) {
	testutil.Equal(t, "error", SeverityError.String())
	testutil.Equal(t, "warning", SeverityWarning.String())
	testutil.Equal(t, "info", SeverityInfo.String())
	testutil.Equal(t, "unknown", Severity(42).String())
}
