package varmodel

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/KernelHaven/KbuildMinerExtractor/internal/testutil"
)

func TestLoadYAML(t *testing.T) {
	input := `
USB: tristate
X86: bool
CMDLINE: string
`
	m, err := LoadYAML(strings.NewReader(input))
	testutil.NoError(t, err)
	testutil.Equal(t, 3, m.Len())

	typ, ok := m.Type("USB")
	testutil.True(t, ok)
	testutil.Equal(t, TypeTristate, typ)

	typ, _ = m.Type("CMDLINE")
	testutil.Equal(t, TypeString, typ)
}

func TestLoadYAMLEmpty(t *testing.T) {
	m, err := LoadYAML(strings.NewReader(""))
	testutil.NoError(t, err)
	testutil.Equal(t, 0, m.Len())
}

func TestLoadYAMLMalformed(t *testing.T) {
	_, err := LoadYAML(strings.NewReader("- not\n- a\n- mapping\n"))
	testutil.Error(t, err, "sequence input should fail")
}

func TestLoadTable(t *testing.T) {
	input := `# Kconfig variable types
USB tristate
X86 bool

CMDLINE string
`
	m, err := LoadTable(strings.NewReader(input))
	testutil.NoError(t, err)
	testutil.Equal(t, 3, m.Len())

	v, ok := m.Get("USB")
	testutil.True(t, ok)
	testutil.True(t, v.IsTristate())
}

func TestLoadTableMalformed(t *testing.T) {
	_, err := LoadTable(strings.NewReader("USB tristate extra\n"))
	testutil.Error(t, err, "three fields should fail")

	_, err = LoadTable(strings.NewReader("LONELY\n"))
	testutil.Error(t, err, "one field should fail")
}

func TestLoadFileByExtension(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "vars.yaml")
	testutil.NoError(t, os.WriteFile(yamlPath, []byte("USB: tristate\n"), 0o644))

	tablePath := filepath.Join(dir, "vars.txt")
	testutil.NoError(t, os.WriteFile(tablePath, []byte("X86 bool\n"), 0o644))

	m, err := LoadFile(yamlPath)
	testutil.NoError(t, err)
	_, ok := m.Get("USB")
	testutil.True(t, ok, "YAML file should load USB")

	m, err = LoadFile(tablePath)
	testutil.NoError(t, err)
	_, ok = m.Get("X86")
	testutil.True(t, ok, "table file should load X86")

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	testutil.Error(t, err, "missing file should fail")
}
