package varmodel

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadYAML reads a model from a YAML mapping of variable names to type
// tags:
//
//	USB: tristate
//	X86: bool
func LoadYAML(r io.Reader) (*Model, error) {
	var decls map[string]string
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&decls); err != nil {
		if err == io.EOF {
			return New(), nil
		}
		return nil, fmt.Errorf("decoding variability model: %w", err)
	}

	m := New()
	for name, typ := range decls {
		m.Put(Variable{Name: name, Type: typ})
	}
	return m, nil
}

// LoadTable reads a model from whitespace-separated "NAME TYPE" lines.
// Blank lines and lines starting with '#' are skipped.
func LoadTable(r io.Reader) (*Model, error) {
	m := New()
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("line %d: expected \"NAME TYPE\", got %q", lineNo, line)
		}
		m.Put(Variable{Name: fields[0], Type: fields[1]})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading variability model: %w", err)
	}
	return m, nil
}

// LoadFile reads a model from a file, choosing the format by extension:
// .yaml/.yml use LoadYAML, everything else uses LoadTable.
func LoadFile(path string) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		return LoadYAML(f)
	}
	return LoadTable(f)
}
