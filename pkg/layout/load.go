package layout

import (
	"embed"
	"fmt"
	"strings"

	"github.com/chazu/fabgen/pkg/engine"
)

//go:embed tables/*.zy
var tablesFS embed.FS

// Parse evaluates source and decodes the single table named name into dst.
func Parse(name, source string, dst any) error {
	tables, evalErrs, err := engine.NewEngine().Evaluate(source)
	if err != nil {
		return fmt.Errorf("layout: %s: %w", name, err)
	}
	if len(evalErrs) > 0 {
		return fmt.Errorf("layout: %s: %w", name, evalErrs[0])
	}
	if len(tables) != 1 {
		return fmt.Errorf("layout: %s: script declares %d tables, want 1", name, len(tables))
	}
	if tables[0].Name != name {
		return fmt.Errorf("layout: script declares %q, want %q", tables[0].Name, name)
	}
	return Decode(tables[0], dst)
}

// Source returns the embedded script for a model.
func Source(name string) (string, error) {
	b, err := tablesFS.ReadFile("tables/" + strings.ToLower(name) + ".zy")
	if err != nil {
		return "", fmt.Errorf("layout: no table for %s: %w", name, err)
	}
	return string(b), nil
}

// Load evaluates the embedded table for a model into dst.
func Load(name string, dst any) error {
	src, err := Source(name)
	if err != nil {
		return err
	}
	return Parse(name, src, dst)
}

// LoadAll loads every model layout.
func LoadAll() (Tables, error) {
	var t Tables
	targets := []struct {
		name string
		dst  any
	}{
		{"EUV", &t.EUV},
		{"CVD", &t.CVD},
		{"CMP", &t.CMP},
		{"ETCH", &t.Etch},
		{"SEM", &t.SEM},
	}
	for _, target := range targets {
		if err := Load(target.name, target.dst); err != nil {
			return Tables{}, err
		}
	}
	return t, nil
}
