// Package corpus loads and runs table-driven formatting test suites.
// A suite is a YAML file of (template, args, expected) triples used to
// validate the engine, grouped and named like "string.simple".
package corpus

import (
	"embed"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"unicode/utf8"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/fmtkit/bracefmt/pkg/format"
)

//go:embed testdata/*.yml
var builtin embed.FS

// Case is one formatting check. Args are decoded from YAML scalars
// (integers, floats, strings, booleans); the single-key mappings
// {char: c} and {uint: n} select the character and unsigned kinds,
// which plain YAML scalars cannot express. Either Want or Error is
// set: Error names the ErrorCode the strict contract must report.
type Case struct {
	Template string        `yaml:"template"`
	Args     []interface{} `yaml:"args"`
	Want     string        `yaml:"want"`
	Error    string        `yaml:"error,omitempty"`
	Lenient  bool          `yaml:"lenient,omitempty"`
}

// Suite is a named group of cases (string.simple, sint.simple, ...).
type Suite struct {
	Name  string `yaml:"name"`
	Cases []Case `yaml:"cases"`
}

// Load reads one suite from a YAML file on disk.
func Load(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading suite %s", path)
	}
	return decode(path, data)
}

// LoadDir loads every .yml/.yaml file in dir, sorted by name.
func LoadDir(dir string) ([]*Suite, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "reading suite directory %s", dir)
	}
	var suites []*Suite
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch filepath.Ext(e.Name()) {
		case ".yml", ".yaml":
			s, err := Load(filepath.Join(dir, e.Name()))
			if err != nil {
				return nil, err
			}
			suites = append(suites, s)
		}
	}
	sort.Slice(suites, func(i, j int) bool { return suites[i].Name < suites[j].Name })
	return suites, nil
}

// Builtin returns the suites embedded in the binary.
func Builtin() ([]*Suite, error) {
	var suites []*Suite
	err := fs.WalkDir(builtin, "testdata", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := builtin.ReadFile(path)
		if err != nil {
			return errors.Wrapf(err, "reading embedded suite %s", path)
		}
		s, err := decode(path, data)
		if err != nil {
			return err
		}
		suites = append(suites, s)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(suites, func(i, j int) bool { return suites[i].Name < suites[j].Name })
	return suites, nil
}

func decode(path string, data []byte) (*Suite, error) {
	var s Suite
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, errors.Wrapf(err, "decoding suite %s", path)
	}
	if s.Name == "" {
		return nil, errors.Errorf("suite %s has no name", path)
	}
	for i := range s.Cases {
		args, err := convertArgs(s.Cases[i].Args)
		if err != nil {
			return nil, errors.Wrapf(err, "suite %s case %d", path, i)
		}
		s.Cases[i].Args = args
	}
	return &s, nil
}

// convertArgs rewrites the tagged single-key mappings into the typed
// values the engine distinguishes.
func convertArgs(args []interface{}) ([]interface{}, error) {
	out := make([]interface{}, len(args))
	for i, a := range args {
		m, ok := a.(map[string]interface{})
		if !ok {
			out[i] = a
			continue
		}
		if len(m) != 1 {
			return nil, errors.Errorf("argument %d: tagged mapping must have one key", i)
		}
		if c, ok := m["char"]; ok {
			s, ok := c.(string)
			if !ok || utf8.RuneCountInString(s) != 1 {
				return nil, errors.Errorf("argument %d: char wants a one-rune string, got %v", i, c)
			}
			r, _ := utf8.DecodeRuneInString(s)
			out[i] = format.Char(r)
			continue
		}
		if u, ok := m["uint"]; ok {
			n, ok := u.(int)
			if !ok || n < 0 {
				return nil, errors.Errorf("argument %d: uint wants a nonnegative integer, got %v", i, u)
			}
			out[i] = uint64(n)
			continue
		}
		return nil, errors.Errorf("argument %d: unknown tag in %v", i, m)
	}
	return out, nil
}
