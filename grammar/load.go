package grammar

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// grammarFile is the on-disk form of a Syntax.
type grammarFile struct {
	Program  string        `yaml:"program" toml:"program"`
	Version  string        `yaml:"version" toml:"version"`
	Commands []commandFile `yaml:"commands" toml:"commands"`
}

type commandFile struct {
	ID         string          `yaml:"id" toml:"id"`
	Name       string          `yaml:"name" toml:"name"`
	Short      string          `yaml:"short" toml:"short"`
	Brief      string          `yaml:"brief" toml:"brief"`
	Remarks    string          `yaml:"remarks" toml:"remarks"`
	Parameters []parameterFile `yaml:"parameters" toml:"parameters"`
}

type parameterFile struct {
	ID       string `yaml:"id" toml:"id"`
	Short    string `yaml:"short" toml:"short"`
	Name     string `yaml:"name" toml:"name"`
	Value    string `yaml:"value" toml:"value"`
	Brief    string `yaml:"brief" toml:"brief"`
	Remarks  string `yaml:"remarks" toml:"remarks"`
	Required bool   `yaml:"required" toml:"required"`
	Values   int    `yaml:"values" toml:"values"`
}

// LoadYAML reads a grammar declared in YAML. JSON documents are accepted too.
func LoadYAML(r io.Reader) (*Syntax, error) {
	var f grammarFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &ConfigError{Err: errors.New("empty document")}
		}
		return nil, &ConfigError{Err: err}
	}
	return f.syntax()
}

// LoadTOML reads a grammar declared in TOML. Commands are a [[commands]]
// array and parameters a nested [[commands.parameters]] array.
func LoadTOML(r io.Reader) (*Syntax, error) {
	var f grammarFile
	md, err := toml.NewDecoder(r).Decode(&f)
	if err != nil {
		return nil, &ConfigError{Err: err}
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return nil, &ConfigError{Err: fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))}
	}
	return f.syntax()
}

// LoadFile reads a grammar file, picking the decoder by extension.
func LoadFile(path string) (*Syntax, error) {
	var load func(io.Reader) (*Syntax, error)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml", ".json":
		load = LoadYAML
	case ".toml":
		load = LoadTOML
	default:
		return nil, &ConfigError{Source: path, Err: fmt.Errorf("unsupported format %q", ext)}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &ConfigError{Source: path, Err: err}
	}
	defer f.Close()

	syntax, err := load(f)
	if err != nil {
		var cfg *ConfigError
		if errors.As(err, &cfg) && cfg.Source == "" {
			cfg.Source = path
		}
		return nil, err
	}
	return syntax, nil
}

func (f *grammarFile) syntax() (*Syntax, error) {
	s := NewSyntax(f.Program, f.Version)
	for _, c := range f.Commands {
		s.AddCommand(Command{
			Identifier: c.ID,
			ShortName:  c.Short,
			FullName:   c.Name,
			Brief:      c.Brief,
			Remarks:    c.Remarks,
		})
		for _, p := range c.Parameters {
			s.AddParameter(Parameter{
				Identifier:  p.ID,
				ShortName:   p.Short,
				FullName:    p.Name,
				ValueName:   p.Value,
				Brief:       p.Brief,
				Remarks:     p.Remarks,
				Required:    p.Required,
				Cardinality: p.Values,
			})
		}
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}
