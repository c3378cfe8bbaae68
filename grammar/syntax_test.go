package grammar

import (
	"errors"
	"strings"
	"testing"
)

func TestParameterNames(t *testing.T) {
	p := Parameter{Identifier: "device", ShortName: "-d", FullName: "--device", Cardinality: 1}
	if got := p.DisplayName(); got != "-d, --device" {
		t.Errorf("DisplayName = %q", got)
	}
	if got := p.UsageName(); got != "-d" {
		t.Errorf("UsageName = %q", got)
	}
	if !p.Matches("--device") || !p.Matches("-d") || p.Matches("") || p.Matches("-x") {
		t.Error("Matches misbehaves")
	}
	if got := p.Placeholder(); got != "<device>" {
		t.Errorf("Placeholder = %q", got)
	}

	long := Parameter{Identifier: "range", FullName: "--range", ValueName: "n", Cardinality: 2}
	if got := long.UsageName(); got != "--range" {
		t.Errorf("UsageName = %q", got)
	}
	if got := long.Placeholder(); got != "<n> <n>" {
		t.Errorf("Placeholder = %q", got)
	}
	if got := long.ValueKey(1); got != "/range/1" {
		t.Errorf("ValueKey = %q", got)
	}

	flag := Parameter{Identifier: "force", ShortName: "-f"}
	if flag.Placeholder() != "" || flag.Key() != "/force" {
		t.Error("flag should have no placeholder and a plain key")
	}
}

func TestSyntaxAddAndFind(t *testing.T) {
	s := loroSyntax()
	if len(s.Commands) != 6 {
		t.Fatalf("expected 6 commands, got %d", len(s.Commands))
	}
	program := s.FindCommandByName("program")
	if program == nil || len(program.Parameters) != 2 {
		t.Fatalf("program should own two parameters, got %+v", program)
	}
	if s.FindCommand("secure") == nil || s.FindCommand("nope") != nil {
		t.Error("FindCommand by identifier misbehaves")
	}
	if p := s.FindParameterByName(program, "-p"); p == nil || !p.Required {
		t.Errorf("expected required -p, got %+v", p)
	}
	if s.FindParameterByName(nil, "-p") != nil {
		t.Error("nil command has no parameters")
	}

	// Parameters are copied on add.
	erase := s.FindCommand("erase")
	erase.Parameters[0].Brief = "changed"
	if program.Parameters[0].Brief == "changed" {
		t.Error("parameters added twice must not share storage")
	}
}

func TestSyntaxValidate(t *testing.T) {
	if err := loroSyntax().Validate(); err != nil {
		t.Fatalf("loro grammar should be valid: %v", err)
	}
	if err := packSyntax().Validate(); err != nil {
		t.Fatalf("pack grammar should be valid: %v", err)
	}

	tests := []struct {
		name   string
		syntax *Syntax
		want   string
	}{
		{
			"orphan parameter",
			NewSyntax("x", "1").AddParameter(Parameter{Identifier: "a", ShortName: "-a"}),
			"1 parameter(s) added before any command",
		},
		{
			"duplicate command identifier",
			NewSyntax("x", "1").
				AddCommand(Command{Identifier: "a", FullName: "one"}).
				AddCommand(Command{Identifier: "a", FullName: "two"}),
			`command "a": duplicate identifier`,
		},
		{
			"duplicate command name",
			NewSyntax("x", "1").
				AddCommand(Command{Identifier: "a", FullName: "run"}).
				AddCommand(Command{Identifier: "b", FullName: "run"}),
			`duplicate name "run"`,
		},
		{
			"reserved command name",
			NewSyntax("x", "1").
				AddCommand(Command{Identifier: "a", FullName: "help"}).
				AddCommand(Command{Identifier: "b", FullName: "b"}),
			`name "help" is reserved`,
		},
		{
			"duplicate parameter identifier",
			NewSyntax("x", "1").
				AddCommand(Command{Identifier: "a"}).
				AddParameter(Parameter{Identifier: "p", ShortName: "-p"}).
				AddParameter(Parameter{Identifier: "p", ShortName: "-q"}),
			`parameter "p": duplicate identifier`,
		},
		{
			"nameless parameter",
			NewSyntax("x", "1").
				AddCommand(Command{Identifier: "a"}).
				AddParameter(Parameter{Identifier: "p"}),
			`parameter "p": no name`,
		},
		{
			"negative cardinality",
			NewSyntax("x", "1").
				AddCommand(Command{Identifier: "a"}).
				AddParameter(Parameter{Identifier: "p", ShortName: "-p", Cardinality: -1}),
			"negative cardinality -1",
		},
		{
			"reserved parameter identifier",
			NewSyntax("x", "1").
				AddCommand(Command{Identifier: "a"}).
				AddParameter(Parameter{Identifier: "command", ShortName: "-c", Cardinality: 1}),
			`parameter "command": identifier is reserved`,
		},
		{
			"nameless command among many",
			NewSyntax("x", "1").
				AddCommand(Command{Identifier: "a"}).
				AddCommand(Command{Identifier: "b", FullName: "b"}),
			`command "a": no name`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.syntax.Validate()
			if err == nil {
				t.Fatal("expected a validation error")
			}
			var cfg *ConfigError
			if !errors.As(err, &cfg) {
				t.Fatalf("expected *ConfigError, got %T", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestValidateReportsEveryProblem(t *testing.T) {
	s := NewSyntax("x", "1").
		AddParameter(Parameter{Identifier: "early", ShortName: "-e"}).
		AddCommand(Command{Identifier: "", FullName: "a"}).
		AddCommand(Command{Identifier: "b", FullName: "a"})

	err := s.Validate()
	if err == nil {
		t.Fatal("expected errors")
	}
	for _, want := range []string{"before any command", "empty identifier", "duplicate name"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("missing %q in %q", want, err)
		}
	}
}
