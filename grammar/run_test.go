package grammar

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	grammario "github.com/dzonerzy/go-grammar/io"
)

func quietIO() (*grammario.IOManager, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return grammario.New().WithOut(&out).WithErr(&errOut).NoColor(), &out, &errOut
}

func TestProcess(t *testing.T) {
	tests := []struct {
		name   string
		syntax *Syntax
		argv   []string
		code   int
		ok     bool
	}{
		{"match", loroSyntax(), []string{"loro", "erase", "-d", "dev0"}, 0, true},
		{"bare", loroSyntax(), []string{"loro"}, 0, false},
		{"help", loroSyntax(), []string{"loro", "help", "erase"}, 0, false},
		{"version", loroSyntax(), []string{"loro", "--version"}, 0, false},
		{"usage error", loroSyntax(), []string{"loro", "erase", "-x"}, 2, false},
		{"invalid grammar", NewSyntax("x", "1").AddParameter(Parameter{Identifier: "a", ShortName: "-a"}), []string{"x"}, 78, false},
		{"no commands", NewSyntax("x", "1"), []string{"x"}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _, _ := quietIO()
			result, code, ok := Process(tt.syntax, tt.argv, WithIO(m))
			if code != tt.code || ok != tt.ok {
				t.Errorf("Process = (%d, %v), want (%d, %v)", code, ok, tt.code, tt.ok)
			}
			if ok && result == nil {
				t.Error("a successful parse must return its result")
			}
		})
	}
}

func TestProcessCustomExitCodes(t *testing.T) {
	m, out, errOut := quietIO()
	codes := NewExitCodeManager().Define(UsageError, 64)

	_, code, _ := Process(loroSyntax(), []string{"loro", "flsh"}, WithIO(m), WithExitCodes(codes))
	if code != 64 {
		t.Errorf("expected 64, got %d", code)
	}
	if !strings.Contains(out.String(), "Commands:") {
		t.Errorf("expected generic help on stdout, got %q", out.String())
	}
	if !strings.Contains(errOut.String(), "unknown command: flsh") {
		t.Errorf("expected the error on stderr, got %q", errOut.String())
	}
}

func TestProcessReportsInvalidGrammar(t *testing.T) {
	m, out, errOut := quietIO()
	s := NewSyntax("x", "1").
		AddCommand(Command{Identifier: "a", FullName: "run"}).
		AddCommand(Command{Identifier: "a", FullName: "walk"})

	if _, _, ok := Process(s, []string{"x", "run"}, WithIO(m)); ok {
		t.Fatal("an invalid grammar must not parse")
	}
	if out.Len() != 0 {
		t.Errorf("no help is rendered for an invalid grammar, got %q", out.String())
	}
	if !strings.HasPrefix(errOut.String(), "[ERROR] grammar: ") {
		t.Errorf("unexpected diagnostics %q", errOut.String())
	}
}

func TestExitCodeManager(t *testing.T) {
	m := NewExitCodeManager()
	if m.Code(Success) != 0 || m.Code(UsageError) != 2 {
		t.Errorf("unexpected defaults %d/%d", m.Code(Success), m.Code(UsageError))
	}
	if m.ErrorCode(nil) != 0 {
		t.Error("nil error maps to success")
	}
	if m.ErrorCode(&ConfigError{Err: errors.New("bad")}) != 78 {
		t.Error("config errors map to 78")
	}
	if m.ErrorCode(&ParseError{Type: ErrorTypeUnknownCommand}) != 2 {
		t.Error("parse errors map to the usage code")
	}

	m.Default(ExitCodeDefaults{Success: 0, UsageError: 1, ConfigError: 3})
	if m.Code(UsageError) != 1 || m.ErrorCode(&ConfigError{Err: errors.New("bad")}) != 3 {
		t.Error("Default did not replace the codes")
	}
	if m.Define(Success, 10).Code(Success) != 10 {
		t.Error("Define should override")
	}
	if Disposition(9).String() != "unknown" || UsageError.String() != "usage_error" {
		t.Error("unexpected disposition names")
	}
}
