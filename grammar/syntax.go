package grammar

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Parameter is a named flag belonging to exactly one Command.
type Parameter struct {
	Identifier string // Result key, unique within the owning command
	ShortName  string // e.g. "-d"
	FullName   string // e.g. "--device"
	ValueName  string // Placeholder shown in help; defaults to Identifier
	Brief      string
	Remarks    string
	Required   bool

	// Cardinality is the number of value tokens consumed after the name:
	// 0 for a plain flag, 1 for a single value, N for a fixed-arity list.
	Cardinality int
}

// Names returns the non-empty names of the parameter, short first.
func (p *Parameter) Names() []string {
	return nonEmpty(p.ShortName, p.FullName)
}

// Matches reports whether token is one of the parameter's names.
func (p *Parameter) Matches(token string) bool {
	return token != "" && (token == p.ShortName || token == p.FullName)
}

// DisplayName joins the names as shown in help ("-d, --device").
func (p *Parameter) DisplayName() string {
	return strings.Join(p.Names(), ", ")
}

// UsageName is the single name used in the synthesized usage line.
func (p *Parameter) UsageName() string {
	if p.ShortName != "" {
		return p.ShortName
	}
	return p.FullName
}

// Placeholder returns the value placeholder, one "<name>" per consumed token.
func (p *Parameter) Placeholder() string {
	if p.Cardinality <= 0 {
		return ""
	}
	name := p.ValueName
	if name == "" {
		name = p.Identifier
	}
	one := "<" + name + ">"
	if p.Cardinality == 1 {
		return one
	}
	return strings.TrimSuffix(strings.Repeat(one+" ", p.Cardinality), " ")
}

// Key is the result key recorded when a single-valued parameter matches.
func (p *Parameter) Key() string {
	return "/" + p.Identifier
}

// ValueKey is the result key of the i-th value of a multi-value parameter.
func (p *Parameter) ValueKey(i int) string {
	return "/" + p.Identifier + "/" + strconv.Itoa(i)
}

// presenceKey is the key whose existence means the parameter was given.
// Multi-value parameters never record their plain key.
func (p *Parameter) presenceKey() string {
	if p.Cardinality > 1 {
		return p.ValueKey(0)
	}
	return p.Key()
}

// Command is a named sub-grammar with an ordered parameter list.
type Command struct {
	Identifier string
	ShortName  string
	FullName   string
	Brief      string
	Remarks    string

	Parameters []*Parameter
}

// Names returns the non-empty names of the command, short first.
func (c *Command) Names() []string {
	return nonEmpty(c.ShortName, c.FullName)
}

// Matches reports whether token selects this command.
func (c *Command) Matches(token string) bool {
	return token != "" && (token == c.ShortName || token == c.FullName)
}

// DisplayName joins the names as listed in help ("ls, list").
func (c *Command) DisplayName() string {
	return strings.Join(c.Names(), ", ")
}

// UsageName is the single name used in usage lines, full name first.
func (c *Command) UsageName() string {
	if c.FullName != "" {
		return c.FullName
	}
	return c.ShortName
}

// Syntax is the whole grammar of one tool.
type Syntax struct {
	ProgramName    string
	ProgramVersion string
	Commands       []*Command

	orphans int // parameters added before any command
}

// NewSyntax creates an empty grammar.
func NewSyntax(programName, programVersion string) *Syntax {
	return &Syntax{
		ProgramName:    programName,
		ProgramVersion: programVersion,
		Commands:       make([]*Command, 0),
	}
}

// AddCommand appends a command. Subsequent AddParameter calls attach to it.
func (s *Syntax) AddCommand(cmd Command) *Syntax {
	c := cmd
	c.Parameters = append([]*Parameter(nil), cmd.Parameters...)
	s.Commands = append(s.Commands, &c)
	return s
}

// AddParameter appends a parameter to the most recently added command.
// Without a command it is dropped; Validate reports the drop.
func (s *Syntax) AddParameter(param Parameter) *Syntax {
	if len(s.Commands) == 0 {
		s.orphans++
		return s
	}
	p := param
	last := s.Commands[len(s.Commands)-1]
	last.Parameters = append(last.Parameters, &p)
	return s
}

// FindCommandByName returns the first command whose short or full name is token.
func (s *Syntax) FindCommandByName(token string) *Command {
	for _, cmd := range s.Commands {
		if cmd.Matches(token) {
			return cmd
		}
	}
	return nil
}

// FindCommand returns the first command with the given identifier.
func (s *Syntax) FindCommand(identifier string) *Command {
	for _, cmd := range s.Commands {
		if cmd.Identifier == identifier {
			return cmd
		}
	}
	return nil
}

// FindParameterByName returns the first parameter of cmd named token.
func (s *Syntax) FindParameterByName(cmd *Command, token string) *Parameter {
	if cmd == nil {
		return nil
	}
	for _, p := range cmd.Parameters {
		if p.Matches(token) {
			return p
		}
	}
	return nil
}

// Validate checks the grammar for construction mistakes the parser does not
// guard against. All problems are reported at once.
//
//nolint:gocognit // One pass over commands and parameters keeps the rules together.
func (s *Syntax) Validate() error {
	var errs []error
	if s.orphans > 0 {
		errs = append(errs, fmt.Errorf("%d parameter(s) added before any command", s.orphans))
	}

	commandIDs := make(map[string]bool)
	commandNames := make(map[string]bool)
	for i, cmd := range s.Commands {
		where := fmt.Sprintf("command #%d", i+1)
		if cmd.Identifier == "" {
			errs = append(errs, fmt.Errorf("%s: empty identifier", where))
		} else {
			where = fmt.Sprintf("command %q", cmd.Identifier)
			if commandIDs[cmd.Identifier] {
				errs = append(errs, fmt.Errorf("%s: duplicate identifier", where))
			}
			commandIDs[cmd.Identifier] = true
		}
		if len(cmd.Names()) == 0 && len(s.Commands) > 1 {
			errs = append(errs, fmt.Errorf("%s: no name", where))
		}
		for _, name := range cmd.Names() {
			if commandNames[name] {
				errs = append(errs, fmt.Errorf("%s: duplicate name %q", where, name))
			}
			commandNames[name] = true
			if len(s.Commands) > 1 && (isHelpCommandName(name) || isVersionCommandName(name)) {
				errs = append(errs, fmt.Errorf("%s: name %q is reserved", where, name))
			}
		}
		errs = append(errs, validateParameters(where, cmd.Parameters)...)
	}

	if len(errs) == 0 {
		return nil
	}
	return &ConfigError{Err: errors.Join(errs...)}
}

func validateParameters(where string, params []*Parameter) []error {
	var errs []error
	ids := make(map[string]bool)
	names := make(map[string]bool)
	for j, p := range params {
		pwhere := fmt.Sprintf("%s: parameter #%d", where, j+1)
		if p.Identifier == "" {
			errs = append(errs, fmt.Errorf("%s: empty identifier", pwhere))
		} else {
			pwhere = fmt.Sprintf("%s: parameter %q", where, p.Identifier)
			if p.Key() == KeyHelpTopic {
				errs = append(errs, fmt.Errorf("%s: identifier is reserved", pwhere))
			}
			if ids[p.Identifier] {
				errs = append(errs, fmt.Errorf("%s: duplicate identifier", pwhere))
			}
			ids[p.Identifier] = true
		}
		if len(p.Names()) == 0 {
			errs = append(errs, fmt.Errorf("%s: no name", pwhere))
		}
		for _, name := range p.Names() {
			if names[name] {
				errs = append(errs, fmt.Errorf("%s: duplicate name %q", pwhere, name))
			}
			names[name] = true
		}
		if p.Cardinality < 0 {
			errs = append(errs, fmt.Errorf("%s: negative cardinality %d", pwhere, p.Cardinality))
		}
	}
	return errs
}

func nonEmpty(values ...string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
