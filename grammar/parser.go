package grammar

import (
	"github.com/dzonerzy/go-grammar/internal/fuzzy"
)

// suggestDistance is the largest edit distance offered as "did you mean".
const suggestDistance = 2

// Parser matches an argument vector against a Syntax.
//
// The outcome is a single boolean. false means the host should render help:
// either the user asked for it (help/version pseudo-commands, recorded under
// the reserved keys) or the invocation was malformed (Err describes why).
type Parser struct {
	syntax *Syntax
	args   *Arguments

	result *ParseResult
	err    *ParseError
}

// NewParser creates a parser over a grammar and an argument vector.
func NewParser(syntax *Syntax, args *Arguments) *Parser {
	return &Parser{
		syntax: syntax,
		args:   args,
		result: newParseResult(),
	}
}

// Result returns the mapping built by the last Parse call. It is only
// meaningful to the application when Parse returned true.
func (p *Parser) Result() *ParseResult {
	return p.result
}

// Err returns the usage error found by the last Parse call, or nil on success,
// on a bare invocation and when help or version was requested.
func (p *Parser) Err() error {
	if p.err == nil {
		return nil
	}
	return p.err
}

// Parse runs the match. It can be called repeatedly and always starts over.
func (p *Parser) Parse() bool {
	p.reset()

	numberOfCommands := len(p.syntax.Commands)
	selector, present := p.args.At(1)

	if !present && numberOfCommands != 1 {
		return numberOfCommands == 0
	}

	if present && isVersionCommandName(selector) {
		p.parseVersionCommand()
		return false
	}

	if present && isHelpCommandName(selector) {
		p.parseHelpCommand()
		return false
	}

	if numberOfCommands == 1 {
		return p.parseParameters(p.syntax.Commands[0], 1)
	}

	cmd := p.syntax.FindCommandByName(selector)
	if cmd == nil {
		p.fail(newParseError(ErrorTypeUnknownCommand, selector, "unknown command: %s", selector)).
			Suggestion = fuzzy.Suggest(selector, p.commandNames(), suggestDistance)
		return false
	}
	return p.parseParameters(cmd, 2)
}

func (p *Parser) reset() {
	p.result = newParseResult()
	p.err = nil
}

func (p *Parser) fail(err *ParseError) *ParseError {
	p.err = err
	return err
}

// parseVersionCommand records the version request only when nothing follows it.
func (p *Parser) parseVersionCommand() {
	if p.args.Len() == 2 {
		p.result.insert(KeyCommand, VersionCommand)
		return
	}
	p.fail(newParseError(ErrorTypeUnexpectedArgument, p.firstExtra(2),
		"unexpected argument after version: %s", p.firstExtra(2)))
}

// parseHelpCommand records a help request, optionally about one command.
func (p *Parser) parseHelpCommand() {
	switch p.args.Len() {
	case 2:
		p.result.insert(KeyCommand, HelpCommand)
	case 3:
		topic, _ := p.args.At(2)
		if len(p.syntax.Commands) < 2 {
			p.fail(newParseError(ErrorTypeUnexpectedArgument, topic,
				"unexpected argument after help: %s", topic))
			return
		}
		p.result.insert(KeyCommand, HelpCommand)
		if cmd := p.syntax.FindCommandByName(topic); cmd != nil {
			p.result.insert(KeyHelpTopic, cmd.Identifier)
			return
		}
		if isVersionCommandName(topic) {
			p.result.insert(KeyHelpTopic, VersionCommand)
			return
		}
		p.fail(newParseError(ErrorTypeUnknownCommand, topic, "unknown command: %s", topic)).
			Suggestion = fuzzy.Suggest(topic, p.commandNames(), suggestDistance)
	default:
		p.fail(newParseError(ErrorTypeUnexpectedArgument, p.firstExtra(3),
			"unexpected argument after help: %s", p.firstExtra(3)))
	}
}

// parseParameters consumes parameter tokens of cmd starting at index from.
func (p *Parser) parseParameters(cmd *Command, from int) bool {
	if len(p.syntax.Commands) > 1 {
		p.result.insert(KeyCommand, cmd.Identifier)
	}

	numberOfArguments := p.args.Len()
	for index := from; index < numberOfArguments; {
		token, _ := p.args.At(index)
		index++

		param := p.syntax.FindParameterByName(cmd, token)
		if param == nil {
			err := p.fail(newParseError(ErrorTypeUnknownParameter, token, "unknown parameter: %s", token))
			err.Command = cmd.Identifier
			err.Suggestion = fuzzy.Suggest(token, parameterNames(cmd), suggestDistance)
			return false
		}

		if index+param.Cardinality > numberOfArguments {
			p.fail(newParseError(ErrorTypeMissingValue, token,
				"parameter %s requires %d value(s)", token, param.Cardinality)).Command = cmd.Identifier
			return false
		}

		if p.result.Has(param.presenceKey()) {
			p.fail(newParseError(ErrorTypeDuplicateParameter, token,
				"parameter %s specified more than once", token)).Command = cmd.Identifier
			return false
		}

		switch param.Cardinality {
		case 0:
			p.result.insert(param.Key(), "")
		case 1:
			value, _ := p.args.At(index)
			index++
			p.result.insert(param.Key(), value)
		default:
			for i := range param.Cardinality {
				value, _ := p.args.At(index)
				index++
				p.result.insert(param.ValueKey(i), value)
			}
		}
	}

	return p.areAllRequiredParametersSpecified(cmd)
}

func (p *Parser) areAllRequiredParametersSpecified(cmd *Command) bool {
	for _, param := range cmd.Parameters {
		if param.Required && !p.result.Has(param.presenceKey()) {
			name := param.UsageName()
			p.fail(newParseError(ErrorTypeMissingRequired, name,
				"missing required parameter: %s", name)).Command = cmd.Identifier
			return false
		}
	}
	return true
}

func (p *Parser) firstExtra(index int) string {
	token, _ := p.args.At(index)
	return token
}

func (p *Parser) commandNames() []string {
	names := make([]string, 0, len(p.syntax.Commands))
	for _, cmd := range p.syntax.Commands {
		names = append(names, cmd.Names()...)
	}
	return names
}

func parameterNames(cmd *Command) []string {
	names := make([]string, 0, len(cmd.Parameters))
	for _, param := range cmd.Parameters {
		names = append(names, param.Names()...)
	}
	return names
}

func isHelpCommandName(name string) bool {
	return name == "help" || name == "--help" || name == "-h"
}

func isVersionCommandName(name string) bool {
	return name == "version" || name == "--version" || name == "-v"
}
