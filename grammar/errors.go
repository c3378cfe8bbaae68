package grammar

import "fmt"

// ErrorType categorizes usage errors found while parsing.
type ErrorType string

const (
	ErrorTypeUnknownCommand     ErrorType = "unknown_command"
	ErrorTypeUnknownParameter   ErrorType = "unknown_parameter"
	ErrorTypeMissingValue       ErrorType = "missing_value"
	ErrorTypeDuplicateParameter ErrorType = "duplicate_parameter"
	ErrorTypeMissingRequired    ErrorType = "missing_required"
	ErrorTypeUnexpectedArgument ErrorType = "unexpected_argument"
)

// ParseError describes why an invocation did not match the grammar.
// It is diagnostic only: Parse still reports a plain boolean.
type ParseError struct {
	Type       ErrorType
	Message    string
	Token      string // offending token or parameter name
	Command    string // identifier of the command being parsed, if any
	Suggestion string // closest known name, if any
}

func (e *ParseError) Error() string {
	return e.Message
}

func newParseError(typ ErrorType, token, format string, args ...any) *ParseError {
	return &ParseError{
		Type:    typ,
		Token:   token,
		Message: fmt.Sprintf(format, args...),
	}
}

// ConfigError reports a grammar that is malformed or could not be loaded.
type ConfigError struct {
	Source string // file name, when loaded from disk
	Err    error
}

func (e *ConfigError) Error() string {
	if e.Source != "" {
		return "grammar " + e.Source + ": " + e.Err.Error()
	}
	return "grammar: " + e.Err.Error()
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
