package grammar

import (
	"errors"
)

// Disposition is the outcome of rendering help.
type Disposition int

const (
	// Success: bare invocation, or help/version explicitly requested.
	Success Disposition = iota
	// UsageError: the invocation was malformed and help is shown as a courtesy.
	UsageError
)

func (d Disposition) String() string {
	switch d {
	case Success:
		return "success"
	case UsageError:
		return "usage_error"
	default:
		return "unknown"
	}
}

// ExitCodeDefaults holds the codes used when no override is defined.
type ExitCodeDefaults struct {
	Success     int // default: 0
	UsageError  int // default: 2
	ConfigError int // default: 78 (EX_CONFIG)
}

func defaultExitDefaults() ExitCodeDefaults {
	return ExitCodeDefaults{Success: 0, UsageError: 2, ConfigError: 78}
}

// ExitCodeManager maps dispositions and errors to process exit codes.
type ExitCodeManager struct {
	codes    map[Disposition]int
	defaults ExitCodeDefaults
}

// NewExitCodeManager returns a manager with the default codes.
func NewExitCodeManager() *ExitCodeManager {
	return &ExitCodeManager{
		codes:    make(map[Disposition]int),
		defaults: defaultExitDefaults(),
	}
}

// Define overrides the exit code of one disposition.
func (e *ExitCodeManager) Define(d Disposition, code int) *ExitCodeManager {
	e.codes[d] = code
	return e
}

// Default replaces the manager's default codes.
func (e *ExitCodeManager) Default(d ExitCodeDefaults) *ExitCodeManager {
	e.defaults = d
	return e
}

// Code converts a disposition to an exit code.
// Precedence: Define override, then defaults.
func (e *ExitCodeManager) Code(d Disposition) int {
	if code, ok := e.codes[d]; ok {
		return code
	}
	if d == Success {
		return e.defaults.Success
	}
	return e.defaults.UsageError
}

// ErrorCode converts a host-side error to an exit code: configuration
// errors map to ConfigError, usage errors to UsageError.
func (e *ExitCodeManager) ErrorCode(err error) int {
	if err == nil {
		return e.Code(Success)
	}
	var cfg *ConfigError
	if errors.As(err, &cfg) {
		return e.defaults.ConfigError
	}
	return e.Code(UsageError)
}
