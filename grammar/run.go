package grammar

import (
	"os"
	"runtime"
)

// Process validates the grammar, parses argv and, when the parse fails,
// renders help. It returns the result, the exit code the host should use and
// whether the application should go on running.
func Process(syntax *Syntax, argv []string, opts ...HelpOption) (*ParseResult, int, bool) {
	args := NewArguments(argv)
	parser := NewParser(syntax, args)
	help := NewHelp(syntax, parser, args, opts...)

	// Windows: enable ANSI so bold headers render
	if runtime.GOOS == "windows" && help.io.IsTTY() && os.Getenv("NO_COLOR") == "" {
		_ = help.io.EnableVirtualTerminal()
	}

	if err := syntax.Validate(); err != nil {
		help.logger.Error("%v", err)
		return nil, help.exitCodes.ErrorCode(err), false
	}

	if parser.Parse() {
		return parser.Result(), help.exitCodes.Code(Success), true
	}
	return parser.Result(), help.exitCodes.Code(help.Run()), false
}

// ParseOrExit parses os.Args and terminates the process with the mapped exit
// code whenever help was shown. On success it returns the result.
func ParseOrExit(syntax *Syntax, opts ...HelpOption) *ParseResult {
	result, code, ok := Process(syntax, os.Args, opts...)
	if !ok {
		os.Exit(code)
	}
	return result
}
