package grammar

import (
	"errors"

	"github.com/dzonerzy/go-grammar/internal/pool"
	grammario "github.com/dzonerzy/go-grammar/io"
)

// HelpOption configures a Help renderer.
type HelpOption func(*Help)

// WithIO sets where help text (stdout) and diagnostics (stderr) are written.
func WithIO(m *grammario.IOManager) HelpOption {
	return func(h *Help) { h.io = m }
}

// WithLogger sets the logger used to report the parse error behind a help render.
func WithLogger(l *grammario.Logger) HelpOption {
	return func(h *Help) { h.logger = l }
}

// WithExitCodes sets the mapping from dispositions to process exit codes.
func WithExitCodes(m *ExitCodeManager) HelpOption {
	return func(h *Help) { h.exitCodes = m }
}

// WithMargin overrides the left margin of listings.
func WithMargin(margin int) HelpOption {
	return func(h *Help) { h.margin = margin }
}

// WithLineLength overrides the word-wrap budget.
func WithLineLength(n int) HelpOption {
	return func(h *Help) { h.lineLength = n }
}

// Help renders help text for a failed (or help/version) parse.
type Help struct {
	syntax *Syntax
	parser *Parser
	args   *Arguments

	io         *grammario.IOManager
	logger     *grammario.Logger
	exitCodes  *ExitCodeManager
	margin     int
	lineLength int
}

// NewHelp creates a renderer. It never mutates the grammar or the parser.
func NewHelp(syntax *Syntax, parser *Parser, args *Arguments, opts ...HelpOption) *Help {
	h := &Help{
		syntax:     syntax,
		parser:     parser,
		args:       args,
		margin:     DefaultMargin,
		lineLength: DefaultLineLength,
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.io == nil {
		h.io = grammario.New()
	}
	if h.logger == nil {
		h.logger = grammario.NewLogger(h.io)
	}
	if h.exitCodes == nil {
		h.exitCodes = NewExitCodeManager()
	}
	return h
}

// ExitCodes returns the exit code mapping used by Process.
func (h *Help) ExitCodes() *ExitCodeManager {
	return h.exitCodes
}

// Run prints the help selected by the parse result and returns the disposition.
func (h *Help) Run() Disposition {
	result := h.parser.Result()
	out := &layout{w: h.io.Out(), margin: h.margin, lineLength: h.lineLength}

	h.reportError()

	selected, _ := result.Command()
	if selected == VersionCommand {
		out.writeLine(h.syntax.ProgramVersion)
		return Success
	}

	if cmd := h.topic(selected); cmd != nil {
		h.printCommandHelp(out, cmd)
	} else {
		h.printGenericHelp(out)
	}

	if selected == HelpCommand || h.args.Len() <= 1 {
		return Success
	}
	return UsageError
}

// topic returns the command help was requested for. "/command" only counts
// next to "/" = "help"; anything else falls back to generic help.
func (h *Help) topic(selected string) *Command {
	if selected != HelpCommand {
		return nil
	}
	topic, ok := h.parser.Result().HelpTopic()
	if !ok || topic == VersionCommand {
		return nil
	}
	return h.syntax.FindCommand(topic)
}

// reportError logs why the parse failed. A bare invocation is not an error.
func (h *Help) reportError() {
	var perr *ParseError
	if h.args.Len() <= 1 || !errors.As(h.parser.Err(), &perr) {
		return
	}
	h.logger.Error("%s", perr.Message)
	if perr.Suggestion != "" {
		h.logger.Warning("Did you mean '%s'?", perr.Suggestion)
	}
}

func (h *Help) title(out *layout) {
	out.paragraph(h.syntax.ProgramName + ", version: " + h.syntax.ProgramVersion)
}

func (h *Help) header(out *layout, text string) {
	out.writeLine(h.io.Bold(text))
}

func (h *Help) printGenericHelp(out *layout) {
	if len(h.syntax.Commands) == 1 {
		h.printCommandHelp(out, h.syntax.Commands[0])
		return
	}

	exe := h.args.Program()
	h.title(out)

	if len(h.syntax.Commands) == 0 {
		out.paragraph("Usage: " + exe + " [--version] [--help]")
		return
	}

	out.paragraph("Usage: " + exe + " [--version] [--help] <command> [<args>]")
	out.blank()
	h.header(out, "Commands:")
	column := commandColumn(h.margin, h.syntax.Commands)
	for _, cmd := range h.syntax.Commands {
		out.row(column, cmd.DisplayName(), cmd.Brief)
	}

	out.blank()
	out.paragraph("See '" + exe + " help <command>' to read about specific command.")
}

func (h *Help) printCommandHelp(out *layout, cmd *Command) {
	h.title(out)
	out.paragraph(h.usage(cmd))

	if cmd.Remarks != "" {
		out.blank()
		out.paragraph(cmd.Remarks)
	}

	if len(cmd.Parameters) == 0 {
		return
	}

	out.blank()
	h.header(out, "Command parameters:")
	column := parameterColumn(h.margin, cmd.Parameters)
	for _, p := range cmd.Parameters {
		text := p.Brief
		if text == "" {
			text = p.Remarks
		}
		out.row(column, parameterIntro(p), text)
	}
}

// usage folds the command's parameters into a synopsis line.
func (h *Help) usage(cmd *Command) string {
	line := pool.GetBuilder()
	defer pool.PutBuilder(line)

	line.WriteString("Usage: ")
	line.WriteString(h.args.Program())
	if len(h.syntax.Commands) > 1 {
		line.WriteString(" " + cmd.UsageName())
	}

	for _, p := range cmd.Parameters {
		brief := p.UsageName()
		if placeholder := p.Placeholder(); placeholder != "" {
			brief += " " + placeholder
		}
		if p.Required {
			line.WriteString(" <" + brief + ">")
		} else {
			line.WriteString(" [" + brief + "]")
		}
	}
	return line.String()
}
