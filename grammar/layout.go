package grammar

import (
	"io"
	"strings"

	"github.com/dzonerzy/go-grammar/internal/pool"
)

// Layout policy used when no option overrides it.
const (
	DefaultMargin     = 3
	DefaultLineLength = 97
)

// layout writes word-wrapped, column-aligned text.
type layout struct {
	w          io.Writer
	margin     int
	lineLength int
}

// commandColumn is pass 1 for a command listing: the column at which briefs
// start, shared by every row.
func commandColumn(margin int, commands []*Command) int {
	width := 0
	for _, cmd := range commands {
		width = max(width, 2*margin+len(cmd.DisplayName()))
	}
	return width
}

// parameterColumn is pass 1 for a parameter listing.
func parameterColumn(margin int, params []*Parameter) int {
	width := 0
	for _, p := range params {
		width = max(width, 2*margin+len(parameterIntro(p)))
	}
	return width
}

// parameterIntro is the left column text of a parameter row, without margin.
func parameterIntro(p *Parameter) string {
	if placeholder := p.Placeholder(); placeholder != "" {
		return p.DisplayName() + " " + placeholder
	}
	return p.DisplayName()
}

// row writes one aligned listing entry: name padded to column, then text.
func (l *layout) row(column int, name, text string) {
	intro := strings.Repeat(" ", l.margin) + name
	if pad := column - len(intro); pad > 0 {
		intro += strings.Repeat(" ", pad)
	}
	l.print(column, intro, text)
}

// paragraph writes text indented by the margin on continuation lines.
func (l *layout) paragraph(text string) {
	l.print(l.margin, "", text)
}

// print is pass 2: greedy word wrap of message behind intro. Continuation
// lines are indented by indent spaces. The intro is glued to the first word;
// an intro that alone reaches the line budget gets a line of its own.
func (l *layout) print(indent int, intro, message string) {
	line := pool.GetBuilder()
	defer pool.PutBuilder(line)

	pending := ""
	if len(intro) < l.lineLength {
		pending = intro
	} else {
		l.writeLine(intro)
		line.WriteString(strings.Repeat(" ", indent))
	}

	started := false
	emit := func(word string) {
		if started && line.Len()+len(word)+1 > l.lineLength {
			l.writeLine(line.String())
			line.Reset()
			line.WriteString(strings.Repeat(" ", indent))
			started = false
		}
		if word == "" {
			return
		}
		if started {
			line.WriteByte(' ')
		}
		started = true
		line.WriteString(word)
	}

	words := strings.Fields(message)
	if len(words) == 0 {
		emit(pending)
	} else {
		words[0] = pending + words[0]
		for _, word := range words {
			emit(word)
		}
	}

	if started {
		l.writeLine(line.String())
	}
}

func (l *layout) writeLine(s string) {
	io.WriteString(l.w, s+"\n") //nolint:errcheck // help output is best-effort
}

func (l *layout) blank() {
	l.writeLine("")
}
