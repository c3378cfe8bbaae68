package grammar

import "strings"

// Arguments is a read-only view over the process argument vector.
// Token 0 is the program path and is never matched against the grammar.
type Arguments struct {
	argv []string
}

// NewArguments wraps argv. The slice is copied.
func NewArguments(argv []string) *Arguments {
	return &Arguments{argv: append([]string(nil), argv...)}
}

// Len returns the number of tokens including the program path.
func (a *Arguments) Len() int {
	return len(a.argv)
}

// At returns the token at index, or false when index is out of range.
func (a *Arguments) At(index int) (string, bool) {
	if index < 0 || index >= len(a.argv) {
		return "", false
	}
	return a.argv[index], true
}

// Tail returns the tokens from index on.
func (a *Arguments) Tail(from int) []string {
	if from >= len(a.argv) {
		return nil
	}
	return append([]string(nil), a.argv[from:]...)
}

// Program returns the invocable name: token 0 without its directory part.
func (a *Arguments) Program() string {
	path, ok := a.At(0)
	if !ok {
		return ""
	}
	if i := strings.LastIndexByte(path, '/'); i >= 0 {
		return path[i+1:]
	}
	if i := strings.LastIndexByte(path, '\\'); i >= 0 {
		return path[i+1:]
	}
	return path
}
