package grammar

import (
	"iter"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Reserved result keys.
const (
	KeyCommand   = "/"        // matched command identifier, or "help"/"version"
	KeyHelpTopic = "/command" // command identifier help was requested for

	HelpCommand    = "help"
	VersionCommand = "version"
)

// ParseResult is the ordered key/value mapping produced by one parse.
// Iteration order is insertion order.
type ParseResult struct {
	entries *orderedmap.OrderedMap[string, string]
}

func newParseResult() *ParseResult {
	return &ParseResult{entries: orderedmap.New[string, string]()}
}

// insert stores value under key unless the key is already present.
func (r *ParseResult) insert(key, value string) bool {
	if _, exists := r.entries.Get(key); exists {
		return false
	}
	r.entries.Set(key, value)
	return true
}

// Get returns the value stored under key.
func (r *ParseResult) Get(key string) (string, bool) {
	if r == nil {
		return "", false
	}
	return r.entries.Get(key)
}

// Has reports whether key is present.
func (r *ParseResult) Has(key string) bool {
	_, ok := r.Get(key)
	return ok
}

// Len returns the number of entries.
func (r *ParseResult) Len() int {
	if r == nil {
		return 0
	}
	return r.entries.Len()
}

// All yields the entries in insertion order. Each call starts over.
func (r *ParseResult) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		if r == nil {
			return
		}
		for pair := r.entries.Oldest(); pair != nil; pair = pair.Next() {
			if !yield(pair.Key, pair.Value) {
				return
			}
		}
	}
}

// Keys returns the keys in insertion order.
func (r *ParseResult) Keys() []string {
	keys := make([]string, 0, r.Len())
	for k := range r.All() {
		keys = append(keys, k)
	}
	return keys
}

// Command returns the value of the "/" key.
func (r *ParseResult) Command() (string, bool) {
	return r.Get(KeyCommand)
}

// HelpTopic returns the value of the "/command" key.
func (r *ParseResult) HelpTopic() (string, bool) {
	return r.Get(KeyHelpTopic)
}

// Lookup returns the value of a single-valued parameter by identifier.
// Flags (cardinality 0) report an empty value and true when given.
func (r *ParseResult) Lookup(identifier string) (string, bool) {
	return r.Get("/" + identifier)
}

// Values returns the values of a multi-value parameter in order.
func (r *ParseResult) Values(identifier string) []string {
	var values []string
	prefix := "/" + identifier + "/"
	for k, v := range r.All() {
		if strings.HasPrefix(k, prefix) {
			values = append(values, v)
		}
	}
	return values
}

// String renders the entries one per line as 'key' = 'value'.
func (r *ParseResult) String() string {
	var b strings.Builder
	for k, v := range r.All() {
		b.WriteString("'" + k + "' = '" + v + "'\n")
	}
	return b.String()
}
