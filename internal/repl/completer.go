package repl

import (
	"github.com/chzyer/readline"
	"github.com/sahilm/fuzzy"
)

// nameSource adapts a []string to fuzzy.Source, so fuzzy.Find can rank
// completion candidates by how well they match what's been typed so far.
type nameSource []string

func (s nameSource) String(i int) string { return s[i] }
func (s nameSource) Len() int            { return len(s) }

// completer is a readline.AutoCompleter ranking every name bound in r.env
//
// against the word currently being typed, via sahilm/fuzzy. It holds the
// *Repl rather than a snapshot *environment.Env so completion keeps seeing
// new bindings as the session's env is replaced after each `let`/`def`.
type completer struct {
	repl *Repl
}

func newCompleter(r *Repl) readline.AutoCompleter {
	return &completer{repl: r}
}

// Do implements readline.AutoCompleter. It completes the run of
// non-whitespace, non-paren characters immediately before pos, returning
// the matched candidates' remaining suffixes.
func (c *completer) Do(line []rune, pos int) (newLine [][]rune, length int) {
	start := pos
	for start > 0 && isWordRune(line[start-1]) {
		start--
	}
	fragment := string(line[start:pos])
	if fragment == "" {
		return nil, 0
	}

	bindings := c.repl.env.Bindings()
	names := make([]string, 0, len(bindings))
	for name := range bindings {
		names = append(names, name)
	}

	matches := fuzzy.Find(fragment, nameSource(names))
	prefix := []rune(fragment)
	out := make([][]rune, 0, len(matches))
	for _, m := range matches {
		runes := []rune(m.Str)
		if len(runes) < len(prefix) || string(runes[:len(prefix)]) != fragment {
			continue
		}
		out = append(out, runes[len(prefix):])
	}
	return out, len(fragment)
}

func isWordRune(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '(', ')', '\'':
		return false
	default:
		return true
	}
}
