package repl

import (
	"bytes"
	"strings"
	"testing"

	"github.com/RobinBoers/signo/internal/config"
	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/assert"
)

func newTestRepl() *Repl {
	cfg := config.Default()
	cfg.Color = false
	return New(cfg, "test", "tester", "MIT")
}

func TestRepl_EvalLinePrintsDebugString(t *testing.T) {
	r := newTestRepl()
	var buf bytes.Buffer

	r.evalLine(&buf, "(+ 1 2)")

	assert.Contains(t, buf.String(), "3")
}

func TestRepl_EvalLineThreadsEnvAcrossCalls(t *testing.T) {
	r := newTestRepl()
	var buf bytes.Buffer

	r.evalLine(&buf, "(let x 10)")
	buf.Reset()
	r.evalLine(&buf, "x")

	assert.Contains(t, buf.String(), "10")
}

func TestRepl_EvalLineSuppressesHiddenOkFromPrint(t *testing.T) {
	r := newTestRepl()
	var buf bytes.Buffer

	r.evalLine(&buf, `(print "hi")`)

	out := buf.String()
	assert.Contains(t, out, "hi")
	assert.False(t, strings.Contains(out, "#ok"))
}

func TestRepl_EvalLineReportsParseError(t *testing.T) {
	r := newTestRepl()
	var buf bytes.Buffer

	r.evalLine(&buf, "(+ 1")

	assert.Contains(t, buf.String(), "ParseError")
}

func TestRepl_EvalLineKeepsPriorEnvAfterFailure(t *testing.T) {
	r := newTestRepl()
	var buf bytes.Buffer

	r.evalLine(&buf, "(let x 1)")
	buf.Reset()
	r.evalLine(&buf, "(nonexistent-fn)")
	buf.Reset()
	r.evalLine(&buf, "x")

	assert.Contains(t, buf.String(), "1")
}

// TestRepl_TranscriptSnapshot pins the exact rendering of a short session
// (arithmetic, a `let`, a lambda call, and a deliberate error) so a
// regression in any color/formatting helper shows up as a snapshot diff.
func TestRepl_TranscriptSnapshot(t *testing.T) {
	r := newTestRepl()
	var buf bytes.Buffer

	for _, line := range []string{
		"(+ 1 2)",
		"(let double (lambda (x) (* x 2)))",
		"(double 21)",
		"(undefined-thing)",
	} {
		r.evalLine(&buf, line)
	}

	snaps.MatchSnapshot(t, buf.String())
}

func TestRepl_PrintScopeListsBindings(t *testing.T) {
	r := newTestRepl()
	var buf bytes.Buffer

	r.evalLine(&buf, "(let greeting \"hi\")")
	buf.Reset()
	r.printScope(&buf)

	assert.Contains(t, buf.String(), "greeting")
}
