/*
File    : signo/internal/repl/repl.go

Package repl implements Signo's interactive Read-Eval-Print Loop: banner,
prompt, and colored output wrap a session that threads an
*environment.Env across iterations rather than holding one mutable
interpreter, suppresses printing the reserved hidden atom `ok` that
`print` returns, and adds fuzzy tab-completion and `.scope`/`.exit`
commands.
*/
package repl

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/RobinBoers/signo/internal/ast"
	"github.com/RobinBoers/signo/internal/config"
	"github.com/RobinBoers/signo/internal/environment"
	"github.com/RobinBoers/signo/internal/eval"
	"github.com/RobinBoers/signo/internal/lexer"
	"github.com/RobinBoers/signo/internal/parser"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl is one interactive session's presentation (banner/prompt/colors)
// plus the env it threads across input lines.
type Repl struct {
	Cfg     config.Config
	Version string
	Author  string
	License string

	env   *environment.Env
	count int // 1-based input index, feeds the "sig(N)> " prompt
}

// New creates a Repl with its own fresh kernel environment.
func New(cfg config.Config, version, author, license string) *Repl {
	return &Repl{
		Cfg:     cfg,
		Version: version,
		Author:  author,
		License: license,
		env:     eval.NewKernelEnv(),
		count:   1,
	}
}

// PrintBannerInfo displays the welcome banner.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Cfg.Line)
	greenColor.Fprintf(writer, "%s\n", r.Cfg.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Cfg.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Cfg.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to Signo!")
	cyanColor.Fprintf(writer, "%s\n", "Type your code and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit, '.scope' to inspect bindings")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history, Tab to complete")
	blueColor.Fprintf(writer, "%s\n", r.Cfg.Line)
}

// Start runs the main loop, reading lines from reader and writing the
// banner/prompt/results to writer. Passing os.Stdin/os.Stdout gives a
// terminal session; passing the same net.Conn for both gives one `serve`
// connection its own REPL. reader/writer are wired through
// readline.Config.Stdin/Stdout explicitly so a `serve` connection reads
// and writes its own socket rather than the process's real stdin.
func (r *Repl) Start(reader io.ReadCloser, writer io.Writer) {
	if !r.Cfg.Color {
		color.NoColor = true
	}
	r.PrintBannerInfo(writer)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          r.prompt(),
		AutoComplete:    newCompleter(r),
		HistoryFile:     r.Cfg.HistoryFile,
		InterruptPrompt: "^C",
		EOFPrompt:       ".exit",
		Stdin:           reader,
		Stdout:          writer,
	})
	if err != nil {
		redColor.Fprintf(writer, "[RUNTIME ERROR] could not start readline: %v\n", err)
		return
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good bye!\n"))
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good bye!\n"))
			return
		}
		if line == ".scope" {
			r.printScope(writer)
			continue
		}

		rl.SaveHistory(line)
		r.evalLine(writer, line)
		rl.SetPrompt(r.prompt())
	}
}

func (r *Repl) prompt() string {
	return fmt.Sprintf(r.Cfg.Prompt, r.count)
}

// evalLine lexes, parses, and evaluates one input line, recovering from a
// faulting input by discarding it and keeping the prior environment.
func (r *Repl) evalLine(writer io.Writer, line string) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[RuntimeError] %v\n", recovered)
		}
		r.count++
	}()

	toks, lexErr := lexer.New(line, lexer.REPLPath).Tokens()
	if lexErr != nil {
		redColor.Fprintf(writer, "%v\n", lexErr)
		return
	}
	root, parseErr := parser.New(toks).Parse()
	if parseErr != nil {
		redColor.Fprintf(writer, "%v\n", parseErr)
		return
	}

	rt := &eval.Runtime{Out: writer}
	result, nextEnv, err := eval.EvalRoot(root, r.env, rt)
	if err != nil {
		redColor.Fprintf(writer, "%v\n", err)
		return
	}

	r.env = nextEnv
	if atom, ok := result.(ast.Atom); ok && atom.IsHidden() {
		return
	}
	yellowColor.Fprintf(writer, "%s\n", result.DebugString())
}

func (r *Repl) printScope(writer io.Writer) {
	names := make([]string, 0)
	for name := range r.env.Bindings() {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		v := r.env.Bindings()[name]
		cyanColor.Fprintf(writer, "%s = %s\n", name, v.DebugString())
	}
}
