/*
File    : signo/cmd/signo/main.go

Package main is the entry point for the Signo interpreter. It provides four
modes of operation via github.com/spf13/cobra subcommands:

  - run <path>   Execute a Signo source file
  - repl         Interactive Read-Eval-Print Loop (default with no args)
  - serve <port> TCP REPL server, one connection per goroutine
  - version      Print version/author/license

Structured as a cobra command tree rather than a bare os.Args switch,
so each mode gets its own flags, usage text, and help output for free.
*/
package main

import (
	"fmt"
	"net"
	"os"

	"github.com/RobinBoers/signo/internal/config"
	"github.com/RobinBoers/signo/internal/eval"
	"github.com/RobinBoers/signo/internal/lexer"
	"github.com/RobinBoers/signo/internal/parser"
	"github.com/RobinBoers/signo/internal/repl"
	"github.com/RobinBoers/signo/internal/siglog"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	version = "v1.0.0"
	author  = "RobinBoers"
	license = "MIT"
)

var (
	redColor    = color.New(color.FgRed)
	cyanColor   = color.New(color.FgCyan)
	yellowColor = color.New(color.FgYellow)
)

var verbose bool

func main() {
	root := &cobra.Command{
		Use:   "signo",
		Short: "Signo - a small Lisp-family interactive language",
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log to stderr as the interpreter runs")

	root.AddCommand(runCmd(), replCmd(), serveCmd(), versionCmd())

	// A bare path with no subcommand runs that file as a shorthand for
	// `signo run <path>`; no args falls through to the REPL, same as the
	// repl subcommand's zero-arg form below.
	root.Args = cobra.MaximumNArgs(1)
	root.RunE = func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			return runFile(args[0])
		}
		return startRepl()
	}

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <path>",
		Short: "Execute a Signo source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFile(args[0])
		},
	}
}

func replCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start the interactive REPL",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return startRepl()
		},
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve <port>",
		Short: "Start a TCP REPL server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return startServer(args[0])
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version, author and license",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			cyanColor.Println("Signo - a small Lisp-family interactive language")
			cyanColor.Printf("Version: %s\n", version)
			cyanColor.Printf("License: %s\n", license)
			cyanColor.Printf("Author : %s\n", author)
		},
	}
}

// runFile reads and executes a Signo source file.
func runFile(path string) error {
	logger := siglog.New(verbose)
	defer logger.Sync()

	source, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] could not read file '%s': %v\n", path, err)
		return err
	}

	if err := executeFileWithRecovery(path, string(source), os.Stdout, logger); err != nil {
		return err
	}
	return nil
}

func executeFileWithRecovery(path, source string, out *os.File, logger *zap.Logger) (execErr error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(os.Stderr, "[RuntimeError] %v\n", recovered)
			execErr = fmt.Errorf("panic: %v", recovered)
		}
	}()

	toks, lexErr := lexer.New(source, path).Tokens()
	if lexErr != nil {
		redColor.Fprintf(os.Stderr, "%v\n", lexErr)
		return lexErr
	}

	root, parseErr := parser.New(toks).Parse()
	if parseErr != nil {
		redColor.Fprintf(os.Stderr, "%v\n", parseErr)
		return parseErr
	}

	logger.Info("running file", zap.String("path", path))
	rt := &eval.Runtime{Out: out}
	_, _, err := eval.EvalRoot(root, eval.NewKernelEnv(), rt)
	if err != nil {
		redColor.Fprintf(os.Stderr, "%v\n", err)
		logger.Warn("evaluation failed", zap.String("path", path), zap.Error(err))
		return err
	}

	return nil
}

func startRepl() error {
	cfg, err := config.Load()
	if err != nil {
		redColor.Fprintf(os.Stderr, "[CONFIG ERROR] %v\n", err)
		cfg = config.Default()
	}
	r := repl.New(cfg, version, author, license)
	r.Start(os.Stdin, os.Stdout)
	return nil
}

// startServer listens on port, handing each accepted connection its own
// Repl and goroutine.
func startServer(port string) error {
	logger := siglog.New(true)
	defer logger.Sync()

	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[SERVER ERROR] failed to start server on port %s: %v\n", port, err)
		return err
	}
	cyanColor.Printf("Signo REPL server listening on :%s\n", port)
	defer listener.Close()

	for {
		conn, err := listener.Accept()
		if err != nil {
			logger.Warn("accept failed", zap.Error(err))
			continue
		}
		go handleClient(conn, logger)
	}
}

func handleClient(conn net.Conn, logger *zap.Logger) {
	defer conn.Close()
	logger.Info("client connected", zap.String("remote", conn.RemoteAddr().String()))

	cfg := config.Default() // each connection gets its own kernel env; no config file lookup over the wire
	r := repl.New(cfg, version, author, license)
	r.Start(conn, conn)

	logger.Info("client disconnected", zap.String("remote", conn.RemoteAddr().String()))
}
