/*
File    : signo/internal/siglog/siglog.go

Package siglog is a thin wrapper over go.uber.org/zap, used by cmd/signo's
--verbose flag to log file runs and their evaluation failures, and by the
`serve` subcommand to log connection lifecycle. No feature is gated on
it — a run with --verbose off never touches siglog beyond a no-op logger.
*/
package siglog

import "go.uber.org/zap"

// New builds a zap.Logger: development-mode (human-readable console
// output) when verbose is true, otherwise a no-op logger so a
// quiet run pays no logging cost.
func New(verbose bool) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
