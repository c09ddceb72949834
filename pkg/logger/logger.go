// Package logger builds the structured logger every riftdb subsystem is
// configured with. It exists purely to construct the *zap.SugaredLogger
// that internal/engine (through options.Options.Logger) and
// internal/storage (as a New parameter) report through.
package logger

import "go.uber.org/zap"

// New returns a production-configured, sugared zap logger named after the
// calling component. Callers that already have a logger (tests, embedders
// with their own logging stack) can build their own and bypass this
// constructor entirely. The CLI passes Nop, and Open's defaults use a
// no-op logger; New is for callers that want production logging.
func New(name string) *zap.SugaredLogger {
	log, err := zap.NewProduction()
	if err != nil {
		// zap.NewProduction only fails if it can't open its configured sinks;
		// stderr is always available, so fall back to it rather than panic.
		log = zap.NewExample()
	}
	return log.Named(name).Sugar()
}

// Nop returns a logger that discards everything. Useful for tests that
// don't want recovery/compaction logging noise.
func Nop() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}
