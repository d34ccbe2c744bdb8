// Package logging builds the application loggers.
package logging

import "go.uber.org/zap"

// NewLogger returns the sugared zap logger used by the app packages.
// Verbose switches to the human-readable development encoder with debug
// output enabled.
func NewLogger(verbose bool) *zap.SugaredLogger {
	if verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			return zap.NewNop().Sugar()
		}
		return logger.Sugar()
	}

	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop().Sugar()
	}
	return logger.Sugar()
}
