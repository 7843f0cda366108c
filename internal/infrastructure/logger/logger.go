package logger

import (
	"log"

	"go.uber.org/zap"
)

// MustInit builds a production zap logger at the given level and
// installs it as the process-global logger.
func MustInit(level string) *zap.Logger {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		log.Fatalf("invalid log level %q: %v", level, err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = lvl

	zl, err := cfg.Build()
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}

	zap.ReplaceGlobals(zl)
	return zl
}
