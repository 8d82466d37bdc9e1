package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options select where log lines go.
type Options struct {
	Debug bool
	File  string
	// Interactive is set when a terminal UI owns the screen. Without a File,
	// nothing is logged.
	Interactive bool
}

// New builds the process logger.
func New(opt Options) (*zap.Logger, error) {
	if opt.Interactive && opt.File == "" {
		return zap.NewNop(), nil
	}
	config := zap.NewProductionConfig()
	if opt.Debug {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	if opt.File != "" {
		config.OutputPaths = []string{opt.File}
		config.ErrorOutputPaths = []string{opt.File}
	}
	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}
