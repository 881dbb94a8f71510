// Package logging builds the structured logger used by the command-line tools.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config selects the logger's level and encoding.
type Config struct {
	// Verbose enables debug output.
	Verbose bool

	// Console switches from JSON to human-readable output.
	Console bool

	// OutputPaths defaults to stderr, leaving stdout for data.
	OutputPaths []string
}

// New returns a logger writing to stderr at info level, or debug level when
// verbose is set.
func New(verbose bool) (*zap.Logger, error) {
	return Config{Verbose: verbose, Console: true}.Build()
}

// Build constructs the zap logger.
func (c Config) Build() (*zap.Logger, error) {
	level := zap.InfoLevel
	if c.Verbose {
		level = zap.DebugLevel
	}

	encoding := "json"
	encoderConfig := zap.NewProductionEncoderConfig()
	if c.Console {
		encoding = "console"
		encoderConfig = zap.NewDevelopmentEncoderConfig()
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	outputs := c.OutputPaths
	if len(outputs) == 0 {
		outputs = []string{"stderr"}
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Development:      false,
		Encoding:         encoding,
		EncoderConfig:    encoderConfig,
		OutputPaths:      outputs,
		ErrorOutputPaths: []string{"stderr"},
		DisableCaller:    true,
	}

	return config.Build()
}
