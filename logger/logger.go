// Package logger provides the shared structured logger for dym.
//
// The logger is a zap SugaredLogger configured for either human-readable
// console output (default) or JSON structured output for machine
// consumption. Call Initialize once at startup; until then Logger is a
// no-op so library code can log unconditionally.
package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the global sugared logger. Defaults to a no-op logger until
// Initialize is called.
var Logger = zap.NewNop().Sugar()

// JSONOutput reports which output mode Initialize selected.
var JSONOutput bool

// Initialize configures the global logger.
func Initialize(jsonOutput bool) error {
	JSONOutput = jsonOutput

	if jsonOutput {
		// JSON structured output for machine consumption
		config := zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
		zapLogger, err := config.Build()
		if err != nil {
			return err
		}
		Logger = zapLogger.Sugar()
		return nil
	}

	// Human-readable console output
	Logger = consoleLogger(zap.InfoLevel).Sugar()
	return nil
}

// SetVerbose lowers the console log level to Debug. Used by the CLI -v flag.
func SetVerbose() {
	Logger = consoleLogger(zap.DebugLevel).Sugar()
}

func consoleLogger(level zapcore.Level) *zap.Logger {
	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	return zap.New(
		zapcore.NewCore(
			zapcore.NewConsoleEncoder(encoderConfig),
			zapcore.AddSync(os.Stdout),
			level,
		),
	)
}

// Sync flushes any buffered log entries. Call on shutdown.
func Sync() {
	_ = Logger.Sync()
}
