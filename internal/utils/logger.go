// Package utils provides logging and file parsing helpers shared by the
// API server, the lambdas and the CLI.
package utils

import (
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ServiceName is attached to every log entry.
const ServiceName = "sme-financial-health"

// Logger is the global logger instance.
var Logger *zap.Logger

var loggerMu sync.Mutex

func parseLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	}
	return zapcore.InfoLevel
}

// InitLogger initializes the global logger. Under Lambda it writes JSON to
// stdout; locally it uses the colored console encoder.
func InitLogger(level string) error {
	var config zap.Config
	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		config = zap.NewProductionConfig()
		config.OutputPaths = []string{"stdout"}
		config.ErrorOutputPaths = []string{"stderr"}
	} else {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	config.Level = zap.NewAtomicLevelAt(parseLevel(level))

	fields := map[string]interface{}{"service": ServiceName}
	if stage := os.Getenv("STAGE"); stage != "" {
		fields["stage"] = stage
	}
	config.InitialFields = fields

	logger, err := config.Build()
	if err != nil {
		return err
	}

	loggerMu.Lock()
	Logger = logger
	loggerMu.Unlock()
	return nil
}

// GetLogger returns the global logger, initializing if necessary.
func GetLogger() *zap.Logger {
	loggerMu.Lock()
	l := Logger
	loggerMu.Unlock()
	if l != nil {
		return l
	}

	if err := InitLogger("info"); err != nil {
		return zap.NewNop()
	}
	return GetLogger()
}

// ForBusiness returns a child logger tagged with businessID.
func ForBusiness(businessID string) *zap.Logger {
	return GetLogger().With(zap.String("business_id", businessID))
}

// Sync flushes any buffered log entries.
func Sync() {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	if Logger != nil {
		_ = Logger.Sync()
	}
}

// LogField creates a zap field for structured logging.
type LogField = zap.Field

// Common field constructors
var (
	String   = zap.String
	Int      = zap.Int
	Int64    = zap.Int64
	Float64  = zap.Float64
	Bool     = zap.Bool
	Error    = zap.Error
	Any      = zap.Any
	Duration = zap.Duration
)
