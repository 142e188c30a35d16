package logger

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ServiceName is attached to every entry so catalog logs can be told apart in shared sinks
const ServiceName = "gourmet-graph"

// Logger is a global logger instance
var Logger *zap.Logger

var (
	fallback     *zap.Logger
	fallbackOnce sync.Once
)

// Init initializes the global logger. "production" logs JSON at Info, "test" discards
// everything, anything else logs colored console output at Debug.
func Init(env string) error {
	if env == "test" {
		Logger = zap.NewNop()
		return nil
	}

	var config zap.Config
	if env == "production" {
		config = zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	} else {
		config = zap.NewDevelopmentConfig()
		config.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.InitialFields = map[string]interface{}{
		"service": ServiceName,
		"env":     env,
	}

	built, err := config.Build()
	if err != nil {
		return err
	}
	Logger = built
	return nil
}

// Sync flushes any buffered log entries
func Sync() {
	if Logger != nil {
		_ = Logger.Sync()
	}
}

// Get returns the global logger, or a shared development logger before Init runs
func Get() *zap.Logger {
	if Logger != nil {
		return Logger
	}
	fallbackOnce.Do(func() {
		l, err := zap.NewDevelopment(zap.Fields(zap.String("service", ServiceName)))
		if err != nil {
			l = zap.NewNop()
		}
		fallback = l
	})
	return fallback
}

// Named returns a child of the global logger scoped to a component
func Named(component string) *zap.Logger {
	return Get().Named(component).With(zap.String("component", component))
}
