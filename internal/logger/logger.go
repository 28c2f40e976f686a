// Package logger builds the application's zap logger.
package logger

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Stderr as Config.File sends logs to standard error instead of a file.
const Stderr = "stderr"

// Config mirrors config.Config's logging fields but avoids importing the config package here.
type Config struct {
	Level    string
	Encoding string
	File     string
}

// New builds a zap.Logger using the provided configuration. The returned
// cleanup func flushes the logger and closes the log file.
func New(cfg Config) (*zap.Logger, func(), error) {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	level := zapcore.InfoLevel
	if err := level.Set(cfg.Level); err != nil {
		// fall back to info level if parsing fails
		level = zapcore.InfoLevel
	}

	var encoder zapcore.Encoder
	switch cfg.Encoding {
	case "console":
		encoder = zapcore.NewConsoleEncoder(encoderCfg)
	default:
		encoder = zapcore.NewJSONEncoder(encoderCfg)
	}

	sink, closeSink, err := openSink(cfg.File)
	if err != nil {
		return nil, nil, err
	}

	core := zapcore.NewCore(encoder, sink, level)
	log := zap.New(core, zap.AddCaller())

	cleanup := func() {
		_ = log.Sync()
		closeSink()
	}
	return log, cleanup, nil
}

func openSink(path string) (zapcore.WriteSyncer, func(), error) {
	if path == "" || path == Stderr {
		return zapcore.Lock(os.Stderr), func() {}, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return zapcore.Lock(zapcore.AddSync(f)), func() { f.Close() }, nil
}
