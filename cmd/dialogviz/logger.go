package main

import (
	"io"
	"log/slog"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/npratt/dialogviz/internal/config"
)

// ViewerLoggerResult contains the results of setting up logging for the
// interactive viewer.
type ViewerLoggerResult struct {
	Logger   *slog.Logger
	LogFile  io.WriteCloser
	FilePath string
}

// Close closes the log file if it was opened.
func (r *ViewerLoggerResult) Close() error {
	if r.LogFile != nil {
		return r.LogFile.Close()
	}
	return nil
}

// SetupViewerLogger creates a logger that writes to a rotating file instead
// of stderr, so log output cannot corrupt the terminal display while the
// viewer owns the screen. Uses lumberjack for automatic rotation.
func SetupViewerLogger(logDir string, level slog.Leveler, rotationCfg config.LogRotationConfig) (*ViewerLoggerResult, error) {
	debugLogPath := filepath.Join(logDir, "dialogviz-debug.log")

	debugLogWriter := &lumberjack.Logger{
		Filename:   debugLogPath,
		MaxSize:    rotationCfg.MaxSizeMB,
		MaxBackups: rotationCfg.MaxBackups,
		MaxAge:     rotationCfg.MaxAgeDays,
		Compress:   rotationCfg.Compress,
	}

	logger := slog.New(slog.NewJSONHandler(debugLogWriter, &slog.HandlerOptions{Level: level}))

	return &ViewerLoggerResult{
		Logger:   logger,
		LogFile:  debugLogWriter,
		FilePath: debugLogPath,
	}, nil
}

// SetupViewerLoggerWithWriter creates a logger that writes to the given
// writer. Useful for tests that capture the output.
func SetupViewerLoggerWithWriter(w io.Writer, level slog.Leveler) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}
