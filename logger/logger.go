package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger handles application logging
type Logger struct {
	mu       sync.Mutex
	file     *os.File
	attached []zapcore.WriteSyncer
	sugar    *zap.SugaredLogger
}

// NewLogger creates a new Logger instance. Nothing is written until Init or
// Attach gives it a sink.
func NewLogger() *Logger {
	return &Logger{sugar: zap.NewNop().Sugar()}
}

// Init initializes the logging to a file in the specified directory
func (l *Logger) Init(logDir string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return fmt.Errorf("failed to create log dir: %w", err)
	}

	dateStr := time.Now().Format("2006-01-02")
	pattern := filepath.Join(logDir, fmt.Sprintf("lessondeck_%s_*.log", dateStr))
	matches, _ := filepath.Glob(pattern)
	runCount := len(matches) + 1
	filename := filepath.Join(logDir, fmt.Sprintf("lessondeck_%s_%d.log", dateStr, runCount))

	f, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	l.closeLocked()
	l.file = f
	l.rebuildLocked()
	l.sugar.Info("logging started")
	return nil
}

// Attach adds w as another sink, e.g. os.Stderr for verbose runs. The log
// file, if any, keeps receiving output.
func (l *Logger) Attach(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	_ = l.sugar.Sync()
	l.attached = append(l.attached, zapcore.AddSync(w))
	l.rebuildLocked()
}

// rebuildLocked tees one core per sink.
func (l *Logger) rebuildLocked() {
	sinks := append([]zapcore.WriteSyncer{}, l.attached...)
	if l.file != nil {
		sinks = append(sinks, l.file)
	}
	if len(sinks) == 0 {
		l.sugar = zap.NewNop().Sugar()
		return
	}
	enc := zap.NewProductionEncoderConfig()
	enc.TimeKey = "ts"
	enc.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
	cores := make([]zapcore.Core, 0, len(sinks))
	for _, ws := range sinks {
		cores = append(cores, zapcore.NewCore(zapcore.NewConsoleEncoder(enc), ws, zap.DebugLevel))
	}
	l.sugar = zap.New(zapcore.NewTee(cores...)).Sugar()
}

// Log writes a message to the log file
func (l *Logger) Log(message string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.sugar.Info(message)
}

// Logf writes a formatted message to the log file
func (l *Logger) Logf(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.sugar.Infof(format, args...)
}

// Infow writes a message with structured key/value pairs.
func (l *Logger) Infow(msg string, keysAndValues ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.sugar.Infow(msg, keysAndValues...)
}

// Errorw writes an error-level message with structured key/value pairs.
func (l *Logger) Errorw(msg string, keysAndValues ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.sugar.Errorw(msg, keysAndValues...)
}

// Close flushes and closes the log file
func (l *Logger) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		l.sugar.Info("logging stopped")
	}
	l.closeLocked()
	l.attached = nil
	l.sugar = zap.NewNop().Sugar()
}

func (l *Logger) closeLocked() {
	_ = l.sugar.Sync()
	if l.file != nil {
		l.file.Close()
		l.file = nil
	}
}
