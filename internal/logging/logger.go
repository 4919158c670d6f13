// internal/logging/logger.go
// Package logging provides file-based logging with rotation for the corpus
// tooling. Output goes to both stdout and a per-tool log file.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"
)

const keepRotated = 5

// Logger wraps the standard logger with file output.
type Logger struct {
	mu          sync.Mutex
	file        *os.File
	filePath    string
	maxSizeMB   int64
	currentSize int64
}

// Config holds logger configuration.
type Config struct {
	LogDir    string // Directory to write logs (default: ./logs)
	ToolName  string // Name of the tool (used in filename)
	MaxSizeMB int64  // Max log file size before rotation (default: 10MB)
}

// New creates a file logger and points the standard logger at it.
func New(cfg Config) (*Logger, error) {
	if cfg.LogDir == "" {
		cfg.LogDir = "logs"
	}
	if cfg.MaxSizeMB == 0 {
		cfg.MaxSizeMB = 10
	}

	if err := os.MkdirAll(cfg.LogDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	l := &Logger{
		filePath:  filepath.Join(cfg.LogDir, cfg.ToolName+".log"),
		maxSizeMB: cfg.MaxSizeMB,
	}
	if err := l.openLogFile(); err != nil {
		return nil, err
	}

	log.SetOutput(io.MultiWriter(os.Stdout, l))
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds)
	return l, nil
}

func (l *Logger) openLogFile() error {
	f, err := os.OpenFile(l.filePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	stat, err := f.Stat()
	if err != nil {
		f.Close()
		return fmt.Errorf("failed to stat log file: %w", err)
	}
	l.file = f
	l.currentSize = stat.Size()
	return nil
}

// Write implements io.Writer for the logger.
func (l *Logger) Write(p []byte) (n int, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.currentSize+int64(len(p)) > l.maxSizeMB*1024*1024 {
		if err := l.rotate(); err != nil {
			fmt.Fprintf(os.Stderr, "log rotation failed: %v\n", err)
		}
	}

	n, err = l.file.Write(p)
	l.currentSize += int64(n)
	return n, err
}

func (l *Logger) rotate() error {
	if l.file != nil {
		l.file.Close()
	}

	timestamp := time.Now().Format("20060102-150405")
	backupPath := fmt.Sprintf("%s.%s", l.filePath, timestamp)
	if err := os.Rename(l.filePath, backupPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to rename log file: %w", err)
	}

	l.cleanupOldLogs()
	return l.openLogFile()
}

// cleanupOldLogs removes old rotated files, keeping the most recent ones.
// The timestamp suffix sorts lexically, so oldest files come first.
func (l *Logger) cleanupOldLogs() {
	matches, err := filepath.Glob(l.filePath + ".*")
	if err != nil {
		return
	}
	if len(matches) > keepRotated {
		for _, old := range matches[:len(matches)-keepRotated] {
			os.Remove(old)
		}
	}
}

// Close closes the log file.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

// Info logs an info message.
func (l *Logger) Info(format string, args ...interface{}) {
	log.Printf("[INFO] "+format, args...)
}

// Error logs an error message.
func (l *Logger) Error(format string, args ...interface{}) {
	log.Printf("[ERROR] "+format, args...)
}

// Warn logs a warning message.
func (l *Logger) Warn(format string, args ...interface{}) {
	log.Printf("[WARN] "+format, args...)
}

// Debug logs a debug message (only if DEBUG env var is set).
func (l *Logger) Debug(format string, args ...interface{}) {
	if os.Getenv("DEBUG") != "" {
		log.Printf("[DEBUG] "+format, args...)
	}
}

// Fatal logs a fatal message and exits.
func (l *Logger) Fatal(format string, args ...interface{}) {
	log.Fatalf("[FATAL] "+format, args...)
}
