package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	logDir      = "logs"
	logFileName = "ansidemo.log"
	maxLogSize  = 10 * 1024 * 1024 // 10MB
)

// setupLogging routes the global zerolog logger to logs/ansidemo.log when
// debug is set and disables it otherwise. Stdout and stderr carry the demo
// itself, so logs never go there. An oversized log is rotated aside first.
// Returns the open log file, nil when disabled or on failure
func setupLogging(debug bool) *os.File {
	if !debug {
		log.Logger = zerolog.Nop()
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.Logger = zerolog.Nop()
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("ansidemo-%s.log", time.Now().Format("20060102-150405")))
		os.Rename(logPath, rotated)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.Logger = zerolog.Nop()
		return nil
	}

	log.Logger = zerolog.New(f).With().Timestamp().Logger().Level(zerolog.DebugLevel)
	return f
}
