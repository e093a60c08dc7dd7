package main

import (
	"log"
	"os"
	"path/filepath"
)

const (
	logDir      = "logs"
	logFileName = "periodic.log"
	maxLogSize  = 10 * 1024 * 1024
)

// setupLogging sends the log to logs/periodic.log when debug is set, rotating
// the previous file once it exceeds maxLogSize. Otherwise the log stays on
// stderr and nil is returned.
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(os.Stderr)
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.Printf("Warning: could not create %s: %v", logDir, err)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		if err := os.Rename(logPath, logPath+".old"); err != nil {
			log.Printf("Warning: could not rotate %s: %v", logPath, err)
		}
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.Printf("Warning: could not open %s: %v", logPath, err)
		return nil
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return f
}
