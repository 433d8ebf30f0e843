package app

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

// LogFileName is the debug log written inside the log directory.
const LogFileName = "blockfall.log"

// SetupLogging points the standard logger at dir/LogFileName when debug is
// set, or at fallback otherwise. The returned file is nil when debug is off;
// callers close it on exit.
func SetupLogging(dir string, debug bool, fallback io.Writer) (*os.File, error) {
	if !debug {
		if fallback == nil {
			fallback = io.Discard
		}
		log.SetOutput(fallback)
		return nil, nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(filepath.Join(dir, LogFileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return f, nil
}
