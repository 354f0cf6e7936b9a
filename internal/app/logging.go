package app

import (
	"io"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
)

const logPrefix = "pomo"

// setupLogging routes the standard logger. The TUI owns the terminal, so
// output goes to path when set and is discarded otherwise. The returned
// func closes the file and must always be called.
func setupLogging(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	f, err := tea.LogToFile(path, logPrefix)
	if err != nil {
		return nil, err
	}
	return func() {
		log.SetOutput(io.Discard)
		_ = f.Close()
	}, nil
}
