package adapters

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"saksham-engine/internal/logging/types"
)

// FileAdapter implements the LogAdapter interface for append-only file
// output with size-based rotation.
type FileAdapter struct {
	name        string
	config      FileConfig
	currentFile *os.File
	currentSize int64
	mu          sync.Mutex
}

// FileConfig represents configuration for the file adapter
type FileConfig struct {
	FilePath   string      `yaml:"file_path"`   // path to log file
	MaxSize    int64       `yaml:"max_size"`    // max file size in bytes (0 = no rotation)
	MaxBackups int         `yaml:"max_backups"` // max number of backup files to keep
	CreateDirs bool        `yaml:"create_dirs"` // create parent directories if they don't exist
	FileMode   os.FileMode `yaml:"file_mode"`   // file permissions
}

// NewFileAdapter creates a new file adapter
func NewFileAdapter(name string, config FileConfig) (*FileAdapter, error) {
	if config.FileMode == 0 {
		config.FileMode = 0644
	}
	if config.MaxBackups == 0 {
		config.MaxBackups = 10
	}

	adapter := &FileAdapter{
		name:   name,
		config: config,
	}

	if config.CreateDirs {
		if err := os.MkdirAll(filepath.Dir(config.FilePath), 0755); err != nil {
			return nil, fmt.Errorf("failed to create directories: %w", err)
		}
	}

	if err := adapter.openFile(); err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return adapter, nil
}

// Write writes a log entry to the file
func (a *FileAdapter) Write(entry *types.LogEntry) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.config.MaxSize > 0 && a.currentSize >= a.config.MaxSize {
		if err := a.rotate(); err != nil {
			return fmt.Errorf("failed to rotate log file: %w", err)
		}
	}

	output, err := formatJSON(entry)
	if err != nil {
		return fmt.Errorf("failed to format log entry: %w", err)
	}

	n, err := a.currentFile.WriteString(output + "\n")
	if err != nil {
		return fmt.Errorf("failed to write to log file: %w", err)
	}
	a.currentSize += int64(n)

	return nil
}

// Close closes the underlying file
func (a *FileAdapter) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.currentFile == nil {
		return nil
	}
	err := a.currentFile.Close()
	a.currentFile = nil
	return err
}

// Health verifies the log file is still writable
func (a *FileAdapter) Health() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.currentFile == nil {
		return fmt.Errorf("log file is closed")
	}
	return nil
}

// Name returns the name of the adapter
func (a *FileAdapter) Name() string {
	return a.name
}

func (a *FileAdapter) openFile() error {
	file, err := os.OpenFile(a.config.FilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, a.config.FileMode)
	if err != nil {
		return err
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return err
	}

	a.currentFile = file
	a.currentSize = info.Size()
	return nil
}

// rotate renames the current file with a timestamp suffix and reopens a
// fresh one, then prunes the oldest backups past MaxBackups.
func (a *FileAdapter) rotate() error {
	if err := a.currentFile.Close(); err != nil {
		return err
	}

	backupPath := fmt.Sprintf("%s.%s", a.config.FilePath, time.Now().Format("20060102-150405"))
	if err := os.Rename(a.config.FilePath, backupPath); err != nil {
		return err
	}

	a.pruneBackups()
	return a.openFile()
}

func (a *FileAdapter) pruneBackups() {
	matches, err := filepath.Glob(a.config.FilePath + ".*")
	if err != nil {
		return
	}

	// Glob output is sorted; timestamp suffixes keep that chronological.
	for len(matches) > a.config.MaxBackups {
		os.Remove(matches[0])
		matches = matches[1:]
	}
}
