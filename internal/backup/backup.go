package backup

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/julianstephens/daybook/internal/constants"
)

// BackupInfo contains information about a backup file
type BackupInfo struct {
	Path      string
	Timestamp time.Time
	Size      int64
}

// Manager handles backup operations for file-backed stores (SQLite or
// JSON). Backups are plain copies next to the store, rotated past
// constants.MaxBackups.
type Manager struct {
	storePath string
	backupDir string
	suffix    string
}

// NewManager creates a backup manager for the given store file.
func NewManager(storePath string) *Manager {
	suffix := filepath.Ext(storePath)
	if suffix == "" {
		suffix = ".db"
	}
	return &Manager{
		storePath: storePath,
		backupDir: filepath.Join(filepath.Dir(storePath), constants.BackupDirName),
		suffix:    suffix,
	}
}

// GetBackupDir returns the backup directory path
func (m *Manager) GetBackupDir() string {
	return m.backupDir
}

// CreateBackup creates a new backup of the store file and rotates old ones.
func (m *Manager) CreateBackup() (string, error) {
	return m.createBackup(false)
}

func (m *Manager) createBackup(skipRotation bool) (string, error) {
	if err := os.MkdirAll(m.backupDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	if _, err := os.Stat(m.storePath); os.IsNotExist(err) {
		return "", fmt.Errorf("store does not exist: %s", m.storePath)
	}

	// Minute precision first; fall back to seconds, then a counter, when a
	// backup with the same name already exists.
	timestamp := time.Now().Format("20060102-1504")
	backupPath := filepath.Join(m.backupDir, constants.BackupFilePrefix+timestamp+m.suffix)
	if _, err := os.Stat(backupPath); err == nil {
		timestamp = time.Now().Format("20060102-150405")
		backupPath = filepath.Join(m.backupDir, constants.BackupFilePrefix+timestamp+m.suffix)

		counter := 1
		for {
			if _, err := os.Stat(backupPath); os.IsNotExist(err) {
				break
			}
			backupPath = filepath.Join(m.backupDir, fmt.Sprintf("%s%s-%d%s", constants.BackupFilePrefix, timestamp, counter, m.suffix))
			counter++
			if counter > 100 {
				return "", fmt.Errorf("failed to generate unique backup filename")
			}
		}
	}

	if err := copyFile(m.storePath, backupPath); err != nil {
		return "", fmt.Errorf("failed to backup store: %w", err)
	}

	if !skipRotation {
		if err := m.rotateBackups(); err != nil {
			// Log but don't fail the backup itself
			fmt.Fprintf(os.Stderr, "Warning: failed to rotate old backups: %v\n", err)
		}
	}

	return backupPath, nil
}

// ListBackups returns all available backups, newest first.
func (m *Manager) ListBackups() ([]BackupInfo, error) {
	if _, err := os.Stat(m.backupDir); os.IsNotExist(err) {
		return []BackupInfo{}, nil
	}

	entries, err := os.ReadDir(m.backupDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	var backups []BackupInfo
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		if !strings.HasPrefix(name, constants.BackupFilePrefix) || !strings.HasSuffix(name, m.suffix) {
			continue
		}

		timestampStr := strings.TrimPrefix(name, constants.BackupFilePrefix)
		timestampStr = strings.TrimSuffix(timestampStr, m.suffix)

		// Strip a trailing "-N" counter; timestamps end in a 4 or 6 digit
		// time component, counters don't.
		parts := strings.Split(timestampStr, "-")
		if len(parts) > 2 {
			lastPart := parts[len(parts)-1]
			if len(lastPart) != 4 && len(lastPart) != 6 && isDigits(lastPart) {
				timestampStr = strings.Join(parts[:len(parts)-1], "-")
			}
		}

		timestamp, err := time.Parse("20060102-1504", timestampStr)
		if err != nil {
			timestamp, err = time.Parse("20060102-150405", timestampStr)
			if err != nil {
				continue
			}
		}

		path := filepath.Join(m.backupDir, name)
		info, err := os.Stat(path)
		if err != nil {
			continue
		}

		backups = append(backups, BackupInfo{
			Path:      path,
			Timestamp: timestamp,
			Size:      info.Size(),
		})
	}

	sort.Slice(backups, func(i, j int) bool {
		return backups[i].Timestamp.After(backups[j].Timestamp)
	})

	return backups, nil
}

// rotateBackups removes old backups beyond the retention limit
func (m *Manager) rotateBackups() error {
	backups, err := m.ListBackups()
	if err != nil {
		return err
	}

	if len(backups) <= constants.MaxBackups {
		return nil
	}

	for i := constants.MaxBackups; i < len(backups); i++ {
		if err := os.Remove(backups[i].Path); err != nil {
			return fmt.Errorf("failed to remove old backup %s: %w", backups[i].Path, err)
		}
	}

	return nil
}

// RestoreBackup replaces the store file with a backup, taking a safety copy
// of the current store first.
func (m *Manager) RestoreBackup(backupPath string) error {
	if _, err := os.Stat(backupPath); os.IsNotExist(err) {
		return fmt.Errorf("backup file does not exist: %s", backupPath)
	}

	if _, err := os.Stat(m.storePath); err == nil {
		if _, err := m.createBackup(true); err != nil {
			return fmt.Errorf("failed to back up current store before restore: %w", err)
		}
	}

	if err := copyFile(backupPath, m.storePath); err != nil {
		return fmt.Errorf("failed to restore backup: %w", err)
	}

	return nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}

	return out.Sync()
}
