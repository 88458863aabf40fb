package cli

import (
	"fmt"
	"strings"

	"github.com/julianstephens/daybook/internal/backup"
)

// isConnectionString reports whether the config value names a remote
// database rather than a local file. File backups only apply to the latter.
func isConnectionString(config string) bool {
	return strings.HasPrefix(config, "postgres://") || strings.HasPrefix(config, "postgresql://")
}

func newBackupManager(storePath string) *backup.Manager {
	return backup.NewManager(storePath)
}

type BackupCreateCmd struct{}

func (c *BackupCreateCmd) Run(ctx *Context) error {
	path := ctx.Store.GetConfigPath()
	if isConnectionString(path) {
		return fmt.Errorf("file backups are not supported for PostgreSQL storage; use pg_dump")
	}

	backupPath, err := newBackupManager(path).CreateBackup()
	if err != nil {
		return err
	}

	fmt.Printf("Created backup: %s\n", backupPath)
	return nil
}

type BackupListCmd struct{}

func (c *BackupListCmd) Run(ctx *Context) error {
	path := ctx.Store.GetConfigPath()
	if isConnectionString(path) {
		return fmt.Errorf("file backups are not supported for PostgreSQL storage; use pg_dump")
	}

	backups, err := newBackupManager(path).ListBackups()
	if err != nil {
		return err
	}

	if len(backups) == 0 {
		fmt.Println("No backups found.")
		return nil
	}

	for _, b := range backups {
		fmt.Printf("%s  %s  (%d bytes)\n", b.Timestamp.Format("2006-01-02 15:04:05"), b.Path, b.Size)
	}
	return nil
}

type BackupRestoreCmd struct {
	Path string `arg:"" optional:"" help:"Backup file to restore (default: most recent)."`
}

func (c *BackupRestoreCmd) Run(ctx *Context) error {
	path := ctx.Store.GetConfigPath()
	if isConnectionString(path) {
		return fmt.Errorf("file backups are not supported for PostgreSQL storage; use pg_dump")
	}

	mgr := newBackupManager(path)
	target := c.Path
	if target == "" {
		backups, err := mgr.ListBackups()
		if err != nil {
			return err
		}
		if len(backups) == 0 {
			return fmt.Errorf("no backups available")
		}
		target = backups[0].Path
	}

	if err := ctx.Store.Close(); err != nil {
		return err
	}
	if err := mgr.RestoreBackup(target); err != nil {
		return err
	}

	fmt.Printf("Restored from %s\n", target)
	return nil
}
