package cli

import (
	"github.com/julianstephens/daybook/internal/journal"
	"github.com/julianstephens/daybook/internal/logger"
	"github.com/julianstephens/daybook/internal/models"
	"github.com/julianstephens/daybook/internal/storage"
	"github.com/julianstephens/daybook/internal/utils"
)

// Context carries the shared collaborators into every command. The reminder
// scheduler is injected here rather than reached through a global so tests
// can substitute it.
type Context struct {
	Store     storage.Provider
	Scheduler journal.Scheduler
}

// Settings loads persisted application settings.
func (c *Context) Settings() models.Settings {
	return journal.LoadSettings(c.Store)
}

// Today computes the current DayKey from the configured timezone. Always
// call at the point of use; the result must not be cached across waits.
func (c *Context) Today() (string, error) {
	return utils.TodayFromSettings(c.Settings())
}

// OpenJournal loads the store and opens the journal for the current day.
func (c *Context) OpenJournal() (*journal.Journal, error) {
	if err := c.Store.Load(); err != nil {
		return nil, err
	}
	today, err := c.Today()
	if err != nil {
		return nil, err
	}
	return journal.Open(c.Store, today), nil
}

// PerformAutomaticBackup creates an automatic backup and silently handles
// errors; a failed backup never interrupts the user's entry.
func (c *Context) PerformAutomaticBackup() {
	path := c.Store.GetConfigPath()
	if path == "" || isConnectionString(path) {
		return
	}
	mgr := newBackupManager(path)
	if _, err := mgr.CreateBackup(); err != nil {
		logger.Warn("Automatic backup failed", "error", err)
	}
}
