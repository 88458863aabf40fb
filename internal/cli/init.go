package cli

import (
	"fmt"
	"os"

	"github.com/julianstephens/daybook/internal/constants"
	"github.com/julianstephens/daybook/internal/journal"
	"github.com/julianstephens/daybook/internal/logger"
)

type InitCmd struct {
	Force bool `help:"Reinitialize even if storage already exists (destroys existing data)."`
}

func (c *InitCmd) Run(ctx *Context) error {
	path := ctx.Store.GetConfigPath()

	if c.Force && !isConnectionString(path) {
		if _, err := os.Stat(path); err == nil {
			if err := os.Remove(path); err != nil {
				return fmt.Errorf("failed to remove existing storage: %w", err)
			}
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}

	// Seed the default question set and settings so the first answer session
	// has something to show.
	journal.LoadQuestionSet(ctx.Store)
	if err := journal.SaveSettings(ctx.Store, journal.DefaultSettings()); err != nil {
		return fmt.Errorf("failed to save default settings: %w", err)
	}

	// An early revision persisted the last-opened day; sweep it if present.
	if err := ctx.Store.Remove(constants.KeyLastOpenedDate); err != nil {
		logger.Warn("Failed to remove legacy key", "key", constants.KeyLastOpenedDate, "error", err)
	}

	fmt.Printf("Initialized daybook storage at %s\n", path)
	return nil
}
