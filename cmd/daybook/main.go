package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/daybook/internal/cli"
	"github.com/julianstephens/daybook/internal/constants"
	apperrors "github.com/julianstephens/daybook/internal/errors"
	"github.com/julianstephens/daybook/internal/keyring"
	"github.com/julianstephens/daybook/internal/logger"
	"github.com/julianstephens/daybook/internal/notifier"
	"github.com/julianstephens/daybook/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Storage path (.db for SQLite, .json for JSON) or PostgreSQL connection string. For PostgreSQL, credentials must NOT be embedded in the connection string. Use the OS keyring, DAYBOOK_DB_CONNECTION, or .pgpass instead." type:"string" default:"~/.config/daybook/daybook.db"`
	Verbose bool   `help:"Enable debug logging to stderr."`

	Init     cli.InitCmd     `cmd:"" help:"Initialize daybook storage."`
	Tui      cli.TuiCmd      `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Answer   cli.AnswerCmd   `cmd:"" help:"Answer today's questions."`
	Status   cli.StatusCmd   `cmd:"" help:"Show today's completion status."`
	Summary  cli.SummaryCmd  `cmd:"" help:"Show aggregate statistics over a day window."`
	Question cli.QuestionCmd `cmd:"" help:"Manage reflection questions."`
	Settings cli.SettingsCmd `cmd:"" help:"Manage application settings."`
	Backup   struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    cli.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage storage backups."`
	Debug  cli.DebugCmd  `cmd:"" help:"Debug commands for troubleshooting."`
	Notify cli.NotifyCmd `cmd:"" hidden:"" help:"Send a notification (used internally)."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("daybook"),
		kong.Description("Daily reflection journal"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	config := expandHome(CLI.Config)

	var store storage.Provider
	if strings.HasPrefix(config, "postgres://") || strings.HasPrefix(config, "postgresql://") {
		connStr, err := resolveConnectionString(config)
		if err != nil {
			apperrors.Fatal(err)
		}
		store = storage.NewPostgresStore(connStr)
	} else if strings.HasSuffix(config, ".json") {
		store = storage.NewJSONStore(config)
	} else {
		// Default to SQLite
		store = storage.NewSQLiteStore(config)
	}

	logDir := filepath.Dir(config)
	if strings.HasPrefix(config, "postgres") {
		if userDir, err := os.UserConfigDir(); err == nil {
			logDir = filepath.Join(userDir, constants.AppName)
		}
	}
	if err := logger.Init(logger.Config{Debug: CLI.Verbose, ConfigDir: logDir}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}

	appCtx := &cli.Context{
		Store:     store,
		Scheduler: notifier.New(),
	}

	apperrors.Fatal(ctx.Run(appCtx))
}

// resolveConnectionString fills in PostgreSQL credentials from the
// environment or the OS keyring. Connection strings with an inline password
// are rejected outright.
func resolveConnectionString(config string) (string, error) {
	if storage.HasEmbeddedCredentials(config) {
		return "", fmt.Errorf("PostgreSQL connection strings with embedded credentials are not allowed;\n"+
			"       store them with 'daybook settings set connection-string ...' (OS keyring)\n"+
			"       or export DAYBOOK_DB_CONNECTION, or use a .pgpass file")
	}

	// A bare scheme means "look the real connection string up".
	if config == "postgres://" || config == "postgresql://" {
		if env := os.Getenv("DAYBOOK_DB_CONNECTION"); env != "" {
			return env, nil
		}
		connStr, err := keyring.GetConnectionString()
		if err != nil {
			return "", fmt.Errorf("no connection string configured: %w", err)
		}
		return connStr, nil
	}

	return config, nil
}

func expandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
