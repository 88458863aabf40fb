package cli

import (
	"fmt"

	"github.com/julianstephens/daybook/internal/journal"
	"github.com/julianstephens/daybook/internal/keyring"
	"github.com/julianstephens/daybook/internal/utils"
)

type SettingsCmd struct {
	List SettingsListCmd `cmd:"" help:"Show current settings." default:"1"`
	Set  SettingsSetCmd  `cmd:"" help:"Change a setting."`
}

type SettingsListCmd struct{}

func (c *SettingsListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	settings := ctx.Settings()
	fmt.Printf("timezone:       %s\n", settings.Timezone)
	fmt.Printf("notifications:  %v\n", settings.NotificationsEnabled)
	fmt.Printf("reminder-time:  %s\n", journal.ReminderTime(ctx.Store))
	return nil
}

type SettingsSetCmd struct {
	Timezone         SettingsSetTimezoneCmd         `cmd:"" help:"Set the timezone used to compute the current day."`
	Notifications    SettingsSetNotificationsCmd    `cmd:"" help:"Enable or disable the daily reminder."`
	ReminderTime     SettingsSetReminderTimeCmd     `cmd:"" name:"reminder-time" help:"Set the daily reminder time (HH:MM)."`
	ConnectionString SettingsSetConnectionStringCmd `cmd:"" name:"connection-string" help:"Store the PostgreSQL connection string in the OS keyring."`
}

type SettingsSetTimezoneCmd struct {
	Timezone string `arg:"" help:"IANA timezone name, or 'Local'."`
}

func (c *SettingsSetTimezoneCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	if !utils.ValidateTimezone(c.Timezone) {
		return fmt.Errorf("invalid timezone %q", c.Timezone)
	}

	settings := ctx.Settings()
	settings.Timezone = c.Timezone
	if err := journal.SaveSettings(ctx.Store, settings); err != nil {
		return err
	}

	fmt.Printf("Timezone set to %s\n", c.Timezone)
	return nil
}

type SettingsSetNotificationsCmd struct {
	Enabled string `arg:"" help:"on or off."`
}

func (c *SettingsSetNotificationsCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	var enabled bool
	switch c.Enabled {
	case "on", "true", "yes":
		enabled = true
	case "off", "false", "no":
		enabled = false
	default:
		return fmt.Errorf("expected 'on' or 'off', got %q", c.Enabled)
	}

	settings := ctx.Settings()
	settings.NotificationsEnabled = enabled
	if err := journal.SaveSettings(ctx.Store, settings); err != nil {
		return err
	}

	if enabled {
		// Re-register the reminder at the stored time.
		if err := ctx.Scheduler.Reschedule(journal.ReminderTime(ctx.Store)); err != nil {
			fmt.Printf("Notifications enabled, but the reminder could not be scheduled: %v\n", err)
			return nil
		}
	}

	fmt.Printf("Notifications %s\n", c.Enabled)
	return nil
}

type SettingsSetReminderTimeCmd struct {
	Time string `arg:"" help:"Reminder time in HH:MM format."`
}

func (c *SettingsSetReminderTimeCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	if err := journal.SetReminderTime(ctx.Store, ctx.Scheduler, c.Time); err != nil {
		return err
	}

	fmt.Printf("Daily reminder set to %s\n", c.Time)
	return nil
}

type SettingsSetConnectionStringCmd struct {
	ConnStr string `arg:"" help:"PostgreSQL connection string (stored in the OS keyring, never on disk)."`
}

func (c *SettingsSetConnectionStringCmd) Run(ctx *Context) error {
	if err := keyring.SetConnectionString(c.ConnStr); err != nil {
		return err
	}

	fmt.Println("Connection string stored in the OS keyring.")
	fmt.Println("Run daybook with --config postgres:// to use it.")
	return nil
}
