package cli

import (
	"encoding/json"
	"fmt"

	"github.com/julianstephens/daybook/internal/journal"
	"github.com/julianstephens/daybook/internal/storage"
	"github.com/julianstephens/daybook/internal/utils"
)

type DebugCmd struct {
	DBPath  DebugDBPathCmd  `cmd:"" help:"Show storage path."`
	Keys    DebugKeysCmd    `cmd:"" help:"List stored keys."`
	DumpDay DebugDumpDayCmd `cmd:"" help:"Dump one day's answer record as JSON."`
}

type DebugDBPathCmd struct{}

func (c *DebugDBPathCmd) Run(ctx *Context) error {
	output := map[string]string{
		"path": ctx.Store.GetConfigPath(),
	}

	jsonBytes, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}

	fmt.Println(string(jsonBytes))
	return nil
}

type DebugKeysCmd struct {
	Prefix string `help:"Only list keys with this prefix." default:""`
}

func (c *DebugKeysCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	keys, err := ctx.Store.Keys(c.Prefix)
	if err != nil {
		return err
	}

	if len(keys) == 0 {
		fmt.Println("No keys found.")
		return nil
	}

	for _, key := range keys {
		fmt.Println(key)
	}
	return nil
}

type DebugDumpDayCmd struct {
	Day string `arg:"" help:"Day to dump (YYYY-MM-DD or 'today')."`
}

func (c *DebugDumpDayCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	day := c.Day
	if day == "today" {
		today, err := ctx.Today()
		if err != nil {
			return err
		}
		day = today
	}
	if !utils.ValidateDayKey(day) {
		return fmt.Errorf("invalid day %q (expected YYYY-MM-DD or 'today')", day)
	}

	data, err := ctx.Store.Get(journal.AnswersKey(day))
	if err == storage.ErrNotFound {
		return fmt.Errorf("no record found for %s", day)
	}
	if err != nil {
		return err
	}

	var pretty json.RawMessage = data
	jsonBytes, err := json.MarshalIndent(pretty, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}

	fmt.Println(string(jsonBytes))
	return nil
}
