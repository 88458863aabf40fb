package cli

import (
	"fmt"
	"time"

	"github.com/julianstephens/daybook/internal/constants"
	"github.com/julianstephens/daybook/internal/notifier"
)

// NotifyCmd sends a notification through the tray app. Hidden; used by the
// tray app's alarm callback and for troubleshooting delivery.
type NotifyCmd struct {
	Message string `arg:"" optional:"" help:"Notification text." default:"Time for your daily reflection."`
}

func (c *NotifyCmd) Run(ctx *Context) error {
	n := notifier.New()

	var err error
	for attempt := 0; attempt < constants.NotifyMaxRetries; attempt++ {
		if err = n.Notify(c.Message); err == nil {
			return nil
		}
		time.Sleep(constants.NotifyRetryDelay)
	}

	return fmt.Errorf("failed to send notification: %w", err)
}
