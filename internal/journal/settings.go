package journal

import (
	"encoding/json"
	"fmt"

	"github.com/julianstephens/daybook/internal/constants"
	"github.com/julianstephens/daybook/internal/logger"
	"github.com/julianstephens/daybook/internal/models"
	"github.com/julianstephens/daybook/internal/utils"
)

// Scheduler registers the daily reminder with whatever delivers
// notifications on this platform. The journal only reads and writes the
// reminder time and asks for a reschedule; delivery is not its concern.
type Scheduler interface {
	Reschedule(timeOfDay string) error
}

// DefaultSettings returns the settings used before the user changes anything.
func DefaultSettings() models.Settings {
	return models.Settings{
		Timezone:             constants.DefaultTimezone,
		NotificationsEnabled: constants.DefaultNotificationsEnabled,
	}
}

// LoadSettings reads persisted settings, falling back to defaults when the
// record is missing or unreadable.
func LoadSettings(store Store) models.Settings {
	data, err := store.Get(constants.KeySettings)
	if err == nil {
		var settings models.Settings
		if jsonErr := json.Unmarshal(data, &settings); jsonErr == nil {
			if settings.Timezone == "" {
				settings.Timezone = constants.DefaultTimezone
			}
			return settings
		}
		logger.Warn("Discarding unreadable settings record", "key", constants.KeySettings)
	}
	return DefaultSettings()
}

// SaveSettings persists settings.
func SaveSettings(store Store, settings models.Settings) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to serialize settings: %w", err)
	}
	return store.Set(constants.KeySettings, data)
}

// ReminderTime reads the persisted daily reminder time (HH:MM), falling back
// to the default when missing or unreadable.
func ReminderTime(store Store) string {
	data, err := store.Get(constants.KeyNotificationTime)
	if err == nil {
		var t string
		if jsonErr := json.Unmarshal(data, &t); jsonErr == nil && utils.ValidateTimeFormat(t) {
			return t
		}
		logger.Warn("Discarding unreadable reminder time", "key", constants.KeyNotificationTime)
	}
	return constants.DefaultReminderTime
}

// SetReminderTime persists the reminder time and asks the scheduler to
// re-register the daily reminder. A nil scheduler skips the reschedule.
func SetReminderTime(store Store, scheduler Scheduler, timeOfDay string) error {
	if !utils.ValidateTimeFormat(timeOfDay) {
		return fmt.Errorf("invalid time %q (expected HH:MM)", timeOfDay)
	}
	data, err := json.Marshal(timeOfDay)
	if err != nil {
		return fmt.Errorf("failed to serialize reminder time: %w", err)
	}
	if err := store.Set(constants.KeyNotificationTime, data); err != nil {
		return fmt.Errorf("failed to persist reminder time: %w", err)
	}
	if scheduler != nil {
		if err := scheduler.Reschedule(timeOfDay); err != nil {
			// The stored time is authoritative; delivery retries on next run.
			logger.Warn("Failed to reschedule reminder", "time", timeOfDay, "error", err)
		}
	}
	return nil
}
