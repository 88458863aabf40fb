package constants

import "time"

const (
	AppName            = "daybook"
	DefaultKeyringUser = "database-connection"
	Version            = "v0.2.0"

	// DateFormat is the canonical DayKey format (YYYY-MM-DD). Every persisted
	// answer key is derived from it; changing it orphans existing records.
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time-of-day format used throughout the
	// application (HH:MM)
	TimeFormat = "15:04"

	// Storage keys
	KeyQuestions        = "questions"
	KeySettings         = "settings"
	KeyNotificationTime = "notificationTime"
	AnswersKeyPrefix    = "answers_"

	// KeyLastOpenedDate was written by an early revision that persisted the
	// last-seen day to detect rollover. Superseded by the in-memory day check;
	// only ever removed now.
	KeyLastOpenedDate = "lastOpenedDate"

	// Window lengths in days
	WeekWindowDays  = 7
	MonthWindowDays = 30

	// Slider bounds
	SliderMin = 1
	SliderMax = 10

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "daybook-"

	// Notify constants
	NotifyMaxRetries       = 3
	NotifyRetryDelay       = 100 * time.Millisecond
	NotifierLockfileName   = "daybook-notifier.lock"
	NotificationDurationMs = 5000
	TrayAppIdentifier      = "com.julianstephens.daybook"

	// Default Settings Values
	DefaultTimezone             = "Local" // Use system local timezone by default
	DefaultNotificationsEnabled = true
	DefaultReminderTime         = "20:00"

	// FreeTextPlaceholder is shown in summaries for entries that were marked
	// done but left without a note.
	FreeTextPlaceholder = "(no note)"
)
