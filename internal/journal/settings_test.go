package journal

import (
	"errors"
	"testing"

	"github.com/julianstephens/daybook/internal/constants"
	"github.com/julianstephens/daybook/internal/models"
)

type fakeScheduler struct {
	calls []string
	err   error
}

func (f *fakeScheduler) Reschedule(timeOfDay string) error {
	f.calls = append(f.calls, timeOfDay)
	return f.err
}

func TestLoadSettings_DefaultsWhenMissingOrCorrupt(t *testing.T) {
	store := newMemStore()

	settings := LoadSettings(store)
	if settings.Timezone != constants.DefaultTimezone {
		t.Errorf("default timezone = %q, want %q", settings.Timezone, constants.DefaultTimezone)
	}

	store.data[constants.KeySettings] = []byte("nope")
	settings = LoadSettings(store)
	if settings.Timezone != constants.DefaultTimezone {
		t.Errorf("corrupt settings should fall back to defaults, got %+v", settings)
	}
}

func TestSettings_RoundTrip(t *testing.T) {
	store := newMemStore()
	want := models.Settings{Timezone: "America/New_York", NotificationsEnabled: true}

	if err := SaveSettings(store, want); err != nil {
		t.Fatalf("SaveSettings failed: %v", err)
	}
	got := LoadSettings(store)
	if got != want {
		t.Errorf("round trip changed settings: got %+v, want %+v", got, want)
	}
}

func TestLoadSettings_EmptyTimezoneFallsBack(t *testing.T) {
	store := newMemStore()
	if err := SaveSettings(store, models.Settings{Timezone: ""}); err != nil {
		t.Fatalf("SaveSettings failed: %v", err)
	}
	got := LoadSettings(store)
	if got.Timezone != constants.DefaultTimezone {
		t.Errorf("empty timezone should fall back, got %q", got.Timezone)
	}
}

func TestReminderTime_DefaultAndRoundTrip(t *testing.T) {
	store := newMemStore()

	if got := ReminderTime(store); got != constants.DefaultReminderTime {
		t.Errorf("missing reminder time = %q, want default %q", got, constants.DefaultReminderTime)
	}

	sched := &fakeScheduler{}
	if err := SetReminderTime(store, sched, "07:30"); err != nil {
		t.Fatalf("SetReminderTime failed: %v", err)
	}
	if got := ReminderTime(store); got != "07:30" {
		t.Errorf("reminder time = %q, want 07:30", got)
	}
	if len(sched.calls) != 1 || sched.calls[0] != "07:30" {
		t.Errorf("expected one reschedule for 07:30, got %v", sched.calls)
	}
}

func TestSetReminderTime_RejectsMalformedTime(t *testing.T) {
	store := newMemStore()
	sched := &fakeScheduler{}

	for _, bad := range []string{"", "25:00", "7pm", "07:60"} {
		if err := SetReminderTime(store, sched, bad); err == nil {
			t.Errorf("expected an error for %q", bad)
		}
	}
	if len(sched.calls) != 0 {
		t.Errorf("rejected times must not reach the scheduler: %v", sched.calls)
	}
}

func TestSetReminderTime_SchedulerFailureDoesNotUnwindPersist(t *testing.T) {
	store := newMemStore()
	sched := &fakeScheduler{err: errors.New("tray not running")}

	if err := SetReminderTime(store, sched, "21:15"); err != nil {
		t.Fatalf("a scheduler failure must not fail the save: %v", err)
	}
	if got := ReminderTime(store); got != "21:15" {
		t.Errorf("stored time = %q, want 21:15", got)
	}
}

func TestSetReminderTime_NilSchedulerSkipsReschedule(t *testing.T) {
	store := newMemStore()
	if err := SetReminderTime(store, nil, "06:00"); err != nil {
		t.Fatalf("SetReminderTime with nil scheduler failed: %v", err)
	}
	if got := ReminderTime(store); got != "06:00" {
		t.Errorf("stored time = %q, want 06:00", got)
	}
}
