package notifier

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	ps "github.com/mitchellh/go-ps"

	"github.com/julianstephens/daybook/internal/constants"
)

type mockProcess struct {
	pid        int
	executable string
}

func (m *mockProcess) Pid() int           { return m.pid }
func (m *mockProcess) PPid() int          { return 0 }
func (m *mockProcess) Executable() string { return m.executable }

func TestGetTrayAppConfigDir(t *testing.T) {
	tempDir := t.TempDir()

	oldUserConfigDirFunc := userConfigDirFunc
	defer func() { userConfigDirFunc = oldUserConfigDirFunc }()
	userConfigDirFunc = func() (string, error) {
		return tempDir, nil
	}

	wantDefault := filepath.Join(tempDir, constants.TrayAppIdentifier)
	dir, err := GetTrayAppConfigDir()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dir != wantDefault {
		t.Errorf("expected %s, got %s", wantDefault, dir)
	}

	// A custom lockfile dir in the tray app's settings wins.
	trayConfigDir := filepath.Join(tempDir, constants.TrayAppIdentifier)
	if err := os.MkdirAll(trayConfigDir, 0755); err != nil {
		t.Fatal(err)
	}
	customDir := "/custom/daybook/dir"
	settingsJSON := `{"settings": {"lockfile_dir": "` + customDir + `"}}`
	if err := os.WriteFile(filepath.Join(trayConfigDir, "settings.json"), []byte(settingsJSON), 0644); err != nil {
		t.Fatal(err)
	}

	dir, err = GetTrayAppConfigDir()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dir != customDir {
		t.Errorf("expected %s, got %s", customDir, dir)
	}
}

func TestFindAndValidateTrayProcess(t *testing.T) {
	oldFindProcessFunc := findProcessFunc
	defer func() { findProcessFunc = oldFindProcessFunc }()

	lockfilePath := filepath.Join(t.TempDir(), constants.NotifierLockfileName)

	writeLockfile := func(content string) {
		t.Helper()
		if err := os.WriteFile(lockfilePath, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}

	if _, _, err := findAndValidateTrayProcess(lockfilePath); err == nil {
		t.Error("expected error for missing lockfile")
	}

	badLockfiles := []struct {
		name    string
		content string
	}{
		{"two-part format", "8080|12345"},
		{"not a lockfile", "invalid"},
		{"empty secret", "8080|12345|"},
		{"empty port", "|12345|testsecret123"},
		{"non-numeric port", "abc|12345|testsecret123"},
		{"port out of range", "99999|12345|testsecret123"},
		{"non-numeric pid", "8080|xyz|testsecret123"},
	}
	for _, tc := range badLockfiles {
		writeLockfile(tc.content)
		if _, _, err := findAndValidateTrayProcess(lockfilePath); err == nil {
			t.Errorf("%s: expected error", tc.name)
		}
	}

	writeLockfile("8080|12345|testsecret123")

	findProcessFunc = func(pid int) (ps.Process, error) {
		return nil, nil
	}
	if _, _, err := findAndValidateTrayProcess(lockfilePath); err == nil {
		t.Error("expected error when the process is gone")
	}

	findProcessFunc = func(pid int) (ps.Process, error) {
		return &mockProcess{pid: pid, executable: "other-app"}, nil
	}
	if _, _, err := findAndValidateTrayProcess(lockfilePath); err == nil {
		t.Error("expected error when the PID belongs to another executable")
	}

	findProcessFunc = func(pid int) (ps.Process, error) {
		return &mockProcess{pid: pid, executable: "daybook-tray"}, nil
	}
	port, secret, err := findAndValidateTrayProcess(lockfilePath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if port != "8080" {
		t.Errorf("expected port 8080, got %s", port)
	}
	if secret != "testsecret123" {
		t.Errorf("expected secret testsecret123, got %s", secret)
	}
}

func TestSendWebhook(t *testing.T) {
	var gotPayload WebhookPayload
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		if r.Header.Get("X-Daybook-Secret") != "test-secret" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte("Unauthorized"))
			return
		}
		if err := json.NewDecoder(r.Body).Decode(&gotPayload); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if gotPayload.Text == "fail" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	parts := strings.Split(server.URL, ":")
	port := parts[len(parts)-1]

	if err := sendWebhook(port, "test-secret", WebhookPayload{Text: "hello", DurationMs: 5000}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if gotPayload.Text != "hello" || gotPayload.DurationMs != 5000 {
		t.Errorf("payload did not arrive intact: %+v", gotPayload)
	}

	// A reschedule carries only the reminder time.
	if err := sendWebhook(port, "test-secret", WebhookPayload{ReminderTime: "20:30"}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if gotPayload.ReminderTime != "20:30" || gotPayload.Text != "" {
		t.Errorf("reschedule payload wrong: %+v", gotPayload)
	}

	if err := sendWebhook(port, "wrong-secret", WebhookPayload{Text: "hello"}); err == nil {
		t.Error("expected error for wrong secret")
	}
	if err := sendWebhook(port, "test-secret", WebhookPayload{Text: "fail"}); err == nil {
		t.Error("expected error for server failure")
	}
}
