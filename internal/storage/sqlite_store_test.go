package storage

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "daybook.db")
	s := NewSQLiteStore(path)
	if err := s.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLiteStore_SetGetRemove(t *testing.T) {
	s := newTestSQLiteStore(t)

	if _, err := s.Get("settings"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for a missing key, got %v", err)
	}

	if err := s.Set("settings", []byte(`{"timezone":"Local"}`)); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	got, err := s.Get("settings")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if string(got) != `{"timezone":"Local"}` {
		t.Errorf("Get = %s", got)
	}

	// Overwrite.
	if err := s.Set("settings", []byte(`{"timezone":"UTC"}`)); err != nil {
		t.Fatalf("overwrite failed: %v", err)
	}
	got, _ = s.Get("settings")
	if string(got) != `{"timezone":"UTC"}` {
		t.Errorf("overwrite did not take: %s", got)
	}

	if err := s.Remove("settings"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if _, err := s.Get("settings"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after remove, got %v", err)
	}
	if err := s.Remove("settings"); err != nil {
		t.Errorf("Remove of absent key failed: %v", err)
	}
}

func TestSQLiteStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "daybook.db")
	s := NewSQLiteStore(path)
	if err := s.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if err := s.Set("questions", []byte(`[{"id":"q1"}]`)); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reopened := NewSQLiteStore(path)
	if err := reopened.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	defer reopened.Close()

	got, err := reopened.Get("questions")
	if err != nil {
		t.Fatalf("Get after reopen failed: %v", err)
	}
	if string(got) != `[{"id":"q1"}]` {
		t.Errorf("value changed across reopen: %s", got)
	}
}

func TestSQLiteStore_LoadFailsWhenUninitialized(t *testing.T) {
	s := NewSQLiteStore(filepath.Join(t.TempDir(), "missing.db"))
	if err := s.Load(); err == nil {
		t.Error("expected an error loading a missing database")
	}
}

func TestSQLiteStore_KeysPrefixTreatsUnderscoreLiterally(t *testing.T) {
	s := newTestSQLiteStore(t)

	// "answersX..." would match "answers_" under a LIKE pattern, where the
	// underscore is a single-character wildcard.
	for _, key := range []string{"answers_2026-03-09", "answers_2026-03-10", "answersX2026-03-11", "questions"} {
		if err := s.Set(key, []byte(`{}`)); err != nil {
			t.Fatalf("Set %s failed: %v", key, err)
		}
	}

	got, err := s.Keys("answers_")
	if err != nil {
		t.Fatalf("Keys failed: %v", err)
	}
	want := []string{"answers_2026-03-09", "answers_2026-03-10"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Keys(answers_) = %v, want %v", got, want)
	}
}

func TestSQLiteStore_OperationsFailBeforeLoad(t *testing.T) {
	s := NewSQLiteStore(filepath.Join(t.TempDir(), "daybook.db"))
	if _, err := s.Get("k"); err == nil {
		t.Error("Get before load should fail")
	}
	if err := s.Set("k", []byte("{}")); err == nil {
		t.Error("Set before load should fail")
	}
	if _, err := s.Keys(""); err == nil {
		t.Error("Keys before load should fail")
	}
}
