package journal

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/julianstephens/daybook/internal/models"
	"github.com/julianstephens/daybook/internal/storage"
)

// memStore is an in-memory Store for tests. It records every Set and Remove
// so tests can assert on persistence side effects, and can be told to fail
// writes.
type memStore struct {
	data    map[string][]byte
	sets    []string
	removes []string
	failSet bool
}

func newMemStore() *memStore {
	return &memStore{data: make(map[string][]byte)}
}

func (m *memStore) Get(key string) ([]byte, error) {
	v, ok := m.data[key]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return v, nil
}

func (m *memStore) Set(key string, value []byte) error {
	m.sets = append(m.sets, key)
	if m.failSet {
		return errors.New("write failed")
	}
	m.data[key] = value
	return nil
}

func (m *memStore) Remove(key string) error {
	m.removes = append(m.removes, key)
	delete(m.data, key)
	return nil
}

// putJSON marshals v and stores it directly, bypassing the journal layer.
func (m *memStore) putJSON(t *testing.T, key string, v interface{}) {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("failed to marshal fixture for %s: %v", key, err)
	}
	m.data[key] = data
}

func boolPtr(v bool) *bool        { return &v }
func floatPtr(v float64) *float64 { return &v }
func stringPtr(v string) *string  { return &v }

func testQuestions() []models.Question {
	return []models.Question{
		{ID: "q-mood", Text: "How would you rate your mood today?", Type: models.QuestionSlider},
		{ID: "q-sleep", Text: "Did you get enough sleep last night?", Type: models.QuestionYesNo},
		{ID: "q-mind", Text: "Is there anything on your mind?", Type: models.QuestionFreeText},
	}
}
