package storage

import (
	"database/sql"
	"fmt"
	"net/url"
	"strings"

	_ "github.com/lib/pq"
)

type PostgresStore struct {
	connStr string
	db      *sql.DB
}

func NewPostgresStore(connStr string) *PostgresStore {
	return &PostgresStore{
		connStr: connStr,
	}
}

func (s *PostgresStore) Init() error {
	db, err := sql.Open("postgres", s.connStr)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	// Test connection
	if err := s.db.Ping(); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := s.createSchema(); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

func (s *PostgresStore) Load() error {
	if s.db != nil {
		return nil
	}

	db, err := sql.Open("postgres", s.connStr)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if err := s.db.Ping(); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := s.createSchema(); err != nil {
		return fmt.Errorf("failed to verify schema: %w", err)
	}

	return nil
}

func (s *PostgresStore) Close() error {
	if s.db != nil {
		err := s.db.Close()
		s.db = nil
		return err
	}
	return nil
}

func (s *PostgresStore) createSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS kv (
		key TEXT PRIMARY KEY,
		value BYTEA NOT NULL
	)`)
	return err
}

func (s *PostgresStore) Get(key string) ([]byte, error) {
	if s.db == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	var value []byte
	err := s.db.QueryRow("SELECT value FROM kv WHERE key = $1", key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read key %s: %w", key, err)
	}

	return value, nil
}

func (s *PostgresStore) Set(key string, value []byte) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	_, err := s.db.Exec(
		"INSERT INTO kv (key, value) VALUES ($1, $2) ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value",
		key, value,
	)
	if err != nil {
		return fmt.Errorf("failed to write key %s: %w", key, err)
	}

	return nil
}

func (s *PostgresStore) Remove(key string) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	if _, err := s.db.Exec("DELETE FROM kv WHERE key = $1", key); err != nil {
		return fmt.Errorf("failed to remove key %s: %w", key, err)
	}

	return nil
}

func (s *PostgresStore) Keys(prefix string) ([]string, error) {
	if s.db == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	rows, err := s.db.Query("SELECT key FROM kv ORDER BY key")
	if err != nil {
		return nil, fmt.Errorf("failed to list keys: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, err
		}
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}

	return keys, rows.Err()
}

func (s *PostgresStore) GetConfigPath() string {
	return s.connStr
}

// HasEmbeddedCredentials reports whether a PostgreSQL connection string
// carries a password inline. Credentials belong in the OS keyring, the
// DAYBOOK_DB_CONNECTION environment variable, or .pgpass instead.
func HasEmbeddedCredentials(connStr string) bool {
	u, err := url.Parse(connStr)
	if err != nil {
		return false
	}
	if u.User == nil {
		return false
	}
	_, hasPassword := u.User.Password()
	return hasPassword
}
