package state

import (
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// OpenDB opens (or creates) the console state database and ensures its
// schema. Use ":memory:" in tests.
func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}
	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS kv(
  key        TEXT PRIMARY KEY,
  value      TEXT NOT NULL,
  expires_at TEXT,
  updated_at TEXT DEFAULT CURRENT_TIMESTAMP
);
`
	_, err := db.Exec(schema)
	return err
}

// SQLStore backs Store onto the sqlite kv table.
type SQLStore struct {
	db *sqlx.DB
}

func NewSQLStore(db *sqlx.DB) *SQLStore { return &SQLStore{db: db} }

func (s *SQLStore) Get(key string) (string, bool, error) {
	var row struct {
		Value   string         `db:"value"`
		Expires sql.NullString `db:"expires_at"`
	}
	err := s.db.Get(&row, `SELECT value, expires_at FROM kv WHERE key = ?`, key)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	if row.Expires.Valid {
		exp, perr := time.Parse(time.RFC3339, row.Expires.String)
		if perr == nil && time.Now().After(exp) {
			// Lazy expiry; the row is dead either way.
			_, _ = s.db.Exec(`DELETE FROM kv WHERE key = ?`, key)
			return "", false, nil
		}
	}
	return row.Value, true, nil
}

func (s *SQLStore) Set(key, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO kv(key, value, expires_at, updated_at)
		VALUES(?, ?, NULL, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET
		  value = excluded.value, expires_at = NULL, updated_at = CURRENT_TIMESTAMP
	`, key, value)
	return err
}

func (s *SQLStore) SetTTL(key, value string, ttl time.Duration) error {
	exp := time.Now().Add(ttl).UTC().Format(time.RFC3339)
	_, err := s.db.Exec(`
		INSERT INTO kv(key, value, expires_at, updated_at)
		VALUES(?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET
		  value = excluded.value, expires_at = excluded.expires_at, updated_at = CURRENT_TIMESTAMP
	`, key, value, exp)
	return err
}

func (s *SQLStore) Delete(key string) error {
	_, err := s.db.Exec(`DELETE FROM kv WHERE key = ?`, key)
	return err
}

func (s *SQLStore) Clear() error {
	_, err := s.db.Exec(`DELETE FROM kv`)
	return err
}
