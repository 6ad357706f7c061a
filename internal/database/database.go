package database

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"flightaudit/internal/models"
)

// Store persists audit results to SQLite so that successive audit runs
// over the same records can be compared later.
type Store struct {
	db *sql.DB
}

// New opens (or creates) the results database at dbPath.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}
	if _, err := db.Exec("PRAGMA busy_timeout=5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set busy timeout: %w", err)
	}

	store := &Store{db: db}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) initSchema() error {
	schema := `CREATE TABLE IF NOT EXISTS violations (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		audited_at TIMESTAMP NOT NULL,
		student TEXT NOT NULL,
		airplane TEXT NOT NULL,
		instructor TEXT,
		takeoff TEXT NOT NULL,
		landing TEXT NOT NULL,
		filed TEXT,
		area TEXT,
		reason TEXT NOT NULL
	);`

	indexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_violations_student ON violations(student)`,
		`CREATE INDEX IF NOT EXISTS idx_violations_airplane ON violations(airplane)`,
		`CREATE INDEX IF NOT EXISTS idx_violations_reason ON violations(reason)`,
	}

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create violations table: %w", err)
	}
	for _, idx := range indexes {
		if _, err := s.db.Exec(idx); err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}
	return nil
}

// InsertBatch writes one audit run's violations in a single transaction.
func (s *Store) InsertBatch(auditedAt time.Time, violations []models.Violation) error {
	if len(violations) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`INSERT INTO violations (
		audited_at, student, airplane, instructor, takeoff, landing, filed, area, reason
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for i := range violations {
		v := &violations[i]
		if _, err := stmt.Exec(
			auditedAt, v.Student, v.Airplane, v.Instructor,
			v.Takeoff, v.Landing, v.Filed, v.Area, v.Reason,
		); err != nil {
			return fmt.Errorf("failed to insert violation: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// CountByReason returns the number of stored violations per reason label.
func (s *Store) CountByReason() (map[string]int, error) {
	rows, err := s.db.Query(`SELECT reason, COUNT(*) FROM violations GROUP BY reason`)
	if err != nil {
		return nil, fmt.Errorf("failed to query violations: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var reason string
		var count int
		if err := rows.Scan(&reason, &count); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		counts[reason] = count
	}
	return counts, rows.Err()
}
