package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"

	"golang.org/x/text/unicode/norm"

	"github.com/valpere/pereweb/internal"
)

// Store persists contact form submissions. Translation traffic is never
// stored; the translate path is stateless end to end.
type Store struct {
	db *sql.DB
}

func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("failed to migrate: %w", err)
	}

	return s, nil
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS contact_messages (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		message TEXT NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_contact_created ON contact_messages(created_at);
	`

	_, err := s.db.Exec(schema)
	return err
}

// SaveContact persists a single submission.
func (s *Store) SaveContact(ctx context.Context, sub internal.ContactSubmission) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO contact_messages (id, name, email, message, created_at) VALUES (?, ?, ?, ?, ?)`,
		sub.ID, normalizeText(sub.Name), normalizeText(sub.Email), normalizeText(sub.Message), sub.Timestamp)
	return err
}

// ListContacts returns submissions ordered newest first.
func (s *Store) ListContacts(ctx context.Context) ([]internal.ContactSubmission, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, email, message, created_at FROM contact_messages ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []internal.ContactSubmission
	for rows.Next() {
		var sub internal.ContactSubmission
		if err := rows.Scan(&sub.ID, &sub.Name, &sub.Email, &sub.Message, &sub.Timestamp); err != nil {
			return nil, err
		}
		results = append(results, sub)
	}

	return results, rows.Err()
}

// CountContacts returns the number of stored submissions.
func (s *Store) CountContacts(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM contact_messages`).Scan(&count)
	return count, err
}

func (s *Store) Close() error {
	return s.db.Close()
}

// normalizeText trims whitespace and applies Unicode NFC normalization
// so stored fields compare consistently.
func normalizeText(text string) string {
	return norm.NFC.String(strings.TrimSpace(text))
}
