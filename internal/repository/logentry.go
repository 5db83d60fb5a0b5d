package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/mealtrack/mealtrack-go/internal/model"
)

var (
	ErrLogEntryNotFound = errors.New("log entry not found")
	ErrDuplicateSlugID  = errors.New("slug id already exists")
)

// LogEntryRepository handles log entry persistence operations.
type LogEntryRepository struct {
	db *sql.DB
}

// NewLogEntryRepository creates a new LogEntryRepository.
func NewLogEntryRepository(db *sql.DB) *LogEntryRepository {
	return &LogEntryRepository{db: db}
}

const logEntryColumns = `id, user_id, calories, fats, carbohydrates, proteins, sugars,
	notes, slug, slug_id, logged_at`

// Create inserts a log entry and sets the generated ID on it.
func (r *LogEntryRepository) Create(ctx context.Context, entry *model.LogEntry) error {
	query := `INSERT INTO log_entries
		(user_id, calories, fats, carbohydrates, proteins, sugars, notes, slug, slug_id, logged_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query,
		entry.UserID,
		entry.Calories,
		entry.Fats,
		entry.Carbohydrates,
		entry.Proteins,
		entry.Sugars,
		entry.Notes,
		entry.Slug,
		entry.SlugID,
		entry.LoggedAt,
	)
	if err != nil {
		if isDuplicateEntryError(err) {
			return ErrDuplicateSlugID
		}
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	entry.ID = id
	return nil
}

// GetBySlugID retrieves a log entry by its public identifier, whoever owns it.
func (r *LogEntryRepository) GetBySlugID(ctx context.Context, slugID string) (*model.LogEntry, error) {
	query := `SELECT ` + logEntryColumns + ` FROM log_entries WHERE slug_id = ?`

	entry, err := scanLogEntry(r.db.QueryRowContext(ctx, query, slugID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrLogEntryNotFound
		}
		return nil, err
	}

	return entry, nil
}

// ListByUser returns one page of a user's entries, most recent first.
func (r *LogEntryRepository) ListByUser(ctx context.Context, userID int64, limit, offset int) ([]model.LogEntry, error) {
	query := `SELECT ` + logEntryColumns + ` FROM log_entries
		WHERE user_id = ? ORDER BY logged_at DESC, id DESC LIMIT ? OFFSET ?`

	return r.list(ctx, query, userID, limit, offset)
}

// ListByUserBetween returns a user's entries logged in [from, to), oldest first.
func (r *LogEntryRepository) ListByUserBetween(ctx context.Context, userID int64, from, to time.Time) ([]model.LogEntry, error) {
	query := `SELECT ` + logEntryColumns + ` FROM log_entries
		WHERE user_id = ? AND logged_at >= ? AND logged_at < ? ORDER BY logged_at ASC`

	return r.list(ctx, query, userID, from, to)
}

// CountByUser returns how many entries a user has logged.
func (r *LogEntryRepository) CountByUser(ctx context.Context, userID int64) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM log_entries WHERE user_id = ?`, userID).Scan(&n)
	return n, err
}

func (r *LogEntryRepository) list(ctx context.Context, query string, args ...any) ([]model.LogEntry, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []model.LogEntry
	for rows.Next() {
		e, err := scanLogEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *e)
	}

	return entries, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLogEntry(row rowScanner) (*model.LogEntry, error) {
	e := &model.LogEntry{}
	err := row.Scan(
		&e.ID, &e.UserID, &e.Calories, &e.Fats, &e.Carbohydrates, &e.Proteins, &e.Sugars,
		&e.Notes, &e.Slug, &e.SlugID, &e.LoggedAt,
	)
	if err != nil {
		return nil, err
	}
	return e, nil
}
