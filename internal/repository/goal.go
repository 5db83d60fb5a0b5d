package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/mealtrack/mealtrack-go/internal/model"
)

var ErrGoalNotFound = errors.New("goal not found")

// GoalRepository handles goal persistence operations.
type GoalRepository struct {
	db *sql.DB
}

// NewGoalRepository creates a new GoalRepository.
func NewGoalRepository(db *sql.DB) *GoalRepository {
	return &GoalRepository{db: db}
}

// upsertGoalQuery relies on the (user_id, type) unique key so a user never
// holds two goals of the same type. The row alias needs MySQL 8.0.19+.
const upsertGoalQuery = `
	INSERT INTO goals (user_id, type, value)
	VALUES (?, ?, ?) AS new
	ON DUPLICATE KEY UPDATE
		value      = new.value,
		updated_at = CURRENT_TIMESTAMP`

// GetByType retrieves the goal of the given type for a user.
func (r *GoalRepository) GetByType(ctx context.Context, userID int64, goalType model.GoalType) (*model.Goal, error) {
	query := `SELECT id, user_id, type, value, created_at, updated_at
		FROM goals WHERE user_id = ? AND type = ?`

	goal := &model.Goal{}
	err := r.db.QueryRowContext(ctx, query, userID, string(goalType)).Scan(
		&goal.ID, &goal.UserID, &goal.Type, &goal.Value, &goal.CreatedAt, &goal.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrGoalNotFound
		}
		return nil, err
	}

	return goal, nil
}

// Upsert creates the goal or replaces the value of the existing one.
func (r *GoalRepository) Upsert(ctx context.Context, goal *model.Goal) error {
	_, err := r.db.ExecContext(ctx, upsertGoalQuery, goal.UserID, string(goal.Type), goal.Value)
	return err
}
