package service

import (
	"context"
	"time"

	"github.com/mealtrack/mealtrack-go/internal/model"
	"github.com/mealtrack/mealtrack-go/internal/nutrition"
)

// UserStore is the user persistence the services depend on.
// *repository.UserRepository satisfies it.
type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
}

// GoalStore is satisfied by *repository.GoalRepository.
type GoalStore interface {
	GetByType(ctx context.Context, userID int64, goalType model.GoalType) (*model.Goal, error)
	Upsert(ctx context.Context, goal *model.Goal) error
}

// LogEntryStore is satisfied by *repository.LogEntryRepository.
type LogEntryStore interface {
	Create(ctx context.Context, entry *model.LogEntry) error
	GetBySlugID(ctx context.Context, slugID string) (*model.LogEntry, error)
	ListByUser(ctx context.Context, userID int64, limit, offset int) ([]model.LogEntry, error)
	ListByUserBetween(ctx context.Context, userID int64, from, to time.Time) ([]model.LogEntry, error)
	CountByUser(ctx context.Context, userID int64) (int, error)
}

// Estimator turns a meal description into nutrition.
// *nutrition.GeminiClient satisfies it.
type Estimator interface {
	Estimate(ctx context.Context, mealText string) (nutrition.Estimate, error)
}

func toLogEntryResponse(e model.LogEntry) model.LogEntryResponse {
	return model.LogEntryResponse{
		ID:            e.ID,
		SlugID:        e.SlugID,
		Calories:      e.Calories,
		Fats:          e.Fats,
		Carbohydrates: e.Carbohydrates,
		Proteins:      e.Proteins,
		Sugars:        e.Sugars,
		Notes:         e.Notes,
		Slug:          e.Slug,
		Timestamp:     e.LoggedAt,
	}
}

// startOfDay returns local midnight of the day t falls on.
func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
