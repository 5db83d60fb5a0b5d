// Package seed installs the test account and generates sample log entries
// for local development.
package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/mealtrack/mealtrack-go/internal/crypto"
	"github.com/mealtrack/mealtrack-go/internal/model"
	"github.com/mealtrack/mealtrack-go/internal/nutrition"
)

const (
	TestUserEmail    = "test@example.com"
	TestUserPassword = "testpassword123"
)

// ErrUsersExist is returned by InstallTestUser when any account exists.
var ErrUsersExist = errors.New("database already has users")

var testUserGoals = map[model.GoalType]float64{
	model.GoalCalories: 2000,
	model.GoalProtein:  150,
	model.GoalCarbs:    250,
	model.GoalFats:     65,
}

// UserStore is satisfied by *repository.UserRepository.
type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	Count(ctx context.Context) (int, error)
}

// GoalStore is satisfied by *repository.GoalRepository.
type GoalStore interface {
	Upsert(ctx context.Context, goal *model.Goal) error
}

// LogEntryStore is satisfied by *repository.LogEntryRepository.
type LogEntryStore interface {
	Create(ctx context.Context, entry *model.LogEntry) error
}

// Seeder writes development data through the repositories.
type Seeder struct {
	users   UserStore
	goals   GoalStore
	entries LogEntryStore
	now     func() time.Time
	rng     *rand.Rand
}

// New creates a Seeder.
func New(users UserStore, goals GoalStore, entries LogEntryStore) *Seeder {
	return &Seeder{
		users:   users,
		goals:   goals,
		entries: entries,
		now:     time.Now,
		rng:     rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
}

// InstallTestUser creates the test account with goals and a week of sample
// meals. It refuses to touch a database that already has users.
func (s *Seeder) InstallTestUser(ctx context.Context) (*model.User, error) {
	n, err := s.users.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("counting users: %w", err)
	}
	if n > 0 {
		return nil, fmt.Errorf("%w: found %d", ErrUsersExist, n)
	}

	hash, err := crypto.HashPassword(TestUserPassword)
	if err != nil {
		return nil, err
	}

	user := &model.User{Email: TestUserEmail, AuthHash: hash}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("creating test user: %w", err)
	}
	slog.Info("test user created", "email", user.Email, "id", user.ID)

	for _, t := range model.GoalTypes {
		goal := &model.Goal{UserID: user.ID, Type: t, Value: testUserGoals[t]}
		if err := s.goals.Upsert(ctx, goal); err != nil {
			return nil, fmt.Errorf("creating %s goal: %w", t, err)
		}
	}

	week := 7 * 24 * time.Hour
	now := s.now()
	for _, meal := range sampleMeals {
		at := now.Add(-time.Duration(s.rng.Int64N(int64(week))))
		if err := s.logMeal(ctx, user.ID, meal, at); err != nil {
			return nil, err
		}
	}
	slog.Info("sample data installed", "goals", len(model.GoalTypes), "meals", len(sampleMeals))

	return user, nil
}

// GenerateLogs adds count random meals for the user with the given email,
// spread over the past weeks at meal-time hours.
func (s *Seeder) GenerateLogs(ctx context.Context, email string, count, weeks int) error {
	if count < 1 || weeks < 1 {
		return fmt.Errorf("count and weeks must be positive, got %d and %d", count, weeks)
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("looking up %s: %w", email, err)
	}

	for _, at := range s.mealTimes(count, weeks) {
		meal := generatedMeals[s.rng.IntN(len(generatedMeals))]
		if err := s.logMeal(ctx, user.ID, meal, at); err != nil {
			return err
		}
	}

	slog.Info("log entries generated", "email", email, "count", count, "weeks", weeks)
	return nil
}

// mealTimes picks count random moments in the past weeks, oldest first,
// each moved to a typical meal hour of its day.
func (s *Seeder) mealTimes(count, weeks int) []time.Time {
	now := s.now()
	span := time.Duration(weeks) * 7 * 24 * time.Hour
	start := now.Add(-span)

	times := make([]time.Time, 0, count)
	for range count {
		t := start.Add(time.Duration(s.rng.Int64N(int64(span))))
		y, m, d := t.Date()
		t = time.Date(y, m, d, s.mealHour(), s.rng.IntN(60), 0, 0, now.Location())
		if t.After(now) {
			t = t.AddDate(0, 0, -1)
		}
		times = append(times, t)
	}

	slices.SortFunc(times, time.Time.Compare)
	return times
}

// mealHour favours breakfast, then lunch, then dinner, then evening snacks.
func (s *Seeder) mealHour() int {
	switch {
	case s.rng.Float64() < 0.3:
		return 7 + s.rng.IntN(2)
	case s.rng.Float64() < 0.6:
		return 11 + s.rng.IntN(3)
	case s.rng.Float64() < 0.8:
		return 17 + s.rng.IntN(3)
	default:
		return 19 + s.rng.IntN(4)
	}
}

func (s *Seeder) logMeal(ctx context.Context, userID int64, meal mealTemplate, at time.Time) error {
	entry := &model.LogEntry{
		UserID:        userID,
		Calories:      meal.calories,
		Fats:          meal.fats,
		Carbohydrates: meal.carbohydrates,
		Proteins:      meal.proteins,
		Sugars:        meal.sugars,
		Notes:         meal.notes,
		Slug:          meal.slug,
		SlugID:        nutrition.NewSlugID(meal.slug),
		LoggedAt:      at.Truncate(time.Millisecond),
	}
	if err := s.entries.Create(ctx, entry); err != nil {
		return fmt.Errorf("logging %s: %w", meal.slug, err)
	}
	return nil
}
