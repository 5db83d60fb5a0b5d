package handler

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/mealtrack/mealtrack-go/internal/model"
	"github.com/mealtrack/mealtrack-go/internal/nutrition"
	"github.com/mealtrack/mealtrack-go/internal/repository"
)

type memUsers struct {
	mu    sync.Mutex
	users []model.User
}

func (m *memUsers) Create(_ context.Context, user *model.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
	}
	user.ID = int64(len(m.users) + 1)
	m.users = append(m.users, *user)
	return nil
}

func (m *memUsers) GetByEmail(_ context.Context, email string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (m *memUsers) GetByID(_ context.Context, id int64) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.ID == id {
			return &u, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

type memGoals struct {
	mu    sync.Mutex
	goals []model.Goal
}

func (m *memGoals) GetByType(_ context.Context, userID int64, t model.GoalType) (*model.Goal, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, g := range m.goals {
		if g.UserID == userID && g.Type == t {
			return &g, nil
		}
	}
	return nil, repository.ErrGoalNotFound
}

func (m *memGoals) Upsert(_ context.Context, goal *model.Goal) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now()
	for i := range m.goals {
		if m.goals[i].UserID == goal.UserID && m.goals[i].Type == goal.Type {
			m.goals[i].Value = goal.Value
			m.goals[i].UpdatedAt = now
			return nil
		}
	}
	m.goals = append(m.goals, model.Goal{
		ID: int64(len(m.goals) + 1), UserID: goal.UserID, Type: goal.Type, Value: goal.Value,
		CreatedAt: now, UpdatedAt: now,
	})
	return nil
}

type memLogs struct {
	mu      sync.Mutex
	entries []model.LogEntry
}

func (m *memLogs) Create(_ context.Context, entry *model.LogEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	entry.ID = int64(len(m.entries) + 1)
	m.entries = append(m.entries, *entry)
	return nil
}

func (m *memLogs) GetBySlugID(_ context.Context, slugID string) (*model.LogEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.entries {
		if e.SlugID == slugID {
			return &e, nil
		}
	}
	return nil, repository.ErrLogEntryNotFound
}

func (m *memLogs) ListByUser(_ context.Context, userID int64, limit, offset int) ([]model.LogEntry, error) {
	mine := m.byUser(userID)
	sort.Slice(mine, func(i, j int) bool { return mine[i].LoggedAt.After(mine[j].LoggedAt) })
	if offset >= len(mine) {
		return nil, nil
	}
	return mine[offset:min(offset+limit, len(mine))], nil
}

func (m *memLogs) ListByUserBetween(_ context.Context, userID int64, from, to time.Time) ([]model.LogEntry, error) {
	var out []model.LogEntry
	for _, e := range m.byUser(userID) {
		if !e.LoggedAt.Before(from) && e.LoggedAt.Before(to) {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LoggedAt.Before(out[j].LoggedAt) })
	return out, nil
}

func (m *memLogs) CountByUser(_ context.Context, userID int64) (int, error) {
	return len(m.byUser(userID)), nil
}

func (m *memLogs) byUser(userID int64) []model.LogEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []model.LogEntry
	for _, e := range m.entries {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out
}

type stubEstimator struct {
	estimate nutrition.Estimate
	err      error
}

func (s *stubEstimator) Estimate(context.Context, string) (nutrition.Estimate, error) {
	return s.estimate, s.err
}
