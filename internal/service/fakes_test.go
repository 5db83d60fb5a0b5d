package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/mealtrack/mealtrack-go/internal/model"
	"github.com/mealtrack/mealtrack-go/internal/nutrition"
	"github.com/mealtrack/mealtrack-go/internal/repository"
)

type fakeUserStore struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]*model.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[int64]*model.User)}
}

func (f *fakeUserStore) Create(_ context.Context, user *model.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, u := range f.users {
		if u.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
	}
	f.nextID++
	user.ID = f.nextID
	stored := *user
	f.users[user.ID] = &stored
	return nil
}

func (f *fakeUserStore) GetByEmail(_ context.Context, email string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, u := range f.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (f *fakeUserStore) GetByID(_ context.Context, id int64) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	u, ok := f.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

func (f *fakeUserStore) delete(id int64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.users, id)
}

type goalKey struct {
	userID int64
	t      model.GoalType
}

type fakeGoalStore struct {
	nextID int64
	goals  map[goalKey]*model.Goal
	err    error
}

func newFakeGoalStore() *fakeGoalStore {
	return &fakeGoalStore{goals: make(map[goalKey]*model.Goal)}
}

func (f *fakeGoalStore) GetByType(_ context.Context, userID int64, t model.GoalType) (*model.Goal, error) {
	if f.err != nil {
		return nil, f.err
	}
	g, ok := f.goals[goalKey{userID, t}]
	if !ok {
		return nil, repository.ErrGoalNotFound
	}
	copied := *g
	return &copied, nil
}

func (f *fakeGoalStore) Upsert(_ context.Context, goal *model.Goal) error {
	if f.err != nil {
		return f.err
	}
	key := goalKey{goal.UserID, goal.Type}
	now := time.Now()
	if g, ok := f.goals[key]; ok {
		g.Value = goal.Value
		g.UpdatedAt = now
		return nil
	}
	f.nextID++
	f.goals[key] = &model.Goal{
		ID: f.nextID, UserID: goal.UserID, Type: goal.Type, Value: goal.Value,
		CreatedAt: now, UpdatedAt: now,
	}
	return nil
}

type fakeLogStore struct {
	mu        sync.Mutex
	nextID    int64
	entries   []model.LogEntry
	createErr error
}

func (f *fakeLogStore) Create(_ context.Context, entry *model.LogEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.createErr != nil {
		return f.createErr
	}
	for _, e := range f.entries {
		if e.SlugID == entry.SlugID {
			return repository.ErrDuplicateSlugID
		}
	}
	f.nextID++
	entry.ID = f.nextID
	f.entries = append(f.entries, *entry)
	return nil
}

// add stores an entry as-is, for building fixtures.
func (f *fakeLogStore) add(userID int64, at time.Time, calories, proteins float64) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.nextID++
	f.entries = append(f.entries, model.LogEntry{
		ID: f.nextID, UserID: userID, Calories: calories, Proteins: proteins,
		Slug: "meal", SlugID: "meal-" + at.Format(time.RFC3339Nano), LoggedAt: at,
	})
}

func (f *fakeLogStore) GetBySlugID(_ context.Context, slugID string) (*model.LogEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, e := range f.entries {
		if e.SlugID == slugID {
			copied := e
			return &copied, nil
		}
	}
	return nil, repository.ErrLogEntryNotFound
}

func (f *fakeLogStore) ListByUser(_ context.Context, userID int64, limit, offset int) ([]model.LogEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var mine []model.LogEntry
	for _, e := range f.entries {
		if e.UserID == userID {
			mine = append(mine, e)
		}
	}
	sort.Slice(mine, func(i, j int) bool {
		if mine[i].LoggedAt.Equal(mine[j].LoggedAt) {
			return mine[i].ID > mine[j].ID
		}
		return mine[i].LoggedAt.After(mine[j].LoggedAt)
	})

	if offset >= len(mine) {
		return nil, nil
	}
	end := min(offset+limit, len(mine))
	return mine[offset:end], nil
}

func (f *fakeLogStore) ListByUserBetween(_ context.Context, userID int64, from, to time.Time) ([]model.LogEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []model.LogEntry
	for _, e := range f.entries {
		if e.UserID == userID && !e.LoggedAt.Before(from) && e.LoggedAt.Before(to) {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LoggedAt.Before(out[j].LoggedAt) })
	return out, nil
}

func (f *fakeLogStore) CountByUser(_ context.Context, userID int64) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	n := 0
	for _, e := range f.entries {
		if e.UserID == userID {
			n++
		}
	}
	return n, nil
}

type fakeEstimator struct {
	estimate nutrition.Estimate
	err      error
	calls    int
	lastText string
}

func (f *fakeEstimator) Estimate(_ context.Context, mealText string) (nutrition.Estimate, error) {
	f.calls++
	f.lastText = mealText
	return f.estimate, f.err
}
