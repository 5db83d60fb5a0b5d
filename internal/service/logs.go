package service

import (
	"context"
	"errors"

	"github.com/mealtrack/mealtrack-go/internal/model"
	"github.com/mealtrack/mealtrack-go/internal/repository"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100

	maxSlugIDLength  = 128
	recentMealsCount = 3
)

var (
	ErrInvalidLogID      = errors.New("invalid log entry id")
	ErrLogEntryNotFound  = errors.New("log entry not found")
	ErrForbidden         = errors.New("access denied")
	ErrInvalidPagination = errors.New("limit must be between 1 and 100 and offset must not be negative")
)

// LogService serves a user's stored log entries.
type LogService struct {
	entries LogEntryStore
}

// NewLogService creates a new LogService.
func NewLogService(entries LogEntryStore) *LogService {
	return &LogService{entries: entries}
}

// Get returns the entry with the given public identifier if the user owns it.
func (s *LogService) Get(ctx context.Context, userID int64, slugID string) (model.LogEntryResponse, error) {
	if slugID == "" || len(slugID) > maxSlugIDLength {
		return model.LogEntryResponse{}, ErrInvalidLogID
	}

	entry, err := s.entries.GetBySlugID(ctx, slugID)
	if err != nil {
		if errors.Is(err, repository.ErrLogEntryNotFound) {
			return model.LogEntryResponse{}, ErrLogEntryNotFound
		}
		return model.LogEntryResponse{}, err
	}

	if entry.UserID != userID {
		return model.LogEntryResponse{}, ErrForbidden
	}

	return toLogEntryResponse(*entry), nil
}

// Recent returns one page of the user's entries, most recent first.
func (s *LogService) Recent(ctx context.Context, userID int64, limit, offset int) (model.RecentLogsResponse, error) {
	if limit < 1 || limit > MaxPageSize || offset < 0 {
		return model.RecentLogsResponse{}, ErrInvalidPagination
	}

	entries, err := s.entries.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		return model.RecentLogsResponse{}, err
	}

	total, err := s.entries.CountByUser(ctx, userID)
	if err != nil {
		return model.RecentLogsResponse{}, err
	}

	return model.RecentLogsResponse{
		LogEntries: toLogEntryResponses(entries),
		Pagination: model.Pagination{
			Total:       total,
			Limit:       limit,
			Offset:      offset,
			HasMore:     offset+limit < total,
			HasPrevious: offset > 0,
		},
	}, nil
}

// RecentMeals returns the user's three most recent entries.
func (s *LogService) RecentMeals(ctx context.Context, userID int64) ([]model.LogEntryResponse, error) {
	entries, err := s.entries.ListByUser(ctx, userID, recentMealsCount, 0)
	if err != nil {
		return nil, err
	}
	return toLogEntryResponses(entries), nil
}

func toLogEntryResponses(entries []model.LogEntry) []model.LogEntryResponse {
	resp := make([]model.LogEntryResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, toLogEntryResponse(e))
	}
	return resp
}
