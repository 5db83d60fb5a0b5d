package service

import (
	"context"
	"errors"
	"math"

	"github.com/mealtrack/mealtrack-go/internal/model"
	"github.com/mealtrack/mealtrack-go/internal/repository"
)

var (
	ErrGoalTypeRequired   = errors.New("type parameter is required")
	ErrGoalFieldsRequired = errors.New("type and value are required")
	ErrInvalidGoalType    = errors.New("invalid goal type")
	ErrInvalidGoalValue   = errors.New("goal value must be a non-negative number")
)

// GoalService reads and stores per-nutrient daily targets.
type GoalService struct {
	goals GoalStore
}

// NewGoalService creates a new GoalService.
func NewGoalService(goals GoalStore) *GoalService {
	return &GoalService{goals: goals}
}

// Get returns the user's goal of the given type. When none is stored the
// type's default value is returned with IsDefault set; nothing is created.
func (s *GoalService) Get(ctx context.Context, userID int64, goalType string) (model.GoalResponse, error) {
	if goalType == "" {
		return model.GoalResponse{}, ErrGoalTypeRequired
	}
	t := model.GoalType(goalType)
	if !t.Valid() {
		return model.GoalResponse{}, ErrInvalidGoalType
	}

	goal, err := s.goals.GetByType(ctx, userID, t)
	if err != nil {
		if errors.Is(err, repository.ErrGoalNotFound) {
			return model.GoalResponse{Type: t, Value: t.DefaultValue(), IsDefault: true}, nil
		}
		return model.GoalResponse{}, err
	}

	return toGoalResponse(goal), nil
}

// Set creates or replaces the user's goal of the requested type.
func (s *GoalService) Set(ctx context.Context, userID int64, req model.GoalRequest) (model.GoalResponse, error) {
	if req.Type == "" || req.Value == nil {
		return model.GoalResponse{}, ErrGoalFieldsRequired
	}
	t := model.GoalType(req.Type)
	if !t.Valid() {
		return model.GoalResponse{}, ErrInvalidGoalType
	}
	value := *req.Value
	if math.IsNaN(value) || math.IsInf(value, 0) || value < 0 {
		return model.GoalResponse{}, ErrInvalidGoalValue
	}

	if err := s.goals.Upsert(ctx, &model.Goal{UserID: userID, Type: t, Value: value}); err != nil {
		return model.GoalResponse{}, err
	}

	goal, err := s.goals.GetByType(ctx, userID, t)
	if err != nil {
		return model.GoalResponse{}, err
	}

	return toGoalResponse(goal), nil
}

func toGoalResponse(goal *model.Goal) model.GoalResponse {
	return model.GoalResponse{
		ID:        goal.ID,
		Type:      goal.Type,
		Value:     goal.Value,
		CreatedAt: &goal.CreatedAt,
		UpdatedAt: &goal.UpdatedAt,
	}
}
