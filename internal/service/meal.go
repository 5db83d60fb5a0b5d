package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/mealtrack/mealtrack-go/internal/metrics"
	"github.com/mealtrack/mealtrack-go/internal/model"
	"github.com/mealtrack/mealtrack-go/internal/nutrition"
)

// MaxMealTextLength is the longest meal description accepted, in characters.
const MaxMealTextLength = 2000

var (
	ErrMealTextRequired = errors.New("meal text is required")
	ErrMealTextTooLong  = errors.New("meal text is too long")
	ErrNoFoodDetected   = errors.New("no food items found in the description")
)

// MealService turns meal descriptions into stored log entries.
type MealService struct {
	entries   LogEntryStore
	estimator Estimator
	now       func() time.Time
}

// NewMealService creates a new MealService.
func NewMealService(entries LogEntryStore, estimator Estimator) *MealService {
	return &MealService{
		entries:   entries,
		estimator: estimator,
		now:       time.Now,
	}
}

// Analyze estimates the nutrition of mealText and logs it for the user.
// A description the model finds no food in yields ErrNoFoodDetected and
// nothing is stored.
func (s *MealService) Analyze(ctx context.Context, userID int64, mealText string) (model.LogEntryResponse, error) {
	text := strings.TrimSpace(mealText)
	if text == "" {
		metrics.RecordAnalysis(metrics.OutcomeInvalidInput)
		return model.LogEntryResponse{}, ErrMealTextRequired
	}
	if utf8.RuneCountInString(text) > MaxMealTextLength {
		metrics.RecordAnalysis(metrics.OutcomeInvalidInput)
		return model.LogEntryResponse{}, ErrMealTextTooLong
	}

	start := time.Now()
	est, err := s.estimator.Estimate(ctx, text)
	if !errors.Is(err, nutrition.ErrNotConfigured) {
		metrics.ObserveEstimatorRequest(time.Since(start))
	}
	if err != nil {
		metrics.RecordAnalysis(estimateOutcome(err))
		return model.LogEntryResponse{}, err
	}

	if err := est.Validate(); err != nil {
		metrics.RecordAnalysis(metrics.OutcomeInvalidReply)
		return model.LogEntryResponse{}, err
	}

	if est.Empty() {
		metrics.RecordAnalysis(metrics.OutcomeNoFood)
		return model.LogEntryResponse{}, ErrNoFoodDetected
	}

	// logged_at is stored with millisecond precision.
	loggedAt := s.now().Truncate(time.Millisecond)

	slug := nutrition.NormalizeSlug(est.Slug)
	if slug == "" {
		slug = nutrition.PeriodSlug(loggedAt, est.Calories)
	}

	entry := &model.LogEntry{
		UserID:        userID,
		Calories:      est.Calories,
		Fats:          est.Fats,
		Carbohydrates: est.Carbohydrates,
		Proteins:      est.Protein,
		Sugars:        est.Sugars,
		Notes:         est.Notes,
		Slug:          slug,
		SlugID:        nutrition.NewSlugID(slug),
		LoggedAt:      loggedAt,
	}

	if err := s.entries.Create(ctx, entry); err != nil {
		metrics.RecordAnalysis(metrics.OutcomeStoreError)
		return model.LogEntryResponse{}, fmt.Errorf("storing log entry: %w", err)
	}

	metrics.RecordAnalysis(metrics.OutcomeLogged)
	slog.Info("meal logged", "user_id", userID, "slug_id", entry.SlugID, "calories", entry.Calories)

	return toLogEntryResponse(*entry), nil
}

func estimateOutcome(err error) string {
	switch {
	case errors.Is(err, nutrition.ErrNotConfigured):
		return metrics.OutcomeNotConfigured
	case errors.Is(err, nutrition.ErrUnparseable), errors.Is(err, nutrition.ErrInvalidFormat):
		return metrics.OutcomeInvalidReply
	default:
		return metrics.OutcomeUpstreamError
	}
}
