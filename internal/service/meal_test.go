package service

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mealtrack/mealtrack-go/internal/nutrition"
)

func newTestMealService(est *fakeEstimator) (*MealService, *fakeLogStore) {
	store := &fakeLogStore{}
	svc := NewMealService(store, est)
	// 2026-03-02 is a Monday.
	svc.now = func() time.Time { return time.Date(2026, 3, 2, 10, 15, 0, 0, time.UTC) }
	return svc, store
}

func TestAnalyze_TwoEggsAndToast(t *testing.T) {
	est := &fakeEstimator{estimate: nutrition.Estimate{
		Calories: 300, Fats: 15, Carbohydrates: 30, Protein: 14, Sugars: 3,
		Notes: "two eggs and a slice of toast", Slug: "eggs-toast",
	}}
	svc, store := newTestMealService(est)

	resp, err := svc.Analyze(context.Background(), 7, "  two eggs and toast ")
	require.NoError(t, err)

	assert.Equal(t, "two eggs and toast", est.lastText)
	assert.Equal(t, 300.0, resp.Calories)
	assert.Equal(t, 14.0, resp.Proteins)
	assert.Equal(t, "eggs-toast", resp.Slug)
	assert.True(t, strings.HasPrefix(resp.SlugID, "eggs-toast-"))
	assert.Equal(t, time.Date(2026, 3, 2, 10, 15, 0, 0, time.UTC), resp.Timestamp)

	require.Len(t, store.entries, 1)
	assert.Equal(t, int64(7), store.entries[0].UserID)
	assert.Equal(t, resp.SlugID, store.entries[0].SlugID)
	assert.Equal(t, resp.ID, store.entries[0].ID)
}

func TestAnalyze_NoFoodDetected(t *testing.T) {
	est := &fakeEstimator{estimate: nutrition.Estimate{Notes: "not a food"}}
	svc, store := newTestMealService(est)

	_, err := svc.Analyze(context.Background(), 7, "asdfgh")
	assert.ErrorIs(t, err, ErrNoFoodDetected)
	assert.Empty(t, store.entries)
}

func TestAnalyze_RejectsInputBeforeCallingModel(t *testing.T) {
	est := &fakeEstimator{}
	svc, _ := newTestMealService(est)

	_, err := svc.Analyze(context.Background(), 7, "   ")
	assert.ErrorIs(t, err, ErrMealTextRequired)

	_, err = svc.Analyze(context.Background(), 7, strings.Repeat("a", MaxMealTextLength+1))
	assert.ErrorIs(t, err, ErrMealTextTooLong)

	assert.Zero(t, est.calls)
}

func TestAnalyze_AcceptsMaxLengthMultibyte(t *testing.T) {
	est := &fakeEstimator{estimate: nutrition.Estimate{Calories: 50, Slug: "creme"}}
	svc, _ := newTestMealService(est)

	_, err := svc.Analyze(context.Background(), 7, strings.Repeat("é", MaxMealTextLength))
	assert.NoError(t, err)
}

func TestAnalyze_EstimatorErrors(t *testing.T) {
	for _, want := range []error{
		nutrition.ErrNotConfigured,
		nutrition.ErrInvalidAPIKey,
		nutrition.ErrQuotaExceeded,
		nutrition.ErrUnparseable,
		nutrition.ErrInvalidFormat,
		nutrition.ErrUpstream,
	} {
		t.Run(want.Error(), func(t *testing.T) {
			svc, store := newTestMealService(&fakeEstimator{err: want})

			_, err := svc.Analyze(context.Background(), 7, "a bowl of soup")
			assert.ErrorIs(t, err, want)
			assert.Empty(t, store.entries)
		})
	}
}

func TestAnalyze_RejectsUnstorableNutrients(t *testing.T) {
	for name, est := range map[string]nutrition.Estimate{
		"infinite calories": {Calories: math.Inf(1), Protein: 10},
		"NaN sugars":        {Calories: 300, Sugars: math.NaN()},
		"negative fats":     {Calories: 300, Fats: -2},
	} {
		t.Run(name, func(t *testing.T) {
			svc, store := newTestMealService(&fakeEstimator{estimate: est})

			_, err := svc.Analyze(context.Background(), 7, "a bowl of soup")
			assert.ErrorIs(t, err, nutrition.ErrInvalidFormat)
			assert.Empty(t, store.entries)
		})
	}
}

func TestAnalyze_FallbackSlug(t *testing.T) {
	est := &fakeEstimator{estimate: nutrition.Estimate{Calories: 80, Protein: 1, Slug: "!!!"}}
	svc, _ := newTestMealService(est)

	resp, err := svc.Analyze(context.Background(), 7, "an apple")
	require.NoError(t, err)
	assert.Equal(t, "monday-late-morning-snack", resp.Slug)
	assert.True(t, strings.HasPrefix(resp.SlugID, "monday-late-morning-snack-"))
}

func TestAnalyze_AccentedSlug(t *testing.T) {
	svc, _ := newTestMealService(&fakeEstimator{estimate: nutrition.Estimate{Calories: 350, Slug: "crème-brûlée"}})

	resp, err := svc.Analyze(context.Background(), 7, "a crème brûlée")
	require.NoError(t, err)
	assert.Equal(t, "creme-brulee", resp.Slug)
}

func TestAnalyze_UnfoldableSlugFallsBack(t *testing.T) {
	svc, _ := newTestMealService(&fakeEstimator{estimate: nutrition.Estimate{Calories: 450, Slug: "smørrebrød"}})

	resp, err := svc.Analyze(context.Background(), 7, "open sandwich")
	require.NoError(t, err)
	assert.Equal(t, "monday-late-morning-meal", resp.Slug)
}

func TestAnalyze_UniqueSlugIDs(t *testing.T) {
	est := &fakeEstimator{estimate: nutrition.Estimate{Calories: 300, Slug: "eggs-toast"}}
	svc, store := newTestMealService(est)

	first, err := svc.Analyze(context.Background(), 7, "two eggs and toast")
	require.NoError(t, err)
	second, err := svc.Analyze(context.Background(), 7, "two eggs and toast")
	require.NoError(t, err)

	assert.Equal(t, first.Slug, second.Slug)
	assert.NotEqual(t, first.SlugID, second.SlugID)
	assert.Len(t, store.entries, 2)
}

func TestAnalyze_StoreError(t *testing.T) {
	est := &fakeEstimator{estimate: nutrition.Estimate{Calories: 300, Slug: "eggs-toast"}}
	svc, store := newTestMealService(est)
	store.createErr = errors.New("connection refused")

	_, err := svc.Analyze(context.Background(), 7, "two eggs and toast")
	assert.ErrorIs(t, err, store.createErr)
}
