package nutrition

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeSlug(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"eggs-toast", "eggs-toast"},
		{"Eggs & Toast!", "eggs-toast"},
		{"  --grilled   chicken__salad-- ", "grilled-chicken-salad"},
		{"???", ""},
		{"Crème-Brûlée", "creme-brulee"},
		{"jalapeño poppers", "jalapeno-poppers"},
		{"smørrebrød", ""},
		{"寿司-roll", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeSlug(tt.in), "input %q", tt.in)
	}
}

func TestNormalizeSlugTruncates(t *testing.T) {
	long := strings.Repeat("abcde-", 20)

	got := NormalizeSlug(long)
	assert.LessOrEqual(t, len(got), maxSlugLength)
	assert.False(t, strings.HasSuffix(got, "-"))
}

func TestMealPeriod(t *testing.T) {
	tests := map[int]string{
		0:  "night",
		4:  "night",
		5:  "early-morning",
		8:  "early-morning",
		9:  "late-morning",
		12: "early-afternoon",
		14: "late-afternoon",
		17: "early-evening",
		20: "late-evening",
		22: "late-evening",
		23: "night",
	}

	for hour, want := range tests {
		assert.Equal(t, want, MealPeriod(hour), "hour %d", hour)
	}
}

func TestPeriodSlug(t *testing.T) {
	// 2026-03-02 is a Monday.
	morning := time.Date(2026, 3, 2, 10, 15, 0, 0, time.UTC)
	assert.Equal(t, "monday-late-morning-snack", PeriodSlug(morning, 99))
	assert.Equal(t, "monday-late-morning-meal", PeriodSlug(morning, 100))

	late := time.Date(2026, 3, 7, 23, 30, 0, 0, time.UTC)
	assert.Equal(t, "saturday-night-meal", PeriodSlug(late, 640))
}

func TestNewSlugID(t *testing.T) {
	a := NewSlugID("eggs-toast")
	b := NewSlugID("eggs-toast")

	require.True(t, strings.HasPrefix(a, "eggs-toast-"))
	assert.NotEqual(t, a, b)

	_, err := uuid.Parse(strings.TrimPrefix(a, "eggs-toast-"))
	assert.NoError(t, err)
}
