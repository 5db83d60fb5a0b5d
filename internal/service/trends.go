package service

import (
	"context"
	"math"
	"sort"
	"strconv"
	"time"

	"github.com/mealtrack/mealtrack-go/internal/model"
)

const (
	dateLayout = "2006-01-02"

	weekDays         = 7
	recentDaysWindow = 30
	recentDaysShown  = 10
)

// TrendService aggregates log entries into daily and weekly views.
type TrendService struct {
	entries   LogEntryStore
	smoothing bool
	now       func() time.Time
}

// NewTrendService creates a new TrendService. smoothing sets whether the
// weekly trend fills empty days from their neighbours by default.
func NewTrendService(entries LogEntryStore, smoothing bool) *TrendService {
	return &TrendService{
		entries:   entries,
		smoothing: smoothing,
		now:       time.Now,
	}
}

// Smoothing reports the default weekly smoothing setting.
func (s *TrendService) Smoothing() bool {
	return s.smoothing
}

// Today totals the nutrients the user logged since local midnight.
func (s *TrendService) Today(ctx context.Context, userID int64) (model.TodaySummary, error) {
	from := startOfDay(s.now())
	entries, err := s.entries.ListByUserBetween(ctx, userID, from, from.AddDate(0, 0, 1))
	if err != nil {
		return model.TodaySummary{}, err
	}

	summary := model.TodaySummary{MealsLogged: len(entries)}
	for _, e := range entries {
		summary.TotalCalories += e.Calories
		summary.TotalProtein += e.Proteins
		summary.TotalCarbohydrates += e.Carbohydrates
		summary.TotalFats += e.Fats
		summary.TotalSugars += e.Sugars
	}

	summary.TotalCalories = roundTo(summary.TotalCalories, 1)
	summary.TotalProtein = roundTo(summary.TotalProtein, 1)
	summary.TotalCarbohydrates = roundTo(summary.TotalCarbohydrates, 1)
	summary.TotalFats = roundTo(summary.TotalFats, 1)
	summary.TotalSugars = roundTo(summary.TotalSugars, 1)

	return summary, nil
}

// Weekly returns calories and protein for the seven calendar days ending
// today, oldest first. With smoothing, a day with zero calories (or
// protein) takes the mean of the non-zero values of the days either side.
func (s *TrendService) Weekly(ctx context.Context, userID int64, smoothing bool) (model.WeeklyTrendResponse, error) {
	now := s.now()
	today := startOfDay(now)
	from := today.AddDate(0, 0, -(weekDays - 1))

	entries, err := s.entries.ListByUserBetween(ctx, userID, from, today.AddDate(0, 0, 1))
	if err != nil {
		return model.WeeklyTrendResponse{}, err
	}

	index := make(map[string]int, weekDays)
	days := make([]time.Time, weekDays)
	calories := make([]float64, weekDays)
	protein := make([]float64, weekDays)
	for i := range days {
		days[i] = from.AddDate(0, 0, i)
		index[days[i].Format(dateLayout)] = i
	}

	for _, e := range entries {
		i, ok := index[e.LoggedAt.In(now.Location()).Format(dateLayout)]
		if !ok {
			continue
		}
		calories[i] += e.Calories
		protein[i] += e.Proteins
	}

	points := make([]model.WeeklyPoint, weekDays)
	for i, day := range days {
		name := day.Weekday().String()
		p := model.WeeklyPoint{
			Day:      name[:1],
			FullDay:  name,
			Date:     day.Format(dateLayout),
			Calories: roundTo(calories[i], 1),
			Protein:  roundTo(protein[i], 1),
		}

		if smoothing {
			if v, ok := neighbourMean(calories, i); ok {
				p.Calories = roundTo(v, 0)
				p.IsSmoothed = true
			}
			if v, ok := neighbourMean(protein, i); ok {
				p.Protein = roundTo(v, 1)
				p.IsSmoothed = true
			}
		}

		points[i] = p
	}

	return model.WeeklyTrendResponse{
		Success:      true,
		Data:         points,
		TotalEntries: len(entries),
		Smoothing:    smoothing,
	}, nil
}

// LastDays returns the ten most recent calendar days, within the last
// thirty, on which the user logged anything, oldest first.
func (s *TrendService) LastDays(ctx context.Context, userID int64) (model.RecentDaysResponse, error) {
	now := s.now()
	today := startOfDay(now)
	from := today.AddDate(0, 0, -(recentDaysWindow - 1))

	entries, err := s.entries.ListByUserBetween(ctx, userID, from, today.AddDate(0, 0, 1))
	if err != nil {
		return model.RecentDaysResponse{}, err
	}

	type dayTotal struct {
		date     time.Time
		calories float64
		protein  float64
	}

	totals := make(map[string]*dayTotal)
	for _, e := range entries {
		at := e.LoggedAt.In(now.Location())
		key := at.Format(dateLayout)
		t, ok := totals[key]
		if !ok {
			t = &dayTotal{date: startOfDay(at)}
			totals[key] = t
		}
		t.calories += e.Calories
		t.protein += e.Proteins
	}

	days := make([]*dayTotal, 0, len(totals))
	for _, t := range totals {
		days = append(days, t)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].date.Before(days[j].date) })
	if len(days) > recentDaysShown {
		days = days[len(days)-recentDaysShown:]
	}

	points := make([]model.DailyPoint, 0, len(days))
	for i, t := range days {
		points = append(points, model.DailyPoint{
			Day:       strconv.Itoa(t.date.Day()),
			FullDay:   t.date.Weekday().String(),
			Date:      t.date.Format(dateLayout),
			Calories:  roundTo(t.calories, 1),
			Protein:   roundTo(t.protein, 1),
			DayNumber: i + 1,
		})
	}

	return model.RecentDaysResponse{
		Success:      true,
		Data:         points,
		TotalEntries: len(entries),
		DaysWithData: len(totals),
	}, nil
}

// neighbourMean returns the mean of the non-zero values beside values[i]
// when values[i] itself is zero.
func neighbourMean(values []float64, i int) (float64, bool) {
	if values[i] != 0 {
		return 0, false
	}

	var sum float64
	var n int
	if i > 0 && values[i-1] > 0 {
		sum += values[i-1]
		n++
	}
	if i < len(values)-1 && values[i+1] > 0 {
		sum += values[i+1]
		n++
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}

func roundTo(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}
