package model

// TodaySummary totals every nutrient logged during the current local day.
type TodaySummary struct {
	MealsLogged        int     `json:"mealsLogged"`
	TotalCalories      float64 `json:"totalCalories"`
	TotalProtein       float64 `json:"totalProtein"`
	TotalCarbohydrates float64 `json:"totalCarbohydrates"`
	TotalFats          float64 `json:"totalFats"`
	TotalSugars        float64 `json:"totalSugars"`
}

// WeeklyPoint is one day of the weekly calories/protein trend.
type WeeklyPoint struct {
	Day        string  `json:"day"`
	FullDay    string  `json:"fullDay"`
	Date       string  `json:"date"`
	Calories   float64 `json:"calories"`
	Protein    float64 `json:"protein"`
	IsSmoothed bool    `json:"isSmoothed"`
}

// WeeklyTrendResponse always holds exactly seven points, oldest first.
type WeeklyTrendResponse struct {
	Success      bool          `json:"success"`
	Data         []WeeklyPoint `json:"data"`
	TotalEntries int           `json:"totalEntries"`
	Smoothing    bool          `json:"smoothing"`
}

// DailyPoint is one calendar day that has at least one log entry.
type DailyPoint struct {
	Day       string  `json:"day"`
	FullDay   string  `json:"fullDay"`
	Date      string  `json:"date"`
	Calories  float64 `json:"calories"`
	Protein   float64 `json:"protein"`
	DayNumber int     `json:"dayNumber"`
}

// RecentDaysResponse lists the most recent days with data, oldest first.
type RecentDaysResponse struct {
	Success      bool         `json:"success"`
	Data         []DailyPoint `json:"data"`
	TotalEntries int          `json:"totalEntries"`
	DaysWithData int          `json:"daysWithData"`
}
