package model

import "time"

// LogEntry represents one recorded meal with its estimated nutrition.
type LogEntry struct {
	ID            int64
	UserID        int64
	Calories      float64
	Fats          float64
	Carbohydrates float64
	Proteins      float64
	Sugars        float64
	Notes         string
	Slug          string
	SlugID        string
	LoggedAt      time.Time
}

// AnalyzeMealRequest carries the free-text meal description.
type AnalyzeMealRequest struct {
	MealText string `json:"mealText"`
}

// LogEntryResponse is the public view of a log entry.
type LogEntryResponse struct {
	ID            int64     `json:"id"`
	SlugID        string    `json:"slugId"`
	Calories      float64   `json:"calories"`
	Fats          float64   `json:"fats"`
	Carbohydrates float64   `json:"carbohydrates"`
	Proteins      float64   `json:"proteins"`
	Sugars        float64   `json:"sugars"`
	Notes         string    `json:"notes"`
	Slug          string    `json:"slug"`
	Timestamp     time.Time `json:"timestamp"`
}

// Pagination describes a window over a user's log entries.
type Pagination struct {
	Total       int  `json:"total"`
	Limit       int  `json:"limit"`
	Offset      int  `json:"offset"`
	HasMore     bool `json:"hasMore"`
	HasPrevious bool `json:"hasPrevious"`
}

// RecentLogsResponse is a page of log entries, most recent first.
type RecentLogsResponse struct {
	LogEntries []LogEntryResponse `json:"logEntries"`
	Pagination Pagination         `json:"pagination"`
}
