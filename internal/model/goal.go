package model

import "time"

// GoalType is one of the nutrients a user can set a daily target for.
type GoalType string

const (
	GoalCalories GoalType = "calories"
	GoalProtein  GoalType = "protein"
	GoalCarbs    GoalType = "carbs"
	GoalFats     GoalType = "fats"
)

// DefaultCaloriesGoal is reported for calories until the user stores a goal.
const DefaultCaloriesGoal = 3500

// GoalTypes lists every supported goal type.
var GoalTypes = []GoalType{GoalCalories, GoalProtein, GoalCarbs, GoalFats}

// Valid reports whether t is a supported goal type.
func (t GoalType) Valid() bool {
	for _, gt := range GoalTypes {
		if t == gt {
			return true
		}
	}
	return false
}

// DefaultValue is the target reported when no goal of this type is stored.
func (t GoalType) DefaultValue() float64 {
	if t == GoalCalories {
		return DefaultCaloriesGoal
	}
	return 0
}

// Goal represents a per-user nutrient target in the database.
type Goal struct {
	ID        int64
	UserID    int64
	Type      GoalType
	Value     float64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// GoalRequest represents a goal upsert. Value is a pointer so a missing
// value can be told apart from an explicit zero.
type GoalRequest struct {
	Type  string   `json:"type"`
	Value *float64 `json:"value"`
}

// GoalResponse is a stored goal, or the default when IsDefault is set.
type GoalResponse struct {
	ID        int64      `json:"id,omitempty"`
	Type      GoalType   `json:"type"`
	Value     float64    `json:"value"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
	IsDefault bool       `json:"isDefault"`
}
