// Package nutrition turns free-text meal descriptions into nutrient
// estimates using a generative text model.
package nutrition

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrNotConfigured means no model API key is available.
	ErrNotConfigured = errors.New("nutrition estimator is not configured")
	// ErrInvalidAPIKey means the model provider rejected the API key.
	ErrInvalidAPIKey = errors.New("model API key rejected")
	// ErrQuotaExceeded means the model provider is rate limiting us.
	ErrQuotaExceeded = errors.New("model API quota exceeded")
	// ErrUpstream covers every other failure to obtain a model reply.
	ErrUpstream = errors.New("model request failed")
	// ErrUnparseable means the model reply is not JSON.
	ErrUnparseable = errors.New("model reply is not valid JSON")
	// ErrInvalidFormat means the reply is JSON but lacks a required field or
	// has one of the wrong type.
	ErrInvalidFormat = errors.New("model reply has an invalid format")
)

// Estimate is the nutrition the model attributes to one meal description.
// Energy is in kcal, everything else in grams.
type Estimate struct {
	Calories      float64
	Fats          float64
	Carbohydrates float64
	Protein       float64
	Sugars        float64
	Notes         string
	Slug          string
}

// Empty reports whether every nutrient is zero, which is how the model
// answers text that does not describe any food.
func (e Estimate) Empty() bool {
	return e.Calories == 0 && e.Fats == 0 && e.Carbohydrates == 0 && e.Protein == 0 && e.Sugars == 0
}

// Validate rejects nutrient values that cannot be stored or summed: negative
// amounts, NaN and infinities.
func (e Estimate) Validate() error {
	for _, n := range []struct {
		name  string
		value float64
	}{
		{"calories", e.Calories},
		{"fats", e.Fats},
		{"carbohydrates", e.Carbohydrates},
		{"protein", e.Protein},
		{"sugars", e.Sugars},
	} {
		if math.IsNaN(n.value) || math.IsInf(n.value, 0) {
			return fmt.Errorf("%w: %s must be a finite number", ErrInvalidFormat, n.name)
		}
		if n.value < 0 {
			return fmt.Errorf("%w: %s must not be negative", ErrInvalidFormat, n.name)
		}
	}
	return nil
}
