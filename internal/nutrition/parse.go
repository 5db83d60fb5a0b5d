package nutrition

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

var nutrientFields = []string{"calories", "fats", "carbohydrates", "protein", "sugars"}

// StripCodeFence removes a markdown code fence (```json ... ``` or
// ``` ... ```) wrapped around a model reply.
func StripCodeFence(text string) string {
	s := strings.TrimSpace(text)
	if len(s) < 6 || !strings.HasPrefix(s, "```") || !strings.HasSuffix(s, "```") {
		return s
	}
	s = s[3 : len(s)-3]
	if len(s) >= 4 && strings.EqualFold(s[:4], "json") {
		s = s[4:]
	}
	return strings.TrimSpace(s)
}

// ParseEstimate validates a raw model reply and extracts the estimate.
// The slug is optional; every nutrient and the notes are required.
func ParseEstimate(raw string) (Estimate, error) {
	text := StripCodeFence(raw)
	if !gjson.Valid(text) {
		return Estimate{}, ErrUnparseable
	}

	doc := gjson.Parse(text)
	if !doc.IsObject() {
		return Estimate{}, fmt.Errorf("%w: reply is not an object", ErrInvalidFormat)
	}

	values := make([]float64, len(nutrientFields))
	for i, field := range nutrientFields {
		v := doc.Get(field)
		if v.Type != gjson.Number {
			return Estimate{}, fmt.Errorf("%w: %s must be a number", ErrInvalidFormat, field)
		}
		values[i] = v.Float()
	}

	notes := doc.Get("notes")
	if notes.Type != gjson.String {
		return Estimate{}, fmt.Errorf("%w: notes must be a string", ErrInvalidFormat)
	}

	slug := doc.Get("slug")
	if slug.Exists() && slug.Type != gjson.String && slug.Type != gjson.Null {
		return Estimate{}, fmt.Errorf("%w: slug must be a string", ErrInvalidFormat)
	}

	est := Estimate{
		Calories:      values[0],
		Fats:          values[1],
		Carbohydrates: values[2],
		Protein:       values[3],
		Sugars:        values[4],
		Notes:         notes.String(),
		Slug:          slug.String(),
	}
	if err := est.Validate(); err != nil {
		return Estimate{}, err
	}
	return est, nil
}
