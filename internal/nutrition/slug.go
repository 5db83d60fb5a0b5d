package nutrition

import (
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const maxSlugLength = 60

// snackCalories is the energy below which a logged item counts as a snack.
const snackCalories = 100

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// NormalizeSlug lowercases s and reduces it to hyphen-separated
// alphanumeric words. Accents are folded ("crème" becomes "creme"); a slug
// holding letters with no ASCII form yields "" so the caller falls back to
// PeriodSlug instead of storing a word split apart.
func NormalizeSlug(s string) string {
	s = foldAccents(strings.ToLower(s))
	for _, r := range s {
		if r > unicode.MaxASCII && unicode.IsLetter(r) {
			return ""
		}
	}

	s = nonSlugChars.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if len(s) > maxSlugLength {
		s = strings.TrimRight(s[:maxSlugLength], "-")
	}
	return s
}

func foldAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return folded
}

// MealPeriod names the part of the day an hour (0-23) falls in.
func MealPeriod(hour int) string {
	switch {
	case hour >= 5 && hour < 9:
		return "early-morning"
	case hour >= 9 && hour < 12:
		return "late-morning"
	case hour >= 12 && hour < 14:
		return "early-afternoon"
	case hour >= 14 && hour < 17:
		return "late-afternoon"
	case hour >= 17 && hour < 20:
		return "early-evening"
	case hour >= 20 && hour < 23:
		return "late-evening"
	default:
		return "night"
	}
}

// PeriodSlug describes a meal by when it was eaten and how large it was,
// e.g. "monday-late-morning-snack". Used when the model gives no slug.
func PeriodSlug(at time.Time, calories float64) string {
	size := "meal"
	if calories < snackCalories {
		size = "snack"
	}
	return strings.ToLower(at.Weekday().String()) + "-" + MealPeriod(at.Hour()) + "-" + size
}

// NewSlugID appends a random UUID to slug, giving the public identifier of
// a log entry.
func NewSlugID(slug string) string {
	return slug + "-" + uuid.NewString()
}
