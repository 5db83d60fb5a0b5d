package nutrition

import (
	"fmt"
	"strings"
)

const promptTemplate = `You are a nutrition analysis expert. Estimate the nutritional content of the meal described below and reply with ONLY a JSON object.

Rules:
1. Reply with valid JSON only, no prose and no markdown.
2. Every field except "notes" and "slug" is a number.
3. Units: calories in kcal; fats, carbohydrates, protein and sugars in grams.
4. Be realistic and conservative. When quantities are missing assume typical serving sizes.
5. "notes" briefly explains the estimate and any assumptions.
6. "slug" names the meal in 2 to 5 lowercase words joined by hyphens, for example "eggs-toast".
7. If the description contains no food at all, set every number to 0.

Meal description: """%s"""

Reply format:
{
  "calories": number,
  "fats": number,
  "carbohydrates": number,
  "protein": number,
  "sugars": number,
  "notes": "string",
  "slug": "string"
}`

// BuildPrompt embeds a meal description in the fixed estimation instruction.
func BuildPrompt(mealText string) string {
	text := strings.ReplaceAll(strings.TrimSpace(mealText), `"""`, `"`)
	return fmt.Sprintf(promptTemplate, text)
}
