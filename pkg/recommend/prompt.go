package recommend

import (
	"fmt"
	"strings"
)

// BuildPrompt composes the generator prompt for one field.
func BuildPrompt(soilType, location, weather string, previousCrops []string) string {
	if location == "" {
		location = "Not specified"
	}
	history := "No previous crop history available"
	if len(previousCrops) > 0 {
		history = "Previous crops grown: " + strings.Join(previousCrops, ", ")
	}
	return fmt.Sprintf(promptTemplate, soilType, location, weather, history)
}

const promptTemplate = `You are an agricultural expert. Based on the following field information, recommend the top 5 most suitable crops with their suitability percentages (0-100).

Field Information:
- Soil Type: %s
- Location: %s
- Weather: %s
- %s

Consider:
1. Soil compatibility
2. Climate suitability
3. Crop rotation benefits
4. Water requirements
5. Market demand

Provide your response in this exact JSON format:
{
  "recommendations": [
    {
      "crop": "Crop Name",
      "suitability": 95,
      "factors": {
        "soil": "Brief soil compatibility reason",
        "climate": "Brief climate suitability reason",
        "rotation": "Brief crop rotation benefit",
        "water": "Water requirement level"
      }
    }
  ]
}

Only respond with valid JSON, no other text.`
