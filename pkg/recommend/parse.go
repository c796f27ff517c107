package recommend

import (
	"encoding/json"
	"math"
	"strings"

	"cropcast/entities"
)

// Fallback is the fixed set returned when the generator reply is unusable.
func Fallback() []Recommendation {
	return []Recommendation{
		{Crop: "Wheat", Suitability: 85, Factors: entities.Factors{
			Soil:     "Good compatibility with most soil types",
			Climate:  "Suitable for moderate climates",
			Rotation: "Excellent rotation crop",
			Water:    "Moderate water requirements",
		}},
		{Crop: "Corn", Suitability: 80, Factors: entities.Factors{
			Soil:     "Thrives in well-drained soils",
			Climate:  "Requires warm growing season",
			Rotation: "Good for nitrogen management",
			Water:    "High water requirements",
		}},
		{Crop: "Soybeans", Suitability: 78, Factors: entities.Factors{
			Soil:     "Improves soil nitrogen",
			Climate:  "Warm season crop",
			Rotation: "Excellent nitrogen fixer",
			Water:    "Moderate water needs",
		}},
	}
}

type rawRecommendation struct {
	Crop        string           `json:"crop"`
	Suitability json.Number      `json:"suitability"`
	Factors     entities.Factors `json:"factors"`
}

// Parse extracts the span from the first '{' to the last '}' of text and
// decodes it. The bool is false when the fallback set was substituted.
func Parse(text string) ([]Recommendation, bool) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return Fallback(), false
	}

	var payload struct {
		Recommendations []rawRecommendation `json:"recommendations"`
	}
	if err := json.Unmarshal([]byte(text[start:end+1]), &payload); err != nil || len(payload.Recommendations) == 0 {
		return Fallback(), false
	}

	out := make([]Recommendation, 0, MaxResults)
	for _, r := range payload.Recommendations {
		crop := strings.TrimSpace(r.Crop)
		if crop == "" {
			return Fallback(), false
		}
		score, err := r.Suitability.Float64()
		if err != nil {
			return Fallback(), false
		}
		out = append(out, Recommendation{Crop: crop, Suitability: clamp(score), Factors: r.Factors})
		if len(out) == MaxResults {
			break
		}
	}
	return out, true
}

func clamp(v float64) int {
	n := int(math.Round(v))
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}
