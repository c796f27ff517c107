package recommend

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProseWrappedJSON(t *testing.T) {
	text := "Sure! Here you go:\n```json\n" +
		`{"recommendations":[{"crop":"Rice","suitability":91,"factors":{"soil":"a","climate":"b","rotation":"c","water":"d"}}]}` +
		"\n```\nGood luck {farmer}"
	// the span runs to the last '}', which here is after trailing prose
	recs, ok := Parse(text)
	assert.False(t, ok)
	assert.Equal(t, Fallback(), recs)

	recs, ok = Parse(strings.TrimSuffix(text, " {farmer}"))
	require.True(t, ok)
	require.Len(t, recs, 1)
	assert.Equal(t, "Rice", recs[0].Crop)
	assert.Equal(t, 91, recs[0].Suitability)
	assert.Equal(t, "d", recs[0].Factors.Water)
}

func TestParseClampsAndCaps(t *testing.T) {
	text := `{"recommendations":[
		{"crop":"A","suitability":140},
		{"crop":"B","suitability":-3},
		{"crop":"C","suitability":77.6},
		{"crop":"D","suitability":50},
		{"crop":"E","suitability":40},
		{"crop":"F","suitability":30}
	]}`
	recs, ok := Parse(text)
	require.True(t, ok)
	require.Len(t, recs, MaxResults)
	assert.Equal(t, 100, recs[0].Suitability)
	assert.Equal(t, 0, recs[1].Suitability)
	assert.Equal(t, 78, recs[2].Suitability)
	assert.Equal(t, "E", recs[4].Crop)
}

func TestParseFallbacks(t *testing.T) {
	for name, text := range map[string]string{
		"no json":      "I cannot help with that.",
		"malformed":    `{"recommendations":[{"crop":"A",}]}`,
		"empty list":   `{"recommendations":[]}`,
		"missing key":  `{"crops":[{"crop":"A","suitability":10}]}`,
		"blank crop":   `{"recommendations":[{"crop":" ","suitability":10}]}`,
		"string score": `{"recommendations":[{"crop":"A","suitability":"high"}]}`,
		"empty reply":  "",
	} {
		recs, ok := Parse(text)
		assert.False(t, ok, name)
		assert.Equal(t, Fallback(), recs, name)
	}
}

func TestFallbackSet(t *testing.T) {
	fb := Fallback()
	require.Len(t, fb, 3)
	assert.Equal(t, []string{"Wheat", "Corn", "Soybeans"}, []string{fb[0].Crop, fb[1].Crop, fb[2].Crop})
	assert.Equal(t, []int{85, 80, 78}, []int{fb[0].Suitability, fb[1].Suitability, fb[2].Suitability})
	assert.Equal(t, "Excellent nitrogen fixer", fb[2].Factors.Rotation)
}

func TestBuildPrompt(t *testing.T) {
	p := BuildPrompt("Clay", "", "moderate conditions", []string{"Wheat", "Soy"})
	assert.Contains(t, p, "- Soil Type: Clay\n")
	assert.Contains(t, p, "- Location: Not specified\n")
	assert.Contains(t, p, "- Weather: moderate conditions\n")
	assert.Contains(t, p, "- Previous crops grown: Wheat, Soy\n")
	assert.True(t, strings.HasSuffix(p, "Only respond with valid JSON, no other text."))

	p = BuildPrompt("Loamy", "Fresno", "x", nil)
	assert.Contains(t, p, "- No previous crop history available\n")
	assert.Contains(t, p, "- Location: Fresno\n")
}
