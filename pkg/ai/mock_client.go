// pkg/ai/mock_client.go

package ai

import (
	"context"
	"strings"
	"sync"
)

// Mock answers without any network access. Reply, when set, is returned
// verbatim; otherwise a canned answer is chosen from the prompt.
type Mock struct {
	Reply string
	Err   error

	mu    sync.Mutex
	last  string
	calls int
}

func NewMock() *Mock { return &Mock{} }

func (m *Mock) Generate(_ context.Context, prompt string) (string, error) {
	m.mu.Lock()
	m.last = prompt
	m.calls++
	m.mu.Unlock()
	if m.Err != nil {
		return "", m.Err
	}
	if m.Reply != "" {
		return m.Reply, nil
	}
	if strings.Contains(prompt, "suitability percentages") {
		return mockRecommendation, nil
	}
	return "Check soil moisture before irrigating and scout for pests weekly. (mock)", nil
}

const mockRecommendation = `{"recommendations":[
{"crop":"Barley","suitability":82,"factors":{"soil":"Tolerates a range of soils","climate":"Cool season crop","rotation":"Breaks cereal disease cycles poorly","water":"Low water needs"}},
{"crop":"Lentils","suitability":74,"factors":{"soil":"Prefers well-drained soil","climate":"Cool season","rotation":"Fixes nitrogen","water":"Drought tolerant"}}
]}`

// LastPrompt returns the most recent prompt and the number of calls so far.
func (m *Mock) LastPrompt() (string, int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.last, m.calls
}
