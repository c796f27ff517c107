// pkg/ai/client.go

package ai

import (
	"context"
	"errors"
)

// ErrNotConfigured is returned when no generator credential is available.
var ErrNotConfigured = errors.New("generator credential not configured")

// Client sends one composed prompt to the generative-language oracle and
// returns its free-text reply. Implementations never retry.
type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Configured reports whether c holds a usable credential. Clients that
// cannot tell are assumed to be configured.
func Configured(c Client) bool {
	if cc, ok := c.(interface{ Configured() bool }); ok {
		return cc.Configured()
	}
	return c != nil
}
