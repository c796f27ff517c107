package state

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cropcast/entities"
)

type chatAPI struct {
	history []entities.ChatMessage
	histErr error
	reply   string
	err     error
	block   chan struct{}
	sent    []string
	limit   int
}

func (c *chatAPI) Chat(_ context.Context, msg string) (string, error) {
	c.sent = append(c.sent, msg)
	if c.block != nil {
		<-c.block
	}
	return c.reply, c.err
}

func (c *chatAPI) ChatHistory(_ context.Context, limit int) ([]entities.ChatMessage, error) {
	c.limit = limit
	return c.history, c.histErr
}

func TestLoadExpandsPairs(t *testing.T) {
	at := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	api := &chatAPI{history: []entities.ChatMessage{
		{Message: "q1", Response: "a1", CreatedAt: at},
		{Message: "q2", Response: "a2", CreatedAt: at.Add(time.Minute)},
	}}
	tr := NewChatTranscript(api)
	require.NoError(t, tr.Load(context.Background()))

	entries := tr.Entries()
	require.Len(t, entries, 4)
	assert.Equal(t, 50, api.limit)
	assert.Equal(t, Entry{Role: RoleUser, Text: "q1", At: at}, entries[0])
	assert.Equal(t, Entry{Role: RoleAssistant, Text: "a1", At: at}, entries[1])
	assert.Equal(t, "q2", entries[2].Text)
	assert.Equal(t, "a2", entries[3].Text)
}

func TestLoadEmptyHistory(t *testing.T) {
	tr := NewChatTranscript(&chatAPI{})
	require.NoError(t, tr.Load(context.Background()))
	assert.Empty(t, tr.Entries())
}

func TestLoadFailureKeepsTranscript(t *testing.T) {
	api := &chatAPI{reply: "hello"}
	tr := NewChatTranscript(api)
	require.NoError(t, tr.Send(context.Background(), "hi"))

	api.histErr = errors.New("401")
	assert.Error(t, tr.Load(context.Background()))
	assert.Len(t, tr.Entries(), 2)
}

func TestSendAppendsPair(t *testing.T) {
	api := &chatAPI{reply: "Plant after the last frost."}
	tr := NewChatTranscript(api)

	require.NoError(t, tr.Send(context.Background(), "  When to plant corn?  "))
	entries := tr.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, RoleUser, entries[0].Role)
	assert.Equal(t, "When to plant corn?", entries[0].Text)
	assert.Equal(t, RoleAssistant, entries[1].Role)
	assert.Equal(t, "Plant after the last frost.", entries[1].Text)
	assert.False(t, entries[1].Failed)
	assert.Equal(t, []string{"When to plant corn?"}, api.sent)
}

func TestSendFailureAppendsApology(t *testing.T) {
	api := &chatAPI{err: errors.New("network down")}
	tr := NewChatTranscript(api)

	assert.Error(t, tr.Send(context.Background(), "hello"))
	entries := tr.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "hello", entries[0].Text)
	assert.Equal(t, SendFailure, entries[1].Text)
	assert.True(t, entries[1].Failed)
	assert.False(t, tr.Sending())
}

func TestSendRejectsBlank(t *testing.T) {
	api := &chatAPI{}
	tr := NewChatTranscript(api)
	assert.ErrorIs(t, tr.Send(context.Background(), "   "), ErrEmptyMessage)
	assert.Empty(t, tr.Entries())
	assert.Empty(t, api.sent)
}

func TestSendWhileInFlight(t *testing.T) {
	api := &chatAPI{reply: "ok", block: make(chan struct{})}
	tr := NewChatTranscript(api)

	started := make(chan struct{})
	done := make(chan error, 1)
	cancel := tr.Subscribe(func(entries []Entry) {
		if len(entries) == 1 {
			close(started)
		}
	})
	go func() { done <- tr.Send(context.Background(), "first") }()
	<-started
	cancel()

	// user entry is visible before the answer
	require.Len(t, tr.Entries(), 1)
	assert.True(t, tr.Sending())
	assert.ErrorIs(t, tr.Send(context.Background(), "second"), ErrSendInFlight)
	assert.ErrorIs(t, tr.Load(context.Background()), ErrSendInFlight)

	close(api.block)
	require.NoError(t, <-done)
	assert.Len(t, tr.Entries(), 2)
}
