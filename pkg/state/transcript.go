package state

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"cropcast/entities"
	"cropcast/logger"
	"cropcast/pkg/chat"
)

const SendFailure = "Sorry, I encountered an error. Please try again."

var (
	ErrEmptyMessage = errors.New("state: message is empty")
	ErrSendInFlight = errors.New("state: a message is already being sent")
)

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type Entry struct {
	Role   Role
	Text   string
	At     time.Time
	Failed bool
}

type ChatAPI interface {
	Chat(ctx context.Context, message string) (string, error)
	ChatHistory(ctx context.Context, limit int) ([]entities.ChatMessage, error)
}

// ChatTranscript is the local conversation. Entries come in user/assistant
// pairs: a user entry is appended before the call and is never removed.
type ChatTranscript struct {
	api ChatAPI
	now func() time.Time

	mu      sync.Mutex
	entries []Entry
	sending bool
	subs    listeners[[]Entry]
}

func NewChatTranscript(api ChatAPI) *ChatTranscript {
	return &ChatTranscript{api: api, now: time.Now}
}

// Load replaces the transcript with the stored history, oldest first.
func (t *ChatTranscript) Load(ctx context.Context) error {
	if t.Sending() {
		return ErrSendInFlight
	}
	hist, err := t.api.ChatHistory(ctx, chat.HistoryLimit)
	if err != nil {
		logger.Warn("load chat history", zap.Error(err))
		return err
	}
	entries := make([]Entry, 0, 2*len(hist))
	for _, m := range hist {
		entries = append(entries,
			Entry{Role: RoleUser, Text: m.Message, At: m.CreatedAt},
			Entry{Role: RoleAssistant, Text: m.Response, At: m.CreatedAt},
		)
	}

	t.mu.Lock()
	if t.sending {
		t.mu.Unlock()
		return ErrSendInFlight
	}
	t.entries = entries
	t.mu.Unlock()
	t.notify()
	return nil
}

// Send appends the user's entry, asks the assistant and appends its answer.
// When the call fails a fixed apology is appended instead and the error is
// returned.
func (t *ChatTranscript) Send(ctx context.Context, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return ErrEmptyMessage
	}

	t.mu.Lock()
	if t.sending {
		t.mu.Unlock()
		return ErrSendInFlight
	}
	t.sending = true
	t.entries = append(t.entries, Entry{Role: RoleUser, Text: text, At: t.now()})
	t.mu.Unlock()
	t.notify()

	reply, err := t.api.Chat(ctx, text)

	entry := Entry{Role: RoleAssistant, Text: reply, At: t.now()}
	if err != nil {
		logger.Warn("chat send", zap.Error(err))
		entry.Text = SendFailure
		entry.Failed = true
	}
	t.mu.Lock()
	t.entries = append(t.entries, entry)
	t.sending = false
	t.mu.Unlock()
	t.notify()
	return err
}

func (t *ChatTranscript) Entries() []Entry {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]Entry(nil), t.entries...)
}

func (t *ChatTranscript) Sending() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.sending
}

func (t *ChatTranscript) Subscribe(fn func([]Entry)) (cancel func()) {
	return t.subs.add(fn)
}

func (t *ChatTranscript) notify() { t.subs.emit(t.Entries()) }
