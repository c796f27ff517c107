package serviceImp

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cropcast/database"
	"cropcast/entities"
	"cropcast/pkg/ai"
	"cropcast/pkg/apperr"
	"cropcast/pkg/chat"
	"cropcast/pkg/chat/repository"
	"cropcast/pkg/chat/repositoryImp"
)

type brokenRepo struct{ repository.ChatRepository }

func (brokenRepo) Save(*entities.ChatMessage) error { return errors.New("db locked") }

func newRepo(t *testing.T) repository.ChatRepository {
	t.Helper()
	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "chat.db"))
	require.NoError(t, err)
	return repositoryImp.New(db)
}

func TestSendPersistsPair(t *testing.T) {
	repo := newRepo(t)
	llm := &ai.Mock{Reply: "Water at dawn."}
	s := NewChatService(repo, llm)

	answer, err := s.Send(context.Background(), "u1", "When should I water?")
	require.NoError(t, err)
	assert.Equal(t, "Water at dawn.", answer)

	prompt, _ := llm.LastPrompt()
	assert.Equal(t, chat.SystemPrompt+"\n\nUser: When should I water?", prompt)

	hist, err := s.History("u1", 0)
	require.NoError(t, err)
	require.Len(t, hist, 1)
	assert.Equal(t, "When should I water?", hist[0].Message)
	assert.Equal(t, "Water at dawn.", hist[0].Response)
}

func TestBlankAnswerIsReplaced(t *testing.T) {
	s := NewChatService(newRepo(t), &ai.Mock{Reply: "  \n"})
	answer, err := s.Send(context.Background(), "u1", "hi")
	require.NoError(t, err)
	assert.Equal(t, chat.EmptyReply, answer)
}

func TestSendErrors(t *testing.T) {
	repo := newRepo(t)

	_, err := NewChatService(repo, ai.NewMock()).Send(context.Background(), "u1", "   ")
	assert.ErrorIs(t, err, apperr.ErrInvalid)

	_, err = NewChatService(repo, ai.NewMock()).Send(context.Background(), "", "hi")
	assert.ErrorIs(t, err, apperr.ErrUnauthorized)

	unconfigured, err := ai.NewGemini(context.Background(), "", "", "")
	require.NoError(t, err)
	_, err = NewChatService(repo, unconfigured).Send(context.Background(), "u1", "hi")
	assert.ErrorIs(t, err, apperr.ErrConfig)

	_, err = NewChatService(repo, &ai.Mock{Err: errors.New("timeout")}).Send(context.Background(), "u1", "hi")
	assert.ErrorIs(t, err, apperr.ErrUpstream)

	hist, err := NewChatService(repo, nil).History("u1", 50)
	require.NoError(t, err)
	assert.Empty(t, hist)
}

func TestPersistenceFailureNotSurfaced(t *testing.T) {
	s := NewChatService(brokenRepo{}, &ai.Mock{Reply: "ok"})
	answer, err := s.Send(context.Background(), "u1", "hi")
	require.NoError(t, err)
	assert.Equal(t, "ok", answer)
}

func TestHistoryKeepsNewestFiftyAscending(t *testing.T) {
	repo := newRepo(t)
	for i := 0; i < 55; i++ {
		require.NoError(t, repo.Save(&entities.ChatMessage{UserID: "u1", Message: fmt.Sprintf("q%02d", i), Response: "a"}))
	}
	require.NoError(t, repo.Save(&entities.ChatMessage{UserID: "u2", Message: "other"}))

	hist, err := NewChatService(repo, nil).History("u1", 500)
	require.NoError(t, err)
	require.Len(t, hist, chat.HistoryLimit)
	assert.Equal(t, "q05", hist[0].Message)
	assert.Equal(t, "q54", hist[len(hist)-1].Message)
}
