package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cropcast/entities"
)

func TestSessionSignInOut(t *testing.T) {
	s := NewSessionStore()
	assert.Nil(t, s.Current())
	assert.Empty(t, s.Token())

	var events []*Session
	cancel := s.Subscribe(func(sess *Session) { events = append(events, sess) })

	s.SignIn(Session{Token: "tok", User: entities.Profile{ID: "u1"}})
	assert.Equal(t, "tok", s.Token())
	require.NotNil(t, s.Current())
	assert.Equal(t, "u1", s.Current().User.ID)

	s.SignOut()
	assert.Nil(t, s.Current())

	require.Len(t, events, 2)
	assert.Equal(t, "u1", events[0].User.ID)
	assert.Nil(t, events[1])

	cancel()
	s.SignIn(Session{Token: "again"})
	assert.Len(t, events, 2)
}

func TestSignOutWhenSignedOutIsSilent(t *testing.T) {
	s := NewSessionStore()
	calls := 0
	s.Subscribe(func(*Session) { calls++ })
	s.SignOut()
	assert.Zero(t, calls)
}

func TestCurrentReturnsCopy(t *testing.T) {
	s := NewSessionStore()
	s.SignIn(Session{Token: "tok"})
	s.Current().Token = "changed"
	assert.Equal(t, "tok", s.Token())
}
