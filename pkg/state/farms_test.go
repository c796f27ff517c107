package state

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cropcast/entities"
)

type farmLister func(ctx context.Context) ([]entities.Farm, error)

func (f farmLister) ListFarms(ctx context.Context) ([]entities.Farm, error) { return f(ctx) }

func staticFarms(farms ...entities.Farm) farmLister {
	return func(context.Context) ([]entities.Farm, error) { return farms, nil }
}

func ids(farms []entities.Farm) []string {
	out := make([]string, 0, len(farms))
	for _, f := range farms {
		out = append(out, f.ID)
	}
	return out
}

func TestRefreshSelectsNewestWhenNothingSelected(t *testing.T) {
	reg := NewFarmRegistry(staticFarms(entities.Farm{ID: "b"}, entities.Farm{ID: "a"}))
	require.NoError(t, reg.Refresh(context.Background()))

	assert.Equal(t, []string{"b", "a"}, ids(reg.Farms()))
	require.NotNil(t, reg.Selected())
	assert.Equal(t, "b", reg.Selected().ID)
	assert.False(t, reg.Loading())
}

func TestRefreshSelectionRules(t *testing.T) {
	cases := []struct {
		name     string
		selected *entities.Farm
		remote   []entities.Farm
		want     string
	}{
		{"keeps selection", &entities.Farm{ID: "a"}, []entities.Farm{{ID: "b"}, {ID: "a"}}, "a"},
		{"selection gone falls back to first", &entities.Farm{ID: "x"}, []entities.Farm{{ID: "b"}, {ID: "a"}}, "b"},
		{"selection gone and none left", &entities.Farm{ID: "x"}, nil, ""},
		{"nothing selected and none remote", nil, nil, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			reg := NewFarmRegistry(staticFarms(tc.remote...))
			reg.Select(tc.selected)
			require.NoError(t, reg.Refresh(context.Background()))

			got := ""
			if s := reg.Selected(); s != nil {
				got = s.ID
			}
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestRefreshPicksUpRenamedSelection(t *testing.T) {
	reg := NewFarmRegistry(staticFarms(entities.Farm{ID: "a", Name: "Renamed"}))
	reg.Select(&entities.Farm{ID: "a", Name: "Old"})
	require.NoError(t, reg.Refresh(context.Background()))
	assert.Equal(t, "Renamed", reg.Selected().Name)
}

func TestRefreshIsIdempotent(t *testing.T) {
	reg := NewFarmRegistry(staticFarms(entities.Farm{ID: "b"}, entities.Farm{ID: "a"}))
	require.NoError(t, reg.Refresh(context.Background()))
	reg.Select(&entities.Farm{ID: "a"})
	first := reg.State()

	require.NoError(t, reg.Refresh(context.Background()))
	assert.Equal(t, first, reg.State())
}

func TestRefreshFailureLeavesState(t *testing.T) {
	fail := false
	reg := NewFarmRegistry(farmLister(func(context.Context) ([]entities.Farm, error) {
		if fail {
			return nil, errors.New("offline")
		}
		return []entities.Farm{{ID: "a"}}, nil
	}))
	require.NoError(t, reg.Refresh(context.Background()))

	fail = true
	assert.Error(t, reg.Refresh(context.Background()))
	assert.Equal(t, []string{"a"}, ids(reg.Farms()))
	assert.Equal(t, "a", reg.Selected().ID)
	assert.False(t, reg.Loading())
}

func TestOlderRefreshResultIsDropped(t *testing.T) {
	release := []chan struct{}{make(chan struct{}), make(chan struct{})}
	sets := [][]entities.Farm{{{ID: "old"}}, {{ID: "new"}}}
	started := make(chan struct{}, 2)
	var calls atomic.Int32

	reg := NewFarmRegistry(farmLister(func(context.Context) ([]entities.Farm, error) {
		i := calls.Add(1) - 1
		started <- struct{}{}
		<-release[i]
		return sets[i], nil
	}))

	var wg sync.WaitGroup
	for range 2 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = reg.Refresh(context.Background())
		}()
		<-started
	}
	assert.True(t, reg.Loading())

	close(release[1])
	require.Eventually(t, func() bool {
		s := reg.Selected()
		return s != nil && s.ID == "new"
	}, time.Second, time.Millisecond)

	close(release[0])
	wg.Wait()
	assert.Equal(t, []string{"new"}, ids(reg.Farms()))
	assert.Equal(t, "new", reg.Selected().ID)
	assert.False(t, reg.Loading())
}

func TestBindRefreshesOnSignInAndClearsOnSignOut(t *testing.T) {
	var calls atomic.Int32
	reg := NewFarmRegistry(farmLister(func(context.Context) ([]entities.Farm, error) {
		calls.Add(1)
		return []entities.Farm{{ID: "a"}}, nil
	}))
	sessions := NewSessionStore()
	cancel := reg.Bind(context.Background(), sessions)
	defer cancel()
	assert.Zero(t, calls.Load())

	sessions.SignIn(Session{Token: "t", User: entities.Profile{ID: "u1"}})
	reg.Wait()
	assert.EqualValues(t, 1, calls.Load())
	assert.Equal(t, "a", reg.Selected().ID)

	sessions.SignOut()
	assert.Empty(t, reg.Farms())
	assert.Nil(t, reg.Selected())
	assert.EqualValues(t, 1, calls.Load())
}

func TestRefreshInFlightAcrossSignOutIsDropped(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{}, 1)
	reg := NewFarmRegistry(farmLister(func(context.Context) ([]entities.Farm, error) {
		started <- struct{}{}
		<-release
		return []entities.Farm{{ID: "a"}}, nil
	}))
	sessions := NewSessionStore()
	defer reg.Bind(context.Background(), sessions)()

	sessions.SignIn(Session{Token: "t"})
	<-started
	sessions.SignOut()
	close(release)
	reg.Wait()

	assert.Empty(t, reg.Farms())
	assert.Nil(t, reg.Selected())
}

func TestWaitWhileSigningIn(t *testing.T) {
	reg := NewFarmRegistry(staticFarms(entities.Farm{ID: "a"}))
	sessions := NewSessionStore()
	defer reg.Bind(context.Background(), sessions)()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 100; i++ {
			reg.Wait()
		}
	}()
	for i := 0; i < 100; i++ {
		sessions.SignIn(Session{Token: "t"})
	}
	<-done
	reg.Wait()
	assert.False(t, reg.Loading())
	assert.NotEmpty(t, reg.Farms())
}

func TestSubscribeSeesSelection(t *testing.T) {
	reg := NewFarmRegistry(staticFarms())
	var seen []string
	cancel := reg.Subscribe(func(st FarmState) {
		if st.Selected != nil {
			seen = append(seen, st.Selected.ID)
		}
	})
	reg.Select(&entities.Farm{ID: "a"})
	cancel()
	reg.Select(&entities.Farm{ID: "b"})
	assert.Equal(t, []string{"a"}, seen)
}
