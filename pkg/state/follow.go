package state

import "context"

// Scoper is the part of ListLoader the follow helpers drive.
type Scoper interface {
	SetScope(ctx context.Context, key string)
}

// FollowFarm scopes l to the registry's selected farm id.
func FollowFarm(ctx context.Context, reg *FarmRegistry, l Scoper) (cancel func()) {
	apply := func(st FarmState) {
		key := ""
		if st.Selected != nil {
			key = st.Selected.ID
		}
		l.SetScope(ctx, key)
	}
	cancel = reg.Subscribe(apply)
	apply(reg.State())
	return cancel
}

// FollowIdentity scopes l to the signed-in user id.
func FollowIdentity(ctx context.Context, sessions *SessionStore, l Scoper) (cancel func()) {
	apply := func(s *Session) {
		key := ""
		if s != nil {
			key = s.User.ID
		}
		l.SetScope(ctx, key)
	}
	cancel = sessions.Subscribe(apply)
	apply(sessions.Current())
	return cancel
}
