package state

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"cropcast/entities"
	"cropcast/logger"
)

type FarmLister interface {
	ListFarms(ctx context.Context) ([]entities.Farm, error)
}

type FarmState struct {
	Farms    []entities.Farm
	Selected *entities.Farm
	Loading  bool
}

// FarmRegistry owns the caller's farm set and the active farm.
type FarmRegistry struct {
	api FarmLister

	mu       sync.Mutex
	farms    []entities.Farm
	selected *entities.Farm
	inflight int
	seq      uint64 // last refresh issued
	applied  uint64 // last refresh whose result was kept
	epoch    uint64 // bumped on clear; older refreshes are dropped
	bound    int    // background refreshes started by Bind, not yet returned
	idle     *sync.Cond

	subs listeners[FarmState]
}

func NewFarmRegistry(api FarmLister) *FarmRegistry {
	r := &FarmRegistry{api: api}
	r.idle = sync.NewCond(&r.mu)
	return r
}

// Refresh re-fetches the farm set and re-resolves the selection against it.
// On failure the error is logged and returned and the state is left as it was.
// A result that arrives after a newer refresh has been applied is dropped.
func (r *FarmRegistry) Refresh(ctx context.Context) error {
	r.mu.Lock()
	r.seq++
	seq, epoch := r.seq, r.epoch
	r.inflight++
	r.mu.Unlock()
	r.notify()

	farms, err := r.api.ListFarms(ctx)

	r.mu.Lock()
	r.inflight--
	switch {
	case err != nil:
		logger.Warn("refresh farms", zap.Error(err))
	case epoch != r.epoch || seq < r.applied:
		logger.Debug("dropping stale farm refresh", zap.Uint64("seq", seq), zap.Uint64("applied", r.applied))
	default:
		r.applied = seq
		r.farms = farms
		r.selected = resolveSelection(r.selected, farms)
	}
	r.mu.Unlock()
	r.notify()
	return err
}

// resolveSelection keeps the current farm when it is still present, otherwise
// falls back to the first farm, or none.
func resolveSelection(cur *entities.Farm, farms []entities.Farm) *entities.Farm {
	if cur != nil {
		for i := range farms {
			if farms[i].ID == cur.ID {
				f := farms[i]
				return &f
			}
		}
	}
	if len(farms) > 0 {
		f := farms[0]
		return &f
	}
	return nil
}

// Select sets the active farm locally; nil clears it.
func (r *FarmRegistry) Select(f *entities.Farm) {
	r.mu.Lock()
	if f == nil {
		r.selected = nil
	} else {
		cp := *f
		r.selected = &cp
	}
	r.mu.Unlock()
	r.notify()
}

// Clear empties the registry without a network call.
func (r *FarmRegistry) Clear() {
	r.mu.Lock()
	r.epoch++
	r.farms = nil
	r.selected = nil
	r.mu.Unlock()
	r.notify()
}

// Bind refreshes on sign-in and clears on sign-out. Refreshes started by a
// sign-in run in the background; Wait blocks until they finish.
func (r *FarmRegistry) Bind(ctx context.Context, sessions *SessionStore) (cancel func()) {
	apply := func(s *Session) {
		if s == nil {
			r.Clear()
			return
		}
		r.mu.Lock()
		r.bound++
		r.mu.Unlock()
		go func() {
			_ = r.Refresh(ctx)
			r.mu.Lock()
			r.bound--
			if r.bound == 0 {
				r.idle.Broadcast()
			}
			r.mu.Unlock()
		}()
	}
	cancel = sessions.Subscribe(apply)
	if s := sessions.Current(); s != nil {
		apply(s)
	}
	return cancel
}

// Wait blocks until background refreshes started by Bind have returned.
func (r *FarmRegistry) Wait() {
	r.mu.Lock()
	for r.bound > 0 {
		r.idle.Wait()
	}
	r.mu.Unlock()
}

func (r *FarmRegistry) State() FarmState {
	r.mu.Lock()
	defer r.mu.Unlock()
	st := FarmState{
		Farms:   append([]entities.Farm(nil), r.farms...),
		Loading: r.inflight > 0,
	}
	if r.selected != nil {
		cp := *r.selected
		st.Selected = &cp
	}
	return st
}

func (r *FarmRegistry) Farms() []entities.Farm { return r.State().Farms }
func (r *FarmRegistry) Selected() *entities.Farm { return r.State().Selected }
func (r *FarmRegistry) Loading() bool { return r.State().Loading }

func (r *FarmRegistry) Subscribe(fn func(FarmState)) (cancel func()) {
	return r.subs.add(fn)
}

func (r *FarmRegistry) notify() { r.subs.emit(r.State()) }
