package state

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"cropcast/entities"
	"cropcast/logger"
	"cropcast/pkg/recommend"
)

const RecommendationFailure = "Failed to load recommendations. Please try again."

var (
	ErrRequestInFlight = errors.New("state: recommendation request in flight")
	ErrNothingToRetry  = errors.New("state: no recommendation request to retry")
)

type Recommender interface {
	Recommend(ctx context.Context, req recommend.Request) ([]recommend.Recommendation, error)
}

type PanelState struct {
	Loading bool
	Items   []recommend.Recommendation
	Error   string
}

// RecommendationPanel runs one recommendation request at a time for a field.
type RecommendationPanel struct {
	api Recommender

	mu   sync.Mutex
	st   PanelState
	last *recommend.Request
	subs listeners[PanelState]
}

func NewRecommendationPanel(api Recommender) *RecommendationPanel {
	return &RecommendationPanel{api: api}
}

// RequestFor builds the generation request from a field's attributes.
func RequestFor(f entities.Field) recommend.Request {
	return recommend.Request{
		FieldID:       f.ID,
		SoilType:      f.SoilType,
		Location:      f.FieldLocation,
		PreviousCrops: append([]string(nil), f.PreviousCrops...),
	}
}

func (p *RecommendationPanel) Request(ctx context.Context, f entities.Field) error {
	return p.run(ctx, RequestFor(f))
}

// Retry re-issues the last request.
func (p *RecommendationPanel) Retry(ctx context.Context) error {
	p.mu.Lock()
	last := p.last
	p.mu.Unlock()
	if last == nil {
		return ErrNothingToRetry
	}
	return p.run(ctx, *last)
}

func (p *RecommendationPanel) run(ctx context.Context, req recommend.Request) error {
	p.mu.Lock()
	if p.st.Loading {
		p.mu.Unlock()
		return ErrRequestInFlight
	}
	p.st = PanelState{Loading: true}
	p.last = &req
	p.mu.Unlock()
	p.notify()

	recs, err := p.api.Recommend(ctx, req)

	p.mu.Lock()
	if err != nil {
		logger.Warn("recommendations", zap.String("field_id", req.FieldID), zap.Error(err))
		p.st = PanelState{Error: RecommendationFailure}
	} else {
		p.st = PanelState{Items: recs}
	}
	p.mu.Unlock()
	p.notify()
	return err
}

func (p *RecommendationPanel) State() PanelState {
	p.mu.Lock()
	defer p.mu.Unlock()
	st := p.st
	st.Items = append([]recommend.Recommendation(nil), p.st.Items...)
	return st
}

func (p *RecommendationPanel) Subscribe(fn func(PanelState)) (cancel func()) {
	return p.subs.add(fn)
}

func (p *RecommendationPanel) notify() { p.subs.emit(p.State()) }
