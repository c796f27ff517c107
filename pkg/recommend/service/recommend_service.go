package service

import (
	"context"

	"cropcast/entities"
	"cropcast/pkg/recommend"
)

type RecommendService interface {
	// Generate runs one generation for a field and returns the persisted subset.
	// Every call writes a new batch.
	Generate(ctx context.Context, uid string, req recommend.Request) (*recommend.Response, error)
	History(fieldID, uid string) ([]entities.CropRecommendation, error)
}
