package service

import (
	"context"

	"cropcast/entities"
	"cropcast/pkg/climate"
)

// Dashboard is the home screen payload.
type Dashboard struct {
	Profile     *entities.Profile   `json:"profile"`
	Farm        *entities.Farm      `json:"farm"`
	RecentCrops []entities.Crop     `json:"recent_crops"`
	Weather     *climate.Snapshot   `json:"weather"`
	Advisories  []entities.Advisory `json:"advisories"`
}

type DashboardService interface {
	// Load aggregates the dashboard; farmID may be empty.
	Load(ctx context.Context, uid, farmID string) (*Dashboard, error)
}
