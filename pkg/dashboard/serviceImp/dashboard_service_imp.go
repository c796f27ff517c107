package serviceImp

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"cropcast/entities"
	advisoryRepo "cropcast/pkg/advisory/repository"
	"cropcast/pkg/apperr"
	"cropcast/pkg/climate"
	cropRepo "cropcast/pkg/crop/repository"
	"cropcast/pkg/dashboard/service"
	farmRepo "cropcast/pkg/farm/repository"
	profileRepo "cropcast/pkg/profile/repository"
)

const (
	recentCrops    = 3
	latestAdvisory = 2
)

type dashboardSvc struct {
	profiles   profileRepo.ProfileRepository
	farms      farmRepo.FarmRepository
	crops      cropRepo.CropRepository
	advisories advisoryRepo.AdvisoryRepository
}

func NewDashboardService(
	profiles profileRepo.ProfileRepository,
	farms farmRepo.FarmRepository,
	crops cropRepo.CropRepository,
	advisories advisoryRepo.AdvisoryRepository,
) service.DashboardService {
	return &dashboardSvc{profiles: profiles, farms: farms, crops: crops, advisories: advisories}
}

func (s *dashboardSvc) Load(ctx context.Context, uid, farmID string) (*service.Dashboard, error) {
	out := &service.Dashboard{RecentCrops: []entities.Crop{}, Advisories: []entities.Advisory{}}

	if farmID != "" {
		f, err := s.farms.FindByID(farmID, uid)
		if err != nil {
			return nil, apperr.NotFound(err)
		}
		out.Farm = f
		if f.Location != "" {
			w := climate.Synthetic(f.Location)
			out.Weather = &w
		}
	}

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := s.profiles.FindByID(uid)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		out.Profile = p
		return nil
	})
	if out.Farm != nil {
		g.Go(func() error {
			list, err := s.crops.ListByFarm(out.Farm.ID, recentCrops)
			if err != nil {
				return err
			}
			out.RecentCrops = list
			return nil
		})
	}
	g.Go(func() error {
		list, err := s.advisories.Latest(uid, latestAdvisory)
		if err != nil {
			return err
		}
		out.Advisories = list
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
