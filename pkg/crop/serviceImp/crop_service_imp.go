package serviceImp

import (
	"strings"
	"time"

	"cropcast/entities"
	"cropcast/pkg/apperr"
	"cropcast/pkg/crop/repository"
	"cropcast/pkg/crop/service"
	farmRepo "cropcast/pkg/farm/repository"
)

type cropSvc struct {
	r     repository.CropRepository
	farms farmRepo.FarmRepository
}

func NewCropService(r repository.CropRepository, farms farmRepo.FarmRepository) service.CropService {
	return &cropSvc{r: r, farms: farms}
}

func (s *cropSvc) ListByFarm(farmID, uid string, limit int) ([]entities.Crop, error) {
	if _, err := s.farms.FindByID(farmID, uid); err != nil {
		return nil, apperr.NotFound(err)
	}
	return s.r.ListByFarm(farmID, limit)
}

func (s *cropSvc) Create(farmID, uid string, c *entities.Crop) (*entities.Crop, error) {
	if _, err := s.farms.FindByID(farmID, uid); err != nil {
		return nil, apperr.NotFound(err)
	}
	c.ID = ""
	c.FarmID = farmID
	c.CropType = strings.TrimSpace(c.CropType)
	if c.CurrentStage == "" {
		c.CurrentStage = entities.StagePlanning
	}
	c.PlantingDate = blankToNil(c.PlantingDate)
	c.ExpectedHarvestDate = blankToNil(c.ExpectedHarvestDate)
	if err := validate(c); err != nil {
		return nil, err
	}
	if err := s.r.Create(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *cropSvc) UpdatePartial(id, uid string, p service.CropPatch) (*entities.Crop, error) {
	cur, err := s.r.FindOwned(id, uid)
	if err != nil {
		return nil, apperr.NotFound(err)
	}
	if p.CropType != nil {
		cur.CropType = strings.TrimSpace(*p.CropType)
	}
	if p.Variety != nil {
		cur.Variety = *p.Variety
	}
	if p.CurrentStage != nil {
		cur.CurrentStage = *p.CurrentStage
	}
	if p.PlantingDate != nil {
		cur.PlantingDate = blankToNil(p.PlantingDate)
	}
	if p.ExpectedHarvestDate != nil {
		cur.ExpectedHarvestDate = blankToNil(p.ExpectedHarvestDate)
	}
	if err := validate(cur); err != nil {
		return nil, err
	}
	return cur, s.r.Update(cur)
}

func (s *cropSvc) Delete(id, uid string) error {
	if _, err := s.r.FindOwned(id, uid); err != nil {
		return apperr.NotFound(err)
	}
	return s.r.Delete(id)
}

func validate(c *entities.Crop) error {
	if c.CropType == "" {
		return apperr.Invalid("crop_type is required")
	}
	if !c.CurrentStage.Valid() {
		return apperr.Invalid("current_stage must be one of planning, planting, growing, flowering, harvesting")
	}
	for name, d := range map[string]*string{"planting_date": c.PlantingDate, "expected_harvest_date": c.ExpectedHarvestDate} {
		if d == nil {
			continue
		}
		if _, err := time.Parse(time.DateOnly, *d); err != nil {
			return apperr.Invalid("%s must be YYYY-MM-DD", name)
		}
	}
	return nil
}

func blankToNil(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}
