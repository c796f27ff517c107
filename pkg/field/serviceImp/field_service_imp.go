package serviceImp

import (
	"strings"

	"cropcast/entities"
	"cropcast/pkg/apperr"
	farmRepo "cropcast/pkg/farm/repository"
	"cropcast/pkg/field/repository"
	"cropcast/pkg/field/service"
)

type fieldSvc struct {
	r     repository.FieldRepository
	farms farmRepo.FarmRepository
}

func NewFieldService(r repository.FieldRepository, farms farmRepo.FarmRepository) service.FieldService {
	return &fieldSvc{r: r, farms: farms}
}

func (s *fieldSvc) ListByFarm(farmID, uid string) ([]entities.Field, error) {
	if _, err := s.farms.FindByID(farmID, uid); err != nil {
		return nil, apperr.NotFound(err)
	}
	return s.r.ListByFarm(farmID)
}

func (s *fieldSvc) Get(id, uid string) (*entities.Field, error) {
	f, err := s.r.FindOwned(id, uid)
	if err != nil {
		return nil, apperr.NotFound(err)
	}
	return f, nil
}

func (s *fieldSvc) Create(farmID, uid string, f *entities.Field) (*entities.Field, error) {
	if _, err := s.farms.FindByID(farmID, uid); err != nil {
		return nil, apperr.NotFound(err)
	}
	f.ID = ""
	f.FarmID = farmID
	f.FieldName = strings.TrimSpace(f.FieldName)
	f.PreviousCrops = cleanCrops(f.PreviousCrops)
	if err := validate(f); err != nil {
		return nil, err
	}
	if err := s.r.Create(f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *fieldSvc) UpdatePartial(id, uid string, p service.FieldPatch) (*entities.Field, error) {
	cur, err := s.Get(id, uid)
	if err != nil {
		return nil, err
	}
	if p.FieldName != nil {
		cur.FieldName = strings.TrimSpace(*p.FieldName)
	}
	if p.SoilType != nil {
		cur.SoilType = *p.SoilType
	}
	if p.FieldLocation != nil {
		cur.FieldLocation = *p.FieldLocation
	}
	if p.AreaSize != nil {
		cur.AreaSize = *p.AreaSize
	}
	if p.PreviousCrops != nil {
		cur.PreviousCrops = cleanCrops(*p.PreviousCrops)
	}
	if err := validate(cur); err != nil {
		return nil, err
	}
	return cur, s.r.Update(cur)
}

func (s *fieldSvc) Delete(id, uid string) error {
	if _, err := s.Get(id, uid); err != nil {
		return err
	}
	return s.r.Delete(id)
}

func validate(f *entities.Field) error {
	if f.FieldName == "" {
		return apperr.Invalid("field_name is required")
	}
	if f.SoilType == "" {
		return apperr.Invalid("soil_type is required")
	}
	if !entities.ValidSoilType(f.SoilType) {
		return apperr.Invalid("soil_type must be one of %s", strings.Join(entities.SoilTypes, ", "))
	}
	if f.AreaSize < 0 {
		return apperr.Invalid("area_size must be >= 0")
	}
	return nil
}

// cleanCrops trims names and drops blanks; order and repeats are kept.
func cleanCrops(in []string) []string {
	out := make([]string, 0, len(in))
	for _, c := range in {
		if c = strings.TrimSpace(c); c != "" {
			out = append(out, c)
		}
	}
	return out
}
