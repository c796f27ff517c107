package serviceImp

import (
	"strings"

	"cropcast/entities"
	"cropcast/pkg/apperr"
	"cropcast/pkg/farm/repository"
	"cropcast/pkg/farm/service"
)

type farmSvc struct{ r repository.FarmRepository }

func NewFarmService(r repository.FarmRepository) service.FarmService { return &farmSvc{r} }

func (s *farmSvc) List(uid string) ([]entities.Farm, error) { return s.r.ListByUser(uid) }

func (s *farmSvc) Get(id, uid string) (*entities.Farm, error) {
	f, err := s.r.FindByID(id, uid)
	if err != nil {
		return nil, apperr.NotFound(err)
	}
	return f, nil
}

func (s *farmSvc) Create(f *entities.Farm) (*entities.Farm, error) {
	f.ID = ""
	f.Name = strings.TrimSpace(f.Name)
	if err := validate(f); err != nil {
		return nil, err
	}
	if err := s.r.Create(f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *farmSvc) UpdatePartial(id, uid string, p service.FarmPatch) (*entities.Farm, error) {
	cur, err := s.Get(id, uid)
	if err != nil {
		return nil, err
	}
	if p.Name != nil {
		cur.Name = strings.TrimSpace(*p.Name)
	}
	if p.Location != nil {
		cur.Location = *p.Location
	}
	if p.Latitude != nil {
		cur.Latitude = p.Latitude
	}
	if p.Longitude != nil {
		cur.Longitude = p.Longitude
	}
	if p.AreaSize != nil {
		cur.AreaSize = *p.AreaSize
	}
	if p.SoilType != nil {
		cur.SoilType = *p.SoilType
	}
	if err := validate(cur); err != nil {
		return nil, err
	}
	return cur, s.r.Update(cur)
}

func (s *farmSvc) Delete(id, uid string) error {
	return apperr.NotFound(s.r.Delete(id, uid))
}

func validate(f *entities.Farm) error {
	if f.Name == "" {
		return apperr.Invalid("name is required")
	}
	if f.AreaSize < 0 {
		return apperr.Invalid("area_size must be >= 0")
	}
	if f.Latitude != nil && (*f.Latitude < -90 || *f.Latitude > 90) {
		return apperr.Invalid("latitude out of range")
	}
	if f.Longitude != nil && (*f.Longitude < -180 || *f.Longitude > 180) {
		return apperr.Invalid("longitude out of range")
	}
	return nil
}
