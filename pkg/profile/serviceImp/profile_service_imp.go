package serviceImp

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"

	"cropcast/entities"
	"cropcast/pkg/apperr"
	"cropcast/pkg/profile/repository"
	"cropcast/pkg/profile/service"
)

type profileSvc struct{ r repository.ProfileRepository }

func NewProfileService(r repository.ProfileRepository) service.ProfileService {
	return &profileSvc{r}
}

func (s *profileSvc) Get(uid string) (*entities.Profile, error) {
	p, err := s.r.FindByID(uid)
	if err != nil {
		return nil, apperr.NotFound(err)
	}
	return p, nil
}

func (s *profileSvc) Update(uid string, patch service.ProfilePatch) (*entities.Profile, error) {
	patch.FullName = strings.TrimSpace(patch.FullName)
	patch.Email = strings.TrimSpace(patch.Email)
	if patch.Email != "" {
		if _, err := mail.ParseAddress(patch.Email); err != nil {
			return nil, apperr.Invalid("email is not valid")
		}
	}

	cur, err := s.Get(uid)
	if err != nil {
		return nil, err
	}
	if err := copier.CopyWithOption(cur, &patch, copier.Option{IgnoreEmpty: true}); err != nil {
		return nil, fmt.Errorf("apply profile patch: %w", err)
	}
	if err := s.r.Update(cur); err != nil {
		return nil, err
	}
	return cur, nil
}

func (s *profileSvc) Ensure(p *entities.Profile) (*entities.Profile, error) {
	p.Email = strings.TrimSpace(p.Email)
	if p.Email == "" {
		return nil, apperr.Invalid("email is required")
	}
	if _, err := mail.ParseAddress(p.Email); err != nil {
		return nil, apperr.Invalid("email is not valid")
	}
	if p.ID == "" {
		known, err := s.r.FindByEmail(p.Email)
		switch {
		case err == nil:
			p.ID = known.ID
			if p.FullName == "" {
				p.FullName = known.FullName
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			p.ID = uuid.NewString()
		default:
			return nil, err
		}
	}
	if err := s.r.Upsert(p); err != nil {
		return nil, err
	}
	return s.r.FindByID(p.ID)
}
