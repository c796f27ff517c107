package service

import "cropcast/entities"

type ProfileService interface {
	Get(uid string) (*entities.Profile, error)
	Update(uid string, patch ProfilePatch) (*entities.Profile, error)
	// Ensure creates the profile or refreshes its name and email.
	Ensure(p *entities.Profile) (*entities.Profile, error)
}

// ProfilePatch carries the editable fields; empty values are left untouched.
type ProfilePatch struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}
