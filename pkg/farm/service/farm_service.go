package service

import "cropcast/entities"

type FarmService interface {
	List(uid string) ([]entities.Farm, error)
	Get(id, uid string) (*entities.Farm, error)
	Create(f *entities.Farm) (*entities.Farm, error)
	UpdatePartial(id, uid string, patch FarmPatch) (*entities.Farm, error)
	Delete(id, uid string) error
}

type FarmPatch struct {
	Name      *string  `json:"name"`
	Location  *string  `json:"location"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	AreaSize  *float64 `json:"area_size"`
	SoilType  *string  `json:"soil_type"`
}
