package service

import "cropcast/entities"

type FieldService interface {
	ListByFarm(farmID, uid string) ([]entities.Field, error)
	Get(id, uid string) (*entities.Field, error)
	Create(farmID, uid string, f *entities.Field) (*entities.Field, error)
	UpdatePartial(id, uid string, patch FieldPatch) (*entities.Field, error)
	Delete(id, uid string) error
}

type FieldPatch struct {
	FieldName     *string   `json:"field_name"`
	SoilType      *string   `json:"soil_type"`
	FieldLocation *string   `json:"field_location"`
	AreaSize      *float64  `json:"area_size"`
	PreviousCrops *[]string `json:"previous_crops"`
}
