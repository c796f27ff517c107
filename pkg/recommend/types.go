package recommend

import "cropcast/entities"

// MaxResults caps how many suggestions a single generation keeps.
const MaxResults = 5

type Request struct {
	FieldID       string   `json:"fieldId"`
	SoilType      string   `json:"soilType"`
	Location      string   `json:"location"`
	PreviousCrops []string `json:"previousCrops"`
}

type Recommendation struct {
	Crop        string           `json:"crop"`
	Suitability int              `json:"suitability"`
	Factors     entities.Factors `json:"factors"`
}

type Response struct {
	Recommendations []Recommendation `json:"recommendations"`
}
