package export

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"cropcast/pkg/apperr"
	cropRepo "cropcast/pkg/crop/repository"
	farmRepo "cropcast/pkg/farm/repository"
	fieldRepo "cropcast/pkg/field/repository"
	recRepo "cropcast/pkg/recommend/repository"
)

const (
	sheetFarm  = "Farm"
	sheetField = "Fields"
	sheetCrop  = "Crops"
	sheetRec   = "Recommendations"
)

// Reporter renders one farm into an xlsx workbook.
type Reporter struct {
	farms  farmRepo.FarmRepository
	fields fieldRepo.FieldRepository
	crops  cropRepo.CropRepository
	recs   recRepo.RecommendRepository
}

func NewReporter(farms farmRepo.FarmRepository, fields fieldRepo.FieldRepository, crops cropRepo.CropRepository, recs recRepo.RecommendRepository) *Reporter {
	return &Reporter{farms: farms, fields: fields, crops: crops, recs: recs}
}

// FarmWorkbook returns the workbook bytes and a suggested file name.
func (r *Reporter) FarmWorkbook(farmID, uid string) (*bytes.Buffer, string, error) {
	farm, err := r.farms.FindByID(farmID, uid)
	if err != nil {
		return nil, "", apperr.NotFound(err)
	}
	fields, err := r.fields.ListByFarm(farm.ID)
	if err != nil {
		return nil, "", err
	}
	crops, err := r.crops.ListByFarm(farm.ID, 0)
	if err != nil {
		return nil, "", err
	}

	x := excelize.NewFile()
	defer x.Close()

	if err := x.SetSheetName("Sheet1", sheetFarm); err != nil {
		return nil, "", err
	}
	for _, s := range []string{sheetField, sheetCrop, sheetRec} {
		if _, err := x.NewSheet(s); err != nil {
			return nil, "", err
		}
	}

	w := &sheetWriter{x: x}
	w.rows(sheetFarm, [][]any{
		{"Name", farm.Name},
		{"Location", farm.Location},
		{"Latitude", deref(farm.Latitude)},
		{"Longitude", deref(farm.Longitude)},
		{"Area", farm.AreaSize},
		{"Soil Type", farm.SoilType},
		{"Created", farm.CreatedAt.Format(time.DateOnly)},
	})

	fieldRows := [][]any{{"Field", "Soil Type", "Location", "Area", "Previous Crops", "Created"}}
	recRows := [][]any{{"Field", "Crop", "Suitability", "Soil", "Climate", "Rotation", "Water", "Created"}}
	for _, f := range fields {
		fieldRows = append(fieldRows, []any{f.FieldName, f.SoilType, f.FieldLocation, f.AreaSize,
			strings.Join(f.PreviousCrops, ", "), f.CreatedAt.Format(time.DateOnly)})

		recs, err := r.recs.ListByField(f.ID, uid)
		if err != nil {
			return nil, "", err
		}
		for _, rc := range recs {
			fc := rc.RecommendationFactors.Data()
			recRows = append(recRows, []any{f.FieldName, rc.CropType, rc.SuitabilityPercentage,
				fc.Soil, fc.Climate, fc.Rotation, fc.Water, rc.CreatedAt.Format(time.RFC3339)})
		}
	}
	w.rows(sheetField, fieldRows)
	w.rows(sheetRec, recRows)

	cropRows := [][]any{{"Crop", "Variety", "Stage", "Planting Date", "Expected Harvest", "Created"}}
	for _, c := range crops {
		cropRows = append(cropRows, []any{c.CropType, c.Variety, string(c.CurrentStage),
			derefStr(c.PlantingDate), derefStr(c.ExpectedHarvestDate), c.CreatedAt.Format(time.DateOnly)})
	}
	w.rows(sheetCrop, cropRows)

	if w.err != nil {
		return nil, "", w.err
	}
	buf, err := x.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("write workbook: %w", err)
	}
	return buf, fileName(farm.Name), nil
}

type sheetWriter struct {
	x   *excelize.File
	err error
}

func (w *sheetWriter) rows(sheet string, rows [][]any) {
	for i, row := range rows {
		if w.err != nil {
			return
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			w.err = err
			return
		}
		row := row
		w.err = w.x.SetSheetRow(sheet, cell, &row)
	}
}

func fileName(farm string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(farm) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteByte('-')
		}
	}
	if b.Len() == 0 {
		return "farm-report.xlsx"
	}
	return b.String() + "-report.xlsx"
}

func deref(v *float64) any {
	if v == nil {
		return ""
	}
	return *v
}

func derefStr(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
