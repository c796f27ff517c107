package export

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gorm.io/datatypes"

	"cropcast/database"
	"cropcast/entities"
	"cropcast/pkg/apperr"
	cropRepoImp "cropcast/pkg/crop/repositoryImp"
	farmRepoImp "cropcast/pkg/farm/repositoryImp"
	fieldRepoImp "cropcast/pkg/field/repositoryImp"
	recRepoImp "cropcast/pkg/recommend/repositoryImp"
)

func TestFarmWorkbook(t *testing.T) {
	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "x.db"))
	require.NoError(t, err)

	farm := entities.Farm{UserID: "u1", Name: "North Acres", Location: "Fresno", AreaSize: 42}
	require.NoError(t, db.Create(&farm).Error)
	field := entities.Field{FarmID: farm.ID, FieldName: "East", SoilType: "Clay", PreviousCrops: []string{"Wheat", "Soy"}}
	require.NoError(t, db.Create(&field).Error)
	require.NoError(t, db.Create(&entities.Crop{FarmID: farm.ID, CropType: "Corn"}).Error)
	require.NoError(t, db.Create(&entities.CropRecommendation{
		FieldID: field.ID, UserID: "u1", CropType: "Rice", SuitabilityPercentage: 88,
		RecommendationFactors: datatypes.NewJSONType(entities.Factors{Water: "High"}),
	}).Error)

	r := NewReporter(farmRepoImp.New(db), fieldRepoImp.New(db), cropRepoImp.New(db), recRepoImp.New(db))
	buf, name, err := r.FarmWorkbook(farm.ID, "u1")
	require.NoError(t, err)
	assert.Equal(t, "north-acres-report.xlsx", name)

	x, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer x.Close()
	assert.Equal(t, []string{"Farm", "Fields", "Crops", "Recommendations"}, x.GetSheetList())

	v, err := x.GetCellValue("Farm", "B1")
	require.NoError(t, err)
	assert.Equal(t, "North Acres", v)

	v, err = x.GetCellValue("Fields", "E2")
	require.NoError(t, err)
	assert.Equal(t, "Wheat, Soy", v)

	v, err = x.GetCellValue("Recommendations", "G2")
	require.NoError(t, err)
	assert.Equal(t, "High", v)

	v, err = x.GetCellValue("Crops", "C2")
	require.NoError(t, err)
	assert.Equal(t, "planning", v)

	_, _, err = r.FarmWorkbook(farm.ID, "u2")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}
