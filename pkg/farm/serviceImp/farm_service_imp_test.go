package serviceImp

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"cropcast/database"
	"cropcast/entities"
	"cropcast/pkg/apperr"
	"cropcast/pkg/farm/repositoryImp"
	"cropcast/pkg/farm/service"
)

func setup(t *testing.T) (*gorm.DB, service.FarmService) {
	t.Helper()
	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "farm.db"))
	require.NoError(t, err)
	return db, NewFarmService(repositoryImp.New(db))
}

func TestCreateValidates(t *testing.T) {
	_, s := setup(t)

	_, err := s.Create(&entities.Farm{UserID: "u1", Name: "  "})
	assert.ErrorIs(t, err, apperr.ErrInvalid)

	_, err = s.Create(&entities.Farm{UserID: "u1", Name: "North", AreaSize: -1})
	assert.ErrorIs(t, err, apperr.ErrInvalid)

	lat := 91.0
	_, err = s.Create(&entities.Farm{UserID: "u1", Name: "North", Latitude: &lat})
	assert.ErrorIs(t, err, apperr.ErrInvalid)
}

func TestListNewestFirstAndScopedToOwner(t *testing.T) {
	_, s := setup(t)
	for _, n := range []string{"A", "B", "C"} {
		_, err := s.Create(&entities.Farm{UserID: "u1", Name: n})
		require.NoError(t, err)
	}
	_, err := s.Create(&entities.Farm{UserID: "u2", Name: "Other"})
	require.NoError(t, err)

	list, err := s.List("u1")
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []string{"C", "B", "A"}, []string{list[0].Name, list[1].Name, list[2].Name})

	_, err = s.Get(list[0].ID, "u2")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestUpdatePartial(t *testing.T) {
	_, s := setup(t)
	f, err := s.Create(&entities.Farm{UserID: "u1", Name: "North", Location: "Fresno", AreaSize: 10})
	require.NoError(t, err)

	name := "North 2"
	out, err := s.UpdatePartial(f.ID, "u1", service.FarmPatch{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "North 2", out.Name)
	assert.Equal(t, "Fresno", out.Location)
	assert.Equal(t, 10.0, out.AreaSize)

	neg := -3.0
	_, err = s.UpdatePartial(f.ID, "u1", service.FarmPatch{AreaSize: &neg})
	assert.ErrorIs(t, err, apperr.ErrInvalid)
}

func TestDeleteCascades(t *testing.T) {
	db, s := setup(t)
	f, err := s.Create(&entities.Farm{UserID: "u1", Name: "North"})
	require.NoError(t, err)

	field := entities.Field{FarmID: f.ID, FieldName: "East", SoilType: "Clay"}
	require.NoError(t, db.Create(&field).Error)
	require.NoError(t, db.Create(&entities.Crop{FarmID: f.ID, CropType: "Corn"}).Error)
	require.NoError(t, db.Create(&entities.CropRecommendation{FieldID: field.ID, UserID: "u1", CropType: "Wheat"}).Error)

	assert.ErrorIs(t, s.Delete(f.ID, "u2"), apperr.ErrNotFound)
	require.NoError(t, s.Delete(f.ID, "u1"))

	for _, m := range []any{&entities.Farm{}, &entities.Field{}, &entities.Crop{}, &entities.CropRecommendation{}} {
		var n int64
		require.NoError(t, db.Model(m).Count(&n).Error)
		assert.Zero(t, n)
	}
}
