package serviceImp

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cropcast/database"
	"cropcast/entities"
	"cropcast/pkg/apperr"
	farmRepoImp "cropcast/pkg/farm/repositoryImp"
	"cropcast/pkg/field/repositoryImp"
	"cropcast/pkg/field/service"
)

func setup(t *testing.T) (service.FieldService, string) {
	t.Helper()
	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "field.db"))
	require.NoError(t, err)
	farm := entities.Farm{UserID: "u1", Name: "North"}
	require.NoError(t, db.Create(&farm).Error)
	return NewFieldService(repositoryImp.New(db), farmRepoImp.New(db)), farm.ID
}

func TestPreviousCropsRoundTrip(t *testing.T) {
	s, farmID := setup(t)

	_, err := s.Create(farmID, "u1", &entities.Field{FieldName: "East", SoilType: "Clay", PreviousCrops: []string{"Wheat", "Soy"}})
	require.NoError(t, err)
	_, err = s.Create(farmID, "u1", &entities.Field{FieldName: "West", SoilType: "Loamy", PreviousCrops: []string{"Corn", "Corn", " ", "Oats"}})
	require.NoError(t, err)

	list, err := s.ListByFarm(farmID, "u1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "West", list[0].FieldName)
	assert.Equal(t, []string{"Corn", "Corn", "Oats"}, list[0].PreviousCrops)
	assert.Equal(t, []string{"Wheat", "Soy"}, list[1].PreviousCrops)
}

func TestNoHistoryIsEmptyList(t *testing.T) {
	s, farmID := setup(t)
	f, err := s.Create(farmID, "u1", &entities.Field{FieldName: "East", SoilType: "Sandy"})
	require.NoError(t, err)

	got, err := s.Get(f.ID, "u1")
	require.NoError(t, err)
	assert.NotNil(t, got.PreviousCrops)
	assert.Empty(t, got.PreviousCrops)
}

func TestCreateValidation(t *testing.T) {
	s, farmID := setup(t)

	cases := []entities.Field{
		{SoilType: "Clay"},
		{FieldName: "East"},
		{FieldName: "East", SoilType: "Gravel"},
		{FieldName: "East", SoilType: "Clay", AreaSize: -2},
	}
	for _, f := range cases {
		f := f
		_, err := s.Create(farmID, "u1", &f)
		assert.ErrorIs(t, err, apperr.ErrInvalid)
	}

	_, err := s.Create(farmID, "intruder", &entities.Field{FieldName: "East", SoilType: "Clay"})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestPatchAndDeleteRespectOwnership(t *testing.T) {
	s, farmID := setup(t)
	f, err := s.Create(farmID, "u1", &entities.Field{FieldName: "East", SoilType: "Clay", PreviousCrops: []string{"Wheat"}})
	require.NoError(t, err)

	crops := []string{"Wheat", "Barley"}
	out, err := s.UpdatePartial(f.ID, "u1", service.FieldPatch{PreviousCrops: &crops})
	require.NoError(t, err)
	assert.Equal(t, crops, out.PreviousCrops)
	assert.Equal(t, "Clay", out.SoilType)

	bad := "Lava"
	_, err = s.UpdatePartial(f.ID, "u1", service.FieldPatch{SoilType: &bad})
	assert.ErrorIs(t, err, apperr.ErrInvalid)

	assert.ErrorIs(t, s.Delete(f.ID, "u2"), apperr.ErrNotFound)
	require.NoError(t, s.Delete(f.ID, "u1"))
	_, err = s.Get(f.ID, "u1")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}
