package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clinic-record-system/internal/delivery/dto"
	"clinic-record-system/internal/usecase"
)

func TestCreateSpecialization(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created, err := env.specializations.CreateSpecialization(ctx, &dto.CreateSpecializationRequest{Name: "Cardiology"})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Cardiology", created.Name)
	assert.False(t, created.Retired)

	_, err = env.specializations.CreateSpecialization(ctx, &dto.CreateSpecializationRequest{Name: "Cardiology"})
	assert.ErrorIs(t, err, usecase.ErrSpecializationNameExists)
}

func TestUpdateSpecialization(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created, err := env.specializations.CreateSpecialization(ctx, &dto.CreateSpecializationRequest{Name: "Dermatology"})
	require.NoError(t, err)
	_, err = env.specializations.CreateSpecialization(ctx, &dto.CreateSpecializationRequest{Name: "Neurology"})
	require.NoError(t, err)

	updated, err := env.specializations.UpdateSpecialization(ctx, created.ID, &dto.UpdateSpecializationRequest{Name: "Dermatovenerology"})
	require.NoError(t, err)
	assert.Equal(t, "Dermatovenerology", updated.Name)

	// renaming onto an existing specialization is rejected
	_, err = env.specializations.UpdateSpecialization(ctx, created.ID, &dto.UpdateSpecializationRequest{Name: "Neurology"})
	assert.ErrorIs(t, err, usecase.ErrSpecializationNameExists)

	_, err = env.specializations.UpdateSpecialization(ctx, 9999, &dto.UpdateSpecializationRequest{Name: "Whatever"})
	assert.ErrorIs(t, err, usecase.ErrSpecializationNotFound)
}

func TestRetireSpecialization(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created, err := env.specializations.CreateSpecialization(ctx, &dto.CreateSpecializationRequest{Name: "Oncology"})
	require.NoError(t, err)

	require.NoError(t, env.specializations.RetireSpecialization(ctx, created.ID))

	// retiring twice is a no-op
	assert.NoError(t, env.specializations.RetireSpecialization(ctx, created.ID))

	// the retired record stays readable by id
	got, err := env.specializations.GetSpecialization(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, got.Retired)

	// but rejects further changes
	_, err = env.specializations.UpdateSpecialization(ctx, created.ID, &dto.UpdateSpecializationRequest{Name: "Hematology"})
	assert.ErrorIs(t, err, usecase.ErrRecordRetired)

	assert.ErrorIs(t, env.specializations.RetireSpecialization(ctx, 9999), usecase.ErrSpecializationNotFound)
}

func TestGetAllSpecializationsExcludesRetired(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	active, err := env.specializations.CreateSpecialization(ctx, &dto.CreateSpecializationRequest{Name: "Pediatrics"})
	require.NoError(t, err)
	retired, err := env.specializations.CreateSpecialization(ctx, &dto.CreateSpecializationRequest{Name: "Surgery"})
	require.NoError(t, err)
	require.NoError(t, env.specializations.RetireSpecialization(ctx, retired.ID))

	list, err := env.specializations.GetAllSpecializations(ctx, false)
	require.NoError(t, err)
	require.Equal(t, 1, list.Total)
	assert.Equal(t, active.ID, list.Specializations[0].ID)

	all, err := env.specializations.GetAllSpecializations(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, 2, all.Total)
}
