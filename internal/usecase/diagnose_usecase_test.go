package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clinic-record-system/internal/delivery/dto"
	"clinic-record-system/internal/usecase"
)

func TestCreateDiagnose(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created, err := env.diagnoses.CreateDiagnose(ctx, &dto.CreateDiagnoseRequest{
		Name:        "Flu",
		Description: "Seasonal influenza",
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Seasonal influenza", created.Description)

	_, err = env.diagnoses.CreateDiagnose(ctx, &dto.CreateDiagnoseRequest{
		Name:        "Flu",
		Description: "Duplicate",
	})
	assert.ErrorIs(t, err, usecase.ErrDiagnoseNameExists)
}

func TestRetireDiagnose(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created := env.createDiagnose(t, "Angina")
	require.NoError(t, env.diagnoses.RetireDiagnose(ctx, created.ID))
	assert.NoError(t, env.diagnoses.RetireDiagnose(ctx, created.ID))

	got, err := env.diagnoses.GetDiagnose(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, got.Retired)

	active, err := env.diagnoses.GetAllDiagnoses(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, 0, active.Total)

	_, err = env.diagnoses.UpdateDiagnose(ctx, created.ID, &dto.UpdateDiagnoseRequest{Name: "Tonsillitis"})
	assert.ErrorIs(t, err, usecase.ErrRecordRetired)
}

// Retiring a diagnose hides it from pickers but keeps it on the visits
// where it was already recorded.
func TestRetiredDiagnoseStaysOnAppointments(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	family := env.createDoctor(t, "Dr. Family", true)
	patient := env.createPatient(t, "Anna Koleva", "9301014567", family.ID)
	flu := env.createDiagnose(t, "Flu")
	appointment := env.createAppointment(t, family.ID, patient.ID, "2025-02-10", flu.ID)

	require.NoError(t, env.diagnoses.RetireDiagnose(ctx, flu.ID))

	got, err := env.appointments.GetAppointment(ctx, appointment.ID)
	require.NoError(t, err)
	require.Len(t, got.Diagnoses, 1)
	assert.Equal(t, flu.ID, got.Diagnoses[0].ID)
}
