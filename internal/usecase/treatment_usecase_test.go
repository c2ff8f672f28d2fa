package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clinic-record-system/internal/delivery/dto"
	"clinic-record-system/internal/usecase"
)

func TestTreatmentLifecycle(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created, err := env.treatments.CreateTreatment(ctx, &dto.CreateTreatmentRequest{
		MedicineName: "Ibuprofen",
		Dosage:       "400mg",
		Frequency:    "three times daily",
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	updated, err := env.treatments.UpdateTreatment(ctx, created.ID, &dto.UpdateTreatmentRequest{Dosage: "200mg"})
	require.NoError(t, err)
	assert.Equal(t, "200mg", updated.Dosage)
	assert.Equal(t, "Ibuprofen", updated.MedicineName)

	list, err := env.treatments.GetAllTreatments(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, list.Total)

	// treatments are hard-deleted, not retired
	require.NoError(t, env.treatments.DeleteTreatment(ctx, created.ID))
	_, err = env.treatments.GetTreatment(ctx, created.ID)
	assert.ErrorIs(t, err, usecase.ErrTreatmentNotFound)

	assert.ErrorIs(t, env.treatments.DeleteTreatment(ctx, 9999), usecase.ErrTreatmentNotFound)

	_, err = env.treatments.UpdateTreatment(ctx, 9999, &dto.UpdateTreatmentRequest{Dosage: "100mg"})
	assert.ErrorIs(t, err, usecase.ErrTreatmentNotFound)
}

// Deleting a treatment drops its appointment links with it; the visits
// themselves stay untouched.
func TestDeleteTreatmentClearsAppointmentLinks(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	family := env.createDoctor(t, "Dr. Family", true)
	patient := env.createPatient(t, "Anna Koleva", "9301014567", family.ID)
	flu := env.createDiagnose(t, "Flu")
	paracetamol := env.createTreatment(t, "Paracetamol")

	appointment := env.createAppointment(t, family.ID, patient.ID, "2025-02-10", flu.ID)
	require.NoError(t, env.appointments.AddTreatment(ctx, appointment.ID, paracetamol.ID))

	require.NoError(t, env.treatments.DeleteTreatment(ctx, paracetamol.ID))

	var linkCount int64
	require.NoError(t, env.db.Table("appointment_treatments").
		Where("treatment_id = ?", paracetamol.ID).
		Count(&linkCount).Error)
	assert.Equal(t, int64(0), linkCount)

	got, err := env.appointments.GetAppointment(ctx, appointment.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Treatments)
	require.Len(t, got.Diagnoses, 1)
}
