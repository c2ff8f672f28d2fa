package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clinic-record-system/internal/delivery/dto"
	"clinic-record-system/internal/usecase"
)

func TestCreateAppointment(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	family := env.createDoctor(t, "Dr. Family", true)
	patient := env.createPatient(t, "Anna Koleva", "9301014567", family.ID)
	flu := env.createDiagnose(t, "Flu")
	paracetamol := env.createTreatment(t, "Paracetamol")

	appointment, err := env.appointments.CreateAppointment(ctx, &dto.CreateAppointmentRequest{
		VisitDate:    "2025-02-10",
		DoctorID:     family.ID,
		PatientID:    patient.ID,
		DiagnoseIDs:  []uint{flu.ID},
		TreatmentIDs: []uint{paracetamol.ID},
	})
	require.NoError(t, err)
	assert.NotZero(t, appointment.ID)
	assert.Equal(t, "2025-02-10", appointment.VisitDate)
	assert.Equal(t, "Dr. Family", appointment.DoctorName)
	assert.Equal(t, "Anna Koleva", appointment.PatientName)
	require.Len(t, appointment.Diagnoses, 1)
	assert.Equal(t, "Flu", appointment.Diagnoses[0].Name)
	require.Len(t, appointment.Treatments, 1)
	assert.Equal(t, "Paracetamol", appointment.Treatments[0].MedicineName)
	assert.Nil(t, appointment.SickLeave)
}

func TestCreateAppointmentRequiresDiagnose(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	family := env.createDoctor(t, "Dr. Family", true)
	patient := env.createPatient(t, "Anna Koleva", "9301014567", family.ID)

	_, err := env.appointments.CreateAppointment(ctx, &dto.CreateAppointmentRequest{
		VisitDate: "2025-02-10",
		DoctorID:  family.ID,
		PatientID: patient.ID,
	})
	assert.ErrorIs(t, err, usecase.ErrNoDiagnoses)

	_, err = env.appointments.CreateAppointment(ctx, &dto.CreateAppointmentRequest{
		VisitDate:   "2025-02-10",
		DoctorID:    family.ID,
		PatientID:   patient.ID,
		DiagnoseIDs: []uint{9999},
	})
	assert.ErrorIs(t, err, usecase.ErrDiagnoseNotFound)

	retired := env.createDiagnose(t, "Obsolete")
	require.NoError(t, env.diagnoses.RetireDiagnose(ctx, retired.ID))
	_, err = env.appointments.CreateAppointment(ctx, &dto.CreateAppointmentRequest{
		VisitDate:   "2025-02-10",
		DoctorID:    family.ID,
		PatientID:   patient.ID,
		DiagnoseIDs: []uint{retired.ID},
	})
	assert.ErrorIs(t, err, usecase.ErrRecordRetired)
}

func TestCreateAppointmentRejectsRetiredParticipants(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	family := env.createDoctor(t, "Dr. Family", true)
	patient := env.createPatient(t, "Anna Koleva", "9301014567", family.ID)
	flu := env.createDiagnose(t, "Flu")

	_, err := env.appointments.CreateAppointment(ctx, &dto.CreateAppointmentRequest{
		VisitDate:   "2025-02-10",
		DoctorID:    9999,
		PatientID:   patient.ID,
		DiagnoseIDs: []uint{flu.ID},
	})
	assert.ErrorIs(t, err, usecase.ErrDoctorNotFound)

	require.NoError(t, env.patients.RetirePatient(ctx, patient.ID))
	_, err = env.appointments.CreateAppointment(ctx, &dto.CreateAppointmentRequest{
		VisitDate:   "2025-02-10",
		DoctorID:    family.ID,
		PatientID:   patient.ID,
		DiagnoseIDs: []uint{flu.ID},
	})
	assert.ErrorIs(t, err, usecase.ErrRecordRetired)
}

func TestAppointmentDiagnoseLinks(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	family := env.createDoctor(t, "Dr. Family", true)
	patient := env.createPatient(t, "Anna Koleva", "9301014567", family.ID)
	flu := env.createDiagnose(t, "Flu")
	angina := env.createDiagnose(t, "Angina")

	appointment := env.createAppointment(t, family.ID, patient.ID, "2025-02-10", flu.ID)

	require.NoError(t, env.appointments.AddDiagnose(ctx, appointment.ID, angina.ID))
	// idempotent re-add
	require.NoError(t, env.appointments.AddDiagnose(ctx, appointment.ID, angina.ID))

	got, err := env.appointments.GetAppointment(ctx, appointment.ID)
	require.NoError(t, err)
	assert.Len(t, got.Diagnoses, 2)

	require.NoError(t, env.appointments.RemoveDiagnose(ctx, appointment.ID, angina.ID))
	// removing an absent link is a no-op
	require.NoError(t, env.appointments.RemoveDiagnose(ctx, appointment.ID, angina.ID))

	// the last diagnose cannot be removed
	assert.ErrorIs(t, env.appointments.RemoveDiagnose(ctx, appointment.ID, flu.ID), usecase.ErrLastDiagnose)

	got, err = env.appointments.GetAppointment(ctx, appointment.ID)
	require.NoError(t, err)
	require.Len(t, got.Diagnoses, 1)
	assert.Equal(t, flu.ID, got.Diagnoses[0].ID)
}

func TestAppointmentTreatmentLinks(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	family := env.createDoctor(t, "Dr. Family", true)
	patient := env.createPatient(t, "Anna Koleva", "9301014567", family.ID)
	flu := env.createDiagnose(t, "Flu")
	paracetamol := env.createTreatment(t, "Paracetamol")

	appointment := env.createAppointment(t, family.ID, patient.ID, "2025-02-10", flu.ID)

	require.NoError(t, env.appointments.AddTreatment(ctx, appointment.ID, paracetamol.ID))
	require.NoError(t, env.appointments.AddTreatment(ctx, appointment.ID, paracetamol.ID))

	// treatments may all be removed, there is no minimum
	require.NoError(t, env.appointments.RemoveTreatment(ctx, appointment.ID, paracetamol.ID))

	got, err := env.appointments.GetAppointment(ctx, appointment.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Treatments)

	assert.ErrorIs(t, env.appointments.AddTreatment(ctx, appointment.ID, 9999), usecase.ErrTreatmentNotFound)
}

func TestUpdateAppointment(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	family := env.createDoctor(t, "Dr. Family", true)
	patient := env.createPatient(t, "Anna Koleva", "9301014567", family.ID)
	flu := env.createDiagnose(t, "Flu")
	appointment := env.createAppointment(t, family.ID, patient.ID, "2025-02-10", flu.ID)

	updated, err := env.appointments.UpdateAppointment(ctx, appointment.ID, &dto.UpdateAppointmentRequest{VisitDate: "2025-02-12"})
	require.NoError(t, err)
	assert.Equal(t, "2025-02-12", updated.VisitDate)

	_, err = env.appointments.UpdateAppointment(ctx, appointment.ID, &dto.UpdateAppointmentRequest{VisitDate: "12.02.2025"})
	assert.ErrorIs(t, err, usecase.ErrInvalidDateFormat)

	_, err = env.appointments.UpdateAppointment(ctx, 9999, &dto.UpdateAppointmentRequest{VisitDate: "2025-02-12"})
	assert.ErrorIs(t, err, usecase.ErrAppointmentNotFound)
}

func TestDeleteAppointmentRemovesLinksAndSickLeave(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	family := env.createDoctor(t, "Dr. Family", true)
	patient := env.createPatient(t, "Anna Koleva", "9301014567", family.ID)
	flu := env.createDiagnose(t, "Flu")
	appointment := env.createAppointment(t, family.ID, patient.ID, "2025-02-10", flu.ID)
	sickLeave := env.createSickLeave(t, appointment.ID, "2025-02-10", "2025-02-14")

	require.NoError(t, env.appointments.DeleteAppointment(ctx, appointment.ID))

	_, err := env.appointments.GetAppointment(ctx, appointment.ID)
	assert.ErrorIs(t, err, usecase.ErrAppointmentNotFound)

	_, err = env.sickLeaves.GetSickLeave(ctx, sickLeave.ID)
	assert.ErrorIs(t, err, usecase.ErrSickLeaveNotFound)

	var linkCount int64
	require.NoError(t, env.db.Table("appointment_diagnoses").
		Where("appointment_id = ?", appointment.ID).
		Count(&linkCount).Error)
	assert.Equal(t, int64(0), linkCount)

	// the diagnose itself survives
	_, err = env.diagnoses.GetDiagnose(ctx, flu.ID)
	assert.NoError(t, err)
}

func TestGetAppointmentsByDoctorAndPatient(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	family := env.createDoctor(t, "Dr. Family", true)
	other := env.createDoctor(t, "Dr. Other", true)
	patient := env.createPatient(t, "Anna Koleva", "9301014567", family.ID)
	flu := env.createDiagnose(t, "Flu")

	env.createAppointment(t, family.ID, patient.ID, "2025-02-10", flu.ID)
	env.createAppointment(t, other.ID, patient.ID, "2025-03-01", flu.ID)

	byDoctor, err := env.appointments.GetAppointmentsByDoctor(ctx, family.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, byDoctor.Total)

	byPatient, err := env.appointments.GetAppointmentsByPatient(ctx, patient.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, byPatient.Total)

	_, err = env.appointments.GetAppointmentsByDoctor(ctx, 9999)
	assert.ErrorIs(t, err, usecase.ErrDoctorNotFound)
}
