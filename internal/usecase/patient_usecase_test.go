package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clinic-record-system/internal/delivery/dto"
	"clinic-record-system/internal/usecase"
)

func TestCreatePatient(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	family := env.createDoctor(t, "Dr. Family", true)

	patient, err := env.patients.CreatePatient(ctx, &dto.CreatePatientRequest{
		Name:                 "Elena Stoyanova",
		CivilNumber:          "9203157890",
		FamilyDoctorID:       family.ID,
		LastInsurancePayment: "2025-06-01",
	})
	require.NoError(t, err)
	assert.NotZero(t, patient.ID)
	assert.Equal(t, family.ID, patient.FamilyDoctorID)
	assert.Equal(t, "Dr. Family", patient.FamilyDoctorName)
	assert.Equal(t, "2025-06-01", patient.LastInsurancePayment)
}

func TestCreatePatientValidatesFamilyDoctor(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	specialist := env.createDoctor(t, "Dr. Specialist", false)
	retired := env.createDoctor(t, "Dr. Retired", true)
	require.NoError(t, env.doctors.RetireDoctor(ctx, retired.ID))

	_, err := env.patients.CreatePatient(ctx, &dto.CreatePatientRequest{
		Name:           "Georgi Kolev",
		CivilNumber:    "8811223344",
		FamilyDoctorID: 9999,
	})
	assert.ErrorIs(t, err, usecase.ErrFamilyDoctorNotFound)

	_, err = env.patients.CreatePatient(ctx, &dto.CreatePatientRequest{
		Name:           "Georgi Kolev",
		CivilNumber:    "8811223344",
		FamilyDoctorID: specialist.ID,
	})
	assert.ErrorIs(t, err, usecase.ErrNotFamilyDoctor)

	_, err = env.patients.CreatePatient(ctx, &dto.CreatePatientRequest{
		Name:           "Georgi Kolev",
		CivilNumber:    "8811223344",
		FamilyDoctorID: retired.ID,
	})
	assert.ErrorIs(t, err, usecase.ErrRecordRetired)
}

func TestCreatePatientDuplicateCivilNumber(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	family := env.createDoctor(t, "Dr. Family", true)
	env.createPatient(t, "First Patient", "7707071111", family.ID)

	_, err := env.patients.CreatePatient(ctx, &dto.CreatePatientRequest{
		Name:           "Second Patient",
		CivilNumber:    "7707071111",
		FamilyDoctorID: family.ID,
	})
	assert.ErrorIs(t, err, usecase.ErrCivilNumberExists)
}

func TestCreatePatientInvalidInsuranceDate(t *testing.T) {
	env := newTestEnv(t)

	family := env.createDoctor(t, "Dr. Family", true)

	_, err := env.patients.CreatePatient(context.Background(), &dto.CreatePatientRequest{
		Name:                 "Bad Date",
		CivilNumber:          "6606061111",
		FamilyDoctorID:       family.ID,
		LastInsurancePayment: "01/06/2025",
	})
	assert.ErrorIs(t, err, usecase.ErrInvalidDateFormat)
}

func TestUpdatePatientReassignsFamilyDoctor(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	oldDoctor := env.createDoctor(t, "Dr. Old", true)
	newDoctor := env.createDoctor(t, "Dr. New", true)
	specialist := env.createDoctor(t, "Dr. Specialist", false)
	patient := env.createPatient(t, "Petar Iliev", "7501012222", oldDoctor.ID)

	updated, err := env.patients.UpdatePatient(ctx, patient.ID, &dto.UpdatePatientRequest{FamilyDoctorID: newDoctor.ID})
	require.NoError(t, err)
	assert.Equal(t, newDoctor.ID, updated.FamilyDoctorID)

	_, err = env.patients.UpdatePatient(ctx, patient.ID, &dto.UpdatePatientRequest{FamilyDoctorID: specialist.ID})
	assert.ErrorIs(t, err, usecase.ErrNotFamilyDoctor)
}

func TestRetirePatient(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	family := env.createDoctor(t, "Dr. Family", true)
	patient := env.createPatient(t, "Retired Patient", "6404043333", family.ID)

	require.NoError(t, env.patients.RetirePatient(ctx, patient.ID))
	assert.NoError(t, env.patients.RetirePatient(ctx, patient.ID))

	got, err := env.patients.GetPatient(ctx, patient.ID)
	require.NoError(t, err)
	assert.True(t, got.Retired)

	active, err := env.patients.GetAllPatients(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, 0, active.Total)

	_, err = env.patients.UpdatePatient(ctx, patient.ID, &dto.UpdatePatientRequest{Name: "New Name"})
	assert.ErrorIs(t, err, usecase.ErrRecordRetired)

	assert.ErrorIs(t, env.patients.RetirePatient(ctx, 9999), usecase.ErrPatientNotFound)
}
