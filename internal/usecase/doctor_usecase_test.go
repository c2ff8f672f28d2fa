package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clinic-record-system/internal/delivery/dto"
	"clinic-record-system/internal/usecase"
)

func TestCreateDoctorWithSpecializations(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	cardiology, err := env.specializations.CreateSpecialization(ctx, &dto.CreateSpecializationRequest{Name: "Cardiology"})
	require.NoError(t, err)

	doctor, err := env.doctors.CreateDoctor(ctx, &dto.CreateDoctorRequest{
		Name:              "Dr. Petrov",
		IsFamilyDoctor:    true,
		SpecializationIDs: []uint{cardiology.ID},
	})
	require.NoError(t, err)
	assert.NotZero(t, doctor.ID)
	assert.True(t, doctor.IsFamilyDoctor)

	got, err := env.doctors.GetDoctor(ctx, doctor.ID)
	require.NoError(t, err)
	require.Len(t, got.Specializations, 1)
	assert.Equal(t, "Cardiology", got.Specializations[0].Name)
}

func TestCreateDoctorRejectsRetiredSpecialization(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	surgery, err := env.specializations.CreateSpecialization(ctx, &dto.CreateSpecializationRequest{Name: "Surgery"})
	require.NoError(t, err)
	require.NoError(t, env.specializations.RetireSpecialization(ctx, surgery.ID))

	_, err = env.doctors.CreateDoctor(ctx, &dto.CreateDoctorRequest{
		Name:              "Dr. Ivanov",
		SpecializationIDs: []uint{surgery.ID},
	})
	assert.ErrorIs(t, err, usecase.ErrRecordRetired)

	// the rolled-back transaction left no doctor behind
	list, err := env.doctors.GetAllDoctors(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, 0, list.Total)
}

func TestAddRemoveSpecialization(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	doctor := env.createDoctor(t, "Dr. Adams", false)
	spec, err := env.specializations.CreateSpecialization(ctx, &dto.CreateSpecializationRequest{Name: "Neurology"})
	require.NoError(t, err)

	require.NoError(t, env.doctors.AddSpecialization(ctx, doctor.ID, spec.ID))
	// re-adding the same link is a no-op, not an error
	require.NoError(t, env.doctors.AddSpecialization(ctx, doctor.ID, spec.ID))

	var linkCount int64
	require.NoError(t, env.db.Table("doctor_specializations").
		Where("doctor_id = ? AND specialization_id = ?", doctor.ID, spec.ID).
		Count(&linkCount).Error)
	assert.Equal(t, int64(1), linkCount)

	require.NoError(t, env.doctors.RemoveSpecialization(ctx, doctor.ID, spec.ID))
	// removing an absent link is a no-op too
	require.NoError(t, env.doctors.RemoveSpecialization(ctx, doctor.ID, spec.ID))

	require.NoError(t, env.db.Table("doctor_specializations").
		Where("doctor_id = ?", doctor.ID).
		Count(&linkCount).Error)
	assert.Equal(t, int64(0), linkCount)

	assert.ErrorIs(t, env.doctors.AddSpecialization(ctx, 9999, spec.ID), usecase.ErrDoctorNotFound)
	assert.ErrorIs(t, env.doctors.AddSpecialization(ctx, doctor.ID, 9999), usecase.ErrSpecializationNotFound)
}

func TestRetireDoctor(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	doctor := env.createDoctor(t, "Dr. Georgiev", true)
	require.NoError(t, env.doctors.RetireDoctor(ctx, doctor.ID))
	assert.NoError(t, env.doctors.RetireDoctor(ctx, doctor.ID))

	// still readable by id
	got, err := env.doctors.GetDoctor(ctx, doctor.ID)
	require.NoError(t, err)
	assert.True(t, got.Retired)

	// excluded from active and family-doctor listings
	active, err := env.doctors.GetAllDoctors(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, 0, active.Total)

	family, err := env.doctors.GetFamilyDoctors(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, family.Total)

	// and refuses new links
	spec, err := env.specializations.CreateSpecialization(ctx, &dto.CreateSpecializationRequest{Name: "Urology"})
	require.NoError(t, err)
	assert.ErrorIs(t, env.doctors.AddSpecialization(ctx, doctor.ID, spec.ID), usecase.ErrRecordRetired)
}

func TestGetFamilyDoctors(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	family := env.createDoctor(t, "Dr. Family", true)
	env.createDoctor(t, "Dr. Specialist", false)

	list, err := env.doctors.GetFamilyDoctors(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, list.Total)
	assert.Equal(t, family.ID, list.Doctors[0].ID)
}

func TestGetPatientsOfFamilyDoctor(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	family := env.createDoctor(t, "Dr. Family", true)
	specialist := env.createDoctor(t, "Dr. Specialist", false)

	registered := env.createPatient(t, "Maria Petrova", "9001011234", family.ID)
	retired := env.createPatient(t, "Ivan Dimitrov", "8505052345", family.ID)
	require.NoError(t, env.patients.RetirePatient(ctx, retired.ID))

	list, err := env.doctors.GetPatients(ctx, family.ID)
	require.NoError(t, err)
	require.Equal(t, 1, list.Total)
	assert.Equal(t, registered.ID, list.Patients[0].ID)

	_, err = env.doctors.GetPatients(ctx, specialist.ID)
	assert.ErrorIs(t, err, usecase.ErrNotFamilyDoctor)

	_, err = env.doctors.GetPatients(ctx, 9999)
	assert.ErrorIs(t, err, usecase.ErrDoctorNotFound)
}
