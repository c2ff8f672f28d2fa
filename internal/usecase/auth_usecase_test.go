package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"clinic-record-system/internal/delivery/dto"
	"clinic-record-system/internal/domain/entity"
	"clinic-record-system/internal/usecase"
)

func TestRegisterDoctor(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	user, err := env.auth.RegisterDoctor(ctx, &dto.RegisterDoctorRequest{
		Email:          "doctor@clinic.test",
		Password:       "secret123",
		Name:           "Dr. Ivanova",
		IsFamilyDoctor: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "doctor@clinic.test", user.Email)
	assert.Equal(t, entity.RoleDoctor, user.Role)
	require.NotNil(t, user.DoctorID)
	assert.Nil(t, user.PatientID)

	// the clinical record is created and bound back to the account
	doctor, err := env.doctors.GetDoctor(ctx, *user.DoctorID)
	require.NoError(t, err)
	assert.Equal(t, "Dr. Ivanova", doctor.Name)
	assert.True(t, doctor.IsFamilyDoctor)

	var stored entity.User
	require.NoError(t, env.db.First(&stored, user.ID).Error)
	assert.NotEqual(t, "secret123", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("secret123")))
}

func TestRegisterDoctorDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.auth.RegisterDoctor(ctx, &dto.RegisterDoctorRequest{
		Email:    "doctor@clinic.test",
		Password: "secret123",
		Name:     "Dr. First",
	})
	require.NoError(t, err)

	_, err = env.auth.RegisterDoctor(ctx, &dto.RegisterDoctorRequest{
		Email:    "doctor@clinic.test",
		Password: "secret123",
		Name:     "Dr. Second",
	})
	assert.ErrorIs(t, err, usecase.ErrEmailAlreadyExists)

	// the failed registration left no orphan doctor record
	list, err := env.doctors.GetAllDoctors(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, 1, list.Total)
}

func TestRegisterPatient(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	family := env.createDoctor(t, "Dr. Family", true)

	user, err := env.auth.RegisterPatient(ctx, &dto.RegisterPatientRequest{
		Email:                "patient@clinic.test",
		Password:             "secret123",
		Name:                 "Dimitar Petrov",
		CivilNumber:          "8202025678",
		FamilyDoctorID:       family.ID,
		LastInsurancePayment: "2025-07-01",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RolePatient, user.Role)
	require.NotNil(t, user.PatientID)
	assert.Nil(t, user.DoctorID)

	patient, err := env.patients.GetPatient(ctx, *user.PatientID)
	require.NoError(t, err)
	assert.Equal(t, "Dimitar Petrov", patient.Name)
	assert.Equal(t, family.ID, patient.FamilyDoctorID)
	assert.Equal(t, "2025-07-01", patient.LastInsurancePayment)
}

func TestRegisterPatientValidation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	family := env.createDoctor(t, "Dr. Family", true)
	specialist := env.createDoctor(t, "Dr. Specialist", false)
	env.createPatient(t, "Existing Patient", "7901016789", family.ID)

	_, err := env.auth.RegisterPatient(ctx, &dto.RegisterPatientRequest{
		Email:          "patient@clinic.test",
		Password:       "secret123",
		Name:           "Dimitar Petrov",
		CivilNumber:    "7901016789",
		FamilyDoctorID: family.ID,
	})
	assert.ErrorIs(t, err, usecase.ErrCivilNumberExists)

	_, err = env.auth.RegisterPatient(ctx, &dto.RegisterPatientRequest{
		Email:          "patient@clinic.test",
		Password:       "secret123",
		Name:           "Dimitar Petrov",
		CivilNumber:    "8202025678",
		FamilyDoctorID: specialist.ID,
	})
	assert.ErrorIs(t, err, usecase.ErrNotFamilyDoctor)

	_, err = env.auth.RegisterPatient(ctx, &dto.RegisterPatientRequest{
		Email:          "patient@clinic.test",
		Password:       "secret123",
		Name:           "Dimitar Petrov",
		CivilNumber:    "8202025678",
		FamilyDoctorID: 9999,
	})
	assert.ErrorIs(t, err, usecase.ErrFamilyDoctorNotFound)
}

func TestGetCurrentUser(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	registered, err := env.auth.RegisterDoctor(ctx, &dto.RegisterDoctorRequest{
		Email:    "doctor@clinic.test",
		Password: "secret123",
		Name:     "Dr. Ivanova",
	})
	require.NoError(t, err)

	current, err := env.auth.GetCurrentUser(ctx, registered.ID)
	require.NoError(t, err)
	assert.Equal(t, registered.Email, current.Email)
	assert.Equal(t, registered.Role, current.Role)

	_, err = env.auth.GetCurrentUser(ctx, 9999)
	assert.ErrorIs(t, err, usecase.ErrUserNotFound)
}
