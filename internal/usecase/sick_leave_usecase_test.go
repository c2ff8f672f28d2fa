package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clinic-record-system/internal/delivery/dto"
	"clinic-record-system/internal/domain/entity"
	"clinic-record-system/internal/usecase"
)

func newAppointmentFixture(t *testing.T, env *testEnv) *dto.AppointmentResponse {
	t.Helper()
	family := env.createDoctor(t, "Dr. Family", true)
	patient := env.createPatient(t, "Anna Koleva", "9301014567", family.ID)
	flu := env.createDiagnose(t, "Flu")
	return env.createAppointment(t, family.ID, patient.ID, "2025-02-10", flu.ID)
}

func TestCreateSickLeave(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	appointment := newAppointmentFixture(t, env)

	sickLeave, err := env.sickLeaves.CreateSickLeave(ctx, &dto.CreateSickLeaveRequest{
		AppointmentID: appointment.ID,
		StartDate:     "2025-02-10",
		EndDate:       "2025-02-14",
	})
	require.NoError(t, err)
	assert.NotZero(t, sickLeave.ID)
	assert.Equal(t, appointment.ID, sickLeave.AppointmentID)
	assert.Equal(t, "2025-02-10", sickLeave.StartDate)
	assert.Equal(t, "2025-02-14", sickLeave.EndDate)

	// the appointment carries the sick leave on reload
	got, err := env.appointments.GetAppointment(ctx, appointment.ID)
	require.NoError(t, err)
	require.NotNil(t, got.SickLeave)
	assert.Equal(t, sickLeave.ID, got.SickLeave.ID)
}

func TestCreateSickLeaveOnePerAppointment(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	appointment := newAppointmentFixture(t, env)
	env.createSickLeave(t, appointment.ID, "2025-02-10", "2025-02-14")

	_, err := env.sickLeaves.CreateSickLeave(ctx, &dto.CreateSickLeaveRequest{
		AppointmentID: appointment.ID,
		StartDate:     "2025-02-15",
		EndDate:       "2025-02-20",
	})
	assert.ErrorIs(t, err, usecase.ErrSickLeaveExists)
}

func TestCreateSickLeaveValidatesPeriod(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	appointment := newAppointmentFixture(t, env)

	_, err := env.sickLeaves.CreateSickLeave(ctx, &dto.CreateSickLeaveRequest{
		AppointmentID: appointment.ID,
		StartDate:     "2025-02-14",
		EndDate:       "2025-02-10",
	})
	assert.ErrorIs(t, err, entity.ErrInvalidSickLeavePeriod)

	_, err = env.sickLeaves.CreateSickLeave(ctx, &dto.CreateSickLeaveRequest{
		AppointmentID: appointment.ID,
		StartDate:     "10.02.2025",
		EndDate:       "2025-02-14",
	})
	assert.ErrorIs(t, err, usecase.ErrInvalidDateFormat)

	_, err = env.sickLeaves.CreateSickLeave(ctx, &dto.CreateSickLeaveRequest{
		AppointmentID: 9999,
		StartDate:     "2025-02-10",
		EndDate:       "2025-02-14",
	})
	assert.ErrorIs(t, err, usecase.ErrAppointmentNotFound)
}

func TestUpdateSickLeave(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	appointment := newAppointmentFixture(t, env)
	sickLeave := env.createSickLeave(t, appointment.ID, "2025-02-10", "2025-02-14")

	updated, err := env.sickLeaves.UpdateSickLeave(ctx, sickLeave.ID, &dto.UpdateSickLeaveRequest{
		StartDate: "2025-02-11",
		EndDate:   "2025-02-18",
	})
	require.NoError(t, err)
	assert.Equal(t, "2025-02-11", updated.StartDate)
	assert.Equal(t, "2025-02-18", updated.EndDate)

	// the period stays validated on update
	_, err = env.sickLeaves.UpdateSickLeave(ctx, sickLeave.ID, &dto.UpdateSickLeaveRequest{
		StartDate: "2025-02-20",
		EndDate:   "2025-02-11",
	})
	assert.ErrorIs(t, err, entity.ErrInvalidSickLeavePeriod)

	_, err = env.sickLeaves.UpdateSickLeave(ctx, 9999, &dto.UpdateSickLeaveRequest{
		StartDate: "2025-02-11",
		EndDate:   "2025-02-18",
	})
	assert.ErrorIs(t, err, usecase.ErrSickLeaveNotFound)
}

func TestDeleteSickLeave(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	appointment := newAppointmentFixture(t, env)
	sickLeave := env.createSickLeave(t, appointment.ID, "2025-02-10", "2025-02-14")

	require.NoError(t, env.sickLeaves.DeleteSickLeave(ctx, sickLeave.ID))

	_, err := env.sickLeaves.GetSickLeave(ctx, sickLeave.ID)
	assert.ErrorIs(t, err, usecase.ErrSickLeaveNotFound)

	// the appointment itself survives and may get a new sick leave
	env.createSickLeave(t, appointment.ID, "2025-02-12", "2025-02-16")

	assert.ErrorIs(t, env.sickLeaves.DeleteSickLeave(ctx, 9999), usecase.ErrSickLeaveNotFound)
}
