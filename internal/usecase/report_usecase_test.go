package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clinic-record-system/internal/usecase"
)

func TestAppointmentCountPerDoctor(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	busy := env.createDoctor(t, "Dr. Busy", true)
	idle := env.createDoctor(t, "Dr. Idle", false)
	gone := env.createDoctor(t, "Dr. Gone", false)
	require.NoError(t, env.doctors.RetireDoctor(ctx, gone.ID))

	patient := env.createPatient(t, "Anna Koleva", "9301014567", busy.ID)
	flu := env.createDiagnose(t, "Flu")
	env.createAppointment(t, busy.ID, patient.ID, "2025-02-10", flu.ID)
	env.createAppointment(t, busy.ID, patient.ID, "2025-03-01", flu.ID)

	counts, err := env.reports.AppointmentCountPerDoctor(ctx)
	require.NoError(t, err)

	// zero-count active doctors are included, retired ones are not
	require.Len(t, counts, 2)
	assert.Equal(t, busy.ID, counts[0].DoctorID)
	assert.Equal(t, int64(2), counts[0].AppointmentCount)
	assert.Equal(t, idle.ID, counts[1].DoctorID)
	assert.Equal(t, int64(0), counts[1].AppointmentCount)
}

func TestAppointmentCountForDoctor(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	family := env.createDoctor(t, "Dr. Family", true)
	patient := env.createPatient(t, "Anna Koleva", "9301014567", family.ID)
	flu := env.createDiagnose(t, "Flu")
	env.createAppointment(t, family.ID, patient.ID, "2025-02-10", flu.ID)

	count, err := env.reports.AppointmentCountForDoctor(ctx, family.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dr. Family", count.DoctorName)
	assert.Equal(t, int64(1), count.AppointmentCount)

	_, err = env.reports.AppointmentCountForDoctor(ctx, 9999)
	assert.ErrorIs(t, err, usecase.ErrDoctorNotFound)
}

func TestMostCommonDiagnoses(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	family := env.createDoctor(t, "Dr. Family", true)
	patient := env.createPatient(t, "Anna Koleva", "9301014567", family.ID)

	flu := env.createDiagnose(t, "Flu")
	angina := env.createDiagnose(t, "Angina")
	env.createDiagnose(t, "Allergy")

	env.createAppointment(t, family.ID, patient.ID, "2025-02-10", flu.ID)
	env.createAppointment(t, family.ID, patient.ID, "2025-02-17", flu.ID, angina.ID)

	top, err := env.reports.MostCommonDiagnoses(ctx)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, flu.ID, top[0].DiagnoseID)
	assert.Equal(t, int64(2), top[0].AppointmentCount)

	// push Angina into a tie; both must be reported
	env.createAppointment(t, family.ID, patient.ID, "2025-02-24", angina.ID)

	top, err = env.reports.MostCommonDiagnoses(ctx)
	require.NoError(t, err)
	require.Len(t, top, 2)
	ids := []uint{top[0].DiagnoseID, top[1].DiagnoseID}
	assert.Contains(t, ids, flu.ID)
	assert.Contains(t, ids, angina.ID)
}

func TestMostCommonDiagnosesEmptyWhenUnlinked(t *testing.T) {
	env := newTestEnv(t)

	env.createDiagnose(t, "Flu")

	top, err := env.reports.MostCommonDiagnoses(context.Background())
	require.NoError(t, err)
	assert.Empty(t, top)
}

func TestDoctorsWithMostSickLeaves(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	first := env.createDoctor(t, "Dr. First", true)
	second := env.createDoctor(t, "Dr. Second", true)
	patient := env.createPatient(t, "Anna Koleva", "9301014567", first.ID)
	flu := env.createDiagnose(t, "Flu")

	a1 := env.createAppointment(t, first.ID, patient.ID, "2025-02-10", flu.ID)
	a2 := env.createAppointment(t, first.ID, patient.ID, "2025-03-10", flu.ID)
	a3 := env.createAppointment(t, second.ID, patient.ID, "2025-04-10", flu.ID)

	env.createSickLeave(t, a1.ID, "2025-02-10", "2025-02-14")
	env.createSickLeave(t, a2.ID, "2025-03-10", "2025-03-14")
	env.createSickLeave(t, a3.ID, "2025-04-10", "2025-04-14")

	top, err := env.reports.DoctorsWithMostSickLeaves(ctx)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, first.ID, top[0].DoctorID)
	assert.Equal(t, int64(2), top[0].SickLeaveCount)
}

func TestDoctorsWithMostSickLeavesEmptyWhenNoneIssued(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	family := env.createDoctor(t, "Dr. Family", true)
	patient := env.createPatient(t, "Anna Koleva", "9301014567", family.ID)
	flu := env.createDiagnose(t, "Flu")
	env.createAppointment(t, family.ID, patient.ID, "2025-02-10", flu.ID)

	top, err := env.reports.DoctorsWithMostSickLeaves(ctx)
	require.NoError(t, err)
	assert.Empty(t, top)
}

func TestMonthWithMostSickLeaves(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	family := env.createDoctor(t, "Dr. Family", true)
	patient := env.createPatient(t, "Anna Koleva", "9301014567", family.ID)
	flu := env.createDiagnose(t, "Flu")

	a1 := env.createAppointment(t, family.ID, patient.ID, "2025-01-20", flu.ID)
	a2 := env.createAppointment(t, family.ID, patient.ID, "2025-02-03", flu.ID)
	a3 := env.createAppointment(t, family.ID, patient.ID, "2025-02-24", flu.ID)

	env.createSickLeave(t, a1.ID, "2025-01-20", "2025-01-24")
	env.createSickLeave(t, a2.ID, "2025-02-03", "2025-02-07")
	env.createSickLeave(t, a3.ID, "2025-02-24", "2025-02-28")

	month, err := env.reports.MonthWithMostSickLeaves(ctx)
	require.NoError(t, err)
	assert.Equal(t, "February", month.Month)
	assert.Equal(t, 2025, month.Year)
	assert.Equal(t, int64(2), month.Count)
	assert.Equal(t, "February 2025 — 2 sick leaves", month.Label)
}

func TestMonthWithMostSickLeavesEarliestWinsTie(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	family := env.createDoctor(t, "Dr. Family", true)
	patient := env.createPatient(t, "Anna Koleva", "9301014567", family.ID)
	flu := env.createDiagnose(t, "Flu")

	a1 := env.createAppointment(t, family.ID, patient.ID, "2025-03-05", flu.ID)
	a2 := env.createAppointment(t, family.ID, patient.ID, "2025-01-10", flu.ID)

	env.createSickLeave(t, a1.ID, "2025-03-05", "2025-03-09")
	env.createSickLeave(t, a2.ID, "2025-01-10", "2025-01-14")

	month, err := env.reports.MonthWithMostSickLeaves(ctx)
	require.NoError(t, err)
	assert.Equal(t, "January", month.Month)
	assert.Equal(t, 2025, month.Year)
	assert.Equal(t, int64(1), month.Count)
}

func TestMonthWithMostSickLeavesNoRecords(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.reports.MonthWithMostSickLeaves(context.Background())
	assert.ErrorIs(t, err, usecase.ErrNoSickLeaveRecords)
}

func TestPatientsByDiagnose(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	family := env.createDoctor(t, "Dr. Family", true)
	sick := env.createPatient(t, "Anna Koleva", "9301014567", family.ID)
	env.createPatient(t, "Healthy Person", "8802023456", family.ID)
	flu := env.createDiagnose(t, "Flu")

	env.createAppointment(t, family.ID, sick.ID, "2025-02-10", flu.ID)
	// two flu visits must still yield the patient once
	env.createAppointment(t, family.ID, sick.ID, "2025-02-20", flu.ID)

	list, err := env.reports.PatientsByDiagnose(ctx, flu.ID)
	require.NoError(t, err)
	require.Equal(t, 1, list.Total)
	assert.Equal(t, sick.ID, list.Patients[0].ID)

	_, err = env.reports.PatientsByDiagnose(ctx, 9999)
	assert.ErrorIs(t, err, usecase.ErrDiagnoseNotFound)
}

func TestPatientsByFamilyDoctor(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	family := env.createDoctor(t, "Dr. Family", true)
	specialist := env.createDoctor(t, "Dr. Specialist", false)
	patient := env.createPatient(t, "Anna Koleva", "9301014567", family.ID)

	list, err := env.reports.PatientsByFamilyDoctor(ctx, family.ID)
	require.NoError(t, err)
	require.Equal(t, 1, list.Total)
	assert.Equal(t, patient.ID, list.Patients[0].ID)

	_, err = env.reports.PatientsByFamilyDoctor(ctx, specialist.ID)
	assert.ErrorIs(t, err, usecase.ErrNotFamilyDoctor)
}

func TestPatientVisitHistory(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	family := env.createDoctor(t, "Dr. Family", true)
	patient := env.createPatient(t, "Anna Koleva", "9301014567", family.ID)
	flu := env.createDiagnose(t, "Flu")

	appointment := env.createAppointment(t, family.ID, patient.ID, "2025-02-10", flu.ID)
	env.createSickLeave(t, appointment.ID, "2025-02-10", "2025-02-14")

	history, err := env.reports.PatientVisitHistory(ctx, patient.ID)
	require.NoError(t, err)
	assert.Equal(t, patient.ID, history.PatientID)
	assert.Equal(t, "Anna Koleva", history.PatientName)
	require.Equal(t, 1, history.Total)
	visit := history.Appointments[0]
	assert.Equal(t, "Dr. Family", visit.DoctorName)
	require.Len(t, visit.Diagnoses, 1)
	require.NotNil(t, visit.SickLeave)

	_, err = env.reports.PatientVisitHistory(ctx, 9999)
	assert.ErrorIs(t, err, usecase.ErrPatientNotFound)
}
