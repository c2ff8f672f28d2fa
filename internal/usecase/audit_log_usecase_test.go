package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clinic-record-system/internal/domain/entity"
)

func TestAuditTrailRecordsMutations(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	family := env.createDoctor(t, "Dr. Family", true)
	patient := env.createPatient(t, "Anna Koleva", "9301014567", family.ID)
	flu := env.createDiagnose(t, "Flu")
	appointment := env.createAppointment(t, family.ID, patient.ID, "2025-02-10", flu.ID)
	env.createSickLeave(t, appointment.ID, "2025-02-10", "2025-02-14")
	require.NoError(t, env.patients.RetirePatient(ctx, patient.ID))

	list, err := env.auditLogs.GetAllAuditLogs(ctx, 50, 0)
	require.NoError(t, err)

	actions := make(map[string]int)
	for _, entry := range list.Logs {
		actions[entry.Action]++
	}
	assert.Equal(t, 1, actions[entity.AuditActionAppointmentCreate])
	assert.Equal(t, 1, actions[entity.AuditActionSickLeaveCreate])
	assert.Equal(t, 1, actions[entity.AuditActionPatientRetire])
}

func TestAuditEntryCarriesMetadata(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	family := env.createDoctor(t, "Dr. Family", true)
	patient := env.createPatient(t, "Anna Koleva", "9301014567", family.ID)
	flu := env.createDiagnose(t, "Flu")
	env.createAppointment(t, family.ID, patient.ID, "2025-02-10", flu.ID)

	list, err := env.auditLogs.GetAllAuditLogs(ctx, 50, 0)
	require.NoError(t, err)
	require.Equal(t, int64(1), list.Total)

	entry := list.Logs[0]
	assert.Equal(t, entity.AuditActionAppointmentCreate, entry.Action)
	assert.Equal(t, "appointment", entry.Metadata["entity"])
	// no authenticated actor in these calls
	assert.Nil(t, entry.UserID)
}

func TestGetAllAuditLogsClampsPaging(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	family := env.createDoctor(t, "Dr. Family", true)
	patient := env.createPatient(t, "Anna Koleva", "9301014567", family.ID)
	flu := env.createDiagnose(t, "Flu")
	env.createAppointment(t, family.ID, patient.ID, "2025-02-10", flu.ID)
	env.createAppointment(t, family.ID, patient.ID, "2025-02-11", flu.ID)

	// nonsense paging values fall back to the defaults
	list, err := env.auditLogs.GetAllAuditLogs(ctx, -5, -10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), list.Total)
	assert.Len(t, list.Logs, 2)

	page, err := env.auditLogs.GetAllAuditLogs(ctx, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.Total)
	assert.Len(t, page.Logs, 1)
}
