package usecase_test

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"clinic-record-system/config"
	"clinic-record-system/internal/delivery/dto"
	"clinic-record-system/internal/domain/entity"
	"clinic-record-system/internal/repository"
	"clinic-record-system/internal/service"
	"clinic-record-system/internal/usecase"
	"clinic-record-system/pkg/jwt"
)

// testEnv wires the real repositories and usecases against an in-memory
// SQLite database so usecase behavior is exercised end to end, transactions
// included, without a running Postgres.
type testEnv struct {
	db              *gorm.DB
	specializations usecase.SpecializationUsecase
	doctors         usecase.DoctorUsecase
	patients        usecase.PatientUsecase
	diagnoses       usecase.DiagnoseUsecase
	treatments      usecase.TreatmentUsecase
	appointments    usecase.AppointmentUsecase
	sickLeaves      usecase.SickLeaveUsecase
	reports         usecase.ReportUsecase
	auditLogs       usecase.AuditLogUsecase
	auth            usecase.AuthUsecase
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	// A second pooled connection would see its own empty :memory: database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&entity.Role{},
		&entity.User{},
		&entity.Specialization{},
		&entity.Doctor{},
		&entity.Patient{},
		&entity.Diagnose{},
		&entity.Treatment{},
		&entity.Appointment{},
		&entity.SickLeave{},
		&entity.AuditLog{},
	))

	roles := []entity.Role{
		{ID: entity.RoleIDAdmin, RoleName: entity.RoleAdmin},
		{ID: entity.RoleIDDoctor, RoleName: entity.RoleDoctor},
		{ID: entity.RoleIDPatient, RoleName: entity.RolePatient},
	}
	require.NoError(t, db.Create(&roles).Error)

	log := logrus.New()
	log.SetOutput(io.Discard)

	userRepo := repository.NewUserRepository()
	roleRepo := repository.NewRoleRepository()
	specializationRepo := repository.NewSpecializationRepository()
	doctorRepo := repository.NewDoctorRepository()
	patientRepo := repository.NewPatientRepository()
	diagnoseRepo := repository.NewDiagnoseRepository()
	treatmentRepo := repository.NewTreatmentRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	sickLeaveRepo := repository.NewSickLeaveRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	auditService := service.NewAuditService(db, log, auditLogRepo)

	jwtService := jwt.NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: 24 * time.Hour,
	})

	return &testEnv{
		db:              db,
		specializations: usecase.NewSpecializationUsecase(db, log, specializationRepo, auditService),
		doctors:         usecase.NewDoctorUsecase(db, log, doctorRepo, specializationRepo, patientRepo, auditService),
		patients:        usecase.NewPatientUsecase(db, log, patientRepo, doctorRepo, auditService),
		diagnoses:       usecase.NewDiagnoseUsecase(db, log, diagnoseRepo, auditService),
		treatments:      usecase.NewTreatmentUsecase(db, log, treatmentRepo),
		appointments:    usecase.NewAppointmentUsecase(db, log, appointmentRepo, doctorRepo, patientRepo, diagnoseRepo, treatmentRepo, sickLeaveRepo, auditService),
		sickLeaves:      usecase.NewSickLeaveUsecase(db, log, sickLeaveRepo, appointmentRepo, auditService),
		reports:         usecase.NewReportUsecase(db, log, appointmentRepo, patientRepo, doctorRepo, diagnoseRepo, sickLeaveRepo),
		auditLogs:       usecase.NewAuditLogUsecase(db, log, auditLogRepo),
		// Registration and login never reach Redis, so a nil client is fine here.
		auth: usecase.NewAuthUsecase(db, log, userRepo, roleRepo, doctorRepo, patientRepo, jwtService, nil, auditService),
	}
}

// Fixture helpers. All of them fail the test on error so the test bodies
// stay focused on the behavior under test.

func (e *testEnv) createDoctor(t *testing.T, name string, isFamilyDoctor bool) *dto.DoctorResponse {
	t.Helper()
	doctor, err := e.doctors.CreateDoctor(context.Background(), &dto.CreateDoctorRequest{
		Name:           name,
		IsFamilyDoctor: isFamilyDoctor,
	})
	require.NoError(t, err)
	return doctor
}

func (e *testEnv) createPatient(t *testing.T, name, civilNumber string, familyDoctorID uint) *dto.PatientResponse {
	t.Helper()
	patient, err := e.patients.CreatePatient(context.Background(), &dto.CreatePatientRequest{
		Name:           name,
		CivilNumber:    civilNumber,
		FamilyDoctorID: familyDoctorID,
	})
	require.NoError(t, err)
	return patient
}

func (e *testEnv) createDiagnose(t *testing.T, name string) *dto.DiagnoseResponse {
	t.Helper()
	diagnose, err := e.diagnoses.CreateDiagnose(context.Background(), &dto.CreateDiagnoseRequest{
		Name:        name,
		Description: name + " description",
	})
	require.NoError(t, err)
	return diagnose
}

func (e *testEnv) createTreatment(t *testing.T, medicineName string) *dto.TreatmentResponse {
	t.Helper()
	treatment, err := e.treatments.CreateTreatment(context.Background(), &dto.CreateTreatmentRequest{
		MedicineName: medicineName,
		Dosage:       "500mg",
		Frequency:    "twice daily",
	})
	require.NoError(t, err)
	return treatment
}

func (e *testEnv) createAppointment(t *testing.T, doctorID, patientID uint, visitDate string, diagnoseIDs ...uint) *dto.AppointmentResponse {
	t.Helper()
	appointment, err := e.appointments.CreateAppointment(context.Background(), &dto.CreateAppointmentRequest{
		VisitDate:   visitDate,
		DoctorID:    doctorID,
		PatientID:   patientID,
		DiagnoseIDs: diagnoseIDs,
	})
	require.NoError(t, err)
	return appointment
}

func (e *testEnv) createSickLeave(t *testing.T, appointmentID uint, startDate, endDate string) *dto.SickLeaveResponse {
	t.Helper()
	sickLeave, err := e.sickLeaves.CreateSickLeave(context.Background(), &dto.CreateSickLeaveRequest{
		AppointmentID: appointmentID,
		StartDate:     startDate,
		EndDate:       endDate,
	})
	require.NoError(t, err)
	return sickLeave
}
