package usecase

import (
	"context"
	"errors"
	"strconv"

	"clinic-record-system/internal/converter"
	"clinic-record-system/internal/delivery/dto"
	"clinic-record-system/internal/domain/entity"
	"clinic-record-system/internal/domain/repository"
	"clinic-record-system/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrNoDiagnoses         = errors.New("appointment requires at least one diagnose")
	ErrLastDiagnose        = errors.New("appointment must keep at least one diagnose")
)

type AppointmentUsecase interface {
	CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	GetAppointment(ctx context.Context, id uint) (*dto.AppointmentResponse, error)
	GetAllAppointments(ctx context.Context) (*dto.AppointmentListResponse, error)
	GetAppointmentsByDoctor(ctx context.Context, doctorID uint) (*dto.AppointmentListResponse, error)
	GetAppointmentsByPatient(ctx context.Context, patientID uint) (*dto.AppointmentListResponse, error)
	UpdateAppointment(ctx context.Context, id uint, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error)
	DeleteAppointment(ctx context.Context, id uint) error
	AddDiagnose(ctx context.Context, appointmentID, diagnoseID uint) error
	RemoveDiagnose(ctx context.Context, appointmentID, diagnoseID uint) error
	AddTreatment(ctx context.Context, appointmentID, treatmentID uint) error
	RemoveTreatment(ctx context.Context, appointmentID, treatmentID uint) error
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	doctorRepo      repository.DoctorRepository
	patientRepo     repository.PatientRepository
	diagnoseRepo    repository.DiagnoseRepository
	treatmentRepo   repository.TreatmentRepository
	sickLeaveRepo   repository.SickLeaveRepository
	auditService    service.AuditService
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	doctorRepo repository.DoctorRepository,
	patientRepo repository.PatientRepository,
	diagnoseRepo repository.DiagnoseRepository,
	treatmentRepo repository.TreatmentRepository,
	sickLeaveRepo repository.SickLeaveRepository,
	auditService service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		doctorRepo:      doctorRepo,
		patientRepo:     patientRepo,
		diagnoseRepo:    diagnoseRepo,
		treatmentRepo:   treatmentRepo,
		sickLeaveRepo:   sickLeaveRepo,
		auditService:    auditService,
	}
}

// CreateAppointment records a visit. The doctor and the patient must both
// exist and be active, and at least one active diagnose is required. All
// writes happen in one transaction so a failed lookup leaves no partial
// appointment behind.
func (u *appointmentUsecase) CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	visitDate, err := parseDate(req.VisitDate)
	if err != nil {
		return nil, err
	}

	if len(req.DiagnoseIDs) == 0 {
		return nil, ErrNoDiagnoses
	}

	doctor, err := u.doctorRepo.FindByID(tx, req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %d: %+v", req.DoctorID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}
	if doctor.Retired {
		return nil, ErrRecordRetired
	}

	patient, err := u.patientRepo.FindByID(tx, req.PatientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %d: %+v", req.PatientID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}
	if patient.Retired {
		return nil, ErrRecordRetired
	}

	diagnoses := make([]*entity.Diagnose, 0, len(req.DiagnoseIDs))
	for _, diagnoseID := range req.DiagnoseIDs {
		diagnose, err := u.diagnoseRepo.FindByID(tx, diagnoseID)
		if err != nil {
			return nil, err
		}
		if diagnose == nil {
			return nil, ErrDiagnoseNotFound
		}
		if diagnose.Retired {
			return nil, ErrRecordRetired
		}
		diagnoses = append(diagnoses, diagnose)
	}

	treatments := make([]*entity.Treatment, 0, len(req.TreatmentIDs))
	for _, treatmentID := range req.TreatmentIDs {
		treatment, err := u.treatmentRepo.FindByID(tx, treatmentID)
		if err != nil {
			return nil, err
		}
		if treatment == nil {
			return nil, ErrTreatmentNotFound
		}
		treatments = append(treatments, treatment)
	}

	appointment := &entity.Appointment{
		VisitDate: visitDate,
		DoctorID:  doctor.ID,
		PatientID: patient.ID,
	}

	if err := u.appointmentRepo.Create(tx, appointment); err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	for _, diagnose := range diagnoses {
		if err := u.appointmentRepo.AppendDiagnose(tx, appointment, diagnose); err != nil {
			u.log.Warnf("Failed to link diagnose %d: %+v", diagnose.ID, err)
			return nil, err
		}
	}
	for _, treatment := range treatments {
		if err := u.appointmentRepo.AppendTreatment(tx, appointment, treatment); err != nil {
			u.log.Warnf("Failed to link treatment %d: %+v", treatment.ID, err)
			return nil, err
		}
	}

	u.auditService.LogCreate(ctx, tx, actorFromContext(ctx), entity.AuditActionAppointmentCreate, "appointment", strconv.FormatUint(uint64(appointment.ID), 10), map[string]interface{}{
		"doctor_id":  doctor.ID,
		"patient_id": patient.ID,
		"visit_date": req.VisitDate,
	})

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	full, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), appointment.ID)
	if err != nil || full == nil {
		u.log.Warnf("Failed to reload appointment %d: %+v", appointment.ID, err)
		return converter.AppointmentToResponse(appointment), nil
	}

	u.log.Infof("Appointment created: id=%d, doctor=%d, patient=%d", appointment.ID, doctor.ID, patient.ID)
	return converter.AppointmentToResponse(full), nil
}

func (u *appointmentUsecase) GetAppointment(ctx context.Context, id uint) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %d: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) GetAllAppointments(ctx context.Context) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

func (u *appointmentUsecase) GetAppointmentsByDoctor(ctx context.Context, doctorID uint) (*dto.AppointmentListResponse, error) {
	db := u.db.WithContext(ctx)

	doctor, err := u.doctorRepo.FindByID(db, doctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	appointments, err := u.appointmentRepo.FindAllByDoctor(db, doctorID)
	if err != nil {
		u.log.Warnf("Failed to list appointments of doctor %d: %+v", doctorID, err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

func (u *appointmentUsecase) GetAppointmentsByPatient(ctx context.Context, patientID uint) (*dto.AppointmentListResponse, error) {
	db := u.db.WithContext(ctx)

	patient, err := u.patientRepo.FindByID(db, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	appointments, err := u.appointmentRepo.FindAllByPatient(db, patientID)
	if err != nil {
		u.log.Warnf("Failed to list appointments of patient %d: %+v", patientID, err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

func (u *appointmentUsecase) UpdateAppointment(ctx context.Context, id uint, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	db := u.db.WithContext(ctx)

	appointment, err := u.appointmentRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %d: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	visitDate, err := parseDate(req.VisitDate)
	if err != nil {
		return nil, err
	}

	appointment.VisitDate = visitDate
	if err := u.appointmentRepo.Update(db, appointment); err != nil {
		u.log.Warnf("Failed to update appointment %d: %+v", id, err)
		return nil, err
	}

	return converter.AppointmentToResponse(appointment), nil
}

// DeleteAppointment removes the visit record entirely, together with its
// diagnose/treatment links and its sick leave if one was issued.
func (u *appointmentUsecase) DeleteAppointment(ctx context.Context, id uint) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %d: %+v", id, err)
		return err
	}
	if appointment == nil {
		return ErrAppointmentNotFound
	}

	if appointment.SickLeave != nil {
		if _, err := u.sickLeaveRepo.Delete(tx, appointment.SickLeave.ID); err != nil {
			u.log.Warnf("Failed to delete sick leave of appointment %d: %+v", id, err)
			return err
		}
	}

	if err := tx.Model(appointment).Association("Diagnoses").Clear(); err != nil {
		return err
	}
	if err := tx.Model(appointment).Association("Treatments").Clear(); err != nil {
		return err
	}

	if _, err := u.appointmentRepo.Delete(tx, id); err != nil {
		u.log.Warnf("Failed to delete appointment %d: %+v", id, err)
		return err
	}

	u.auditService.LogDelete(ctx, tx, actorFromContext(ctx), entity.AuditActionAppointmentDelete, "appointment", strconv.FormatUint(uint64(id), 10), map[string]interface{}{
		"doctor_id":  appointment.DoctorID,
		"patient_id": appointment.PatientID,
	})

	return tx.Commit().Error
}

// AddDiagnose links a diagnose to an appointment. The diagnose must be
// active; re-adding an existing link is a no-op.
func (u *appointmentUsecase) AddDiagnose(ctx context.Context, appointmentID, diagnoseID uint) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByID(tx, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %d: %+v", appointmentID, err)
		return err
	}
	if appointment == nil {
		return ErrAppointmentNotFound
	}

	diagnose, err := u.diagnoseRepo.FindByID(tx, diagnoseID)
	if err != nil {
		u.log.Warnf("Failed to find diagnose %d: %+v", diagnoseID, err)
		return err
	}
	if diagnose == nil {
		return ErrDiagnoseNotFound
	}
	if diagnose.Retired {
		return ErrRecordRetired
	}

	linked, err := u.appointmentRepo.HasDiagnose(tx, appointmentID, diagnoseID)
	if err != nil {
		return err
	}
	if linked {
		return tx.Commit().Error
	}

	if err := u.appointmentRepo.AppendDiagnose(tx, appointment, diagnose); err != nil {
		u.log.Warnf("Failed to link diagnose %d to appointment %d: %+v", diagnoseID, appointmentID, err)
		return err
	}

	return tx.Commit().Error
}

// RemoveDiagnose unlinks a diagnose, refusing to drop the appointment's
// last one. Removing a non-existent link is a no-op.
func (u *appointmentUsecase) RemoveDiagnose(ctx context.Context, appointmentID, diagnoseID uint) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByID(tx, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %d: %+v", appointmentID, err)
		return err
	}
	if appointment == nil {
		return ErrAppointmentNotFound
	}

	diagnose, err := u.diagnoseRepo.FindByID(tx, diagnoseID)
	if err != nil {
		u.log.Warnf("Failed to find diagnose %d: %+v", diagnoseID, err)
		return err
	}
	if diagnose == nil {
		return ErrDiagnoseNotFound
	}

	linked, err := u.appointmentRepo.HasDiagnose(tx, appointmentID, diagnoseID)
	if err != nil {
		return err
	}
	if !linked {
		return tx.Commit().Error
	}

	count, err := u.appointmentRepo.CountDiagnoses(tx, appointmentID)
	if err != nil {
		return err
	}
	if count <= 1 {
		return ErrLastDiagnose
	}

	if err := u.appointmentRepo.RemoveDiagnose(tx, appointment, diagnose); err != nil {
		u.log.Warnf("Failed to unlink diagnose %d from appointment %d: %+v", diagnoseID, appointmentID, err)
		return err
	}

	return tx.Commit().Error
}

// AddTreatment links a treatment to an appointment; idempotent.
func (u *appointmentUsecase) AddTreatment(ctx context.Context, appointmentID, treatmentID uint) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByID(tx, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %d: %+v", appointmentID, err)
		return err
	}
	if appointment == nil {
		return ErrAppointmentNotFound
	}

	treatment, err := u.treatmentRepo.FindByID(tx, treatmentID)
	if err != nil {
		u.log.Warnf("Failed to find treatment %d: %+v", treatmentID, err)
		return err
	}
	if treatment == nil {
		return ErrTreatmentNotFound
	}

	linked, err := u.appointmentRepo.HasTreatment(tx, appointmentID, treatmentID)
	if err != nil {
		return err
	}
	if linked {
		return tx.Commit().Error
	}

	if err := u.appointmentRepo.AppendTreatment(tx, appointment, treatment); err != nil {
		u.log.Warnf("Failed to link treatment %d to appointment %d: %+v", treatmentID, appointmentID, err)
		return err
	}

	return tx.Commit().Error
}

// RemoveTreatment unlinks a treatment; removing a non-existent link is a
// no-op.
func (u *appointmentUsecase) RemoveTreatment(ctx context.Context, appointmentID, treatmentID uint) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByID(tx, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %d: %+v", appointmentID, err)
		return err
	}
	if appointment == nil {
		return ErrAppointmentNotFound
	}

	treatment, err := u.treatmentRepo.FindByID(tx, treatmentID)
	if err != nil {
		u.log.Warnf("Failed to find treatment %d: %+v", treatmentID, err)
		return err
	}
	if treatment == nil {
		return ErrTreatmentNotFound
	}

	if err := u.appointmentRepo.RemoveTreatment(tx, appointment, treatment); err != nil {
		u.log.Warnf("Failed to unlink treatment %d from appointment %d: %+v", treatmentID, appointmentID, err)
		return err
	}

	return tx.Commit().Error
}
