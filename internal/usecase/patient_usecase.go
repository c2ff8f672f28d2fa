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
	ErrPatientNotFound      = errors.New("patient not found")
	ErrCivilNumberExists    = errors.New("civil number already exists")
	ErrFamilyDoctorNotFound = errors.New("family doctor not found")
)

type PatientUsecase interface {
	CreatePatient(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error)
	GetPatient(ctx context.Context, id uint) (*dto.PatientResponse, error)
	GetAllPatients(ctx context.Context, includeRetired bool) (*dto.PatientListResponse, error)
	UpdatePatient(ctx context.Context, id uint, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error)
	RetirePatient(ctx context.Context, id uint) error
}

type patientUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	patientRepo  repository.PatientRepository
	doctorRepo   repository.DoctorRepository
	auditService service.AuditService
}

func NewPatientUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	doctorRepo repository.DoctorRepository,
	auditService service.AuditService,
) PatientUsecase {
	return &patientUsecase{
		db:           db,
		log:          log,
		patientRepo:  patientRepo,
		doctorRepo:   doctorRepo,
		auditService: auditService,
	}
}

// resolveFamilyDoctor validates the family doctor reference: the doctor
// must exist, be active and carry the family-doctor flag.
func (u *patientUsecase) resolveFamilyDoctor(db *gorm.DB, doctorID uint) (*entity.Doctor, error) {
	doctor, err := u.doctorRepo.FindByID(db, doctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, ErrFamilyDoctorNotFound
	}
	if doctor.Retired {
		return nil, ErrRecordRetired
	}
	if !doctor.IsFamilyDoctor {
		return nil, ErrNotFamilyDoctor
	}
	return doctor, nil
}

func (u *patientUsecase) CreatePatient(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	db := u.db.WithContext(ctx)

	existing, err := u.patientRepo.FindByCivilNumber(db, req.CivilNumber)
	if err != nil {
		u.log.Warnf("Failed to check civil number: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrCivilNumberExists
	}

	doctor, err := u.resolveFamilyDoctor(db, req.FamilyDoctorID)
	if err != nil {
		return nil, err
	}

	patient := &entity.Patient{
		Name:           req.Name,
		CivilNumber:    req.CivilNumber,
		FamilyDoctorID: doctor.ID,
	}

	if req.LastInsurancePayment != "" {
		paid, err := parseDate(req.LastInsurancePayment)
		if err != nil {
			return nil, err
		}
		patient.LastInsurancePayment = &paid
	}

	if err := u.patientRepo.Create(db, patient); err != nil {
		if isDuplicateKeyError(err, "civil_number") {
			return nil, ErrCivilNumberExists
		}
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, err
	}

	patient.FamilyDoctor = *doctor
	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) GetPatient(ctx context.Context, id uint) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find patient %d: %+v", id, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) GetAllPatients(ctx context.Context, includeRetired bool) (*dto.PatientListResponse, error) {
	db := u.db.WithContext(ctx)

	var patients []entity.Patient
	var err error
	if includeRetired {
		patients, err = u.patientRepo.FindAll(db)
	} else {
		patients, err = u.patientRepo.FindAllActive(db)
	}
	if err != nil {
		u.log.Warnf("Failed to list patients: %+v", err)
		return nil, err
	}

	return &dto.PatientListResponse{
		Patients: converter.PatientsToResponses(patients),
		Total:    len(patients),
	}, nil
}

func (u *patientUsecase) UpdatePatient(ctx context.Context, id uint, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
	db := u.db.WithContext(ctx)

	patient, err := u.patientRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find patient %d: %+v", id, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}
	if patient.Retired {
		return nil, ErrRecordRetired
	}

	if req.Name != "" {
		patient.Name = req.Name
	}
	if req.FamilyDoctorID != 0 && req.FamilyDoctorID != patient.FamilyDoctorID {
		doctor, err := u.resolveFamilyDoctor(db, req.FamilyDoctorID)
		if err != nil {
			return nil, err
		}
		patient.FamilyDoctorID = doctor.ID
		patient.FamilyDoctor = *doctor
	}
	if req.LastInsurancePayment != "" {
		paid, err := parseDate(req.LastInsurancePayment)
		if err != nil {
			return nil, err
		}
		patient.LastInsurancePayment = &paid
	}

	if err := u.patientRepo.Update(db, patient); err != nil {
		u.log.Warnf("Failed to update patient %d: %+v", id, err)
		return nil, err
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) RetirePatient(ctx context.Context, id uint) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.patientRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find patient %d: %+v", id, err)
		return err
	}
	if patient == nil {
		return ErrPatientNotFound
	}
	if patient.Retired {
		return nil
	}

	patient.Retired = true
	if err := u.patientRepo.Update(tx, patient); err != nil {
		u.log.Warnf("Failed to retire patient %d: %+v", id, err)
		return err
	}

	u.auditService.LogUpdate(ctx, tx, actorFromContext(ctx), entity.AuditActionPatientRetire, "patient", strconv.FormatUint(uint64(patient.ID), 10), map[string]interface{}{"retired": false}, map[string]interface{}{"retired": true})

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	u.log.Infof("Patient retired: id=%d, name=%s", patient.ID, patient.Name)
	return nil
}
