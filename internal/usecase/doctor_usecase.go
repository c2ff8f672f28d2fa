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
	ErrDoctorNotFound  = errors.New("doctor not found")
	ErrNotFamilyDoctor = errors.New("doctor is not a family doctor")
)

type DoctorUsecase interface {
	CreateDoctor(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error)
	GetDoctor(ctx context.Context, id uint) (*dto.DoctorResponse, error)
	GetAllDoctors(ctx context.Context, includeRetired bool) (*dto.DoctorListResponse, error)
	GetFamilyDoctors(ctx context.Context) (*dto.DoctorListResponse, error)
	UpdateDoctor(ctx context.Context, id uint, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error)
	RetireDoctor(ctx context.Context, id uint) error
	AddSpecialization(ctx context.Context, doctorID, specializationID uint) error
	RemoveSpecialization(ctx context.Context, doctorID, specializationID uint) error
	GetPatients(ctx context.Context, doctorID uint) (*dto.PatientListResponse, error)
}

type doctorUsecase struct {
	db                 *gorm.DB
	log                *logrus.Logger
	doctorRepo         repository.DoctorRepository
	specializationRepo repository.SpecializationRepository
	patientRepo        repository.PatientRepository
	auditService       service.AuditService
}

func NewDoctorUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	specializationRepo repository.SpecializationRepository,
	patientRepo repository.PatientRepository,
	auditService service.AuditService,
) DoctorUsecase {
	return &doctorUsecase{
		db:                 db,
		log:                log,
		doctorRepo:         doctorRepo,
		specializationRepo: specializationRepo,
		patientRepo:        patientRepo,
		auditService:       auditService,
	}
}

func (u *doctorUsecase) CreateDoctor(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctor := &entity.Doctor{
		Name:           req.Name,
		IsFamilyDoctor: req.IsFamilyDoctor,
	}

	if err := u.doctorRepo.Create(tx, doctor); err != nil {
		u.log.Warnf("Failed to create doctor: %+v", err)
		return nil, err
	}

	for _, specializationID := range req.SpecializationIDs {
		specialization, err := u.specializationRepo.FindByID(tx, specializationID)
		if err != nil {
			return nil, err
		}
		if specialization == nil {
			return nil, ErrSpecializationNotFound
		}
		if specialization.Retired {
			return nil, ErrRecordRetired
		}
		if err := u.doctorRepo.AppendSpecialization(tx, doctor, specialization); err != nil {
			u.log.Warnf("Failed to link specialization %d to doctor: %+v", specializationID, err)
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) GetDoctor(ctx context.Context, id uint) (*dto.DoctorResponse, error) {
	doctor, err := u.doctorRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find doctor %d: %+v", id, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) GetAllDoctors(ctx context.Context, includeRetired bool) (*dto.DoctorListResponse, error) {
	db := u.db.WithContext(ctx)

	var doctors []entity.Doctor
	var err error
	if includeRetired {
		doctors, err = u.doctorRepo.FindAll(db)
	} else {
		doctors, err = u.doctorRepo.FindAllActive(db)
	}
	if err != nil {
		u.log.Warnf("Failed to list doctors: %+v", err)
		return nil, err
	}

	return &dto.DoctorListResponse{
		Doctors: converter.DoctorsToResponses(doctors),
		Total:   len(doctors),
	}, nil
}

func (u *doctorUsecase) GetFamilyDoctors(ctx context.Context) (*dto.DoctorListResponse, error) {
	doctors, err := u.doctorRepo.FindAllActiveFamilyDoctors(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list family doctors: %+v", err)
		return nil, err
	}

	return &dto.DoctorListResponse{
		Doctors: converter.DoctorsToResponses(doctors),
		Total:   len(doctors),
	}, nil
}

func (u *doctorUsecase) UpdateDoctor(ctx context.Context, id uint, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error) {
	db := u.db.WithContext(ctx)

	doctor, err := u.doctorRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find doctor %d: %+v", id, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}
	if doctor.Retired {
		return nil, ErrRecordRetired
	}

	if req.Name != "" {
		doctor.Name = req.Name
	}
	if req.IsFamilyDoctor != nil {
		doctor.IsFamilyDoctor = *req.IsFamilyDoctor
	}

	if err := u.doctorRepo.Update(db, doctor); err != nil {
		u.log.Warnf("Failed to update doctor %d: %+v", id, err)
		return nil, err
	}

	return converter.DoctorToResponse(doctor), nil
}

// RetireDoctor marks the doctor as retired. Historical appointments keep
// referencing the doctor; it only disappears from active listings and can
// no longer take part in new associations.
func (u *doctorUsecase) RetireDoctor(ctx context.Context, id uint) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctor, err := u.doctorRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find doctor %d: %+v", id, err)
		return err
	}
	if doctor == nil {
		return ErrDoctorNotFound
	}
	if doctor.Retired {
		return nil
	}

	doctor.Retired = true
	if err := u.doctorRepo.Update(tx, doctor); err != nil {
		u.log.Warnf("Failed to retire doctor %d: %+v", id, err)
		return err
	}

	u.auditService.LogUpdate(ctx, tx, actorFromContext(ctx), entity.AuditActionDoctorRetire, "doctor", strconv.FormatUint(uint64(doctor.ID), 10), map[string]interface{}{"retired": false}, map[string]interface{}{"retired": true})

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	u.log.Infof("Doctor retired: id=%d, name=%s", doctor.ID, doctor.Name)
	return nil
}

// AddSpecialization links a doctor and a specialization. Both sides must
// exist and be active; re-adding an existing link is a no-op.
func (u *doctorUsecase) AddSpecialization(ctx context.Context, doctorID, specializationID uint) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctor, err := u.doctorRepo.FindByID(tx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %d: %+v", doctorID, err)
		return err
	}
	if doctor == nil {
		return ErrDoctorNotFound
	}
	if doctor.Retired {
		return ErrRecordRetired
	}

	specialization, err := u.specializationRepo.FindByID(tx, specializationID)
	if err != nil {
		u.log.Warnf("Failed to find specialization %d: %+v", specializationID, err)
		return err
	}
	if specialization == nil {
		return ErrSpecializationNotFound
	}
	if specialization.Retired {
		return ErrRecordRetired
	}

	linked, err := u.doctorRepo.HasSpecialization(tx, doctorID, specializationID)
	if err != nil {
		return err
	}
	if linked {
		return tx.Commit().Error
	}

	if err := u.doctorRepo.AppendSpecialization(tx, doctor, specialization); err != nil {
		u.log.Warnf("Failed to link specialization %d to doctor %d: %+v", specializationID, doctorID, err)
		return err
	}

	return tx.Commit().Error
}

// RemoveSpecialization unlinks a doctor and a specialization. Removing a
// link that does not exist is a no-op.
func (u *doctorUsecase) RemoveSpecialization(ctx context.Context, doctorID, specializationID uint) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctor, err := u.doctorRepo.FindByID(tx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %d: %+v", doctorID, err)
		return err
	}
	if doctor == nil {
		return ErrDoctorNotFound
	}

	specialization, err := u.specializationRepo.FindByID(tx, specializationID)
	if err != nil {
		u.log.Warnf("Failed to find specialization %d: %+v", specializationID, err)
		return err
	}
	if specialization == nil {
		return ErrSpecializationNotFound
	}

	if err := u.doctorRepo.RemoveSpecialization(tx, doctor, specialization); err != nil {
		u.log.Warnf("Failed to unlink specialization %d from doctor %d: %+v", specializationID, doctorID, err)
		return err
	}

	return tx.Commit().Error
}

// GetPatients lists the active patients registered with a family doctor.
func (u *doctorUsecase) GetPatients(ctx context.Context, doctorID uint) (*dto.PatientListResponse, error) {
	db := u.db.WithContext(ctx)

	doctor, err := u.doctorRepo.FindByID(db, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %d: %+v", doctorID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}
	if !doctor.IsFamilyDoctor {
		return nil, ErrNotFamilyDoctor
	}

	patients, err := u.patientRepo.FindAllActiveByFamilyDoctor(db, doctorID)
	if err != nil {
		u.log.Warnf("Failed to list patients of doctor %d: %+v", doctorID, err)
		return nil, err
	}

	return &dto.PatientListResponse{
		Patients: converter.PatientsToResponses(patients),
		Total:    len(patients),
	}, nil
}
