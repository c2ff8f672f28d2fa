package usecase

import (
	"context"
	"errors"

	"clinic-record-system/internal/converter"
	"clinic-record-system/internal/delivery/dto"
	"clinic-record-system/internal/domain/entity"
	"clinic-record-system/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrTreatmentNotFound = errors.New("treatment not found")

type TreatmentUsecase interface {
	CreateTreatment(ctx context.Context, req *dto.CreateTreatmentRequest) (*dto.TreatmentResponse, error)
	GetTreatment(ctx context.Context, id uint) (*dto.TreatmentResponse, error)
	GetAllTreatments(ctx context.Context) (*dto.TreatmentListResponse, error)
	UpdateTreatment(ctx context.Context, id uint, req *dto.UpdateTreatmentRequest) (*dto.TreatmentResponse, error)
	DeleteTreatment(ctx context.Context, id uint) error
}

type treatmentUsecase struct {
	db            *gorm.DB
	log           *logrus.Logger
	treatmentRepo repository.TreatmentRepository
}

func NewTreatmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	treatmentRepo repository.TreatmentRepository,
) TreatmentUsecase {
	return &treatmentUsecase{
		db:            db,
		log:           log,
		treatmentRepo: treatmentRepo,
	}
}

func (u *treatmentUsecase) CreateTreatment(ctx context.Context, req *dto.CreateTreatmentRequest) (*dto.TreatmentResponse, error) {
	treatment := &entity.Treatment{
		MedicineName: req.MedicineName,
		Dosage:       req.Dosage,
		Frequency:    req.Frequency,
	}

	if err := u.treatmentRepo.Create(u.db.WithContext(ctx), treatment); err != nil {
		u.log.Warnf("Failed to create treatment: %+v", err)
		return nil, err
	}

	return converter.TreatmentToResponse(treatment), nil
}

func (u *treatmentUsecase) GetTreatment(ctx context.Context, id uint) (*dto.TreatmentResponse, error) {
	treatment, err := u.treatmentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find treatment %d: %+v", id, err)
		return nil, err
	}
	if treatment == nil {
		return nil, ErrTreatmentNotFound
	}

	return converter.TreatmentToResponse(treatment), nil
}

func (u *treatmentUsecase) GetAllTreatments(ctx context.Context) (*dto.TreatmentListResponse, error) {
	treatments, err := u.treatmentRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list treatments: %+v", err)
		return nil, err
	}

	return &dto.TreatmentListResponse{
		Treatments: converter.TreatmentsToResponses(treatments),
		Total:      len(treatments),
	}, nil
}

func (u *treatmentUsecase) UpdateTreatment(ctx context.Context, id uint, req *dto.UpdateTreatmentRequest) (*dto.TreatmentResponse, error) {
	db := u.db.WithContext(ctx)

	treatment, err := u.treatmentRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find treatment %d: %+v", id, err)
		return nil, err
	}
	if treatment == nil {
		return nil, ErrTreatmentNotFound
	}

	if req.MedicineName != "" {
		treatment.MedicineName = req.MedicineName
	}
	if req.Dosage != "" {
		treatment.Dosage = req.Dosage
	}
	if req.Frequency != "" {
		treatment.Frequency = req.Frequency
	}

	if err := u.treatmentRepo.Update(db, treatment); err != nil {
		u.log.Warnf("Failed to update treatment %d: %+v", id, err)
		return nil, err
	}

	return converter.TreatmentToResponse(treatment), nil
}

// DeleteTreatment removes the treatment for good. Treatments carry no
// retired flag; links from past appointments are removed with the record.
func (u *treatmentUsecase) DeleteTreatment(ctx context.Context, id uint) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	treatment, err := u.treatmentRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find treatment %d: %+v", id, err)
		return err
	}
	if treatment == nil {
		return ErrTreatmentNotFound
	}

	if err := tx.Model(treatment).Association("Appointments").Clear(); err != nil {
		u.log.Warnf("Failed to unlink treatment %d: %+v", id, err)
		return err
	}

	if _, err := u.treatmentRepo.Delete(tx, id); err != nil {
		u.log.Warnf("Failed to delete treatment %d: %+v", id, err)
		return err
	}

	return tx.Commit().Error
}
