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
	ErrSpecializationNotFound   = errors.New("specialization not found")
	ErrSpecializationNameExists = errors.New("specialization name already exists")
)

type SpecializationUsecase interface {
	CreateSpecialization(ctx context.Context, req *dto.CreateSpecializationRequest) (*dto.SpecializationResponse, error)
	GetSpecialization(ctx context.Context, id uint) (*dto.SpecializationResponse, error)
	GetAllSpecializations(ctx context.Context, includeRetired bool) (*dto.SpecializationListResponse, error)
	UpdateSpecialization(ctx context.Context, id uint, req *dto.UpdateSpecializationRequest) (*dto.SpecializationResponse, error)
	RetireSpecialization(ctx context.Context, id uint) error
}

type specializationUsecase struct {
	db                 *gorm.DB
	log                *logrus.Logger
	specializationRepo repository.SpecializationRepository
	auditService       service.AuditService
}

func NewSpecializationUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	specializationRepo repository.SpecializationRepository,
	auditService service.AuditService,
) SpecializationUsecase {
	return &specializationUsecase{
		db:                 db,
		log:                log,
		specializationRepo: specializationRepo,
		auditService:       auditService,
	}
}

func (u *specializationUsecase) CreateSpecialization(ctx context.Context, req *dto.CreateSpecializationRequest) (*dto.SpecializationResponse, error) {
	db := u.db.WithContext(ctx)

	existing, err := u.specializationRepo.FindByName(db, req.Name)
	if err != nil {
		u.log.Warnf("Failed to check specialization name: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrSpecializationNameExists
	}

	specialization := &entity.Specialization{
		Name: req.Name,
	}

	if err := u.specializationRepo.Create(db, specialization); err != nil {
		if isDuplicateKeyError(err, "name") {
			return nil, ErrSpecializationNameExists
		}
		u.log.Warnf("Failed to create specialization: %+v", err)
		return nil, err
	}

	return converter.SpecializationToResponse(specialization), nil
}

func (u *specializationUsecase) GetSpecialization(ctx context.Context, id uint) (*dto.SpecializationResponse, error) {
	specialization, err := u.specializationRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find specialization %d: %+v", id, err)
		return nil, err
	}
	if specialization == nil {
		return nil, ErrSpecializationNotFound
	}

	return converter.SpecializationToResponse(specialization), nil
}

func (u *specializationUsecase) GetAllSpecializations(ctx context.Context, includeRetired bool) (*dto.SpecializationListResponse, error) {
	db := u.db.WithContext(ctx)

	var specializations []entity.Specialization
	var err error
	if includeRetired {
		specializations, err = u.specializationRepo.FindAll(db)
	} else {
		specializations, err = u.specializationRepo.FindAllActive(db)
	}
	if err != nil {
		u.log.Warnf("Failed to list specializations: %+v", err)
		return nil, err
	}

	return &dto.SpecializationListResponse{
		Specializations: converter.SpecializationsToResponses(specializations),
		Total:           len(specializations),
	}, nil
}

func (u *specializationUsecase) UpdateSpecialization(ctx context.Context, id uint, req *dto.UpdateSpecializationRequest) (*dto.SpecializationResponse, error) {
	db := u.db.WithContext(ctx)

	specialization, err := u.specializationRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find specialization %d: %+v", id, err)
		return nil, err
	}
	if specialization == nil {
		return nil, ErrSpecializationNotFound
	}
	if specialization.Retired {
		return nil, ErrRecordRetired
	}

	if req.Name != specialization.Name {
		existing, err := u.specializationRepo.FindByName(db, req.Name)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, ErrSpecializationNameExists
		}
	}

	specialization.Name = req.Name
	if err := u.specializationRepo.Update(db, specialization); err != nil {
		if isDuplicateKeyError(err, "name") {
			return nil, ErrSpecializationNameExists
		}
		u.log.Warnf("Failed to update specialization %d: %+v", id, err)
		return nil, err
	}

	return converter.SpecializationToResponse(specialization), nil
}

func (u *specializationUsecase) RetireSpecialization(ctx context.Context, id uint) error {
	db := u.db.WithContext(ctx)

	specialization, err := u.specializationRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find specialization %d: %+v", id, err)
		return err
	}
	if specialization == nil {
		return ErrSpecializationNotFound
	}
	if specialization.Retired {
		return nil
	}

	specialization.Retired = true
	if err := u.specializationRepo.Update(db, specialization); err != nil {
		u.log.Warnf("Failed to retire specialization %d: %+v", id, err)
		return err
	}

	u.auditService.LogUpdate(ctx, db, actorFromContext(ctx), entity.AuditActionSpecializationRetire, "specialization", strconv.FormatUint(uint64(specialization.ID), 10), map[string]interface{}{"retired": false}, map[string]interface{}{"retired": true})

	u.log.Infof("Specialization retired: id=%d, name=%s", specialization.ID, specialization.Name)
	return nil
}
