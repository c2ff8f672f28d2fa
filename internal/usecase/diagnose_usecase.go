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
	ErrDiagnoseNotFound   = errors.New("diagnose not found")
	ErrDiagnoseNameExists = errors.New("diagnose name already exists")
)

type DiagnoseUsecase interface {
	CreateDiagnose(ctx context.Context, req *dto.CreateDiagnoseRequest) (*dto.DiagnoseResponse, error)
	GetDiagnose(ctx context.Context, id uint) (*dto.DiagnoseResponse, error)
	GetAllDiagnoses(ctx context.Context, includeRetired bool) (*dto.DiagnoseListResponse, error)
	UpdateDiagnose(ctx context.Context, id uint, req *dto.UpdateDiagnoseRequest) (*dto.DiagnoseResponse, error)
	RetireDiagnose(ctx context.Context, id uint) error
}

type diagnoseUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	diagnoseRepo repository.DiagnoseRepository
	auditService service.AuditService
}

func NewDiagnoseUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	diagnoseRepo repository.DiagnoseRepository,
	auditService service.AuditService,
) DiagnoseUsecase {
	return &diagnoseUsecase{
		db:           db,
		log:          log,
		diagnoseRepo: diagnoseRepo,
		auditService: auditService,
	}
}

func (u *diagnoseUsecase) CreateDiagnose(ctx context.Context, req *dto.CreateDiagnoseRequest) (*dto.DiagnoseResponse, error) {
	db := u.db.WithContext(ctx)

	existing, err := u.diagnoseRepo.FindByName(db, req.Name)
	if err != nil {
		u.log.Warnf("Failed to check diagnose name: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrDiagnoseNameExists
	}

	diagnose := &entity.Diagnose{
		Name:        req.Name,
		Description: req.Description,
	}

	if err := u.diagnoseRepo.Create(db, diagnose); err != nil {
		if isDuplicateKeyError(err, "name") {
			return nil, ErrDiagnoseNameExists
		}
		u.log.Warnf("Failed to create diagnose: %+v", err)
		return nil, err
	}

	return converter.DiagnoseToResponse(diagnose), nil
}

func (u *diagnoseUsecase) GetDiagnose(ctx context.Context, id uint) (*dto.DiagnoseResponse, error) {
	diagnose, err := u.diagnoseRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find diagnose %d: %+v", id, err)
		return nil, err
	}
	if diagnose == nil {
		return nil, ErrDiagnoseNotFound
	}

	return converter.DiagnoseToResponse(diagnose), nil
}

func (u *diagnoseUsecase) GetAllDiagnoses(ctx context.Context, includeRetired bool) (*dto.DiagnoseListResponse, error) {
	db := u.db.WithContext(ctx)

	var diagnoses []entity.Diagnose
	var err error
	if includeRetired {
		diagnoses, err = u.diagnoseRepo.FindAll(db)
	} else {
		diagnoses, err = u.diagnoseRepo.FindAllActive(db)
	}
	if err != nil {
		u.log.Warnf("Failed to list diagnoses: %+v", err)
		return nil, err
	}

	return &dto.DiagnoseListResponse{
		Diagnoses: converter.DiagnosesToResponses(diagnoses),
		Total:     len(diagnoses),
	}, nil
}

func (u *diagnoseUsecase) UpdateDiagnose(ctx context.Context, id uint, req *dto.UpdateDiagnoseRequest) (*dto.DiagnoseResponse, error) {
	db := u.db.WithContext(ctx)

	diagnose, err := u.diagnoseRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find diagnose %d: %+v", id, err)
		return nil, err
	}
	if diagnose == nil {
		return nil, ErrDiagnoseNotFound
	}
	if diagnose.Retired {
		return nil, ErrRecordRetired
	}

	if req.Name != "" && req.Name != diagnose.Name {
		existing, err := u.diagnoseRepo.FindByName(db, req.Name)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, ErrDiagnoseNameExists
		}
		diagnose.Name = req.Name
	}
	if req.Description != "" {
		diagnose.Description = req.Description
	}

	if err := u.diagnoseRepo.Update(db, diagnose); err != nil {
		if isDuplicateKeyError(err, "name") {
			return nil, ErrDiagnoseNameExists
		}
		u.log.Warnf("Failed to update diagnose %d: %+v", id, err)
		return nil, err
	}

	return converter.DiagnoseToResponse(diagnose), nil
}

func (u *diagnoseUsecase) RetireDiagnose(ctx context.Context, id uint) error {
	db := u.db.WithContext(ctx)

	diagnose, err := u.diagnoseRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find diagnose %d: %+v", id, err)
		return err
	}
	if diagnose == nil {
		return ErrDiagnoseNotFound
	}
	if diagnose.Retired {
		return nil
	}

	diagnose.Retired = true
	if err := u.diagnoseRepo.Update(db, diagnose); err != nil {
		u.log.Warnf("Failed to retire diagnose %d: %+v", id, err)
		return err
	}

	u.auditService.LogUpdate(ctx, db, actorFromContext(ctx), entity.AuditActionDiagnoseRetire, "diagnose", strconv.FormatUint(uint64(diagnose.ID), 10), map[string]interface{}{"retired": false}, map[string]interface{}{"retired": true})

	u.log.Infof("Diagnose retired: id=%d, name=%s", diagnose.ID, diagnose.Name)
	return nil
}
