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
	ErrSickLeaveNotFound = errors.New("sick leave not found")
	ErrSickLeaveExists   = errors.New("appointment already has a sick leave")
)

type SickLeaveUsecase interface {
	CreateSickLeave(ctx context.Context, req *dto.CreateSickLeaveRequest) (*dto.SickLeaveResponse, error)
	GetSickLeave(ctx context.Context, id uint) (*dto.SickLeaveResponse, error)
	UpdateSickLeave(ctx context.Context, id uint, req *dto.UpdateSickLeaveRequest) (*dto.SickLeaveResponse, error)
	DeleteSickLeave(ctx context.Context, id uint) error
}

type sickLeaveUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	sickLeaveRepo   repository.SickLeaveRepository
	appointmentRepo repository.AppointmentRepository
	auditService    service.AuditService
}

func NewSickLeaveUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	sickLeaveRepo repository.SickLeaveRepository,
	appointmentRepo repository.AppointmentRepository,
	auditService service.AuditService,
) SickLeaveUsecase {
	return &sickLeaveUsecase{
		db:              db,
		log:             log,
		sickLeaveRepo:   sickLeaveRepo,
		appointmentRepo: appointmentRepo,
		auditService:    auditService,
	}
}

// CreateSickLeave issues a sick leave for a visit. An appointment can carry
// at most one; the date order is re-validated here because the check spans
// two fields.
func (u *sickLeaveUsecase) CreateSickLeave(ctx context.Context, req *dto.CreateSickLeaveRequest) (*dto.SickLeaveResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		return nil, err
	}

	appointment, err := u.appointmentRepo.FindByID(tx, req.AppointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %d: %+v", req.AppointmentID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	existing, err := u.sickLeaveRepo.FindByAppointmentID(tx, req.AppointmentID)
	if err != nil {
		u.log.Warnf("Failed to check sick leave for appointment %d: %+v", req.AppointmentID, err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrSickLeaveExists
	}

	sickLeave := &entity.SickLeave{
		StartDate:     startDate,
		EndDate:       endDate,
		AppointmentID: appointment.ID,
	}
	if err := sickLeave.ValidatePeriod(); err != nil {
		return nil, err
	}

	if err := u.sickLeaveRepo.Create(tx, sickLeave); err != nil {
		if isDuplicateKeyError(err, "appointment_id") {
			return nil, ErrSickLeaveExists
		}
		u.log.Warnf("Failed to create sick leave: %+v", err)
		return nil, err
	}

	u.auditService.LogCreate(ctx, tx, actorFromContext(ctx), entity.AuditActionSickLeaveCreate, "sick_leave", strconv.FormatUint(uint64(sickLeave.ID), 10), map[string]interface{}{
		"appointment_id": appointment.ID,
		"start_date":     req.StartDate,
		"end_date":       req.EndDate,
	})

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.log.Infof("Sick leave created: id=%d, appointment=%d", sickLeave.ID, appointment.ID)
	return converter.SickLeaveToResponse(sickLeave), nil
}

func (u *sickLeaveUsecase) GetSickLeave(ctx context.Context, id uint) (*dto.SickLeaveResponse, error) {
	sickLeave, err := u.sickLeaveRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find sick leave %d: %+v", id, err)
		return nil, err
	}
	if sickLeave == nil {
		return nil, ErrSickLeaveNotFound
	}

	return converter.SickLeaveToResponse(sickLeave), nil
}

func (u *sickLeaveUsecase) UpdateSickLeave(ctx context.Context, id uint, req *dto.UpdateSickLeaveRequest) (*dto.SickLeaveResponse, error) {
	db := u.db.WithContext(ctx)

	sickLeave, err := u.sickLeaveRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find sick leave %d: %+v", id, err)
		return nil, err
	}
	if sickLeave == nil {
		return nil, ErrSickLeaveNotFound
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		return nil, err
	}

	sickLeave.StartDate = startDate
	sickLeave.EndDate = endDate
	if err := sickLeave.ValidatePeriod(); err != nil {
		return nil, err
	}

	if err := u.sickLeaveRepo.Update(db, sickLeave); err != nil {
		u.log.Warnf("Failed to update sick leave %d: %+v", id, err)
		return nil, err
	}

	return converter.SickLeaveToResponse(sickLeave), nil
}

func (u *sickLeaveUsecase) DeleteSickLeave(ctx context.Context, id uint) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	sickLeave, err := u.sickLeaveRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find sick leave %d: %+v", id, err)
		return err
	}
	if sickLeave == nil {
		return ErrSickLeaveNotFound
	}

	if _, err := u.sickLeaveRepo.Delete(tx, id); err != nil {
		u.log.Warnf("Failed to delete sick leave %d: %+v", id, err)
		return err
	}

	u.auditService.LogDelete(ctx, tx, actorFromContext(ctx), entity.AuditActionSickLeaveDelete, "sick_leave", strconv.FormatUint(uint64(id), 10), map[string]interface{}{
		"appointment_id": sickLeave.AppointmentID,
	})

	return tx.Commit().Error
}
