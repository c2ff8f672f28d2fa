package repository

import (
	"clinic-record-system/internal/domain/entity"

	"gorm.io/gorm"
)

type SickLeaveRepository interface {
	Create(db *gorm.DB, sickLeave *entity.SickLeave) error
	FindByID(db *gorm.DB, id uint) (*entity.SickLeave, error)
	FindByAppointmentID(db *gorm.DB, appointmentID uint) (*entity.SickLeave, error)
	FindAllOrderedByStartDate(db *gorm.DB) ([]entity.SickLeave, error)
	CountPerDoctor(db *gorm.DB) ([]entity.DoctorSickLeaveCount, error)
	Update(db *gorm.DB, sickLeave *entity.SickLeave) error
	Delete(db *gorm.DB, id uint) (int64, error)
}
