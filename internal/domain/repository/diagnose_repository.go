package repository

import (
	"clinic-record-system/internal/domain/entity"

	"gorm.io/gorm"
)

type DiagnoseRepository interface {
	Create(db *gorm.DB, diagnose *entity.Diagnose) error
	FindByID(db *gorm.DB, id uint) (*entity.Diagnose, error)
	FindByName(db *gorm.DB, name string) (*entity.Diagnose, error)
	FindAll(db *gorm.DB) ([]entity.Diagnose, error)
	FindAllActive(db *gorm.DB) ([]entity.Diagnose, error)
	CountAppointmentsPerDiagnose(db *gorm.DB) ([]entity.DiagnoseAppointmentCount, error)
	Update(db *gorm.DB, diagnose *entity.Diagnose) error
}
