package repository

import (
	"clinic-record-system/internal/domain/entity"

	"gorm.io/gorm"
)

type PatientRepository interface {
	Create(db *gorm.DB, patient *entity.Patient) error
	FindByID(db *gorm.DB, id uint) (*entity.Patient, error)
	FindByCivilNumber(db *gorm.DB, civilNumber string) (*entity.Patient, error)
	FindAll(db *gorm.DB) ([]entity.Patient, error)
	FindAllActive(db *gorm.DB) ([]entity.Patient, error)
	FindAllActiveByFamilyDoctor(db *gorm.DB, doctorID uint) ([]entity.Patient, error)
	FindAllActiveByDiagnose(db *gorm.DB, diagnoseID uint) ([]entity.Patient, error)
	CountPerFamilyDoctor(db *gorm.DB) ([]entity.DoctorPatientCount, error)
	Update(db *gorm.DB, patient *entity.Patient) error
}
