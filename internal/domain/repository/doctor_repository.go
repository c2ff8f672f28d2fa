package repository

import (
	"clinic-record-system/internal/domain/entity"

	"gorm.io/gorm"
)

type DoctorRepository interface {
	Create(db *gorm.DB, doctor *entity.Doctor) error
	FindByID(db *gorm.DB, id uint) (*entity.Doctor, error)
	FindAll(db *gorm.DB) ([]entity.Doctor, error)
	FindAllActive(db *gorm.DB) ([]entity.Doctor, error)
	FindAllActiveFamilyDoctors(db *gorm.DB) ([]entity.Doctor, error)
	Update(db *gorm.DB, doctor *entity.Doctor) error

	// doctor <-> specialization association (join table doctor_specializations)
	HasSpecialization(db *gorm.DB, doctorID, specializationID uint) (bool, error)
	AppendSpecialization(db *gorm.DB, doctor *entity.Doctor, specialization *entity.Specialization) error
	RemoveSpecialization(db *gorm.DB, doctor *entity.Doctor, specialization *entity.Specialization) error
}
