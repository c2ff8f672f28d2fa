package repository

import (
	"clinic-record-system/internal/domain/entity"

	"gorm.io/gorm"
)

type SpecializationRepository interface {
	Create(db *gorm.DB, specialization *entity.Specialization) error
	FindByID(db *gorm.DB, id uint) (*entity.Specialization, error)
	FindByName(db *gorm.DB, name string) (*entity.Specialization, error)
	FindAll(db *gorm.DB) ([]entity.Specialization, error)
	FindAllActive(db *gorm.DB) ([]entity.Specialization, error)
	Update(db *gorm.DB, specialization *entity.Specialization) error
}
