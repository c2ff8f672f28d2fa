package repository

import (
	"errors"

	"clinic-record-system/internal/domain/entity"
	domainRepo "clinic-record-system/internal/domain/repository"

	"gorm.io/gorm"
)

type specializationRepository struct{}

func NewSpecializationRepository() domainRepo.SpecializationRepository {
	return &specializationRepository{}
}

func (r *specializationRepository) Create(db *gorm.DB, specialization *entity.Specialization) error {
	return db.Create(specialization).Error
}

func (r *specializationRepository) FindByID(db *gorm.DB, id uint) (*entity.Specialization, error) {
	var specialization entity.Specialization
	err := db.Preload("Doctors").Where("id = ?", id).First(&specialization).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &specialization, nil
}

func (r *specializationRepository) FindByName(db *gorm.DB, name string) (*entity.Specialization, error) {
	var specialization entity.Specialization
	err := db.Where("name = ?", name).First(&specialization).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &specialization, nil
}

func (r *specializationRepository) FindAll(db *gorm.DB) ([]entity.Specialization, error) {
	var specializations []entity.Specialization
	err := db.Order("name ASC").Find(&specializations).Error
	if err != nil {
		return nil, err
	}
	return specializations, nil
}

func (r *specializationRepository) FindAllActive(db *gorm.DB) ([]entity.Specialization, error) {
	var specializations []entity.Specialization
	err := db.Where("retired = ?", false).Order("name ASC").Find(&specializations).Error
	if err != nil {
		return nil, err
	}
	return specializations, nil
}

func (r *specializationRepository) Update(db *gorm.DB, specialization *entity.Specialization) error {
	return db.Omit("Doctors").Save(specialization).Error
}
