package repository

import (
	"errors"

	"clinic-record-system/internal/domain/entity"
	domainRepo "clinic-record-system/internal/domain/repository"

	"gorm.io/gorm"
)

type doctorRepository struct{}

func NewDoctorRepository() domainRepo.DoctorRepository {
	return &doctorRepository{}
}

func (r *doctorRepository) Create(db *gorm.DB, doctor *entity.Doctor) error {
	return db.Create(doctor).Error
}

func (r *doctorRepository) FindByID(db *gorm.DB, id uint) (*entity.Doctor, error) {
	var doctor entity.Doctor
	err := db.Preload("Specializations").Where("id = ?", id).First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doctor, nil
}

func (r *doctorRepository) FindAll(db *gorm.DB) ([]entity.Doctor, error) {
	var doctors []entity.Doctor
	err := db.Preload("Specializations").Order("id ASC").Find(&doctors).Error
	if err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *doctorRepository) FindAllActive(db *gorm.DB) ([]entity.Doctor, error) {
	var doctors []entity.Doctor
	err := db.Preload("Specializations").Where("retired = ?", false).Order("id ASC").Find(&doctors).Error
	if err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *doctorRepository) FindAllActiveFamilyDoctors(db *gorm.DB) ([]entity.Doctor, error) {
	var doctors []entity.Doctor
	err := db.Where("retired = ? AND is_family_doctor = ?", false, true).Order("id ASC").Find(&doctors).Error
	if err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *doctorRepository) Update(db *gorm.DB, doctor *entity.Doctor) error {
	return db.Omit("Specializations", "Patients", "Appointments", "User").Save(doctor).Error
}

func (r *doctorRepository) HasSpecialization(db *gorm.DB, doctorID, specializationID uint) (bool, error) {
	var count int64
	err := db.Table("doctor_specializations").
		Where("doctor_id = ? AND specialization_id = ?", doctorID, specializationID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *doctorRepository) AppendSpecialization(db *gorm.DB, doctor *entity.Doctor, specialization *entity.Specialization) error {
	return db.Model(doctor).Association("Specializations").Append(specialization)
}

func (r *doctorRepository) RemoveSpecialization(db *gorm.DB, doctor *entity.Doctor, specialization *entity.Specialization) error {
	return db.Model(doctor).Association("Specializations").Delete(specialization)
}
