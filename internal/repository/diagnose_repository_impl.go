package repository

import (
	"errors"

	"clinic-record-system/internal/domain/entity"
	domainRepo "clinic-record-system/internal/domain/repository"

	"gorm.io/gorm"
)

type diagnoseRepository struct{}

func NewDiagnoseRepository() domainRepo.DiagnoseRepository {
	return &diagnoseRepository{}
}

func (r *diagnoseRepository) Create(db *gorm.DB, diagnose *entity.Diagnose) error {
	return db.Create(diagnose).Error
}

func (r *diagnoseRepository) FindByID(db *gorm.DB, id uint) (*entity.Diagnose, error) {
	var diagnose entity.Diagnose
	err := db.Where("id = ?", id).First(&diagnose).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &diagnose, nil
}

func (r *diagnoseRepository) FindByName(db *gorm.DB, name string) (*entity.Diagnose, error) {
	var diagnose entity.Diagnose
	err := db.Where("name = ?", name).First(&diagnose).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &diagnose, nil
}

func (r *diagnoseRepository) FindAll(db *gorm.DB) ([]entity.Diagnose, error) {
	var diagnoses []entity.Diagnose
	err := db.Order("name ASC").Find(&diagnoses).Error
	if err != nil {
		return nil, err
	}
	return diagnoses, nil
}

func (r *diagnoseRepository) FindAllActive(db *gorm.DB) ([]entity.Diagnose, error) {
	var diagnoses []entity.Diagnose
	err := db.Where("retired = ?", false).Order("name ASC").Find(&diagnoses).Error
	if err != nil {
		return nil, err
	}
	return diagnoses, nil
}

// CountAppointmentsPerDiagnose counts linked appointments per non-retired
// diagnose. Diagnoses with no appointments appear with a zero count so the
// caller decides whether to keep them.
func (r *diagnoseRepository) CountAppointmentsPerDiagnose(db *gorm.DB) ([]entity.DiagnoseAppointmentCount, error) {
	var counts []entity.DiagnoseAppointmentCount
	err := db.Table("diagnoses").
		Select("diagnoses.id AS diagnose_id, diagnoses.name AS diagnose_name, COUNT(appointment_diagnoses.appointment_id) AS appointment_count").
		Joins("LEFT JOIN appointment_diagnoses ON appointment_diagnoses.diagnose_id = diagnoses.id").
		Where("diagnoses.retired = ?", false).
		Group("diagnoses.id, diagnoses.name").
		Order("diagnoses.id ASC").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	return counts, nil
}

func (r *diagnoseRepository) Update(db *gorm.DB, diagnose *entity.Diagnose) error {
	return db.Omit("Appointments").Save(diagnose).Error
}
