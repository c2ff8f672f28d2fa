package repository

import (
	"errors"

	"clinic-record-system/internal/domain/entity"
	domainRepo "clinic-record-system/internal/domain/repository"

	"gorm.io/gorm"
)

type patientRepository struct{}

func NewPatientRepository() domainRepo.PatientRepository {
	return &patientRepository{}
}

func (r *patientRepository) Create(db *gorm.DB, patient *entity.Patient) error {
	return db.Create(patient).Error
}

func (r *patientRepository) FindByID(db *gorm.DB, id uint) (*entity.Patient, error) {
	var patient entity.Patient
	err := db.Preload("FamilyDoctor").Where("id = ?", id).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) FindByCivilNumber(db *gorm.DB, civilNumber string) (*entity.Patient, error) {
	var patient entity.Patient
	err := db.Where("civil_number = ?", civilNumber).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) FindAll(db *gorm.DB) ([]entity.Patient, error) {
	var patients []entity.Patient
	err := db.Preload("FamilyDoctor").Order("id ASC").Find(&patients).Error
	if err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *patientRepository) FindAllActive(db *gorm.DB) ([]entity.Patient, error) {
	var patients []entity.Patient
	err := db.Preload("FamilyDoctor").Where("retired = ?", false).Order("id ASC").Find(&patients).Error
	if err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *patientRepository) FindAllActiveByFamilyDoctor(db *gorm.DB, doctorID uint) ([]entity.Patient, error) {
	var patients []entity.Patient
	err := db.Where("retired = ? AND family_doctor_id = ?", false, doctorID).Order("id ASC").Find(&patients).Error
	if err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *patientRepository) FindAllActiveByDiagnose(db *gorm.DB, diagnoseID uint) ([]entity.Patient, error) {
	var patients []entity.Patient
	err := db.
		Joins("JOIN appointments ON appointments.patient_id = patients.id").
		Joins("JOIN appointment_diagnoses ON appointment_diagnoses.appointment_id = appointments.id").
		Where("appointment_diagnoses.diagnose_id = ? AND patients.retired = ?", diagnoseID, false).
		Distinct("patients.*").
		Order("patients.id ASC").
		Find(&patients).Error
	if err != nil {
		return nil, err
	}
	return patients, nil
}

// CountPerFamilyDoctor counts active patients grouped by their family
// doctor. Family doctors with no registered patients are included with a
// zero count.
func (r *patientRepository) CountPerFamilyDoctor(db *gorm.DB) ([]entity.DoctorPatientCount, error) {
	var counts []entity.DoctorPatientCount
	err := db.Table("doctors").
		Select("doctors.id AS doctor_id, doctors.name AS doctor_name, COUNT(patients.id) AS patient_count").
		Joins("LEFT JOIN patients ON patients.family_doctor_id = doctors.id AND patients.retired = ?", false).
		Where("doctors.is_family_doctor = ? AND doctors.retired = ?", true, false).
		Group("doctors.id, doctors.name").
		Order("doctors.id ASC").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	return counts, nil
}

func (r *patientRepository) Update(db *gorm.DB, patient *entity.Patient) error {
	return db.Omit("FamilyDoctor", "Appointments", "User").Save(patient).Error
}
