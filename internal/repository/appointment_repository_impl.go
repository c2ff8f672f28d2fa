package repository

import (
	"errors"

	"clinic-record-system/internal/domain/entity"
	domainRepo "clinic-record-system/internal/domain/repository"

	"gorm.io/gorm"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Omit("Doctor", "Patient").Create(appointment).Error
}

func (r *appointmentRepository) FindByID(db *gorm.DB, id uint) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.
		Preload("Doctor").
		Preload("Patient").
		Preload("Diagnoses").
		Preload("Treatments").
		Preload("SickLeave").
		Where("id = ?", id).
		First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindAll(db *gorm.DB) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.
		Preload("Doctor").
		Preload("Patient").
		Preload("Diagnoses").
		Order("visit_date ASC, id ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindAllByDoctor(db *gorm.DB, doctorID uint) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.
		Preload("Patient").
		Preload("Diagnoses").
		Where("doctor_id = ?", doctorID).
		Order("visit_date ASC, id ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindAllByPatient(db *gorm.DB, patientID uint) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.
		Preload("Doctor").
		Preload("Diagnoses").
		Preload("Treatments").
		Preload("SickLeave").
		Where("patient_id = ?", patientID).
		Order("visit_date ASC, id ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) Update(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Omit("Doctor", "Patient", "Diagnoses", "Treatments", "SickLeave").Save(appointment).Error
}

func (r *appointmentRepository) Delete(db *gorm.DB, id uint) (int64, error) {
	affected := db.Where("id = ?", id).Delete(&entity.Appointment{})
	return affected.RowsAffected, affected.Error
}

// CountPerDoctor counts appointments grouped by doctor. Doctors with no
// appointments are included with a zero count; retired doctors are not.
func (r *appointmentRepository) CountPerDoctor(db *gorm.DB) ([]entity.DoctorAppointmentCount, error) {
	var counts []entity.DoctorAppointmentCount
	err := db.Table("doctors").
		Select("doctors.id AS doctor_id, doctors.name AS doctor_name, COUNT(appointments.id) AS appointment_count").
		Joins("LEFT JOIN appointments ON appointments.doctor_id = doctors.id").
		Where("doctors.retired = ?", false).
		Group("doctors.id, doctors.name").
		Order("doctors.id ASC").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	return counts, nil
}

func (r *appointmentRepository) CountByDoctor(db *gorm.DB, doctorID uint) (int64, error) {
	var count int64
	err := db.Model(&entity.Appointment{}).Where("doctor_id = ?", doctorID).Count(&count).Error
	return count, err
}

func (r *appointmentRepository) HasDiagnose(db *gorm.DB, appointmentID, diagnoseID uint) (bool, error) {
	var count int64
	err := db.Table("appointment_diagnoses").
		Where("appointment_id = ? AND diagnose_id = ?", appointmentID, diagnoseID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *appointmentRepository) CountDiagnoses(db *gorm.DB, appointmentID uint) (int64, error) {
	var count int64
	err := db.Table("appointment_diagnoses").
		Where("appointment_id = ?", appointmentID).
		Count(&count).Error
	return count, err
}

func (r *appointmentRepository) AppendDiagnose(db *gorm.DB, appointment *entity.Appointment, diagnose *entity.Diagnose) error {
	return db.Model(appointment).Association("Diagnoses").Append(diagnose)
}

func (r *appointmentRepository) RemoveDiagnose(db *gorm.DB, appointment *entity.Appointment, diagnose *entity.Diagnose) error {
	return db.Model(appointment).Association("Diagnoses").Delete(diagnose)
}

func (r *appointmentRepository) HasTreatment(db *gorm.DB, appointmentID, treatmentID uint) (bool, error) {
	var count int64
	err := db.Table("appointment_treatments").
		Where("appointment_id = ? AND treatment_id = ?", appointmentID, treatmentID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *appointmentRepository) AppendTreatment(db *gorm.DB, appointment *entity.Appointment, treatment *entity.Treatment) error {
	return db.Model(appointment).Association("Treatments").Append(treatment)
}

func (r *appointmentRepository) RemoveTreatment(db *gorm.DB, appointment *entity.Appointment, treatment *entity.Treatment) error {
	return db.Model(appointment).Association("Treatments").Delete(treatment)
}
