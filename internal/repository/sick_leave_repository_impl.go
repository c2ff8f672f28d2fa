package repository

import (
	"errors"

	"clinic-record-system/internal/domain/entity"
	domainRepo "clinic-record-system/internal/domain/repository"

	"gorm.io/gorm"
)

type sickLeaveRepository struct{}

func NewSickLeaveRepository() domainRepo.SickLeaveRepository {
	return &sickLeaveRepository{}
}

func (r *sickLeaveRepository) Create(db *gorm.DB, sickLeave *entity.SickLeave) error {
	return db.Omit("Appointment").Create(sickLeave).Error
}

func (r *sickLeaveRepository) FindByID(db *gorm.DB, id uint) (*entity.SickLeave, error) {
	var sickLeave entity.SickLeave
	err := db.Preload("Appointment").Where("id = ?", id).First(&sickLeave).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &sickLeave, nil
}

func (r *sickLeaveRepository) FindByAppointmentID(db *gorm.DB, appointmentID uint) (*entity.SickLeave, error) {
	var sickLeave entity.SickLeave
	err := db.Where("appointment_id = ?", appointmentID).First(&sickLeave).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &sickLeave, nil
}

func (r *sickLeaveRepository) FindAllOrderedByStartDate(db *gorm.DB) ([]entity.SickLeave, error) {
	var sickLeaves []entity.SickLeave
	err := db.Order("start_date ASC, id ASC").Find(&sickLeaves).Error
	if err != nil {
		return nil, err
	}
	return sickLeaves, nil
}

// CountPerDoctor counts sick leaves per doctor through the issuing
// appointment. Only doctors with at least one sick leave are returned.
func (r *sickLeaveRepository) CountPerDoctor(db *gorm.DB) ([]entity.DoctorSickLeaveCount, error) {
	var counts []entity.DoctorSickLeaveCount
	err := db.Table("sick_leaves").
		Select("doctors.id AS doctor_id, doctors.name AS doctor_name, COUNT(sick_leaves.id) AS sick_leave_count").
		Joins("JOIN appointments ON appointments.id = sick_leaves.appointment_id").
		Joins("JOIN doctors ON doctors.id = appointments.doctor_id").
		Group("doctors.id, doctors.name").
		Order("doctors.id ASC").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	return counts, nil
}

func (r *sickLeaveRepository) Update(db *gorm.DB, sickLeave *entity.SickLeave) error {
	return db.Omit("Appointment").Save(sickLeave).Error
}

func (r *sickLeaveRepository) Delete(db *gorm.DB, id uint) (int64, error) {
	affected := db.Where("id = ?", id).Delete(&entity.SickLeave{})
	return affected.RowsAffected, affected.Error
}
