package repository

import (
	"clinic-record-system/internal/domain/entity"

	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, id uint) (*entity.Appointment, error)
	FindAll(db *gorm.DB) ([]entity.Appointment, error)
	FindAllByDoctor(db *gorm.DB, doctorID uint) ([]entity.Appointment, error)
	FindAllByPatient(db *gorm.DB, patientID uint) ([]entity.Appointment, error)
	Update(db *gorm.DB, appointment *entity.Appointment) error
	Delete(db *gorm.DB, id uint) (int64, error)

	// aggregation queries
	CountPerDoctor(db *gorm.DB) ([]entity.DoctorAppointmentCount, error)
	CountByDoctor(db *gorm.DB, doctorID uint) (int64, error)

	// appointment <-> diagnose association (join table appointment_diagnoses)
	HasDiagnose(db *gorm.DB, appointmentID, diagnoseID uint) (bool, error)
	CountDiagnoses(db *gorm.DB, appointmentID uint) (int64, error)
	AppendDiagnose(db *gorm.DB, appointment *entity.Appointment, diagnose *entity.Diagnose) error
	RemoveDiagnose(db *gorm.DB, appointment *entity.Appointment, diagnose *entity.Diagnose) error

	// appointment <-> treatment association (join table appointment_treatments)
	HasTreatment(db *gorm.DB, appointmentID, treatmentID uint) (bool, error)
	AppendTreatment(db *gorm.DB, appointment *entity.Appointment, treatment *entity.Treatment) error
	RemoveTreatment(db *gorm.DB, appointment *entity.Appointment, treatment *entity.Treatment) error
}
