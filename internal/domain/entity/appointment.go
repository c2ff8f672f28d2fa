package entity

import "time"

// Appointment is a single patient visit. It always references a doctor and a
// patient and carries at least one diagnose; treatments and a sick leave are
// optional. Appointments are hard-deleted, never retired.
type Appointment struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	VisitDate time.Time `gorm:"type:date;not null;index" json:"visit_date"`
	DoctorID  uint      `gorm:"not null;index" json:"doctor_id"`
	PatientID uint      `gorm:"not null;index" json:"patient_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Doctor     Doctor      `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Patient    Patient     `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Diagnoses  []Diagnose  `gorm:"many2many:appointment_diagnoses" json:"diagnoses,omitempty"`
	Treatments []Treatment `gorm:"many2many:appointment_treatments" json:"treatments,omitempty"`
	SickLeave  *SickLeave  `gorm:"foreignKey:AppointmentID" json:"sick_leave,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}
