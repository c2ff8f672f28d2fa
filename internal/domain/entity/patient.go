package entity

import "time"

// Patient is a clinical patient record. Every patient is registered with
// exactly one family doctor.
type Patient struct {
	ID                   uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name                 string     `gorm:"type:varchar(255);not null" json:"name"`
	CivilNumber          string     `gorm:"type:varchar(20);uniqueIndex;not null" json:"civil_number"`
	LastInsurancePayment *time.Time `gorm:"type:date" json:"last_insurance_payment,omitempty"`
	Retired              bool       `gorm:"not null;default:false;index" json:"retired"`
	FamilyDoctorID       uint       `gorm:"not null;index" json:"family_doctor_id"`
	UserID               *uint      `gorm:"uniqueIndex" json:"user_id,omitempty"`
	CreatedAt            time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt            time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User         *User         `gorm:"foreignKey:UserID" json:"user,omitempty"`
	FamilyDoctor Doctor        `gorm:"foreignKey:FamilyDoctorID" json:"family_doctor,omitempty"`
	Appointments []Appointment `gorm:"foreignKey:PatientID" json:"appointments,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}
