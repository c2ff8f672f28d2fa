package entity

import "time"

// Doctor is a clinical doctor record. The family-doctor variant is a plain
// capability flag: only doctors with IsFamilyDoctor set may be assigned as a
// patient's family doctor.
type Doctor struct {
	ID             uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name           string    `gorm:"type:varchar(255);not null" json:"name"`
	IsFamilyDoctor bool      `gorm:"not null;default:false;index" json:"is_family_doctor"`
	Retired        bool      `gorm:"not null;default:false;index" json:"retired"`
	UserID         *uint     `gorm:"uniqueIndex" json:"user_id,omitempty"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User            *User            `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Specializations []Specialization `gorm:"many2many:doctor_specializations" json:"specializations,omitempty"`
	Patients        []Patient        `gorm:"foreignKey:FamilyDoctorID" json:"patients,omitempty"`
	Appointments    []Appointment    `gorm:"foreignKey:DoctorID" json:"appointments,omitempty"`
}

func (Doctor) TableName() string {
	return "doctors"
}
