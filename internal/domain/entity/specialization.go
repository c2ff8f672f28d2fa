package entity

import "time"

// Specialization is a medical specialization (Cardiology, Pediatrics, ...)
// that doctors can be qualified in.
type Specialization struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"name"`
	Retired   bool      `gorm:"not null;default:false;index" json:"retired"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Doctors []Doctor `gorm:"many2many:doctor_specializations" json:"doctors,omitempty"`
}

func (Specialization) TableName() string {
	return "specializations"
}
