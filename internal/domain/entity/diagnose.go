package entity

import "time"

// Diagnose is a named diagnosis from the clinic's catalogue.
type Diagnose struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"name"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Retired     bool      `gorm:"not null;default:false;index" json:"retired"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Appointments []Appointment `gorm:"many2many:appointment_diagnoses" json:"appointments,omitempty"`
}

func (Diagnose) TableName() string {
	return "diagnoses"
}
