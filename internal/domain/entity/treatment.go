package entity

import "time"

// Treatment is a prescribed medicine with dosage and intake frequency.
// Treatments are hard-deleted, never retired.
type Treatment struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	MedicineName string    `gorm:"type:varchar(255);not null" json:"medicine_name"`
	Dosage       string    `gorm:"type:varchar(100);not null" json:"dosage"`
	Frequency    string    `gorm:"type:varchar(100);not null" json:"frequency"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Appointments []Appointment `gorm:"many2many:appointment_treatments" json:"appointments,omitempty"`
}

func (Treatment) TableName() string {
	return "treatments"
}
