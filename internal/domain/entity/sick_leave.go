package entity

import (
	"errors"
	"time"
)

var ErrInvalidSickLeavePeriod = errors.New("sick leave start date must not be after end date")

// SickLeave is a leave period granted during a visit. Each appointment has
// at most one sick leave; the unique index on AppointmentID enforces it at
// the storage level.
type SickLeave struct {
	ID            uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	StartDate     time.Time `gorm:"type:date;not null;index" json:"start_date"`
	EndDate       time.Time `gorm:"type:date;not null" json:"end_date"`
	AppointmentID uint      `gorm:"uniqueIndex;not null" json:"appointment_id"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Appointment Appointment `gorm:"foreignKey:AppointmentID" json:"appointment,omitempty"`
}

func (SickLeave) TableName() string {
	return "sick_leaves"
}

// ValidatePeriod checks the cross-field date invariant. The field-level
// checks live in the request DTOs; this one spans two fields so it is
// re-validated here.
func (s *SickLeave) ValidatePeriod() error {
	if s.StartDate.After(s.EndDate) {
		return ErrInvalidSickLeavePeriod
	}
	return nil
}
