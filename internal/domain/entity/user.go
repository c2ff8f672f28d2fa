package entity

import (
	"errors"
	"time"
)

// User represents the centralized authentication table. A user account is
// bound to at most one clinical record (doctor or patient) through the
// UserID column on that record.
type User struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	RoleID    int       `gorm:"not null;index" json:"role_id"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"type:text;not null" json:"-"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Role    Role     `gorm:"foreignKey:RoleID" json:"role,omitempty"`
	Doctor  *Doctor  `gorm:"foreignKey:UserID" json:"doctor,omitempty"`
	Patient *Patient `gorm:"foreignKey:UserID" json:"patient,omitempty"`
}

func (User) TableName() string {
	return "users"
}

var ErrInvalidRoleBinding = errors.New("invalid role binding")

// ValidateRoleBinding checks the one-clinical-record-per-account rule:
// admin accounts bind to nothing, doctor accounts to exactly one doctor
// record (family doctor or specialist), patient accounts to exactly one
// patient record.
func ValidateRoleBinding(roleID int, doctor *Doctor, patient *Patient) error {
	switch roleID {
	case RoleIDAdmin:
		if doctor != nil || patient != nil {
			return ErrInvalidRoleBinding
		}
	case RoleIDDoctor:
		if doctor == nil || patient != nil {
			return ErrInvalidRoleBinding
		}
	case RoleIDPatient:
		if patient == nil || doctor != nil {
			return ErrInvalidRoleBinding
		}
	default:
		return ErrInvalidRoleBinding
	}
	return nil
}
