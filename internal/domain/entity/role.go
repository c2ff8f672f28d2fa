package entity

// Role is the identity role lookup table, seeded by the initial migration.
// The ids are fixed; ValidateRoleBinding keys off them to tie an account to
// at most one clinical record.
type Role struct {
	ID          int    `gorm:"primaryKey;autoIncrement" json:"id"`
	RoleName    string `gorm:"type:varchar(50);uniqueIndex;not null" json:"role_name"`
	Description string `gorm:"type:text" json:"description,omitempty"`

	// Relationships
	Users []User `gorm:"foreignKey:RoleID" json:"users,omitempty"`
}

func (Role) TableName() string {
	return "roles"
}

// Role ids, matching the seeded rows.
const (
	RoleIDAdmin   = 1 // binds no clinical record
	RoleIDDoctor  = 2 // binds one doctor record, family doctor or specialist
	RoleIDPatient = 3 // binds one patient record
)

// Role names, matching the seeded rows.
const (
	RoleAdmin   = "admin"
	RoleDoctor  = "doctor"
	RolePatient = "patient"
)
