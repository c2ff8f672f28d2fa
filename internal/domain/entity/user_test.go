package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateRoleBinding(t *testing.T) {
	doctor := &Doctor{Name: "Dr. House"}
	patient := &Patient{Name: "John Doe", CivilNumber: "8001015678"}

	tests := []struct {
		name    string
		roleID  int
		doctor  *Doctor
		patient *Patient
		wantErr bool
	}{
		{"admin with no record", RoleIDAdmin, nil, nil, false},
		{"admin with doctor record", RoleIDAdmin, doctor, nil, true},
		{"admin with patient record", RoleIDAdmin, nil, patient, true},
		{"doctor with doctor record", RoleIDDoctor, doctor, nil, false},
		{"doctor with no record", RoleIDDoctor, nil, nil, true},
		{"doctor with patient record", RoleIDDoctor, nil, patient, true},
		{"doctor with both records", RoleIDDoctor, doctor, patient, true},
		{"patient with patient record", RoleIDPatient, nil, patient, false},
		{"patient with no record", RoleIDPatient, nil, nil, true},
		{"patient with doctor record", RoleIDPatient, doctor, nil, true},
		{"unknown role", 99, nil, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRoleBinding(tt.roleID, tt.doctor, tt.patient)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidRoleBinding)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
