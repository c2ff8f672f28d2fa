package converter

import (
	"clinic-record-system/internal/delivery/dto"
	"clinic-record-system/internal/domain/entity"
)

// UserToResponse converts a User entity to UserResponse DTO. The role name
// is resolved from the role id constants so no extra lookup is needed.
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	resp := &dto.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Role:      roleName(user.RoleID),
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
	if user.Doctor != nil {
		resp.DoctorID = &user.Doctor.ID
	}
	if user.Patient != nil {
		resp.PatientID = &user.Patient.ID
	}
	return resp
}

func roleName(roleID int) string {
	switch roleID {
	case entity.RoleIDAdmin:
		return entity.RoleAdmin
	case entity.RoleIDDoctor:
		return entity.RoleDoctor
	case entity.RoleIDPatient:
		return entity.RolePatient
	}
	return ""
}
