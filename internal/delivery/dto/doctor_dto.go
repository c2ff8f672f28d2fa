package dto

// Request DTOs

type CreateDoctorRequest struct {
	Name           string `json:"name" validate:"required,min=2"`
	IsFamilyDoctor bool   `json:"is_family_doctor"`
	SpecializationIDs []uint `json:"specialization_ids" validate:"omitempty,dive,required"`
}

type UpdateDoctorRequest struct {
	Name           string `json:"name" validate:"omitempty,min=2"`
	IsFamilyDoctor *bool  `json:"is_family_doctor" validate:"omitempty"`
}

// Response DTOs

type DoctorResponse struct {
	ID              uint                     `json:"id"`
	Name            string                   `json:"name"`
	IsFamilyDoctor  bool                     `json:"is_family_doctor"`
	Retired         bool                     `json:"retired"`
	Specializations []SpecializationResponse `json:"specializations,omitempty"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}
