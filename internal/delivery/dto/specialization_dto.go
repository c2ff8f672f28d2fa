package dto

// Request DTOs

type CreateSpecializationRequest struct {
	Name string `json:"name" validate:"required,min=2"`
}

type UpdateSpecializationRequest struct {
	Name string `json:"name" validate:"required,min=2"`
}

// Response DTOs

type SpecializationResponse struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Retired bool   `json:"retired"`
}

type SpecializationListResponse struct {
	Specializations []SpecializationResponse `json:"specializations"`
	Total           int                      `json:"total"`
}
