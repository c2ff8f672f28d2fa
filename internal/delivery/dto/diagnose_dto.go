package dto

// Request DTOs

type CreateDiagnoseRequest struct {
	Name        string `json:"name" validate:"required,min=2"`
	Description string `json:"description" validate:"required"`
}

type UpdateDiagnoseRequest struct {
	Name        string `json:"name" validate:"omitempty,min=2"`
	Description string `json:"description" validate:"omitempty"`
}

// Response DTOs

type DiagnoseResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Retired     bool   `json:"retired"`
}

type DiagnoseListResponse struct {
	Diagnoses []DiagnoseResponse `json:"diagnoses"`
	Total     int                `json:"total"`
}
