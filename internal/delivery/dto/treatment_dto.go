package dto

// Request DTOs

type CreateTreatmentRequest struct {
	MedicineName string `json:"medicine_name" validate:"required"`
	Dosage       string `json:"dosage" validate:"required"`
	Frequency    string `json:"frequency" validate:"required"`
}

type UpdateTreatmentRequest struct {
	MedicineName string `json:"medicine_name" validate:"omitempty"`
	Dosage       string `json:"dosage" validate:"omitempty"`
	Frequency    string `json:"frequency" validate:"omitempty"`
}

// Response DTOs

type TreatmentResponse struct {
	ID           uint   `json:"id"`
	MedicineName string `json:"medicine_name"`
	Dosage       string `json:"dosage"`
	Frequency    string `json:"frequency"`
}

type TreatmentListResponse struct {
	Treatments []TreatmentResponse `json:"treatments"`
	Total      int                 `json:"total"`
}
