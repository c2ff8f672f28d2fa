package dto

// Request DTOs

type CreateSickLeaveRequest struct {
	AppointmentID uint   `json:"appointment_id" validate:"required"`
	StartDate     string `json:"start_date" validate:"required"`
	EndDate       string `json:"end_date" validate:"required"`
}

type UpdateSickLeaveRequest struct {
	StartDate string `json:"start_date" validate:"required"`
	EndDate   string `json:"end_date" validate:"required"`
}

// Response DTOs

type SickLeaveResponse struct {
	ID            uint   `json:"id"`
	AppointmentID uint   `json:"appointment_id"`
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`
}
