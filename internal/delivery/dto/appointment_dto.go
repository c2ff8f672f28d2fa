package dto

// Request DTOs

type CreateAppointmentRequest struct {
	VisitDate    string `json:"visit_date" validate:"required"`
	DoctorID     uint   `json:"doctor_id" validate:"required"`
	PatientID    uint   `json:"patient_id" validate:"required"`
	DiagnoseIDs  []uint `json:"diagnose_ids" validate:"required,min=1,dive,required"`
	TreatmentIDs []uint `json:"treatment_ids" validate:"omitempty,dive,required"`
}

type UpdateAppointmentRequest struct {
	VisitDate string `json:"visit_date" validate:"required"`
}

// Response DTOs

type AppointmentResponse struct {
	ID          uint                `json:"id"`
	VisitDate   string              `json:"visit_date"`
	DoctorID    uint                `json:"doctor_id"`
	DoctorName  string              `json:"doctor_name,omitempty"`
	PatientID   uint                `json:"patient_id"`
	PatientName string              `json:"patient_name,omitempty"`
	Diagnoses   []DiagnoseResponse  `json:"diagnoses,omitempty"`
	Treatments  []TreatmentResponse `json:"treatments,omitempty"`
	SickLeave   *SickLeaveResponse  `json:"sick_leave,omitempty"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
