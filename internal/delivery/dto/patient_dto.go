package dto

// Request DTOs

type CreatePatientRequest struct {
	Name                 string `json:"name" validate:"required,min=2"`
	CivilNumber          string `json:"civil_number" validate:"required"`
	FamilyDoctorID       uint   `json:"family_doctor_id" validate:"required"`
	LastInsurancePayment string `json:"last_insurance_payment" validate:"omitempty"`
}

type UpdatePatientRequest struct {
	Name                 string `json:"name" validate:"omitempty,min=2"`
	FamilyDoctorID       uint   `json:"family_doctor_id" validate:"omitempty"`
	LastInsurancePayment string `json:"last_insurance_payment" validate:"omitempty"`
}

// Response DTOs

type PatientResponse struct {
	ID                   uint   `json:"id"`
	Name                 string `json:"name"`
	CivilNumber          string `json:"civil_number"`
	FamilyDoctorID       uint   `json:"family_doctor_id"`
	FamilyDoctorName     string `json:"family_doctor_name,omitempty"`
	LastInsurancePayment string `json:"last_insurance_payment,omitempty"`
	Retired              bool   `json:"retired"`
}

type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
	Total    int               `json:"total"`
}
