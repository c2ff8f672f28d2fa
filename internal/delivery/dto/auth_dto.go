package dto

import "time"

// Request DTOs

type RegisterDoctorRequest struct {
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,min=6"`
	Name           string `json:"name" validate:"required,min=2"`
	IsFamilyDoctor bool   `json:"is_family_doctor"`
}

type RegisterPatientRequest struct {
	Email                string `json:"email" validate:"required,email"`
	Password             string `json:"password" validate:"required,min=6"`
	Name                 string `json:"name" validate:"required,min=2"`
	CivilNumber          string `json:"civil_number" validate:"required"`
	FamilyDoctorID       uint   `json:"family_doctor_id" validate:"required"`
	LastInsurancePayment string `json:"last_insurance_payment" validate:"omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// Response DTOs

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

type UserResponse struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	DoctorID  *uint     `json:"doctor_id,omitempty"`
	PatientID *uint     `json:"patient_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
