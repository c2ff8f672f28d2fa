package entity

// Aggregation projections returned by the report queries. Kept in the
// domain layer to avoid coupling repositories with delivery DTOs.

type DoctorAppointmentCount struct {
	DoctorID         uint   `json:"doctor_id"`
	DoctorName       string `json:"doctor_name"`
	AppointmentCount int64  `json:"appointment_count"`
}

type DoctorPatientCount struct {
	DoctorID     uint   `json:"doctor_id"`
	DoctorName   string `json:"doctor_name"`
	PatientCount int64  `json:"patient_count"`
}

type DiagnoseAppointmentCount struct {
	DiagnoseID       uint   `json:"diagnose_id"`
	DiagnoseName     string `json:"diagnose_name"`
	AppointmentCount int64  `json:"appointment_count"`
}

type DoctorSickLeaveCount struct {
	DoctorID       uint   `json:"doctor_id"`
	DoctorName     string `json:"doctor_name"`
	SickLeaveCount int64  `json:"sick_leave_count"`
}
