package dto

// Response DTOs for the aggregate reports

type DoctorAppointmentCountResponse struct {
	DoctorID         uint   `json:"doctor_id"`
	DoctorName       string `json:"doctor_name"`
	AppointmentCount int64  `json:"appointment_count"`
}

type DoctorPatientCountResponse struct {
	DoctorID     uint   `json:"doctor_id"`
	DoctorName   string `json:"doctor_name"`
	PatientCount int64  `json:"patient_count"`
}

type DiagnoseAppointmentCountResponse struct {
	DiagnoseID       uint   `json:"diagnose_id"`
	DiagnoseName     string `json:"diagnose_name"`
	AppointmentCount int64  `json:"appointment_count"`
}

type DoctorSickLeaveCountResponse struct {
	DoctorID       uint   `json:"doctor_id"`
	DoctorName     string `json:"doctor_name"`
	SickLeaveCount int64  `json:"sick_leave_count"`
}

type SickLeaveMonthResponse struct {
	Month string `json:"month"`
	Year  int    `json:"year"`
	Count int64  `json:"count"`
	Label string `json:"label"`
}

type VisitHistoryResponse struct {
	PatientID    uint                  `json:"patient_id"`
	PatientName  string                `json:"patient_name"`
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
