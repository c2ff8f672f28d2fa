package converter

import (
	"clinic-record-system/internal/delivery/dto"
	"clinic-record-system/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to its DTO,
// including nested diagnoses, treatments and sick leave when loaded.
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		ID:          appointment.ID,
		VisitDate:   appointment.VisitDate.Format(dateLayout),
		DoctorID:    appointment.DoctorID,
		DoctorName:  appointment.Doctor.Name,
		PatientID:   appointment.PatientID,
		PatientName: appointment.Patient.Name,
		Diagnoses:   DiagnosesToResponses(appointment.Diagnoses),
		Treatments:  TreatmentsToResponses(appointment.Treatments),
		SickLeave:   SickLeaveToResponse(appointment.SickLeave),
	}
}

// AppointmentsToResponses converts a slice of Appointment entities
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i, appointment := range appointments {
		responses[i] = *AppointmentToResponse(&appointment)
	}
	return responses
}

// SickLeaveToResponse converts a SickLeave entity to its DTO
func SickLeaveToResponse(sickLeave *entity.SickLeave) *dto.SickLeaveResponse {
	if sickLeave == nil {
		return nil
	}

	return &dto.SickLeaveResponse{
		ID:            sickLeave.ID,
		AppointmentID: sickLeave.AppointmentID,
		StartDate:     sickLeave.StartDate.Format(dateLayout),
		EndDate:       sickLeave.EndDate.Format(dateLayout),
	}
}
