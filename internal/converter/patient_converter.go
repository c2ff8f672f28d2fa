package converter

import (
	"clinic-record-system/internal/delivery/dto"
	"clinic-record-system/internal/domain/entity"
)

const dateLayout = "2006-01-02"

// PatientToResponse converts a Patient entity to PatientResponse DTO
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	resp := &dto.PatientResponse{
		ID:               patient.ID,
		Name:             patient.Name,
		CivilNumber:      patient.CivilNumber,
		FamilyDoctorID:   patient.FamilyDoctorID,
		FamilyDoctorName: patient.FamilyDoctor.Name,
		Retired:          patient.Retired,
	}
	if patient.LastInsurancePayment != nil {
		resp.LastInsurancePayment = patient.LastInsurancePayment.Format(dateLayout)
	}
	return resp
}

// PatientsToResponses converts a slice of Patient entities
func PatientsToResponses(patients []entity.Patient) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, len(patients))
	for i, patient := range patients {
		responses[i] = *PatientToResponse(&patient)
	}
	return responses
}
