package converter

import (
	"clinic-record-system/internal/delivery/dto"
	"clinic-record-system/internal/domain/entity"
)

// TreatmentToResponse converts a Treatment entity to TreatmentResponse DTO
func TreatmentToResponse(treatment *entity.Treatment) *dto.TreatmentResponse {
	if treatment == nil {
		return nil
	}

	return &dto.TreatmentResponse{
		ID:           treatment.ID,
		MedicineName: treatment.MedicineName,
		Dosage:       treatment.Dosage,
		Frequency:    treatment.Frequency,
	}
}

// TreatmentsToResponses converts a slice of Treatment entities
func TreatmentsToResponses(treatments []entity.Treatment) []dto.TreatmentResponse {
	responses := make([]dto.TreatmentResponse, len(treatments))
	for i, treatment := range treatments {
		responses[i] = *TreatmentToResponse(&treatment)
	}
	return responses
}
