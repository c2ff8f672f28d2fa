package converter

import (
	"clinic-record-system/internal/delivery/dto"
	"clinic-record-system/internal/domain/entity"
)

// DiagnoseToResponse converts a Diagnose entity to DiagnoseResponse DTO
func DiagnoseToResponse(diagnose *entity.Diagnose) *dto.DiagnoseResponse {
	if diagnose == nil {
		return nil
	}

	return &dto.DiagnoseResponse{
		ID:          diagnose.ID,
		Name:        diagnose.Name,
		Description: diagnose.Description,
		Retired:     diagnose.Retired,
	}
}

// DiagnosesToResponses converts a slice of Diagnose entities
func DiagnosesToResponses(diagnoses []entity.Diagnose) []dto.DiagnoseResponse {
	responses := make([]dto.DiagnoseResponse, len(diagnoses))
	for i, diagnose := range diagnoses {
		responses[i] = *DiagnoseToResponse(&diagnose)
	}
	return responses
}
