package converter

import (
	"clinic-record-system/internal/delivery/dto"
	"clinic-record-system/internal/domain/entity"
)

// SpecializationToResponse converts a Specialization entity to its DTO
func SpecializationToResponse(specialization *entity.Specialization) *dto.SpecializationResponse {
	if specialization == nil {
		return nil
	}

	return &dto.SpecializationResponse{
		ID:      specialization.ID,
		Name:    specialization.Name,
		Retired: specialization.Retired,
	}
}

// SpecializationsToResponses converts a slice of Specialization entities
func SpecializationsToResponses(specializations []entity.Specialization) []dto.SpecializationResponse {
	responses := make([]dto.SpecializationResponse, len(specializations))
	for i, specialization := range specializations {
		responses[i] = dto.SpecializationResponse{
			ID:      specialization.ID,
			Name:    specialization.Name,
			Retired: specialization.Retired,
		}
	}
	return responses
}
