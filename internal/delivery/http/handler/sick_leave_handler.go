package handler

import (
	"encoding/json"
	"net/http"

	"clinic-record-system/internal/delivery/dto"
	"clinic-record-system/internal/domain/entity"
	"clinic-record-system/internal/usecase"
	"clinic-record-system/pkg/response"
	"clinic-record-system/pkg/validator"
)

type SickLeaveHandler struct {
	sickLeaveUsecase usecase.SickLeaveUsecase
	validator        *validator.CustomValidator
}

func NewSickLeaveHandler(sickLeaveUsecase usecase.SickLeaveUsecase, validator *validator.CustomValidator) *SickLeaveHandler {
	return &SickLeaveHandler{
		sickLeaveUsecase: sickLeaveUsecase,
		validator:        validator,
	}
}

// GetByID handles getting a sick leave by ID
// @Summary Get sick leave by ID
// @Tags SickLeaves
// @Security BearerAuth
// @Produce json
// @Param id path int true "Sick Leave ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /sick-leaves/{id} [get]
func (h *SickLeaveHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDVar(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid sick leave ID", nil)
		return
	}

	sickLeave, err := h.sickLeaveUsecase.GetSickLeave(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrSickLeaveNotFound:
			response.NotFound(w, "Sick leave not found")
		default:
			response.InternalServerError(w, "Failed to get sick leave")
		}
		return
	}

	response.Success(w, http.StatusOK, "Sick leave retrieved successfully", sickLeave)
}

// Update handles updating a sick leave period
// @Summary Update sick leave
// @Tags SickLeaves
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Sick Leave ID"
// @Param request body dto.UpdateSickLeaveRequest true "Update Sick Leave Request"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /sick-leaves/{id} [put]
func (h *SickLeaveHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDVar(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid sick leave ID", nil)
		return
	}

	var req dto.UpdateSickLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	sickLeave, err := h.sickLeaveUsecase.UpdateSickLeave(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrSickLeaveNotFound:
			response.NotFound(w, "Sick leave not found")
		case usecase.ErrInvalidDateFormat:
			response.BadRequest(w, "Invalid date format, use YYYY-MM-DD")
		case entity.ErrInvalidSickLeavePeriod:
			response.UnprocessableEntity(w, "Sick leave end date must not precede the start date")
		default:
			response.InternalServerError(w, "Failed to update sick leave")
		}
		return
	}

	response.Success(w, http.StatusOK, "Sick leave updated successfully", sickLeave)
}

// Delete handles deleting a sick leave
// @Summary Delete sick leave
// @Description Hard delete; the appointment itself is untouched
// @Tags SickLeaves
// @Security BearerAuth
// @Produce json
// @Param id path int true "Sick Leave ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /sick-leaves/{id} [delete]
func (h *SickLeaveHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDVar(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid sick leave ID", nil)
		return
	}

	if err := h.sickLeaveUsecase.DeleteSickLeave(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrSickLeaveNotFound:
			response.NotFound(w, "Sick leave not found")
		default:
			response.InternalServerError(w, "Failed to delete sick leave")
		}
		return
	}

	response.Success(w, http.StatusOK, "Sick leave deleted successfully", nil)
}
