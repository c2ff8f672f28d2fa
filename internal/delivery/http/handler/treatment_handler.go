package handler

import (
	"encoding/json"
	"net/http"

	"clinic-record-system/internal/delivery/dto"
	"clinic-record-system/internal/usecase"
	"clinic-record-system/pkg/response"
	"clinic-record-system/pkg/validator"
)

type TreatmentHandler struct {
	treatmentUsecase usecase.TreatmentUsecase
	validator        *validator.CustomValidator
}

func NewTreatmentHandler(treatmentUsecase usecase.TreatmentUsecase, validator *validator.CustomValidator) *TreatmentHandler {
	return &TreatmentHandler{
		treatmentUsecase: treatmentUsecase,
		validator:        validator,
	}
}

// Create handles treatment creation
// @Summary Create a new treatment
// @Tags Treatments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateTreatmentRequest true "Create Treatment Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /treatments [post]
func (h *TreatmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTreatmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	treatment, err := h.treatmentUsecase.CreateTreatment(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create treatment")
		return
	}

	response.Success(w, http.StatusCreated, "Treatment created successfully", treatment)
}

// GetByID handles getting a treatment by ID
// @Summary Get treatment by ID
// @Tags Treatments
// @Produce json
// @Param id path int true "Treatment ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /treatments/{id} [get]
func (h *TreatmentHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDVar(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid treatment ID", nil)
		return
	}

	treatment, err := h.treatmentUsecase.GetTreatment(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrTreatmentNotFound:
			response.NotFound(w, "Treatment not found")
		default:
			response.InternalServerError(w, "Failed to get treatment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Treatment retrieved successfully", treatment)
}

// GetAll handles getting all treatments
// @Summary Get all treatments
// @Tags Treatments
// @Produce json
// @Success 200 {object} response.Response
// @Router /treatments [get]
func (h *TreatmentHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	treatments, err := h.treatmentUsecase.GetAllTreatments(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get treatments")
		return
	}

	response.Success(w, http.StatusOK, "Treatments retrieved successfully", treatments)
}

// Update handles updating a treatment
// @Summary Update treatment
// @Tags Treatments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Treatment ID"
// @Param request body dto.UpdateTreatmentRequest true "Update Treatment Request"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /treatments/{id} [put]
func (h *TreatmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDVar(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid treatment ID", nil)
		return
	}

	var req dto.UpdateTreatmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	treatment, err := h.treatmentUsecase.UpdateTreatment(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrTreatmentNotFound:
			response.NotFound(w, "Treatment not found")
		default:
			response.InternalServerError(w, "Failed to update treatment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Treatment updated successfully", treatment)
}

// Delete handles deleting a treatment
// @Summary Delete treatment
// @Description Hard delete; the treatment is unlinked from all appointments
// @Tags Treatments
// @Security BearerAuth
// @Produce json
// @Param id path int true "Treatment ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /treatments/{id} [delete]
func (h *TreatmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDVar(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid treatment ID", nil)
		return
	}

	if err := h.treatmentUsecase.DeleteTreatment(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrTreatmentNotFound:
			response.NotFound(w, "Treatment not found")
		default:
			response.InternalServerError(w, "Failed to delete treatment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Treatment deleted successfully", nil)
}
