package handler

import (
	"encoding/json"
	"net/http"

	"clinic-record-system/internal/delivery/dto"
	"clinic-record-system/internal/usecase"
	"clinic-record-system/pkg/response"
	"clinic-record-system/pkg/validator"
)

type SpecializationHandler struct {
	specializationUsecase usecase.SpecializationUsecase
	validator             *validator.CustomValidator
}

func NewSpecializationHandler(specializationUsecase usecase.SpecializationUsecase, validator *validator.CustomValidator) *SpecializationHandler {
	return &SpecializationHandler{
		specializationUsecase: specializationUsecase,
		validator:             validator,
	}
}

// Create handles specialization creation
// @Summary Create a new specialization
// @Description Create a medical specialization with a unique name
// @Tags Specializations
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateSpecializationRequest true "Create Specialization Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /specializations [post]
func (h *SpecializationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateSpecializationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	specialization, err := h.specializationUsecase.CreateSpecialization(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrSpecializationNameExists:
			response.Conflict(w, "Specialization name already exists")
		default:
			response.InternalServerError(w, "Failed to create specialization")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Specialization created successfully", specialization)
}

// GetByID handles getting a specialization by ID
// @Summary Get specialization by ID
// @Tags Specializations
// @Produce json
// @Param id path int true "Specialization ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /specializations/{id} [get]
func (h *SpecializationHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDVar(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid specialization ID", nil)
		return
	}

	specialization, err := h.specializationUsecase.GetSpecialization(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrSpecializationNotFound:
			response.NotFound(w, "Specialization not found")
		default:
			response.InternalServerError(w, "Failed to get specialization")
		}
		return
	}

	response.Success(w, http.StatusOK, "Specialization retrieved successfully", specialization)
}

// GetAll handles getting all specializations
// @Summary Get all specializations
// @Tags Specializations
// @Produce json
// @Param include_retired query bool false "Include retired specializations"
// @Success 200 {object} response.Response
// @Router /specializations [get]
func (h *SpecializationHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	includeRetired := r.URL.Query().Get("include_retired") == "true"

	specializations, err := h.specializationUsecase.GetAllSpecializations(r.Context(), includeRetired)
	if err != nil {
		response.InternalServerError(w, "Failed to get specializations")
		return
	}

	response.Success(w, http.StatusOK, "Specializations retrieved successfully", specializations)
}

// Update handles updating a specialization
// @Summary Update specialization
// @Tags Specializations
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Specialization ID"
// @Param request body dto.UpdateSpecializationRequest true "Update Specialization Request"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /specializations/{id} [put]
func (h *SpecializationHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDVar(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid specialization ID", nil)
		return
	}

	var req dto.UpdateSpecializationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	specialization, err := h.specializationUsecase.UpdateSpecialization(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrSpecializationNotFound:
			response.NotFound(w, "Specialization not found")
		case usecase.ErrSpecializationNameExists:
			response.Conflict(w, "Specialization name already exists")
		case usecase.ErrRecordRetired:
			response.UnprocessableEntity(w, "Specialization is retired")
		default:
			response.InternalServerError(w, "Failed to update specialization")
		}
		return
	}

	response.Success(w, http.StatusOK, "Specialization updated successfully", specialization)
}

// Retire handles retiring a specialization
// @Summary Retire specialization
// @Description Mark a specialization for deletion; it stays readable by ID
// @Tags Specializations
// @Security BearerAuth
// @Produce json
// @Param id path int true "Specialization ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /specializations/{id} [delete]
func (h *SpecializationHandler) Retire(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDVar(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid specialization ID", nil)
		return
	}

	if err := h.specializationUsecase.RetireSpecialization(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrSpecializationNotFound:
			response.NotFound(w, "Specialization not found")
		default:
			response.InternalServerError(w, "Failed to retire specialization")
		}
		return
	}

	response.Success(w, http.StatusOK, "Specialization retired successfully", nil)
}
