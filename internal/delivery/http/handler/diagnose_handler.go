package handler

import (
	"encoding/json"
	"net/http"

	"clinic-record-system/internal/delivery/dto"
	"clinic-record-system/internal/usecase"
	"clinic-record-system/pkg/response"
	"clinic-record-system/pkg/validator"
)

type DiagnoseHandler struct {
	diagnoseUsecase usecase.DiagnoseUsecase
	validator       *validator.CustomValidator
}

func NewDiagnoseHandler(diagnoseUsecase usecase.DiagnoseUsecase, validator *validator.CustomValidator) *DiagnoseHandler {
	return &DiagnoseHandler{
		diagnoseUsecase: diagnoseUsecase,
		validator:       validator,
	}
}

// Create handles diagnose creation
// @Summary Create a new diagnose
// @Description Create a diagnose with a unique name
// @Tags Diagnoses
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateDiagnoseRequest true "Create Diagnose Request"
// @Success 201 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /diagnoses [post]
func (h *DiagnoseHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDiagnoseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	diagnose, err := h.diagnoseUsecase.CreateDiagnose(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrDiagnoseNameExists:
			response.Conflict(w, "Diagnose name already exists")
		default:
			response.InternalServerError(w, "Failed to create diagnose")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Diagnose created successfully", diagnose)
}

// GetByID handles getting a diagnose by ID
// @Summary Get diagnose by ID
// @Tags Diagnoses
// @Produce json
// @Param id path int true "Diagnose ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /diagnoses/{id} [get]
func (h *DiagnoseHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDVar(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid diagnose ID", nil)
		return
	}

	diagnose, err := h.diagnoseUsecase.GetDiagnose(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrDiagnoseNotFound:
			response.NotFound(w, "Diagnose not found")
		default:
			response.InternalServerError(w, "Failed to get diagnose")
		}
		return
	}

	response.Success(w, http.StatusOK, "Diagnose retrieved successfully", diagnose)
}

// GetAll handles getting all diagnoses
// @Summary Get all diagnoses
// @Tags Diagnoses
// @Produce json
// @Param include_retired query bool false "Include retired diagnoses"
// @Success 200 {object} response.Response
// @Router /diagnoses [get]
func (h *DiagnoseHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	includeRetired := r.URL.Query().Get("include_retired") == "true"

	diagnoses, err := h.diagnoseUsecase.GetAllDiagnoses(r.Context(), includeRetired)
	if err != nil {
		response.InternalServerError(w, "Failed to get diagnoses")
		return
	}

	response.Success(w, http.StatusOK, "Diagnoses retrieved successfully", diagnoses)
}

// Update handles updating a diagnose
// @Summary Update diagnose
// @Tags Diagnoses
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Diagnose ID"
// @Param request body dto.UpdateDiagnoseRequest true "Update Diagnose Request"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /diagnoses/{id} [put]
func (h *DiagnoseHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDVar(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid diagnose ID", nil)
		return
	}

	var req dto.UpdateDiagnoseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	diagnose, err := h.diagnoseUsecase.UpdateDiagnose(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrDiagnoseNotFound:
			response.NotFound(w, "Diagnose not found")
		case usecase.ErrDiagnoseNameExists:
			response.Conflict(w, "Diagnose name already exists")
		case usecase.ErrRecordRetired:
			response.UnprocessableEntity(w, "Diagnose is retired")
		default:
			response.InternalServerError(w, "Failed to update diagnose")
		}
		return
	}

	response.Success(w, http.StatusOK, "Diagnose updated successfully", diagnose)
}

// Retire handles retiring a diagnose
// @Summary Retire diagnose
// @Description Mark a diagnose for deletion; past appointments keep it
// @Tags Diagnoses
// @Security BearerAuth
// @Produce json
// @Param id path int true "Diagnose ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /diagnoses/{id} [delete]
func (h *DiagnoseHandler) Retire(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDVar(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid diagnose ID", nil)
		return
	}

	if err := h.diagnoseUsecase.RetireDiagnose(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrDiagnoseNotFound:
			response.NotFound(w, "Diagnose not found")
		default:
			response.InternalServerError(w, "Failed to retire diagnose")
		}
		return
	}

	response.Success(w, http.StatusOK, "Diagnose retired successfully", nil)
}
