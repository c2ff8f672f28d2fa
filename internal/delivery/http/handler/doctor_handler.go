package handler

import (
	"encoding/json"
	"net/http"

	"clinic-record-system/internal/delivery/dto"
	"clinic-record-system/internal/usecase"
	"clinic-record-system/pkg/response"
	"clinic-record-system/pkg/validator"
)

type DoctorHandler struct {
	doctorUsecase usecase.DoctorUsecase
	validator     *validator.CustomValidator
}

func NewDoctorHandler(doctorUsecase usecase.DoctorUsecase, validator *validator.CustomValidator) *DoctorHandler {
	return &DoctorHandler{
		doctorUsecase: doctorUsecase,
		validator:     validator,
	}
}

// Create handles doctor creation
// @Summary Create a new doctor
// @Description Create a doctor record, optionally with initial specializations
// @Tags Doctors
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateDoctorRequest true "Create Doctor Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /doctors [post]
func (h *DoctorHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDoctorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	doctor, err := h.doctorUsecase.CreateDoctor(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrSpecializationNotFound:
			response.NotFound(w, "Specialization not found")
		case usecase.ErrRecordRetired:
			response.UnprocessableEntity(w, "Specialization is retired")
		default:
			response.InternalServerError(w, "Failed to create doctor")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Doctor created successfully", doctor)
}

// GetByID handles getting a doctor by ID
// @Summary Get doctor by ID
// @Tags Doctors
// @Produce json
// @Param id path int true "Doctor ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /doctors/{id} [get]
func (h *DoctorHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDVar(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	doctor, err := h.doctorUsecase.GetDoctor(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		default:
			response.InternalServerError(w, "Failed to get doctor")
		}
		return
	}

	response.Success(w, http.StatusOK, "Doctor retrieved successfully", doctor)
}

// GetAll handles getting all doctors
// @Summary Get all doctors
// @Tags Doctors
// @Produce json
// @Param include_retired query bool false "Include retired doctors"
// @Success 200 {object} response.Response
// @Router /doctors [get]
func (h *DoctorHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	includeRetired := r.URL.Query().Get("include_retired") == "true"

	doctors, err := h.doctorUsecase.GetAllDoctors(r.Context(), includeRetired)
	if err != nil {
		response.InternalServerError(w, "Failed to get doctors")
		return
	}

	response.Success(w, http.StatusOK, "Doctors retrieved successfully", doctors)
}

// GetFamilyDoctors handles listing active family doctors
// @Summary Get family doctors
// @Description List active doctors carrying the family doctor designation
// @Tags Doctors
// @Produce json
// @Success 200 {object} response.Response
// @Router /doctors/family [get]
func (h *DoctorHandler) GetFamilyDoctors(w http.ResponseWriter, r *http.Request) {
	doctors, err := h.doctorUsecase.GetFamilyDoctors(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get family doctors")
		return
	}

	response.Success(w, http.StatusOK, "Family doctors retrieved successfully", doctors)
}

// Update handles updating a doctor
// @Summary Update doctor
// @Tags Doctors
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Doctor ID"
// @Param request body dto.UpdateDoctorRequest true "Update Doctor Request"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /doctors/{id} [put]
func (h *DoctorHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDVar(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	var req dto.UpdateDoctorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	doctor, err := h.doctorUsecase.UpdateDoctor(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		case usecase.ErrRecordRetired:
			response.UnprocessableEntity(w, "Doctor is retired")
		default:
			response.InternalServerError(w, "Failed to update doctor")
		}
		return
	}

	response.Success(w, http.StatusOK, "Doctor updated successfully", doctor)
}

// Retire handles retiring a doctor
// @Summary Retire doctor
// @Description Mark a doctor for deletion; appointments keep referencing it
// @Tags Doctors
// @Security BearerAuth
// @Produce json
// @Param id path int true "Doctor ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /doctors/{id} [delete]
func (h *DoctorHandler) Retire(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDVar(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	if err := h.doctorUsecase.RetireDoctor(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		default:
			response.InternalServerError(w, "Failed to retire doctor")
		}
		return
	}

	response.Success(w, http.StatusOK, "Doctor retired successfully", nil)
}

// AddSpecialization links a specialization to a doctor
// @Summary Add specialization to doctor
// @Description Idempotent; linking twice leaves a single association
// @Tags Doctors
// @Security BearerAuth
// @Produce json
// @Param id path int true "Doctor ID"
// @Param specializationId path int true "Specialization ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /doctors/{id}/specializations/{specializationId} [post]
func (h *DoctorHandler) AddSpecialization(w http.ResponseWriter, r *http.Request) {
	doctorID, err := parseIDVar(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}
	specializationID, err := parseIDVar(r, "specializationId")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid specialization ID", nil)
		return
	}

	if err := h.doctorUsecase.AddSpecialization(r.Context(), doctorID, specializationID); err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		case usecase.ErrSpecializationNotFound:
			response.NotFound(w, "Specialization not found")
		case usecase.ErrRecordRetired:
			response.UnprocessableEntity(w, "Doctor or specialization is retired")
		default:
			response.InternalServerError(w, "Failed to add specialization")
		}
		return
	}

	response.Success(w, http.StatusOK, "Specialization added successfully", nil)
}

// RemoveSpecialization unlinks a specialization from a doctor
// @Summary Remove specialization from doctor
// @Description No-op when the association does not exist
// @Tags Doctors
// @Security BearerAuth
// @Produce json
// @Param id path int true "Doctor ID"
// @Param specializationId path int true "Specialization ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /doctors/{id}/specializations/{specializationId} [delete]
func (h *DoctorHandler) RemoveSpecialization(w http.ResponseWriter, r *http.Request) {
	doctorID, err := parseIDVar(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}
	specializationID, err := parseIDVar(r, "specializationId")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid specialization ID", nil)
		return
	}

	if err := h.doctorUsecase.RemoveSpecialization(r.Context(), doctorID, specializationID); err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		case usecase.ErrSpecializationNotFound:
			response.NotFound(w, "Specialization not found")
		default:
			response.InternalServerError(w, "Failed to remove specialization")
		}
		return
	}

	response.Success(w, http.StatusOK, "Specialization removed successfully", nil)
}

// GetPatients lists the patients assigned to a family doctor
// @Summary Get patients of a family doctor
// @Tags Doctors
// @Security BearerAuth
// @Produce json
// @Param id path int true "Doctor ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /doctors/{id}/patients [get]
func (h *DoctorHandler) GetPatients(w http.ResponseWriter, r *http.Request) {
	doctorID, err := parseIDVar(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	patients, err := h.doctorUsecase.GetPatients(r.Context(), doctorID)
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		case usecase.ErrNotFamilyDoctor:
			response.UnprocessableEntity(w, "Doctor is not a family doctor")
		default:
			response.InternalServerError(w, "Failed to get patients")
		}
		return
	}

	response.Success(w, http.StatusOK, "Patients retrieved successfully", patients)
}
