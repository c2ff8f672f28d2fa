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

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	sickLeaveUsecase   usecase.SickLeaveUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, sickLeaveUsecase usecase.SickLeaveUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		sickLeaveUsecase:   sickLeaveUsecase,
		validator:          validator,
	}
}

// Create handles appointment creation
// @Summary Create a new appointment
// @Description Record a visit with at least one diagnose and optional treatments
// @Tags Appointments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateAppointmentRequest true "Create Appointment Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /appointments [post]
func (h *AppointmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.CreateAppointment(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrNoDiagnoses:
			response.BadRequest(w, "Appointment requires at least one diagnose")
		case usecase.ErrInvalidDateFormat:
			response.BadRequest(w, "Invalid date format, use YYYY-MM-DD")
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		case usecase.ErrDiagnoseNotFound:
			response.NotFound(w, "Diagnose not found")
		case usecase.ErrTreatmentNotFound:
			response.NotFound(w, "Treatment not found")
		case usecase.ErrRecordRetired:
			response.UnprocessableEntity(w, "Referenced record is retired")
		default:
			response.InternalServerError(w, "Failed to create appointment")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Appointment created successfully", appointment)
}

// GetByID handles getting an appointment by ID
// @Summary Get appointment by ID
// @Tags Appointments
// @Security BearerAuth
// @Produce json
// @Param id path int true "Appointment ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /appointments/{id} [get]
func (h *AppointmentHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDVar(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	appointment, err := h.appointmentUsecase.GetAppointment(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		default:
			response.InternalServerError(w, "Failed to get appointment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment retrieved successfully", appointment)
}

// GetAll handles getting all appointments
// @Summary Get all appointments
// @Tags Appointments
// @Security BearerAuth
// @Produce json
// @Param doctor_id query int false "Filter by doctor"
// @Param patient_id query int false "Filter by patient"
// @Success 200 {object} response.Response
// @Router /appointments [get]
func (h *AppointmentHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	var (
		appointments *dto.AppointmentListResponse
		err          error
	)

	switch {
	case r.URL.Query().Get("doctor_id") != "":
		var doctorID uint
		doctorID, err = parseIDQuery(r, "doctor_id")
		if err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
			return
		}
		appointments, err = h.appointmentUsecase.GetAppointmentsByDoctor(r.Context(), doctorID)
	case r.URL.Query().Get("patient_id") != "":
		var patientID uint
		patientID, err = parseIDQuery(r, "patient_id")
		if err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
			return
		}
		appointments, err = h.appointmentUsecase.GetAppointmentsByPatient(r.Context(), patientID)
	default:
		appointments, err = h.appointmentUsecase.GetAllAppointments(r.Context())
	}

	if err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		default:
			response.InternalServerError(w, "Failed to get appointments")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

// Update handles updating an appointment
// @Summary Update appointment
// @Description Only the visit date can change; links are managed separately
// @Tags Appointments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Appointment ID"
// @Param request body dto.UpdateAppointmentRequest true "Update Appointment Request"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /appointments/{id} [put]
func (h *AppointmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDVar(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	var req dto.UpdateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.UpdateAppointment(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		case usecase.ErrInvalidDateFormat:
			response.BadRequest(w, "Invalid date format, use YYYY-MM-DD")
		default:
			response.InternalServerError(w, "Failed to update appointment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment updated successfully", appointment)
}

// Delete handles deleting an appointment
// @Summary Delete appointment
// @Description Hard delete; removes the attached sick leave and all links
// @Tags Appointments
// @Security BearerAuth
// @Produce json
// @Param id path int true "Appointment ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /appointments/{id} [delete]
func (h *AppointmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDVar(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	if err := h.appointmentUsecase.DeleteAppointment(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		default:
			response.InternalServerError(w, "Failed to delete appointment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment deleted successfully", nil)
}

// AddDiagnose links a diagnose to an appointment
// @Summary Add diagnose to appointment
// @Description Idempotent; linking twice leaves a single association
// @Tags Appointments
// @Security BearerAuth
// @Produce json
// @Param id path int true "Appointment ID"
// @Param diagnoseId path int true "Diagnose ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /appointments/{id}/diagnoses/{diagnoseId} [post]
func (h *AppointmentHandler) AddDiagnose(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := parseIDVar(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}
	diagnoseID, err := parseIDVar(r, "diagnoseId")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid diagnose ID", nil)
		return
	}

	if err := h.appointmentUsecase.AddDiagnose(r.Context(), appointmentID, diagnoseID); err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		case usecase.ErrDiagnoseNotFound:
			response.NotFound(w, "Diagnose not found")
		case usecase.ErrRecordRetired:
			response.UnprocessableEntity(w, "Diagnose is retired")
		default:
			response.InternalServerError(w, "Failed to add diagnose")
		}
		return
	}

	response.Success(w, http.StatusOK, "Diagnose added successfully", nil)
}

// RemoveDiagnose unlinks a diagnose from an appointment
// @Summary Remove diagnose from appointment
// @Description Refused when it would leave the appointment without diagnoses
// @Tags Appointments
// @Security BearerAuth
// @Produce json
// @Param id path int true "Appointment ID"
// @Param diagnoseId path int true "Diagnose ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /appointments/{id}/diagnoses/{diagnoseId} [delete]
func (h *AppointmentHandler) RemoveDiagnose(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := parseIDVar(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}
	diagnoseID, err := parseIDVar(r, "diagnoseId")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid diagnose ID", nil)
		return
	}

	if err := h.appointmentUsecase.RemoveDiagnose(r.Context(), appointmentID, diagnoseID); err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		case usecase.ErrDiagnoseNotFound:
			response.NotFound(w, "Diagnose not found")
		case usecase.ErrLastDiagnose:
			response.UnprocessableEntity(w, "Appointment must keep at least one diagnose")
		default:
			response.InternalServerError(w, "Failed to remove diagnose")
		}
		return
	}

	response.Success(w, http.StatusOK, "Diagnose removed successfully", nil)
}

// AddTreatment links a treatment to an appointment
// @Summary Add treatment to appointment
// @Tags Appointments
// @Security BearerAuth
// @Produce json
// @Param id path int true "Appointment ID"
// @Param treatmentId path int true "Treatment ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /appointments/{id}/treatments/{treatmentId} [post]
func (h *AppointmentHandler) AddTreatment(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := parseIDVar(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}
	treatmentID, err := parseIDVar(r, "treatmentId")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid treatment ID", nil)
		return
	}

	if err := h.appointmentUsecase.AddTreatment(r.Context(), appointmentID, treatmentID); err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		case usecase.ErrTreatmentNotFound:
			response.NotFound(w, "Treatment not found")
		default:
			response.InternalServerError(w, "Failed to add treatment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Treatment added successfully", nil)
}

// RemoveTreatment unlinks a treatment from an appointment
// @Summary Remove treatment from appointment
// @Description No-op when the association does not exist
// @Tags Appointments
// @Security BearerAuth
// @Produce json
// @Param id path int true "Appointment ID"
// @Param treatmentId path int true "Treatment ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /appointments/{id}/treatments/{treatmentId} [delete]
func (h *AppointmentHandler) RemoveTreatment(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := parseIDVar(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}
	treatmentID, err := parseIDVar(r, "treatmentId")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid treatment ID", nil)
		return
	}

	if err := h.appointmentUsecase.RemoveTreatment(r.Context(), appointmentID, treatmentID); err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		case usecase.ErrTreatmentNotFound:
			response.NotFound(w, "Treatment not found")
		default:
			response.InternalServerError(w, "Failed to remove treatment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Treatment removed successfully", nil)
}

// CreateSickLeave issues a sick leave for an appointment
// @Summary Issue sick leave
// @Description At most one sick leave per appointment
// @Tags Appointments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Appointment ID"
// @Param request body dto.CreateSickLeaveRequest true "Create Sick Leave Request"
// @Success 201 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /appointments/{id}/sick-leave [post]
func (h *AppointmentHandler) CreateSickLeave(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := parseIDVar(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	var req dto.CreateSickLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	req.AppointmentID = appointmentID

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	sickLeave, err := h.sickLeaveUsecase.CreateSickLeave(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		case usecase.ErrSickLeaveExists:
			response.Conflict(w, "Appointment already has a sick leave")
		case usecase.ErrInvalidDateFormat:
			response.BadRequest(w, "Invalid date format, use YYYY-MM-DD")
		case entity.ErrInvalidSickLeavePeriod:
			response.UnprocessableEntity(w, "Sick leave end date must not precede the start date")
		default:
			response.InternalServerError(w, "Failed to create sick leave")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Sick leave created successfully", sickLeave)
}
