package handler

import (
	"net/http"

	"clinic-record-system/internal/usecase"
	"clinic-record-system/pkg/response"
)

type ReportHandler struct {
	reportUsecase usecase.ReportUsecase
}

func NewReportHandler(reportUsecase usecase.ReportUsecase) *ReportHandler {
	return &ReportHandler{
		reportUsecase: reportUsecase,
	}
}

// AppointmentCountPerDoctor lists appointment counts for every active doctor
// @Summary Appointment count per doctor
// @Description Includes doctors with zero appointments
// @Tags Reports
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /reports/appointments-per-doctor [get]
func (h *ReportHandler) AppointmentCountPerDoctor(w http.ResponseWriter, r *http.Request) {
	counts, err := h.reportUsecase.AppointmentCountPerDoctor(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get report")
		return
	}

	response.Success(w, http.StatusOK, "Report retrieved successfully", counts)
}

// AppointmentCountForDoctor returns the appointment count of one doctor
// @Summary Appointment count for a doctor
// @Tags Reports
// @Security BearerAuth
// @Produce json
// @Param id path int true "Doctor ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /reports/appointments-per-doctor/{id} [get]
func (h *ReportHandler) AppointmentCountForDoctor(w http.ResponseWriter, r *http.Request) {
	doctorID, err := parseIDVar(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	count, err := h.reportUsecase.AppointmentCountForDoctor(r.Context(), doctorID)
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		default:
			response.InternalServerError(w, "Failed to get report")
		}
		return
	}

	response.Success(w, http.StatusOK, "Report retrieved successfully", count)
}

// PatientCountPerFamilyDoctor lists registered patient counts per family doctor
// @Summary Patient count per family doctor
// @Tags Reports
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /reports/patients-per-family-doctor [get]
func (h *ReportHandler) PatientCountPerFamilyDoctor(w http.ResponseWriter, r *http.Request) {
	counts, err := h.reportUsecase.PatientCountPerFamilyDoctor(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get report")
		return
	}

	response.Success(w, http.StatusOK, "Report retrieved successfully", counts)
}

// MostCommonDiagnoses lists the diagnoses tied at the maximum appointment count
// @Summary Most common diagnoses
// @Description Empty when no diagnose is linked to any appointment
// @Tags Reports
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /reports/most-common-diagnoses [get]
func (h *ReportHandler) MostCommonDiagnoses(w http.ResponseWriter, r *http.Request) {
	diagnoses, err := h.reportUsecase.MostCommonDiagnoses(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get report")
		return
	}

	response.Success(w, http.StatusOK, "Report retrieved successfully", diagnoses)
}

// DoctorsWithMostSickLeaves lists the doctors tied at the maximum sick leave count
// @Summary Doctors with most sick leaves
// @Tags Reports
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /reports/doctors-most-sick-leaves [get]
func (h *ReportHandler) DoctorsWithMostSickLeaves(w http.ResponseWriter, r *http.Request) {
	doctors, err := h.reportUsecase.DoctorsWithMostSickLeaves(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get report")
		return
	}

	response.Success(w, http.StatusOK, "Report retrieved successfully", doctors)
}

// MonthWithMostSickLeaves returns the calendar month with the most sick leaves
// @Summary Month with most sick leaves
// @Tags Reports
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /reports/month-most-sick-leaves [get]
func (h *ReportHandler) MonthWithMostSickLeaves(w http.ResponseWriter, r *http.Request) {
	month, err := h.reportUsecase.MonthWithMostSickLeaves(r.Context())
	if err != nil {
		switch err {
		case usecase.ErrNoSickLeaveRecords:
			response.NotFound(w, "No sick leave records")
		default:
			response.InternalServerError(w, "Failed to get report")
		}
		return
	}

	response.Success(w, http.StatusOK, "Report retrieved successfully", month)
}

// PatientsByDiagnose lists active patients who received a given diagnose
// @Summary Patients by diagnose
// @Tags Reports
// @Security BearerAuth
// @Produce json
// @Param id path int true "Diagnose ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /reports/patients-by-diagnose/{id} [get]
func (h *ReportHandler) PatientsByDiagnose(w http.ResponseWriter, r *http.Request) {
	diagnoseID, err := parseIDVar(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid diagnose ID", nil)
		return
	}

	patients, err := h.reportUsecase.PatientsByDiagnose(r.Context(), diagnoseID)
	if err != nil {
		switch err {
		case usecase.ErrDiagnoseNotFound:
			response.NotFound(w, "Diagnose not found")
		default:
			response.InternalServerError(w, "Failed to get report")
		}
		return
	}

	response.Success(w, http.StatusOK, "Report retrieved successfully", patients)
}

// PatientsByFamilyDoctor lists active patients registered with a family doctor
// @Summary Patients by family doctor
// @Tags Reports
// @Security BearerAuth
// @Produce json
// @Param id path int true "Doctor ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /reports/patients-by-family-doctor/{id} [get]
func (h *ReportHandler) PatientsByFamilyDoctor(w http.ResponseWriter, r *http.Request) {
	doctorID, err := parseIDVar(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	patients, err := h.reportUsecase.PatientsByFamilyDoctor(r.Context(), doctorID)
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		case usecase.ErrNotFamilyDoctor:
			response.UnprocessableEntity(w, "Doctor is not a family doctor")
		default:
			response.InternalServerError(w, "Failed to get report")
		}
		return
	}

	response.Success(w, http.StatusOK, "Report retrieved successfully", patients)
}

// PatientVisitHistory lists the full appointment history of a patient
// @Summary Patient visit history
// @Tags Reports
// @Security BearerAuth
// @Produce json
// @Param id path int true "Patient ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /reports/patient-visit-history/{id} [get]
func (h *ReportHandler) PatientVisitHistory(w http.ResponseWriter, r *http.Request) {
	patientID, err := parseIDVar(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return
	}

	history, err := h.reportUsecase.PatientVisitHistory(r.Context(), patientID)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		default:
			response.InternalServerError(w, "Failed to get report")
		}
		return
	}

	response.Success(w, http.StatusOK, "Report retrieved successfully", history)
}
