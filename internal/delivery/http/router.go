package http

import (
	"net/http"

	"clinic-record-system/internal/delivery/http/handler"
	"clinic-record-system/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router                *mux.Router
	authHandler           *handler.AuthHandler
	specializationHandler *handler.SpecializationHandler
	doctorHandler         *handler.DoctorHandler
	patientHandler        *handler.PatientHandler
	diagnoseHandler       *handler.DiagnoseHandler
	treatmentHandler      *handler.TreatmentHandler
	appointmentHandler    *handler.AppointmentHandler
	sickLeaveHandler      *handler.SickLeaveHandler
	reportHandler         *handler.ReportHandler
	auditLogHandler       *handler.AuditLogHandler
	authMiddleware        *middleware.AuthMiddleware
	corsMiddleware        *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	specializationHandler *handler.SpecializationHandler,
	doctorHandler *handler.DoctorHandler,
	patientHandler *handler.PatientHandler,
	diagnoseHandler *handler.DiagnoseHandler,
	treatmentHandler *handler.TreatmentHandler,
	appointmentHandler *handler.AppointmentHandler,
	sickLeaveHandler *handler.SickLeaveHandler,
	reportHandler *handler.ReportHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:                mux.NewRouter(),
		authHandler:           authHandler,
		specializationHandler: specializationHandler,
		doctorHandler:         doctorHandler,
		patientHandler:        patientHandler,
		diagnoseHandler:       diagnoseHandler,
		treatmentHandler:      treatmentHandler,
		appointmentHandler:    appointmentHandler,
		sickLeaveHandler:      sickLeaveHandler,
		reportHandler:         reportHandler,
		auditLogHandler:       auditLogHandler,
		authMiddleware:        authMiddleware,
		corsMiddleware:        corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register/doctor", r.authHandler.RegisterDoctor).Methods(http.MethodPost)
	auth.HandleFunc("/register/patient", r.authHandler.RegisterPatient).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Reference data (public reads)
	api.HandleFunc("/specializations", r.specializationHandler.GetAll).Methods(http.MethodGet)
	api.HandleFunc("/specializations/{id}", r.specializationHandler.GetByID).Methods(http.MethodGet)
	api.HandleFunc("/doctors", r.doctorHandler.GetAll).Methods(http.MethodGet)
	api.HandleFunc("/doctors/family", r.doctorHandler.GetFamilyDoctors).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{id}", r.doctorHandler.GetByID).Methods(http.MethodGet)
	api.HandleFunc("/diagnoses", r.diagnoseHandler.GetAll).Methods(http.MethodGet)
	api.HandleFunc("/diagnoses/{id}", r.diagnoseHandler.GetByID).Methods(http.MethodGet)
	api.HandleFunc("/treatments", r.treatmentHandler.GetAll).Methods(http.MethodGet)
	api.HandleFunc("/treatments/{id}", r.treatmentHandler.GetByID).Methods(http.MethodGet)

	// Clinical records (staff)
	staff := api.PathPrefix("").Subrouter()
	staff.Use(r.authMiddleware.Authenticate)
	staff.Use(middleware.RequireAdminOrDoctor)

	staff.HandleFunc("/patients", r.patientHandler.GetAll).Methods(http.MethodGet)
	staff.HandleFunc("/patients/{id}", r.patientHandler.GetByID).Methods(http.MethodGet)
	staff.HandleFunc("/doctors/{id}/patients", r.doctorHandler.GetPatients).Methods(http.MethodGet)

	staff.HandleFunc("/appointments", r.appointmentHandler.Create).Methods(http.MethodPost)
	staff.HandleFunc("/appointments", r.appointmentHandler.GetAll).Methods(http.MethodGet)
	staff.HandleFunc("/appointments/{id}", r.appointmentHandler.GetByID).Methods(http.MethodGet)
	staff.HandleFunc("/appointments/{id}", r.appointmentHandler.Update).Methods(http.MethodPut)
	staff.HandleFunc("/appointments/{id}", r.appointmentHandler.Delete).Methods(http.MethodDelete)
	staff.HandleFunc("/appointments/{id}/diagnoses/{diagnoseId}", r.appointmentHandler.AddDiagnose).Methods(http.MethodPost)
	staff.HandleFunc("/appointments/{id}/diagnoses/{diagnoseId}", r.appointmentHandler.RemoveDiagnose).Methods(http.MethodDelete)
	staff.HandleFunc("/appointments/{id}/treatments/{treatmentId}", r.appointmentHandler.AddTreatment).Methods(http.MethodPost)
	staff.HandleFunc("/appointments/{id}/treatments/{treatmentId}", r.appointmentHandler.RemoveTreatment).Methods(http.MethodDelete)
	staff.HandleFunc("/appointments/{id}/sick-leave", r.appointmentHandler.CreateSickLeave).Methods(http.MethodPost)

	staff.HandleFunc("/sick-leaves/{id}", r.sickLeaveHandler.GetByID).Methods(http.MethodGet)
	staff.HandleFunc("/sick-leaves/{id}", r.sickLeaveHandler.Update).Methods(http.MethodPut)
	staff.HandleFunc("/sick-leaves/{id}", r.sickLeaveHandler.Delete).Methods(http.MethodDelete)

	// Reports (staff)
	staff.HandleFunc("/reports/appointments-per-doctor", r.reportHandler.AppointmentCountPerDoctor).Methods(http.MethodGet)
	staff.HandleFunc("/reports/appointments-per-doctor/{id}", r.reportHandler.AppointmentCountForDoctor).Methods(http.MethodGet)
	staff.HandleFunc("/reports/patients-per-family-doctor", r.reportHandler.PatientCountPerFamilyDoctor).Methods(http.MethodGet)
	staff.HandleFunc("/reports/most-common-diagnoses", r.reportHandler.MostCommonDiagnoses).Methods(http.MethodGet)
	staff.HandleFunc("/reports/doctors-most-sick-leaves", r.reportHandler.DoctorsWithMostSickLeaves).Methods(http.MethodGet)
	staff.HandleFunc("/reports/month-most-sick-leaves", r.reportHandler.MonthWithMostSickLeaves).Methods(http.MethodGet)
	staff.HandleFunc("/reports/patients-by-diagnose/{id}", r.reportHandler.PatientsByDiagnose).Methods(http.MethodGet)
	staff.HandleFunc("/reports/patients-by-family-doctor/{id}", r.reportHandler.PatientsByFamilyDoctor).Methods(http.MethodGet)
	staff.HandleFunc("/reports/patient-visit-history/{id}", r.reportHandler.PatientVisitHistory).Methods(http.MethodGet)

	// Admin routes (protected - admin only)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)

	// Specialization management (admin)
	admin.HandleFunc("/specializations", r.specializationHandler.Create).Methods(http.MethodPost)
	admin.HandleFunc("/specializations/{id}", r.specializationHandler.Update).Methods(http.MethodPut)
	admin.HandleFunc("/specializations/{id}", r.specializationHandler.Retire).Methods(http.MethodDelete)

	// Doctor management (admin)
	admin.HandleFunc("/doctors", r.doctorHandler.Create).Methods(http.MethodPost)
	admin.HandleFunc("/doctors/{id}", r.doctorHandler.Update).Methods(http.MethodPut)
	admin.HandleFunc("/doctors/{id}", r.doctorHandler.Retire).Methods(http.MethodDelete)
	admin.HandleFunc("/doctors/{id}/specializations/{specializationId}", r.doctorHandler.AddSpecialization).Methods(http.MethodPost)
	admin.HandleFunc("/doctors/{id}/specializations/{specializationId}", r.doctorHandler.RemoveSpecialization).Methods(http.MethodDelete)

	// Patient management (admin)
	admin.HandleFunc("/patients", r.patientHandler.Create).Methods(http.MethodPost)
	admin.HandleFunc("/patients/{id}", r.patientHandler.Update).Methods(http.MethodPut)
	admin.HandleFunc("/patients/{id}", r.patientHandler.Retire).Methods(http.MethodDelete)

	// Diagnose management (admin)
	admin.HandleFunc("/diagnoses", r.diagnoseHandler.Create).Methods(http.MethodPost)
	admin.HandleFunc("/diagnoses/{id}", r.diagnoseHandler.Update).Methods(http.MethodPut)
	admin.HandleFunc("/diagnoses/{id}", r.diagnoseHandler.Retire).Methods(http.MethodDelete)

	// Treatment management (admin)
	admin.HandleFunc("/treatments", r.treatmentHandler.Create).Methods(http.MethodPost)
	admin.HandleFunc("/treatments/{id}", r.treatmentHandler.Update).Methods(http.MethodPut)
	admin.HandleFunc("/treatments/{id}", r.treatmentHandler.Delete).Methods(http.MethodDelete)

	// Audit trail (admin)
	admin.HandleFunc("/audit-logs", r.auditLogHandler.GetAll).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
