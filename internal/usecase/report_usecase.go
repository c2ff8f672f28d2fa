package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"clinic-record-system/internal/converter"
	"clinic-record-system/internal/delivery/dto"
	"clinic-record-system/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrNoSickLeaveRecords = errors.New("no sick leave records")

// ReportUsecase is the read-only aggregation surface. Every query is
// computed fresh from current store contents; nothing is cached between
// calls.
type ReportUsecase interface {
	AppointmentCountPerDoctor(ctx context.Context) ([]dto.DoctorAppointmentCountResponse, error)
	AppointmentCountForDoctor(ctx context.Context, doctorID uint) (*dto.DoctorAppointmentCountResponse, error)
	PatientCountPerFamilyDoctor(ctx context.Context) ([]dto.DoctorPatientCountResponse, error)
	MostCommonDiagnoses(ctx context.Context) ([]dto.DiagnoseAppointmentCountResponse, error)
	DoctorsWithMostSickLeaves(ctx context.Context) ([]dto.DoctorSickLeaveCountResponse, error)
	MonthWithMostSickLeaves(ctx context.Context) (*dto.SickLeaveMonthResponse, error)
	PatientsByDiagnose(ctx context.Context, diagnoseID uint) (*dto.PatientListResponse, error)
	PatientsByFamilyDoctor(ctx context.Context, doctorID uint) (*dto.PatientListResponse, error)
	PatientVisitHistory(ctx context.Context, patientID uint) (*dto.VisitHistoryResponse, error)
}

type reportUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	patientRepo     repository.PatientRepository
	doctorRepo      repository.DoctorRepository
	diagnoseRepo    repository.DiagnoseRepository
	sickLeaveRepo   repository.SickLeaveRepository
}

func NewReportUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	patientRepo repository.PatientRepository,
	doctorRepo repository.DoctorRepository,
	diagnoseRepo repository.DiagnoseRepository,
	sickLeaveRepo repository.SickLeaveRepository,
) ReportUsecase {
	return &reportUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		patientRepo:     patientRepo,
		doctorRepo:      doctorRepo,
		diagnoseRepo:    diagnoseRepo,
		sickLeaveRepo:   sickLeaveRepo,
	}
}

func (u *reportUsecase) AppointmentCountPerDoctor(ctx context.Context) ([]dto.DoctorAppointmentCountResponse, error) {
	counts, err := u.appointmentRepo.CountPerDoctor(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to count appointments per doctor: %+v", err)
		return nil, err
	}

	responses := make([]dto.DoctorAppointmentCountResponse, len(counts))
	for i, count := range counts {
		responses[i] = dto.DoctorAppointmentCountResponse(count)
	}
	return responses, nil
}

func (u *reportUsecase) AppointmentCountForDoctor(ctx context.Context, doctorID uint) (*dto.DoctorAppointmentCountResponse, error) {
	db := u.db.WithContext(ctx)

	doctor, err := u.doctorRepo.FindByID(db, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %d: %+v", doctorID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	count, err := u.appointmentRepo.CountByDoctor(db, doctorID)
	if err != nil {
		u.log.Warnf("Failed to count appointments of doctor %d: %+v", doctorID, err)
		return nil, err
	}

	return &dto.DoctorAppointmentCountResponse{
		DoctorID:         doctor.ID,
		DoctorName:       doctor.Name,
		AppointmentCount: count,
	}, nil
}

func (u *reportUsecase) PatientCountPerFamilyDoctor(ctx context.Context) ([]dto.DoctorPatientCountResponse, error) {
	counts, err := u.patientRepo.CountPerFamilyDoctor(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to count patients per family doctor: %+v", err)
		return nil, err
	}

	responses := make([]dto.DoctorPatientCountResponse, len(counts))
	for i, count := range counts {
		responses[i] = dto.DoctorPatientCountResponse(count)
	}
	return responses, nil
}

// MostCommonDiagnoses returns every non-retired diagnose tied at the
// maximum appointment count. Diagnoses with no appointments cannot tie for
// a positive maximum, so an empty result means no diagnose is linked at
// all.
func (u *reportUsecase) MostCommonDiagnoses(ctx context.Context) ([]dto.DiagnoseAppointmentCountResponse, error) {
	counts, err := u.diagnoseRepo.CountAppointmentsPerDiagnose(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to count appointments per diagnose: %+v", err)
		return nil, err
	}

	var max int64
	for _, count := range counts {
		if count.AppointmentCount > max {
			max = count.AppointmentCount
		}
	}
	if max == 0 {
		return []dto.DiagnoseAppointmentCountResponse{}, nil
	}

	var responses []dto.DiagnoseAppointmentCountResponse
	for _, count := range counts {
		if count.AppointmentCount == max {
			responses = append(responses, dto.DiagnoseAppointmentCountResponse(count))
		}
	}
	return responses, nil
}

// DoctorsWithMostSickLeaves returns every doctor tied at the maximum
// sick-leave count, counted through the issuing appointment.
func (u *reportUsecase) DoctorsWithMostSickLeaves(ctx context.Context) ([]dto.DoctorSickLeaveCountResponse, error) {
	counts, err := u.sickLeaveRepo.CountPerDoctor(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to count sick leaves per doctor: %+v", err)
		return nil, err
	}

	var max int64
	for _, count := range counts {
		if count.SickLeaveCount > max {
			max = count.SickLeaveCount
		}
	}
	if max == 0 {
		return []dto.DoctorSickLeaveCountResponse{}, nil
	}

	var responses []dto.DoctorSickLeaveCountResponse
	for _, count := range counts {
		if count.SickLeaveCount == max {
			responses = append(responses, dto.DoctorSickLeaveCountResponse(count))
		}
	}
	return responses, nil
}

// MonthWithMostSickLeaves buckets all sick leaves by the calendar month of
// their start date. Bucketing runs in-process over the ordered listing so
// the tie-break is deterministic: the earliest calendar month wins.
func (u *reportUsecase) MonthWithMostSickLeaves(ctx context.Context) (*dto.SickLeaveMonthResponse, error) {
	sickLeaves, err := u.sickLeaveRepo.FindAllOrderedByStartDate(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list sick leaves: %+v", err)
		return nil, err
	}
	if len(sickLeaves) == 0 {
		return nil, ErrNoSickLeaveRecords
	}

	type monthKey struct {
		year  int
		month time.Month
	}
	buckets := make(map[monthKey]int64)
	for _, sickLeave := range sickLeaves {
		key := monthKey{year: sickLeave.StartDate.Year(), month: sickLeave.StartDate.Month()}
		buckets[key]++
	}

	// The listing is ordered by start date, so walking it again visits
	// months chronologically and the first maximum is the earliest one.
	var best monthKey
	var bestCount int64
	seen := make(map[monthKey]bool)
	for _, sickLeave := range sickLeaves {
		key := monthKey{year: sickLeave.StartDate.Year(), month: sickLeave.StartDate.Month()}
		if seen[key] {
			continue
		}
		seen[key] = true
		if buckets[key] > bestCount {
			best = key
			bestCount = buckets[key]
		}
	}

	return &dto.SickLeaveMonthResponse{
		Month: best.month.String(),
		Year:  best.year,
		Count: bestCount,
		Label: fmt.Sprintf("%s %d — %d sick leaves", best.month.String(), best.year, bestCount),
	}, nil
}

func (u *reportUsecase) PatientsByDiagnose(ctx context.Context, diagnoseID uint) (*dto.PatientListResponse, error) {
	db := u.db.WithContext(ctx)

	diagnose, err := u.diagnoseRepo.FindByID(db, diagnoseID)
	if err != nil {
		u.log.Warnf("Failed to find diagnose %d: %+v", diagnoseID, err)
		return nil, err
	}
	if diagnose == nil {
		return nil, ErrDiagnoseNotFound
	}

	patients, err := u.patientRepo.FindAllActiveByDiagnose(db, diagnoseID)
	if err != nil {
		u.log.Warnf("Failed to list patients by diagnose %d: %+v", diagnoseID, err)
		return nil, err
	}

	return &dto.PatientListResponse{
		Patients: converter.PatientsToResponses(patients),
		Total:    len(patients),
	}, nil
}

func (u *reportUsecase) PatientsByFamilyDoctor(ctx context.Context, doctorID uint) (*dto.PatientListResponse, error) {
	db := u.db.WithContext(ctx)

	doctor, err := u.doctorRepo.FindByID(db, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %d: %+v", doctorID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}
	if !doctor.IsFamilyDoctor {
		return nil, ErrNotFamilyDoctor
	}

	patients, err := u.patientRepo.FindAllActiveByFamilyDoctor(db, doctorID)
	if err != nil {
		u.log.Warnf("Failed to list patients of doctor %d: %+v", doctorID, err)
		return nil, err
	}

	return &dto.PatientListResponse{
		Patients: converter.PatientsToResponses(patients),
		Total:    len(patients),
	}, nil
}

func (u *reportUsecase) PatientVisitHistory(ctx context.Context, patientID uint) (*dto.VisitHistoryResponse, error) {
	db := u.db.WithContext(ctx)

	patient, err := u.patientRepo.FindByID(db, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %d: %+v", patientID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	appointments, err := u.appointmentRepo.FindAllByPatient(db, patientID)
	if err != nil {
		u.log.Warnf("Failed to list visit history of patient %d: %+v", patientID, err)
		return nil, err
	}

	return &dto.VisitHistoryResponse{
		PatientID:    patient.ID,
		PatientName:  patient.Name,
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}
