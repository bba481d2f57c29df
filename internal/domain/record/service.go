package record

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/marqhealth/clinic/internal/domain/patient"
)

var (
	ErrPatientNotFound = errors.New("patient not found")
	ErrReportNotFound  = errors.New("report not found")
)

// Service assembles the full record view for one patient: demographics,
// report history, and the reconciled display set for the selected report.
type Service struct {
	patients patient.Repository
	records  Repository
	logger   zerolog.Logger
	now      func() time.Time
}

func NewService(patients patient.Repository, records Repository, logger zerolog.Logger) *Service {
	return &Service{
		patients: patients,
		records:  records,
		logger:   logger,
		now:      time.Now,
	}
}

// PatientView is the response of the record view endpoint. View is nil
// when the patient has no reports yet.
type PatientView struct {
	Patient *patient.Patient `json:"patient"`
	Reports []ReportSummary  `json:"reports"`
	View    *ReconciledView  `json:"view,omitempty"`
}

// View loads the record view for a patient, selecting the newest report
// by default or the one named by reportID. A patient without reports
// yields a view with demographics and an empty history; an unknown
// patient or report id is an error.
func (s *Service) View(ctx context.Context, patientID uuid.UUID, reportID *uuid.UUID) (*PatientView, error) {
	p, err := s.patients.GetByID(ctx, patientID)
	if err != nil {
		return nil, ErrPatientNotFound
	}

	// A failed history fetch degrades to an empty history: demographics
	// still render, only the report panel is lost.
	sel := NewSelection(s.records, s.logger)
	if err := sel.Load(ctx, patientID); err != nil {
		s.logger.Warn().Err(err).
			Str("patient_id", patientID.String()).
			Msg("report history fetch failed, showing record without reports")
	}

	reports := sel.Reports()
	if reportID != nil {
		rep := findReport(reports, *reportID)
		if rep == nil {
			return nil, ErrReportNotFound
		}
		// a failed interaction fetch is absorbed by the selection, which
		// keeps the report with an empty interaction list
		_ = sel.Select(ctx, rep)
	}

	out := &PatientView{
		Patient: p,
		Reports: make([]ReportSummary, 0, len(reports)),
	}
	for _, rep := range reports {
		out.Reports = append(out.Reports, ReportSummary{ID: rep.ID, CreatedAt: rep.CreatedAt})
	}

	current, interactions := sel.Current()
	if current == nil {
		return out, nil
	}

	view := Reconcile(p, current, interactions, s.now())
	for _, col := range view.malformedLegacy {
		s.logger.Warn().
			Str("patient_id", patientID.String()).
			Str("report_id", current.ID.String()).
			Str("column", col).
			Msg("legacy selection column failed structured parsing, used delimiter fallback")
	}
	hasLegacy := p.SelecionadosFace != nil || p.SelecionadosBody != nil ||
		current.SelecionadosFace != nil || current.SelecionadosBody != nil
	if !view.ConcernsFromLegacy && len(view.Concerns) > 0 && hasLegacy {
		s.logger.Debug().
			Str("report_id", current.ID.String()).
			Msg("structured concerns present, legacy selections shadowed")
	}
	out.View = view
	return out, nil
}

func findReport(reports []*Report, id uuid.UUID) *Report {
	for _, rep := range reports {
		if rep.ID == id {
			return rep
		}
	}
	return nil
}
