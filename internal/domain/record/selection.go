package record

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Selection tracks which report of a patient's history is currently
// displayed, and owns the interaction rows for it. Selecting a report
// bumps an epoch; interaction fetches that complete after a newer
// selection are discarded, so the view can never show report A's header
// with report B's interactions.
type Selection struct {
	repo   Repository
	logger zerolog.Logger

	mu           sync.Mutex
	epoch        uint64
	reports      []*Report
	current      *Report
	interactions []*Interaction
}

func NewSelection(repo Repository, logger zerolog.Logger) *Selection {
	return &Selection{repo: repo, logger: logger}
}

// Load fetches the patient's report history and auto-selects the newest
// report when one exists. A patient without reports leaves the selection
// empty; that is a valid terminal state, not an error.
func (s *Selection) Load(ctx context.Context, patientID uuid.UUID) error {
	reports, err := s.repo.ListReportsByPatient(ctx, patientID)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.reports = reports
	s.current = nil
	s.interactions = nil
	s.mu.Unlock()

	if len(reports) == 0 {
		return nil
	}
	return s.Select(ctx, reports[0])
}

// Select makes rep the displayed report and fetches its interactions.
// Concurrent calls race safely: the last selection wins, and a fetch
// belonging to a superseded selection is dropped on arrival. A failed
// fetch is absorbed here: the report stays selected with an empty
// interaction list, so Select never fails the view.
func (s *Selection) Select(ctx context.Context, rep *Report) error {
	s.mu.Lock()
	s.epoch++
	myEpoch := s.epoch
	s.current = rep
	s.interactions = nil
	s.mu.Unlock()

	interactions, err := s.repo.ListInteractionsByReport(ctx, rep.ID)
	if err != nil {
		s.logger.Warn().Err(err).
			Str("report_id", rep.ID.String()).
			Msg("interaction fetch failed, showing report without interactions")
		interactions = nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.epoch != myEpoch {
		// a newer selection landed while we were fetching
		return nil
	}
	s.interactions = interactions
	return nil
}

// Reports returns the loaded history, newest first.
func (s *Selection) Reports() []*Report {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reports
}

// Current returns the selected report and its interactions, or nil when
// the patient has no reports.
func (s *Selection) Current() (*Report, []*Interaction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current, s.interactions
}

// HasSelection reports whether any report is displayed.
func (s *Selection) HasSelection() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current != nil
}
