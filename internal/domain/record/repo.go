package record

import (
	"context"

	"github.com/google/uuid"
)

// Repository loads report history and interaction rows. Read-only:
// reports are written by the intake pipeline, never by this service.
type Repository interface {
	// ListReportsByPatient returns all reports for a patient, newest
	// first.
	ListReportsByPatient(ctx context.Context, patientID uuid.UUID) ([]*Report, error)
	// ListInteractionsByReport returns the structured interaction rows
	// recorded against one report.
	ListInteractionsByReport(ctx context.Context, reportID uuid.UUID) ([]*Interaction, error)
}
