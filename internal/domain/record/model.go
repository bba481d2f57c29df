package record

import (
	"time"

	"github.com/google/uuid"
)

// Report maps to the reports table: one clinical visit. Reports may carry
// their own copies of the legacy selection columns, which override the
// patient-level ones when present. Immutable from this service's side.
type Report struct {
	ID               uuid.UUID `db:"id" json:"id"`
	PatientID        uuid.UUID `db:"patient_id" json:"patient_id"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`
	AISuggestion     *string   `db:"ai_suggestion" json:"ai_suggestion,omitempty"`
	SelecionadosFace *string   `db:"selecionados_face" json:"selecionados_face,omitempty"`
	SelecionadosBody *string   `db:"selecionados_body" json:"selecionados_body,omitempty"`
}

// Interaction is one structured tag recorded against a report.
type Interaction struct {
	ID              uuid.UUID `db:"id" json:"id"`
	ReportID        uuid.UUID `db:"report_id" json:"report_id"`
	InteractionType string    `db:"interaction_type" json:"interaction_type"`
	TargetValue     string    `db:"target_value" json:"target_value"`
}

// Known interaction types. The set is open: rows with types not listed
// here are ignored by the display buckets, never rejected.
const (
	TypeIncomodo  = "INCOMODO"  // concern
	TypeWishlist  = "WISHLIST"  // loved procedure
	TypeInteresse = "INTERESSE" // other area of interest
	TypeSkincare  = "SKINCARE"  // skincare interest
)

// ReportSummary is the shape of the history sidebar: enough to pick a
// report from the visit list.
type ReportSummary struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

// AnamnesisItem is one labeled intake answer that survived emptiness
// filtering.
type AnamnesisItem struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// ReconciledView is the canonical display set for one selected report:
// the four category lists, the derived age, the filtered anamnesis answers
// and the report's AI suggestion text verbatim.
type ReconciledView struct {
	ReportID        uuid.UUID `json:"report_id"`
	ReportCreatedAt time.Time `json:"report_created_at"`

	Concerns          []string `json:"concerns"`
	LovedProcedures   []string `json:"loved_procedures"`
	OtherInterests    []string `json:"other_interests"`
	SkincareInterests []string `json:"skincare_interests"`

	// ConcernsFromLegacy marks that the concerns list came from the
	// legacy selection columns because the report had no structured
	// concern rows.
	ConcernsFromLegacy bool `json:"concerns_from_legacy"`

	AgeDisplay   string          `json:"age_display"`
	Anamnesis    []AnamnesisItem `json:"anamnesis"`
	AISuggestion string          `json:"ai_suggestion,omitempty"`

	// malformedLegacy names legacy columns that looked structured but
	// failed to parse; the service logs them for offline backfill.
	malformedLegacy []string
}
