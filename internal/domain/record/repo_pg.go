package record

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

func (r *repoPG) ListReportsByPatient(ctx context.Context, patientID uuid.UUID) ([]*Report, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, patient_id, created_at, ai_suggestion, selecionados_face, selecionados_body
		FROM reports
		WHERE patient_id = $1
		ORDER BY created_at DESC`, patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reports []*Report
	for rows.Next() {
		var rep Report
		if err := rows.Scan(&rep.ID, &rep.PatientID, &rep.CreatedAt,
			&rep.AISuggestion, &rep.SelecionadosFace, &rep.SelecionadosBody); err != nil {
			return nil, err
		}
		reports = append(reports, &rep)
	}
	return reports, rows.Err()
}

func (r *repoPG) ListInteractionsByReport(ctx context.Context, reportID uuid.UUID) ([]*Interaction, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, report_id, interaction_type, target_value
		FROM patient_interactions
		WHERE report_id = $1`, reportID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var interactions []*Interaction
	for rows.Next() {
		var it Interaction
		if err := rows.Scan(&it.ID, &it.ReportID, &it.InteractionType, &it.TargetValue); err != nil {
			return nil, err
		}
		interactions = append(interactions, &it)
	}
	return interactions, rows.Err()
}
