package patient

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

const patientCols = `id, full_name, cpf, phone, email, birth_date, gender,
	formality_preference, previous_procedures,
	chronic_disease, chronic_disease_description,
	allergies, allergies_description,
	continuous_medication, continuous_medication_description,
	family_skin_cancer, family_skin_cancer_who,
	dermatological_history, treatment_history,
	referral_source, referrer_name, skincare_routine,
	selecionados_face, selecionados_body, created_at`

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Patient, error) {
	return scanPatient(r.pool.QueryRow(ctx, `SELECT `+patientCols+` FROM patients WHERE id = $1`, id))
}

// likeEscaper neutralizes LIKE metacharacters so a query like "10%" is
// matched as a literal substring, not a wildcard.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func (r *repoPG) Search(ctx context.Context, query string, limit int) ([]*Summary, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, full_name, cpf FROM patients
		WHERE full_name ILIKE $1 OR cpf ILIKE $1 OR phone ILIKE $1
		ORDER BY full_name
		LIMIT $2`, "%"+likeEscaper.Replace(query)+"%", limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []*Summary
	for rows.Next() {
		var s Summary
		if err := rows.Scan(&s.ID, &s.FullName, &s.CPF); err != nil {
			return nil, err
		}
		results = append(results, &s)
	}
	return results, rows.Err()
}

func scanPatient(row pgx.Row) (*Patient, error) {
	var p Patient
	err := row.Scan(
		&p.ID, &p.FullName, &p.CPF, &p.Phone, &p.Email, &p.BirthDate, &p.Gender,
		&p.FormalityPreference, &p.PreviousProcedures,
		&p.ChronicDisease, &p.ChronicDiseaseDesc,
		&p.Allergies, &p.AllergiesDesc,
		&p.ContinuousMedication, &p.ContinuousMedicationDesc,
		&p.FamilySkinCancer, &p.FamilySkinCancerWho,
		&p.DermatologicalHistory, &p.TreatmentHistory,
		&p.ReferralSource, &p.ReferrerName, &p.SkincareRoutine,
		&p.SelecionadosFace, &p.SelecionadosBody, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
