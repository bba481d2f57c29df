package patient

import (
	"time"

	"github.com/google/uuid"
)

// Patient maps to the patients table. Intake writes it; this service only
// reads. Birth date is stored as DD/MM/YYYY text, and the two selecionados
// columns predate the structured interaction model: their encoding varies
// between JSON arrays, delimiter-separated text and plain scalars.
type Patient struct {
	ID        uuid.UUID `db:"id" json:"id"`
	FullName  string    `db:"full_name" json:"full_name"`
	CPF       *string   `db:"cpf" json:"cpf,omitempty"`
	Phone     *string   `db:"phone" json:"phone,omitempty"`
	Email     *string   `db:"email" json:"email,omitempty"`
	BirthDate *string   `db:"birth_date" json:"birth_date,omitempty"`
	Gender    *string   `db:"gender" json:"gender,omitempty"`

	// Anamnesis (intake questionnaire)
	FormalityPreference      *string `db:"formality_preference" json:"formality_preference,omitempty"`
	PreviousProcedures       *string `db:"previous_procedures" json:"previous_procedures,omitempty"`
	ChronicDisease           *string `db:"chronic_disease" json:"chronic_disease,omitempty"`
	ChronicDiseaseDesc       *string `db:"chronic_disease_description" json:"chronic_disease_description,omitempty"`
	Allergies                *string `db:"allergies" json:"allergies,omitempty"`
	AllergiesDesc            *string `db:"allergies_description" json:"allergies_description,omitempty"`
	ContinuousMedication     *string `db:"continuous_medication" json:"continuous_medication,omitempty"`
	ContinuousMedicationDesc *string `db:"continuous_medication_description" json:"continuous_medication_description,omitempty"`
	FamilySkinCancer         *string `db:"family_skin_cancer" json:"family_skin_cancer,omitempty"`
	FamilySkinCancerWho      *string `db:"family_skin_cancer_who" json:"family_skin_cancer_who,omitempty"`
	DermatologicalHistory    *string `db:"dermatological_history" json:"dermatological_history,omitempty"`
	TreatmentHistory         *string `db:"treatment_history" json:"treatment_history,omitempty"`
	ReferralSource           *string `db:"referral_source" json:"referral_source,omitempty"`
	ReferrerName             *string `db:"referrer_name" json:"referrer_name,omitempty"`
	SkincareRoutine          *string `db:"skincare_routine" json:"skincare_routine,omitempty"`

	// Legacy selection fields (pre-structured-model)
	SelecionadosFace *string `db:"selecionados_face" json:"selecionados_face,omitempty"`
	SelecionadosBody *string `db:"selecionados_body" json:"selecionados_body,omitempty"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Summary is the shape returned by the search endpoint: just enough to
// pick a patient from a result list.
type Summary struct {
	ID       uuid.UUID `db:"id" json:"id"`
	FullName string    `db:"full_name" json:"full_name"`
	CPF      *string   `db:"cpf" json:"cpf,omitempty"`
}
