package record

import (
	"strings"
	"time"

	"github.com/marqhealth/clinic/internal/domain/patient"
)

// Reconcile merges the structured interaction rows of one report with the
// patient's legacy selection columns into a single display view.
//
// Interactions are partitioned by type into the four category buckets.
// The legacy columns feed the concerns bucket only, and only when the
// report carried no INCOMODO rows at all: structured data, once present,
// fully shadows the legacy columns. Report-level selection overrides win
// over the patient-level columns per column.
func Reconcile(p *patient.Patient, rep *Report, interactions []*Interaction, now time.Time) *ReconciledView {
	v := &ReconciledView{
		Concerns:          []string{},
		LovedProcedures:   []string{},
		OtherInterests:    []string{},
		SkincareInterests: []string{},
		AgeDisplay:        AgeDisplay(p.BirthDate, now),
		Anamnesis:         anamnesisItems(p),
	}
	if rep != nil {
		v.ReportID = rep.ID
		v.ReportCreatedAt = rep.CreatedAt
		if rep.AISuggestion != nil {
			v.AISuggestion = *rep.AISuggestion
		}
	}

	for _, it := range interactions {
		val := strings.TrimSpace(it.TargetValue)
		if val == "" {
			continue
		}
		switch it.InteractionType {
		case TypeIncomodo:
			v.Concerns = append(v.Concerns, val)
		case TypeWishlist:
			v.LovedProcedures = append(v.LovedProcedures, val)
		case TypeInteresse:
			v.OtherInterests = append(v.OtherInterests, val)
		case TypeSkincare:
			v.SkincareInterests = append(v.SkincareInterests, val)
		}
		// unknown types are ignored, not errors: the set is open
	}

	if len(v.Concerns) == 0 {
		legacy, malformed := legacySelections(p, rep)
		if len(legacy) > 0 {
			v.Concerns = legacy
			v.ConcernsFromLegacy = true
		}
		v.malformedLegacy = malformed
	}
	return v
}

// legacySelections builds the face-then-body union of the legacy columns,
// deduplicated by trimmed equality keeping the first occurrence. The
// report's own columns take precedence over the patient's column by
// column. Also returns the names of columns that failed structured
// parsing.
func legacySelections(p *patient.Patient, rep *Report) ([]string, []string) {
	face := p.SelecionadosFace
	body := p.SelecionadosBody
	if rep != nil {
		if rep.SelecionadosFace != nil {
			face = rep.SelecionadosFace
		}
		if rep.SelecionadosBody != nil {
			body = rep.SelecionadosBody
		}
	}

	var malformed []string
	faceVals, bad := normalizeSelections(face)
	if bad {
		malformed = append(malformed, "selecionados_face")
	}
	bodyVals, bad := normalizeSelections(body)
	if bad {
		malformed = append(malformed, "selecionados_body")
	}

	seen := make(map[string]struct{}, len(faceVals)+len(bodyVals))
	out := make([]string, 0, len(faceVals)+len(bodyVals))
	for _, v := range append(faceVals, bodyVals...) {
		key := strings.TrimSpace(v)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, key)
	}
	return out, malformed
}

// anamnesisItems flattens the intake answers into labeled rows, dropping
// everything the emptiness rules classify as absent. Labels match the
// clinic's pt-BR forms.
func anamnesisItems(p *patient.Patient) []AnamnesisItem {
	fields := []struct {
		label string
		value *string
	}{
		{"Gênero", p.Gender},
		{"Preferência de Tratamento", p.FormalityPreference},
		{"Procedimentos Anteriores", p.PreviousProcedures},
		{"Doença Crônica", p.ChronicDisease},
		{"Descrição da Doença Crônica", p.ChronicDiseaseDesc},
		{"Alergias", p.Allergies},
		{"Descrição das Alergias", p.AllergiesDesc},
		{"Medicação Contínua", p.ContinuousMedication},
		{"Descrição da Medicação Contínua", p.ContinuousMedicationDesc},
		{"Câncer de Pele na Família", p.FamilySkinCancer},
		{"Quem na Família", p.FamilySkinCancerWho},
		{"Histórico Dermatológico", p.DermatologicalHistory},
		{"Histórico de Tratamentos", p.TreatmentHistory},
		{"Como Conheceu a Clínica", p.ReferralSource},
		{"Quem Indicou", p.ReferrerName},
		{"Rotina de Skincare", p.SkincareRoutine},
	}
	out := make([]AnamnesisItem, 0, len(fields))
	for _, f := range fields {
		if ShouldShowField(f.value) {
			out = append(out, AnamnesisItem{Label: f.label, Value: FormatFieldValue(f.value)})
		}
	}
	return out
}
