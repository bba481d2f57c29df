package record

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/marqhealth/clinic/internal/domain/patient"
)

type mockPatientRepo struct {
	patients map[uuid.UUID]*patient.Patient
}

func (m *mockPatientRepo) GetByID(ctx context.Context, id uuid.UUID) (*patient.Patient, error) {
	p, ok := m.patients[id]
	if !ok {
		return nil, errors.New("no rows")
	}
	return p, nil
}

func (m *mockPatientRepo) Search(ctx context.Context, query string, limit int) ([]*patient.Summary, error) {
	return nil, nil
}

func newViewFixture() (*Service, *patient.Patient, *Report, *Report, *mockRecordRepo) {
	p := &patient.Patient{
		ID:        uuid.New(),
		FullName:  "Maria Silva",
		BirthDate: strptr("15/06/1990"),
	}
	newer := &Report{ID: uuid.New(), PatientID: p.ID, CreatedAt: time.Now()}
	older := &Report{ID: uuid.New(), PatientID: p.ID, CreatedAt: time.Now().Add(-48 * time.Hour)}

	records := &mockRecordRepo{
		reports: []*Report{newer, older},
		interactions: map[uuid.UUID][]*Interaction{
			newer.ID: {interaction(TypeIncomodo, "Acne")},
			older.ID: {interaction(TypeWishlist, "Peeling")},
		},
	}
	patients := &mockPatientRepo{patients: map[uuid.UUID]*patient.Patient{p.ID: p}}
	return NewService(patients, records, zerolog.Nop()), p, newer, older, records
}

func TestServiceViewDefaultsToNewestReport(t *testing.T) {
	svc, p, newer, _, _ := newViewFixture()

	out, err := svc.View(context.Background(), p.ID, nil)
	if err != nil {
		t.Fatalf("View: %v", err)
	}
	if out.View == nil {
		t.Fatal("expected a reconciled view")
	}
	if out.View.ReportID != newer.ID {
		t.Errorf("selected %v, want newest %v", out.View.ReportID, newer.ID)
	}
	if len(out.View.Concerns) != 1 || out.View.Concerns[0] != "Acne" {
		t.Errorf("concerns = %v", out.View.Concerns)
	}
	if len(out.Reports) != 2 {
		t.Errorf("history = %d entries, want 2", len(out.Reports))
	}
	if out.View.AgeDisplay == "N/A" {
		t.Error("age should derive from the birth date")
	}
}

func TestServiceViewSelectsNamedReport(t *testing.T) {
	svc, p, _, older, _ := newViewFixture()

	out, err := svc.View(context.Background(), p.ID, &older.ID)
	if err != nil {
		t.Fatalf("View: %v", err)
	}
	if out.View.ReportID != older.ID {
		t.Errorf("selected %v, want %v", out.View.ReportID, older.ID)
	}
	if len(out.View.LovedProcedures) != 1 || out.View.LovedProcedures[0] != "Peeling" {
		t.Errorf("loved = %v", out.View.LovedProcedures)
	}
}

func TestServiceViewUnknownReport(t *testing.T) {
	svc, p, _, _, _ := newViewFixture()
	bogus := uuid.New()
	if _, err := svc.View(context.Background(), p.ID, &bogus); !errors.Is(err, ErrReportNotFound) {
		t.Fatalf("err = %v, want ErrReportNotFound", err)
	}
}

func TestServiceViewUnknownPatient(t *testing.T) {
	svc, _, _, _, _ := newViewFixture()
	if _, err := svc.View(context.Background(), uuid.New(), nil); !errors.Is(err, ErrPatientNotFound) {
		t.Fatalf("err = %v, want ErrPatientNotFound", err)
	}
}

func TestServiceViewFailsSoftOnInteractionFetch(t *testing.T) {
	// A transient interaction-store fault on the default (newest) report
	// must not fail the view: the report renders with empty buckets.
	svc, p, newer, _, records := newViewFixture()
	records.interactionsErr = errors.New("timeout")

	out, err := svc.View(context.Background(), p.ID, nil)
	if err != nil {
		t.Fatalf("View must fail soft on interaction fetch failure, got error: %v", err)
	}
	if out.View == nil {
		t.Fatal("expected a reconciled view for the selected report")
	}
	if out.View.ReportID != newer.ID {
		t.Errorf("selected %v, want newest %v", out.View.ReportID, newer.ID)
	}
	if len(out.View.Concerns) != 0 || len(out.View.LovedProcedures) != 0 {
		t.Errorf("buckets must be empty, got %v / %v", out.View.Concerns, out.View.LovedProcedures)
	}
	if out.View.AgeDisplay == "N/A" {
		t.Error("demographics must still render")
	}
}

func TestServiceViewFailsSoftOnHistoryFetch(t *testing.T) {
	// A failed report-history fetch degrades to an empty history.
	svc, p, _, _, records := newViewFixture()
	records.reportsErr = errors.New("db down")

	out, err := svc.View(context.Background(), p.ID, nil)
	if err != nil {
		t.Fatalf("View must fail soft on history fetch failure, got error: %v", err)
	}
	if out.View != nil {
		t.Errorf("view = %v, want nil without a selectable report", out.View)
	}
	if len(out.Reports) != 0 {
		t.Errorf("history = %v, want empty", out.Reports)
	}
	if out.Patient.FullName != p.FullName {
		t.Error("demographics should still be returned")
	}
}

func TestServiceViewNoReports(t *testing.T) {
	p := &patient.Patient{ID: uuid.New(), FullName: "Sem Histórico"}
	svc := NewService(
		&mockPatientRepo{patients: map[uuid.UUID]*patient.Patient{p.ID: p}},
		&mockRecordRepo{},
		zerolog.Nop(),
	)

	out, err := svc.View(context.Background(), p.ID, nil)
	if err != nil {
		t.Fatalf("View: %v", err)
	}
	if out.View != nil {
		t.Errorf("view = %v, want nil for empty history", out.View)
	}
	if out.Patient.FullName != "Sem Histórico" {
		t.Error("demographics should still be returned")
	}
	if len(out.Reports) != 0 {
		t.Errorf("history = %v, want empty", out.Reports)
	}
}
