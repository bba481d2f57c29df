package patient

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

// MinQueryLength is the shortest trimmed query that reaches the store.
// Anything shorter returns an empty result without a lookup.
const MinQueryLength = 2

// DefaultSearchLimit caps results when the caller does not say otherwise.
const DefaultSearchLimit = 10

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*Patient, error) {
	return s.repo.GetByID(ctx, id)
}

// Search returns candidate patients for a partial query. The caller is
// expected to debounce input (the UI waits 300ms of quiet before calling);
// this service only enforces the length floor and the result cap.
func (s *Service) Search(ctx context.Context, query string, limit int) ([]*Summary, error) {
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < MinQueryLength {
		return nil, nil
	}
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	return s.repo.Search(ctx, query, limit)
}
