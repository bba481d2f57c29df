package pagination

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func limitFor(t *testing.T, query string) int {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/?"+query, nil)
	return LimitFromContext(e.NewContext(req, httptest.NewRecorder()))
}

func TestLimitFromContext(t *testing.T) {
	if got := limitFor(t, ""); got != DefaultLimit {
		t.Errorf("missing limit: got %d, want %d", got, DefaultLimit)
	}
	if got := limitFor(t, "limit=5"); got != 5 {
		t.Errorf("limit=5: got %d", got)
	}
	if got := limitFor(t, "limit=0"); got != DefaultLimit {
		t.Errorf("limit=0: got %d, want %d", got, DefaultLimit)
	}
	if got := limitFor(t, "limit=-3"); got != DefaultLimit {
		t.Errorf("negative limit: got %d, want %d", got, DefaultLimit)
	}
	if got := limitFor(t, "limit=500"); got != MaxLimit {
		t.Errorf("oversized limit: got %d, want %d", got, MaxLimit)
	}
	if got := limitFor(t, "limit=abc"); got != DefaultLimit {
		t.Errorf("garbage limit: got %d, want %d", got, DefaultLimit)
	}
}
