package pagination

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

const (
	// DefaultLimit matches the search contract: at most ten candidates
	// unless the caller asks for fewer.
	DefaultLimit = 10
	MaxLimit     = 50
)

// LimitFromContext extracts a result cap from the request, clamped to
// [1, MaxLimit], defaulting to DefaultLimit.
func LimitFromContext(c echo.Context) int {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}
