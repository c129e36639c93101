package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/chraietrayen/PFE/internal/handler/http/response"
	"github.com/chraietrayen/PFE/internal/pkg/validator"
)

// parsePeriod reads the {year} and {month} URL params. It writes the error
// response itself and reports ok=false when either param is unusable.
func parsePeriod(w http.ResponseWriter, r *http.Request) (year int, month time.Month, ok bool) {
	year, ok = parseYear(w, r)
	if !ok {
		return 0, 0, false
	}

	monthNum, err := strconv.Atoi(chi.URLParam(r, "month"))
	if err != nil || !validator.IsValidMonth(monthNum) {
		response.BadRequest(w, "Month must be a number between 1 and 12", nil)
		return 0, 0, false
	}

	return year, time.Month(monthNum), true
}

func parseYear(w http.ResponseWriter, r *http.Request) (int, bool) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil || !validator.IsValidYear(year) {
		response.BadRequest(w, "Year must be a number between 2000 and 2100", nil)
		return 0, false
	}
	return year, true
}
