package web

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
)

// ParseOptionalPositive reads an optional positive integer query parameter.
// A missing parameter yields the fallback; a present one must parse as an
// integer greater than zero or the request is rejected with 400.
func ParseOptionalPositive(r *http.Request, w http.ResponseWriter, logger *slog.Logger, key string, fallback int) (int, bool) {
	value := r.URL.Query().Get(key)
	if value == "" {
		return fallback, true
	}
	intValue, err := strconv.ParseInt(value, 10, 32)
	if err != nil || intValue <= 0 {
		RespondError(w, logger, http.StatusBadRequest, fmt.Sprintf("Invalid %s number: %s", key, value))
		return 0, false
	}
	return int(intValue), true
}
