package validators

import (
	"net/http"
	"strconv"
	"strings"
)

// QueryLimit reads an integer query parameter leniently. Absent, malformed,
// zero, or negative values all fall back to the default; a limit problem is
// never worth failing a read-only report over.
func QueryLimit(r *http.Request, key string, defaultVal int) int {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return defaultVal
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return defaultVal
	}
	return value
}
