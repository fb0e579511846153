package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"taskboard-api/internal/api/shared"
)

// pathID parses the {id} route parameter. On a malformed id it writes a
// 400 response and reports false.
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid id")
		return 0, false
	}
	return id, true
}

// queryInt64 parses an optional integer query parameter. A missing or
// empty parameter yields (nil, true); a malformed one yields (nil, false).
func queryInt64(r *http.Request, name string) (*int64, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, true
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, false
	}
	return &v, true
}
