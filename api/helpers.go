package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"transport-admin/backend"
)

func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// respondError writes the {"detail": ...} error shape shared with the
// remote backend.
func respondError(w http.ResponseWriter, status int, detail string) {
	respondJSON(w, status, map[string]string{"detail": detail})
}

// respondBackendError forwards the backend's status and detail, or 502
// when the backend could not be reached at all.
func respondBackendError(w http.ResponseWriter, err error) {
	if apiErr, ok := err.(*backend.APIError); ok {
		respondError(w, apiErr.StatusCode, apiErr.Message)
		return
	}
	respondError(w, http.StatusBadGateway, "backend unreachable")
}

func pathID(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)[name], 10, 64)
}

func decodeBody(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// queryID reads an optional integer query parameter, zero when absent.
func queryID(r *http.Request, name string) int64 {
	id, _ := strconv.ParseInt(r.URL.Query().Get(name), 10, 64)
	return id
}
