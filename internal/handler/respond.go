package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/bhushansable/Gurukrupa-Mess/internal/api"
	"github.com/bhushansable/Gurukrupa-Mess/internal/memstore"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("ERROR: failed to encode JSON response: %v", err)
	}
}

// writeDetail writes the {"detail": "..."} error body clients display.
func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

// decodeBody decodes the JSON request body into v and runs its validation,
// answering 422 on failure.
func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := decodeRaw(r, v); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, "invalid request body")
		return false
	}
	if val, ok := v.(interface{ Validate() error }); ok {
		if err := val.Validate(); err != nil {
			writeDetail(w, http.StatusUnprocessableEntity, err.Error())
			return false
		}
	}
	return true
}

func decodeRaw(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// writeStoreError maps store errors to responses. notFound is the detail
// used for memstore.ErrNotFound.
func writeStoreError(w http.ResponseWriter, err error, notFound string) {
	if errors.Is(err, memstore.ErrNotFound) {
		writeDetail(w, http.StatusNotFound, notFound)
		return
	}
	log.Printf("ERROR: store: %v", err)
	writeDetail(w, http.StatusInternalServerError, "Internal server error")
}

// userOf returns the public projection of the stored account.
func userOf(u memstore.User) api.User {
	return u.User
}
