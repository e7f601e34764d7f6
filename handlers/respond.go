package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Error().Err(err).Msg("Error encoding JSON response")
		}
	}
}

// parseIDParam reads a numeric path segment. The router already restricts the
// segment to digits, so only overflow ends up here.
func parseIDParam(w http.ResponseWriter, r *http.Request, param, label string) (uint, bool) {
	idStr := chi.URLParam(r, param)
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": fmt.Sprintf("Invalid %s ID format", label)})
		return 0, false
	}
	return uint(id), true
}

// serveList writes every row of a resource through its flat projection
func serveList[T any, R any](
	w http.ResponseWriter,
	r *http.Request,
	resource string,
	list func(context.Context) ([]T, error),
	project func(*T) R,
) {
	rows, err := list(r.Context())
	if err != nil {
		log.Error().Err(err).Str("resource", resource).Msg("Error listing resource")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to retrieve " + resource})
		return
	}

	result := make([]R, 0, len(rows))
	for i := range rows {
		result = append(result, project(&rows[i]))
	}
	writeJSON(w, http.StatusOK, result)
}

// serveOne looks a row up by the numeric path parameter and writes its projection,
// or notFoundBody with a 404 when the row does not exist
func serveOne[T any, R any](
	w http.ResponseWriter,
	r *http.Request,
	param string,
	resource string,
	notFoundBody map[string]string,
	get func(context.Context, uint) (*T, error),
	project func(*T) R,
) {
	id, ok := parseIDParam(w, r, param, resource)
	if !ok {
		return
	}

	row, err := get(r.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			writeJSON(w, http.StatusNotFound, notFoundBody)
		} else {
			log.Error().Err(err).Str("resource", resource).Uint("id", id).Msg("Error getting resource")
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to retrieve " + resource})
		}
		return
	}

	writeJSON(w, http.StatusOK, project(row))
}

// errorBody is the 404 shape used by every resource except users
func errorBody(msg string) map[string]string {
	return map[string]string{"error": msg}
}

func messageBody(msg string) map[string]string {
	return map[string]string{"message": msg}
}
