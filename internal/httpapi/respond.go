package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/alexanderramin/debtpad/internal/domain"
	"github.com/alexanderramin/debtpad/internal/service"
	"github.com/alexanderramin/debtpad/internal/snapshot"
	"github.com/tidwall/gjson"
)

const maxBodyBytes = 4 << 20

var errBadBody = errors.New("request body must be a JSON object")

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// fail maps service errors onto status codes.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case domain.IsValidation(err),
		errors.Is(err, snapshot.ErrMalformedSnapshot),
		errors.Is(err, errBadBody):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrAmbiguousID):
		writeError(w, http.StatusConflict, err.Error())
	default:
		s.logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

// readObject reads a JSON object body. Field values are read leniently by
// the handlers.
func readObject(r *http.Request) (gjson.Result, error) {
	data, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return gjson.Result{}, err
	}
	if !gjson.ValidBytes(data) {
		return gjson.Result{}, errBadBody
	}
	obj := gjson.ParseBytes(data)
	if !obj.IsObject() {
		return gjson.Result{}, errBadBody
	}
	return obj, nil
}

// field returns a value as text whether it was sent as a string or a number.
func field(obj gjson.Result, name string) string {
	v := obj.Get(name)
	switch v.Type {
	case gjson.Number:
		return v.Raw
	case gjson.String:
		return v.Str
	}
	return ""
}
