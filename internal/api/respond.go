package api

import (
	"encoding/json"
	"net/http"

	"github.com/FilippoRanza/simplegraph/pkg/errors"
)

// errorBody is the JSON shape of every error response.
type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	var body errorBody
	body.Error.Code = string(errors.GetCode(err))
	if body.Error.Code == "" {
		body.Error.Code = string(errors.ErrCodeInternal)
	}
	body.Error.Message = errors.UserMessage(err)
	writeJSON(w, statusFor(err), body)
}

// statusFor maps error codes onto HTTP statuses. Unknown codes are
// internal errors.
func statusFor(err error) int {
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidForm,
		errors.ErrCodeInvalidManifest,
		errors.ErrCodeInvalidBackend,
		errors.ErrCodeInvalidFormat,
		errors.ErrCodeInvalidWalk,
		errors.ErrCodeInvalidRequest:
		return http.StatusBadRequest
	case errors.ErrCodeGraphNotFound, errors.ErrCodeFileNotFound:
		return http.StatusNotFound
	case errors.ErrCodeUnsupported:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
