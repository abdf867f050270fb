package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	perr "shuardict/internal/platform/errors"
)

// Param returns a path parameter by name
func Param(r *http.Request, name string) string {
	return chi.URLParam(r, name)
}

// UUIDParam returns a path parameter validated as a UUID
func UUIDParam(r *http.Request, name string) (string, error) {
	v := chi.URLParam(r, name)
	if _, err := uuid.Parse(v); err != nil {
		return "", perr.Validationf("%s must be a valid uuid", name)
	}
	return v, nil
}
