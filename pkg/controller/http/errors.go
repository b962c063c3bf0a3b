package http

import (
	"errors"
	"net/http"

	"github.com/forage-labs/stitch/pkg/usecase"
)

// statusOf maps use case errors to HTTP status codes. Validation
// sentinels become 400, everything else is a 500.
func statusOf(err error) int {
	switch {
	case errors.Is(err, usecase.ErrEmptyMessage),
		errors.Is(err, usecase.ErrEmptyConversation),
		errors.Is(err, usecase.ErrInvalidEvent):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
