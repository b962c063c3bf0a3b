package errutil

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/goerr/v2"

	"github.com/forage-labs/stitch/pkg/utils/logging"
	"github.com/forage-labs/stitch/pkg/utils/safe"
)

// report forwards the error to Sentry when a DSN was configured at
// startup. No-op otherwise.
func report(err error) {
	if hub := sentry.CurrentHub(); hub.Client() != nil {
		hub.CaptureException(err)
	}
}

// Handle logs the error with a message and returns it unchanged.
// Ensures that all errors, especially 5xx errors, are properly logged.
func Handle(ctx context.Context, err error, msg string) error {
	if err == nil {
		return nil
	}

	logger := logging.From(ctx)

	var ge *goerr.Error
	if errors.As(err, &ge) {
		logger.Error(msg,
			"error", err.Error(),
			"values", ge.Values(),
			"stack", ge.Stacks(),
		)
	} else {
		logger.Error(msg, "error", err.Error())
	}

	report(err)

	return err
}

// HandleHTTP logs the error and writes a JSON error response with the
// shape {success:false, error:...} that all API routes share.
func HandleHTTP(ctx context.Context, w http.ResponseWriter, err error, statusCode int) {
	if err == nil {
		return
	}

	logger := logging.From(ctx)

	var ge *goerr.Error
	if errors.As(err, &ge) {
		logger.Error("HTTP error",
			"status", statusCode,
			"error", err.Error(),
			"values", ge.Values(),
			"stack", ge.Stacks(),
		)
	} else {
		logger.Error("HTTP error",
			"status", statusCode,
			"error", err.Error(),
		)
	}

	if statusCode >= http.StatusInternalServerError {
		report(err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	body, encErr := json.Marshal(map[string]any{
		"success": false,
		"error":   err.Error(),
	})
	if encErr != nil {
		logger.Error("failed to encode error response", "error", encErr)
		return
	}
	safe.Write(ctx, w, body)
}
