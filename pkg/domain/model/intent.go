package model

import "github.com/forage-labs/stitch/pkg/domain/types"

// IntentResult is the outcome of classifying a customer message.
// RawResponse keeps the unmodified model output for diagnostics.
// Intent is passed through uninterpreted from the model; callers that
// act on it check Actionable() against the known categories.
type IntentResult struct {
	Intent      types.Intent `json:"intent"`
	OrderNumber string       `json:"order_number,omitempty"`
	RawResponse string       `json:"-"`
}

// Actionable reports whether the result should trigger notifications
func (r *IntentResult) Actionable() bool {
	return r.Intent.Actionable()
}
