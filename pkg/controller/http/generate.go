package http

import (
	"encoding/json"
	"net/http"

	"github.com/m-mizutani/goerr/v2"

	"github.com/forage-labs/stitch/pkg/usecase"
	"github.com/forage-labs/stitch/pkg/utils/errutil"
)

// generateHandler drafts a reply suggestion for a single customer
// message
func generateHandler(uc *usecase.UseCases) http.HandlerFunc {
	type request struct {
		CustomerMessage string `json:"customerMessage"`
	}
	type response struct {
		Success           bool   `json:"success"`
		Suggestion        string `json:"suggestion"`
		SimilarCasesCount int    `json:"similarCasesCount"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			errutil.HandleHTTP(ctx, w, goerr.Wrap(err, "invalid request body"), http.StatusBadRequest)
			return
		}

		suggestion, err := uc.Reply.GenerateSuggestion(ctx, req.CustomerMessage)
		if err != nil {
			errutil.HandleHTTP(ctx, w, err, statusOf(err))
			return
		}

		writeJSON(w, http.StatusOK, response{
			Success:           true,
			Suggestion:        suggestion.Text,
			SimilarCasesCount: suggestion.SimilarCases,
		})
	}
}
