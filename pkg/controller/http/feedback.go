package http

import (
	"encoding/json"
	"net/http"

	"github.com/m-mizutani/goerr/v2"

	"github.com/forage-labs/stitch/pkg/domain/model"
	"github.com/forage-labs/stitch/pkg/domain/types"
	"github.com/forage-labs/stitch/pkg/usecase"
	"github.com/forage-labs/stitch/pkg/utils/errutil"
)

// feedbackHandler records an agent's rating of a generated suggestion
func feedbackHandler(uc *usecase.UseCases) http.HandlerFunc {
	type request struct {
		CustomerMessage string `json:"customerMessage"`
		GPTSuggestion   string `json:"gptSuggestion"`
		FinalResponse   string `json:"finalResponse"`
		Feedback        string `json:"feedback"`
	}
	type response struct {
		Success bool   `json:"success"`
		ID      string `json:"id"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			errutil.HandleHTTP(ctx, w, goerr.Wrap(err, "invalid request body"), http.StatusBadRequest)
			return
		}

		rating, err := types.ParseFeedbackRating(req.Feedback)
		if err != nil {
			errutil.HandleHTTP(ctx, w, goerr.Wrap(err, "invalid feedback rating"), http.StatusBadRequest)
			return
		}

		fb := &model.Feedback{
			CustomerMessage: req.CustomerMessage,
			Suggestion:      req.GPTSuggestion,
			FinalResponse:   req.FinalResponse,
			Rating:          rating,
		}
		if err := fb.Validate(); err != nil {
			errutil.HandleHTTP(ctx, w, err, http.StatusBadRequest)
			return
		}

		created, err := uc.Feedback.Record(ctx, fb)
		if err != nil {
			errutil.HandleHTTP(ctx, w, err, http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, response{
			Success: true,
			ID:      created.ID.String(),
		})
	}
}
