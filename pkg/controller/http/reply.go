package http

import (
	"encoding/json"
	"net/http"

	"github.com/m-mizutani/goerr/v2"

	"github.com/forage-labs/stitch/pkg/domain/model"
	"github.com/forage-labs/stitch/pkg/usecase"
	"github.com/forage-labs/stitch/pkg/utils/errutil"
)

// replyHandler drafts a reply for a full ticket conversation
func replyHandler(uc *usecase.UseCases) http.HandlerFunc {
	type request struct {
		Subject           string `json:"subject"`
		Conversation      string `json:"conversation"`
		CustomerFirstName string `json:"customerFirstName"`
		UserInstruction   string `json:"userInstruction"`
	}
	type response struct {
		Success  bool   `json:"success"`
		Response string `json:"response"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			errutil.HandleHTTP(ctx, w, goerr.Wrap(err, "invalid request body"), http.StatusBadRequest)
			return
		}

		text, err := uc.Reply.DraftReply(ctx, &model.ConversationContext{
			Subject:           req.Subject,
			Conversation:      req.Conversation,
			CustomerFirstName: req.CustomerFirstName,
			Instruction:       req.UserInstruction,
		})
		if err != nil {
			errutil.HandleHTTP(ctx, w, err, statusOf(err))
			return
		}

		writeJSON(w, http.StatusOK, response{
			Success:  true,
			Response: text,
		})
	}
}
