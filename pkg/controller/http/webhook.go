package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/m-mizutani/goerr/v2"

	"github.com/forage-labs/stitch/pkg/domain/model"
	"github.com/forage-labs/stitch/pkg/domain/types"
	"github.com/forage-labs/stitch/pkg/usecase"
	"github.com/forage-labs/stitch/pkg/utils/errutil"
)

// flexID accepts a numeric ID sent either as a JSON number or a
// quoted string, which varies across ticketing webhook configurations.
type flexID int64

func (f *flexID) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = 0
		return nil
	}

	n, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return goerr.Wrap(err, "invalid numeric ID", goerr.V("value", string(data)))
	}

	*f = flexID(n)
	return nil
}

// webhookBody covers both inbound shapes: the flat payload sent by a
// simple trigger and the envelope sent by the ticketing system's
// native webhook. The envelope wins when both are present.
type webhookBody struct {
	TicketID      flexID `json:"ticket_id"`
	Comment       string `json:"comment"`
	CustomerEmail string `json:"customer_email"`

	Detail *webhookDetail `json:"detail"`
}

type webhookDetail struct {
	ID          flexID `json:"id"`
	Subject     string `json:"subject"`
	Description string `json:"description"`
	RequesterID flexID `json:"requester_id"`
}

func (b *webhookBody) toEvent() *model.TicketEvent {
	if b.Detail != nil {
		return &model.TicketEvent{
			TicketID:    int64(b.Detail.ID),
			Subject:     b.Detail.Subject,
			Comment:     b.Detail.Description,
			RequesterID: int64(b.Detail.RequesterID),
		}
	}

	return &model.TicketEvent{
		TicketID:      int64(b.TicketID),
		Comment:       b.Comment,
		CustomerEmail: b.CustomerEmail,
	}
}

// webhookHandler classifies an inbound ticket event and dispatches
// notifications
func webhookHandler(uc *usecase.UseCases) http.HandlerFunc {
	type response struct {
		Success      bool         `json:"success"`
		Intent       types.Intent `json:"intent"`
		OrderNumber  string       `json:"order_number,omitempty"`
		ActionsTaken []string     `json:"actions_taken"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var body webhookBody
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			errutil.HandleHTTP(ctx, w, goerr.Wrap(err, "invalid webhook body"), http.StatusBadRequest)
			return
		}

		result, err := uc.Webhook.HandleTicketEvent(ctx, body.toEvent())
		if err != nil {
			errutil.HandleHTTP(ctx, w, err, statusOf(err))
			return
		}

		writeJSON(w, http.StatusOK, response{
			Success:      true,
			Intent:       result.Intent,
			OrderNumber:  result.OrderNumber,
			ActionsTaken: result.Actions,
		})
	}
}
