package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"

	"github.com/forage-labs/stitch/pkg/domain/model"
	"github.com/forage-labs/stitch/pkg/service/zendesk"
)

// RequesterResolver turns a ticket event into the contact of the
// person who opened the ticket. The inbound webhook shapes differ in
// how they identify the customer, so resolution is pluggable.
type RequesterResolver interface {
	Resolve(ctx context.Context, event *model.TicketEvent) (*model.Requester, error)
}

type requesterResolver struct {
	ticket zendesk.Service
}

// NewRequesterResolver returns the default resolver. Events carrying a
// requester ID are looked up through the ticketing API; events carrying
// the customer email inline are used as-is.
func NewRequesterResolver(ticket zendesk.Service) RequesterResolver {
	return &requesterResolver{ticket: ticket}
}

func (r *requesterResolver) Resolve(ctx context.Context, event *model.TicketEvent) (*model.Requester, error) {
	if event.RequesterID != 0 && r.ticket != nil {
		user, err := r.ticket.GetUser(ctx, event.RequesterID)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to resolve requester",
				goerr.V("requester_id", event.RequesterID),
			)
		}
		return &model.Requester{Name: user.Name, Email: user.Email}, nil
	}

	return &model.Requester{Email: event.CustomerEmail}, nil
}
