package model

// TicketEvent is the normalized form of an inbound ticketing webhook.
// Two body shapes feed into it: the flat {ticket_id, comment,
// customer_email} payload and the {detail:{id, subject, description,
// requester_id}} envelope. Exactly one of CustomerEmail or RequesterID
// is usually populated, depending on the shape.
type TicketEvent struct {
	TicketID      int64
	Subject       string
	Comment       string
	CustomerEmail string
	RequesterID   int64
}

// Requester is the resolved contact of the person who opened a ticket
type Requester struct {
	Name  string
	Email string
}
