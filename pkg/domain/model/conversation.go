package model

// ConversationContext is one immutable snapshot of a ticket
// conversation, built once per incoming generation request.
type ConversationContext struct {
	// Subject is the ticket subject line
	Subject string
	// Conversation is the full transcript, newline-delimited turns
	// with role/author/timestamp annotations as Zendesk renders them
	Conversation string
	// CustomerFirstName is the requester's first name, used for the
	// opening salutation
	CustomerFirstName string
	// Instruction is a free-text operator instruction for this draft
	Instruction string
}
