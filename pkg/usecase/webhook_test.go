package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/forage-labs/stitch/pkg/domain/model"
	"github.com/forage-labs/stitch/pkg/domain/types"
	"github.com/forage-labs/stitch/pkg/repository/memory"
	"github.com/forage-labs/stitch/pkg/service/mailgun"
	"github.com/forage-labs/stitch/pkg/service/openai"
	"github.com/forage-labs/stitch/pkg/service/zendesk"
	"github.com/forage-labs/stitch/pkg/usecase"
)

type mockMailService struct {
	sent    []mailgun.Message
	sendErr error
}

func (m *mockMailService) Send(_ context.Context, msg mailgun.Message) error {
	if m.sendErr != nil {
		return m.sendErr
	}
	m.sent = append(m.sent, msg)
	return nil
}

type mockTicketService struct {
	users      map[int64]*zendesk.User
	notes      map[int64][]string
	getUserErr error
	addNoteErr error
}

func newMockTicketService() *mockTicketService {
	return &mockTicketService{
		users: map[int64]*zendesk.User{},
		notes: map[int64][]string{},
	}
}

func (m *mockTicketService) GetUser(_ context.Context, userID int64) (*zendesk.User, error) {
	if m.getUserErr != nil {
		return nil, m.getUserErr
	}
	user, ok := m.users[userID]
	if !ok {
		return nil, errors.New("user not found")
	}
	return user, nil
}

func (m *mockTicketService) AddInternalNote(_ context.Context, ticketID int64, body string) error {
	if m.addNoteErr != nil {
		return m.addNoteErr
	}
	m.notes[ticketID] = append(m.notes[ticketID], body)
	return nil
}

type mockSlackService struct {
	posts []string
}

func (m *mockSlackService) PostMessage(_ context.Context, channelID, text string) (string, error) {
	m.posts = append(m.posts, channelID+": "+text)
	return "1234.5678", nil
}

func classifyAs(verdict string) func(openai.CompletionRequest) (string, error) {
	return func(openai.CompletionRequest) (string, error) {
		return verdict, nil
	}
}

func TestWebhookUseCase_HandleTicketEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("cancellation triggers exactly one ops mail and one note", func(t *testing.T) {
		ai := &mockAIService{completeFn: classifyAs(`{"intent": "stornierung", "order_number": "654321"}`)}
		mail := &mockMailService{}
		ticket := newMockTicketService()
		ticket.users[9001] = &zendesk.User{ID: 9001, Name: "Anna Schmidt", Email: "anna@example.com"}

		uc := usecase.New(memory.New(), ai,
			usecase.WithMail(mail),
			usecase.WithTicket(ticket),
		)

		result, err := uc.Webhook.HandleTicketEvent(ctx, &model.TicketEvent{
			TicketID:    654321,
			Subject:     "Bestellung stornieren",
			Comment:     "Bitte storniert meine Bestellung 654321!",
			RequesterID: 9001,
		})
		gt.NoError(t, err).Required()

		gt.Value(t, result.Intent).Equal(types.IntentCancellation)
		gt.Value(t, result.OrderNumber).Equal("654321")
		gt.Array(t, result.Actions).Equal([]string{usecase.ActionOpsEmail, usecase.ActionZendeskComment})

		gt.Array(t, mail.sent).Length(1)
		msg := mail.sent[0]
		gt.Value(t, msg.To).Equal("ops@forage-clothing.com")
		gt.Value(t, msg.From).Equal("support@forage-clothing.com")
		gt.Value(t, strings.Contains(msg.Subject, "Stornierung")).Equal(true)
		gt.Value(t, strings.Contains(msg.Text, "Anna Schmidt (anna@example.com)")).Equal(true)
		gt.Value(t, strings.Contains(msg.Text, "654321")).Equal(true)

		notes := ticket.notes[654321]
		gt.Array(t, notes).Length(1)
		gt.Value(t, strings.Contains(notes[0], "Stornierung")).Equal(true)
		gt.Value(t, strings.Contains(notes[0], "654321")).Equal(true)
	})

	t.Run("non-actionable intent causes no side effects", func(t *testing.T) {
		ai := &mockAIService{completeFn: classifyAs(`{"intent": "keine"}`)}
		mail := &mockMailService{}
		ticket := newMockTicketService()

		uc := usecase.New(memory.New(), ai,
			usecase.WithMail(mail),
			usecase.WithTicket(ticket),
		)

		result, err := uc.Webhook.HandleTicketEvent(ctx, &model.TicketEvent{
			TicketID:      1,
			Comment:       "Wann kommt mein Paket?",
			CustomerEmail: "max@example.com",
		})
		gt.NoError(t, err).Required()
		gt.Value(t, result.Intent).Equal(types.IntentNone)
		gt.Array(t, result.Actions).Length(0)
		gt.Array(t, mail.sent).Length(0)
	})

	t.Run("missing order number falls back to unbekannt", func(t *testing.T) {
		ai := &mockAIService{completeFn: classifyAs(`{"intent": "adressänderung"}`)}
		mail := &mockMailService{}

		uc := usecase.New(memory.New(), ai, usecase.WithMail(mail))

		result, err := uc.Webhook.HandleTicketEvent(ctx, &model.TicketEvent{
			TicketID:      2,
			Comment:       "Ich bin umgezogen, bitte neue Adresse!",
			CustomerEmail: "lisa@example.com",
		})
		gt.NoError(t, err).Required()
		gt.Value(t, result.OrderNumber).Equal("")

		gt.Array(t, mail.sent).Length(1)
		gt.Value(t, strings.Contains(mail.sent[0].Text, "Bestellnummer: unbekannt")).Equal(true)
	})

	t.Run("customer confirmation follows policy", func(t *testing.T) {
		ai := &mockAIService{completeFn: classifyAs(`{"intent": "stornierung", "order_number": "4711"}`)}
		mail := &mockMailService{}

		uc := usecase.New(memory.New(), ai,
			usecase.WithMail(mail),
			usecase.WithPolicy(usecase.NotificationPolicy{SendCustomerConfirmation: true}),
		)

		result, err := uc.Webhook.HandleTicketEvent(ctx, &model.TicketEvent{
			TicketID:      3,
			Comment:       "Bitte Bestellung 4711 stornieren",
			CustomerEmail: "tom@example.com",
		})
		gt.NoError(t, err).Required()
		gt.Array(t, result.Actions).Equal([]string{usecase.ActionOpsEmail, usecase.ActionCustomerEmail})

		gt.Array(t, mail.sent).Length(2)
		confirmation := mail.sent[1]
		gt.Value(t, confirmation.To).Equal("tom@example.com")
		gt.Value(t, strings.Contains(confirmation.Text, "4711")).Equal(true)
		gt.Value(t, strings.Contains(confirmation.Text, "Dein FORÀGE Team")).Equal(true)
	})

	t.Run("no confirmation for address change even with policy", func(t *testing.T) {
		ai := &mockAIService{completeFn: classifyAs(`{"intent": "adressänderung"}`)}
		mail := &mockMailService{}

		uc := usecase.New(memory.New(), ai,
			usecase.WithMail(mail),
			usecase.WithPolicy(usecase.NotificationPolicy{SendCustomerConfirmation: true}),
		)

		result, err := uc.Webhook.HandleTicketEvent(ctx, &model.TicketEvent{
			TicketID:      4,
			Comment:       "Neue Adresse bitte",
			CustomerEmail: "eva@example.com",
		})
		gt.NoError(t, err).Required()
		gt.Array(t, result.Actions).Equal([]string{usecase.ActionOpsEmail})
		gt.Array(t, mail.sent).Length(1)
	})

	t.Run("requester resolution failure aborts dispatch", func(t *testing.T) {
		ai := &mockAIService{completeFn: classifyAs(`{"intent": "stornierung"}`)}
		mail := &mockMailService{}
		ticket := newMockTicketService()
		ticket.getUserErr = errors.New("zendesk unavailable")

		uc := usecase.New(memory.New(), ai,
			usecase.WithMail(mail),
			usecase.WithTicket(ticket),
		)

		_, err := uc.Webhook.HandleTicketEvent(ctx, &model.TicketEvent{
			TicketID:    5,
			Comment:     "Stornieren bitte",
			RequesterID: 42,
		})
		gt.Error(t, err)
		gt.Array(t, mail.sent).Length(0)
	})

	t.Run("mail failure is fatal only under policy", func(t *testing.T) {
		event := &model.TicketEvent{
			TicketID:      6,
			Comment:       "Bitte stornieren",
			CustomerEmail: "jan@example.com",
		}

		ai := &mockAIService{completeFn: classifyAs(`{"intent": "stornierung"}`)}
		mail := &mockMailService{sendErr: errors.New("mailgun 500")}
		ticket := newMockTicketService()

		uc := usecase.New(memory.New(), ai,
			usecase.WithMail(mail),
			usecase.WithTicket(ticket),
		)

		result, err := uc.Webhook.HandleTicketEvent(ctx, event)
		gt.NoError(t, err).Required()
		gt.Array(t, result.Actions).Equal([]string{usecase.ActionZendeskComment})

		strict := usecase.New(memory.New(), ai,
			usecase.WithMail(mail),
			usecase.WithTicket(ticket),
			usecase.WithPolicy(usecase.NotificationPolicy{MailFailureFatal: true}),
		)

		_, err = strict.Webhook.HandleTicketEvent(ctx, event)
		gt.Error(t, err)
	})

	t.Run("missing mail service follows the same policy", func(t *testing.T) {
		ai := &mockAIService{completeFn: classifyAs(`{"intent": "stornierung"}`)}

		uc := usecase.New(memory.New(), ai)
		result, err := uc.Webhook.HandleTicketEvent(ctx, &model.TicketEvent{
			TicketID:      7,
			Comment:       "Stornieren!",
			CustomerEmail: "kim@example.com",
		})
		gt.NoError(t, err).Required()
		gt.Array(t, result.Actions).Length(0)

		strict := usecase.New(memory.New(), ai,
			usecase.WithPolicy(usecase.NotificationPolicy{MailFailureFatal: true}),
		)
		_, err = strict.Webhook.HandleTicketEvent(ctx, &model.TicketEvent{
			TicketID:      7,
			Comment:       "Stornieren!",
			CustomerEmail: "kim@example.com",
		})
		gt.Error(t, err)
		gt.Bool(t, errors.Is(err, usecase.ErrMailNotConfigured)).True()
	})

	t.Run("note failure does not fail the event", func(t *testing.T) {
		ai := &mockAIService{completeFn: classifyAs(`{"intent": "stornierung"}`)}
		mail := &mockMailService{}
		ticket := newMockTicketService()
		ticket.addNoteErr = errors.New("ticket locked")

		uc := usecase.New(memory.New(), ai,
			usecase.WithMail(mail),
			usecase.WithTicket(ticket),
		)

		result, err := uc.Webhook.HandleTicketEvent(ctx, &model.TicketEvent{
			TicketID:      8,
			Comment:       "Bitte stornieren",
			CustomerEmail: "ben@example.com",
		})
		gt.NoError(t, err).Required()
		gt.Array(t, result.Actions).Equal([]string{usecase.ActionOpsEmail})
	})

	t.Run("slack notice when configured", func(t *testing.T) {
		ai := &mockAIService{completeFn: classifyAs(`{"intent": "stornierung", "order_number": "99"}`)}
		mail := &mockMailService{}
		chat := &mockSlackService{}

		uc := usecase.New(memory.New(), ai,
			usecase.WithMail(mail),
			usecase.WithSlack(chat, "C0SUPPORT"),
		)

		result, err := uc.Webhook.HandleTicketEvent(ctx, &model.TicketEvent{
			TicketID:      9,
			Comment:       "Stornieren bitte, Bestellung 99",
			CustomerEmail: "ida@example.com",
		})
		gt.NoError(t, err).Required()
		gt.Array(t, result.Actions).Equal([]string{usecase.ActionOpsEmail, usecase.ActionSlackNotice})

		gt.Array(t, chat.posts).Length(1)
		gt.Value(t, strings.Contains(chat.posts[0], "C0SUPPORT")).Equal(true)
		gt.Value(t, strings.Contains(chat.posts[0], "#9")).Equal(true)
	})

	t.Run("invalid event is rejected before classification", func(t *testing.T) {
		ai := &mockAIService{}
		uc := usecase.New(memory.New(), ai)

		_, err := uc.Webhook.HandleTicketEvent(ctx, &model.TicketEvent{TicketID: 0, Comment: "text"})
		gt.Error(t, err)
		gt.Bool(t, errors.Is(err, usecase.ErrInvalidEvent)).True()

		_, err = uc.Webhook.HandleTicketEvent(ctx, &model.TicketEvent{TicketID: 10, Comment: "   "})
		gt.Error(t, err)
		gt.Array(t, ai.completions).Length(0)
	})
}
