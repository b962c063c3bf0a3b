package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/m-mizutani/goerr/v2"

	"github.com/forage-labs/stitch/pkg/domain/model"
	"github.com/forage-labs/stitch/pkg/domain/types"
	"github.com/forage-labs/stitch/pkg/service/mailgun"
	"github.com/forage-labs/stitch/pkg/service/openai"
	"github.com/forage-labs/stitch/pkg/service/slack"
	"github.com/forage-labs/stitch/pkg/service/zendesk"
	"github.com/forage-labs/stitch/pkg/utils/logging"
)

// Side effect identifiers reported in WebhookResult.Actions
const (
	ActionOpsEmail       = "ops_email"
	ActionCustomerEmail  = "customer_email"
	ActionZendeskComment = "zendesk_comment"
	ActionSlackNotice    = "slack_notice"
)

// unknownOrderNumber is used in notifications when the classifier
// found no order number in the message
const unknownOrderNumber = "unbekannt"

// WebhookUseCase classifies inbound ticket events and dispatches the
// resulting notifications
type WebhookUseCase struct {
	ai           openai.Service
	mail         mailgun.Service
	ticket       zendesk.Service
	slack        slack.Service
	slackChannel string
	brand        *model.BrandProfile
	policy       NotificationPolicy
	resolver     RequesterResolver
}

// WebhookResult reports the classification verdict and the side
// effects that actually happened
type WebhookResult struct {
	Intent      types.Intent `json:"intent"`
	OrderNumber string       `json:"order_number,omitempty"`
	Actions     []string     `json:"actions_taken"`
}

// HandleTicketEvent runs the full webhook pipeline: classify the
// comment, and if the intent is actionable resolve the requester and
// dispatch ops mail, optional customer confirmation, an internal
// ticket note and an optional chat notice. Note and chat failures are
// logged but never fail the event; mail failures follow the
// notification policy.
func (uc *WebhookUseCase) HandleTicketEvent(ctx context.Context, event *model.TicketEvent) (*WebhookResult, error) {
	logger := logging.From(ctx)

	if event.TicketID == 0 || strings.TrimSpace(event.Comment) == "" {
		return nil, goerr.Wrap(ErrInvalidEvent, "cannot handle ticket event")
	}

	intent, err := uc.ClassifyIntent(ctx, event.Comment, event.Subject)
	if err != nil {
		return nil, err
	}

	result := &WebhookResult{
		Intent:      intent.Intent,
		OrderNumber: intent.OrderNumber,
		Actions:     []string{},
	}

	if !intent.Actionable() {
		logger.Info("no actionable intent detected",
			"ticket_id", event.TicketID,
			"intent", intent.Intent,
		)
		return result, nil
	}

	logger.Info("actionable intent detected",
		"ticket_id", event.TicketID,
		"intent", intent.Intent,
		"order_number", intent.OrderNumber,
	)

	requester, err := uc.resolver.Resolve(ctx, event)
	if err != nil {
		return nil, err
	}

	orderNumber := intent.OrderNumber
	if orderNumber == "" {
		orderNumber = unknownOrderNumber
	}

	if err := uc.sendOpsMail(ctx, event, intent.Intent, requester, orderNumber); err != nil {
		if uc.policy.MailFailureFatal {
			return nil, err
		}
		logger.Error("failed to send ops mail", "error", err.Error())
	} else {
		result.Actions = append(result.Actions, ActionOpsEmail)
	}

	if uc.policy.SendCustomerConfirmation && intent.Intent == types.IntentCancellation && requester.Email != "" {
		if err := uc.sendCancellationConfirmation(ctx, requester, orderNumber); err != nil {
			if uc.policy.MailFailureFatal {
				return nil, err
			}
			logger.Error("failed to send cancellation confirmation", "error", err.Error())
		} else {
			result.Actions = append(result.Actions, ActionCustomerEmail)
		}
	}

	if uc.ticket != nil {
		note := fmt.Sprintf("🤖 Automatische Erkennung: Kunde möchte %s (Bestellnummer: %s). Das Ops-Team wurde per E-Mail benachrichtigt.",
			intent.Intent.Label(), orderNumber)
		if err := uc.ticket.AddInternalNote(ctx, event.TicketID, note); err != nil {
			logger.Error("failed to add internal note",
				"ticket_id", event.TicketID,
				"error", err.Error(),
			)
		} else {
			result.Actions = append(result.Actions, ActionZendeskComment)
		}
	}

	if uc.slack != nil && uc.slackChannel != "" {
		text := fmt.Sprintf("%s erkannt in Ticket #%d (Bestellnummer: %s)",
			intent.Intent.Label(), event.TicketID, orderNumber)
		if _, err := uc.slack.PostMessage(ctx, uc.slackChannel, text); err != nil {
			logger.Error("failed to post chat notice", "error", err.Error())
		} else {
			result.Actions = append(result.Actions, ActionSlackNotice)
		}
	}

	return result, nil
}

func (uc *WebhookUseCase) sendOpsMail(ctx context.Context, event *model.TicketEvent, intent types.Intent, requester *model.Requester, orderNumber string) error {
	if uc.mail == nil {
		return goerr.Wrap(ErrMailNotConfigured, "cannot notify ops")
	}

	customer := requester.Email
	if requester.Name != "" {
		customer = fmt.Sprintf("%s (%s)", requester.Name, requester.Email)
	}

	body := fmt.Sprintf(`Ein Kunde hat eine %s angefragt.

Ticket: #%d
Kunde: %s
Bestellnummer: %s

Nachricht des Kunden:
%s

Bitte im System prüfen und bearbeiten.`,
		intent.Label(), event.TicketID, customer, orderNumber, event.Comment)

	return uc.mail.Send(ctx, mailgun.Message{
		From:    uc.brand.SupportEmail,
		To:      uc.brand.OpsEmail,
		Subject: fmt.Sprintf("%s angefragt: Ticket #%d", intent.Label(), event.TicketID),
		Text:    body,
	})
}

func (uc *WebhookUseCase) sendCancellationConfirmation(ctx context.Context, requester *model.Requester, orderNumber string) error {
	if uc.mail == nil {
		return goerr.Wrap(ErrMailNotConfigured, "cannot confirm cancellation")
	}

	greeting := "Hi,"
	if name := firstName(requester.Name); name != "" {
		greeting = "Hi " + name + ","
	}

	body := fmt.Sprintf(`%s

vielen Dank für deine Nachricht. Wir haben deine Stornierungsanfrage für die Bestellung %s erhalten und kümmern uns schnellstmöglich darum. Sobald die Stornierung bearbeitet ist, bekommst du eine Bestätigung von uns.

Bei weiteren Fragen kannst du dich natürlich gerne jederzeit wieder an uns wenden!

%s`,
		greeting, orderNumber, uc.brand.Signature)

	return uc.mail.Send(ctx, mailgun.Message{
		From:    uc.brand.SupportEmail,
		To:      requester.Email,
		Subject: "Wir haben deine Stornierungsanfrage erhalten",
		Text:    body,
	})
}

func firstName(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
