package usecase

import (
	"github.com/forage-labs/stitch/pkg/domain/interfaces"
	"github.com/forage-labs/stitch/pkg/domain/model"
	"github.com/forage-labs/stitch/pkg/service/mailgun"
	"github.com/forage-labs/stitch/pkg/service/openai"
	"github.com/forage-labs/stitch/pkg/service/slack"
	"github.com/forage-labs/stitch/pkg/service/zendesk"
)

// NotificationPolicy controls the webhook side effects that differ
// across deployments
type NotificationPolicy struct {
	// SendCustomerConfirmation enables the direct cancellation
	// confirmation email to the customer, in addition to the internal
	// ops notification
	SendCustomerConfirmation bool
	// MailFailureFatal makes an error in the ops email step fail the
	// webhook request instead of being logged and swallowed
	MailFailureFatal bool
}

type UseCases struct {
	repo   interfaces.Repository
	ai     openai.Service
	mail   mailgun.Service
	ticket zendesk.Service
	slack  slack.Service

	slackChannel string
	brand        *model.BrandProfile
	policy       NotificationPolicy
	resolver     RequesterResolver

	Reply    *ReplyUseCase
	Webhook  *WebhookUseCase
	Feedback *FeedbackUseCase
}

type Option func(*UseCases)

// WithMail sets the transactional email service
func WithMail(svc mailgun.Service) Option {
	return func(uc *UseCases) {
		uc.mail = svc
	}
}

// WithTicket sets the ticketing service used for requester lookup and
// internal notes
func WithTicket(svc zendesk.Service) Option {
	return func(uc *UseCases) {
		uc.ticket = svc
	}
}

// WithSlack enables best-effort ops-channel notifications
func WithSlack(svc slack.Service, channelID string) Option {
	return func(uc *UseCases) {
		uc.slack = svc
		uc.slackChannel = channelID
	}
}

// WithBrand overrides the default brand profile
func WithBrand(brand *model.BrandProfile) Option {
	return func(uc *UseCases) {
		uc.brand = brand
	}
}

// WithPolicy sets the notification policy
func WithPolicy(policy NotificationPolicy) Option {
	return func(uc *UseCases) {
		uc.policy = policy
	}
}

// WithRequesterResolver overrides the default requester resolution
// strategy
func WithRequesterResolver(resolver RequesterResolver) Option {
	return func(uc *UseCases) {
		uc.resolver = resolver
	}
}

func New(repo interfaces.Repository, ai openai.Service, opts ...Option) *UseCases {
	uc := &UseCases{
		repo:  repo,
		ai:    ai,
		brand: model.DefaultBrandProfile(),
	}

	for _, opt := range opts {
		opt(uc)
	}

	if uc.resolver == nil {
		uc.resolver = NewRequesterResolver(uc.ticket)
	}

	uc.Reply = &ReplyUseCase{repo: repo, ai: ai, brand: uc.brand}
	uc.Webhook = &WebhookUseCase{
		ai:           ai,
		mail:         uc.mail,
		ticket:       uc.ticket,
		slack:        uc.slack,
		slackChannel: uc.slackChannel,
		brand:        uc.brand,
		policy:       uc.policy,
		resolver:     uc.resolver,
	}
	uc.Feedback = &FeedbackUseCase{repo: repo}

	return uc
}
