package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/forage-labs/stitch/pkg/cli/config"
	httpctrl "github.com/forage-labs/stitch/pkg/controller/http"
	"github.com/forage-labs/stitch/pkg/usecase"
	"github.com/forage-labs/stitch/pkg/utils/logging"
)

func cmdServe() *cli.Command {
	var addr string
	var webhookToken string
	var sentryDSN string
	var sentryEnv string
	var sendCustomerConfirmation bool
	var mailFailureFatal bool

	var repoCfg config.Repository
	var openaiCfg config.OpenAI
	var mailgunCfg config.Mailgun
	var zendeskCfg config.Zendesk
	var slackCfg config.Slack
	var brandCfg config.Brand

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "HTTP server address",
			Value:       ":8080",
			Sources:     cli.EnvVars("STITCH_ADDR"),
			Destination: &addr,
		},
		&cli.StringFlag{
			Name:        "webhook-token",
			Usage:       "Shared token required on webhook POSTs (empty disables the check)",
			Sources:     cli.EnvVars("STITCH_WEBHOOK_TOKEN"),
			Destination: &webhookToken,
		},
		&cli.StringFlag{
			Name:        "sentry-dsn",
			Usage:       "Sentry DSN for error reporting (empty disables Sentry)",
			Sources:     cli.EnvVars("STITCH_SENTRY_DSN"),
			Destination: &sentryDSN,
		},
		&cli.StringFlag{
			Name:        "sentry-env",
			Usage:       "Sentry environment tag",
			Value:       "production",
			Sources:     cli.EnvVars("STITCH_SENTRY_ENV"),
			Destination: &sentryEnv,
		},
		&cli.BoolFlag{
			Name:        "send-customer-confirmation",
			Usage:       "Send a confirmation mail to the customer on detected cancellations",
			Sources:     cli.EnvVars("STITCH_SEND_CUSTOMER_CONFIRMATION"),
			Destination: &sendCustomerConfirmation,
		},
		&cli.BoolFlag{
			Name:        "mail-failure-fatal",
			Usage:       "Fail webhook requests when notification mail cannot be sent",
			Sources:     cli.EnvVars("STITCH_MAIL_FAILURE_FATAL"),
			Destination: &mailFailureFatal,
		},
	}

	// Add shared config flags
	flags = append(flags, repoCfg.Flags()...)
	flags = append(flags, openaiCfg.Flags()...)
	flags = append(flags, mailgunCfg.Flags()...)
	flags = append(flags, zendeskCfg.Flags()...)
	flags = append(flags, slackCfg.Flags()...)
	flags = append(flags, brandCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			if sentryDSN != "" {
				if err := sentry.Init(sentry.ClientOptions{
					Dsn:         sentryDSN,
					Environment: sentryEnv,
				}); err != nil {
					return goerr.Wrap(err, "failed to initialize sentry")
				}
				defer sentry.Flush(2 * time.Second)
				logging.Default().Info("Sentry error reporting enabled", "env", sentryEnv)
			}

			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer func() {
				if err := repo.Close(); err != nil {
					logging.Default().Error("failed to close repository", "error", err.Error())
				}
			}()

			aiSvc := openaiCfg.Configure()
			logging.Default().LogAttrs(ctx, slog.LevelInfo, "OpenAI configuration", openaiCfg.LogAttrs()...)

			brand, err := brandCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to load brand profile")
			}

			ucOpts := []usecase.Option{
				usecase.WithBrand(brand),
				usecase.WithPolicy(usecase.NotificationPolicy{
					SendCustomerConfirmation: sendCustomerConfirmation,
					MailFailureFatal:         mailFailureFatal,
				}),
			}

			mailSvc, err := mailgunCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to initialize mailgun service")
			}
			if mailSvc != nil {
				ucOpts = append(ucOpts, usecase.WithMail(mailSvc))
				logging.Default().Info("Mailgun notifications enabled")
			} else {
				logging.Default().Warn("Mailgun not configured, mail notifications disabled")
			}

			ticketSvc, err := zendeskCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to initialize zendesk service")
			}
			if ticketSvc != nil {
				ucOpts = append(ucOpts, usecase.WithTicket(ticketSvc))
				logging.Default().Info("Zendesk integration enabled")
			} else {
				logging.Default().Warn("Zendesk not configured, requester lookup and internal notes disabled")
			}

			slackSvc, err := slackCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to initialize slack service")
			}
			if slackSvc != nil {
				ucOpts = append(ucOpts, usecase.WithSlack(slackSvc, slackCfg.ChannelID()))
				logging.Default().Info("Slack notifications enabled", "channel", slackCfg.ChannelID())
			}

			uc := usecase.New(repo, aiSvc, ucOpts...)

			var httpOpts []httpctrl.Options
			if webhookToken != "" {
				httpOpts = append(httpOpts, httpctrl.WithWebhookToken(webhookToken))
				logging.Default().Info("Webhook token check enabled")
			}

			server := &http.Server{
				Addr:              addr,
				Handler:           httpctrl.New(uc, httpOpts...),
				ReadHeaderTimeout: 30 * time.Second,
			}

			// Setup signal handling for graceful shutdown
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

			errCh := make(chan error, 1)
			go func() {
				logging.Default().Info("Starting HTTP server", "addr", addr)
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- goerr.Wrap(err, "failed to start server")
				}
			}()

			select {
			case err := <-errCh:
				return err
			case sig := <-sigCh:
				logging.Default().Info("Received shutdown signal", "signal", sig)

				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()

				if err := server.Shutdown(shutdownCtx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server gracefully")
				}

				logging.Default().Info("Server shutdown completed")
				return nil
			}
		},
	}
}
