// Package notify holds the outbound collaborator stubs for the submission
// pipeline: captcha verification, confirmation email, internal team summary,
// and CRM ingestion. Real integrations slot in behind the same interfaces
// without touching the service's control flow.
package notify

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/mssola/useragent"

	"leadgate/pkg/domain"
)

// TokenVerifier is the stand-in captcha check: any non-empty token passes.
// Swap in a reCAPTCHA/hCaptcha client here for production.
type TokenVerifier struct{}

func (TokenVerifier) Verify(_ context.Context, token string) (bool, error) {
	return len(token) > 0, nil
}

// LogMailer simulates the transactional email provider by logging what would
// be sent.
type LogMailer struct {
	logger *slog.Logger
}

func NewLogMailer(logger *slog.Logger) *LogMailer {
	return &LogMailer{logger: logger}
}

// SendConfirmation acknowledges the submission to the submitter, including
// the protocol and the promised return deadline.
func (m *LogMailer) SendConfirmation(ctx context.Context, sub domain.Submission, deadline string) error {
	m.logger.InfoContext(ctx, "confirmation email sent",
		"message_id", uuid.NewString(),
		"to", sub.Email,
		"name", sub.FullName,
		"protocol", sub.Protocol,
		"return_deadline", deadline,
	)
	return nil
}

// LogTeamNotifier simulates the new-lead alert to the office team.
type LogTeamNotifier struct {
	logger *slog.Logger
}

func NewLogTeamNotifier(logger *slog.Logger) *LogTeamNotifier {
	return &LogTeamNotifier{logger: logger}
}

func (n *LogTeamNotifier) NotifyNewLead(ctx context.Context, sub domain.Submission) error {
	ua := useragent.New(sub.UserAgent)
	browser, _ := ua.Browser()
	n.logger.InfoContext(ctx, "team notification sent",
		"message_id", uuid.NewString(),
		"protocol", sub.Protocol,
		"urgency", sub.Urgency.String(),
		"legal_area", sub.LegalArea,
		"contact_preference", sub.ContactPreference.String(),
		"time_window", sub.TimeWindow.String(),
		"browser", browser,
		"os", ua.OS(),
		"mobile", ua.Mobile(),
	)
	return nil
}

// LogCRM simulates pushing the lead into the CRM.
type LogCRM struct {
	logger *slog.Logger
}

func NewLogCRM(logger *slog.Logger) *LogCRM {
	return &LogCRM{logger: logger}
}

func (c *LogCRM) CreateLead(ctx context.Context, sub domain.Submission) error {
	c.logger.InfoContext(ctx, "crm lead created",
		"lead_id", uuid.NewString(),
		"name", sub.FullName,
		"email", sub.Email,
		"phone", sub.Phone,
		"legal_area", sub.LegalArea,
		"urgency", sub.Urgency.String(),
		"source", sub.Source,
		"newsletter", sub.Newsletter,
	)
	return nil
}
