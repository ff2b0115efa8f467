package contact

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"net/url"
	"time"

	"golang.org/x/sync/errgroup"

	"leadgate/internal/platform/metrics"
	"leadgate/pkg/apperrors"
	"leadgate/pkg/domain"
	"leadgate/pkg/platform/sentinel"
	strs "leadgate/pkg/platform/strings"
)

// protocolPrefix is the externally visible correlation-id prefix; protocols
// look like PAN-<unix millis>-<4 random digits>.
const protocolPrefix = "PAN"

// protocolAttempts bounds the regenerate-on-collision loop. Collisions need
// two submissions in the same millisecond drawing the same suffix, so one
// retry is already generous.
const protocolAttempts = 3

// Collaborators the submission pipeline depends on but does not implement.
// All four are swappable without changing the service's control flow; the
// shipped implementations live in internal/contact/notify.
type (
	CaptchaVerifier interface {
		Verify(ctx context.Context, token string) (bool, error)
	}
	ConfirmationMailer interface {
		SendConfirmation(ctx context.Context, sub domain.Submission, deadline string) error
	}
	TeamNotifier interface {
		NotifyNewLead(ctx context.Context, sub domain.Submission) error
	}
	CRMClient interface {
		CreateLead(ctx context.Context, sub domain.Submission) error
	}
)

// SubmitMeta carries request provenance the payload itself cannot.
type SubmitMeta struct {
	IPAddress string
	UserAgent string
}

// SubmitResult is the successful response body of a submission.
type SubmitResult struct {
	Message     string `json:"message"`
	Protocol    string `json:"protocol"`
	RedirectURL string `json:"redirectUrl"`
}

// Service orchestrates one submission: authoritative validation, captcha
// check, protocol generation, store commit, then best-effort notifications.
// It keeps orchestration out of handlers and domain logic thin.
type Service struct {
	store   Store
	captcha CaptchaVerifier
	mailer  ConfirmationMailer
	team    TeamNotifier
	crm     CRMClient
	metrics *metrics.Metrics
	logger  *slog.Logger

	// Clock and suffix source are fields so tests can pin them.
	now    func() time.Time
	suffix func() int
}

func NewService(
	store Store,
	captcha CaptchaVerifier,
	mailer ConfirmationMailer,
	team TeamNotifier,
	crm CRMClient,
	m *metrics.Metrics,
	logger *slog.Logger,
) *Service {
	return &Service{
		store:   store,
		captcha: captcha,
		mailer:  mailer,
		team:    team,
		crm:     crm,
		metrics: m,
		logger:  logger,
		now:     time.Now,
		suffix:  func() int { return rand.Intn(10000) },
	}
}

// Submit runs the pipeline for one raw payload.
//
// Errors: VALIDATION_ERROR with field details when the payload is not
// business-valid; CAPTCHA_ERROR when the verification token is rejected;
// SUBMISSION_ERROR when — and only when — the record could not be stored.
// Notification failures after commit are logged and counted, never surfaced:
// a caller holding a protocol can rely on the record existing.
func (s *Service) Submit(ctx context.Context, req domain.SubmitRequest, meta SubmitMeta) (*SubmitResult, error) {
	if fieldErrs := domain.Validate(req); len(fieldErrs) > 0 {
		s.metrics.IncrementRejected("validation")
		return nil, apperrors.NewValidation("Validation failed", fieldErrs)
	}

	// Captcha runs strictly after schema validation.
	ok, err := s.captcha.Verify(ctx, req.Captcha)
	if err != nil || !ok {
		s.metrics.IncrementRejected("captcha")
		return nil, apperrors.New(apperrors.CodeCaptcha, "Por favor, complete a verificação de segurança")
	}

	protocol, err := s.generateProtocol(ctx)
	if err != nil {
		s.metrics.IncrementRejected("submission")
		return nil, apperrors.New(apperrors.CodeSubmission, "Erro ao processar formulário. Tente novamente.")
	}

	id, err := s.store.NextID(ctx)
	if err != nil {
		s.metrics.IncrementRejected("submission")
		return nil, apperrors.New(apperrors.CodeSubmission, "Erro ao processar formulário. Tente novamente.")
	}

	sub := s.buildRecord(req, meta, id, protocol)
	if err := s.store.Insert(ctx, sub); err != nil {
		s.logger.ErrorContext(ctx, "failed to store submission",
			"protocol", protocol,
			"error", err.Error(),
		)
		s.metrics.IncrementRejected("submission")
		return nil, apperrors.New(apperrors.CodeSubmission, "Erro ao processar formulário. Tente novamente.")
	}
	s.metrics.IncrementAccepted()

	// The record is committed; from here on nothing can fail the submission.
	s.dispatchNotifications(ctx, sub)

	return &SubmitResult{
		Message:     "Formulário enviado com sucesso",
		Protocol:    protocol,
		RedirectURL: redirectURL(sub),
	}, nil
}

// buildRecord assembles the immutable submission. The identity branch not
// selected by the person type is dropped so exactly one of CPF /
// (CNPJ + legal name) is ever stored.
func (s *Service) buildRecord(req domain.SubmitRequest, meta SubmitMeta, id int64, protocol string) domain.Submission {
	sub := domain.Submission{
		ID:                id,
		PersonType:        req.PersonType,
		FullName:          req.FullName,
		Email:             req.Email,
		Phone:             req.Phone,
		LegalArea:         req.LegalArea,
		Description:       req.Description,
		Urgency:           req.Urgency,
		ContactPreference: req.ContactPreference,
		TimeWindow:        req.TimeWindow,
		AcceptedTerms:     req.AcceptedTerms,
		Newsletter:        req.Newsletter,
		SubmittedAt:       s.now().UTC(),
		IPAddress:         meta.IPAddress,
		UserAgent:         meta.UserAgent,
		Source:            domain.SourceLandingPage,
		Protocol:          protocol,
	}
	switch req.PersonType {
	case domain.PersonIndividual:
		sub.CPF = req.CPF
	case domain.PersonCompany:
		sub.CNPJ = req.CNPJ
		sub.LegalName = req.LegalName
	}
	return sub
}

// generateProtocol draws a candidate and verifies it against the store before
// accepting it. The store's insert-time uniqueness check remains the backstop.
func (s *Service) generateProtocol(ctx context.Context) (string, error) {
	for i := 0; i < protocolAttempts; i++ {
		candidate := fmt.Sprintf("%s-%d-%04d", protocolPrefix, s.now().UnixMilli(), s.suffix())
		_, err := s.store.GetByProtocol(ctx, candidate)
		if errors.Is(err, sentinel.ErrNotFound) {
			return candidate, nil
		}
		if err != nil {
			return "", err
		}
	}
	return "", sentinel.ErrConflict
}

// dispatchNotifications fans out the three collaborators concurrently. No
// ordering guarantee is needed between them; each failure is logged and
// counted on its own.
func (s *Service) dispatchNotifications(ctx context.Context, sub domain.Submission) {
	g, gctx := errgroup.WithContext(ctx)
	dispatch := func(target string, send func(context.Context) error) {
		g.Go(func() error {
			if err := send(gctx); err != nil {
				s.logger.WarnContext(gctx, "notification dispatch failed",
					"target", target,
					"protocol", sub.Protocol,
					"error", err.Error(),
				)
				s.metrics.IncrementNotificationFailure(target)
			}
			return nil
		})
	}

	deadline := ReturnDeadline(sub.Urgency)
	dispatch("confirmation", func(ctx context.Context) error {
		return s.mailer.SendConfirmation(ctx, sub, deadline)
	})
	dispatch("team", func(ctx context.Context) error {
		return s.team.NotifyNewLead(ctx, sub)
	})
	dispatch("crm", func(ctx context.Context) error {
		return s.crm.CreateLead(ctx, sub)
	})

	_ = g.Wait()
}

// ReturnDeadline maps the declared urgency to the response-time promise used
// in outbound notification text.
func ReturnDeadline(urgency domain.Urgency) string {
	switch urgency {
	case domain.UrgencyEmergency:
		return "até 4 horas úteis"
	case domain.UrgencyHigh:
		return "até 24 horas úteis"
	case domain.UrgencyMedium:
		return "até 48 horas úteis"
	case domain.UrgencyLow:
		return "até 72 horas úteis"
	default:
		return "em breve"
	}
}

// redirectURL builds the thank-you page target carrying the protocol, the
// submitter's first name, and the urgency, all percent-encoded.
func redirectURL(sub domain.Submission) string {
	return "/obrigado?p=" + url.QueryEscape(sub.Protocol) +
		"&n=" + url.QueryEscape(strs.FirstToken(sub.FullName)) +
		"&u=" + url.QueryEscape(sub.Urgency.String())
}
