// Package client submits contact forms to a leadgate server. It mirrors the
// landing page's behavior: fields are validated locally against the shared
// rules before any network call (a latency courtesy only — the server
// re-validates authoritatively), and free-text fields are stripped of markup
// before they are sent.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"leadgate/pkg/apperrors"
	"leadgate/pkg/domain"
	strs "leadgate/pkg/platform/strings"
)

const submitPath = "/api/external/contact"

// Client is a thin HTTP client for the public contact endpoint.
type Client struct {
	baseURL string
	http    *http.Client
}

// New returns a Client for the server at baseURL (scheme://host[:port]).
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// NewWithHTTPClient is New with a caller-supplied http.Client.
func NewWithHTTPClient(baseURL string, hc *http.Client) *Client {
	c := New(baseURL)
	c.http = hc
	return c
}

// Confirmation is the server's acknowledgment of a stored submission.
type Confirmation struct {
	Message     string `json:"message"`
	Protocol    string `json:"protocol"`
	RedirectURL string `json:"redirectUrl"`
}

// RedirectParams are the query parameters the thank-you page receives.
type RedirectParams struct {
	Protocol  string
	FirstName string
	Urgency   string
}

// ParseRedirect extracts the thank-you page parameters from a confirmation's
// redirect target.
func ParseRedirect(redirectURL string) (RedirectParams, error) {
	u, err := url.Parse(redirectURL)
	if err != nil {
		return RedirectParams{}, fmt.Errorf("parse redirect url: %w", err)
	}
	q := u.Query()
	return RedirectParams{
		Protocol:  q.Get("p"),
		FirstName: q.Get("n"),
		Urgency:   q.Get("u"),
	}, nil
}

type envelope struct {
	Success bool           `json:"success"`
	Data    *Confirmation  `json:"data"`
	Error   *envelopeError `json:"error"`
}

type envelopeError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details []apperrors.FieldError `json:"details"`
}

// Submit validates, sanitizes, and posts the form. Validation failures are
// returned as *apperrors.Error with field details and no request is made;
// server-side rejections come back as *apperrors.Error carrying the server's
// code and message.
func (c *Client) Submit(ctx context.Context, form domain.SubmitRequest) (*Confirmation, error) {
	sanitize(&form)

	if fieldErrs := domain.Validate(form); len(fieldErrs) > 0 {
		return nil, apperrors.NewValidation("Validation failed", fieldErrs)
	}

	body, err := json.Marshal(form)
	if err != nil {
		return nil, fmt.Errorf("encode form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+submitPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("post contact form: %w", err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("decode response (status %d): %w", resp.StatusCode, err)
	}

	if !env.Success || env.Error != nil {
		if env.Error == nil {
			return nil, apperrors.New(apperrors.CodeInternal, "unexpected response")
		}
		return nil, &apperrors.Error{
			Code:    apperrors.Code(env.Error.Code),
			Message: env.Error.Message,
			Details: env.Error.Details,
		}
	}
	if env.Data == nil {
		return nil, apperrors.New(apperrors.CodeInternal, "unexpected response")
	}
	return env.Data, nil
}

// sanitize strips markup from the free-text fields. Enum and formatted fields
// are left alone; malformed values there fail validation anyway.
func sanitize(form *domain.SubmitRequest) {
	form.FullName = strs.StripTags(form.FullName)
	form.LegalArea = strs.StripTags(form.LegalArea)
	form.Description = strs.StripTags(form.Description)
	if form.LegalName != nil {
		clean := strs.StripTags(*form.LegalName)
		form.LegalName = &clean
	}
}
