package client

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leadgate/internal/contact"
	"leadgate/internal/contact/notify"
	"leadgate/internal/platform/logger"
	httptransport "leadgate/internal/transport/http"
	"leadgate/pkg/apperrors"
	"leadgate/pkg/domain"
)

func strPtr(s string) *string { return &s }

func validForm() domain.SubmitRequest {
	return domain.SubmitRequest{
		PersonType:        domain.PersonIndividual,
		FullName:          "Maria Silva",
		Email:             "maria@x.com",
		Phone:             "(11) 98765-4321",
		CPF:               strPtr("123.456.789-09"),
		LegalArea:         "Direito Civil",
		Description:       "Preciso de orientação sobre contrato de locação residencial.",
		Urgency:           domain.UrgencyHigh,
		ContactPreference: domain.ContactEmail,
		TimeWindow:        domain.WindowAfternoon,
		AcceptedTerms:     true,
		Captcha:           "abc",
	}
}

// newTestServer stands up the real server stack so the client is exercised
// against the actual wire contract.
func newTestServer(t *testing.T) (*httptest.Server, *contact.InMemoryStore) {
	t.Helper()
	log := logger.Discard()
	store := contact.NewInMemoryStore()
	svc := contact.NewService(
		store,
		notify.TokenVerifier{},
		notify.NewLogMailer(log),
		notify.NewLogTeamNotifier(log),
		notify.NewLogCRM(log),
		nil,
		log,
	)
	srv := httptest.NewServer(httptransport.NewRouter(httptransport.NewHandler(svc, store, log)))
	t.Cleanup(srv.Close)
	return srv, store
}

func TestSubmit_RoundTrip(t *testing.T) {
	srv, store := newTestServer(t)
	c := New(srv.URL)

	conf, err := c.Submit(context.Background(), validForm())
	require.NoError(t, err)
	assert.Equal(t, "Formulário enviado com sucesso", conf.Message)
	assert.Regexp(t, `^PAN-\d+-\d{4}$`, conf.Protocol)

	params, err := ParseRedirect(conf.RedirectURL)
	require.NoError(t, err)
	assert.Equal(t, conf.Protocol, params.Protocol)
	assert.Equal(t, "Maria", params.FirstName)
	assert.Equal(t, "Alta", params.Urgency)

	count, err := store.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestSubmit_LocalValidationShortCircuits(t *testing.T) {
	srv, store := newTestServer(t)
	c := New(srv.URL)

	form := validForm()
	form.AcceptedTerms = false

	_, err := c.Submit(context.Background(), form)
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeValidation))

	count, _ := store.Count(context.Background())
	assert.Zero(t, count, "the request never left the client")
}

func TestSubmit_StripsMarkupBeforeSending(t *testing.T) {
	srv, store := newTestServer(t)
	c := New(srv.URL)

	form := validForm()
	form.Description = "Preciso de <script>alert('x')</script> orientação sobre contrato de locação."

	conf, err := c.Submit(context.Background(), form)
	require.NoError(t, err)

	stored, err := store.GetByProtocol(context.Background(), conf.Protocol)
	require.NoError(t, err)
	assert.NotContains(t, stored.Description, "<script>")
	assert.Contains(t, stored.Description, "orientação")
}

func TestSubmit_ServerRejectionSurfacesCode(t *testing.T) {
	srv, _ := newTestServer(t)
	c := New(srv.URL)

	form := validForm()
	form.Captcha = ""

	_, err := c.Submit(context.Background(), form)
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeCaptcha))
}

func TestParseRedirect_EncodedValues(t *testing.T) {
	params, err := ParseRedirect("/obrigado?p=PAN-1700000000000-0042&n=Jo%C3%A3o&u=M%C3%A9dia")
	require.NoError(t, err)
	assert.Equal(t, "PAN-1700000000000-0042", params.Protocol)
	assert.Equal(t, "João", params.FirstName)
	assert.Equal(t, "Média", params.Urgency)
}
