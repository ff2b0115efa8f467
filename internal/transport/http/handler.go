package httptransport

import (
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"leadgate/internal/contact"
	"leadgate/pkg/apperrors"
	"leadgate/pkg/domain"
)

// SubmitService defines the interface for the submission pipeline.
type SubmitService interface {
	Submit(ctx context.Context, req domain.SubmitRequest, meta contact.SubmitMeta) (*contact.SubmitResult, error)
}

// Handler is the thin HTTP layer. It delegates to the submission service and
// the store without embedding business logic so transport concerns remain
// isolated.
type Handler struct {
	logger *slog.Logger
	submit SubmitService
	store  contact.Store
}

func NewHandler(submit SubmitService, store contact.Store, logger *slog.Logger) *Handler {
	return &Handler{logger: logger, submit: submit, store: store}
}

// NewRouter wires all endpoints. The contact endpoint is public; the leads
// read surface is for internal tooling (this service sits behind the office
// network, authentication is out of scope by design).
func NewRouter(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Post("/api/external/contact", h.handleSubmit)

	r.Route("/api/internal/leads", func(r chi.Router) {
		r.Get("/", h.handleListLeads)
		r.Get("/stats", h.handleLeadStats)
		r.Get("/protocol/{protocol}", h.handleLeadByProtocol)
		r.Get("/{id}", h.handleLeadByID)
	})

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	return r
}

// handleSubmit accepts a raw contact payload, runs the pipeline, and answers
// 201 with the protocol and redirect target.
func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req domain.SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "malformed contact payload",
			"request_id", middleware.GetReqID(ctx),
			"error", err.Error(),
		)
		writeError(w, apperrors.New(apperrors.CodeValidation, "Validation failed"))
		return
	}

	meta := contact.SubmitMeta{
		IPAddress: remoteIP(r),
		UserAgent: r.UserAgent(),
	}

	res, err := h.submit.Submit(ctx, req, meta)
	if err != nil {
		appErr := apperrors.From(err)
		if appErr.Code == apperrors.CodeSubmission || appErr.Code == apperrors.CodeInternal {
			h.logger.ErrorContext(ctx, "submission failed",
				"request_id", middleware.GetReqID(ctx),
				"error", err.Error(),
			)
		}
		writeError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "contact submission stored",
		"request_id", middleware.GetReqID(ctx),
		"protocol", res.Protocol,
	)
	writeSuccess(w, http.StatusCreated, res)
}

func (h *Handler) handleListLeads(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if urgency := r.URL.Query().Get("urgencia"); urgency != "" {
		u := domain.Urgency(urgency)
		if !u.IsValid() {
			writeError(w, apperrors.NewValidation("Validation failed", []apperrors.FieldError{
				{Field: "urgencia", Message: "Nível de urgência inválido"},
			}))
			return
		}
		leads, err := h.store.ListByUrgency(ctx, u)
		if err != nil {
			writeError(w, err)
			return
		}
		writeSuccess(w, http.StatusOK, leads)
		return
	}

	if area := r.URL.Query().Get("area"); area != "" {
		leads, err := h.store.ListByArea(ctx, area)
		if err != nil {
			writeError(w, err)
			return
		}
		writeSuccess(w, http.StatusOK, leads)
		return
	}

	leads, err := h.store.List(ctx)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, leads)
}

func (h *Handler) handleLeadStats(w http.ResponseWriter, r *http.Request) {
	count, err := h.store.Count(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]int{"total": count})
}

func (h *Handler) handleLeadByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, apperrors.NewValidation("Validation failed", []apperrors.FieldError{
			{Field: "id", Message: "Identificador inválido"},
		}))
		return
	}

	sub, err := h.store.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, apperrors.New(apperrors.CodeNotFound, "Registro não encontrado"))
		return
	}
	writeSuccess(w, http.StatusOK, sub)
}

func (h *Handler) handleLeadByProtocol(w http.ResponseWriter, r *http.Request) {
	sub, err := h.store.GetByProtocol(r.Context(), chi.URLParam(r, "protocol"))
	if err != nil {
		writeError(w, apperrors.New(apperrors.CodeNotFound, "Registro não encontrado"))
		return
	}
	writeSuccess(w, http.StatusOK, sub)
}

// remoteIP strips the port middleware.RealIP may have left on RemoteAddr.
func remoteIP(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	if r.RemoteAddr != "" {
		return r.RemoteAddr
	}
	return "unknown"
}
