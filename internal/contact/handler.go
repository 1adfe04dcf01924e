package contact

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/andestack/contactline/internal/config"
	"github.com/andestack/contactline/internal/observability/metrics"
	"github.com/andestack/contactline/internal/tenancy"
	"github.com/andestack/contactline/pkg/logging"
)

// SettingsSource returns the current contact settings. It is consulted once
// per request so secret rotations and default changes apply without a
// restart.
type SettingsSource func() config.Settings

// Handler serves the public record read and the admin mutations.
type Handler struct {
	service  *Service
	settings SettingsSource
	logger   *logging.Logger
	metrics  *metrics.ContactMetrics
}

// HandlerConfig wires the handler dependencies.
type HandlerConfig struct {
	Service  *Service
	Settings SettingsSource
	Logger   *logging.Logger
	Metrics  *metrics.ContactMetrics
}

// NewHandler creates the contact handler.
func NewHandler(cfg HandlerConfig) *Handler {
	if cfg.Service == nil {
		panic("contact: service cannot be nil")
	}
	if cfg.Settings == nil {
		cfg.Settings = config.LoadSettings
	}
	if cfg.Logger == nil {
		cfg.Logger = logging.Default()
	}
	return &Handler{
		service:  cfg.Service,
		settings: cfg.Settings,
		logger:   cfg.Logger,
		metrics:  cfg.Metrics,
	}
}

type mutationRequest struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
	Reset    bool   `json:"reset"`
}

type readResponse struct {
	Phone       string `json:"phone"`
	Message     string `json:"message"`
	ChangeCount int    `json:"changeCount"`
}

type mutationResponse struct {
	Success         bool   `json:"success"`
	Message         string `json:"message"`
	ChangeCount     int    `json:"changeCount"`
	NormalizedPhone string `json:"normalizedPhone,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Read handles GET /, the public read. It never fails: store trouble
// degrades to the configured defaults and a zero counter.
func (h *Handler) Read(w http.ResponseWriter, r *http.Request) {
	sett := h.settings()
	ns := h.namespace(r, sett)

	res := h.service.Read(r.Context(), ns, sett.DefaultPhone)
	h.metrics.ObserveRead(res.Degraded)
	writeJSON(w, http.StatusOK, readResponse{
		Phone:       res.Phone,
		Message:     sett.DefaultMessage,
		ChangeCount: res.ChangeCount,
	})
}

// Mutate handles POST /, either an admin update or a reset when the reset
// flag is set. The credential is checked before anything touches the store.
func (h *Handler) Mutate(w http.ResponseWriter, r *http.Request) {
	sett := h.settings()
	ns := h.namespace(r, sett)

	var req mutationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}

	op := "update"
	if req.Reset {
		op = "reset"
	}

	if err := authorize(sett, req.Password); err != nil {
		msg := "invalid password"
		if sett.AdminSecret == "" {
			msg = "admin auth disabled"
			h.logger.Warn("mutation rejected: admin secret not configured", "namespace", ns)
		} else {
			h.logger.Warn("mutation rejected: invalid credential", "namespace", ns, "op", op)
		}
		h.metrics.ObserveMutation(op, "unauthorized")
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: msg})
		return
	}

	if req.Reset {
		h.reset(w, r, ns, sett)
		return
	}
	h.update(w, r, ns, sett, req.Phone)
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request, ns string, sett config.Settings, raw string) {
	start := time.Now()
	res, err := h.service.Update(r.Context(), ns, raw)
	h.metrics.ObserveMutationDuration("update", time.Since(start).Seconds())
	switch {
	case errors.Is(err, ErrInvalidNumber):
		h.metrics.ObserveMutation("update", "invalid_number")
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, ErrStoreUnavailable):
		h.metrics.ObserveMutation("update", "store_error")
		h.logger.Error("update failed", "namespace", ns, "error", err)
		writeJSON(w, http.StatusBadGateway, errorResponse{Error: err.Error()})
	case err != nil:
		h.metrics.ObserveMutation("update", "error")
		h.logger.Error("update failed", "namespace", ns, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	default:
		h.metrics.ObserveMutation("update", "ok")
		writeJSON(w, http.StatusOK, mutationResponse{
			Success:         true,
			Message:         sett.DefaultMessage,
			ChangeCount:     res.ChangeCount,
			NormalizedPhone: res.Phone,
		})
	}
}

func (h *Handler) reset(w http.ResponseWriter, r *http.Request, ns string, sett config.Settings) {
	start := time.Now()
	err := h.service.Reset(r.Context(), ns)
	h.metrics.ObserveMutationDuration("reset", time.Since(start).Seconds())
	if err != nil {
		h.logger.Error("reset failed", "namespace", ns, "error", err)
		if errors.Is(err, ErrStoreUnavailable) {
			h.metrics.ObserveMutation("reset", "store_error")
			writeJSON(w, http.StatusBadGateway, errorResponse{Error: err.Error()})
			return
		}
		h.metrics.ObserveMutation("reset", "error")
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
		return
	}
	h.metrics.ObserveMutation("reset", "ok")
	writeJSON(w, http.StatusOK, mutationResponse{
		Success:     true,
		Message:     sett.DefaultMessage,
		ChangeCount: 0,
	})
}

// namespace prefers the value resolved by the router middleware and falls
// back to resolving directly when the handler is mounted bare.
func (h *Handler) namespace(r *http.Request, sett config.Settings) string {
	if ns, ok := tenancy.NamespaceFromContext(r.Context()); ok {
		return ns
	}
	return tenancy.Resolve(sett.Namespace, r)
}

// authorize enforces the admin credential: exact string equality with the
// configured secret. An empty configured secret disables mutation entirely.
func authorize(sett config.Settings, password string) error {
	if sett.AdminSecret == "" || password != sett.AdminSecret {
		return ErrInvalidCredential
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
