package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/luminauth/idp-console/internal/config"
	"github.com/luminauth/idp-console/internal/consent"
	"github.com/luminauth/idp-console/internal/httpapi/middleware"
	"github.com/luminauth/idp-console/internal/scopes"
)

// ConsentHandler exposes the consent prompt and decision endpoints.
type ConsentHandler struct {
	svc      *consent.Service
	grants   *consent.Store
	branding config.BrandingConfig
	logger   *zap.Logger
}

// NewConsentHandler creates the handler.
func NewConsentHandler(svc *consent.Service, grants *consent.Store, branding config.BrandingConfig, logger *zap.Logger) *ConsentHandler {
	return &ConsentHandler{svc: svc, grants: grants, branding: branding, logger: logger}
}

// Routes mounts the consent routes.
func (h *ConsentHandler) Routes(r chi.Router) {
	r.Get("/", h.Prompt)
	r.Post("/decision", h.Decide)
	r.Get("/grants", h.ListGrants)
	r.Delete("/grants/{clientID}", h.RevokeGrant)
}

type promptResponse struct {
	AppName string `json:"app_name"`
	*consent.Prompt
}

// Prompt returns everything the consent screen renders: client identity and
// the requested scopes described in the caller's locale.
func (h *ConsentHandler) Prompt(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	prompt, err := h.svc.Describe(r.Context(), consent.PromptInput{
		ConsentCode: q.Get("consent_code"),
		ClientID:    q.Get("client_id"),
		Scope:       q.Get("scope"),
		Locale:      scopes.ParseLocale(requestLocale(r)),
	})
	if err != nil {
		h.writeConsentError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, promptResponse{AppName: h.branding.AppName, Prompt: prompt})
}

type decisionRequest struct {
	ConsentCode string `json:"consent_code"`
	ClientID    string `json:"client_id"`
	ReferenceID string `json:"reference_id,omitempty"`
	Scope       string `json:"scope,omitempty"`
	Accept      bool   `json:"accept"`
}

// Decide submits the user's accept or deny to the authorization endpoint and,
// on accept, persists the grant.
func (h *ConsentHandler) Decide(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "unauthorized")
		return
	}
	userID, err := claims.UserID()
	if err != nil {
		writeError(w, http.StatusUnauthorized, "unauthorized", "unauthorized")
		return
	}

	var req decisionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "malformed request body")
		return
	}

	redirectTo, err := h.svc.Decide(r.Context(), consent.DecisionInput{
		ConsentCode: req.ConsentCode,
		ClientID:    req.ClientID,
		UserID:      userID,
		ReferenceID: req.ReferenceID,
		Scope:       req.Scope,
		Accept:      req.Accept,
		IPAddress:   clientIP(r),
		UserAgent:   userAgent(r),
	})
	if err != nil {
		h.writeConsentError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"redirect_to": redirectTo})
}

// ListGrants returns the calling user's standing consents.
func (h *ConsentHandler) ListGrants(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "unauthorized")
		return
	}
	userID, err := claims.UserID()
	if err != nil {
		writeError(w, http.StatusUnauthorized, "unauthorized", "unauthorized")
		return
	}

	grants, err := h.grants.ListByUser(r.Context(), userID)
	if err != nil {
		h.logger.Error("list grants failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal_error", "failed to list grants")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"grants": grants})
}

// RevokeGrant withdraws the calling user's consent for one client.
func (h *ConsentHandler) RevokeGrant(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "unauthorized")
		return
	}
	userID, err := claims.UserID()
	if err != nil {
		writeError(w, http.StatusUnauthorized, "unauthorized", "unauthorized")
		return
	}

	referenceID := r.URL.Query().Get("reference_id")
	if err := h.grants.Revoke(r.Context(), chi.URLParam(r, "clientID"), userID, referenceID); err != nil {
		h.logger.Error("revoke grant failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal_error", "failed to revoke grant")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ConsentHandler) writeConsentError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, consent.ErrMissingCode), errors.Is(err, consent.ErrMissingClientID):
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, consent.ErrClientNotFound):
		writeError(w, http.StatusNotFound, "not_found", "client not found")
	case errors.Is(err, consent.ErrDecisionInFlight):
		writeError(w, http.StatusConflict, "conflict", "a decision for this request is already in flight")
	case errors.Is(err, consent.ErrAuthorization):
		writeError(w, http.StatusBadGateway, "authorization_failed", "authorization could not be completed")
	default:
		h.logger.Error("consent request failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal_error", "consent request failed")
	}
}
