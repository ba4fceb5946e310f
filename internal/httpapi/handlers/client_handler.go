package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/luminauth/idp-console/internal/audit"
	"github.com/luminauth/idp-console/internal/clients"
	"github.com/luminauth/idp-console/internal/httpapi/middleware"
)

// ClientHandler exposes OAuth client administration endpoints.
type ClientHandler struct {
	store   *clients.Store
	auditor *audit.Logger
	logger  *zap.Logger
}

// NewClientHandler creates the handler.
func NewClientHandler(store *clients.Store, auditor *audit.Logger, logger *zap.Logger) *ClientHandler {
	return &ClientHandler{store: store, auditor: auditor, logger: logger}
}

// Routes mounts the client administration routes.
func (h *ClientHandler) Routes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Route("/{clientID}", func(r chi.Router) {
		r.Get("/", h.Get)
		r.Patch("/", h.Update)
		r.Delete("/", h.Delete)
		r.Post("/regenerate-secret", h.RotateSecret)
	})
}

type createClientResponse struct {
	Client       *clients.Client `json:"client"`
	ClientSecret string          `json:"client_secret,omitempty"`
}

// Create registers a new OAuth client. The plaintext secret appears in this
// response and nowhere else.
func (h *ClientHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req clients.CreateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "malformed request body")
		return
	}
	params, err := req.Validate()
	if err != nil {
		writeValidationFailed(w, err)
		return
	}

	client, secret, err := h.store.Create(r.Context(), *params)
	if err != nil {
		h.logger.Error("create client failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal_error", "failed to create client")
		return
	}

	h.recordAudit(r, "client.created", client.ClientID, map[string]any{"name": client.Name})
	writeJSON(w, http.StatusCreated, createClientResponse{Client: client, ClientSecret: secret})
}

// Get returns a single client by its client_id.
func (h *ClientHandler) Get(w http.ResponseWriter, r *http.Request) {
	client, err := h.store.Get(r.Context(), chi.URLParam(r, "clientID"))
	if err != nil {
		h.writeStoreError(w, err, "load client")
		return
	}
	writeJSON(w, http.StatusOK, client)
}

// Update applies a partial update to a client.
func (h *ClientHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req clients.UpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "malformed request body")
		return
	}
	params, err := req.Validate()
	if err != nil {
		writeValidationFailed(w, err)
		return
	}

	clientID := chi.URLParam(r, "clientID")
	client, err := h.store.Update(r.Context(), clientID, *params)
	if err != nil {
		h.writeStoreError(w, err, "update client")
		return
	}

	h.recordAudit(r, "client.updated", clientID, nil)
	writeJSON(w, http.StatusOK, client)
}

// Delete removes a client and everything that references it.
func (h *ClientHandler) Delete(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "clientID")
	if err := h.store.Delete(r.Context(), clientID); err != nil {
		h.writeStoreError(w, err, "delete client")
		return
	}

	h.recordAudit(r, "client.deleted", clientID, nil)
	w.WriteHeader(http.StatusNoContent)
}

// RotateSecret issues a fresh secret, invalidating the previous one.
func (h *ClientHandler) RotateSecret(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "clientID")
	secret, err := h.store.RotateSecret(r.Context(), clientID)
	if err != nil {
		h.writeStoreError(w, err, "rotate client secret")
		return
	}

	h.recordAudit(r, "client.secret_rotated", clientID, nil)
	writeJSON(w, http.StatusOK, map[string]string{"client_secret": secret})
}

type listClientsResponse struct {
	Clients []*clients.Client `json:"clients"`
	Total   int               `json:"total"`
	Limit   int               `json:"limit"`
	Offset  int               `json:"offset"`
}

// List returns clients matching an optional search term, newest first.
func (h *ClientHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", 50)
	offset := queryInt(r, "offset", 0)

	result, total, err := h.store.List(r.Context(), r.URL.Query().Get("search"), limit, offset)
	if err != nil {
		h.logger.Error("list clients failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal_error", "failed to list clients")
		return
	}
	writeJSON(w, http.StatusOK, listClientsResponse{
		Clients: result,
		Total:   total,
		Limit:   limit,
		Offset:  offset,
	})
}

func (h *ClientHandler) writeStoreError(w http.ResponseWriter, err error, action string) {
	switch {
	case errors.Is(err, clients.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", "client not found")
	case errors.Is(err, clients.ErrDuplicateClientID):
		h.logger.Error(action+" failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal_error", "failed to "+action)
	default:
		h.logger.Error(action+" failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal_error", "failed to "+action)
	}
}

func (h *ClientHandler) recordAudit(r *http.Request, action, clientID string, extra map[string]any) {
	if h.auditor == nil {
		return
	}
	entry := audit.Entry{
		Action:     action,
		Resource:   "oauth_client",
		ResourceID: clientID,
		IPAddress:  clientIP(r),
		UserAgent:  userAgent(r),
		Context:    extra,
	}
	if claims, ok := middleware.ClaimsFromContext(r.Context()); ok {
		if actorID, err := claims.UserID(); err == nil {
			entry.ActorID = &actorID
		}
	}
	h.auditor.Record(context.WithoutCancel(r.Context()), entry)
}

func queryInt(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return fallback
	}
	return v
}
