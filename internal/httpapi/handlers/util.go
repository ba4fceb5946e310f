package handlers

import (
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"strings"

	"github.com/luminauth/idp-console/internal/clients"
)

// maxBodyBytes caps request bodies; console payloads are small.
const maxBodyBytes = 1 << 20

func decodeJSON(r *http.Request, v any) error {
	defer r.Body.Close() //nolint:errcheck
	decoder := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()
	return decoder.Decode(v)
}

func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		parts := strings.Split(forwarded, ",")
		return strings.TrimSpace(parts[0])
	}
	if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
		return realIP
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func userAgent(r *http.Request) string {
	return r.Header.Get("User-Agent")
}

// requestLocale returns the caller's preferred locale: an explicit locale
// query parameter wins, otherwise the Accept-Language header is used as-is.
func requestLocale(r *http.Request) string {
	if locale := strings.TrimSpace(r.URL.Query().Get("locale")); locale != "" {
		return locale
	}
	return r.Header.Get("Accept-Language")
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, map[string]any{
		"error": message,
		"code":  code,
	})
}

// writeValidationFailed writes a 400 carrying every field violation from err,
// or a generic bad-request envelope when err is not a validation error.
func writeValidationFailed(w http.ResponseWriter, err error) {
	var verr *clients.ValidationError
	if errors.As(err, &verr) {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error":  "validation failed",
			"code":   "invalid_request",
			"fields": verr.Fields,
		})
		return
	}
	writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
}
