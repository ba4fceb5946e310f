package consent

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
)

// ErrAuthorization is the generic failure surfaced to end users when the
// upstream authorization endpoint fails. The underlying detail is logged,
// never shown.
var ErrAuthorization = errors.New("authorization failed")

// Decision is the payload accepted by the authorization endpoint for an
// active consent code.
type Decision struct {
	Accept bool   `json:"accept"`
	Scope  string `json:"scope"`
}

// Authorizer submits a consent decision to the authorization server and
// returns the continuation redirect URL. Both accept and deny produce a
// redirect; deny is not an error.
type Authorizer interface {
	Submit(ctx context.Context, consentCode string, decision Decision) (string, error)
}

// HTTPAuthorizer talks to the authorization server over its JSON API.
type HTTPAuthorizer struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

// NewHTTPAuthorizer constructs an HTTPAuthorizer.
func NewHTTPAuthorizer(baseURL string, timeout time.Duration, logger *zap.Logger) *HTTPAuthorizer {
	return &HTTPAuthorizer{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

type authorizeResponse struct {
	RedirectTo string `json:"redirect_to"`
	Error      string `json:"error,omitempty"`
}

// Submit posts the decision for the given consent code. Any transport
// failure, non-2xx status, or malformed body collapses into ErrAuthorization.
func (a *HTTPAuthorizer) Submit(ctx context.Context, consentCode string, decision Decision) (string, error) {
	body, err := json.Marshal(decision)
	if err != nil {
		return "", fmt.Errorf("encode decision: %w", err)
	}

	endpoint := fmt.Sprintf("%s/consent/%s", a.baseURL, url.PathEscape(consentCode))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build authorize request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		a.logger.Error("consent submission failed", zap.Error(err))
		return "", ErrAuthorization
	}
	defer resp.Body.Close() //nolint:errcheck

	payload, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		a.logger.Error("read authorize response", zap.Error(err))
		return "", ErrAuthorization
	}

	var parsed authorizeResponse
	if err := json.Unmarshal(payload, &parsed); err != nil {
		a.logger.Error("malformed authorize response",
			zap.Int("status", resp.StatusCode),
			zap.Error(err))
		return "", ErrAuthorization
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 || parsed.RedirectTo == "" {
		a.logger.Error("authorize endpoint rejected decision",
			zap.Int("status", resp.StatusCode),
			zap.String("upstream_error", parsed.Error))
		return "", ErrAuthorization
	}
	return parsed.RedirectTo, nil
}
