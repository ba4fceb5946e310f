package consent

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"github.com/luminauth/idp-console/internal/audit"
	"github.com/luminauth/idp-console/internal/clients"
	"github.com/luminauth/idp-console/internal/scopes"
)

var (
	// ErrMissingCode indicates the authorization attempt carried no consent code.
	ErrMissingCode = errors.New("consent code missing")
	// ErrMissingClientID indicates the authorization attempt carried no client id.
	ErrMissingClientID = errors.New("client id missing")
	// ErrClientNotFound indicates the referenced client is unknown.
	ErrClientNotFound = errors.New("client not found")
	// ErrDecisionInFlight indicates a decision for this consent code is
	// already being processed.
	ErrDecisionInFlight = errors.New("consent decision already in flight")
)

var decisionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "idp_console",
	Subsystem: "consent",
	Name:      "decisions_total",
	Help:      "Consent decisions by outcome.",
}, []string{"outcome"})

// Service drives a single authorization attempt: presenting requested scopes
// and submitting the user's decision to the authorization server. No state is
// held between the two steps; the consent code and query parameters are
// reconstructed from each request.
type Service struct {
	clients    *clients.Store
	grants     *Store
	resolver   *scopes.Resolver
	authorizer Authorizer
	redis      *redis.Client
	auditor    *audit.Logger
	lockTTL    time.Duration
	logger     *zap.Logger
}

// Dependencies aggregates constructor inputs.
type Dependencies struct {
	Clients    *clients.Store
	Grants     *Store
	Resolver   *scopes.Resolver
	Authorizer Authorizer
	Redis      *redis.Client
	Auditor    *audit.Logger
	LockTTL    time.Duration
	Logger     *zap.Logger
}

// New constructs the consent service.
func New(deps Dependencies) *Service {
	lockTTL := deps.LockTTL
	if lockTTL <= 0 {
		lockTTL = 30 * time.Second
	}
	return &Service{
		clients:    deps.Clients,
		grants:     deps.Grants,
		resolver:   deps.Resolver,
		authorizer: deps.Authorizer,
		redis:      deps.Redis,
		auditor:    deps.Auditor,
		lockTTL:    lockTTL,
		logger:     deps.Logger,
	}
}

// PromptInput carries the query state of a pending authorization attempt.
type PromptInput struct {
	ConsentCode string
	ClientID    string
	Scope       string
	Locale      language.Tag
}

// Prompt is the renderable consent screen payload.
type Prompt struct {
	ClientID   string               `json:"client_id"`
	ClientName string               `json:"client_name"`
	ClientLogo string               `json:"client_logo,omitempty"`
	Scopes     []scopes.Description `json:"scopes"`
}

// Describe validates the pending attempt and resolves the requested scopes to
// display text. Nothing is persisted.
func (s *Service) Describe(ctx context.Context, in PromptInput) (*Prompt, error) {
	client, err := s.lookupClient(ctx, in.ConsentCode, in.ClientID)
	if err != nil {
		return nil, err
	}

	requested := strings.Fields(in.Scope)
	if len(requested) == 0 {
		requested = client.Scopes
	}

	logo := client.Logo
	if logo == "" {
		logo = client.Icon
	}
	return &Prompt{
		ClientID:   client.ClientID,
		ClientName: client.Name,
		ClientLogo: logo,
		Scopes:     s.resolver.ResolveAll(ctx, requested, in.Locale),
	}, nil
}

// DecisionInput carries the user's submitted decision.
type DecisionInput struct {
	ConsentCode string
	ClientID    string
	UserID      uuid.UUID
	ReferenceID string
	Scope       string
	Accept      bool
	IPAddress   string
	UserAgent   string
}

// Decide submits the decision to the authorization endpoint and, on an
// accepted decision, records the grant. The returned URL is the authorization
// continuation the caller must redirect to; a denial also redirects. A failed
// upstream call leaves no grant behind and is surfaced as ErrAuthorization.
func (s *Service) Decide(ctx context.Context, in DecisionInput) (string, error) {
	client, err := s.lookupClient(ctx, in.ConsentCode, in.ClientID)
	if err != nil {
		return "", err
	}

	release, err := s.acquireLock(ctx, in.ConsentCode)
	if err != nil {
		return "", err
	}
	defer release()

	redirectTo, err := s.authorizer.Submit(ctx, in.ConsentCode, Decision{
		Accept: in.Accept,
		Scope:  in.Scope,
	})
	if err != nil {
		decisionsTotal.WithLabelValues("error").Inc()
		return "", err
	}

	if in.Accept {
		if _, err := s.grants.Upsert(ctx, client.ClientID, in.UserID, in.ReferenceID, strings.Fields(in.Scope)); err != nil {
			return "", fmt.Errorf("record consent grant: %w", err)
		}
		decisionsTotal.WithLabelValues("accept").Inc()
	} else {
		// Denial leaves no row behind; absence is the signal.
		decisionsTotal.WithLabelValues("deny").Inc()
	}

	s.recordAudit(ctx, client.ClientID, in)
	return redirectTo, nil
}

func (s *Service) lookupClient(ctx context.Context, consentCode, clientID string) (*clients.Client, error) {
	if consentCode == "" {
		return nil, ErrMissingCode
	}
	if clientID == "" {
		return nil, ErrMissingClientID
	}
	client, err := s.clients.Get(ctx, clientID)
	if err != nil {
		if errors.Is(err, clients.ErrNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}
	// Disabled clients are indistinguishable from missing ones.
	if client.Disabled {
		return nil, ErrClientNotFound
	}
	return client, nil
}

// acquireLock makes each submission mutually exclusive with itself. The lock
// is advisory: the authorization endpoint remains the source of truth for
// consent code replay.
func (s *Service) acquireLock(ctx context.Context, consentCode string) (func(), error) {
	if s.redis == nil {
		return func() {}, nil
	}
	key := "consent:inflight:" + consentCode
	ok, err := s.redis.SetNX(ctx, key, "1", s.lockTTL).Result()
	if err != nil {
		s.logger.Warn("consent lock unavailable", zap.Error(err))
		return func() {}, nil
	}
	if !ok {
		return nil, ErrDecisionInFlight
	}
	return func() {
		if err := s.redis.Del(context.WithoutCancel(ctx), key).Err(); err != nil {
			s.logger.Warn("release consent lock", zap.Error(err))
		}
	}, nil
}

func (s *Service) recordAudit(ctx context.Context, clientID string, in DecisionInput) {
	if s.auditor == nil {
		return
	}
	action := "consent.denied"
	if in.Accept {
		action = "consent.accepted"
	}
	s.auditor.Record(ctx, audit.Entry{
		ActorID:    &in.UserID,
		Action:     action,
		Resource:   "oauth_client",
		ResourceID: clientID,
		IPAddress:  in.IPAddress,
		UserAgent:  in.UserAgent,
		Context: map[string]any{
			"scope": in.Scope,
		},
	})
}
