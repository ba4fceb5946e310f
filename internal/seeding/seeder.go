package seeding

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/luminauth/idp-console/internal/clients"
	"github.com/luminauth/idp-console/internal/ent"
	"github.com/luminauth/idp-console/internal/ent/scopedescription"
	"github.com/luminauth/idp-console/internal/scopes"
)

// Seeder provisions baseline data for a fresh deployment.
type Seeder struct {
	ent    *ent.Client
	logger *zap.Logger
}

// New constructs a Seeder.
func New(entClient *ent.Client, logger *zap.Logger) *Seeder {
	return &Seeder{ent: entClient, logger: logger}
}

// SeedScopeDescriptions loads the compiled-in scope dictionary into the
// store. Existing rows are left untouched so operator edits survive reseeds.
func (s *Seeder) SeedScopeDescriptions(ctx context.Context) error {
	for tag, entries := range scopes.DictionaryEntries() {
		locale := tag.String()
		for name, desc := range entries {
			exists, err := s.ent.ScopeDescription.Query().
				Where(
					scopedescription.NameEQ(name),
					scopedescription.LocaleEQ(locale),
				).
				Exist(ctx)
			if err != nil {
				return fmt.Errorf("check scope description %s/%s: %w", name, locale, err)
			}
			if exists {
				continue
			}
			if _, err := s.ent.ScopeDescription.Create().
				SetName(name).
				SetLocale(locale).
				SetDisplayName(desc.DisplayName).
				SetDescription(desc.Description).
				Save(ctx); err != nil {
				return fmt.Errorf("seed scope description %s/%s: %w", name, locale, err)
			}
			s.logger.Info("seeded scope description",
				zap.String("scope", name),
				zap.String("locale", locale),
			)
		}
	}
	return nil
}

// SeedDevClient registers a development OAuth client when none exists yet.
// The plaintext secret is returned so it can be printed once.
func (s *Seeder) SeedDevClient(ctx context.Context, store *clients.Store) (*clients.Client, string, error) {
	existing, _, err := store.List(ctx, "Development Console", 1, 0)
	if err != nil {
		return nil, "", fmt.Errorf("check dev client: %w", err)
	}
	if len(existing) > 0 {
		return existing[0], "", nil
	}

	client, secret, err := store.Create(ctx, clients.CreateParams{
		Name:          "Development Console",
		Type:          "web",
		RedirectURIs:  []string{"http://localhost:3000/callback"},
		Scopes:        []string{"openid", "profile", "email"},
		GrantTypes:    []string{"authorization_code", "refresh_token"},
		ResponseTypes: []string{"code"},
	})
	if err != nil {
		return nil, "", fmt.Errorf("create dev client: %w", err)
	}
	s.logger.Info("seeded development client", zap.String("client_id", client.ClientID))
	return client, secret, nil
}
