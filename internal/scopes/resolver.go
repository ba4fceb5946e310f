package scopes

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/text/language"

	"github.com/luminauth/idp-console/internal/ent"
	"github.com/luminauth/idp-console/internal/ent/scopedescription"
)

// Description is the renderable text for a single scope. It is always
// populated; at worst the scope string itself is used as display text.
type Description struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	Description string `json:"description,omitempty"`
}

// Resolver looks up localized scope display text, stitching together the
// ScopeDescription store, the compiled-in dictionary, and a literal fallback.
// It is read-only with respect to the store and never fails.
type Resolver struct {
	ent     *ent.Client
	matcher language.Matcher
	logger  *zap.Logger
}

// NewResolver constructs a Resolver.
func NewResolver(entClient *ent.Client, logger *zap.Logger) *Resolver {
	return &Resolver{
		ent:     entClient,
		matcher: language.NewMatcher(dictionaryTags),
		logger:  logger,
	}
}

// Resolve returns display text for one scope in the requested locale.
// Lookup order: store row for the exact locale, store row for the base
// language, static dictionary for the matched language, literal scope string.
func (r *Resolver) Resolve(ctx context.Context, scope string, locale language.Tag) Description {
	if row := r.lookup(ctx, scope, locale); row != nil {
		return Description{Name: scope, DisplayName: row.DisplayName, Description: row.Description}
	}

	_, idx, _ := r.matcher.Match(locale)
	if entry, ok := dictionary[dictionaryTags[idx]][scope]; ok {
		entry.Name = scope
		return entry
	}

	return Description{Name: scope, DisplayName: scope}
}

// ResolveAll resolves a scope list in order.
func (r *Resolver) ResolveAll(ctx context.Context, scopeNames []string, locale language.Tag) []Description {
	out := make([]Description, 0, len(scopeNames))
	for _, s := range scopeNames {
		out = append(out, r.Resolve(ctx, s, locale))
	}
	return out
}

func (r *Resolver) lookup(ctx context.Context, scope string, locale language.Tag) *ent.ScopeDescription {
	locales := []string{locale.String()}
	if base, conf := locale.Base(); conf != language.No && base.String() != locale.String() {
		locales = append(locales, base.String())
	}

	for _, loc := range locales {
		row, err := r.ent.ScopeDescription.Query().
			Where(
				scopedescription.NameEQ(scope),
				scopedescription.LocaleEQ(loc),
			).
			Only(ctx)
		if err == nil {
			return row
		}
		if !ent.IsNotFound(err) {
			// Store trouble falls back to static text rather than failing
			// the consent prompt.
			r.logger.Warn("scope description lookup failed",
				zap.String("scope", scope),
				zap.String("locale", loc),
				zap.Error(err))
			return nil
		}
	}
	return nil
}

// ParseLocale parses either a single BCP 47 tag or a weighted
// Accept-Language list, returning the most preferred tag. Empty or malformed
// input defaults to English.
func ParseLocale(raw string) language.Tag {
	if raw == "" {
		return language.English
	}
	tags, _, err := language.ParseAcceptLanguage(raw)
	if err != nil || len(tags) == 0 {
		return language.English
	}
	return tags[0]
}
