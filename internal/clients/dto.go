package clients

import (
	"fmt"
	"net/mail"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/luminauth/idp-console/internal/oauth/redirect"
)

// FieldError describes a single schema violation.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates every schema violation in a request. The request
// is rejected as a whole; nothing is partially applied.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

func (e *ValidationError) orNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

// Enumerations accepted by the admin API.
var (
	grantTypes = map[string]bool{
		"authorization_code": true,
		"password":           true,
		"refresh_token":      true,
		"implicit":           true,
		"client_credentials": true,
		"urn:ietf:params:oauth:grant-type:jwt-bearer":   true,
		"urn:ietf:params:oauth:grant-type:saml2-bearer": true,
	}
	responseTypes = map[string]bool{
		"code":  true,
		"token": true,
	}
	clientTypes = map[string]bool{
		"web":    true,
		"public": true,
		"mobile": true,
	}
)

// CreateRequest is the untrusted admin payload for registering a client.
type CreateRequest struct {
	Name          string   `json:"name"`
	Icon          string   `json:"icon,omitempty"`
	Type          string   `json:"type,omitempty"`
	RedirectURIs  []string `json:"redirect_uris"`
	Scopes        []string `json:"scopes"`
	GrantTypes    []string `json:"grant_types,omitempty"`
	ResponseTypes []string `json:"response_types,omitempty"`
	Homepage      string   `json:"homepage,omitempty"`
	Logo          string   `json:"logo,omitempty"`
	Terms         string   `json:"terms,omitempty"`
	Privacy       string   `json:"privacy,omitempty"`
	Contacts      []string `json:"contacts,omitempty"`
}

// CreateParams is the validated, normalized shape consumed by the store.
type CreateParams struct {
	Name          string
	Icon          string
	Type          string
	RedirectURIs  []string
	Scopes        []string
	GrantTypes    []string
	ResponseTypes []string
	Homepage      string
	Logo          string
	Terms         string
	Privacy       string
	Contacts      []string
}

// Validate normalizes the request and returns persistence-ready parameters,
// or a ValidationError listing every violation.
func (r CreateRequest) Validate() (*CreateParams, error) {
	verr := &ValidationError{}

	name := strings.TrimSpace(r.Name)
	if name == "" {
		verr.add("name", "required")
	} else if utf8.RuneCountInString(name) > 256 {
		verr.add("name", "must be at most 256 characters")
	}

	uris := normalizeURIs(r.RedirectURIs)
	for _, e := range redirect.Validate(uris).Errors {
		verr.add("redirect_uris", e.Error())
	}

	clientType := r.Type
	if clientType == "" {
		clientType = "web"
	}
	if !clientTypes[clientType] {
		verr.add("type", fmt.Sprintf("unknown client type %q", r.Type))
	}

	if len(r.Scopes) == 0 {
		verr.add("scopes", "at least one scope is required")
	}

	grants := r.GrantTypes
	if len(grants) == 0 {
		grants = []string{"authorization_code"}
	}
	for _, g := range grants {
		if !grantTypes[g] {
			verr.add("grant_types", fmt.Sprintf("unknown grant type %q", g))
		}
	}

	responses := r.ResponseTypes
	if len(responses) == 0 {
		responses = []string{"code"}
	}
	for _, rt := range responses {
		if !responseTypes[rt] {
			verr.add("response_types", fmt.Sprintf("unknown response type %q", rt))
		}
	}

	checkOptionalURL(verr, "icon", r.Icon)
	checkOptionalURL(verr, "homepage", r.Homepage)
	checkOptionalURL(verr, "logo", r.Logo)
	checkOptionalURL(verr, "terms", r.Terms)
	checkOptionalURL(verr, "privacy", r.Privacy)
	checkContacts(verr, r.Contacts)

	if err := verr.orNil(); err != nil {
		return nil, err
	}
	return &CreateParams{
		Name:          name,
		Icon:          r.Icon,
		Type:          clientType,
		RedirectURIs:  uris,
		Scopes:        r.Scopes,
		GrantTypes:    grants,
		ResponseTypes: responses,
		Homepage:      r.Homepage,
		Logo:          r.Logo,
		Terms:         r.Terms,
		Privacy:       r.Privacy,
		Contacts:      r.Contacts,
	}, nil
}

// UpdateRequest carries a partial admin edit. Only non-nil fields are
// validated and applied; absent fields are left untouched.
type UpdateRequest struct {
	Name          *string   `json:"name,omitempty"`
	Icon          *string   `json:"icon,omitempty"`
	Type          *string   `json:"type,omitempty"`
	Disabled      *bool     `json:"disabled,omitempty"`
	RedirectURIs  *[]string `json:"redirect_uris,omitempty"`
	Scopes        *[]string `json:"scopes,omitempty"`
	GrantTypes    *[]string `json:"grant_types,omitempty"`
	ResponseTypes *[]string `json:"response_types,omitempty"`
	Homepage      *string   `json:"homepage,omitempty"`
	Logo          *string   `json:"logo,omitempty"`
	Terms         *string   `json:"terms,omitempty"`
	Privacy       *string   `json:"privacy,omitempty"`
	Contacts      *[]string `json:"contacts,omitempty"`
}

// UpdateParams mirrors UpdateRequest after normalization.
type UpdateParams struct {
	Name          *string
	Icon          *string
	Type          *string
	Disabled      *bool
	RedirectURIs  *[]string
	Scopes        *[]string
	GrantTypes    *[]string
	ResponseTypes *[]string
	Homepage      *string
	Logo          *string
	Terms         *string
	Privacy       *string
	Contacts      *[]string
}

// Validate checks the fields present in the partial update.
func (r UpdateRequest) Validate() (*UpdateParams, error) {
	verr := &ValidationError{}
	params := &UpdateParams{
		Icon:     r.Icon,
		Disabled: r.Disabled,
		Homepage: r.Homepage,
		Logo:     r.Logo,
		Terms:    r.Terms,
		Privacy:  r.Privacy,
		Scopes:   r.Scopes,
		Contacts: r.Contacts,
	}

	if r.Name != nil {
		name := strings.TrimSpace(*r.Name)
		if name == "" {
			verr.add("name", "required")
		} else if utf8.RuneCountInString(name) > 256 {
			verr.add("name", "must be at most 256 characters")
		}
		params.Name = &name
	}

	if r.Type != nil {
		if !clientTypes[*r.Type] {
			verr.add("type", fmt.Sprintf("unknown client type %q", *r.Type))
		}
		params.Type = r.Type
	}

	if r.RedirectURIs != nil {
		uris := normalizeURIs(*r.RedirectURIs)
		for _, e := range redirect.Validate(uris).Errors {
			verr.add("redirect_uris", e.Error())
		}
		params.RedirectURIs = &uris
	}

	if r.Scopes != nil && len(*r.Scopes) == 0 {
		verr.add("scopes", "at least one scope is required")
	}

	if r.GrantTypes != nil {
		for _, g := range *r.GrantTypes {
			if !grantTypes[g] {
				verr.add("grant_types", fmt.Sprintf("unknown grant type %q", g))
			}
		}
		params.GrantTypes = r.GrantTypes
	}

	if r.ResponseTypes != nil {
		for _, rt := range *r.ResponseTypes {
			if !responseTypes[rt] {
				verr.add("response_types", fmt.Sprintf("unknown response type %q", rt))
			}
		}
		params.ResponseTypes = r.ResponseTypes
	}

	if r.Icon != nil {
		checkOptionalURL(verr, "icon", *r.Icon)
	}
	if r.Homepage != nil {
		checkOptionalURL(verr, "homepage", *r.Homepage)
	}
	if r.Logo != nil {
		checkOptionalURL(verr, "logo", *r.Logo)
	}
	if r.Terms != nil {
		checkOptionalURL(verr, "terms", *r.Terms)
	}
	if r.Privacy != nil {
		checkOptionalURL(verr, "privacy", *r.Privacy)
	}
	if r.Contacts != nil {
		checkContacts(verr, *r.Contacts)
	}

	if err := verr.orNil(); err != nil {
		return nil, err
	}
	return params, nil
}

// normalizeURIs trims whitespace, drops empty strings, and deduplicates with
// case-sensitive set semantics, preserving first-seen order. Runs before URI
// validation so the "at least one" and shape checks see the cleaned list.
func normalizeURIs(uris []string) []string {
	seen := make(map[string]bool, len(uris))
	out := make([]string, 0, len(uris))
	for _, raw := range uris {
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" || seen[trimmed] {
			continue
		}
		seen[trimmed] = true
		out = append(out, trimmed)
	}
	return out
}

func checkOptionalURL(verr *ValidationError, field, value string) {
	if value == "" {
		return
	}
	u, err := url.Parse(value)
	if err != nil || !u.IsAbs() || u.Host == "" {
		verr.add(field, fmt.Sprintf("%q is not a valid URL", value))
	}
}

func checkContacts(verr *ValidationError, contacts []string) {
	for _, c := range contacts {
		if _, err := mail.ParseAddress(c); err != nil {
			verr.add("contacts", fmt.Sprintf("%q is not a valid email address", c))
		}
	}
}
