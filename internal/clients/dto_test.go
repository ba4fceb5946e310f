package clients

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCreate() CreateRequest {
	return CreateRequest{
		Name:         "Acme Dashboard",
		RedirectURIs: []string{"https://app.example.com/cb"},
		Scopes:       []string{"openid", "profile"},
	}
}

func TestCreateRequestDefaults(t *testing.T) {
	params, err := validCreate().Validate()
	require.NoError(t, err)

	assert.Equal(t, "web", params.Type)
	assert.Equal(t, []string{"authorization_code"}, params.GrantTypes)
	assert.Equal(t, []string{"code"}, params.ResponseTypes)
}

func TestCreateRequestNormalizesRedirectURIs(t *testing.T) {
	req := validCreate()
	req.RedirectURIs = []string{
		"  https://app.example.com/cb  ",
		"https://app.example.com/cb",
		"",
		"https://other.example.com/cb",
	}

	params, err := req.Validate()
	require.NoError(t, err)
	assert.Equal(t,
		[]string{"https://app.example.com/cb", "https://other.example.com/cb"},
		params.RedirectURIs)
}

func TestCreateRequestNameLengthCountsRunes(t *testing.T) {
	// 256 multibyte characters is within the limit even though the byte
	// length is far larger.
	req := validCreate()
	req.Name = strings.Repeat("界", 256)
	_, err := req.Validate()
	assert.NoError(t, err)

	req.Name = strings.Repeat("界", 257)
	_, err = req.Validate()
	require.Error(t, err)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "name", verr.Fields[0].Field)
}

func TestCreateRequestRejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*CreateRequest)
		field  string
	}{
		{"missing name", func(r *CreateRequest) { r.Name = "  " }, "name"},
		{"no redirect uris", func(r *CreateRequest) { r.RedirectURIs = nil }, "redirect_uris"},
		{"whitespace-only uris", func(r *CreateRequest) { r.RedirectURIs = []string{"  ", ""} }, "redirect_uris"},
		{"insecure uri", func(r *CreateRequest) { r.RedirectURIs = []string{"http://evil.example.com"} }, "redirect_uris"},
		{"empty scopes", func(r *CreateRequest) { r.Scopes = nil }, "scopes"},
		{"bad grant type", func(r *CreateRequest) { r.GrantTypes = []string{"magic"} }, "grant_types"},
		{"bad response type", func(r *CreateRequest) { r.ResponseTypes = []string{"id_token"} }, "response_types"},
		{"bad client type", func(r *CreateRequest) { r.Type = "desktop" }, "type"},
		{"bad homepage", func(r *CreateRequest) { r.Homepage = "not a url" }, "homepage"},
		{"bad contact", func(r *CreateRequest) { r.Contacts = []string{"not-an-email"} }, "contacts"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validCreate()
			tc.mutate(&req)

			_, err := req.Validate()
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)

			found := false
			for _, f := range verr.Fields {
				if f.Field == tc.field {
					found = true
				}
			}
			assert.True(t, found, "expected a %s violation, got %v", tc.field, verr.Fields)
		})
	}
}

func TestCreateRequestAggregatesViolations(t *testing.T) {
	req := CreateRequest{
		RedirectURIs: []string{"http://evil.example.com", "https://x.example.com/#f"},
		GrantTypes:   []string{"magic"},
	}
	_, err := req.Validate()
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	// name, scopes, two URI violations, grant type.
	assert.GreaterOrEqual(t, len(verr.Fields), 5)
}

func TestUpdateRequestPartial(t *testing.T) {
	name := "Renamed"
	params, err := UpdateRequest{Name: &name}.Validate()
	require.NoError(t, err)

	assert.Equal(t, "Renamed", *params.Name)
	assert.Nil(t, params.RedirectURIs)
	assert.Nil(t, params.Disabled)
	assert.Nil(t, params.Type)
}

func TestUpdateRequestValidatesPresentFieldsOnly(t *testing.T) {
	badType := "desktop"
	_, err := UpdateRequest{Type: &badType}.Validate()
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Fields, 1)
	assert.Equal(t, "type", verr.Fields[0].Field)

	empty := []string{}
	_, err = UpdateRequest{RedirectURIs: &empty}.Validate()
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "redirect_uris", verr.Fields[0].Field)
}

func TestUpdateRequestNormalizesURIs(t *testing.T) {
	uris := []string{" https://app.example.com/cb ", "https://app.example.com/cb"}
	params, err := UpdateRequest{RedirectURIs: &uris}.Validate()
	require.NoError(t, err)
	assert.Equal(t, []string{"https://app.example.com/cb"}, *params.RedirectURIs)
}

func TestValidationErrorMessage(t *testing.T) {
	verr := &ValidationError{}
	verr.add("name", "required")
	assert.Contains(t, verr.Error(), "name: required")
	assert.True(t, errors.As(error(verr), new(*ValidationError)))
}
