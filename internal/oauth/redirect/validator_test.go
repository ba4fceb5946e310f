package redirect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAcceptsWellFormedLists(t *testing.T) {
	cases := map[string][]string{
		"single https":       {"https://app.example.com/cb"},
		"multiple https":     {"https://app.example.com/cb", "https://other.example.com/return"},
		"http localhost":     {"http://localhost:3000/callback"},
		"http 127.0.0.1":     {"http://127.0.0.1:8080/cb"},
		"https with port":    {"https://app.example.com:8443/cb"},
		"mixed loopback/tls": {"https://app.example.com/cb", "http://localhost/dev"},
	}
	for name, uris := range cases {
		t.Run(name, func(t *testing.T) {
			result := Validate(uris)
			assert.True(t, result.Valid)
			assert.Empty(t, result.Errors)
		})
	}
}

func TestValidateEmptyList(t *testing.T) {
	result := Validate(nil)
	assert.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, ViolationEmptyList, result.Errors[0].Violation)
}

func TestValidateSingleViolations(t *testing.T) {
	cases := []struct {
		name string
		uri  string
		want Violation
	}{
		{"relative path", "/callback", ViolationMalformedURI},
		{"garbage", "://not-a-uri", ViolationMalformedURI},
		{"missing host", "https:///cb", ViolationMalformedURI},
		{"plain http", "http://app.example.com/cb", ViolationInsecureScheme},
		{"custom scheme", "myapp://callback.example.com/cb", ViolationInsecureScheme},
		{"wildcard host", "https://*.example.com/cb", ViolationWildcardNotAllowed},
		{"query marker", "https://app.example.com/cb?next=1", ViolationWildcardNotAllowed},
		{"fragment", "https://app.example.com/cb#token", ViolationFragmentNotAllowed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := Validate([]string{tc.uri})
			assert.False(t, result.Valid)
			require.NotEmpty(t, result.Errors)
			assert.Equal(t, tc.want, result.Errors[0].Violation)
			assert.Equal(t, tc.uri, result.Errors[0].URI)
		})
	}
}

func TestValidateAccumulatesAllViolations(t *testing.T) {
	result := Validate([]string{
		"https://ok.example.com/cb",
		"http://insecure.example.com/cb",
		"https://app.example.com/cb#frag",
		"://broken",
	})
	assert.False(t, result.Valid)
	assert.Len(t, result.Errors, 3)

	seen := map[Violation]bool{}
	for _, e := range result.Errors {
		seen[e.Violation] = true
	}
	assert.True(t, seen[ViolationInsecureScheme])
	assert.True(t, seen[ViolationFragmentNotAllowed])
	assert.True(t, seen[ViolationMalformedURI])
}
