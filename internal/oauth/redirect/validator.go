package redirect

import (
	"fmt"
	"net/url"
	"strings"
)

// Violation identifies why a redirect URI list was rejected.
type Violation string

const (
	// ViolationEmptyList indicates no URIs were supplied.
	ViolationEmptyList Violation = "empty_list"
	// ViolationMalformedURI indicates a URI could not be parsed as absolute.
	ViolationMalformedURI Violation = "malformed_uri"
	// ViolationInsecureScheme indicates a non-HTTPS URI on a non-loopback host.
	ViolationInsecureScheme Violation = "insecure_scheme"
	// ViolationWildcardNotAllowed indicates the URI contains * or ?.
	ViolationWildcardNotAllowed Violation = "wildcard_not_allowed"
	// ViolationFragmentNotAllowed indicates the URI carries a fragment.
	ViolationFragmentNotAllowed Violation = "fragment_not_allowed"
)

// Error describes a single violation for a single URI.
type Error struct {
	URI       string
	Violation Violation
}

func (e Error) Error() string {
	if e.URI == "" {
		return string(e.Violation)
	}
	return fmt.Sprintf("%s: %q", e.Violation, e.URI)
}

// Result aggregates the outcome of validating a URI list.
type Result struct {
	Valid  bool
	Errors []Error
}

// Validate checks every URI in the list and accumulates all violations so the
// caller can surface them together. It never short-circuits and has no side
// effects.
func Validate(uris []string) Result {
	if len(uris) == 0 {
		return Result{Errors: []Error{{Violation: ViolationEmptyList}}}
	}

	var errs []Error
	for _, raw := range uris {
		errs = append(errs, check(raw)...)
	}
	return Result{Valid: len(errs) == 0, Errors: errs}
}

func check(raw string) []Error {
	var errs []Error

	if strings.ContainsAny(raw, "*?") {
		errs = append(errs, Error{URI: raw, Violation: ViolationWildcardNotAllowed})
	}

	u, err := url.Parse(raw)
	if err != nil || !u.IsAbs() || u.Host == "" {
		errs = append(errs, Error{URI: raw, Violation: ViolationMalformedURI})
		return errs
	}

	if u.Scheme != "https" && !isLoopback(u.Hostname()) {
		errs = append(errs, Error{URI: raw, Violation: ViolationInsecureScheme})
	}
	if u.Fragment != "" || strings.Contains(raw, "#") {
		errs = append(errs, Error{URI: raw, Violation: ViolationFragmentNotAllowed})
	}
	return errs
}

func isLoopback(host string) bool {
	return strings.EqualFold(host, "localhost") || host == "127.0.0.1" || host == "::1"
}
