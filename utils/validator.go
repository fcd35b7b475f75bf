package utils

import (
	"net/url"
	"regexp"
	"strings"
)

// sourcePattern matches bare two-label hostnames such as "monkeytype.co".
// Schemes, paths and subdomain chains are rejected; the redirect route
// strips a single leading "www." itself, so it is never stored.
var sourcePattern = regexp.MustCompile(`^\w+\.\w+$`)

// ValidateSource checks a redirect config's source hostname
func ValidateSource(source string) error {
	if source == "" {
		return ErrEmptySource
	}
	if !sourcePattern.MatchString(source) {
		return ErrInvalidSource
	}
	return nil
}

// ValidateTarget checks that the redirect target is an absolute http(s) URL
func ValidateTarget(target string) error {
	if target == "" {
		return ErrEmptyTarget
	}

	parsedURL, err := url.ParseRequestURI(target)
	if err != nil {
		return ErrInvalidTarget
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return ErrInvalidScheme
	}

	if parsedURL.Host == "" {
		return ErrEmptyTargetHost
	}

	return nil
}

// ValidateCredentials checks registration and login input shape
func ValidateCredentials(username, password string) error {
	if len(username) < 3 {
		return ErrUsernameTooShort
	}
	if len(password) < 6 {
		return ErrPasswordTooShort
	}
	return nil
}

// NormalizeHostname strips exactly one leading "www." from a hostname. The
// strip is deliberately not recursive: "www.www.example.com" normalizes to
// "www.example.com".
func NormalizeHostname(hostname string) string {
	if strings.HasPrefix(hostname, "www.") {
		return hostname[4:]
	}
	return hostname
}
