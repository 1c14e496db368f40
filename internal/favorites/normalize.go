package favorites

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"
)

// ErrUnsupportedURL is returned for URLs that are not absolute http(s) URLs
// with a host.
var ErrUnsupportedURL = errors.New("URL must be an absolute http or https URL")

// ValidateURL trims raw and checks that it is an absolute http or https URL
// with a host. The trimmed input is returned unchanged otherwise; it is what
// gets stored and fetched.
func ValidateURL(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if _, err := parseHTTPURL(trimmed); err != nil {
		return "", err
	}

	return trimmed, nil
}

// URLKey returns the key used to detect a user saving the same address twice.
// Only differences that never change the addressed resource are folded:
//   - Lower-case the scheme and host
//   - Drop default ports (http:80, https:443), keep non-default ports
//   - An empty path becomes "/"
//
// Path (including a trailing slash), query and fragment are kept as given, so
// hash-routed pages such as "/#/inbox" and "/#/settings" get distinct keys.
func URLKey(raw string) (string, error) {
	u, err := parseHTTPURL(strings.TrimSpace(raw))
	if err != nil {
		return "", err
	}

	if u.Path == "" && u.RawPath == "" {
		u.Path = "/"
	}

	// lowercase host and drop default ports
	host := strings.ToLower(u.Host)
	port := ""
	if ph, pp, err := net.SplitHostPort(host); err == nil {
		host, port = ph, pp
	}
	if port != "" && !((u.Scheme == "http" && port == "80") || (u.Scheme == "https" && port == "443")) {
		host = net.JoinHostPort(host, port)
	}
	u.Host = host

	return u.String(), nil
}

func parseHTTPURL(raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("could not parse URL: %w", err)
	}

	u.Scheme = strings.ToLower(u.Scheme)
	if (u.Scheme != "http" && u.Scheme != "https") || u.Hostname() == "" {
		return nil, ErrUnsupportedURL
	}

	return u, nil
}
