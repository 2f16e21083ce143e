package cookiemiddleware

import (
	"net/http"
	"strings"
)

// CookieExtractor returns the request cookies to decode. A request without
// cookies is not an error; nil should be returned in that case. When an
// extractor fails the request proceeds with no incoming values.
type CookieExtractor func(r *http.Request) ([]*http.Cookie, error)

// RequestCookieExtractor is a CookieExtractor that reads the Cookie header.
func RequestCookieExtractor(r *http.Request) ([]*http.Cookie, error) {
	return r.Cookies(), nil
}

// HeaderCookieExtractor builds a CookieExtractor that reads cookies from the
// named header, for proxies that forward the browser's cookies under a
// different name.
func HeaderCookieExtractor(header string) CookieExtractor {
	return func(r *http.Request) ([]*http.Cookie, error) {
		return ParseCookieLines(r.Header.Values(header)), nil
	}
}

// MultiCookieExtractor returns a CookieExtractor that runs multiple
// CookieExtractors and takes the first non-empty result. If a
// CookieExtractor returns an error that error is immediately returned.
func MultiCookieExtractor(extractors ...CookieExtractor) CookieExtractor {
	return func(r *http.Request) ([]*http.Cookie, error) {
		for _, ex := range extractors {
			cookies, err := ex(r)
			if err != nil {
				return nil, err
			}

			if len(cookies) > 0 {
				return cookies, nil
			}
		}
		return nil, nil
	}
}

// ParseCookieLines parses Cookie header lines of "name=value" pairs
// separated by ";". Pairs that are not valid cookies are skipped.
func ParseCookieLines(lines []string) []*http.Cookie {
	var cookies []*http.Cookie
	for _, line := range lines {
		for _, part := range strings.Split(line, ";") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			parsed, err := http.ParseCookie(part)
			if err != nil {
				continue
			}
			cookies = append(cookies, parsed...)
		}
	}
	return cookies
}
