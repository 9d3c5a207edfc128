// Package patch performs targeted value substitutions in config text.
//
// Patches are line-anchored match-and-splice operations: only the bytes
// of the matched value span are replaced, so indentation, spacing, and
// every unrelated line survive byte-for-byte. The documents are never
// parsed as TOML; a full decode-and-re-emit round trip would not
// preserve formatting.
package patch

import (
	"regexp"
	"strconv"

	"github.com/eth-fabric/portsync/internal/errors"
)

// urlSplit breaks an http(s) URL into scheme, authority, and remainder.
// The authority is everything up to the first "/" or the end.
var urlSplit = regexp.MustCompile(`^(https?://)([^/]+)(/.*)?$`)

// authorityPort matches an existing ":<port>" suffix on an authority.
var authorityPort = regexp.MustCompile(`:\d+$`)

// scalarPattern matches a "<key> = <value>" line, tolerating horizontal
// whitespace around the key and "=". The value group is lazy and
// excludes trailing whitespace, so splicing it leaves the rest of the
// line untouched. A trailing "\r" counts as line-end whitespace so CRLF
// documents survive unchanged.
func scalarPattern(key string) *regexp.Regexp {
	return regexp.MustCompile(`(?m)^[ \t]*` + regexp.QuoteMeta(key) + `[ \t]*=[ \t]*(.*?)[ \t\r]*$`)
}

// urlPattern matches a `<key> = "<url>"` line with a non-empty quoted
// value.
func urlPattern(key string) *regexp.Regexp {
	return regexp.MustCompile(`(?m)^[ \t]*` + regexp.QuoteMeta(key) + `[ \t]*=[ \t]*"([^"]+)"[ \t\r]*$`)
}

// SetScalar replaces the value of the first "<key> = <value>" line with
// the decimal form of value. Later occurrences of the key are left
// alone. Returns a KeyNotFoundError when no line matches.
func SetScalar(doc, key string, value int) (string, error) {
	loc := scalarPattern(key).FindStringSubmatchIndex(doc)
	if loc == nil {
		return "", errors.KeyNotFound(key)
	}
	return doc[:loc[2]] + strconv.Itoa(value) + doc[loc[3]:], nil
}

// FindScalar returns the current value of the first "<key> = <value>"
// line, without surrounding whitespace.
func FindScalar(doc, key string) (string, error) {
	m := scalarPattern(key).FindStringSubmatch(doc)
	if m == nil {
		return "", errors.KeyNotFound(key)
	}
	return m[1], nil
}

// SetURLPort rewrites the authority port of the URL inside the first
// `<key> = "<url>"` line. An existing ":<digits>" suffix on the
// authority is replaced, a missing one is appended; scheme, path, and
// the rest of the line are untouched.
func SetURLPort(doc, key string, port int) (string, error) {
	loc := urlPattern(key).FindStringSubmatchIndex(doc)
	if loc == nil {
		return "", errors.KeyNotFound(key)
	}

	raw := doc[loc[2]:loc[3]]
	u, err := ParseURL(raw)
	if err != nil {
		return "", errors.InvalidURL(key, raw)
	}

	return doc[:loc[2]] + u.WithPort(port) + doc[loc[3]:], nil
}

// FindURL returns the quoted URL value of the first `<key> = "<url>"`
// line.
func FindURL(doc, key string) (string, error) {
	m := urlPattern(key).FindStringSubmatch(doc)
	if m == nil {
		return "", errors.KeyNotFound(key)
	}
	return m[1], nil
}

// URL is an http(s) URL split for port rewriting.
type URL struct {
	Scheme    string // "http://" or "https://"
	Authority string // host, with or without ":<port>"
	Rest      string // path and beyond, possibly empty
}

// ParseURL splits an http(s) URL into its three parts.
func ParseURL(raw string) (URL, error) {
	m := urlSplit.FindStringSubmatch(raw)
	if m == nil {
		return URL{}, errors.New(errors.ExitInvalidURL, "not an http(s) URL: "+strconv.Quote(raw))
	}
	return URL{Scheme: m[1], Authority: m[2], Rest: m[3]}, nil
}

// WithPort returns the URL string with the authority port set to port.
func (u URL) WithPort(port int) string {
	authority := authorityPort.ReplaceAllString(u.Authority, "")
	return u.Scheme + authority + ":" + strconv.Itoa(port) + u.Rest
}

// String reassembles the URL unchanged.
func (u URL) String() string {
	return u.Scheme + u.Authority + u.Rest
}
