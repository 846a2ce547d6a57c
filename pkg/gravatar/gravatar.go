// gravatar.com image URL generation (also works for Libravatar-compatible services)
package gravatar

import (
	"crypto/md5"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// DefaultBaseURL is the canonical Gravatar avatar endpoint. The email hash is
// appended directly after it as the final path segment.
const DefaultBaseURL = "https://www.gravatar.com/avatar/"

// Built-in fallback images for Options.Default.
// https://gravatar.com/site/implement/images/#default-image
const (
	Default404           = "404" // force "no image" response unless an avatar is registered
	DefaultMysteryPerson = "mp"
	DefaultIdenticon     = "identicon"
	DefaultMonsterID     = "monsterid"
	DefaultWavatar       = "wavatar"
	DefaultRetro         = "retro"
	DefaultRoboHash      = "robohash"
	DefaultBlank         = "blank"
)

// Maximum content ratings for Options.Rating.
// https://gravatar.com/site/implement/images/#rating
const (
	RatingG  = "g"
	RatingPG = "pg"
	RatingR  = "r"
	RatingX  = "x"
)

// Generator builds avatar URLs for email addresses. It is immutable after
// construction, so one instance can be shared by concurrent callers without
// locking.
type Generator struct {
	baseURL       string
	fileExtension bool
}

// New returns a Generator pointing at the canonical Gravatar endpoint.
func New() *Generator {
	return NewWithBaseURL(DefaultBaseURL)
}

// NewWithBaseURL returns a Generator with a custom base URL, e.g. a Libravatar
// server ("https://cdn.libravatar.org/avatar/"). The URL is not validated -
// a malformed base simply yields a malformed result.
func NewWithBaseURL(baseURL string) *Generator {
	return &Generator{baseURL: baseURL}
}

// WithFileExtension returns a copy of the Generator that appends ".jpg" after
// the hash.
func (g Generator) WithFileExtension() *Generator {
	g.fileExtension = true
	return &g
}

// HashEmail hashes an email according to the Gravatar hashing steps: trim
// surrounding whitespace, lowercase, MD5 over the UTF-8 bytes, 32 lowercase
// hex chars. Any string hashes fine - whether it looks like an email is not
// this package's business.
func HashEmail(email string) string {
	return fmt.Sprintf("%x", md5.Sum([]byte(strings.ToLower(strings.TrimSpace(email)))))
}

// Generate returns the avatar URL for an email, without any query parameters.
func (g *Generator) Generate(email string) string {
	avatarUrl := g.baseURL + HashEmail(email)

	if g.fileExtension {
		avatarUrl += ".jpg"
	}

	return avatarUrl
}

// GenerateWithOptions is Generate plus a query string for the options that
// are set. Parameters are emitted in a fixed order with standard query
// escaping, so equal inputs produce byte-for-byte equal output.
func (g *Generator) GenerateWithOptions(email string, opts Options) string {
	return g.Generate(email) + opts.queryString()
}

// Options are per-URL rendering parameters. The zero value of each field
// means "unset" and its parameter is omitted from the URL entirely, so
// Options{} adds nothing.
type Options struct {
	// Default names the fallback behavior when no avatar is registered for
	// the hash: one of the Default* constants, or an absolute URL to a custom
	// image (reserved characters in it get escaped).
	Default string

	// Rating is the maximum content rating to permit, one of the Rating*
	// constants.
	Rating string

	// Size is the requested image edge length in pixels. The service accepts
	// 1..2048; out-of-range values are passed through unchecked, same
	// garbage-in/garbage-out stance as an unvalidated base URL.
	Size int

	// ForceDefault makes the service serve the fallback image even when an
	// avatar is registered.
	ForceDefault bool
}

func (o Options) queryString() string {
	params := []string{}

	if o.Default != "" {
		params = append(params, "default="+url.QueryEscape(o.Default))
	}

	if o.Rating != "" {
		params = append(params, "rating="+url.QueryEscape(o.Rating))
	}

	if o.Size != 0 {
		params = append(params, "size="+strconv.Itoa(o.Size))
	}

	if o.ForceDefault {
		params = append(params, "forcedefault=y")
	}

	if len(params) == 0 {
		return ""
	}

	return "?" + strings.Join(params, "&")
}
