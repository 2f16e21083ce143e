package cookie

import "strings"

// SameSite is the value of the SameSite cookie attribute.
type SameSite string

const (
	SameSiteStrict SameSite = "Strict"
	SameSiteLax    SameSite = "Lax"
	SameSiteNone   SameSite = "None"
)

// ParseSameSite parses s case-insensitively. Unknown values yield SameSiteLax.
func ParseSameSite(s string) SameSite {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "strict":
		return SameSiteStrict
	case "none":
		return SameSiteNone
	default:
		return SameSiteLax
	}
}

func (s SameSite) String() string {
	return string(s)
}
