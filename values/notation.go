package values

import "strings"

var bracketReplacer = strings.NewReplacer("[]", "", "[", ".", "]", "")

// ToDottedPath converts a bracket-notation cookie name into a dotted path.
//
//	ToDottedPath("meta[bar][zoo]") // "meta.bar.zoo"
//	ToDottedPath("list[]")         // "list"
//
// The substitution is a single left-to-right pass. Array syntax (`[]`)
// collapses to nothing, so `list[]` and `list` map to the same path and
// Unflatten keeps the later pair. Request cookies repeating the exact same
// name never get that far, the middleware keeps the first of them.
func ToDottedPath(name string) string {
	return bracketReplacer.Replace(name)
}

// ToCookieName converts a dotted path into a bracket-notation cookie name.
// The first segment stays bare and every following segment is bracketed.
//
//	ToCookieName("meta.bar.zoo") // "meta[bar][zoo]"
func ToCookieName(path string) string {
	head, rest, found := strings.Cut(path, ".")
	if !found {
		return path
	}

	var b strings.Builder
	b.Grow(len(path) + strings.Count(rest, ".")*2 + 2)
	b.WriteString(head)
	for _, segment := range strings.Split(rest, ".") {
		b.WriteByte('[')
		b.WriteString(segment)
		b.WriteByte(']')
	}
	return b.String()
}

// Decompose returns the leaf pair for a bracket-named cookie.
func Decompose(name string, value any) Pair {
	return Pair{Path: ToDottedPath(name), Value: value}
}
