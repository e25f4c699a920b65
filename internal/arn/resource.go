package arn

import "strings"

// ResourceIdentifier captures the resource component of an ARN. The charset
// is wider than Identifier: any printable ASCII is legal, including spaces,
// '/' and ':', because resource strings carry paths ("mythings/thing-1") and
// qualifiers ("layer:my-layer:3"). Control characters and non-ASCII bytes
// are rejected.
//
// A direct conversion bypasses validation and is for static literals only.
type ResourceIdentifier string

// ParseResourceIdentifier validates s and returns it as a ResourceIdentifier.
func ParseResourceIdentifier(s string) (ResourceIdentifier, error) {
	if !ValidResourceIdentifier(s) {
		return "", &InvalidResourceError{Value: s}
	}
	return ResourceIdentifier(s), nil
}

// ValidResourceIdentifier reports whether s satisfies the resource
// character rules.
func ValidResourceIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c <= 0x1F || c >= 0x7F {
			return false
		}
	}
	return true
}

// ResourcePath joins identifier components into a '/'-separated resource,
// e.g. ResourcePath("user", "Bob") -> "user/Bob".
func ResourcePath(components ...Identifier) ResourceIdentifier {
	return join(pathSeparator, identifierStrings(components))
}

// QualifiedResource joins identifier components into a ':'-separated
// resource, e.g. QualifiedResource("layer", "my-layer", "3") ->
// "layer:my-layer:3".
func QualifiedResource(components ...Identifier) ResourceIdentifier {
	return join(partSeparator, identifierStrings(components))
}

// JoinPath joins already-built resource identifiers with the path
// separator. Used to append sub-resources, such as an object name onto a
// bucket resource.
func JoinPath(components ...ResourceIdentifier) ResourceIdentifier {
	return join(pathSeparator, resourceStrings(components))
}

// JoinQualified joins already-built resource identifiers with the
// qualifier separator.
func JoinQualified(components ...ResourceIdentifier) ResourceIdentifier {
	return join(partSeparator, resourceStrings(components))
}

func join(sep string, parts []string) ResourceIdentifier {
	return ResourceIdentifier(strings.Join(parts, sep))
}

func identifierStrings(ids []Identifier) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = string(id)
	}
	return out
}

func resourceStrings(ids []ResourceIdentifier) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = string(id)
	}
	return out
}

func (r ResourceIdentifier) String() string {
	return string(r)
}

// IsAny reports whether the resource is exactly the "*" wildcard token.
func (r ResourceIdentifier) IsAny() bool {
	return string(r) == wildcardAny
}

// HasWildcards reports whether the resource contains '*' or '?'.
func (r ResourceIdentifier) HasWildcards() bool {
	return strings.ContainsAny(string(r), wildcardSet)
}

// IsPlain reports whether the resource is free of both wildcard characters
// and ${name} variables.
func (r ResourceIdentifier) IsPlain() bool {
	return !r.HasWildcards() && !r.HasVariables()
}

// ContainsPath reports whether the resource contains the '/' separator.
func (r ResourceIdentifier) ContainsPath() bool {
	return strings.Contains(string(r), pathSeparator)
}

// PathSplit splits the resource on the '/' separator. No validation of the
// segment count is performed.
func (r ResourceIdentifier) PathSplit() []ResourceIdentifier {
	return splitResource(string(r), pathSeparator)
}

// ContainsQualified reports whether the resource contains the ':' separator.
func (r ResourceIdentifier) ContainsQualified() bool {
	return strings.Contains(string(r), partSeparator)
}

// QualifierSplit splits the resource on the ':' separator.
func (r ResourceIdentifier) QualifierSplit() []ResourceIdentifier {
	return splitResource(string(r), partSeparator)
}

func splitResource(s, sep string) []ResourceIdentifier {
	parts := strings.Split(s, sep)
	out := make([]ResourceIdentifier, len(parts))
	for i, p := range parts {
		out[i] = ResourceIdentifier(p)
	}
	return out
}
