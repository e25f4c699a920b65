// Package arn models Amazon Resource Names as typed, validated values
// instead of opaque strings. It covers the string grammar
//
//	arn:partition:service:region:account-id:resource
//
// with parsing, canonical serialization, field-level validation, fluent
// builders and variable substitution inside resource identifiers.
package arn

import "strings"

const (
	pathSeparator = "/"
	partSeparator = ":"

	wildcardAny = "*"
	wildcardSet = "*?"
)

// IdentifierLike is the behaviour shared by the identifier newtypes in this
// package. ResourceIdentifier tightens IsPlain to also exclude variables.
type IdentifierLike interface {
	String() string
	IsAny() bool
	HasWildcards() bool
	IsPlain() bool
}

// Identifier captures the partition, service, region and resource-type
// components of an ARN. Valid values are non-empty printable ASCII excluding
// space, '/' and ':'.
//
// ParseIdentifier is the validating constructor. A direct conversion such as
// Identifier("layer") bypasses validation and is reserved for static,
// known-good literals; never use it on externally sourced strings.
type Identifier string

// ParseIdentifier validates s and returns it as an Identifier.
func ParseIdentifier(s string) (Identifier, error) {
	if !ValidIdentifier(s) {
		return "", &InvalidIdentifierError{Value: s}
	}
	return Identifier(s), nil
}

// ValidIdentifier reports whether s satisfies the Identifier character rules.
func ValidIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c <= 0x1F || c >= 0x7F || c == ' ' || c == '/' || c == ':' {
			return false
		}
	}
	return true
}

func (i Identifier) String() string {
	return string(i)
}

// IsAny reports whether the identifier is exactly the "*" wildcard token.
func (i Identifier) IsAny() bool {
	return string(i) == wildcardAny
}

// HasWildcards reports whether the identifier contains '*' or '?' anywhere.
func (i Identifier) HasWildcards() bool {
	return strings.ContainsAny(string(i), wildcardSet)
}

// IsPlain reports whether the identifier is free of wildcard characters.
func (i Identifier) IsPlain() bool {
	return !i.HasWildcards()
}
