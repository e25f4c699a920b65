package arn

import "strings"

// AccountID captures the account component of an ARN. A valid value is
// either exactly twelve ASCII digits, or a non-empty string of at most
// twelve digits and wildcard characters with at least one wildcard present.
// Plain digit strings of any other length are rejected; "123456789" is not
// a valid account id.
//
// As with Identifier, a direct conversion bypasses validation and is for
// static literals only.
type AccountID string

// ParseAccountID validates s and returns it as an AccountID.
func ParseAccountID(s string) (AccountID, error) {
	if !ValidAccountID(s) {
		return "", &InvalidAccountIDError{Value: s}
	}
	return AccountID(s), nil
}

// ValidAccountID reports whether s satisfies the account id rules.
func ValidAccountID(s string) bool {
	if len(s) == 0 || len(s) > 12 {
		return false
	}
	wild := false
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c >= '0' && c <= '9':
		case c == '*' || c == '?':
			wild = true
		default:
			return false
		}
	}
	if wild {
		return true
	}
	return len(s) == 12
}

func (a AccountID) String() string {
	return string(a)
}

// IsAny reports whether the account id is exactly the "*" wildcard token.
func (a AccountID) IsAny() bool {
	return string(a) == wildcardAny
}

// HasWildcards reports whether the account id contains '*' or '?'.
func (a AccountID) HasWildcards() bool {
	return strings.ContainsAny(string(a), wildcardSet)
}

// IsPlain reports whether the account id is free of wildcard characters.
func (a AccountID) IsPlain() bool {
	return !a.HasWildcards()
}

// ARN returns the account-root ARN, arn:aws:iam::<account>:root. Every
// valid AccountID yields a valid root ARN, so no error path exists here.
func (a AccountID) ARN() ARN {
	return ARN{
		Partition: PartitionAws,
		Service:   ServiceIAM,
		AccountID: a,
		Resource:  ResourceIdentifier("root"),
	}
}
