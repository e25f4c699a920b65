package arn

import (
	"errors"
	"fmt"
)

// Top-level grammar failures. Field-level failures carry the offending
// value and use the typed errors below.
var (
	ErrTooFewComponents = errors.New("need at least 6 colon-separated components")
	ErrMissingPrefix    = errors.New(`missing the "arn" prefix`)
	ErrInvalidPartition = errors.New("partition is not a valid partition name")
)

// InvalidIdentifierError reports a partition, service, region or
// resource-type token that violates the identifier character rules.
type InvalidIdentifierError struct {
	Value string
}

func (e *InvalidIdentifierError) Error() string {
	return fmt.Sprintf("invalid identifier %q", e.Value)
}

func (e *InvalidIdentifierError) Is(target error) bool {
	t, ok := target.(*InvalidIdentifierError)
	return ok && t.Value == e.Value
}

// InvalidAccountIDError reports an account field that violates the
// twelve-digits-or-wildcarded-digits rule.
type InvalidAccountIDError struct {
	Value string
}

func (e *InvalidAccountIDError) Error() string {
	return fmt.Sprintf("invalid account id %q", e.Value)
}

func (e *InvalidAccountIDError) Is(target error) bool {
	t, ok := target.(*InvalidAccountIDError)
	return ok && t.Value == e.Value
}

// InvalidResourceError reports a resource field that is empty or contains a
// control or non-ASCII character. Variable substitution returns it as well
// when a replacement value breaks the charset.
type InvalidResourceError struct {
	Value string
}

func (e *InvalidResourceError) Error() string {
	return fmt.Sprintf("invalid resource %q", e.Value)
}

func (e *InvalidResourceError) Is(target error) bool {
	t, ok := target.(*InvalidResourceError)
	return ok && t.Value == e.Value
}
