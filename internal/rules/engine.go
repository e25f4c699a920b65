package rules

import (
	"errors"
	"fmt"

	"arnctl/internal/arn"
)

// Validation failures reported by the engine. All are recoverable; the
// caller decides what a failed check means.
var (
	ErrMissingPartition = errors.New("partition is required but absent")
	ErrMissingRegion    = errors.New("region is required but absent")
	ErrRegionWildcard   = errors.New("region wildcards are not allowed")
	ErrMissingAccount   = errors.New("account id is required but absent")
	ErrAccountWildcard  = errors.New("account id wildcards are not allowed")
	ErrResourceFormat   = errors.New("resource does not match the expected format")
	ErrResourceWildcard = errors.New("resource wildcards are not allowed")
)

// Engine checks parsed ARNs against a keyed rule table. An ARN whose
// service (or service plus resource type) has no registered rule passes
// unconditionally; the engine only enforces what it knows about.
type Engine struct {
	rules map[string]Rule
}

// NewEngine builds an engine from a rule set. Later rules with the same key
// override earlier ones.
func NewEngine(set *RuleSet) *Engine {
	rules := make(map[string]Rule, len(set.Rules))
	for _, r := range set.Rules {
		rules[r.Key()] = r
	}
	return &Engine{rules: rules}
}

// Lookup returns the rule registered for a, preferring the
// service-resourcetype entry over the plain service entry.
func (e *Engine) Lookup(a arn.ARN) (Rule, bool) {
	if tag := TypeTagOf(a.Resource); tag != "" {
		if r, ok := e.rules[string(a.Service)+"-"+tag]; ok {
			return r, true
		}
	}
	r, ok := e.rules[string(a.Service)]
	return r, ok
}

// IsRegistered reports whether a rule exists for a.
func (e *Engine) IsRegistered(a arn.ARN) bool {
	_, ok := e.Lookup(a)
	return ok
}

// Validate checks a against its registered rule, if any. The first failed
// check is returned, wrapped with the rule key for context.
func (e *Engine) Validate(a arn.ARN) error {
	rule, ok := e.Lookup(a)
	if !ok {
		return nil
	}
	if err := e.check(rule, a); err != nil {
		return fmt.Errorf("rule %s: %w", rule.Key(), err)
	}
	return nil
}

func (e *Engine) check(rule Rule, a arn.ARN) error {
	if rule.PartitionRequired && a.Partition == "" {
		return ErrMissingPartition
	}

	switch {
	case a.Region == "":
		if rule.RegionRequired {
			return ErrMissingRegion
		}
	case !rule.RegionWildcards && a.Region.HasWildcards():
		return ErrRegionWildcard
	}

	switch {
	case a.AccountID == "":
		if rule.AccountRequired {
			return ErrMissingAccount
		}
	case !rule.AccountWildcards && a.AccountID.HasWildcards():
		return ErrAccountWildcard
	}

	if a.Resource.IsAny() {
		if !rule.ResourceWildcards {
			return ErrResourceWildcard
		}
		return nil
	}
	if FormatOf(a.Resource) != rule.ResourceFormat {
		return ErrResourceFormat
	}
	if !rule.ResourceWildcards && a.Resource.HasWildcards() {
		return ErrResourceWildcard
	}
	return nil
}
