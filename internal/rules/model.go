// Package rules implements the optional, rule-driven layer of ARN
// validation: per-service format rules loaded from YAML files that say
// which fields a service's ARNs require, where wildcards are tolerated,
// and what shape the resource component takes. It sits on top of the core
// grammar in internal/arn and never changes parse or serialize behaviour.
package rules

import "arnctl/internal/arn"

// ResourceFormat classifies the shape of the resource component.
type ResourceFormat string

const (
	// IDFormat is a bare resource id, e.g. "my-bucket".
	IDFormat ResourceFormat = "id"
	// PathFormat is a '/'-separated resource, e.g. "user/Development/Bob".
	PathFormat ResourceFormat = "path"
	// TypeIDFormat is "type:id", e.g. "function:my-func".
	TypeIDFormat ResourceFormat = "type-id"
	// QualifiedTypeIDFormat is "type:id:qualifier", e.g. "layer:my-layer:3".
	QualifiedTypeIDFormat ResourceFormat = "qualified-type-id"
)

// Rule describes the expected ARN format for one service, optionally
// narrowed to one resource type.
type Rule struct {
	Service           string         `yaml:"service"`
	ResourceType      string         `yaml:"resource_type,omitempty"`
	PartitionRequired bool           `yaml:"partition_required"`
	RegionRequired    bool           `yaml:"region_required"`
	RegionWildcards   bool           `yaml:"region_wildcards,omitempty"`
	AccountRequired   bool           `yaml:"account_required"`
	AccountWildcards  bool           `yaml:"account_wildcards,omitempty"`
	ResourceFormat    ResourceFormat `yaml:"resource_format"`
	ResourceWildcards bool           `yaml:"resource_wildcards,omitempty"`
}

// Key returns the lookup key for the rule, "service" or
// "service-resourcetype".
func (r Rule) Key() string {
	if r.ResourceType == "" {
		return r.Service
	}
	return r.Service + "-" + r.ResourceType
}

// RuleSet is the document shape of a YAML rule file.
type RuleSet struct {
	Rules []Rule `yaml:"rules"`
}

// FormatOf classifies the shape of a resource identifier. Qualifier
// structure wins over path structure, matching how qualified resources such
// as "layer:my-layer:3" are written.
func FormatOf(r arn.ResourceIdentifier) ResourceFormat {
	switch {
	case r.ContainsQualified():
		if len(r.QualifierSplit()) > 2 {
			return QualifiedTypeIDFormat
		}
		return TypeIDFormat
	case r.ContainsPath():
		return PathFormat
	default:
		return IDFormat
	}
}

// TypeTagOf returns the leading resource-type segment of a resource, or ""
// when the resource has no type/id structure.
func TypeTagOf(r arn.ResourceIdentifier) string {
	switch {
	case r.ContainsQualified():
		return string(r.QualifierSplit()[0])
	case r.ContainsPath():
		return string(r.PathSplit()[0])
	default:
		return ""
	}
}
