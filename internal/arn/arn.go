package arn

import "strings"

const (
	arnPrefix = "arn"

	// Partitions other than the default follow the "aws-<suffix>" form,
	// e.g. aws-cn or aws-us-gov.
	partitionPrefix = string(PartitionAws) + "-"
)

// ARN is the typed form of an Amazon Resource Name. Partition, Region and
// AccountID may be empty: valid identifiers are never empty strings, so the
// empty value unambiguously means the field is absent. An absent partition
// renders as the default "aws" partition; absent region and account render
// as empty fields, which round-trip through Parse.
//
// ARN values are plain immutable data; compare them with ==.
type ARN struct {
	Partition Identifier         `json:"partition,omitempty" yaml:"partition,omitempty"`
	Service   Identifier         `json:"service" yaml:"service"`
	Region    Identifier         `json:"region,omitempty" yaml:"region,omitempty"`
	AccountID AccountID          `json:"account_id,omitempty" yaml:"account_id,omitempty"`
	Resource  ResourceIdentifier `json:"resource" yaml:"resource"`
}

// New returns a minimal ARN carrying only a service and resource. The
// partition is left unset and renders as the default partition.
func New(service Identifier, resource ResourceIdentifier) ARN {
	return ARN{Service: service, Resource: resource}
}

// NewAws is New with the default partition set explicitly.
func NewAws(service Identifier, resource ResourceIdentifier) ARN {
	return ARN{Partition: PartitionAws, Service: service, Resource: resource}
}

// Parse parses s into an ARN. The input is split on ':' without a limit;
// at least six fields must result and the first must be the literal "arn".
// Fields five onward are re-joined with ':' and validated as a single
// resource identifier, since resources legitimately contain qualifier
// colons. The first field-level failure is returned as-is.
func Parse(s string) (ARN, error) {
	parts := strings.Split(s, partSeparator)
	if len(parts) < 6 {
		return ARN{}, ErrTooFewComponents
	}
	if parts[0] != arnPrefix {
		return ARN{}, ErrMissingPrefix
	}

	var out ARN
	var err error
	if parts[1] != "" {
		if parts[1] != string(PartitionAws) && !strings.HasPrefix(parts[1], partitionPrefix) {
			return ARN{}, ErrInvalidPartition
		}
		if out.Partition, err = ParseIdentifier(parts[1]); err != nil {
			return ARN{}, err
		}
	}
	if out.Service, err = ParseIdentifier(parts[2]); err != nil {
		return ARN{}, err
	}
	if parts[3] != "" {
		if out.Region, err = ParseIdentifier(parts[3]); err != nil {
			return ARN{}, err
		}
	}
	if parts[4] != "" {
		if out.AccountID, err = ParseAccountID(parts[4]); err != nil {
			return ARN{}, err
		}
	}
	if out.Resource, err = ParseResourceIdentifier(strings.Join(parts[5:], partSeparator)); err != nil {
		return ARN{}, err
	}
	return out, nil
}

// String renders the canonical six-field form. The result of parsing a
// String round-trips to an equal ARN.
func (a ARN) String() string {
	partition := a.Partition
	if partition == "" {
		partition = PartitionAws
	}
	return strings.Join([]string{
		arnPrefix,
		string(partition),
		string(a.Service),
		string(a.Region),
		string(a.AccountID),
		string(a.Resource),
	}, partSeparator)
}

// WithResource returns a copy of a with only the resource replaced; the
// usual way to derive a child ARN, such as an object ARN from a bucket ARN.
func (a ARN) WithResource(resource ResourceIdentifier) ARN {
	a.Resource = resource
	return a
}

// HasWildcards reports whether any field of the ARN contains wildcard
// characters.
func (a ARN) HasWildcards() bool {
	return a.Partition.HasWildcards() ||
		a.Service.HasWildcards() ||
		a.Region.HasWildcards() ||
		a.AccountID.HasWildcards() ||
		a.Resource.HasWildcards()
}
