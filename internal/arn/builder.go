package arn

import "strconv"

// ArnBuilder provides a fluent way to assemble an ARN, leaving out the
// fields a particular resource does not need. The verb-prefixed methods
// exist so call sites read naturally: InPartition, InRegion, OwnedBy, Is.
type ArnBuilder struct {
	arn ARN
}

// Service starts a builder for the given service.
func Service(service Identifier) *ArnBuilder {
	return &ArnBuilder{arn: ARN{Service: service}}
}

// InPartition sets the partition.
func (b *ArnBuilder) InPartition(partition Identifier) *ArnBuilder {
	b.arn.Partition = partition
	return b
}

// InDefaultPartition sets the partition to the default "aws" partition.
func (b *ArnBuilder) InDefaultPartition() *ArnBuilder {
	return b.InPartition(PartitionAws)
}

// InAnyPartition clears the partition so it renders as the default.
func (b *ArnBuilder) InAnyPartition() *ArnBuilder {
	b.arn.Partition = ""
	return b
}

// InRegion sets the region.
func (b *ArnBuilder) InRegion(region Identifier) *ArnBuilder {
	b.arn.Region = region
	return b
}

// OwnedBy sets the account id.
func (b *ArnBuilder) OwnedBy(account AccountID) *ArnBuilder {
	b.arn.AccountID = account
	return b
}

// Is sets the resource.
func (b *ArnBuilder) Is(resource ResourceIdentifier) *ArnBuilder {
	b.arn.Resource = resource
	return b
}

// AnyResource sets the resource to the "*" wildcard.
func (b *ArnBuilder) AnyResource() *ArnBuilder {
	return b.Is(ResourceIdentifier(wildcardAny))
}

// ARN returns the assembled value.
func (b *ArnBuilder) ARN() ARN {
	return b.arn
}

// ResourceBuilder collects resource components and joins them with either
// the path or the qualifier separator.
type ResourceBuilder struct {
	parts []ResourceIdentifier
}

// Named starts a resource builder from a resource name.
func Named(id Identifier) *ResourceBuilder {
	return &ResourceBuilder{parts: []ResourceIdentifier{ResourceIdentifier(id)}}
}

// Typed starts a resource builder from a resource-type tag such as "layer"
// or "function". It is the same operation as Named under a name that reads
// better for type tags.
func Typed(id Identifier) *ResourceBuilder {
	return Named(id)
}

// Add appends an already-built resource component.
func (b *ResourceBuilder) Add(id ResourceIdentifier) *ResourceBuilder {
	b.parts = append(b.parts, id)
	return b
}

// Name appends an identifier component.
func (b *ResourceBuilder) Name(id Identifier) *ResourceBuilder {
	return b.Add(ResourceIdentifier(id))
}

// Version appends an integer version component.
func (b *ResourceBuilder) Version(v int) *ResourceBuilder {
	return b.Add(ResourceIdentifier(strconv.Itoa(v)))
}

// BuildResourcePath joins the collected components with '/'.
func (b *ResourceBuilder) BuildResourcePath() ResourceIdentifier {
	return JoinPath(b.parts...)
}

// BuildQualifiedID joins the collected components with ':'.
func (b *ResourceBuilder) BuildQualifiedID() ResourceIdentifier {
	return JoinQualified(b.parts...)
}
