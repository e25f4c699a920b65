package arn

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestParse(t *testing.T) {
	type want struct {
		arn ARN
		err error
	}
	cases := map[string]struct {
		input string
		want  want
	}{
		"S3Bucket": {
			input: "arn:aws:s3:::my-bucket",
			want: want{
				arn: ARN{
					Partition: "aws",
					Service:   "s3",
					Resource:  "my-bucket",
				},
			},
		},
		"S3Path": {
			input: "arn:aws:s3:us-east-1:123456789012:job/23476",
			want: want{
				arn: ARN{
					Partition: "aws",
					Service:   "s3",
					Region:    "us-east-1",
					AccountID: "123456789012",
					Resource:  "job/23476",
				},
			},
		},
		"LambdaLayerQualified": {
			input: "arn:aws:lambda:us-east-2:123456789012:layer:my-layer:3",
			want: want{
				arn: ARN{
					Partition: "aws",
					Service:   "lambda",
					Region:    "us-east-2",
					AccountID: "123456789012",
					Resource:  "layer:my-layer:3",
				},
			},
		},
		"QualifiedColonsPreserved": {
			input: "arn:aws:cloudwatch:us-west-2:123456789012:alarm:Production:LB:High4xx",
			want: want{
				arn: ARN{
					Partition: "aws",
					Service:   "cloudwatch",
					Region:    "us-west-2",
					AccountID: "123456789012",
					Resource:  "alarm:Production:LB:High4xx",
				},
			},
		},
		"EmptyOptionalFields": {
			input: "arn::s3:::my-bucket",
			want: want{
				arn: ARN{
					Service:  "s3",
					Resource: "my-bucket",
				},
			},
		},
		"ChinaPartition": {
			input: "arn:aws-cn:ec2:cn-north-1:123456789012:instance/i-0abc",
			want: want{
				arn: ARN{
					Partition: "aws-cn",
					Service:   "ec2",
					Region:    "cn-north-1",
					AccountID: "123456789012",
					Resource:  "instance/i-0abc",
				},
			},
		},
		"ResourceWithSpaces": {
			input: "arn:aws:iam::123456789012:u2f/user/JohnDoe/default (U2F security key)",
			want: want{
				arn: ARN{
					Partition: "aws",
					Service:   "iam",
					AccountID: "123456789012",
					Resource:  "u2f/user/JohnDoe/default (U2F security key)",
				},
			},
		},
		"WildcardAccount": {
			input: "arn:aws:iam::*:root",
			want: want{
				arn: ARN{
					Partition: "aws",
					Service:   "iam",
					AccountID: "*",
					Resource:  "root",
				},
			},
		},
		"Empty":           {input: "", want: want{err: ErrTooFewComponents}},
		"NotAnArn":        {input: "not-an-arn", want: want{err: ErrTooFewComponents}},
		"TooFewFields":    {input: "arn:aws:s3::my-bucket", want: want{err: ErrTooFewComponents}},
		"WrongPrefix":     {input: "urn:aws:s3:::my-bucket", want: want{err: ErrMissingPrefix}},
		"UnknownPrefix":   {input: "arn2:aws:s3:::my-bucket", want: want{err: ErrMissingPrefix}},
		"BadPartition":    {input: "arn:gcp:s3:::my-bucket", want: want{err: ErrInvalidPartition}},
		"PartitionNoDash": {input: "arn:awscn:s3:::my-bucket", want: want{err: ErrInvalidPartition}},
		"MissingService":  {input: "arn:aws::::my-bucket", want: want{err: &InvalidIdentifierError{Value: ""}}},
		"ShortAccount":    {input: "arn:aws:s3::123456789:my-bucket", want: want{err: &InvalidAccountIDError{Value: "123456789"}}},
		"EmptyResource":   {input: "arn:aws:s3:::", want: want{err: &InvalidResourceError{Value: ""}}},
		"ControlInResource": {
			input: "arn:aws:s3:::my\tbucket",
			want:  want{err: &InvalidResourceError{Value: "my\tbucket"}},
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			a, err := Parse(tc.input)
			if diff := cmp.Diff(tc.want.arn, a); diff != "" {
				t.Errorf("Parse(%q): -want, +got:\n%s", tc.input, diff)
			}
			if diff := cmp.Diff(tc.want.err, err, cmpopts.EquateErrors()); diff != "" {
				t.Errorf("Parse(%q) error: -want, +got:\n%s", tc.input, diff)
			}
		})
	}
}

func TestString(t *testing.T) {
	cases := map[string]struct {
		arn  ARN
		want string
	}{
		"MinimalDefaultsPartition": {
			arn:  New("s3", "mythings/thing-1"),
			want: "arn:aws:s3:::mythings/thing-1",
		},
		"ExplicitPartition": {
			arn:  NewAws("s3", "mythings/athing"),
			want: "arn:aws:s3:::mythings/athing",
		},
		"Wildcards": {
			arn:  New("s3", "mything?/?thing"),
			want: "arn:aws:s3:::mything?/?thing",
		},
		"AllFields": {
			arn: ARN{
				Partition: "aws-us-gov",
				Service:   "lambda",
				Region:    "us-east-2",
				AccountID: "123456789012",
				Resource:  "function:my-function",
			},
			want: "arn:aws-us-gov:lambda:us-east-2:123456789012:function:my-function",
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			if got := tc.arn.String(); got != tc.want {
				t.Errorf("String() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	// Fully-populated ARNs render back to the exact input.
	exact := []string{
		"arn:aws:lambda:us-east-2:123456789012:layer:my-layer:3",
		"arn:aws:iam::123456789012:user/Development/product_1234/*",
		"arn:aws-cn:ec2:cn-north-1:123456789012:instance/i-0abc",
	}
	for _, s := range exact {
		a, err := Parse(s)
		if err != nil {
			t.Fatalf("Parse(%q): %v", s, err)
		}
		if got := a.String(); got != s {
			t.Errorf("round trip of %q produced %q", s, got)
		}
	}

	// Inputs with an empty partition normalize on display, but a second
	// parse of the rendered form is equal to the first parse.
	a, err := Parse("arn::s3:::my-bucket")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	b, err := Parse(a.String())
	if err != nil {
		t.Fatalf("Parse of rendered form: %v", err)
	}
	a.Partition = "aws" // display applied the default
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("normalized round trip: -want, +got:\n%s", diff)
	}
}

func TestWithResource(t *testing.T) {
	bucket, err := Parse("arn:aws:s3:::my-bucket")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	object := bucket.WithResource(JoinPath(bucket.Resource, "thing-1"))
	if got, want := object.String(), "arn:aws:s3:::my-bucket/thing-1"; got != want {
		t.Errorf("derived object ARN = %q, want %q", got, want)
	}
	// The original is untouched.
	if got, want := bucket.Resource, ResourceIdentifier("my-bucket"); got != want {
		t.Errorf("source ARN resource changed to %q", got)
	}
}

func TestParseExamples(t *testing.T) {
	// A corpus of realistic ARNs that must all parse.
	examples := []string{
		"arn:aws:s3:::my_corporate_bucket",
		"arn:aws:s3:::my_corporate_bucket/exampleobject.png",
		"arn:aws:s3:::my_corporate_bucket/*",
		"arn:aws:iam::123456789012:user/Development/product_1234/*",
		"arn:aws:iam::123456789012:role/aws-service-role/access-analyzer.amazonaws.com/AWSServiceRoleForAccessAnalyzer",
		"arn:aws:iam::123456789012:root",
		"arn:aws:lambda:us-east-2:123456789012:function:my-function",
		"arn:aws:lambda:us-east-2:123456789012:layer:my-layer:3",
		"arn:aws:lambda:us-east-2:123456789012:event-source-mapping:fa123456-14a1-4fd2-9fec-83de64ad683de6d47",
		"arn:aws:cloudwatch:us-west-2:123456789012:alarm:Production:LB:High4xx",
		"arn:aws:dynamodb:us-east-1:123456789012:table/books_table",
		"arn:aws:ec2:us-east-1:123456789012:instance/i-1234567890abcdef0",
		"arn:aws:sqs:us-east-2:123456789012:my-queue",
		"arn:aws:sns:us-east-1:123456789012:example-sns-topic-name",
		"arn:aws:kms:us-east-1:123456789012:key/1234abcd-12ab-34cd-56ef-1234567890ab",
		"arn:aws:rds:eu-west-1:123456789012:db:mysql-db",
		"arn:aws:cognito-identity:us-east-1:123456789012:identitypool/us-east-1:1a1a1a1a-ffff-1111-9999-12345678",
		"arn:aws-us-gov:iam::123456789012:policy/PowerUsers",
		"arn:aws-cn:ec2:cn-north-1:123456789012:instance/*",
	}

	for _, s := range examples {
		if _, err := Parse(s); err != nil {
			t.Errorf("Parse(%q): %v", s, err)
		}
	}
}

func TestQualifierSplitAfterParse(t *testing.T) {
	a, err := Parse("arn:aws:lambda:us-east-2:123456789012:layer:my-layer:3")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := []ResourceIdentifier{"layer", "my-layer", "3"}
	if diff := cmp.Diff(want, a.Resource.QualifierSplit()); diff != "" {
		t.Errorf("QualifierSplit(): -want, +got:\n%s", diff)
	}
}
