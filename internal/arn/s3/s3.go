// Package s3 provides helper constructors for S3 ARNs. Resource shapes
// follow the IAM service authorization reference for Amazon S3.
package s3

import (
	"fmt"

	"arnctl/internal/arn"
)

// BucketIn returns arn:<partition>:s3:::<bucket>.
func BucketIn(partition, bucket arn.Identifier) arn.ARN {
	return arn.Service(arn.ServiceS3).
		InPartition(partition).
		Is(arn.ResourceIdentifier(bucket)).
		ARN()
}

// Bucket returns arn:aws:s3:::<bucket>.
func Bucket(bucket arn.Identifier) arn.ARN {
	return BucketIn(arn.PartitionAws, bucket)
}

// ObjectIn returns arn:<partition>:s3:::<bucket>/<object>.
func ObjectIn(partition, bucket, object arn.Identifier) arn.ARN {
	return arn.Service(arn.ServiceS3).
		InPartition(partition).
		Is(arn.ResourcePath(bucket, object)).
		ARN()
}

// Object returns arn:aws:s3:::<bucket>/<object>.
func Object(bucket, object arn.Identifier) arn.ARN {
	return ObjectIn(arn.PartitionAws, bucket, object)
}

// ObjectFrom derives an object ARN from an existing bucket ARN by appending
// the object name to the bucket resource; all other fields carry over. It
// fails when bucket does not belong to the S3 service.
func ObjectFrom(bucket arn.ARN, object arn.Identifier) (arn.ARN, error) {
	if bucket.Service != arn.ServiceS3 {
		return arn.ARN{}, fmt.Errorf("cannot derive an S3 object from a %s ARN", bucket.Service)
	}
	return bucket.WithResource(arn.JoinPath(bucket.Resource, arn.ResourceIdentifier(object))), nil
}

// JobIn returns arn:<partition>:s3:<region>:<account>:job/<id>.
func JobIn(partition, region arn.Identifier, account arn.AccountID, jobID arn.Identifier) arn.ARN {
	return arn.Service(arn.ServiceS3).
		InPartition(partition).
		InRegion(region).
		OwnedBy(account).
		Is(arn.ResourcePath("job", jobID)).
		ARN()
}

// Job returns arn:aws:s3:<region>:<account>:job/<id>.
func Job(region arn.Identifier, account arn.AccountID, jobID arn.Identifier) arn.ARN {
	return JobIn(arn.PartitionAws, region, account, jobID)
}
