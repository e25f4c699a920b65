// Package lambda provides helper constructors for Lambda ARNs.
package lambda

import "arnctl/internal/arn"

// Function returns arn:<partition>:lambda:<region>:<account>:function:<name>.
func Function(partition, region arn.Identifier, account arn.AccountID, functionName arn.Identifier) arn.ARN {
	return base(partition, region, account).
		Is(arn.QualifiedResource("function", functionName)).
		ARN()
}

// Layer returns arn:<partition>:lambda:<region>:<account>:layer:<name>.
func Layer(partition, region arn.Identifier, account arn.AccountID, layerName arn.Identifier) arn.ARN {
	return base(partition, region, account).
		Is(arn.QualifiedResource("layer", layerName)).
		ARN()
}

// LayerVersion returns
// arn:<partition>:lambda:<region>:<account>:layer:<name>:<version>.
func LayerVersion(partition, region arn.Identifier, account arn.AccountID, layerName arn.Identifier, version int) arn.ARN {
	return base(partition, region, account).
		Is(arn.Typed("layer").Name(layerName).Version(version).BuildQualifiedID()).
		ARN()
}

// EventSourceMapping returns
// arn:<partition>:lambda:<region>:<account>:event-source-mapping:<uuid>.
func EventSourceMapping(partition, region arn.Identifier, account arn.AccountID, mappingID arn.Identifier) arn.ARN {
	return base(partition, region, account).
		Is(arn.QualifiedResource("event-source-mapping", mappingID)).
		ARN()
}

func base(partition, region arn.Identifier, account arn.AccountID) *arn.ArnBuilder {
	return arn.Service(arn.ServiceLambda).
		InPartition(partition).
		InRegion(region).
		OwnedBy(account)
}
