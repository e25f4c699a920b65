// Package cognito provides helper constructors for Cognito Identity ARNs.
package cognito

import "arnctl/internal/arn"

// IdentityPool returns
// arn:<partition>:cognito-identity:<region>:<account>:identitypool/<id>.
func IdentityPool(partition, region arn.Identifier, account arn.AccountID, poolID arn.Identifier) arn.ARN {
	return arn.Service(arn.ServiceCognitoIdentity).
		InPartition(partition).
		InRegion(region).
		OwnedBy(account).
		Is(arn.ResourcePath("identitypool", poolID)).
		ARN()
}
