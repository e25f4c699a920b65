// Package iam provides helper constructors for IAM ARNs, including the
// account-root identity ARN.
package iam

import "arnctl/internal/arn"

// Root returns arn:aws:iam::<account>:root.
func Root(account arn.AccountID) arn.ARN {
	return arn.Service(arn.ServiceIAM).
		InDefaultPartition().
		OwnedBy(account).
		Is(arn.ResourceIdentifier("root")).
		ARN()
}

// User returns arn:<partition>:iam::<account>:user/<name>. The name may
// itself carry a path, e.g. "Development/Bob".
func User(partition arn.Identifier, account arn.AccountID, userName arn.Identifier) arn.ARN {
	return typed(partition, account, "user", userName)
}

// Role returns arn:<partition>:iam::<account>:role/<name>.
func Role(partition arn.Identifier, account arn.AccountID, roleName arn.Identifier) arn.ARN {
	return typed(partition, account, "role", roleName)
}

// Group returns arn:<partition>:iam::<account>:group/<name>.
func Group(partition arn.Identifier, account arn.AccountID, groupName arn.Identifier) arn.ARN {
	return typed(partition, account, "group", groupName)
}

// Policy returns arn:<partition>:iam::<account>:policy/<name>.
func Policy(partition arn.Identifier, account arn.AccountID, policyName arn.Identifier) arn.ARN {
	return typed(partition, account, "policy", policyName)
}

func typed(partition arn.Identifier, account arn.AccountID, typeTag, name arn.Identifier) arn.ARN {
	return arn.Service(arn.ServiceIAM).
		InPartition(partition).
		OwnedBy(account).
		Is(arn.ResourcePath(typeTag, name)).
		ARN()
}
