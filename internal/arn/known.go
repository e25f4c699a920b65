package arn

// Known partition identifiers.
const (
	PartitionAws      Identifier = "aws"
	PartitionAwsChina Identifier = "aws-cn"
	PartitionAwsUsGov Identifier = "aws-us-gov"
)

// Known region identifiers.
const (
	RegionAfSouth1     Identifier = "af-south-1"
	RegionApEast1      Identifier = "ap-east-1"
	RegionApNortheast1 Identifier = "ap-northeast-1"
	RegionApNortheast2 Identifier = "ap-northeast-2"
	RegionApNortheast3 Identifier = "ap-northeast-3"
	RegionApSouth1     Identifier = "ap-south-1"
	RegionApSoutheast1 Identifier = "ap-southeast-1"
	RegionApSoutheast2 Identifier = "ap-southeast-2"
	RegionCaCentral1   Identifier = "ca-central-1"
	RegionEuCentral1   Identifier = "eu-central-1"
	RegionEuNorth1     Identifier = "eu-north-1"
	RegionEuSouth1     Identifier = "eu-south-1"
	RegionEuWest1      Identifier = "eu-west-1"
	RegionEuWest2      Identifier = "eu-west-2"
	RegionEuWest3      Identifier = "eu-west-3"
	RegionMeSouth1     Identifier = "me-south-1"
	RegionSaEast1      Identifier = "sa-east-1"
	RegionUsEast1      Identifier = "us-east-1"
	RegionUsEast2      Identifier = "us-east-2"
	RegionUsWest1      Identifier = "us-west-1"
	RegionUsWest2      Identifier = "us-west-2"
)

// Known service identifiers. Not exhaustive; these cover the services the
// helper constructors and default validation rules refer to, plus the most
// commonly seen namespaces.
const (
	ServiceApiGateway      Identifier = "apigateway"
	ServiceAthena          Identifier = "athena"
	ServiceAutoScaling     Identifier = "autoscaling"
	ServiceBatch           Identifier = "batch"
	ServiceCloudFormation  Identifier = "cloudformation"
	ServiceCloudTrail      Identifier = "cloudtrail"
	ServiceCloudWatch      Identifier = "cloudwatch"
	ServiceCodeBuild       Identifier = "codebuild"
	ServiceCodeCommit      Identifier = "codecommit"
	ServiceCodePipeline    Identifier = "codepipeline"
	ServiceCognitoIdentity Identifier = "cognito-identity"
	ServiceCognitoIdp      Identifier = "cognito-idp"
	ServiceConfig          Identifier = "config"
	ServiceDynamoDB        Identifier = "dynamodb"
	ServiceEC2             Identifier = "ec2"
	ServiceECR             Identifier = "ecr"
	ServiceECS             Identifier = "ecs"
	ServiceEFS             Identifier = "efs"
	ServiceEKS             Identifier = "eks"
	ServiceElastiCache     Identifier = "elasticache"
	ServiceEventBridge     Identifier = "events"
	ServiceFirehose        Identifier = "firehose"
	ServiceGlacier         Identifier = "glacier"
	ServiceGlue            Identifier = "glue"
	ServiceIAM             Identifier = "iam"
	ServiceKinesis         Identifier = "kinesis"
	ServiceKMS             Identifier = "kms"
	ServiceLambda          Identifier = "lambda"
	ServiceLogs            Identifier = "logs"
	ServiceOrganizations   Identifier = "organizations"
	ServiceRDS             Identifier = "rds"
	ServiceRedshift        Identifier = "redshift"
	ServiceRoute53         Identifier = "route53"
	ServiceS3              Identifier = "s3"
	ServiceSageMaker       Identifier = "sagemaker"
	ServiceSecretsManager  Identifier = "secretsmanager"
	ServiceSNS             Identifier = "sns"
	ServiceSQS             Identifier = "sqs"
	ServiceSSM             Identifier = "ssm"
	ServiceStepFunctions   Identifier = "stepfunctions"
	ServiceSTS             Identifier = "sts"
	ServiceXRay            Identifier = "xray"
)
