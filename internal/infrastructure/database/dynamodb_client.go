package database

import (
	"context"

	"andicot_proforma/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// LoadAWSConfig builds the shared AWS config for DynamoDB and S3.
//
// Local DynamoDB and MinIO do not validate credentials, but the SDK requires
// them, so static ones are always set.
func LoadAWSConfig(ctx context.Context, c config.AWSConfig) (aws.Config, error) {
	creds := credentials.NewStaticCredentialsProvider(c.AccessKeyID, c.SecretAccessKey, "")
	return awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(c.Region),
		awsconfig.WithCredentialsProvider(creds),
	)
}

// NewDynamoDBClient points the client at DYNAMODB_ENDPOINT when set.
func NewDynamoDBClient(cfg aws.Config, endpoint string) *dynamodb.Client {
	return dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})
}
