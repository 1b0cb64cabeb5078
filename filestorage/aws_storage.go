package filestorage

import (
	"bytes"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
)

// S3Client is a client for AWS S3 service
type S3Client struct {
	uploader *s3manager.Uploader
}

// NewAWSClient returns a S3 client for region. Static credentials are
// used when both keys are given, the default AWS credential chain otherwise.
func NewAWSClient(region, accessKeyID, secretAccessKey string) (*S3Client, error) {
	config := aws.Config{
		Region: aws.String(region),
	}
	if accessKeyID != "" && secretAccessKey != "" {
		config.Credentials = credentials.NewStaticCredentials(accessKeyID, secretAccessKey, "")
	}
	sess, err := session.NewSession(&config)
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session for region [%s], error %w", region, err)
	}
	return &S3Client{
		uploader: s3manager.NewUploader(sess),
	}, nil
}

// Upload sends b to bucket under key fileName
func (awsClient *S3Client) Upload(b []byte, bucket, fileName string) (string, error) {
	up, err := awsClient.uploader.Upload(&s3manager.UploadInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(fileName),
		ContentType: aws.String(contentType(fileName)),
		Body:        bytes.NewReader(b),
	})
	if err != nil {
		return "", fmt.Errorf("failed to send file [%s] to bucket [%s], error %w", fileName, bucket, err)
	}
	return up.Location, nil
}
