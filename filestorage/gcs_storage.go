package filestorage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"cloud.google.com/go/storage"
)

const (
	timeout = time.Second * 50
)

// GCSClient is a client for google cloud storage
type GCSClient struct {
	client *storage.Client
}

// NewGCSClient returns a GCS client using the application default credentials.
func NewGCSClient() (*GCSClient, error) {
	client, err := storage.NewClient(context.Background())
	if err != nil {
		return nil, fmt.Errorf("failed to create GCS client, error %w", err)
	}
	return &GCSClient{
		client: client,
	}, nil
}

// Upload writes b on object fileName of bucket
func (gcs *GCSClient) Upload(b []byte, bucket, fileName string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	wc := gcs.client.Bucket(bucket).Object(fileName).NewWriter(ctx)
	wc.ContentType = contentType(fileName)
	if _, err := io.Copy(wc, bytes.NewReader(b)); err != nil {
		return "", fmt.Errorf("failed to copy file [%s] to GCS bucket [%s], error %w", fileName, bucket, err)
	}
	if err := wc.Close(); err != nil {
		return "", fmt.Errorf("failed to close GCS writer for [%s/%s], error %w", bucket, fileName, err)
	}
	return fmt.Sprintf("%s%s/%s", gcsScheme, bucket, fileName), nil
}
