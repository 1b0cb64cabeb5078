package filestorage

import (
	"fmt"
	"strings"
)

const (
	gcsScheme   = "gs://"
	s3Scheme    = "s3://"
	driveScheme = "drive://"
)

// FileStorage saves files on a bucket. A bucket is a local directory,
// a GCS or S3 bucket name or a Google Drive folder ID, depending on the
// implementation.
type FileStorage interface {
	// Upload saves b as fileName on bucket and returns where it was saved.
	Upload(b []byte, bucket, fileName string) (string, error)
}

// Options holds what remote storages need to authenticate
type Options struct {
	AWSRegion            string
	AWSAccessKeyID       string
	AWSSecretAccessKey   string
	DriveCredentialsFile string
	DriveOAuthTokenFile  string
}

// New returns the storage that serves destination and the bucket to pass
// to Upload. Destinations starting with gs://, s3:// or drive:// are sent
// to Google Cloud Storage, AWS S3 or a Google Drive folder, anything else
// is a local directory.
func New(destination string, opts Options) (FileStorage, string, error) {
	switch {
	case strings.HasPrefix(destination, gcsScheme):
		client, err := NewGCSClient()
		if err != nil {
			return nil, "", err
		}
		return client, strings.TrimPrefix(destination, gcsScheme), nil
	case strings.HasPrefix(destination, s3Scheme):
		client, err := NewAWSClient(opts.AWSRegion, opts.AWSAccessKeyID, opts.AWSSecretAccessKey)
		if err != nil {
			return nil, "", err
		}
		return client, strings.TrimPrefix(destination, s3Scheme), nil
	case strings.HasPrefix(destination, driveScheme):
		if opts.DriveCredentialsFile == "" || opts.DriveOAuthTokenFile == "" {
			return nil, "", fmt.Errorf("missing Google Drive credentials or OAuth token file for destination [%s]", destination)
		}
		client, err := NewGoogleDriveStorage(opts.DriveCredentialsFile, opts.DriveOAuthTokenFile)
		if err != nil {
			return nil, "", err
		}
		return client, strings.TrimPrefix(destination, driveScheme), nil
	default:
		return NewLocalStorage(), destination, nil
	}
}
