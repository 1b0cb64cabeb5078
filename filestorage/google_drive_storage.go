package filestorage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

type googleDrive struct {
	service *drive.Service
}

// NewGoogleDriveStorage returns a new client to execute file operations
// with Google Drive.
func NewGoogleDriveStorage(credentialsFile, oauthToken string) (FileStorage, error) {
	b, err := os.ReadFile(credentialsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file [%s], error %w", credentialsFile, err)
	}
	config, err := google.ConfigFromJSON(b, drive.DriveFileScope)
	if err != nil {
		return nil, fmt.Errorf("failed to parse credentials file [%s], error %w", credentialsFile, err)
	}
	f, err := os.Open(oauthToken)
	if err != nil {
		return nil, fmt.Errorf("failed to open OAuth token file [%s], error %w", oauthToken, err)
	}
	defer f.Close()
	tok := &oauth2.Token{}
	if err = json.NewDecoder(f).Decode(tok); err != nil {
		return nil, fmt.Errorf("failed to decode OAuth token [%s], error %w", oauthToken, err)
	}
	ctx := context.Background()
	service, err := drive.NewService(ctx, option.WithHTTPClient(config.Client(ctx, tok)))
	if err != nil {
		return nil, fmt.Errorf("failed to create Google Drive service, error %w", err)
	}
	return &googleDrive{
		service: service,
	}, nil
}

// the bucket argument for Google Drive is the folder ID.
func (gd *googleDrive) Upload(b []byte, bucket, fileName string) (string, error) {
	f := &drive.File{
		MimeType: contentType(fileName),
		Name:     fileName,
		Parents:  []string{bucket},
	}
	created, err := gd.service.Files.Create(f).Media(bytes.NewReader(b)).Do()
	if err != nil {
		return "", fmt.Errorf("failed to upload file [%s] to Google Drive folder [%s], error %w", fileName, bucket, err)
	}
	return fmt.Sprintf("%s%s/%s", driveScheme, bucket, created.Id), nil
}
