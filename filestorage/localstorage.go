package filestorage

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"
)

type localStorage struct {
}

// NewLocalStorage returns a storage that writes files on a local
// directory. An empty bucket is the working directory.
func NewLocalStorage() FileStorage {
	return &localStorage{}
}

// Upload writes b on bucket/fileName, creating bucket when needed.
func (l *localStorage) Upload(b []byte, bucket, fileName string) (string, error) {
	if bucket == "" {
		bucket = "."
	}
	if err := os.MkdirAll(bucket, 0755); err != nil {
		return "", fmt.Errorf("failed to create directory [%s], error %w", bucket, err)
	}
	name := filepath.Join(bucket, fileName)
	if err := os.WriteFile(name, b, 0644); err != nil {
		return "", fmt.Errorf("failed to save file [%s] on path [%s], error %w", fileName, name, err)
	}
	return name, nil
}

func contentType(fileName string) string {
	if t := mime.TypeByExtension(filepath.Ext(fileName)); t != "" {
		return t
	}
	return "application/octet-stream"
}
