package filestorage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestUpload(t *testing.T) {
	content := "Party Statistics:\nLab: 34172 votes (100.00%)\n"
	fileStorage := NewLocalStorage()
	dir := filepath.Join(t.TempDir(), "reports", "2019")
	fileName := "statistics.txt"
	path, err := fileStorage.Upload([]byte(content), dir, fileName)
	if err != nil {
		t.Errorf("expected error nil when writing a file, got %q", err)
	}
	if path != filepath.Join(dir, fileName) {
		t.Errorf("expected path %s, got %s", filepath.Join(dir, fileName), path)
	}
	fileContent, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("expected err nil when reading file, got %q", err)
	}
	if content != string(fileContent) {
		t.Errorf("expected content to be %q, got %q", content, string(fileContent))
	}
}

func TestUploadOverwrites(t *testing.T) {
	fileStorage := NewLocalStorage()
	dir := t.TempDir()
	if _, err := fileStorage.Upload([]byte("first version"), dir, "statistics.txt"); err != nil {
		t.Fatalf("expected error nil on first upload, got %q", err)
	}
	path, err := fileStorage.Upload([]byte("second"), dir, "statistics.txt")
	if err != nil {
		t.Fatalf("expected error nil on second upload, got %q", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected err nil when reading file, got %q", err)
	}
	if string(b) != "second" {
		t.Errorf("expected file to be overwritten, got %q", string(b))
	}
}

func TestUploadFailsOnFileAsDirectory(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
		t.Fatalf("expected err nil when creating blocker file, got %q", err)
	}
	if _, err := NewLocalStorage().Upload([]byte("x"), blocker, "statistics.txt"); err == nil {
		t.Errorf("expected error when bucket is a regular file")
	}
}

func TestNewLocalDestination(t *testing.T) {
	testCases := []struct {
		name        string
		destination string
		bucket      string
	}{
		{"relative directory", "reports", "reports"},
		{"working directory", "", ""},
		{"absolute directory", "/tmp/reports", "/tmp/reports"},
	}
	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			s, bucket, err := New(tt.destination, Options{})
			if err != nil {
				t.Fatalf("expected err nil, got %q", err)
			}
			if _, ok := s.(*localStorage); !ok {
				t.Errorf("expected a local storage, got %T", s)
			}
			if bucket != tt.bucket {
				t.Errorf("want bucket %s, got %s", tt.bucket, bucket)
			}
		})
	}
}

func TestNewDriveWithoutCredentials(t *testing.T) {
	if _, _, err := New("drive://folder", Options{}); err == nil {
		t.Errorf("expected error for drive destination without credentials")
	}
}
