package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MKhiriev/google-services-gen/internal/logger"
	"github.com/MKhiriev/google-services-gen/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDocument() models.GoogleServices {
	return models.GoogleServices{
		ProjectInfo: models.ProjectInfo{
			ProjectNumber: "653328426569",
			ProjectID:     "designwear-app-8984",
			StorageBucket: "designwear-app-8984.firebasestorage.app",
		},
		Client: []models.Client{
			{
				ClientInfo: models.ClientInfo{
					MobileSDKAppID:    "1:653328426569:android:abc",
					AndroidClientInfo: models.AndroidClientInfo{PackageName: "com.example.designwear"},
				},
				OAuthClient: []models.OAuthClient{},
				APIKey:      []models.APIKey{{CurrentKey: "AIza<&>key"}},
				Services: models.ClientServices{
					AppInviteService: models.AppInviteService{OtherPlatformOAuthClient: []models.OAuthClient{}},
				},
			},
		},
		ConfigurationVersion: "1",
	}
}

const sampleDocumentJSON = `{
  "project_info": {
    "project_number": "653328426569",
    "project_id": "designwear-app-8984",
    "storage_bucket": "designwear-app-8984.firebasestorage.app"
  },
  "client": [
    {
      "client_info": {
        "mobilesdk_app_id": "1:653328426569:android:abc",
        "android_client_info": {
          "package_name": "com.example.designwear"
        }
      },
      "oauth_client": [],
      "api_key": [
        {
          "current_key": "AIza<&>key"
        }
      ],
      "services": {
        "appinvite_service": {
          "other_platform_oauth_client": []
        }
      }
    }
  ],
  "configuration_version": "1"
}
`

func TestWriteGoogleServices_ExactOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "google-services.json")
	s := NewGoogleServicesFileStorage(logger.Nop())

	err := s.WriteGoogleServices(context.Background(), path, sampleDocument())
	require.NoError(t, err)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, sampleDocumentJSON, string(got))
}

func TestWriteGoogleServices_FileMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "google-services.json")
	s := NewGoogleServicesFileStorage(logger.Nop())

	require.NoError(t, s.WriteGoogleServices(context.Background(), path, sampleDocument()))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644)&^currentUmask(), info.Mode().Perm())
}

func TestWriteGoogleServices_KeepsExistingFileMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "google-services.json")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o600))
	require.NoError(t, os.Chmod(path, 0o600))
	s := NewGoogleServicesFileStorage(logger.Nop())

	require.NoError(t, s.WriteGoogleServices(context.Background(), path, sampleDocument()))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, sampleDocumentJSON, string(got))
}

func TestWriteGoogleServices_WritesThroughSymlink(t *testing.T) {
	dir := t.TempDir()
	targetDir := filepath.Join(dir, "shared")
	require.NoError(t, os.Mkdir(targetDir, 0o755))
	target := filepath.Join(targetDir, "google-services.json")
	require.NoError(t, os.WriteFile(target, []byte("old"), 0o640))
	require.NoError(t, os.Chmod(target, 0o640))

	link := filepath.Join(dir, "google-services.json")
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}
	s := NewGoogleServicesFileStorage(logger.Nop())

	require.NoError(t, s.WriteGoogleServices(context.Background(), link, sampleDocument()))

	linkInfo, err := os.Lstat(link)
	require.NoError(t, err)
	assert.NotZero(t, linkInfo.Mode()&os.ModeSymlink, "link must stay a symlink")

	got, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, sampleDocumentJSON, string(got))

	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o640), info.Mode().Perm())

	entries, err := os.ReadDir(targetDir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary file must not be left behind")
}

func TestWriteGoogleServices_ReplacesExistingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "google-services.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"stale": true, "padding": "`+strings.Repeat("x", 4096)+`"}`), 0o644))

	s := NewGoogleServicesFileStorage(logger.Nop())
	require.NoError(t, s.WriteGoogleServices(context.Background(), path, sampleDocument()))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, sampleDocumentJSON, string(got))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary file must not be left behind")
}

func TestWriteGoogleServices_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "google-services.json")
	s := NewGoogleServicesFileStorage(logger.Nop())

	require.NoError(t, s.WriteGoogleServices(context.Background(), path, sampleDocument()))
	first, err := os.ReadFile(path)
	require.NoError(t, err)

	require.NoError(t, s.WriteGoogleServices(context.Background(), path, sampleDocument()))
	second, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestWriteGoogleServices_MissingDirectory(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "android", "app", "google-services.json")
	s := NewGoogleServicesFileStorage(logger.Nop())

	err := s.WriteGoogleServices(context.Background(), path, sampleDocument())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrWritingOutputFile)
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, statErr := os.Stat(filepath.Join(dir, "android"))
	assert.True(t, os.IsNotExist(statErr), "no directories must be created")
}

func TestWriteGoogleServices_DestinationIsDirectory(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "google-services.json")
	require.NoError(t, os.Mkdir(path, 0o755))
	s := NewGoogleServicesFileStorage(logger.Nop())

	err := s.WriteGoogleServices(context.Background(), path, sampleDocument())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrWritingOutputFile)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary file must be cleaned up")
}

func TestWriteGoogleServices_CancelledContext(t *testing.T) {
	path := filepath.Join(t.TempDir(), "google-services.json")
	s := NewGoogleServicesFileStorage(logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.WriteGoogleServices(ctx, path, sampleDocument())
	assert.ErrorIs(t, err, context.Canceled)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestWriteGoogleServices_RelativePathInWorkingDirectory(t *testing.T) {
	t.Chdir(t.TempDir())
	s := NewGoogleServicesFileStorage(logger.Nop())

	require.NoError(t, s.WriteGoogleServices(context.Background(), "google-services.json", sampleDocument()))

	var decoded models.GoogleServices
	data, err := os.ReadFile("google-services.json")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "designwear-app-8984", decoded.ProjectInfo.ProjectID)
}
