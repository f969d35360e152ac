package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"GSERVICES_CONFIG", "GSERVICES_FILES_ENV_FILE", "GSERVICES_FILES_OUTPUT_PATH",
		"GSERVICES_ANDROID_PACKAGE_NAME", "GSERVICES_ANDROID_CONFIGURATION_VERSION",
	} {
		t.Setenv(k, "")
	}
	t.Setenv("GSERVICES_LOG_LEVEL", "disabled")
}

func TestRun_Help(t *testing.T) {
	clearConfigEnv(t)
	var out bytes.Buffer

	err := run(context.Background(), []string{"-h"}, &out)

	require.NoError(t, err)
	assert.Empty(t, out.String())
}

func TestRun_UnknownFlag(t *testing.T) {
	clearConfigEnv(t)
	var out bytes.Buffer

	err := run(context.Background(), []string{"-no-such-flag"}, &out)

	require.Error(t, err)
	assert.Empty(t, out.String())
}

func TestRun_Version(t *testing.T) {
	clearConfigEnv(t)
	var out bytes.Buffer

	err := run(context.Background(), []string{"-version"}, &out)

	require.NoError(t, err)
	assert.Equal(t, "Build version: N/A\nBuild date: N/A\nBuild commit: N/A\n", out.String())
}

func TestRun_GeneratesWithFlags(t *testing.T) {
	clearConfigEnv(t)
	dir := t.TempDir()
	envPath := filepath.Join(dir, "firebase.env")
	outPath := filepath.Join(dir, "google-services.json")
	require.NoError(t, os.WriteFile(envPath, []byte("FIREBASE_PROJECT_ID=p\n"), 0o600))

	var out bytes.Buffer
	err := run(context.Background(), []string{
		"-env-file", envPath, "-o", outPath, "-package-name", "com.acme.app",
	}, &out)

	require.NoError(t, err)
	assert.Equal(t, "Successfully generated "+outPath+"\n", out.String())

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"package_name": "com.acme.app"`)
	assert.Contains(t, string(data), `"project_id": "p"`)
}

func TestRun_MissingEnvFile(t *testing.T) {
	clearConfigEnv(t)
	dir := t.TempDir()
	envPath := filepath.Join(dir, "absent.env")

	var out bytes.Buffer
	err := run(context.Background(), []string{"-env-file", envPath, "-o", filepath.Join(dir, "out.json")}, &out)

	require.NoError(t, err)
	assert.Equal(t, "Error: "+envPath+" file not found.\n", out.String())
}

func TestRun_InvalidLogLevel(t *testing.T) {
	clearConfigEnv(t)
	var out bytes.Buffer

	err := run(context.Background(), []string{"-log-level", "loud"}, &out)

	require.Error(t, err)
}
