package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)
	require.Equal(t, "http://localhost:5000", cfg.BaseURL)
	require.Equal(t, 0, cfg.TimeoutSeconds)
	require.Equal(t, 10*time.Second, cfg.ProbeTimeout(10*time.Second))
}

func TestLoadConfigOverrides(t *testing.T) {
	dir := t.TempDir()
	content := "baseUrl: http://localhost:8080\ntimeoutSeconds: 3\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "harness.yml"), []byte(content), 0644))

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	require.Equal(t, "http://localhost:8080", cfg.BaseURL)
	require.Equal(t, 3*time.Second, cfg.ProbeTimeout(10*time.Second))
}

func TestLoadConfigPartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "harness.yml"), []byte("timeoutSeconds: 7\n"), 0644))

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	require.Equal(t, "http://localhost:5000", cfg.BaseURL)
	require.Equal(t, 7, cfg.TimeoutSeconds)
}

func TestLoadConfigInvalidYaml(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "harness.yml"), []byte("baseUrl: [unclosed"), 0644))

	_, err := LoadConfig(dir)
	require.Error(t, err)
}
