package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// CmdRunner executes shell commands with inherited stdio so the
// operator sees npm output live.
type CmdRunner struct{}

func (CmdRunner) Run(dir, command string) error {
	cmd := exec.Command("sh", "-c", command)
	cmd.Dir = dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

type SetupOperatorImpl struct{}

func (SetupOperatorImpl) NodeVersion() (string, error) {
	out, err := exec.Command("node", "--version").Output()
	if err != nil {
		logger.Error("node version check failed: %v", err)
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

func (SetupOperatorImpl) ManifestExists(projectDir string) bool {
	_, err := os.Stat(filepath.Join(projectDir, "package.json"))
	return err == nil
}

// EnsureEnvFile writes the JSON-storage defaults when no .env exists
// yet. An existing file is left untouched.
func (SetupOperatorImpl) EnsureEnvFile(projectDir string) (bool, error) {
	path := filepath.Join(projectDir, ".env")
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}
	env := map[string]string{
		"NODE_ENV":     "development",
		"STORAGE_TYPE": "json",
	}
	if err := godotenv.Write(env, path); err != nil {
		logger.Error("failed to write %s: %v", path, err)
		return false, err
	}
	return true, nil
}

func (SetupOperatorImpl) EnsureDataDir(projectDir string) error {
	return os.MkdirAll(filepath.Join(projectDir, "data"), 0o755)
}
