package main

import (
	"os"
	"os/exec"
	"os/signal"

	tr "github.com/ocelot-cloud/task-runner"
)

// SetupError carries the failed setup step plus the underlying cause.
type SetupError struct {
	step string
	err  error
}

func (e *SetupError) Error() string {
	if e.err == nil {
		return e.step
	}
	return e.step + ": " + e.err.Error()
}

func (e *SetupError) Unwrap() error {
	return e.err
}

type BootstrapperImpl struct {
	projectDir string
	baseURL    string
	runner     CommandRunner
	fs         SetupOperator
}

func NewBootstrapper(projectDir, baseURL string, runner CommandRunner, fs SetupOperator) *BootstrapperImpl {
	return &BootstrapperImpl{projectDir: projectDir, baseURL: baseURL, runner: runner, fs: fs}
}

// Run prepares the environment and then starts the server attached to
// the current terminal. It returns once the server exits or the
// operator interrupts it.
func (b *BootstrapperImpl) Run() error {
	if err := b.Setup(); err != nil {
		return err
	}
	tr.ColoredPrintln("Setup complete! Starting the application...")
	tr.ColoredPrintln("Application will be available at: %s", b.baseURL)
	tr.ColoredPrintln("Press Ctrl+C to stop the server")
	return b.startServer()
}

// Setup checks the preconditions and performs the side-effecting setup
// steps in order. Each failure is fatal for the whole run.
func (b *BootstrapperImpl) Setup() error {
	tr.ColoredPrintln("Lottery Analysis App - Local Setup (JSON storage)")

	tr.PrintTaskDescription("checking Node.js installation")
	version, err := b.fs.NodeVersion()
	if err != nil {
		return &SetupError{step: "Node.js is not installed or not in PATH, install Node.js 18+ from https://nodejs.org", err: err}
	}
	tr.ColoredPrintln("✓ Node.js version: %s", version)

	if !b.fs.ManifestExists(b.projectDir) {
		return &SetupError{step: "package.json not found, make sure you are in the project directory"}
	}

	created, err := b.fs.EnsureEnvFile(b.projectDir)
	if err != nil {
		return &SetupError{step: "failed to create .env file", err: err}
	}
	if created {
		tr.ColoredPrintln("✓ Created .env for JSON file storage mode (no database required)")
	}

	tr.PrintTaskDescription("installing dependencies")
	if err := b.runner.Run(b.projectDir, "npm install"); err != nil {
		return &SetupError{step: "failed to install dependencies", err: err}
	}

	if err := b.fs.EnsureDataDir(b.projectDir); err != nil {
		return &SetupError{step: "failed to create data directory", err: err}
	}
	tr.ColoredPrintln("✓ JSON storage directory ready")
	return nil
}

func (b *BootstrapperImpl) startServer() error {
	cmd := exec.Command("npx", "tsx", "server/index.ts")
	cmd.Dir = b.projectDir
	cmd.Env = append(os.Environ(), "NODE_ENV=development")
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	// Take over interrupt handling from the task runner while the
	// server is attached, otherwise Ctrl+C would terminate the harness
	// before the child has exited.
	interrupts := make(chan os.Signal, 1)
	signal.Reset(os.Interrupt)
	signal.Notify(interrupts, os.Interrupt)
	defer signal.Stop(interrupts)

	if err := cmd.Start(); err != nil {
		return &SetupError{step: "failed to start server", err: err}
	}
	logger.Info("server started, pid %d", cmd.Process.Pid)

	done := make(chan error, 1)
	go func() { done <- cmd.Wait() }()

	select {
	case <-interrupts:
		tr.ColoredPrintln("\nShutting down gracefully...")
		// The terminal delivers the interrupt to the whole foreground
		// process group, so the child is already stopping.
		<-done
		tr.ColoredPrintln("Server stopped")
		return nil
	case err := <-done:
		if err != nil {
			return &SetupError{step: "server exited with error", err: err}
		}
		return nil
	}
}
