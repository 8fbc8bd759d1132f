package main

//go:generate mockery
type Prober interface {
	Probe(url string) ProbeResult
}

//go:generate mockery
type CheckRunner interface {
	RunChecks(specs []CheckSpec) ([]CheckOutcome, RunSummary)
	RunSingleCheck(spec CheckSpec) CheckOutcome
}

//go:generate mockery
type CommandRunner interface {
	Run(dir, command string) error
}

//go:generate mockery
type SetupOperator interface {
	NodeVersion() (string, error)
	ManifestExists(projectDir string) bool
	EnsureEnvFile(projectDir string) (bool, error)
	EnsureDataDir(projectDir string) error
}

// Deps is the wired object graph, see build.go.
type Deps struct {
	Prober      Prober
	CheckRunner CheckRunner
}
