package main

import "github.com/stretchr/testify/mock"

type ProberMock struct {
	mock.Mock
}

func (m *ProberMock) Probe(url string) ProbeResult {
	args := m.Called(url)
	return args.Get(0).(ProbeResult)
}

type RunnerMock struct {
	mock.Mock
}

func (m *RunnerMock) Run(dir, command string) error {
	args := m.Called(dir, command)
	return args.Error(0)
}

type SetupOperatorMock struct {
	mock.Mock
}

func (m *SetupOperatorMock) NodeVersion() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}

func (m *SetupOperatorMock) ManifestExists(projectDir string) bool {
	args := m.Called(projectDir)
	return args.Bool(0)
}

func (m *SetupOperatorMock) EnsureEnvFile(projectDir string) (bool, error) {
	args := m.Called(projectDir)
	return args.Bool(0), args.Error(1)
}

func (m *SetupOperatorMock) EnsureDataDir(projectDir string) error {
	args := m.Called(projectDir)
	return args.Error(0)
}
