package main

// ProbeResult is the classified outcome of a single GET request.
// Success is true only when the status was 200 and the body decoded as
// JSON; in every other case Error carries a user-facing message.
// StatusCode is 0 for transport-level and decode failures.
type ProbeResult struct {
	StatusCode int
	Success    bool
	Data       any
	Error      string
}

// CheckSpec is one named smoke test. RequiredKeys may be nil, in which
// case a successful probe alone passes the check.
type CheckSpec struct {
	Name         string
	URL          string
	RequiredKeys []string
}

type CheckOutcome struct {
	Spec        CheckSpec
	Result      ProbeResult
	Passed      bool
	MissingKeys []string
}

type RunSummary struct {
	Passed int
	Failed int
}
