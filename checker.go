package main

type CheckRunnerImpl struct {
	prober Prober
}

// RunChecks probes every spec in order and aggregates the summary.
// There is no short-circuiting: later checks run even when earlier ones
// failed, so the report always covers the whole suite.
func (r *CheckRunnerImpl) RunChecks(specs []CheckSpec) ([]CheckOutcome, RunSummary) {
	outcomes := make([]CheckOutcome, 0, len(specs))
	var summary RunSummary
	for _, spec := range specs {
		outcome := r.RunSingleCheck(spec)
		if outcome.Passed {
			summary.Passed++
		} else {
			summary.Failed++
		}
		outcomes = append(outcomes, outcome)
	}
	return outcomes, summary
}

func (r *CheckRunnerImpl) RunSingleCheck(spec CheckSpec) CheckOutcome {
	result := r.prober.Probe(spec.URL)
	outcome := CheckOutcome{Spec: spec, Result: result}
	if !result.Success {
		return outcome
	}
	outcome.MissingKeys = findMissingKeys(result.Data, spec.RequiredKeys)
	outcome.Passed = len(outcome.MissingKeys) == 0
	return outcome
}

// findMissingKeys checks the top level of the decoded body. A body that
// is not a JSON object counts as missing every required key.
func findMissingKeys(data any, requiredKeys []string) []string {
	if len(requiredKeys) == 0 {
		return nil
	}
	obj, ok := data.(map[string]any)
	if !ok {
		return append([]string(nil), requiredKeys...)
	}
	var missing []string
	for _, key := range requiredKeys {
		if _, present := obj[key]; !present {
			missing = append(missing, key)
		}
	}
	return missing
}

func defaultChecks(baseURL string) []CheckSpec {
	return []CheckSpec{
		{Name: "Server Health", URL: baseURL + "/api/stats", RequiredKeys: []string{"totalCombinations", "drawnCombinations"}},
		{Name: "Draw History", URL: baseURL + "/api/history"},
		{Name: "Current Jackpot", URL: baseURL + "/api/jackpot", RequiredKeys: []string{"amountEur", "amountZar"}},
		{Name: "Next Draw Info", URL: baseURL + "/api/next-draw", RequiredKeys: []string{"nextDrawDate", "timeUntilDraw"}},
		{Name: "Number Analytics", URL: baseURL + "/api/analytics/numbers", RequiredKeys: []string{"hotNumbers", "coldNumbers"}},
		{Name: "Star Analytics", URL: baseURL + "/api/analytics/stars", RequiredKeys: []string{"hotStars", "coldStars"}},
		{Name: "Predictions", URL: baseURL + "/api/predictions"},
	}
}

func NewCheckRunner(prober Prober) CheckRunner {
	return &CheckRunnerImpl{prober: prober}
}
