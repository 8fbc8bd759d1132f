package main

import (
	"testing"

	"github.com/ocelot-cloud/shared/assert"
)

func TestReportOutcomePassed(t *testing.T) {
	o := CheckOutcome{Spec: CheckSpec{Name: "Server Health"}, Passed: true}
	assert.Equal(t, "✅ Server Health passed", reportOutcome(o))
}

func TestReportOutcomeMissingKeys(t *testing.T) {
	o := CheckOutcome{
		Spec:        CheckSpec{Name: "Current Jackpot"},
		Result:      ProbeResult{StatusCode: 200, Success: true},
		MissingKeys: []string{"amountEur", "amountZar"},
	}
	assert.Equal(t, "❌ Current Jackpot failed - missing keys: amountEur, amountZar", reportOutcome(o))
}

func TestReportOutcomeProbeFailure(t *testing.T) {
	o := CheckOutcome{
		Spec:   CheckSpec{Name: "Draw History"},
		Result: ProbeResult{StatusCode: 500, Error: "HTTP 500: Internal Server Error"},
	}
	expected := "❌ Draw History failed\n" +
		"   Status: 500\n" +
		"   Error: HTTP 500: Internal Server Error"
	assert.Equal(t, expected, reportOutcome(o))
}

func TestReportRunAllPassed(t *testing.T) {
	outcomes := []CheckOutcome{
		{Spec: CheckSpec{Name: "Server Health"}, Passed: true},
	}
	out := reportRun(outcomes, RunSummary{Passed: 1})
	expected := "✅ Server Health passed\n" +
		"Test Results:\n" +
		"✅ Passed: 1\n" +
		"❌ Failed: 0\n" +
		"🎉 All tests passed!"
	assert.Equal(t, expected, out)
}

func TestReportRunWithFailure(t *testing.T) {
	outcomes := []CheckOutcome{
		{Spec: CheckSpec{Name: "Server Health"}, Passed: true},
		{Spec: CheckSpec{Name: "Current Jackpot"}, Result: ProbeResult{StatusCode: 200, Success: true}, MissingKeys: []string{"amountZar"}},
	}
	out := reportRun(outcomes, RunSummary{Passed: 1, Failed: 1})
	expected := "✅ Server Health passed\n" +
		"❌ Current Jackpot failed - missing keys: amountZar\n" +
		"Test Results:\n" +
		"✅ Passed: 1\n" +
		"❌ Failed: 1\n" +
		"⚠️  Some tests failed. Make sure the server is running with 'harness run'."
	assert.Equal(t, expected, out)
}
