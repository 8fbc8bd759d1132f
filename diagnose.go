package main

import (
	"encoding/json"
	"fmt"
	"io"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Diagnostic walks through the running server section by section and
// prints what it finds, including decoded payload details. Every
// section is attempted regardless of earlier failures, except when the
// server is not reachable at all.
type Diagnostic struct {
	cfg    Config
	prober Prober
	out    io.Writer
}

func NewDiagnostic(cfg Config, prober Prober, out io.Writer) *Diagnostic {
	return &Diagnostic{cfg: cfg, prober: prober, out: out}
}

// Run returns true when every section was healthy.
func (d *Diagnostic) Run() bool {
	d.printf(blue, "🔍 Lottery Database Diagnostic Tool")
	d.printf(yellow, "📍 Testing connection to: %s", d.cfg.BaseURL)

	d.printf(blue, "\n1. Checking server connection...")
	health := d.prober.Probe(d.cfg.BaseURL + "/api/stats")
	if !health.Success {
		d.reportServerDown(health)
		return false
	}
	d.printf(green, "✅ Server is running")

	statsOK := d.checkStats()
	historyOK := d.checkHistory()
	initOK := d.checkInitialize()
	analyticsOK := d.checkAnalytics()

	allOK := statsOK && historyOK && initOK && analyticsOK
	d.printf(blue, "\n📋 Diagnostic Summary:")
	if allOK {
		d.printf(green, "✅ All systems working correctly!")
		d.printf(green, "   Your local setup is ready to use at %s", d.cfg.BaseURL)
	} else {
		d.printf(yellow, "⚠️  Some issues detected. Recommendations:")
		d.printf(yellow, "   1. Check your DATABASE configuration in the .env file")
		d.printf(yellow, "   2. Restart the server: harness run")
		d.printf(yellow, "   3. Visit: %s/api/initialize", d.cfg.BaseURL)
	}
	d.printf(blue, "\n🏁 Diagnostic complete.\n")
	return allOK
}

func (d *Diagnostic) checkStats() bool {
	d.printf(blue, "\n2. Checking database stats...")
	res := d.prober.Probe(d.cfg.BaseURL + "/api/stats")
	if !res.Success {
		d.reportSectionFailure("Stats API failed", res)
		return false
	}
	d.printf(green, "✅ Database stats loaded")
	var stats struct {
		TotalCombinations      int64 `json:"totalCombinations"`
		DrawnCombinations      int64 `json:"drawnCombinations"`
		NeverDrawnCombinations int64 `json:"neverDrawnCombinations"`
	}
	if decodeInto(res.Data, &stats) {
		d.printf(blue, "   Total combinations: %s", groupDigits(stats.TotalCombinations))
		d.printf(blue, "   Drawn combinations: %d", stats.DrawnCombinations)
		d.printf(blue, "   Never drawn: %s", groupDigits(stats.NeverDrawnCombinations))
	}
	return true
}

func (d *Diagnostic) checkHistory() bool {
	d.printf(blue, "\n3. Checking draw history...")
	res := d.prober.Probe(d.cfg.BaseURL + "/api/history")
	if !res.Success {
		d.reportSectionFailure("History API failed", res)
		return false
	}
	d.printf(green, "✅ Draw history loaded")
	var draws []struct {
		DrawDate string `json:"drawDate"`
		Numbers  []int  `json:"numbers"`
		Stars    []int  `json:"stars"`
	}
	if decodeInto(res.Data, &draws) {
		d.printf(blue, "   Number of draws: %d", len(draws))
		if len(draws) > 0 {
			latest := draws[0]
			if ts, err := time.Parse(time.RFC3339, latest.DrawDate); err == nil {
				d.printf(blue, "   Latest draw: %s", ts.Format("2006-01-02"))
			}
			d.printf(blue, "   Numbers: %s", joinInts(latest.Numbers))
			d.printf(blue, "   Stars: %s", joinInts(latest.Stars))
		}
	}
	return true
}

func (d *Diagnostic) checkInitialize() bool {
	d.printf(blue, "\n4. Force initializing data...")
	res := d.prober.Probe(d.cfg.BaseURL + "/api/initialize")
	if !res.Success {
		d.reportSectionFailure("Initialization failed", res)
		return false
	}
	d.printf(green, "✅ Data initialization completed")
	var init struct {
		Stats *struct {
			DrawnCombinations  int64   `json:"drawnCombinations"`
			PredictionAccuracy float64 `json:"predictionAccuracy"`
		} `json:"stats"`
	}
	if decodeInto(res.Data, &init) && init.Stats != nil {
		d.printf(blue, "   Draws loaded: %d", init.Stats.DrawnCombinations)
		d.printf(blue, "   Prediction accuracy: %.1f%%", init.Stats.PredictionAccuracy*100)
	}
	return true
}

func (d *Diagnostic) checkAnalytics() bool {
	d.printf(blue, "\n5. Checking analytics after initialization...")
	res := d.prober.Probe(d.cfg.BaseURL + "/api/analytics/numbers")
	if !res.Success {
		d.reportSectionFailure("Analytics API failed", res)
		return false
	}
	d.printf(green, "✅ Analytics loaded")
	var analytics struct {
		HotNumbers []struct {
			Number int `json:"number"`
		} `json:"hotNumbers"`
		HotStars []struct {
			Number int `json:"number"`
		} `json:"hotStars"`
	}
	if decodeInto(res.Data, &analytics) {
		if len(analytics.HotNumbers) > 0 {
			var hot []int
			for _, n := range analytics.HotNumbers {
				hot = append(hot, n.Number)
			}
			if len(hot) > 5 {
				hot = hot[:5]
			}
			d.printf(blue, "   Hot numbers: %s", joinInts(hot))
		}
		if len(analytics.HotStars) > 0 {
			var hot []int
			for _, s := range analytics.HotStars {
				hot = append(hot, s.Number)
			}
			if len(hot) > 3 {
				hot = hot[:3]
			}
			d.printf(blue, "   Hot stars: %s", joinInts(hot))
		}
	}
	return true
}

func (d *Diagnostic) reportSectionFailure(message string, res ProbeResult) {
	d.printf(red, "❌ %s", message)
	d.printf(red, "   Status: %d", res.StatusCode)
	d.printf(red, "   Error: %s", errorOrUnknown(res))
}

func (d *Diagnostic) reportServerDown(res ProbeResult) {
	d.printf(red, "❌ Server not responding. Make sure it's running with 'harness run'")
	d.printf(red, "   Error: %s", errorOrUnknown(res))

	if strings.Contains(res.Error, "Connection refused") || strings.Contains(res.Error, "not found") {
		d.printf(yellow, "\n💡 Environment Detection:")
		d.printf(yellow, "   You are running this diagnostic on your local %s machine,", runtime.GOOS)
		d.printf(yellow, "   but there's no server running locally.")
		d.printf(yellow, "\n🔧 To start the server on this machine:")
		d.printf(yellow, "   1. Open a NEW terminal window (keep this one open)")
		d.printf(yellow, "   2. Navigate to your project directory")
		d.printf(yellow, "   3. Run: harness run")
		d.printf(yellow, "   4. Wait for the server to report it is listening")
		d.printf(yellow, "   5. Then run this diagnostic again: harness diagnose")
	} else {
		d.printf(yellow, "   This appears to be a network connectivity issue.")
		d.printf(yellow, "   The server at %s is not responding.", d.cfg.BaseURL)
	}
}

func (d *Diagnostic) printf(style lipgloss.Style, format string, args ...any) {
	fmt.Fprintln(d.out, style.Render(fmt.Sprintf(format, args...)))
}

func errorOrUnknown(res ProbeResult) string {
	if res.Error == "" {
		return "Unknown error"
	}
	return res.Error
}

// decodeInto re-marshals the generic probe payload into a typed view.
// Detail rendering is best effort, a mismatched shape just skips it.
func decodeInto(data any, v any) bool {
	raw, err := json.Marshal(data)
	if err != nil {
		return false
	}
	return json.Unmarshal(raw, v) == nil
}

func joinInts(nums []int) string {
	strs := make([]string, len(nums))
	for i, n := range nums {
		strs[i] = strconv.Itoa(n)
	}
	return strings.Join(strs, ", ")
}

func groupDigits(n int64) string {
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteString(",")
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
