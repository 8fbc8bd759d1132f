package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"
)

type ProberImpl struct {
	Timeout time.Duration
}

// Probe issues a single GET request and folds every possible failure
// into the returned ProbeResult. It never returns an error and never
// retries; callers re-invoke if they want another attempt.
func (p ProberImpl) Probe(url string) ProbeResult {
	client := http.Client{Timeout: p.Timeout}
	resp, err := client.Get(url)
	if err != nil {
		return classifyRequestError(url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.Error("failed to read response body from %s: %v", url, err)
		return ProbeResult{Error: "Unexpected error: " + err.Error()}
	}

	if resp.StatusCode != http.StatusOK {
		return ProbeResult{
			StatusCode: resp.StatusCode,
			Error:      fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
		}
	}

	var data any
	if err := json.Unmarshal(body, &data); err != nil {
		return ProbeResult{Error: "Invalid JSON: " + err.Error()}
	}
	return ProbeResult{StatusCode: resp.StatusCode, Success: true, Data: data}
}

func classifyRequestError(url string, err error) ProbeResult {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "connection refused"):
		return ProbeResult{Error: "Connection refused - server is not running"}
	case strings.Contains(msg, "no such host"):
		return ProbeResult{Error: fmt.Sprintf("Server not found - check if %s is accessible", url)}
	case isTimeout(err):
		return ProbeResult{Error: "Request timeout"}
	default:
		logger.Error("unexpected error requesting %s: %v", url, err)
		return ProbeResult{Error: "Unexpected error: " + msg}
	}
}

func isTimeout(err error) bool {
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func NewProber(timeout time.Duration) Prober {
	return ProberImpl{Timeout: timeout}
}
