package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func testProber() ProberImpl {
	return ProberImpl{Timeout: 2 * time.Second}
}

func TestProbeSuccessWithJson(t *testing.T) {
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"totalCombinations": 139838160, "drawnCombinations": 50}`))
	}))
	defer s.Close()

	res := testProber().Probe(s.URL)
	require.True(t, res.Success)
	require.Equal(t, 200, res.StatusCode)
	require.Empty(t, res.Error)
	obj, ok := res.Data.(map[string]any)
	require.True(t, ok)
	require.Equal(t, float64(50), obj["drawnCombinations"])
}

func TestProbeHttpErrorStatus(t *testing.T) {
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer s.Close()

	res := testProber().Probe(s.URL)
	require.False(t, res.Success)
	require.Equal(t, 500, res.StatusCode)
	require.Equal(t, "HTTP 500: Internal Server Error", res.Error)
	require.Nil(t, res.Data)
}

func TestProbeMalformedJson(t *testing.T) {
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("<html>definitely not json</html>"))
	}))
	defer s.Close()

	res := testProber().Probe(s.URL)
	require.False(t, res.Success)
	require.Equal(t, 0, res.StatusCode)
	require.True(t, strings.HasPrefix(res.Error, "Invalid JSON: "))
}

func TestProbeConnectionRefused(t *testing.T) {
	s := httptest.NewServer(http.NotFoundHandler())
	url := s.URL
	s.Close()

	res := testProber().Probe(url)
	require.False(t, res.Success)
	require.Equal(t, 0, res.StatusCode)
	require.Equal(t, "Connection refused - server is not running", res.Error)
}

func TestProbeTimeout(t *testing.T) {
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(300 * time.Millisecond)
	}))
	defer s.Close()

	res := ProberImpl{Timeout: 50 * time.Millisecond}.Probe(s.URL)
	require.False(t, res.Success)
	require.Equal(t, 0, res.StatusCode)
	require.Equal(t, "Request timeout", res.Error)
}
