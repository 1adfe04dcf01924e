package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	appconfig "github.com/andestack/contactline/internal/config"
	"github.com/andestack/contactline/internal/record"
	"github.com/andestack/contactline/pkg/logging"
)

func TestSetupMetricsExposesMetrics(t *testing.T) {
	handler, contactMetrics := setupMetrics()
	if handler == nil || contactMetrics == nil {
		t.Fatalf("expected non-nil handler and metrics")
	}

	contactMetrics.ObserveRead(false)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "contactline_contact_reads_total") {
		t.Fatalf("expected reads counter to be exported")
	}
}

func TestBuildRouterServesContactRecord(t *testing.T) {
	t.Setenv("DEFAULT_PHONE", "5491100000000")
	logger := logging.New("error")
	cfg := &appconfig.Config{}

	r := buildRouter(record.NewMemoryStore(), cfg, logger, nil, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 from /health, got %d", rr.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "http://site.example/", nil)
	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 from root, got %d", rr.Code)
	}
	var read struct {
		Phone       string `json:"phone"`
		ChangeCount int    `json:"changeCount"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&read); err != nil {
		t.Fatalf("decode read response: %v", err)
	}
	if read.Phone != "5491100000000" || read.ChangeCount != 0 {
		t.Fatalf("unexpected read payload: %+v", read)
	}
}
