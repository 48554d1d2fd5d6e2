package metrics

import (
	"io"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/influxdata/influxdb-client-go/v2/api/write"

	coremetrics "github.com/kilianp07/evrouter/core/metrics"
)

func TestInfluxSink_RecordSearch(t *testing.T) {
	var body string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		body = string(data)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	sink := NewInfluxSink(srv.URL, "token", "org", "bucket")
	defer sink.Close()

	now := time.Now()
	rec := coremetrics.SearchRecord{
		QueryID:       "q1",
		Strategy:      "astar",
		Start:         "A",
		Capacity:      6,
		Cost:          5.1,
		NodesExpanded: 2,
		Runtime:       1500 * time.Microsecond,
		Reachable:     true,
		Time:          now,
	}
	if err := sink.RecordSearch([]coremetrics.SearchRecord{rec}); err != nil {
		t.Fatalf("record error: %v", err)
	}

	p := write.NewPointWithMeasurement("search_event").
		AddTag("strategy", "astar").
		AddTag("start", "A").
		AddTag("reachable", "true").
		AddTag("query_id", "q1").
		AddField("capacity_km", 6.0).
		AddField("nodes_expanded", 2).
		AddField("runtime_ms", 1.5).
		AddField("cost_km", 5.1).
		SetTime(now)
	expected := strings.TrimSpace(write.PointToLineProtocol(p, time.Nanosecond))
	if strings.TrimSpace(body) != expected {
		t.Errorf("unexpected body:\n got: %s\nwant: %s", body, expected)
	}
}

func TestInfluxSink_UnreachableHasNoCostField(t *testing.T) {
	var body string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		body = string(data)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	sink := NewInfluxSink(srv.URL, "token", "org", "bucket")
	defer sink.Close()

	rec := coremetrics.SearchRecord{
		QueryID:       "q2",
		Strategy:      "ucs",
		Start:         "A",
		Capacity:      2,
		Cost:          math.Inf(1),
		NodesExpanded: 1,
		Time:          time.Now(),
	}
	if err := sink.RecordSearch([]coremetrics.SearchRecord{rec}); err != nil {
		t.Fatalf("record error: %v", err)
	}
	if strings.Contains(body, "cost_km") {
		t.Errorf("unreachable record must not carry a cost field: %s", body)
	}
}

func TestNewInfluxSinkWithFallback(t *testing.T) {
	// No server behind the URL: the health check fails and the sink degrades
	// to a no-op.
	cfg := coremetrics.Config{
		InfluxEnabled: true,
		InfluxURL:     "http://127.0.0.1:1",
		InfluxOrg:     "org",
		InfluxBucket:  "bucket",
	}
	sink := NewInfluxSinkWithFallback(cfg)
	if _, ok := sink.(coremetrics.NopSink); !ok {
		t.Fatalf("expected NopSink fallback, got %T", sink)
	}
}
