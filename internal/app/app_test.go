package app

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path"
	"testing"
	"time"

	"github.com/lifelinkhq/lifelink/internal/api"
	"github.com/lifelinkhq/lifelink/internal/config"
	"github.com/lifelinkhq/lifelink/internal/ui"
)

// newTestContext wires a full Context against a stub server that answers
// every list request with an empty page and a fixed total per filter value.
func newTestContext(t *testing.T, totals map[string]int) *Context {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		// Single-record fetches address /<collection>/<id>.
		if id := path.Base(r.URL.Path); r.Method == http.MethodGet && isDigits(id) {
			fmt.Fprintf(w, `{"data":{"id":"%s","attributes":{"hospital":"City General","status":"Pending"}}}`, id)
			return
		}

		total := 0
		for value, n := range totals {
			if queryContains(r, value) {
				total = n
				break
			}
		}
		fmt.Fprintf(w, `{"data":[],"meta":{"pagination":{"page":1,"pageSize":10,"pageCount":1,"total":%d}}}`, total)
	}))
	t.Cleanup(srv.Close)

	client, err := api.NewClient(srv.URL, "")
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return NewContext(context.Background(), config.Config{PageSize: 10}, client)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func queryContains(r *http.Request, value string) bool {
	for _, vs := range r.URL.Query() {
		for _, v := range vs {
			if v == value {
				return true
			}
		}
	}
	return false
}

func TestNewContextBuildsAllResourceTabs(t *testing.T) {
	c := newTestContext(t, nil)

	if len(c.Resources) != 15 {
		t.Fatalf("expected 15 resource tabs, got %d", len(c.Resources))
	}
	if c.Resources[0].Key() != "donors" {
		t.Fatalf("first tab should be donors, got %q", c.Resources[0].Key())
	}

	seen := make(map[string]bool)
	for _, r := range c.Resources {
		if seen[r.Key()] {
			t.Fatalf("duplicate resource key %q", r.Key())
		}
		seen[r.Key()] = true
	}
}

func TestActivityTabIsReadOnly(t *testing.T) {
	c := newTestContext(t, nil)

	for _, r := range c.Resources {
		if r.Key() == "activity" {
			if !r.ReadOnly() {
				t.Fatal("activity log tab must be read-only")
			}
			return
		}
	}
	t.Fatal("no activities tab found")
}

func TestNotifyHubForwardsOnlyWhenAttached(t *testing.T) {
	hub := &NotifyHub{}

	// No notifier attached yet; must not panic.
	hub.Success("created")
	hub.Error("failed")

	rec := &recordingNotifier{}
	hub.Attach(rec)
	hub.Success("created")
	hub.Error("failed")

	if len(rec.successes) != 1 || rec.successes[0] != "created" {
		t.Fatalf("successes = %v", rec.successes)
	}
	if len(rec.errors) != 1 || rec.errors[0] != "failed" {
		t.Fatalf("errors = %v", rec.errors)
	}
}

type recordingNotifier struct {
	successes []string
	errors    []string
}

func (r *recordingNotifier) Success(m string) { r.successes = append(r.successes, m) }
func (r *recordingNotifier) Error(m string)   { r.errors = append(r.errors, m) }

func TestLoadStatsFillsDashboardCounters(t *testing.T) {
	c := newTestContext(t, map[string]int{"O+": 12, "Pending": 3})

	c.LoadStats(context.Background())

	pouchStats := c.Pouches.State().Stats
	if got := pouchStats["O+"]; got != 12 {
		t.Fatalf("O+ count = %d, want 12", got)
	}
	if len(pouchStats) != len(bloodGroups) {
		t.Fatalf("expected a counter per blood group, got %d", len(pouchStats))
	}

	transferStats := c.Transfers.State().Stats
	if got := transferStats["Pending"]; got != 3 {
		t.Fatalf("Pending count = %d, want 3", got)
	}
}

func TestResourceDetailAfterSelect(t *testing.T) {
	c := newTestContext(t, nil)

	var transfers ui.Resource
	for _, r := range c.Resources {
		if r.Key() == "transfers" {
			transfers = r
		}
	}
	if transfers == nil {
		t.Fatal("no transfers tab found")
	}

	if got := transfers.Detail(); got != nil {
		t.Fatalf("Detail = %v before any selection, want nil", got)
	}

	if err := transfers.Select(context.Background(), "3"); err != nil {
		t.Fatalf("Select returned error: %v", err)
	}

	pairs := transfers.Detail()
	if pairs == nil {
		t.Fatal("Detail returned nil after a successful Select")
	}
	got := make(map[string]string, len(pairs))
	for _, kv := range pairs {
		got[kv[0]] = kv[1]
	}
	if got["ID"] != "3" || got["Hospital"] != "City General" || got["Status"] != "Pending" {
		t.Fatalf("detail pairs = %v", pairs)
	}

	transfers.ClearSelected()
	if transfers.Detail() != nil {
		t.Fatal("ClearSelected should empty the detail view")
	}
}

func TestCycleStatusFilterWrapsToAll(t *testing.T) {
	c := newTestContext(t, nil)

	var transfers interface {
		CycleStatusFilter() string
		StatusFilter() string
	}
	for _, r := range c.Resources {
		if r.Key() == "transfers" {
			transfers = r
		}
	}
	if transfers == nil {
		t.Fatal("no transfers tab found")
	}

	for i, want := range transferStatuses {
		if got := transfers.CycleStatusFilter(); got != want {
			t.Fatalf("cycle %d = %q, want %q", i, got, want)
		}
	}
	if got := transfers.CycleStatusFilter(); got != "" {
		t.Fatalf("cycle should wrap to unfiltered, got %q", got)
	}
	if transfers.StatusFilter() != "" {
		t.Fatal("status filter should be empty after wrapping")
	}

	// Cycling kicks off async refreshes; give them a moment so the test
	// server is still alive when they land.
	time.Sleep(50 * time.Millisecond)
}
