package controller

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/lifelinkhq/lifelink/internal/api"
	"github.com/lifelinkhq/lifelink/internal/model"
	"github.com/lifelinkhq/lifelink/internal/store"
)

// fixture records every list request's query and serves a configurable page.
type fixture struct {
	mu      sync.Mutex
	queries []url.Values
	total   int
}

func (f *fixture) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.queries = append(f.queries, r.URL.Query())
	total := f.total
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	body := `{"data":[`
	for i := 0; i < total; i++ {
		if i > 0 {
			body += ","
		}
		body += fmt.Sprintf(`{"id":"%d","attributes":{"name":"Donor %d"}}`, i+1, i+1)
	}
	body += fmt.Sprintf(`],"meta":{"pagination":{"total":%d,"pageSize":10,"page":1,"pageCount":1}}}`, total)
	_, _ = w.Write([]byte(body))
}

func (f *fixture) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.queries)
}

func (f *fixture) query(i int) url.Values {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.queries[i]
}

func (f *fixture) waitFor(t *testing.T, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for f.count() < n {
		if time.Now().After(deadline) {
			t.Fatalf("requests = %d, want %d", f.count(), n)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func newTestController(t *testing.T, cfg Config) (*Controller[model.Donor], *fixture) {
	t.Helper()
	fix := &fixture{total: 3}
	server := httptest.NewServer(fix)
	t.Cleanup(server.Close)

	client, err := api.NewClient(server.URL, "")
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	col := store.New[model.Donor](client, store.Options{Path: "donors", Label: "Donor"})
	return New(context.Background(), col, cfg), fix
}

func TestController_RefreshSendsPageParams(t *testing.T) {
	t.Parallel()

	c, fix := newTestController(t, Config{PageSize: 25})
	if err := c.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh returned error: %v", err)
	}

	q := fix.query(0)
	if got := q.Get("pagination[page]"); got != "1" {
		t.Errorf("pagination[page] = %q, want 1", got)
	}
	if got := q.Get("pagination[pageSize]"); got != "25" {
		t.Errorf("pagination[pageSize] = %q, want 25", got)
	}
}

func TestController_FilterChangeResetsPageAndRefetches(t *testing.T) {
	t.Parallel()

	c, fix := newTestController(t, Config{PageSize: 10})
	c.SetPage(4)
	fix.waitFor(t, 1)

	c.SetFilter("status", "Approve")
	fix.waitFor(t, 2)

	if got := c.PageIndex(); got != 0 {
		t.Errorf("PageIndex = %d, want 0 after filter change", got)
	}
	q := fix.query(1)
	if got := q.Get("filters[status][$eq]"); got != "Approve" {
		t.Errorf("filters[status][$eq] = %q, want Approve", got)
	}
	if got := q.Get("pagination[page]"); got != "1" {
		t.Errorf("pagination[page] = %q, want 1", got)
	}
}

func TestController_SetFilterEmptyRemoves(t *testing.T) {
	t.Parallel()

	c, fix := newTestController(t, Config{PageSize: 10})
	c.SetFilter("status", "Approve")
	fix.waitFor(t, 1)
	c.SetFilter("status")
	fix.waitFor(t, 2)

	if got := len(c.Filters()); got != 0 {
		t.Fatalf("filters = %d, want 0", got)
	}
	if got := fix.query(1).Get("filters[status][$eq]"); got != "" {
		t.Errorf("filter still sent after removal: %q", got)
	}
}

func TestController_PageSizeChangeResetsIndex(t *testing.T) {
	t.Parallel()

	c, fix := newTestController(t, Config{PageSize: 10})
	c.SetPage(3)
	fix.waitFor(t, 1)

	c.SetPageSize(50)
	fix.waitFor(t, 2)

	if got := c.PageIndex(); got != 0 {
		t.Errorf("PageIndex = %d, want 0 after page-size change", got)
	}
	q := fix.query(1)
	if got := q.Get("pagination[pageSize]"); got != "50" {
		t.Errorf("pagination[pageSize] = %q, want 50", got)
	}
}

func TestController_SearchIsDebounced(t *testing.T) {
	t.Parallel()

	c, fix := newTestController(t, Config{
		PageSize:     10,
		SearchFields: []string{"name", "email"},
		Debounce:     50 * time.Millisecond,
	})

	c.SetSearch("a")
	c.SetSearch("as")
	c.SetSearch("ash")

	// Well inside the quiet period nothing should have fired.
	time.Sleep(10 * time.Millisecond)
	if got := fix.count(); got != 0 {
		t.Fatalf("requests during quiet period = %d, want 0", got)
	}

	fix.waitFor(t, 1)
	if got := fix.count(); got != 1 {
		t.Fatalf("requests = %d, want exactly 1 after debounce", got)
	}

	q := fix.query(0)
	if got := q.Get("filters[$or][0][name][$like]"); got != "ash" {
		t.Errorf("name $like = %q, want ash (final term only)", got)
	}
	if got := q.Get("filters[$or][1][email][$like]"); got != "ash" {
		t.Errorf("email $like = %q, want ash", got)
	}
}

func TestController_DeleteRefetchesCurrentPage(t *testing.T) {
	t.Parallel()

	fix := &fixture{total: 2}
	mux := http.NewServeMux()
	mux.Handle("GET /donors", fix)
	mux.HandleFunc("DELETE /donors/1", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	client, err := api.NewClient(server.URL, "")
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	col := store.New[model.Donor](client, store.Options{Path: "donors", Label: "Donor"})
	c := New(context.Background(), col, Config{PageSize: 10})
	ctx := context.Background()

	if err := c.Refresh(ctx); err != nil {
		t.Fatalf("Refresh returned error: %v", err)
	}
	if err := c.Delete(ctx, "1", store.MutateOptions{}); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if got := fix.count(); got != 2 {
		t.Fatalf("list requests = %d, want 2 (initial + post-delete refetch)", got)
	}
}

func TestController_ClientPaginatedMode(t *testing.T) {
	t.Parallel()

	c, fix := newTestController(t, Config{PageSize: 2, ClientPaginated: true})
	fix.mu.Lock()
	fix.total = 5
	fix.mu.Unlock()

	if err := c.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh returned error: %v", err)
	}
	if got := fix.query(0).Get("pagination[pageSize]"); got != "1000" {
		t.Errorf("fetch-all pageSize = %q, want 1000", got)
	}

	if rows := c.Rows(); len(rows) != 2 || rows[0].ID != "1" {
		t.Fatalf("page 0 rows = %v, want ids 1,2", rows)
	}
	meta := c.Meta()
	if meta.Total != 5 || meta.PageCount != 3 || !meta.HasNextPage || meta.HasPrevPage {
		t.Fatalf("meta = %#v, want total=5 pageCount=3 next=true prev=false", meta)
	}

	c.SetPage(2)
	if rows := c.Rows(); len(rows) != 1 || rows[0].ID != "5" {
		t.Fatalf("page 2 rows = %v, want id 5", rows)
	}
	meta = c.Meta()
	if meta.HasNextPage || !meta.HasPrevPage {
		t.Fatalf("meta = %#v, want last page", meta)
	}
	// Paging locally must not issue another request.
	if got := fix.count(); got != 1 {
		t.Fatalf("requests = %d, want 1", got)
	}
}
