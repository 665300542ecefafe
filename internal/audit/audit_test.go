package audit

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/lifelinkhq/lifelink/internal/api"
)

func TestRecord_PostsEntry(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	var got []Entry
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/activity-logs" {
			http.NotFound(w, r)
			return
		}
		var body struct {
			Data Entry `json:"data"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		mu.Lock()
		got = append(got, body.Data)
		mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{}}`))
	}))
	t.Cleanup(server.Close)

	client, err := api.NewClient(server.URL, "")
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	logger := NewLogger(client, "admin@lifelink")
	logger.Record("Created", "Donor", "Registered donor Asha")
	logger.Flush()

	mu.Lock()
	defer mu.Unlock()
	if len(got) != 1 {
		t.Fatalf("entries = %d, want 1", len(got))
	}
	want := Entry{ActionBy: "admin@lifelink", Action: "Created", Description: "Registered donor Asha", ModelName: "Donor"}
	if got[0] != want {
		t.Fatalf("entry = %#v, want %#v", got[0], want)
	}
}

func TestRecord_FailureIsSwallowed(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)

	client, err := api.NewClient(server.URL, "")
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	logger := NewLogger(client, "admin")
	logger.Record("Deleted", "Donor", "whatever")
	logger.Flush() // must return; the failure surfaces nowhere
}

func TestRecord_NilLoggerIsNoOp(t *testing.T) {
	t.Parallel()

	var logger *Logger
	logger.Record("Created", "Donor", "ignored")
	logger.Flush()
}

func TestHook_BindsModelName(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	var got Entry
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Data Entry `json:"data"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		mu.Lock()
		got = body.Data
		mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{}}`))
	}))
	t.Cleanup(server.Close)

	client, err := api.NewClient(server.URL, "")
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	logger := NewLogger(client, "admin")
	hook := logger.Hook("BloodPouch")
	hook("Updated", "Marked pouch BP-102 as used")
	logger.Flush()

	mu.Lock()
	defer mu.Unlock()
	if got.ModelName != "BloodPouch" || got.Action != "Updated" {
		t.Fatalf("entry = %#v, want model BloodPouch action Updated", got)
	}
}
