// Package audit writes best-effort activity-log entries for mutations.
//
// Entries are written fire-and-forget: Record returns before the request
// completes, failures are logged locally and swallowed, and nothing is
// retried. The audit trail is traceability, not a transaction participant.
package audit

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/lifelinkhq/lifelink/internal/api"
)

const writeTimeout = 5 * time.Second

// Entry is the POST /activity-logs payload.
type Entry struct {
	ActionBy    string `json:"actionBy"`
	Action      string `json:"action"`
	Description string `json:"description"`
	ModelName   string `json:"modelName"`
}

// Logger posts activity-log entries on behalf of one operator.
type Logger struct {
	client *api.Client
	actor  string
	wg     sync.WaitGroup
}

// NewLogger builds a Logger. actor identifies the operator in entries.
func NewLogger(client *api.Client, actor string) *Logger {
	return &Logger{client: client, actor: actor}
}

// Record queues one entry and returns immediately. A nil Logger is a no-op so
// callers never need to branch.
func (l *Logger) Record(action, modelName, description string) {
	if l == nil || l.client == nil {
		return
	}
	entry := Entry{
		ActionBy:    l.actor,
		Action:      action,
		Description: description,
		ModelName:   modelName,
	}
	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		defer cancel()
		type ignored struct{}
		if _, err := api.Create[ignored](ctx, l.client, "activity-logs", entry, nil); err != nil {
			log.Printf("activity log write failed: %v", err)
		}
	}()
}

// Hook adapts the logger to the store's audit callback for one model.
func (l *Logger) Hook(modelName string) func(action, description string) {
	return func(action, description string) {
		l.Record(action, modelName, description)
	}
}

// Flush waits for queued writes to finish. Used on shutdown and in tests.
func (l *Logger) Flush() {
	if l == nil {
		return
	}
	l.wg.Wait()
}
