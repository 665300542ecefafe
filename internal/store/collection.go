package store

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/lifelinkhq/lifelink/internal/api"
	"github.com/lifelinkhq/lifelink/internal/model"
	"github.com/lifelinkhq/lifelink/internal/query"
)

// AuditHook records that a mutation happened. Implementations must be
// fire-and-forget: they may not block, fail the caller, or be awaited.
type AuditHook func(action, description string)

// Audit action kinds, mirrored by the activity-log collaborator.
const (
	ActionCreated = "Created"
	ActionUpdated = "Updated"
	ActionDeleted = "Deleted"
)

// Options wires one Collection to its server resource and collaborators.
type Options struct {
	// Path is the collection segment of the API URL, e.g. "blood-pouches".
	Path string
	// Label names the entity in notifications, e.g. "Blood pouch".
	Label string
	// Notify receives success/error toasts. Nil means no notifications.
	Notify Notifier
	// Audit, when set, is invoked after every successful mutation.
	Audit AuditHook
}

// Collection owns one entity's State and exposes the operation families:
// List, GetOne, Create, Update, Delete, Transition and CountWhere. All writes
// to the state go through Reduce under the collection's lock, so there is a
// single writer regardless of how many goroutines issue operations.
type Collection[T model.Entity[T]] struct {
	mu     sync.RWMutex
	state  State[T]
	client *api.Client
	opts   Options
	seq    atomic.Uint64
}

// New builds a Collection. The zero State is ready immediately.
func New[T model.Entity[T]](client *api.Client, opts Options) *Collection[T] {
	if opts.Notify == nil {
		opts.Notify = NopNotifier{}
	}
	return &Collection[T]{client: client, opts: opts}
}

// Path returns the collection's URL segment.
func (c *Collection[T]) Path() string { return c.opts.Path }

// Label returns the human name used in notifications.
func (c *Collection[T]) Label() string { return c.opts.Label }

// State returns a snapshot of the current state. Items and Stats are copied
// so callers can hold the snapshot across renders.
func (c *Collection[T]) State() State[T] {
	c.mu.RLock()
	defer c.mu.RUnlock()

	snap := c.state
	snap.Items = cloneItems(c.state.Items)
	if c.state.Selected != nil {
		selected := *c.state.Selected
		snap.Selected = &selected
	}
	if len(c.state.Stats) > 0 {
		stats := make(map[string]int, len(c.state.Stats))
		for k, v := range c.state.Stats {
			stats[k] = v
		}
		snap.Stats = stats
	}
	return snap
}

func (c *Collection[T]) dispatch(ev Event[T]) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = Reduce(c.state, ev)
}

// List fetches one page and replaces Items/PageMeta wholesale. A failure
// leaves the previous page visible and surfaces the server's message as an
// error toast. Responses that lose the race to a newer request are dropped.
func (c *Collection[T]) List(ctx context.Context, p query.Params) error {
	seq := c.seq.Add(1)
	c.dispatch(ListRequested[T]{Seq: seq})

	res, err := api.List[T](ctx, c.client, c.opts.Path, p.Encode())
	if err != nil {
		c.dispatch(ListRejected[T]{Seq: seq})
		c.opts.Notify.Error(api.Message(err))
		return err
	}
	c.dispatch(ListResolved[T]{Seq: seq, Items: res.Items, Meta: res.Meta})
	return nil
}

// GetOne fetches a single record into Selected. On failure the previous
// selection is left alone.
func (c *Collection[T]) GetOne(ctx context.Context, id string, p query.Params) error {
	record, err := api.Get[T](ctx, c.client, c.opts.Path, id, p.Encode())
	if err != nil {
		c.opts.Notify.Error(api.Message(err))
		return err
	}
	c.dispatch(DetailResolved[T]{Record: record})
	return nil
}

// ClearSelected empties the detail slot; the UI calls it when leaving a
// detail view.
func (c *Collection[T]) ClearSelected() {
	c.dispatch(SelectedCleared[T]{})
}

// Step is one dependent sub-request of a multi-step create. It receives the
// identity returned by the previous step and returns its own.
type Step func(ctx context.Context, prevID string) (string, error)

// CreateOptions configure Create's side effects.
type CreateOptions struct {
	Params query.Params
	// Steps run strictly sequentially after the primary create, each fed the
	// previous identity. There is no rollback: if step N fails, steps 1..N-1
	// have already taken effect server-side.
	Steps []Step
	// Navigate, when set, is invoked exactly once with the new identity after
	// the whole operation succeeds.
	Navigate func(id string)
	// Audit is the activity-log description; empty means no entry.
	Audit string
}

// Create posts a new record, then runs any dependent sub-requests. The whole
// operation is reported as one unit: any failing sub-request rejects it.
func (c *Collection[T]) Create(ctx context.Context, payload any, opts CreateOptions) (T, error) {
	var zero T
	c.dispatch(MutationStarted[T]{})

	created, err := api.Create[T](ctx, c.client, c.opts.Path, payload, opts.Params.Encode())
	if err != nil {
		c.dispatch(MutationRejected[T]{})
		c.opts.Notify.Error(api.Message(err))
		return zero, err
	}

	prevID := created.EntityID()
	for i, step := range opts.Steps {
		nextID, err := step(ctx, prevID)
		if err != nil {
			c.dispatch(MutationRejected[T]{})
			c.opts.Notify.Error(api.Message(err))
			return zero, fmt.Errorf("create %s step %d: %w", c.opts.Path, i+2, err)
		}
		prevID = nextID
	}

	c.dispatch(RecordCreated[T]{Record: created})
	c.opts.Notify.Success(c.opts.Label + " created")
	c.recordAudit(ActionCreated, opts.Audit)
	if opts.Navigate != nil {
		opts.Navigate(created.EntityID())
	}
	return created, nil
}

// MutateOptions configure Update, Delete and Transition side effects.
type MutateOptions struct {
	Params query.Params
	// OnClose runs after a successful mutation, typically dismissing a modal.
	OnClose func()
	// Audit is the activity-log description; empty means no entry.
	Audit string
}

// Update replaces fields of a record and merges the response into local
// state: shallow at the top level, field-wise one level into attributes.
func (c *Collection[T]) Update(ctx context.Context, id string, payload any, opts MutateOptions) error {
	c.dispatch(MutationStarted[T]{})

	updated, err := api.Update[T](ctx, c.client, c.opts.Path, id, payload, opts.Params.Encode())
	if err != nil {
		c.dispatch(MutationRejected[T]{})
		c.opts.Notify.Error(api.Message(err))
		return err
	}

	c.dispatch(RecordUpdated[T]{Record: updated})
	c.opts.Notify.Success(c.opts.Label + " updated")
	c.recordAudit(ActionUpdated, opts.Audit)
	if opts.OnClose != nil {
		opts.OnClose()
	}
	return nil
}

// Delete removes the record server-side and drops it from Items. Pagination
// metadata is left alone; the list controller refetches the page afterwards.
func (c *Collection[T]) Delete(ctx context.Context, id string, opts MutateOptions) error {
	c.dispatch(MutationStarted[T]{})

	if err := c.client.Delete(ctx, c.opts.Path, id); err != nil {
		c.dispatch(MutationRejected[T]{})
		c.opts.Notify.Error(api.Message(err))
		return err
	}

	c.dispatch(RecordDeleted[T]{ID: id})
	c.opts.Notify.Success(c.opts.Label + " deleted")
	c.recordAudit(ActionDeleted, opts.Audit)
	if opts.OnClose != nil {
		opts.OnClose()
	}
	return nil
}

// Transition moves a record along its server-defined status machine via the
// PATCH custom-action endpoint. Locally it behaves like Update; the status
// value itself is opaque here.
func (c *Collection[T]) Transition(ctx context.Context, id, action string, payload any, opts MutateOptions) error {
	c.dispatch(MutationStarted[T]{})

	updated, err := api.Action[T](ctx, c.client, c.opts.Path, id, action, payload)
	if err != nil {
		c.dispatch(MutationRejected[T]{})
		c.opts.Notify.Error(api.Message(err))
		return err
	}

	c.dispatch(RecordUpdated[T]{Record: updated})
	c.opts.Notify.Success(c.opts.Label + " updated")
	c.recordAudit(ActionUpdated, opts.Audit)
	if opts.OnClose != nil {
		opts.OnClose()
	}
	return nil
}

// CountWhere runs an auxiliary single-row query and records the total under
// name in Stats. Failures are quiet: counters are decoration, not data.
func (c *Collection[T]) CountWhere(ctx context.Context, name string, filters []query.Filter) error {
	p := query.Build(query.Input{
		Filters:    filters,
		Pagination: query.Pagination{PageIndex: 0, PageSize: 1},
	})
	res, err := api.List[T](ctx, c.client, c.opts.Path, p.Encode())
	if err != nil {
		return err
	}
	c.dispatch(StatLoaded[T]{Name: name, Count: res.Meta.Total})
	return nil
}

func (c *Collection[T]) recordAudit(action, description string) {
	if c.opts.Audit == nil || description == "" {
		return
	}
	c.opts.Audit(action, description)
}
