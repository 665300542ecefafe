package ui

import (
	"context"

	"github.com/lifelinkhq/lifelink/internal/api"
	"github.com/lifelinkhq/lifelink/internal/store"
)

// Column describes one table column.
type Column struct {
	Title string
	Width int
}

// Resource is one tab's data source. The app layer adapts each typed entity
// collection to this interface so the view never handles entity types.
type Resource interface {
	Key() string
	Title() string
	Columns() []Column
	Rows() [][]string
	RowID(index int) string
	Meta() api.PageMeta
	ListStatus() store.ListStatus
	Stats() map[string]int
	ReadOnly() bool

	Refresh(ctx context.Context) error
	SetSearch(term string)
	NextPage()
	PrevPage()

	// Select loads one record into the detail slot; Detail exposes it as
	// label/value pairs, nil while nothing is loaded. ClearSelected empties
	// the slot when the detail view closes.
	Select(ctx context.Context, id string) error
	Detail() [][2]string
	ClearSelected()

	CycleStatusFilter() string
	StatusFilter() string

	// Actions lists the status-transition endpoints the resource supports,
	// empty for entities without a status machine.
	Actions() []string
	Transition(ctx context.Context, id, action string) error

	Delete(ctx context.Context, id string) error
}

// Attacher registers the UI's notifier with the collections once the event
// loop is running.
type Attacher interface {
	Attach(store.Notifier)
}
