package app

import (
	"context"
	"strconv"

	"github.com/lifelinkhq/lifelink/internal/api"
	"github.com/lifelinkhq/lifelink/internal/controller"
	"github.com/lifelinkhq/lifelink/internal/model"
	"github.com/lifelinkhq/lifelink/internal/query"
	"github.com/lifelinkhq/lifelink/internal/store"
	"github.com/lifelinkhq/lifelink/internal/ui"
)

// resourceSpec bundles the per-entity pieces a resource adapter needs.
type resourceSpec[T model.Entity[T]] struct {
	Key      string
	Title    string
	Config   controller.Config
	Columns  []ui.Column
	Render   func(T) []string
	Statuses []string
	// Actions are the PATCH transition endpoints, in display order.
	Actions  []string
	ReadOnly bool
}

type resource[T model.Entity[T]] struct {
	spec      resourceSpec[T]
	ctrl      *controller.Controller[T]
	statusIdx int // 0 = unfiltered, 1..n = spec.Statuses[idx-1]
}

func newResource[T model.Entity[T]](ctx context.Context, col *store.Collection[T], spec resourceSpec[T]) ui.Resource {
	return &resource[T]{
		spec: spec,
		ctrl: controller.New(ctx, col, spec.Config),
	}
}

func (r *resource[T]) Key() string          { return r.spec.Key }
func (r *resource[T]) Title() string        { return r.spec.Title }
func (r *resource[T]) Columns() []ui.Column { return r.spec.Columns }
func (r *resource[T]) ReadOnly() bool       { return r.spec.ReadOnly }

func (r *resource[T]) Rows() [][]string {
	items := r.ctrl.Rows()
	rows := make([][]string, len(items))
	for i, item := range items {
		rows[i] = r.spec.Render(item)
	}
	return rows
}

func (r *resource[T]) RowID(index int) string {
	items := r.ctrl.Rows()
	if index < 0 || index >= len(items) {
		return ""
	}
	return items[index].EntityID()
}

func (r *resource[T]) Meta() api.PageMeta           { return r.ctrl.Meta() }
func (r *resource[T]) ListStatus() store.ListStatus { return r.ctrl.Collection().State().List }
func (r *resource[T]) Stats() map[string]int        { return r.ctrl.Collection().State().Stats }

func (r *resource[T]) Refresh(ctx context.Context) error { return r.ctrl.Refresh(ctx) }
func (r *resource[T]) SetSearch(term string)             { r.ctrl.SetSearch(term) }
func (r *resource[T]) NextPage()                         { r.ctrl.NextPage() }
func (r *resource[T]) PrevPage()                         { r.ctrl.PrevPage() }

func (r *resource[T]) CycleStatusFilter() string {
	if len(r.spec.Statuses) == 0 {
		return ""
	}
	r.statusIdx = (r.statusIdx + 1) % (len(r.spec.Statuses) + 1)
	value := r.StatusFilter()
	if value == "" {
		r.ctrl.SetFilter("status")
	} else {
		r.ctrl.SetFilter("status", value)
	}
	return value
}

func (r *resource[T]) StatusFilter() string {
	if r.statusIdx == 0 {
		return ""
	}
	return r.spec.Statuses[r.statusIdx-1]
}

func (r *resource[T]) Select(ctx context.Context, id string) error {
	return r.ctrl.Collection().GetOne(ctx, id, query.Params{Populate: r.spec.Config.Populate})
}

// Detail renders the selected record as label/value pairs, reusing the
// table's columns and row renderer.
func (r *resource[T]) Detail() [][2]string {
	selected := r.ctrl.Collection().State().Selected
	if selected == nil {
		return nil
	}
	values := r.spec.Render(*selected)
	pairs := make([][2]string, 0, len(r.spec.Columns))
	for i, col := range r.spec.Columns {
		if i >= len(values) {
			break
		}
		pairs = append(pairs, [2]string{col.Title, values[i]})
	}
	return pairs
}

func (r *resource[T]) ClearSelected() { r.ctrl.Collection().ClearSelected() }

func (r *resource[T]) Actions() []string { return r.spec.Actions }

func (r *resource[T]) Transition(ctx context.Context, id, action string) error {
	return r.ctrl.Collection().Transition(ctx, id, action, nil, store.MutateOptions{
		Audit: "Marked " + r.spec.Title + " #" + id + " " + action,
	})
}

func (r *resource[T]) Delete(ctx context.Context, id string) error {
	return r.ctrl.Delete(ctx, id, store.MutateOptions{
		Audit: "Deleted " + r.spec.Title + " #" + id,
	})
}

func itoa(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}
