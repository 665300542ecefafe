package controller

import (
	"context"
	"sync"
	"time"

	"github.com/lifelinkhq/lifelink/internal/api"
	"github.com/lifelinkhq/lifelink/internal/model"
	"github.com/lifelinkhq/lifelink/internal/query"
	"github.com/lifelinkhq/lifelink/internal/store"
)

const (
	defaultPageSize = 10
	defaultDebounce = 1200 * time.Millisecond

	// In client-paginated mode the first fetch pulls the whole collection
	// and pages are sliced locally.
	fetchAllPageSize = 1000
)

// Config fixes a controller's per-resource behavior.
type Config struct {
	// SearchFields are the columns free-text search matches against.
	SearchFields []string
	// Populate is passed through to the API untouched.
	Populate []string
	PageSize int
	// Debounce is the quiet period applied to search input.
	Debounce time.Duration
	// ClientPaginated loads the full collection once and pages locally.
	// Used for small reference collections such as categories and levels.
	ClientPaginated bool
}

// Controller binds table UI state to one Collection: it owns filters, sort,
// pagination and debounced search, and re-fetches whenever any of them
// change. Page indexes are zero-based here; the query builder translates.
type Controller[T model.Entity[T]] struct {
	mu  sync.Mutex
	col *store.Collection[T]
	ctx context.Context
	cfg Config

	filters []query.Filter
	sort    *query.Sort
	page    query.Pagination
	search  string

	searchTimer *time.Timer
}

// New builds a Controller over col. ctx bounds every fetch the controller
// issues on its own (debounce timers, async refreshes).
func New[T model.Entity[T]](ctx context.Context, col *store.Collection[T], cfg Config) *Controller[T] {
	if cfg.PageSize <= 0 {
		cfg.PageSize = defaultPageSize
	}
	if cfg.Debounce <= 0 {
		cfg.Debounce = defaultDebounce
	}
	return &Controller[T]{
		col:  col,
		ctx:  ctx,
		cfg:  cfg,
		page: query.Pagination{PageIndex: 0, PageSize: cfg.PageSize},
	}
}

// Collection exposes the underlying store for detail/mutation flows.
func (c *Controller[T]) Collection() *store.Collection[T] { return c.col }

// Refresh fetches the current page synchronously.
func (c *Controller[T]) Refresh(ctx context.Context) error {
	return c.col.List(ctx, c.params())
}

func (c *Controller[T]) params() query.Params {
	c.mu.Lock()
	defer c.mu.Unlock()

	page := c.page
	if c.cfg.ClientPaginated {
		page = query.Pagination{PageIndex: 0, PageSize: fetchAllPageSize}
	}
	return query.Build(query.Input{
		Filters:      c.filters,
		Sort:         c.sort,
		Pagination:   page,
		Search:       c.search,
		SearchFields: c.cfg.SearchFields,
		Populate:     c.cfg.Populate,
	})
}

func (c *Controller[T]) refreshAsync() {
	go func() { _ = c.Refresh(c.ctx) }()
}

// SetFilter replaces the values for one column filter and resets to the
// first page. An empty value list removes the filter.
func (c *Controller[T]) SetFilter(id string, values ...string) {
	c.mu.Lock()
	kept := c.filters[:0]
	for _, f := range c.filters {
		if f.ID != id {
			kept = append(kept, f)
		}
	}
	c.filters = kept
	if len(values) > 0 {
		c.filters = append(c.filters, query.Filter{ID: id, Values: values})
	}
	c.page.PageIndex = 0
	c.mu.Unlock()
	c.refreshAsync()
}

// Filters returns the active column filters.
func (c *Controller[T]) Filters() []query.Filter {
	c.mu.Lock()
	defer c.mu.Unlock()
	dup := make([]query.Filter, len(c.filters))
	copy(dup, c.filters)
	return dup
}

// SetSort replaces the sort spec. An empty field clears sorting.
func (c *Controller[T]) SetSort(field string, desc bool) {
	c.mu.Lock()
	if field == "" {
		c.sort = nil
	} else {
		c.sort = &query.Sort{ID: field, Desc: desc}
	}
	c.mu.Unlock()
	c.refreshAsync()
}

// SetPage moves to the given zero-based page index.
func (c *Controller[T]) SetPage(index int) {
	if index < 0 {
		index = 0
	}
	c.mu.Lock()
	c.page.PageIndex = index
	c.mu.Unlock()
	if !c.cfg.ClientPaginated {
		c.refreshAsync()
	}
}

// NextPage and PrevPage step through pages, clamped to what the server (or
// the local slice) reports.
func (c *Controller[T]) NextPage() {
	if c.Meta().HasNextPage {
		c.SetPage(c.PageIndex() + 1)
	}
}

func (c *Controller[T]) PrevPage() {
	if idx := c.PageIndex(); idx > 0 {
		c.SetPage(idx - 1)
	}
}

// PageIndex returns the current zero-based page index.
func (c *Controller[T]) PageIndex() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.page.PageIndex
}

// SetPageSize changes the page size and resets to the first page.
func (c *Controller[T]) SetPageSize(size int) {
	if size <= 0 {
		return
	}
	c.mu.Lock()
	c.page.PageSize = size
	c.page.PageIndex = 0
	c.mu.Unlock()
	c.refreshAsync()
}

// SetSearch updates the free-text search term. The refresh is coalesced over
// the configured quiet period so typing does not produce one request per
// keystroke. The search resets to the first page.
func (c *Controller[T]) SetSearch(term string) {
	c.mu.Lock()
	c.search = term
	c.page.PageIndex = 0
	if c.searchTimer != nil {
		c.searchTimer.Stop()
	}
	c.searchTimer = time.AfterFunc(c.cfg.Debounce, func() {
		_ = c.Refresh(c.ctx)
	})
	c.mu.Unlock()
}

// Delete removes a record and refetches the current page, so a full page
// never shows a gap where the deleted row was.
func (c *Controller[T]) Delete(ctx context.Context, id string, opts store.MutateOptions) error {
	if err := c.col.Delete(ctx, id, opts); err != nil {
		return err
	}
	return c.Refresh(ctx)
}

// Rows returns the rows for the current page. In server-paginated mode that
// is simply the store's items; in client-paginated mode it is a local slice
// of the fully loaded collection.
func (c *Controller[T]) Rows() []T {
	items := c.col.State().Items
	if !c.cfg.ClientPaginated {
		return items
	}
	c.mu.Lock()
	page := c.page
	c.mu.Unlock()

	start := page.PageIndex * page.PageSize
	if start >= len(items) {
		return nil
	}
	end := start + page.PageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// Meta reports pagination metadata: the server's in server-paginated mode,
// locally computed from the loaded collection otherwise.
func (c *Controller[T]) Meta() api.PageMeta {
	state := c.col.State()
	if !c.cfg.ClientPaginated {
		return state.PageMeta
	}
	c.mu.Lock()
	page := c.page
	c.mu.Unlock()

	total := len(state.Items)
	pageCount := (total + page.PageSize - 1) / page.PageSize
	meta := api.PageMeta{
		Total:       total,
		PageSize:    page.PageSize,
		Page:        page.PageIndex + 1,
		PageCount:   pageCount,
		HasNextPage: page.PageIndex+1 < pageCount,
		HasPrevPage: page.PageIndex > 0,
	}
	if meta.HasNextPage {
		meta.NextPage = meta.Page + 1
	}
	if meta.HasPrevPage {
		meta.PrevPage = meta.Page - 1
	}
	return meta
}
