package app

import (
	"context"
	"sync"
	"time"

	"github.com/lifelinkhq/lifelink/internal/api"
	"github.com/lifelinkhq/lifelink/internal/audit"
	"github.com/lifelinkhq/lifelink/internal/config"
	"github.com/lifelinkhq/lifelink/internal/controller"
	"github.com/lifelinkhq/lifelink/internal/model"
	"github.com/lifelinkhq/lifelink/internal/query"
	"github.com/lifelinkhq/lifelink/internal/store"
	"github.com/lifelinkhq/lifelink/internal/ui"
)

// NotifyHub forwards notifications to whichever Notifier is currently
// registered. Collections are built before the UI exists, so they hold the
// hub and the UI attaches itself once it is running.
type NotifyHub struct {
	mu     sync.RWMutex
	target store.Notifier
}

// Attach registers the live notifier.
func (h *NotifyHub) Attach(n store.Notifier) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.target = n
}

func (h *NotifyHub) Success(message string) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.target != nil {
		h.target.Success(message)
	}
}

func (h *NotifyHub) Error(message string) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.target != nil {
		h.target.Error(message)
	}
}

// Context is the application context: one typed collection per entity plus
// the shared collaborators, constructed once at startup and passed down
// explicitly. Nothing here is ambient or global.
type Context struct {
	Config config.Config
	Client *api.Client
	Audit  *audit.Logger
	Notify *NotifyHub

	Admins        *store.Collection[model.Admin]
	Donors        *store.Collection[model.Donor]
	Staff         *store.Collection[model.Staff]
	Pouches       *store.Collection[model.BloodPouch]
	Transfers     *store.Collection[model.BloodTransfer]
	Courses       *store.Collection[model.Course]
	Testimonials  *store.Collection[model.Testimonial]
	Stories       *store.Collection[model.SuccessStory]
	Categories    *store.Collection[model.Category]
	Levels        *store.Collection[model.Level]
	Organizers    *store.Collection[model.Organizer]
	Activities    *store.Collection[model.Activity]
	Orders        *store.Collection[model.Order]
	Followers     *store.Collection[model.Follower]
	Events        *store.Collection[model.Event]

	// Resources is the UI-facing view of the collections, in tab order.
	Resources []ui.Resource
}

// bloodGroups are the counter buckets loaded for the pouch dashboard.
var bloodGroups = []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}

// transferStatuses drive both the transfer dashboard counters and the
// status-filter cycle for the transfers tab.
var transferStatuses = []string{"Pending", "Approve", "Reject", "Transfer", "Cancel", "Complete"}

// NewContext wires every collection, controller and resource. ctx bounds the
// controllers' self-issued fetches.
func NewContext(ctx context.Context, cfg config.Config, client *api.Client) *Context {
	hub := &NotifyHub{}
	logger := audit.NewLogger(client, cfg.Actor)

	c := &Context{Config: cfg, Client: client, Audit: logger, Notify: hub}

	col := func(path, label, modelName string) store.Options {
		return store.Options{Path: path, Label: label, Notify: hub, Audit: logger.Hook(modelName)}
	}

	c.Admins = store.New[model.Admin](client, col("admins", "Admin", "Admin"))
	c.Donors = store.New[model.Donor](client, col("donors", "Donor", "Donor"))
	c.Staff = store.New[model.Staff](client, col("staffs", "Staff member", "Staff"))
	c.Pouches = store.New[model.BloodPouch](client, col("blood-pouches", "Blood pouch", "BloodPouch"))
	c.Transfers = store.New[model.BloodTransfer](client, col("blood-transfers", "Blood transfer", "BloodTransfer"))
	c.Courses = store.New[model.Course](client, col("courses", "Course", "Course"))
	c.Testimonials = store.New[model.Testimonial](client, col("testimonials", "Testimonial", "Testimonial"))
	c.Stories = store.New[model.SuccessStory](client, col("success-stories", "Success story", "SuccessStory"))
	c.Categories = store.New[model.Category](client, col("categories", "Category", "Category"))
	c.Levels = store.New[model.Level](client, col("levels", "Level", "Level"))
	c.Organizers = store.New[model.Organizer](client, col("organizers", "Organizer", "Organizer"))
	// Activity entries are written by the audit logger itself; browsing them
	// must not write more entries, so no audit hook here.
	c.Activities = store.New[model.Activity](client, store.Options{Path: "activity-logs", Label: "Activity", Notify: hub})
	c.Orders = store.New[model.Order](client, col("orders", "Order", "Order"))
	c.Followers = store.New[model.Follower](client, col("followers", "Follower", "Follower"))
	c.Events = store.New[model.Event](client, col("events", "Event", "Event"))

	pageSize := cfg.PageSize
	c.Resources = buildResources(ctx, c, pageSize)
	return c
}

// LoadStats fills the dashboard counters: pouch counts per blood group and
// transfer counts per status. Failures leave the counter absent; the
// counters are decoration over the live tables.
func (c *Context) LoadStats(ctx context.Context) {
	for _, group := range bloodGroups {
		_ = c.Pouches.CountWhere(ctx, group, []query.Filter{{ID: "bloodGroup", Values: []string{group}}})
	}
	for _, status := range transferStatuses {
		_ = c.Transfers.CountWhere(ctx, status, []query.Filter{{ID: "status", Values: []string{status}}})
	}
}

// Shutdown flushes pending audit writes. Bounded so a dead API cannot hang
// exit longer than the write timeout.
func (c *Context) Shutdown() {
	done := make(chan struct{})
	go func() {
		c.Audit.Flush()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(6 * time.Second):
	}
}

func buildResources(ctx context.Context, c *Context, pageSize int) []ui.Resource {
	ctl := func(p controller.Config) controller.Config {
		if p.PageSize == 0 {
			p.PageSize = pageSize
		}
		return p
	}

	return []ui.Resource{
		newResource(ctx, c.Donors, resourceSpec[model.Donor]{
			Key: "donors", Title: "Donors",
			Config:   ctl(controller.Config{SearchFields: []string{"name", "email", "phone"}}),
			Columns:  []ui.Column{{Title: "ID", Width: 6}, {Title: "Name", Width: 24}, {Title: "Blood", Width: 7}, {Title: "District", Width: 16}, {Title: "Phone", Width: 14}, {Title: "Status", Width: 10}},
			Statuses: []string{"Active", "Inactive"},
			Render: func(d model.Donor) []string {
				a := d.Attributes
				return []string{d.ID, model.Deref(a.Name), model.Deref(a.BloodGroup), model.Deref(a.District), model.Deref(a.Phone), model.Deref(a.Status)}
			},
		}),
		newResource(ctx, c.Pouches, resourceSpec[model.BloodPouch]{
			Key: "pouches", Title: "Blood Pouches",
			Config:   ctl(controller.Config{SearchFields: []string{"pouchNumber", "location"}}),
			Columns:  []ui.Column{{Title: "ID", Width: 6}, {Title: "Pouch", Width: 12}, {Title: "Blood", Width: 7}, {Title: "Status", Width: 10}, {Title: "Collected", Width: 12}, {Title: "Expires", Width: 12}, {Title: "Location", Width: 16}},
			Statuses: []string{"Available", "Reserved", "Used", "Expired"},
			Render: func(p model.BloodPouch) []string {
				a := p.Attributes
				return []string{p.ID, model.Deref(a.PouchNumber), model.Deref(a.BloodGroup), model.Deref(a.Status), model.Deref(a.CollectedAt), model.Deref(a.ExpiresAt), model.Deref(a.Location)}
			},
		}),
		newResource(ctx, c.Transfers, resourceSpec[model.BloodTransfer]{
			Key: "transfers", Title: "Blood Transfers",
			Config:   ctl(controller.Config{SearchFields: []string{"hospital", "requestedBy"}}),
			Columns:  []ui.Column{{Title: "ID", Width: 6}, {Title: "Pouch", Width: 10}, {Title: "Blood", Width: 7}, {Title: "Hospital", Width: 22}, {Title: "Requested by", Width: 18}, {Title: "Status", Width: 10}},
			Statuses: transferStatuses,
			Actions:  []string{"approve", "reject", "transfer", "cancel", "complete"},
			Render: func(tr model.BloodTransfer) []string {
				a := tr.Attributes
				return []string{tr.ID, model.Deref(a.PouchID), model.Deref(a.BloodGroup), model.Deref(a.Hospital), model.Deref(a.RequestedBy), model.Deref(a.Status)}
			},
		}),
		newResource(ctx, c.Staff, resourceSpec[model.Staff]{
			Key: "staff", Title: "Staff",
			Config:  ctl(controller.Config{SearchFields: []string{"name", "email", "designation"}}),
			Columns: []ui.Column{{Title: "ID", Width: 6}, {Title: "Name", Width: 24}, {Title: "Designation", Width: 18}, {Title: "Department", Width: 16}, {Title: "Phone", Width: 14}},
			Render: func(s model.Staff) []string {
				a := s.Attributes
				return []string{s.ID, model.Deref(a.Name), model.Deref(a.Designation), model.Deref(a.Department), model.Deref(a.Phone)}
			},
		}),
		newResource(ctx, c.Admins, resourceSpec[model.Admin]{
			Key: "admins", Title: "Admins",
			Config:  ctl(controller.Config{SearchFields: []string{"name", "email"}}),
			Columns: []ui.Column{{Title: "ID", Width: 6}, {Title: "Name", Width: 24}, {Title: "Email", Width: 26}, {Title: "Role", Width: 12}},
			Render: func(a model.Admin) []string {
				at := a.Attributes
				return []string{a.ID, model.Deref(at.Name), model.Deref(at.Email), model.Deref(at.Role)}
			},
		}),
		newResource(ctx, c.Courses, resourceSpec[model.Course]{
			Key: "courses", Title: "Courses",
			Config:   ctl(controller.Config{SearchFields: []string{"title", "slug"}, Populate: []string{"category", "level"}}),
			Columns:  []ui.Column{{Title: "ID", Width: 6}, {Title: "Title", Width: 30}, {Title: "Fee", Width: 8}, {Title: "Weeks", Width: 6}, {Title: "Status", Width: 10}},
			Statuses: []string{"Draft", "Published", "Archived"},
			Render: func(cr model.Course) []string {
				a := cr.Attributes
				return []string{cr.ID, model.Deref(a.Title), itoa(a.Fee), itoa(a.DurationWeeks), model.Deref(a.Status)}
			},
		}),
		newResource(ctx, c.Orders, resourceSpec[model.Order]{
			Key: "orders", Title: "Orders",
			Config:   ctl(controller.Config{SearchFields: []string{"orderNumber", "studentName"}, Populate: []string{"course"}}),
			Columns:  []ui.Column{{Title: "ID", Width: 6}, {Title: "Order", Width: 12}, {Title: "Student", Width: 22}, {Title: "Amount", Width: 10}, {Title: "Status", Width: 10}},
			Statuses: []string{"Pending", "Paid", "Enrolled", "Completed", "Cancelled"},
			Actions:  []string{"enroll-status", "complete-enroll"},
			Render: func(o model.Order) []string {
				a := o.Attributes
				return []string{o.ID, model.Deref(a.OrderNumber), model.Deref(a.StudentName), itoa(a.Amount), model.Deref(a.Status)}
			},
		}),
		newResource(ctx, c.Testimonials, resourceSpec[model.Testimonial]{
			Key: "testimonials", Title: "Testimonials",
			Config:  ctl(controller.Config{SearchFields: []string{"author", "quote"}}),
			Columns: []ui.Column{{Title: "ID", Width: 6}, {Title: "Author", Width: 22}, {Title: "Role", Width: 16}, {Title: "Rating", Width: 7}, {Title: "Quote", Width: 36}},
			Render: func(tm model.Testimonial) []string {
				a := tm.Attributes
				return []string{tm.ID, model.Deref(a.Author), model.Deref(a.Role), itoa(a.Rating), model.Deref(a.Quote)}
			},
		}),
		newResource(ctx, c.Stories, resourceSpec[model.SuccessStory]{
			Key: "stories", Title: "Success Stories",
			Config:  ctl(controller.Config{SearchFields: []string{"title", "summary"}}),
			Columns: []ui.Column{{Title: "ID", Width: 6}, {Title: "Title", Width: 32}, {Title: "Published", Width: 10}, {Title: "Summary", Width: 36}},
			Render: func(st model.SuccessStory) []string {
				a := st.Attributes
				published := ""
				if a.Published != nil {
					if *a.Published {
						published = "yes"
					} else {
						published = "no"
					}
				}
				return []string{st.ID, model.Deref(a.Title), published, model.Deref(a.Summary)}
			},
		}),
		newResource(ctx, c.Events, resourceSpec[model.Event]{
			Key: "events", Title: "Events",
			Config:   ctl(controller.Config{SearchFields: []string{"title", "venue"}, Populate: []string{"organizer"}}),
			Columns:  []ui.Column{{Title: "ID", Width: 6}, {Title: "Title", Width: 28}, {Title: "Venue", Width: 20}, {Title: "Starts", Width: 12}, {Title: "Status", Width: 10}},
			Statuses: []string{"Upcoming", "Running", "Done", "Cancelled"},
			Render: func(e model.Event) []string {
				a := e.Attributes
				return []string{e.ID, model.Deref(a.Title), model.Deref(a.Venue), model.Deref(a.StartsAt), model.Deref(a.Status)}
			},
		}),
		newResource(ctx, c.Organizers, resourceSpec[model.Organizer]{
			Key: "organizers", Title: "Organizers",
			Config:  ctl(controller.Config{SearchFields: []string{"name", "organization"}}),
			Columns: []ui.Column{{Title: "ID", Width: 6}, {Title: "Name", Width: 24}, {Title: "Organization", Width: 24}, {Title: "Phone", Width: 14}},
			Render: func(o model.Organizer) []string {
				a := o.Attributes
				return []string{o.ID, model.Deref(a.Name), model.Deref(a.Organization), model.Deref(a.Phone)}
			},
		}),
		newResource(ctx, c.Followers, resourceSpec[model.Follower]{
			Key: "followers", Title: "Followers",
			Config:  ctl(controller.Config{SearchFields: []string{"name", "email"}}),
			Columns: []ui.Column{{Title: "ID", Width: 6}, {Title: "Name", Width: 24}, {Title: "Email", Width: 28}, {Title: "Source", Width: 12}},
			Render: func(f model.Follower) []string {
				a := f.Attributes
				return []string{f.ID, model.Deref(a.Name), model.Deref(a.Email), model.Deref(a.Source)}
			},
		}),
		// Categories and levels are small reference lists; one fetch, local
		// pages.
		newResource(ctx, c.Categories, resourceSpec[model.Category]{
			Key: "categories", Title: "Categories",
			Config:  ctl(controller.Config{SearchFields: []string{"name"}, ClientPaginated: true}),
			Columns: []ui.Column{{Title: "ID", Width: 6}, {Title: "Name", Width: 24}, {Title: "Slug", Width: 20}, {Title: "Description", Width: 32}},
			Render: func(cg model.Category) []string {
				a := cg.Attributes
				return []string{cg.ID, model.Deref(a.Name), model.Deref(a.Slug), model.Deref(a.Description)}
			},
		}),
		newResource(ctx, c.Levels, resourceSpec[model.Level]{
			Key: "levels", Title: "Levels",
			Config:  ctl(controller.Config{SearchFields: []string{"name"}, ClientPaginated: true}),
			Columns: []ui.Column{{Title: "ID", Width: 6}, {Title: "Name", Width: 24}, {Title: "Rank", Width: 6}},
			Render: func(l model.Level) []string {
				a := l.Attributes
				return []string{l.ID, model.Deref(a.Name), itoa(a.Rank)}
			},
		}),
		newResource(ctx, c.Activities, resourceSpec[model.Activity]{
			Key: "activity", Title: "Activity",
			Config:   ctl(controller.Config{SearchFields: []string{"description", "actionBy"}}),
			Columns:  []ui.Column{{Title: "ID", Width: 6}, {Title: "When", Width: 20}, {Title: "By", Width: 18}, {Title: "Action", Width: 9}, {Title: "Model", Width: 14}, {Title: "Description", Width: 36}},
			ReadOnly: true,
			Render: func(a model.Activity) []string {
				at := a.Attributes
				return []string{a.ID, model.Deref(at.CreatedAt), model.Deref(at.ActionBy), model.Deref(at.Action), model.Deref(at.ModelName), model.Deref(at.Description)}
			},
		}),
	}
}
