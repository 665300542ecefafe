package model

// The record types below mirror the content API's {id, attributes} shape.
// Attribute fields are optional pointers: the API omits fields it did not
// change, and Merge must not clobber known values with absences. Status
// values are opaque strings; the server owns the state machines behind them.

// Admin is a back-office operator account.
type Admin struct {
	ID         string          `json:"id"`
	Attributes AdminAttributes `json:"attributes"`
}

type AdminAttributes struct {
	Name      *string `json:"name,omitempty"`
	Email     *string `json:"email,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Role      *string `json:"role,omitempty"`
	AvatarURL *string `json:"avatarUrl,omitempty"`
}

func (a Admin) EntityID() string { return a.ID }

func (a Admin) Merge(update Admin) Admin {
	out := a
	if update.ID != "" {
		out.ID = update.ID
	}
	p, u := &out.Attributes, update.Attributes
	p.Name = take(p.Name, u.Name)
	p.Email = take(p.Email, u.Email)
	p.Phone = take(p.Phone, u.Phone)
	p.Role = take(p.Role, u.Role)
	p.AvatarURL = take(p.AvatarURL, u.AvatarURL)
	return out
}

// Donor is a registered blood donor.
type Donor struct {
	ID         string          `json:"id"`
	Attributes DonorAttributes `json:"attributes"`
}

type DonorAttributes struct {
	Name           *string `json:"name,omitempty"`
	Email          *string `json:"email,omitempty"`
	Phone          *string `json:"phone,omitempty"`
	BloodGroup     *string `json:"bloodGroup,omitempty"`
	District       *string `json:"district,omitempty"`
	LastDonatedAt  *string `json:"lastDonatedAt,omitempty"`
	TotalDonations *int    `json:"totalDonations,omitempty"`
	Status         *string `json:"status,omitempty"`
}

func (d Donor) EntityID() string { return d.ID }

func (d Donor) Merge(update Donor) Donor {
	out := d
	if update.ID != "" {
		out.ID = update.ID
	}
	p, u := &out.Attributes, update.Attributes
	p.Name = take(p.Name, u.Name)
	p.Email = take(p.Email, u.Email)
	p.Phone = take(p.Phone, u.Phone)
	p.BloodGroup = take(p.BloodGroup, u.BloodGroup)
	p.District = take(p.District, u.District)
	p.LastDonatedAt = take(p.LastDonatedAt, u.LastDonatedAt)
	p.TotalDonations = take(p.TotalDonations, u.TotalDonations)
	p.Status = take(p.Status, u.Status)
	return out
}

// Staff is an institute employee.
type Staff struct {
	ID         string          `json:"id"`
	Attributes StaffAttributes `json:"attributes"`
}

type StaffAttributes struct {
	Name        *string `json:"name,omitempty"`
	Email       *string `json:"email,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Designation *string `json:"designation,omitempty"`
	Department  *string `json:"department,omitempty"`
	JoinedAt    *string `json:"joinedAt,omitempty"`
	PhotoURL    *string `json:"photoUrl,omitempty"`
}

func (s Staff) EntityID() string { return s.ID }

func (s Staff) Merge(update Staff) Staff {
	out := s
	if update.ID != "" {
		out.ID = update.ID
	}
	p, u := &out.Attributes, update.Attributes
	p.Name = take(p.Name, u.Name)
	p.Email = take(p.Email, u.Email)
	p.Phone = take(p.Phone, u.Phone)
	p.Designation = take(p.Designation, u.Designation)
	p.Department = take(p.Department, u.Department)
	p.JoinedAt = take(p.JoinedAt, u.JoinedAt)
	p.PhotoURL = take(p.PhotoURL, u.PhotoURL)
	return out
}

// BloodPouch is one collected unit of blood.
type BloodPouch struct {
	ID         string               `json:"id"`
	Attributes BloodPouchAttributes `json:"attributes"`
}

type BloodPouchAttributes struct {
	PouchNumber *string `json:"pouchNumber,omitempty"`
	BloodGroup  *string `json:"bloodGroup,omitempty"`
	Status      *string `json:"status,omitempty"`
	CollectedAt *string `json:"collectedAt,omitempty"`
	ExpiresAt   *string `json:"expiresAt,omitempty"`
	DonorID     *string `json:"donorId,omitempty"`
	Location    *string `json:"location,omitempty"`
}

func (b BloodPouch) EntityID() string { return b.ID }

func (b BloodPouch) Merge(update BloodPouch) BloodPouch {
	out := b
	if update.ID != "" {
		out.ID = update.ID
	}
	p, u := &out.Attributes, update.Attributes
	p.PouchNumber = take(p.PouchNumber, u.PouchNumber)
	p.BloodGroup = take(p.BloodGroup, u.BloodGroup)
	p.Status = take(p.Status, u.Status)
	p.CollectedAt = take(p.CollectedAt, u.CollectedAt)
	p.ExpiresAt = take(p.ExpiresAt, u.ExpiresAt)
	p.DonorID = take(p.DonorID, u.DonorID)
	p.Location = take(p.Location, u.Location)
	return out
}

// BloodTransfer is a request to move a pouch to a recipient hospital. Its
// status walks a server-defined machine: Pending, Approve, Reject, Transfer,
// Cancel, Complete.
type BloodTransfer struct {
	ID         string                  `json:"id"`
	Attributes BloodTransferAttributes `json:"attributes"`
}

type BloodTransferAttributes struct {
	PouchID     *string `json:"pouchId,omitempty"`
	BloodGroup  *string `json:"bloodGroup,omitempty"`
	Status      *string `json:"status,omitempty"`
	RequestedBy *string `json:"requestedBy,omitempty"`
	Hospital    *string `json:"hospital,omitempty"`
	RequestedAt *string `json:"requestedAt,omitempty"`
	ResolvedAt  *string `json:"resolvedAt,omitempty"`
	Note        *string `json:"note,omitempty"`
}

func (b BloodTransfer) EntityID() string { return b.ID }

func (b BloodTransfer) Merge(update BloodTransfer) BloodTransfer {
	out := b
	if update.ID != "" {
		out.ID = update.ID
	}
	p, u := &out.Attributes, update.Attributes
	p.PouchID = take(p.PouchID, u.PouchID)
	p.BloodGroup = take(p.BloodGroup, u.BloodGroup)
	p.Status = take(p.Status, u.Status)
	p.RequestedBy = take(p.RequestedBy, u.RequestedBy)
	p.Hospital = take(p.Hospital, u.Hospital)
	p.RequestedAt = take(p.RequestedAt, u.RequestedAt)
	p.ResolvedAt = take(p.ResolvedAt, u.ResolvedAt)
	p.Note = take(p.Note, u.Note)
	return out
}

// Course is a training-institute offering.
type Course struct {
	ID         string           `json:"id"`
	Attributes CourseAttributes `json:"attributes"`
}

type CourseAttributes struct {
	Title         *string `json:"title,omitempty"`
	Slug          *string `json:"slug,omitempty"`
	Description   *string `json:"description,omitempty"`
	Fee           *int    `json:"fee,omitempty"`
	DurationWeeks *int    `json:"durationWeeks,omitempty"`
	Status        *string `json:"status,omitempty"`
	CategoryID    *string `json:"categoryId,omitempty"`
	LevelID       *string `json:"levelId,omitempty"`
	CoverURL      *string `json:"coverUrl,omitempty"`
}

func (c Course) EntityID() string { return c.ID }

func (c Course) Merge(update Course) Course {
	out := c
	if update.ID != "" {
		out.ID = update.ID
	}
	p, u := &out.Attributes, update.Attributes
	p.Title = take(p.Title, u.Title)
	p.Slug = take(p.Slug, u.Slug)
	p.Description = take(p.Description, u.Description)
	p.Fee = take(p.Fee, u.Fee)
	p.DurationWeeks = take(p.DurationWeeks, u.DurationWeeks)
	p.Status = take(p.Status, u.Status)
	p.CategoryID = take(p.CategoryID, u.CategoryID)
	p.LevelID = take(p.LevelID, u.LevelID)
	p.CoverURL = take(p.CoverURL, u.CoverURL)
	return out
}

// Testimonial is a published quote from a student or donor.
type Testimonial struct {
	ID         string                `json:"id"`
	Attributes TestimonialAttributes `json:"attributes"`
}

type TestimonialAttributes struct {
	Author    *string `json:"author,omitempty"`
	Role      *string `json:"role,omitempty"`
	Quote     *string `json:"quote,omitempty"`
	Rating    *int    `json:"rating,omitempty"`
	PhotoURL  *string `json:"photoUrl,omitempty"`
	Published *bool   `json:"published,omitempty"`
}

func (t Testimonial) EntityID() string { return t.ID }

func (t Testimonial) Merge(update Testimonial) Testimonial {
	out := t
	if update.ID != "" {
		out.ID = update.ID
	}
	p, u := &out.Attributes, update.Attributes
	p.Author = take(p.Author, u.Author)
	p.Role = take(p.Role, u.Role)
	p.Quote = take(p.Quote, u.Quote)
	p.Rating = take(p.Rating, u.Rating)
	p.PhotoURL = take(p.PhotoURL, u.PhotoURL)
	p.Published = take(p.Published, u.Published)
	return out
}

// SuccessStory is a long-form published article.
type SuccessStory struct {
	ID         string                 `json:"id"`
	Attributes SuccessStoryAttributes `json:"attributes"`
}

type SuccessStoryAttributes struct {
	Title       *string `json:"title,omitempty"`
	Summary     *string `json:"summary,omitempty"`
	Body        *string `json:"body,omitempty"`
	CoverURL    *string `json:"coverUrl,omitempty"`
	Published   *bool   `json:"published,omitempty"`
	PublishedAt *string `json:"publishedAt,omitempty"`
}

func (s SuccessStory) EntityID() string { return s.ID }

func (s SuccessStory) Merge(update SuccessStory) SuccessStory {
	out := s
	if update.ID != "" {
		out.ID = update.ID
	}
	p, u := &out.Attributes, update.Attributes
	p.Title = take(p.Title, u.Title)
	p.Summary = take(p.Summary, u.Summary)
	p.Body = take(p.Body, u.Body)
	p.CoverURL = take(p.CoverURL, u.CoverURL)
	p.Published = take(p.Published, u.Published)
	p.PublishedAt = take(p.PublishedAt, u.PublishedAt)
	return out
}

// Category groups courses.
type Category struct {
	ID         string             `json:"id"`
	Attributes CategoryAttributes `json:"attributes"`
}

type CategoryAttributes struct {
	Name        *string `json:"name,omitempty"`
	Slug        *string `json:"slug,omitempty"`
	Description *string `json:"description,omitempty"`
}

func (c Category) EntityID() string { return c.ID }

func (c Category) Merge(update Category) Category {
	out := c
	if update.ID != "" {
		out.ID = update.ID
	}
	p, u := &out.Attributes, update.Attributes
	p.Name = take(p.Name, u.Name)
	p.Slug = take(p.Slug, u.Slug)
	p.Description = take(p.Description, u.Description)
	return out
}

// Level is a course difficulty tier.
type Level struct {
	ID         string          `json:"id"`
	Attributes LevelAttributes `json:"attributes"`
}

type LevelAttributes struct {
	Name *string `json:"name,omitempty"`
	Rank *int    `json:"rank,omitempty"`
}

func (l Level) EntityID() string { return l.ID }

func (l Level) Merge(update Level) Level {
	out := l
	if update.ID != "" {
		out.ID = update.ID
	}
	p, u := &out.Attributes, update.Attributes
	p.Name = take(p.Name, u.Name)
	p.Rank = take(p.Rank, u.Rank)
	return out
}

// Organizer is an external partner running donation drives or events.
type Organizer struct {
	ID         string              `json:"id"`
	Attributes OrganizerAttributes `json:"attributes"`
}

type OrganizerAttributes struct {
	Name         *string `json:"name,omitempty"`
	Email        *string `json:"email,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	Organization *string `json:"organization,omitempty"`
}

func (o Organizer) EntityID() string { return o.ID }

func (o Organizer) Merge(update Organizer) Organizer {
	out := o
	if update.ID != "" {
		out.ID = update.ID
	}
	p, u := &out.Attributes, update.Attributes
	p.Name = take(p.Name, u.Name)
	p.Email = take(p.Email, u.Email)
	p.Phone = take(p.Phone, u.Phone)
	p.Organization = take(p.Organization, u.Organization)
	return out
}

// Activity is one audit-trail entry. Entries are written fire-and-forget by
// mutations and browsed read-only in the console.
type Activity struct {
	ID         string             `json:"id"`
	Attributes ActivityAttributes `json:"attributes"`
}

type ActivityAttributes struct {
	ActionBy    *string `json:"actionBy,omitempty"`
	Action      *string `json:"action,omitempty"`
	Description *string `json:"description,omitempty"`
	ModelName   *string `json:"modelName,omitempty"`
	CreatedAt   *string `json:"createdAt,omitempty"`
}

func (a Activity) EntityID() string { return a.ID }

func (a Activity) Merge(update Activity) Activity {
	out := a
	if update.ID != "" {
		out.ID = update.ID
	}
	p, u := &out.Attributes, update.Attributes
	p.ActionBy = take(p.ActionBy, u.ActionBy)
	p.Action = take(p.Action, u.Action)
	p.Description = take(p.Description, u.Description)
	p.ModelName = take(p.ModelName, u.ModelName)
	p.CreatedAt = take(p.CreatedAt, u.CreatedAt)
	return out
}

// Order is a course enrollment purchase.
type Order struct {
	ID         string          `json:"id"`
	Attributes OrderAttributes `json:"attributes"`
}

type OrderAttributes struct {
	OrderNumber *string `json:"orderNumber,omitempty"`
	CourseID    *string `json:"courseId,omitempty"`
	StudentName *string `json:"studentName,omitempty"`
	Amount      *int    `json:"amount,omitempty"`
	Currency    *string `json:"currency,omitempty"`
	Status      *string `json:"status,omitempty"`
	PlacedAt    *string `json:"placedAt,omitempty"`
}

func (o Order) EntityID() string { return o.ID }

func (o Order) Merge(update Order) Order {
	out := o
	if update.ID != "" {
		out.ID = update.ID
	}
	p, u := &out.Attributes, update.Attributes
	p.OrderNumber = take(p.OrderNumber, u.OrderNumber)
	p.CourseID = take(p.CourseID, u.CourseID)
	p.StudentName = take(p.StudentName, u.StudentName)
	p.Amount = take(p.Amount, u.Amount)
	p.Currency = take(p.Currency, u.Currency)
	p.Status = take(p.Status, u.Status)
	p.PlacedAt = take(p.PlacedAt, u.PlacedAt)
	return out
}

// Follower is a newsletter subscriber.
type Follower struct {
	ID         string             `json:"id"`
	Attributes FollowerAttributes `json:"attributes"`
}

type FollowerAttributes struct {
	Name         *string `json:"name,omitempty"`
	Email        *string `json:"email,omitempty"`
	Source       *string `json:"source,omitempty"`
	SubscribedAt *string `json:"subscribedAt,omitempty"`
}

func (f Follower) EntityID() string { return f.ID }

func (f Follower) Merge(update Follower) Follower {
	out := f
	if update.ID != "" {
		out.ID = update.ID
	}
	p, u := &out.Attributes, update.Attributes
	p.Name = take(p.Name, u.Name)
	p.Email = take(p.Email, u.Email)
	p.Source = take(p.Source, u.Source)
	p.SubscribedAt = take(p.SubscribedAt, u.SubscribedAt)
	return out
}

// Event is a donation drive or institute event.
type Event struct {
	ID         string          `json:"id"`
	Attributes EventAttributes `json:"attributes"`
}

type EventAttributes struct {
	Title       *string `json:"title,omitempty"`
	Venue       *string `json:"venue,omitempty"`
	StartsAt    *string `json:"startsAt,omitempty"`
	EndsAt      *string `json:"endsAt,omitempty"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty"`
	BannerURL   *string `json:"bannerUrl,omitempty"`
	OrganizerID *string `json:"organizerId,omitempty"`
}

func (e Event) EntityID() string { return e.ID }

func (e Event) Merge(update Event) Event {
	out := e
	if update.ID != "" {
		out.ID = update.ID
	}
	p, u := &out.Attributes, update.Attributes
	p.Title = take(p.Title, u.Title)
	p.Venue = take(p.Venue, u.Venue)
	p.StartsAt = take(p.StartsAt, u.StartsAt)
	p.EndsAt = take(p.EndsAt, u.EndsAt)
	p.Description = take(p.Description, u.Description)
	p.Status = take(p.Status, u.Status)
	p.BannerURL = take(p.BannerURL, u.BannerURL)
	p.OrganizerID = take(p.OrganizerID, u.OrganizerID)
	return out
}
