package store

import (
	"github.com/lifelinkhq/lifelink/internal/api"
	"github.com/lifelinkhq/lifelink/internal/model"
)

// ListStatus tracks the list-fetch lifecycle.
type ListStatus int

const (
	ListIdle ListStatus = iota
	ListLoading
	ListReady
	ListFailed
)

// MutationStatus tracks create/update/delete/transition operations separately
// from listing, so a table can keep rendering while a modal submits.
type MutationStatus int

const (
	MutationIdle MutationStatus = iota
	MutationInFlight
	MutationSucceeded
	MutationFailed
)

// State is one entity's collection state: the current page, pagination
// metadata, at most one selected detail record, request statuses and named
// aggregate counters. It is pure data; only Reduce produces new States.
type State[T model.Entity[T]] struct {
	Items    []T
	PageMeta api.PageMeta
	Selected *T
	List     ListStatus
	Mutation MutationStatus
	Stats    map[string]int

	// latestSeq is the sequence number of the most recently issued list
	// request. Responses carrying an older number are discarded so a slow
	// early request can never overwrite a fresher page.
	latestSeq uint64
}

// Event is a state transition input for Reduce.
type Event[T model.Entity[T]] interface {
	event()
}

// ListRequested marks a list fetch as issued.
type ListRequested[T model.Entity[T]] struct{ Seq uint64 }

// ListResolved carries a successful page. Items and meta replace the prior
// page wholesale; stale sequence numbers are dropped.
type ListResolved[T model.Entity[T]] struct {
	Seq   uint64
	Items []T
	Meta  api.PageMeta
}

// ListRejected marks a list fetch as failed. Prior items stay visible.
type ListRejected[T model.Entity[T]] struct{ Seq uint64 }

// DetailResolved replaces the selected record.
type DetailResolved[T model.Entity[T]] struct{ Record T }

// SelectedCleared empties the selected record on navigation away.
type SelectedCleared[T model.Entity[T]] struct{}

// MutationStarted, MutationRejected and the record events below drive the
// mutation lifecycle.
type MutationStarted[T model.Entity[T]] struct{}

type MutationRejected[T model.Entity[T]] struct{}

// RecordCreated marks a create as succeeded. The new record is not inserted
// locally; the caller navigates to it or refetches the page.
type RecordCreated[T model.Entity[T]] struct{ Record T }

// RecordUpdated merges the server response into the matching item and into
// the selected record when it has the same identity.
type RecordUpdated[T model.Entity[T]] struct{ Record T }

// RecordDeleted removes every item with the given identity.
type RecordDeleted[T model.Entity[T]] struct{ ID string }

// StatLoaded records one named aggregate counter.
type StatLoaded[T model.Entity[T]] struct {
	Name  string
	Count int
}

func (ListRequested[T]) event()    {}
func (ListResolved[T]) event()     {}
func (ListRejected[T]) event()     {}
func (DetailResolved[T]) event()   {}
func (SelectedCleared[T]) event()  {}
func (MutationStarted[T]) event()  {}
func (MutationRejected[T]) event() {}
func (RecordCreated[T]) event()    {}
func (RecordUpdated[T]) event()    {}
func (RecordDeleted[T]) event()    {}
func (StatLoaded[T]) event()       {}

// Reduce applies one event to a state and returns the next state. It never
// mutates its input; slices and maps are copied before being changed.
func Reduce[T model.Entity[T]](s State[T], ev Event[T]) State[T] {
	switch ev := ev.(type) {
	case ListRequested[T]:
		if ev.Seq > s.latestSeq {
			s.latestSeq = ev.Seq
		}
		s.List = ListLoading
		return s

	case ListResolved[T]:
		if ev.Seq < s.latestSeq {
			return s
		}
		s.Items = cloneItems(ev.Items)
		s.PageMeta = ev.Meta
		s.List = ListReady
		return s

	case ListRejected[T]:
		if ev.Seq < s.latestSeq {
			return s
		}
		s.List = ListFailed
		return s

	case DetailResolved[T]:
		record := ev.Record
		s.Selected = &record
		return s

	case SelectedCleared[T]:
		s.Selected = nil
		return s

	case MutationStarted[T]:
		s.Mutation = MutationInFlight
		return s

	case MutationRejected[T]:
		s.Mutation = MutationFailed
		return s

	case RecordCreated[T]:
		s.Mutation = MutationSucceeded
		return s

	case RecordUpdated[T]:
		s.Mutation = MutationSucceeded
		id := ev.Record.EntityID()
		items := cloneItems(s.Items)
		for i, item := range items {
			if item.EntityID() == id {
				items[i] = item.Merge(ev.Record)
			}
		}
		s.Items = items
		if s.Selected != nil && (*s.Selected).EntityID() == id {
			merged := (*s.Selected).Merge(ev.Record)
			s.Selected = &merged
		}
		return s

	case RecordDeleted[T]:
		s.Mutation = MutationSucceeded
		kept := make([]T, 0, len(s.Items))
		for _, item := range s.Items {
			if item.EntityID() != ev.ID {
				kept = append(kept, item)
			}
		}
		s.Items = kept
		if s.Selected != nil && (*s.Selected).EntityID() == ev.ID {
			s.Selected = nil
		}
		return s

	case StatLoaded[T]:
		stats := make(map[string]int, len(s.Stats)+1)
		for k, v := range s.Stats {
			stats[k] = v
		}
		stats[ev.Name] = ev.Count
		s.Stats = stats
		return s
	}
	return s
}

func cloneItems[T any](items []T) []T {
	if len(items) == 0 {
		return nil
	}
	dup := make([]T, len(items))
	copy(dup, items)
	return dup
}
