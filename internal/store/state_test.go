package store

import (
	"testing"

	"github.com/lifelinkhq/lifelink/internal/api"
	"github.com/lifelinkhq/lifelink/internal/model"
)

func donor(id, name string) model.Donor {
	return model.Donor{ID: id, Attributes: model.DonorAttributes{Name: model.S(name)}}
}

func TestReduce_ListLifecycle(t *testing.T) {
	t.Parallel()

	var s State[model.Donor]
	if s.List != ListIdle {
		t.Fatalf("initial List = %v, want Idle", s.List)
	}

	s = Reduce(s, ListRequested[model.Donor]{Seq: 1})
	if s.List != ListLoading {
		t.Fatalf("List = %v, want Loading", s.List)
	}

	s = Reduce(s, ListResolved[model.Donor]{
		Seq:   1,
		Items: []model.Donor{donor("1", "Asha")},
		Meta:  api.PageMeta{Total: 1, Page: 1},
	})
	if s.List != ListReady {
		t.Fatalf("List = %v, want Ready", s.List)
	}
	if len(s.Items) != 1 || s.PageMeta.Total != 1 {
		t.Fatalf("items/meta = %v/%v, want 1 item total 1", s.Items, s.PageMeta)
	}
}

func TestReduce_FailureKeepsStaleItems(t *testing.T) {
	t.Parallel()

	var s State[model.Donor]
	s = Reduce(s, ListRequested[model.Donor]{Seq: 1})
	s = Reduce(s, ListResolved[model.Donor]{Seq: 1, Items: []model.Donor{donor("1", "Asha"), donor("2", "Rifat")}})

	before := s.Items
	s = Reduce(s, ListRequested[model.Donor]{Seq: 2})
	s = Reduce(s, ListRejected[model.Donor]{Seq: 2})

	if s.List != ListFailed {
		t.Fatalf("List = %v, want Failed", s.List)
	}
	if len(s.Items) != len(before) || s.Items[0].ID != "1" || s.Items[1].ID != "2" {
		t.Fatalf("items changed on failure: %v", s.Items)
	}
}

func TestReduce_StaleListResponseDiscarded(t *testing.T) {
	t.Parallel()

	var s State[model.Donor]
	s = Reduce(s, ListRequested[model.Donor]{Seq: 1})
	s = Reduce(s, ListRequested[model.Donor]{Seq: 2})

	// Newer request resolves first.
	s = Reduce(s, ListResolved[model.Donor]{Seq: 2, Items: []model.Donor{donor("9", "Fresh")}, Meta: api.PageMeta{Total: 1}})
	// Older request resolves late; it must not overwrite.
	s = Reduce(s, ListResolved[model.Donor]{Seq: 1, Items: []model.Donor{donor("1", "Stale")}, Meta: api.PageMeta{Total: 99}})

	if len(s.Items) != 1 || s.Items[0].ID != "9" {
		t.Fatalf("items = %v, want the seq-2 page", s.Items)
	}
	if s.PageMeta.Total != 1 {
		t.Fatalf("meta.Total = %d, want 1", s.PageMeta.Total)
	}

	// A stale rejection must not flip a Ready state to Failed either.
	s = Reduce(s, ListRejected[model.Donor]{Seq: 1})
	if s.List != ListReady {
		t.Fatalf("List = %v, want Ready after stale rejection", s.List)
	}
}

func TestReduce_DeleteIsIdempotent(t *testing.T) {
	t.Parallel()

	var s State[model.Donor]
	s = Reduce(s, ListResolved[model.Donor]{Items: []model.Donor{donor("1", "Asha"), donor("2", "Rifat"), donor("3", "Karim")}})

	s = Reduce(s, RecordDeleted[model.Donor]{ID: "2"})
	s = Reduce(s, RecordDeleted[model.Donor]{ID: "2"}) // double dispatch must be harmless

	if len(s.Items) != 2 {
		t.Fatalf("len(items) = %d, want 2", len(s.Items))
	}
	for _, item := range s.Items {
		if item.ID == "2" {
			t.Fatalf("deleted id still present: %v", s.Items)
		}
	}
}

func TestReduce_UpdateMergesAttributes(t *testing.T) {
	t.Parallel()

	var s State[model.Donor]
	s = Reduce(s, ListResolved[model.Donor]{Items: []model.Donor{
		{ID: "1", Attributes: model.DonorAttributes{Name: model.S("Asha"), BloodGroup: model.S("O+")}},
	}})

	s = Reduce(s, RecordUpdated[model.Donor]{Record: model.Donor{
		ID:         "1",
		Attributes: model.DonorAttributes{BloodGroup: model.S("A-")},
	}})

	got := s.Items[0].Attributes
	if model.Deref(got.Name) != "Asha" {
		t.Errorf("Name = %q, want Asha preserved", model.Deref(got.Name))
	}
	if model.Deref(got.BloodGroup) != "A-" {
		t.Errorf("BloodGroup = %q, want A- overwritten", model.Deref(got.BloodGroup))
	}
}

func TestReduce_UpdateMergesSelected(t *testing.T) {
	t.Parallel()

	var s State[model.Donor]
	s = Reduce(s, DetailResolved[model.Donor]{Record: model.Donor{
		ID:         "1",
		Attributes: model.DonorAttributes{Name: model.S("Asha"), District: model.S("Dhaka")},
	}})
	s = Reduce(s, RecordUpdated[model.Donor]{Record: model.Donor{
		ID:         "1",
		Attributes: model.DonorAttributes{District: model.S("Sylhet")},
	}})

	if s.Selected == nil {
		t.Fatalf("Selected = nil, want merged record")
	}
	if model.Deref(s.Selected.Attributes.Name) != "Asha" || model.Deref(s.Selected.Attributes.District) != "Sylhet" {
		t.Fatalf("Selected = %#v, want Name preserved and District overwritten", s.Selected.Attributes)
	}
}

func TestReduce_DeleteClearsMatchingSelected(t *testing.T) {
	t.Parallel()

	var s State[model.Donor]
	s = Reduce(s, DetailResolved[model.Donor]{Record: donor("7", "Asha")})
	s = Reduce(s, RecordDeleted[model.Donor]{ID: "7"})

	if s.Selected != nil {
		t.Fatalf("Selected = %#v, want nil after its deletion", s.Selected)
	}
}

func TestReduce_StatsAccumulate(t *testing.T) {
	t.Parallel()

	var s State[model.Donor]
	s = Reduce(s, StatLoaded[model.Donor]{Name: "O+", Count: 12})
	s = Reduce(s, StatLoaded[model.Donor]{Name: "A-", Count: 3})
	s = Reduce(s, StatLoaded[model.Donor]{Name: "O+", Count: 13})

	if s.Stats["O+"] != 13 || s.Stats["A-"] != 3 {
		t.Fatalf("Stats = %v, want O+:13 A-:3", s.Stats)
	}
}

func TestReduce_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	var s State[model.Donor]
	s = Reduce(s, ListResolved[model.Donor]{Items: []model.Donor{donor("1", "Asha")}})

	_ = Reduce(s, RecordDeleted[model.Donor]{ID: "1"})
	if len(s.Items) != 1 {
		t.Fatalf("input state mutated: %v", s.Items)
	}

	_ = Reduce(s, RecordUpdated[model.Donor]{Record: donor("1", "Changed")})
	if model.Deref(s.Items[0].Attributes.Name) != "Asha" {
		t.Fatalf("input items mutated: %v", s.Items[0].Attributes)
	}
}
