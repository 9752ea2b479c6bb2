package store

import (
	"reflect"
	"testing"

	"github.com/jonaen987-prog/Medusa-YT-Tools/internal/kvstore"
	"github.com/jonaen987-prog/Medusa-YT-Tools/internal/models"
)

func TestCreateProject(t *testing.T) {
	s := NewProjectStore(kvstore.NewMemory())

	p := s.Create("My Video", "Soldering basics")

	if p.ID == "" {
		t.Error("expected non-empty id")
	}
	if p.CreatedAt != p.UpdatedAt {
		t.Errorf("createdAt %q != updatedAt %q", p.CreatedAt, p.UpdatedAt)
	}
	if p.Assets == nil || len(p.Assets) != 0 {
		t.Errorf("assets must be an empty sequence, got %#v", p.Assets)
	}

	all := s.All()
	if len(all) != 1 || all[0].ID != p.ID {
		t.Fatalf("getProjects should include the new project first, got %#v", all)
	}
}

func TestCreateProjectIDsUnique(t *testing.T) {
	s := NewProjectStore(kvstore.NewMemory())

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		p := s.Create("T", "topic")
		if seen[p.ID] {
			t.Fatalf("duplicate id %q", p.ID)
		}
		seen[p.ID] = true
	}
}

func TestAllSortsByUpdatedAtDescending(t *testing.T) {
	s := NewProjectStore(kvstore.NewMemory())

	first := s.Create("First", "a")
	second := s.Create("Second", "b")

	// Touching the older project moves it to the front.
	p := s.ByID(first.ID)
	p.Title = "First (edited)"
	s.Update(*p)

	all := s.All()
	if len(all) != 2 {
		t.Fatalf("expected 2 projects, got %d", len(all))
	}
	if all[0].ID != first.ID {
		t.Errorf("most recently updated project must sort first, got %q", all[0].Title)
	}
	if all[1].ID != second.ID {
		t.Errorf("expected %q second", second.Title)
	}
}

func TestAllIdempotent(t *testing.T) {
	s := NewProjectStore(kvstore.NewMemory())
	s.Create("A", "a")
	s.Create("B", "b")

	if !reflect.DeepEqual(s.All(), s.All()) {
		t.Error("two reads with no intervening write must return equal sequences")
	}
}

func TestAllOnCorruptStorage(t *testing.T) {
	kv := kvstore.NewMemory()
	kv.Set("medusa-yt-tools-projects", `{broken`)

	s := NewProjectStore(kv)
	if got := s.All(); len(got) != 0 {
		t.Errorf("corrupt storage must yield empty, got %#v", got)
	}
}

func TestLatest(t *testing.T) {
	s := NewProjectStore(kvstore.NewMemory())
	s.Create("A", "a")
	s.Create("B", "b")
	s.Create("C", "c")

	if got := s.Latest(2); len(got) != 2 {
		t.Errorf("Latest(2): got %d projects", len(got))
	}
	if got := s.Latest(10); len(got) != 3 {
		t.Errorf("Latest(10): got %d projects", len(got))
	}
}

func TestUpdateUnknownIDIsNoop(t *testing.T) {
	s := NewProjectStore(kvstore.NewMemory())
	s.Create("A", "a")

	s.Update(models.Project{ID: "missing", Title: "ghost"})

	all := s.All()
	if len(all) != 1 || all[0].Title != "A" {
		t.Errorf("update of unknown id must not change storage, got %#v", all)
	}
}

func TestUpdateForcesUpdatedAt(t *testing.T) {
	s := NewProjectStore(kvstore.NewMemory())
	p := s.Create("A", "a")

	// A caller-supplied updatedAt is ignored and overwritten with now.
	p.UpdatedAt = "1999-01-01T00:00:00Z"
	s.Update(p)

	got := s.ByID(p.ID)
	if got.UpdatedAt == "1999-01-01T00:00:00Z" {
		t.Error("updatedAt must be forced to now on update")
	}
	if !parseTimestamp(got.UpdatedAt).After(parseTimestamp(p.CreatedAt)) {
		t.Errorf("updatedAt %q must advance past createdAt %q", got.UpdatedAt, p.CreatedAt)
	}
}

func TestDeleteProject(t *testing.T) {
	s := NewProjectStore(kvstore.NewMemory())
	a := s.Create("A", "a")
	b := s.Create("B", "b")

	s.Delete(a.ID)

	all := s.All()
	if len(all) != 1 || all[0].ID != b.ID {
		t.Errorf("expected only %q to remain, got %#v", b.ID, all)
	}

	// Deleting a non-existent id is a no-op.
	s.Delete("missing")
	if len(s.All()) != 1 {
		t.Error("delete of unknown id must be a no-op")
	}
}

func TestSaveAssetPrependsAndTouches(t *testing.T) {
	s := NewProjectStore(kvstore.NewMemory())
	p := s.Create("A", "a")
	before := s.ByID(p.ID).UpdatedAt

	s.SaveAsset(p.ID, NewAsset{Type: models.AssetTitles, Query: "q1", Payload: []string{"a", "b"}})
	s.SaveAsset(p.ID, NewAsset{Type: models.AssetHashtags, Query: "q2", Payload: []string{"#x"}})

	got := s.ByID(p.ID)
	if len(got.Assets) != 2 {
		t.Fatalf("expected 2 assets, got %d", len(got.Assets))
	}
	// Newest asset sits at the front.
	if got.Assets[0].Query != "q2" || got.Assets[1].Query != "q1" {
		t.Errorf("assets must be newest-first, got %q then %q", got.Assets[0].Query, got.Assets[1].Query)
	}
	if got.Assets[0].ID == got.Assets[1].ID {
		t.Error("asset ids must be unique")
	}
	if got.Assets[0].Timestamp == "" {
		t.Error("asset timestamp must be set")
	}
	if !parseTimestamp(got.UpdatedAt).After(parseTimestamp(before)) {
		t.Errorf("updatedAt must advance strictly: before %q, after %q", before, got.UpdatedAt)
	}

	// Payload round-trips through the tagged union.
	payload, err := models.DecodePayload(got.Assets[1].Type, got.Assets[1].Payload)
	if err != nil {
		t.Fatalf("DecodePayload: %v", err)
	}
	if list, ok := payload.([]string); !ok || len(list) != 2 || list[0] != "a" {
		t.Errorf("payload mismatch: %#v", payload)
	}
}

func TestSaveAssetUnknownProjectIsNoop(t *testing.T) {
	s := NewProjectStore(kvstore.NewMemory())
	s.Create("A", "a")

	s.SaveAsset("missing", NewAsset{Type: models.AssetTitles, Query: "q", Payload: []string{"a"}})

	all := s.All()
	if len(all) != 1 {
		t.Fatalf("no project may be created, got %d", len(all))
	}
	if len(all[0].Assets) != 0 {
		t.Error("no asset may be appended to another project")
	}
}
