package park

import "testing"

func TestDefaultRegistry(t *testing.T) {
	parks := DefaultRegistry()

	if len(parks) == 0 {
		t.Fatal("expected a non-empty registry")
	}

	if parks[0].ID != "joffre-lakes" {
		t.Errorf("expected joffre-lakes first, got %s", parks[0].ID)
	}

	for i := 1; i < len(parks); i++ {
		if parks[i-1].Priority > parks[i].Priority {
			t.Errorf("registry not sorted by priority at index %d: %d > %d",
				i, parks[i-1].Priority, parks[i].Priority)
		}
	}

	for _, p := range parks {
		if p.Slug == "" {
			t.Errorf("park %s has no slug", p.ID)
		}
		if len(p.Keywords) == 0 {
			t.Errorf("park %s has no keywords", p.ID)
		}
	}
}

func TestSortByPriority(t *testing.T) {
	parks := []Park{
		{ID: "c", Priority: 3},
		{ID: "a", Priority: 1},
		{ID: "b", Priority: 2},
	}

	sorted := SortByPriority(parks)

	want := []string{"a", "b", "c"}
	for i, id := range want {
		if sorted[i].ID != id {
			t.Errorf("position %d: expected %s, got %s", i, id, sorted[i].ID)
		}
	}

	// Input must not be mutated
	if parks[0].ID != "c" {
		t.Error("SortByPriority mutated its input")
	}
}

func TestSortByPriorityStable(t *testing.T) {
	parks := []Park{
		{ID: "first", Priority: 1},
		{ID: "second", Priority: 1},
	}

	sorted := SortByPriority(parks)
	if sorted[0].ID != "first" || sorted[1].ID != "second" {
		t.Error("equal priorities should keep their original order")
	}
}
