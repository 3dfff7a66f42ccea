package catalog

import "testing"

func TestResolve(t *testing.T) {
	img, ok := Resolve("kitchen-modern-1")
	if !ok {
		t.Fatal("expected kitchen-modern-1 to resolve")
	}
	if img.URL == "" {
		t.Error("resolved image has empty URL")
	}

	if _, ok := Resolve("no-such-image"); ok {
		t.Error("expected unknown id to not resolve")
	}
}

func TestAllUniqueIDs(t *testing.T) {
	seen := map[string]bool{}
	for _, img := range All() {
		if seen[img.ID] {
			t.Errorf("duplicate catalog id %q", img.ID)
		}
		seen[img.ID] = true
	}
}
