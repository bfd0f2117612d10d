package ghost

import "testing"

func TestCatalogShape(t *testing.T) {
	entries := Catalog()
	if len(entries) != 24 {
		t.Fatalf("expected 24 ghosts, got %d", len(entries))
	}

	seen := make(map[string]struct{}, len(entries))
	for _, g := range entries {
		if g.Name == "" {
			t.Fatal("expected every ghost to have a name")
		}
		if _, dup := seen[g.Name]; dup {
			t.Fatalf("duplicate ghost name %q", g.Name)
		}
		seen[g.Name] = struct{}{}

		if len(g.Evidence) != 3 {
			t.Fatalf("%s: expected 3 evidence kinds, got %d", g.Name, len(g.Evidence))
		}
		for _, e := range g.Evidence {
			if e == EvidenceUnspecified {
				t.Fatalf("%s: unspecified evidence in catalog entry", g.Name)
			}
		}
	}
}

func TestCatalogGuaranteedEvidenceBelongsToGhost(t *testing.T) {
	for _, g := range Catalog() {
		if g.Guaranteed == EvidenceUnspecified {
			continue
		}
		if !g.Has(g.Guaranteed) {
			t.Fatalf("%s: guaranteed evidence %s is not in its evidence set", g.Name, g.Guaranteed.Label())
		}
	}
}

func TestCatalogFakeEvidenceIsOutsideEvidenceSet(t *testing.T) {
	for _, g := range Catalog() {
		if g.Fake == EvidenceUnspecified {
			continue
		}
		if g.Has(g.Fake) {
			t.Fatalf("%s: fake evidence %s duplicates a real evidence kind", g.Name, g.Fake.Label())
		}
	}
}

func TestGhostHas(t *testing.T) {
	spirit := Catalog()[0]
	if !spirit.Has(EvidenceEMF) {
		t.Fatal("expected Spirit to produce EMF Level 5")
	}
	if spirit.Has(EvidenceFreezing) {
		t.Fatal("expected Spirit not to produce Freezing Temperatures")
	}
}

func TestEvidenceKeyRoundTrip(t *testing.T) {
	for _, e := range AllEvidence() {
		if got := EvidenceFromKey(e.Key()); got != e {
			t.Fatalf("expected %v from key %q, got %v", e, e.Key(), got)
		}
	}
	if got := EvidenceFromKey("ectoplasm"); got != EvidenceUnspecified {
		t.Fatalf("expected unspecified for unknown key, got %v", got)
	}
	if got := EvidenceFromKey("  FREEZING "); got != EvidenceFreezing {
		t.Fatalf("expected key lookup to trim and lowercase, got %v", got)
	}
}

func TestEvidenceLabels(t *testing.T) {
	for _, e := range AllEvidence() {
		if e.Label() == "UNSPECIFIED" {
			t.Fatalf("expected label for %v", e)
		}
	}
	if EvidenceUnspecified.Label() != "UNSPECIFIED" {
		t.Fatal("expected UNSPECIFIED label for zero evidence")
	}
}
