// Package ghost defines the immutable ghost catalog and its evidence model.
package ghost

// Ghost describes one catalog entry: a ghost type, the three evidence
// kinds it can produce, and its special evidence behavior if any.
//
// Guaranteed, when set, names evidence the ghost always produces
// regardless of the contract's evidence limit; it must stay obtainable
// for the ghost to remain a candidate. Fake, when set, names evidence
// the ghost fabricates: it always appears, but does not count against
// the evidence limit.
type Ghost struct {
	Name       string
	Evidence   []Evidence
	Guaranteed Evidence
	Fake       Evidence
}

// Has reports whether the ghost can produce the given evidence.
func (g Ghost) Has(evidence Evidence) bool {
	for _, e := range g.Evidence {
		if e == evidence {
			return true
		}
	}
	return false
}

// catalog lists every ghost in journal order. The slice and its entries
// are read-only for the life of the process.
var catalog = []Ghost{
	{Name: "Spirit", Evidence: []Evidence{EvidenceEMF, EvidenceSpiritBox, EvidenceGhostWriting}},
	{Name: "Wraith", Evidence: []Evidence{EvidenceEMF, EvidenceSpiritBox, EvidenceDots}},
	{Name: "Phantom", Evidence: []Evidence{EvidenceSpiritBox, EvidenceUltraviolet, EvidenceDots}},
	{Name: "Poltergeist", Evidence: []Evidence{EvidenceSpiritBox, EvidenceUltraviolet, EvidenceGhostWriting}},
	{Name: "Banshee", Evidence: []Evidence{EvidenceUltraviolet, EvidenceGhostOrb, EvidenceDots}},
	{Name: "Jinn", Evidence: []Evidence{EvidenceEMF, EvidenceUltraviolet, EvidenceFreezing}},
	{Name: "Mare", Evidence: []Evidence{EvidenceSpiritBox, EvidenceGhostOrb, EvidenceGhostWriting}},
	{Name: "Revenant", Evidence: []Evidence{EvidenceGhostOrb, EvidenceGhostWriting, EvidenceFreezing}},
	{Name: "Shade", Evidence: []Evidence{EvidenceEMF, EvidenceGhostWriting, EvidenceFreezing}},
	{Name: "Demon", Evidence: []Evidence{EvidenceUltraviolet, EvidenceGhostWriting, EvidenceFreezing}},
	{Name: "Yurei", Evidence: []Evidence{EvidenceGhostOrb, EvidenceFreezing, EvidenceDots}},
	{Name: "Oni", Evidence: []Evidence{EvidenceEMF, EvidenceFreezing, EvidenceDots}},
	{Name: "Yokai", Evidence: []Evidence{EvidenceSpiritBox, EvidenceGhostOrb, EvidenceDots}},
	{Name: "Hantu", Evidence: []Evidence{EvidenceUltraviolet, EvidenceGhostOrb, EvidenceFreezing}, Guaranteed: EvidenceFreezing},
	{Name: "Goryo", Evidence: []Evidence{EvidenceEMF, EvidenceUltraviolet, EvidenceDots}, Guaranteed: EvidenceDots},
	{Name: "Myling", Evidence: []Evidence{EvidenceEMF, EvidenceSpiritBox, EvidenceGhostWriting}},
	{Name: "Onryo", Evidence: []Evidence{EvidenceSpiritBox, EvidenceGhostOrb, EvidenceFreezing}},
	{Name: "The Twins", Evidence: []Evidence{EvidenceEMF, EvidenceSpiritBox, EvidenceFreezing}},
	{Name: "Raiju", Evidence: []Evidence{EvidenceEMF, EvidenceGhostOrb, EvidenceDots}},
	{Name: "Obake", Evidence: []Evidence{EvidenceEMF, EvidenceUltraviolet, EvidenceGhostOrb}, Guaranteed: EvidenceUltraviolet},
	{Name: "The Mimic", Evidence: []Evidence{EvidenceSpiritBox, EvidenceUltraviolet, EvidenceFreezing}, Fake: EvidenceGhostOrb},
	{Name: "Moroi", Evidence: []Evidence{EvidenceSpiritBox, EvidenceGhostWriting, EvidenceFreezing}, Guaranteed: EvidenceSpiritBox},
	{Name: "Deogen", Evidence: []Evidence{EvidenceSpiritBox, EvidenceGhostWriting, EvidenceDots}, Guaranteed: EvidenceSpiritBox},
	{Name: "Thaye", Evidence: []Evidence{EvidenceGhostOrb, EvidenceGhostWriting, EvidenceDots}},
}

// Catalog returns every ghost in journal order. Callers must not mutate
// the returned entries.
func Catalog() []Ghost {
	return catalog
}
