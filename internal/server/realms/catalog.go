// Package realms holds the fixed realm catalog and its lesson scripts.
// The catalog's ordinal sequence is the single source of truth for which
// realm unlocks next; nothing in this package is mutated after startup.
package realms

// Realm is one thematic stage in the user's journey.
type Realm struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Ordinal     int    `json:"ordinal"`
}

var catalog = []Realm{
	{ID: "fear", Name: "Fear", Description: "Face your deepest fears and transform them into strength.", Ordinal: 0},
	{ID: "doubt", Name: "Doubt", Description: "Question your limiting beliefs and discover your truth.", Ordinal: 1},
	{ID: "anxiety", Name: "Anxiety", Description: "Calm the storms within and find your center.", Ordinal: 2},
	{ID: "self-worth", Name: "Self-Worth", Description: "Discover your inherent value and embrace self-love.", Ordinal: 3},
	{ID: "forgiveness", Name: "Forgiveness", Description: "Release the past and step into healing light.", Ordinal: 4},
	{ID: "wisdom", Name: "Wisdom", Description: "Integrate your journey and become your wisest self.", Ordinal: 5},
}

var byID = func() map[string]Realm {
	m := make(map[string]Realm, len(catalog))
	for _, r := range catalog {
		m[r.ID] = r
	}
	return m
}()

// All returns the catalog in unlock order. The returned slice is a copy.
func All() []Realm {
	out := make([]Realm, len(catalog))
	copy(out, catalog)
	return out
}

// Count returns the number of realms in the catalog.
func Count() int {
	return len(catalog)
}

// IsValid reports whether id names a catalog realm.
func IsValid(id string) bool {
	_, ok := byID[id]
	return ok
}

// First returns the id of the catalog's first realm, the only one unlocked
// for a new account.
func First() string {
	return catalog[0].ID
}

// Successor returns the id of the realm that follows id in catalog order.
// ok is false for the last realm and for ids outside the catalog.
func Successor(id string) (string, bool) {
	r, found := byID[id]
	if !found || r.Ordinal+1 >= len(catalog) {
		return "", false
	}
	return catalog[r.Ordinal+1].ID, true
}
