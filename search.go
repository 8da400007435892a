package catalog

import (
	"github.com/jward/catalog/internal/store"
	"github.com/sirupsen/logrus"
)

// Search entry types.
const (
	SearchTypePage    = "Page"
	SearchTypeCasino  = "Casino"
	SearchTypeSlot    = "Slot"
	SearchTypeBanking = "Banking"
)

// staticRoutes are the site's fixed pages, listed first in the index.
var staticRoutes = []SearchEntry{
	{Title: "Home", Type: SearchTypePage, URL: "/"},
	{Title: "Casino Reviews", Type: SearchTypePage, URL: "/reviews"},
	{Title: "Free Slots", Type: SearchTypePage, URL: "/slots"},
	{Title: "Banking Methods", Type: SearchTypePage, URL: "/banking"},
	{Title: "Bonuses", Type: SearchTypePage, URL: "/bonuses"},
}

// searchSections maps each indexed entity kind to its entry type and URL
// section, in index order.
var searchSections = []struct {
	kind    store.EntryKind
	typ     string
	section string
}{
	{store.KindCasino, SearchTypeCasino, "/reviews/"},
	{store.KindSlot, SearchTypeSlot, "/slots/"},
	{store.KindPaymentMethod, SearchTypeBanking, "/banking/"},
}

// SearchIndex flattens the static routes and every casino, slot and payment
// method into one list. It reads only keys and names. A kind whose read
// fails contributes nothing; the index as a whole never fails.
func (q *QueryBuilder) SearchIndex() []SearchEntry {
	out := make([]SearchEntry, 0, len(staticRoutes))
	out = append(out, staticRoutes...)
	for _, sec := range searchSections {
		entries := failSoftList(q, "search_entries", logrus.Fields{"kind": sec.kind}, func() ([]store.Entry, error) {
			return q.store.CatalogEntries(sec.kind)
		})
		for _, e := range entries {
			out = append(out, SearchEntry{Title: e.Title, Type: sec.typ, URL: sec.section + e.Key})
		}
	}
	return out
}
