package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchIndex_StaticRoutesThenEntities(t *testing.T) {
	t.Parallel()
	q, _, _ := newTestQueryBuilder(t)

	idx := q.SearchIndex()
	require.Len(t, idx, 5+4+3+4)

	assert.Equal(t, SearchEntry{Title: "Home", Type: "Page", URL: "/"}, idx[0])
	assert.Equal(t, SearchEntry{Title: "Bonuses", Type: "Page", URL: "/bonuses"}, idx[4])
	assert.Equal(t, SearchEntry{Title: "BitStarz", Type: "Casino", URL: "/reviews/bitstarz"}, idx[5])
	assert.Equal(t, SearchEntry{Title: "Starburst", Type: "Slot", URL: "/slots/starburst"}, idx[9])
	assert.Equal(t, SearchEntry{Title: "Bitcoin", Type: "Banking", URL: "/banking/bitcoin"}, idx[12])

	counts := map[string]int{}
	for _, e := range idx {
		counts[e.Type]++
	}
	assert.Equal(t, map[string]int{"Page": 5, "Casino": 4, "Slot": 3, "Banking": 4}, counts)
}

func TestSearchIndex_FailedKindContributesNothing(t *testing.T) {
	t.Parallel()
	q, s, hook := newTestQueryBuilder(t)
	_, err := s.DB().Exec("DROP TABLE slots")
	require.NoError(t, err)

	idx := q.SearchIndex()
	for _, e := range idx {
		assert.NotEqual(t, SearchTypeSlot, e.Type)
	}
	assert.Len(t, idx, 5+4+4)

	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, "search_entries", hook.LastEntry().Data["op"])
}

func TestSearchIndex_BrokenStoreStillHasStaticRoutes(t *testing.T) {
	t.Parallel()
	q, _ := newBrokenQueryBuilder(t)

	idx := q.SearchIndex()
	assert.Equal(t, staticRoutes, idx)
}
