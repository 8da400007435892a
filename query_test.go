package catalog

import (
	"path/filepath"
	"testing"

	"github.com/jward/catalog/internal/loader"
	"github.com/jward/catalog/internal/store"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestQueryBuilder returns a QueryBuilder over a store loaded with the
// default seed, plus a hook capturing everything it logs.
func newTestQueryBuilder(t *testing.T) (*QueryBuilder, *store.Store, *test.Hook) {
	t.Helper()
	s, err := store.NewStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, s.Migrate())
	t.Cleanup(func() { s.Close() })

	log, hook := test.NewNullLogger()
	seed, err := loader.DefaultSeed()
	require.NoError(t, err)
	_, err = loader.Load(s, seed, log)
	require.NoError(t, err)
	hook.Reset()

	return newQueryBuilder(s, log), s, hook
}

// newBrokenQueryBuilder returns a QueryBuilder over a database with no
// tables, so every query fails.
func newBrokenQueryBuilder(t *testing.T) (*QueryBuilder, *test.Hook) {
	t.Helper()
	s, err := store.NewStore(filepath.Join(t.TempDir(), "empty.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	log, hook := test.NewNullLogger()
	return newQueryBuilder(s, log), hook
}

func names[T any](items []T, name func(T) string) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = name(it)
	}
	return out
}

func paymentName(p PaymentMethod) string { return p.Name }

func providerName(p SoftwareProvider) string { return p.Name }

func casinoID(c Casino) string { return c.ID }

func relationsID(c CasinoWithRelations) string { return c.ID }

// =============================================================================
// Entity accessors
// =============================================================================

func TestCasinoByID(t *testing.T) {
	t.Parallel()
	q, _, hook := newTestQueryBuilder(t)

	c := q.CasinoByID("bitstarz")
	require.NotNil(t, c)
	assert.Equal(t, "BitStarz", c.Name)

	assert.Nil(t, q.CasinoByID("missing"))
	assert.Empty(t, hook.AllEntries(), "not-found is not an error")
}

func TestTopCasinos_TwoHighest(t *testing.T) {
	t.Parallel()
	q, _, _ := newTestQueryBuilder(t)

	top := q.TopCasinos(2)
	assert.Equal(t, []string{"bitstarz", "woo"}, names(top, casinoID))
}

func TestTopCasinos_DefaultLimit(t *testing.T) {
	t.Parallel()
	q, _, _ := newTestQueryBuilder(t)
	assert.Len(t, q.TopCasinos(0), 4)
}

func TestSoftwareProvidersWithCounts(t *testing.T) {
	t.Parallel()
	q, _, _ := newTestQueryBuilder(t)

	counts := q.SoftwareProvidersWithCounts()
	require.Len(t, counts, 5)
	assert.Equal(t, "netent", counts[0].ID)
	assert.Equal(t, 2, counts[0].GameCount)
	assert.Equal(t, "swintt", counts[1].ID)
	assert.Equal(t, 1, counts[1].GameCount)
	for _, pc := range counts[2:] {
		assert.Zero(t, pc.GameCount, pc.ID)
	}
}

func TestAccessors_Idempotent(t *testing.T) {
	t.Parallel()
	q, _, _ := newTestQueryBuilder(t)

	assert.Equal(t, q.AllCasinos(), q.AllCasinos())
	assert.Equal(t, q.AllSlots(), q.AllSlots())
	assert.Equal(t, q.CasinoPaymentMethods("spin"), q.CasinoPaymentMethods("spin"))
	assert.Equal(t,
		q.PaymentMethodsForCasinos([]string{"bitstarz", "woo"}),
		q.PaymentMethodsForCasinos([]string{"bitstarz", "woo"}),
	)
	assert.Equal(t, q.CasinoByID("woo"), q.CasinoByID("woo"))
}

func TestSlotQueries(t *testing.T) {
	t.Parallel()
	q, _, _ := newTestQueryBuilder(t)

	assert.Equal(t, []string{"ice-mania", "starburst"}, names(q.FeaturedSlots(0), func(s Slot) string { return s.Slug }))
	assert.Len(t, q.SlotsByProvider("netent"), 2)
	require.NotNil(t, q.SlotBySlug("starburst"))
	assert.Nil(t, q.SlotBySlug("nope"))
}

func TestCasinosByPaymentMethodAndProvider(t *testing.T) {
	t.Parallel()
	q, _, _ := newTestQueryBuilder(t)

	byVisa := q.CasinosByPaymentMethod("visa", 0)
	assert.Equal(t, []string{"BitStarz", "Spin Casino", "Woo Casino"},
		names(byVisa, func(c CasinoSummary) string { return c.Name }))

	byNetent := q.CasinosBySoftwareProvider("netent", 1)
	assert.Equal(t, []string{"bitstarz"}, names(byNetent, casinoID))
}

// =============================================================================
// Junctions and minimum deposit
// =============================================================================

func TestLowestDepositMethod(t *testing.T) {
	t.Parallel()
	q, _, _ := newTestQueryBuilder(t)

	dm := q.LowestDepositMethod("bitstarz")
	require.NotNil(t, dm)
	assert.Equal(t, "Bitcoin", dm.Name)
	assert.Equal(t, 10.0, dm.MinDeposit)

	assert.Nil(t, q.LowestDepositMethod("fastpay"))
}

func TestMinDeposit(t *testing.T) {
	t.Parallel()
	f := func(v float64) *float64 { return &v }

	assert.Equal(t, DefaultMinDeposit, MinDeposit(nil, DefaultMinDeposit))
	assert.Equal(t, 20.0, MinDeposit([]PaymentMethod{{MinDeposit: f(0)}, {MinDeposit: f(-3)}, {}}, 20))
	assert.Equal(t, 5.0, MinDeposit([]PaymentMethod{{MinDeposit: f(15)}, {MinDeposit: f(5)}, {MinDeposit: f(0)}}, 20))
}

func TestBatchForms_EmptyBatchNoQuery(t *testing.T) {
	t.Parallel()
	q, s, _ := newTestQueryBuilder(t)
	before := s.QueryCount()

	assert.Equal(t, []CasinoPayment{}, q.PaymentMethodsForCasinos(nil))
	assert.Equal(t, []CasinoSoftware{}, q.SoftwareProvidersForCasinos([]string{}))
	assert.Empty(t, q.ResolvePayments(nil))
	assert.Empty(t, q.ResolveSoftware(nil))
	assert.Equal(t, []CasinoWithRelations{}, q.CasinosWithRelations(nil))

	assert.Equal(t, before, s.QueryCount())
}

// =============================================================================
// Fail-soft
// =============================================================================

func TestFailSoft_EveryAccessorReturnsEmptyShape(t *testing.T) {
	t.Parallel()
	q, hook := newBrokenQueryBuilder(t)

	assert.Nil(t, q.CasinoByID("bitstarz"))
	assert.Nil(t, q.SlotBySlug("starburst"))
	assert.Nil(t, q.SoftwareProviderByID("netent"))
	assert.Nil(t, q.PaymentMethodByID("visa"))
	assert.Nil(t, q.LowestDepositMethod("bitstarz"))
	assert.Nil(t, q.SlotWithProvider("starburst"))

	assert.Equal(t, []Casino{}, q.AllCasinos())
	assert.Equal(t, []Casino{}, q.TopCasinos(3))
	assert.Equal(t, []CasinoSummary{}, q.CasinosByPaymentMethod("visa", 3))
	assert.Equal(t, []Casino{}, q.CasinosBySoftwareProvider("netent", 3))
	assert.Equal(t, []Slot{}, q.AllSlots())
	assert.Equal(t, []Slot{}, q.FeaturedSlots(3))
	assert.Equal(t, []Slot{}, q.SlotsByProvider("netent"))
	assert.Equal(t, []SoftwareProvider{}, q.AllSoftwareProviders())
	assert.Equal(t, []ProviderGameCount{}, q.SoftwareProvidersWithCounts())
	assert.Equal(t, []PaymentMethod{}, q.AllPaymentMethods())
	assert.Equal(t, []PaymentMethod{}, q.CasinoPaymentMethods("bitstarz"))
	assert.Equal(t, []CasinoPayment{}, q.PaymentMethodsForCasinos([]string{"bitstarz"}))
	assert.Equal(t, []SoftwareProvider{}, q.CasinoSoftwareProviders("bitstarz"))
	assert.Equal(t, []CasinoSoftware{}, q.SoftwareProvidersForCasinos([]string{"bitstarz"}))

	assert.Nil(t, q.CasinoWithPayments("bitstarz"))
	assert.Nil(t, q.CasinoWithSoftware("bitstarz"))
	assert.Nil(t, q.CasinoWithRelations("bitstarz"))
	assert.Equal(t, []CasinoWithRelations{}, q.CasinosWithRelations([]string{"bitstarz"}))

	entries := hook.AllEntries()
	require.NotEmpty(t, entries)
	for _, e := range entries {
		assert.Equal(t, logrus.ErrorLevel, e.Level)
		assert.Contains(t, e.Data, "op")
		assert.Contains(t, e.Data, logrus.ErrorKey)
	}
}

func TestFailSoft_LogsKeyContext(t *testing.T) {
	t.Parallel()
	q, hook := newBrokenQueryBuilder(t)

	q.CasinoPaymentMethods("bitstarz")
	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "casino_payment_methods", entry.Data["op"])
	assert.Equal(t, "bitstarz", entry.Data["casino_id"])
}
