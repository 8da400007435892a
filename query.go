package catalog

import (
	"github.com/jward/catalog/internal/store"
	"github.com/sirupsen/logrus"
)

// QueryBuilder is the read API over the catalog. Every method is fail-soft:
// storage faults are logged and come back as nil (single lookups) or an
// empty slice (multi-row reads), never as errors.
type QueryBuilder struct {
	store store.Reader
	log   logrus.FieldLogger
}

const (
	// DefaultCasinoLimit caps casino lists when the caller passes limit <= 0.
	DefaultCasinoLimit = 10
	// DefaultSlotsLimit caps slot lists when the caller passes limit <= 0.
	DefaultSlotsLimit = 10
)

func newQueryBuilder(r store.Reader, log logrus.FieldLogger) *QueryBuilder {
	return &QueryBuilder{store: r, log: log}
}

func limitOr(limit, fallback int) int {
	if limit <= 0 {
		return fallback
	}
	return limit
}

// --- Casinos ---

// CasinoByID returns the casino with the given id, or nil.
func (q *QueryBuilder) CasinoByID(id string) *Casino {
	return failSoftOne(q, "casino_by_id", logrus.Fields{"casino_id": id}, func() (*Casino, error) {
		return q.store.CasinoByID(id)
	})
}

// AllCasinos returns every casino ordered by name.
func (q *QueryBuilder) AllCasinos() []Casino {
	return failSoftList(q, "all_casinos", nil, q.store.AllCasinos)
}

// TopCasinos returns the limit casinos with the highest payout ratio. Ties
// keep load order.
func (q *QueryBuilder) TopCasinos(limit int) []Casino {
	limit = limitOr(limit, DefaultCasinoLimit)
	return failSoftList(q, "top_casinos", logrus.Fields{"limit": limit}, func() ([]Casino, error) {
		return q.store.TopCasinos(limit)
	})
}

// CasinosByPaymentMethod returns summaries of up to limit casinos that
// accept the payment method.
func (q *QueryBuilder) CasinosByPaymentMethod(methodID string, limit int) []CasinoSummary {
	limit = limitOr(limit, DefaultCasinoLimit)
	return failSoftList(q, "casinos_by_payment_method", logrus.Fields{"method_id": methodID, "limit": limit},
		func() ([]CasinoSummary, error) {
			return q.store.CasinosByPaymentMethod(methodID, limit)
		})
}

// CasinosBySoftwareProvider returns up to limit casinos carrying games from
// the provider.
func (q *QueryBuilder) CasinosBySoftwareProvider(providerID string, limit int) []Casino {
	limit = limitOr(limit, DefaultCasinoLimit)
	return failSoftList(q, "casinos_by_software_provider", logrus.Fields{"provider_id": providerID, "limit": limit},
		func() ([]Casino, error) {
			return q.store.CasinosBySoftwareProvider(providerID, limit)
		})
}

// --- Slots ---

func (q *QueryBuilder) SlotBySlug(slug string) *Slot {
	return failSoftOne(q, "slot_by_slug", logrus.Fields{"slug": slug}, func() (*Slot, error) {
		return q.store.SlotBySlug(slug)
	})
}

// AllSlots returns every slot ordered by title.
func (q *QueryBuilder) AllSlots() []Slot {
	return failSoftList(q, "all_slots", nil, q.store.AllSlots)
}

func (q *QueryBuilder) FeaturedSlots(limit int) []Slot {
	limit = limitOr(limit, DefaultSlotsLimit)
	return failSoftList(q, "featured_slots", logrus.Fields{"limit": limit}, func() ([]Slot, error) {
		return q.store.FeaturedSlots(limit)
	})
}

func (q *QueryBuilder) SlotsByProvider(providerID string) []Slot {
	return failSoftList(q, "slots_by_provider", logrus.Fields{"provider_id": providerID}, func() ([]Slot, error) {
		return q.store.SlotsByProvider(providerID)
	})
}

// --- Software providers ---

func (q *QueryBuilder) SoftwareProviderByID(id string) *SoftwareProvider {
	return failSoftOne(q, "software_provider_by_id", logrus.Fields{"provider_id": id}, func() (*SoftwareProvider, error) {
		return q.store.SoftwareProviderByID(id)
	})
}

// AllSoftwareProviders returns every provider ordered by name.
func (q *QueryBuilder) AllSoftwareProviders() []SoftwareProvider {
	return failSoftList(q, "all_software_providers", nil, q.store.AllSoftwareProviders)
}

// SoftwareProvidersWithCounts returns every provider with its slot count,
// most games first. Providers with no slots are included with count 0.
func (q *QueryBuilder) SoftwareProvidersWithCounts() []ProviderGameCount {
	return failSoftList(q, "software_providers_with_counts", nil, q.store.SoftwareProvidersWithCounts)
}

// --- Payment methods ---

func (q *QueryBuilder) PaymentMethodByID(id string) *PaymentMethod {
	return failSoftOne(q, "payment_method_by_id", logrus.Fields{"method_id": id}, func() (*PaymentMethod, error) {
		return q.store.PaymentMethodByID(id)
	})
}

// AllPaymentMethods returns every payment method ordered by name.
func (q *QueryBuilder) AllPaymentMethods() []PaymentMethod {
	return failSoftList(q, "all_payment_methods", nil, q.store.AllPaymentMethods)
}
