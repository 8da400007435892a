package catalog

import (
	"github.com/jward/catalog/internal/store"
	"github.com/sirupsen/logrus"
)

// CasinoWithPayments returns the casino with its payment methods attached,
// or nil when the casino does not exist. A missing casino never triggers a
// relation query.
func (q *QueryBuilder) CasinoWithPayments(casinoID string) *CasinoWithPayments {
	c := q.CasinoByID(casinoID)
	if c == nil {
		return nil
	}
	return &CasinoWithPayments{
		Casino:   *c,
		Payments: q.CasinoPaymentMethods(casinoID),
	}
}

// CasinoWithSoftware returns the casino with its software providers
// attached, or nil when the casino does not exist.
func (q *QueryBuilder) CasinoWithSoftware(casinoID string) *CasinoWithSoftware {
	c := q.CasinoByID(casinoID)
	if c == nil {
		return nil
	}
	return &CasinoWithSoftware{
		Casino:   *c,
		Software: q.CasinoSoftwareProviders(casinoID),
	}
}

// CasinoWithRelations returns the casino with both relations attached. Each
// relation is read with its own query.
func (q *QueryBuilder) CasinoWithRelations(casinoID string) *CasinoWithRelations {
	c := q.CasinoByID(casinoID)
	if c == nil {
		return nil
	}
	return &CasinoWithRelations{
		Casino:   *c,
		Payments: q.CasinoPaymentMethods(casinoID),
		Software: q.CasinoSoftwareProviders(casinoID),
	}
}

// CasinosWithRelations enriches a batch of casinos in a fixed number of
// queries: one for the casinos, one per relation kind. Results are ordered by
// casino name; ids with no casino are skipped. Prefer this over calling
// CasinoWithRelations in a loop whenever more than one casino is rendered.
func (q *QueryBuilder) CasinosWithRelations(casinoIDs []string) []CasinoWithRelations {
	if len(casinoIDs) == 0 {
		return []CasinoWithRelations{}
	}
	casinos := failSoftList(q, "casinos_by_ids", logrus.Fields{"batch_size": len(casinoIDs)}, func() ([]Casino, error) {
		return q.store.CasinosByIDs(casinoIDs)
	})
	if len(casinos) == 0 {
		return []CasinoWithRelations{}
	}

	found := make([]string, len(casinos))
	for i, c := range casinos {
		found[i] = c.ID
	}
	payments := q.ResolvePayments(found)
	software := q.ResolveSoftware(found)

	out := make([]CasinoWithRelations, len(casinos))
	for i, c := range casinos {
		out[i] = CasinoWithRelations{
			Casino:   c,
			Payments: groupFor(payments, c.ID),
			Software: groupFor(software, c.ID),
		}
	}
	return out
}

// SlotWithProvider returns the slot with its provider attached, or nil when
// the slot does not exist. Slots without a provider have a nil Provider.
func (q *QueryBuilder) SlotWithProvider(slug string) *SlotWithProvider {
	row := failSoftOne(q, "slot_with_provider", logrus.Fields{"slug": slug}, func() (*store.SlotProvider, error) {
		return q.store.SlotWithProvider(slug)
	})
	if row == nil {
		return nil
	}
	out := &SlotWithProvider{Slot: row.Slot}
	if row.ProviderID != nil && row.ProviderName != nil {
		out.Provider = &SoftwareProvider{
			ID:      *row.ProviderID,
			Name:    *row.ProviderName,
			LogoURL: row.ProviderLogoURL,
		}
	}
	return out
}
