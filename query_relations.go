package catalog

import "github.com/sirupsen/logrus"

// Junction accessors. The single-key forms read one casino's relations;
// the batch forms read a whole batch in one query and tag each row with its
// casino so the resolver can partition them. All are ordered by the related
// entity's name.

// CasinoPaymentMethods returns the payment methods a casino accepts.
func (q *QueryBuilder) CasinoPaymentMethods(casinoID string) []PaymentMethod {
	return failSoftList(q, "casino_payment_methods", logrus.Fields{"casino_id": casinoID}, func() ([]PaymentMethod, error) {
		return q.store.CasinoPaymentMethods(casinoID)
	})
}

// PaymentMethodsForCasinos returns the payment methods of every casino in
// the batch, tagged with their casino. An empty batch returns without a
// query.
func (q *QueryBuilder) PaymentMethodsForCasinos(casinoIDs []string) []CasinoPayment {
	if len(casinoIDs) == 0 {
		return []CasinoPayment{}
	}
	return failSoftList(q, "payment_methods_for_casinos", logrus.Fields{"batch_size": len(casinoIDs)}, func() ([]CasinoPayment, error) {
		return q.store.PaymentMethodsForCasinos(casinoIDs)
	})
}

// CasinoSoftwareProviders returns the software providers a casino carries.
func (q *QueryBuilder) CasinoSoftwareProviders(casinoID string) []SoftwareProvider {
	return failSoftList(q, "casino_software_providers", logrus.Fields{"casino_id": casinoID}, func() ([]SoftwareProvider, error) {
		return q.store.CasinoSoftwareProviders(casinoID)
	})
}

// SoftwareProvidersForCasinos is the batch form of CasinoSoftwareProviders.
func (q *QueryBuilder) SoftwareProvidersForCasinos(casinoIDs []string) []CasinoSoftware {
	if len(casinoIDs) == 0 {
		return []CasinoSoftware{}
	}
	return failSoftList(q, "software_providers_for_casinos", logrus.Fields{"batch_size": len(casinoIDs)}, func() ([]CasinoSoftware, error) {
		return q.store.SoftwareProvidersForCasinos(casinoIDs)
	})
}

// LowestDepositMethod returns the casino's cheapest way to deposit, or nil
// when none of its methods has a positive minimum deposit.
func (q *QueryBuilder) LowestDepositMethod(casinoID string) *DepositMethod {
	return failSoftOne(q, "lowest_deposit_method", logrus.Fields{"casino_id": casinoID}, func() (*DepositMethod, error) {
		return q.store.LowestDepositMethod(casinoID)
	})
}

// DefaultMinDeposit is what MinDeposit reports when no method has a
// positive minimum deposit.
const DefaultMinDeposit = 20.0

// MinDeposit returns the smallest positive minimum deposit among methods,
// or fallback when there is none.
func MinDeposit(methods []PaymentMethod, fallback float64) float64 {
	lowest := 0.0
	for _, m := range methods {
		if m.MinDeposit == nil || *m.MinDeposit <= 0 {
			continue
		}
		if lowest == 0 || *m.MinDeposit < lowest {
			lowest = *m.MinDeposit
		}
	}
	if lowest == 0 {
		return fallback
	}
	return lowest
}
