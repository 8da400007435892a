package catalog

// groupByOwner partitions flat join rows by owner key in one pass. Every
// key in keys gets an entry, empty when it has no rows, and rows keep the
// order they arrived in. Rows whose owner is not in keys are dropped.
func groupByOwner[R, V any](keys []string, rows []R, owner func(R) string, value func(R) V) map[string][]V {
	groups := make(map[string][]V, len(keys))
	for _, k := range keys {
		if _, ok := groups[k]; !ok {
			groups[k] = []V{}
		}
	}
	for _, r := range rows {
		k := owner(r)
		g, ok := groups[k]
		if !ok {
			continue
		}
		groups[k] = append(g, value(r))
	}
	return groups
}

// groupFor returns key's group, treating a missing key as no relations.
func groupFor[V any](groups map[string][]V, key string) []V {
	if g, ok := groups[key]; ok {
		return g
	}
	return []V{}
}

// ResolvePayments fetches the payment methods of every casino in casinoIDs
// with a single query and groups them by casino. An empty batch touches
// nothing.
func (q *QueryBuilder) ResolvePayments(casinoIDs []string) map[string][]PaymentMethod {
	rows := q.PaymentMethodsForCasinos(casinoIDs)
	return groupByOwner(casinoIDs, rows,
		func(r CasinoPayment) string { return r.CasinoID },
		func(r CasinoPayment) PaymentMethod { return r.PaymentMethod },
	)
}

// ResolveSoftware is ResolvePayments for software providers.
func (q *QueryBuilder) ResolveSoftware(casinoIDs []string) map[string][]SoftwareProvider {
	rows := q.SoftwareProvidersForCasinos(casinoIDs)
	return groupByOwner(casinoIDs, rows,
		func(r CasinoSoftware) string { return r.CasinoID },
		func(r CasinoSoftware) SoftwareProvider { return r.SoftwareProvider },
	)
}
