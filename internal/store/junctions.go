package store

import "fmt"

// Junction reads. Related rows are always ordered by their own display
// name, then key, in both the single-key and batch forms, so a batch of one
// returns exactly what the single-key form returns.

// CasinoPaymentMethods returns the payment methods linked to one casino.
func (s *Store) CasinoPaymentMethods(casinoID string) ([]PaymentMethod, error) {
	rows, err := s.query(
		`SELECT `+paymentMethodColsPM+`
		 FROM payment_methods pm
		 JOIN casino_payment_methods cpm ON pm.id = cpm.method_id
		 WHERE cpm.casino_id = ?
		 ORDER BY pm.name ASC, pm.id ASC`,
		casinoID,
	)
	if err != nil {
		return nil, fmt.Errorf("casino payment methods: %w", err)
	}
	return collect(rows, scanPaymentMethodRow, "payment method")
}

// PaymentMethodsForCasinos returns the payment methods of every casino in
// casinoIDs in one query, each row tagged with its casino. An empty batch
// issues no query.
func (s *Store) PaymentMethodsForCasinos(casinoIDs []string) ([]CasinoPayment, error) {
	if len(casinoIDs) == 0 {
		return []CasinoPayment{}, nil
	}
	rows, err := s.query(
		`SELECT cpm.casino_id, `+paymentMethodColsPM+`
		 FROM casino_payment_methods cpm
		 JOIN payment_methods pm ON cpm.method_id = pm.id
		 WHERE cpm.casino_id IN (`+placeholderList(len(casinoIDs))+`)
		 ORDER BY pm.name ASC, pm.id ASC, cpm.casino_id ASC`,
		stringsToArgs(casinoIDs)...,
	)
	if err != nil {
		return nil, fmt.Errorf("payment methods for casinos: %w", err)
	}
	return collect(rows, func(sc rowScanner) (CasinoPayment, error) {
		var cp CasinoPayment
		pm, err := scanPaymentMethod(sc, &cp.CasinoID)
		if err != nil {
			return CasinoPayment{}, err
		}
		cp.PaymentMethod = pm
		return cp, nil
	}, "casino payment")
}

// CasinoSoftwareProviders returns the software providers linked to one casino.
func (s *Store) CasinoSoftwareProviders(casinoID string) ([]SoftwareProvider, error) {
	rows, err := s.query(
		`SELECT `+providerColsSP+`
		 FROM software_providers sp
		 JOIN casino_software cs ON sp.id = cs.provider_id
		 WHERE cs.casino_id = ?
		 ORDER BY sp.name ASC, sp.id ASC`,
		casinoID,
	)
	if err != nil {
		return nil, fmt.Errorf("casino software providers: %w", err)
	}
	return collect(rows, scanProviderRow, "software provider")
}

// SoftwareProvidersForCasinos is the batch form of CasinoSoftwareProviders.
func (s *Store) SoftwareProvidersForCasinos(casinoIDs []string) ([]CasinoSoftware, error) {
	if len(casinoIDs) == 0 {
		return []CasinoSoftware{}, nil
	}
	rows, err := s.query(
		`SELECT cs.casino_id, `+providerColsSP+`
		 FROM casino_software cs
		 JOIN software_providers sp ON cs.provider_id = sp.id
		 WHERE cs.casino_id IN (`+placeholderList(len(casinoIDs))+`)
		 ORDER BY sp.name ASC, sp.id ASC, cs.casino_id ASC`,
		stringsToArgs(casinoIDs)...,
	)
	if err != nil {
		return nil, fmt.Errorf("software providers for casinos: %w", err)
	}
	return collect(rows, func(sc rowScanner) (CasinoSoftware, error) {
		var cs CasinoSoftware
		p, err := scanProvider(sc, &cs.CasinoID)
		if err != nil {
			return CasinoSoftware{}, err
		}
		cs.SoftwareProvider = p
		return cs, nil
	}, "casino software")
}
