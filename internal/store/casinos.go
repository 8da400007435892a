package store

import "fmt"

var (
	casinoCols  = columns("", casinoColumns)
	casinoColsC = columns("c", casinoColumns)
)

func (s *Store) CasinoByID(id string) (*Casino, error) {
	row := s.queryRow("SELECT "+casinoCols+" FROM casinos WHERE id = ?", id)
	return scanOne(row, scanCasino, "casino by id")
}

// AllCasinos returns every casino ordered by name.
func (s *Store) AllCasinos() ([]Casino, error) {
	rows, err := s.query("SELECT " + casinoCols + " FROM casinos ORDER BY name ASC, id ASC")
	if err != nil {
		return nil, fmt.Errorf("all casinos: %w", err)
	}
	return collect(rows, scanCasinoRow, "casino")
}

// TopCasinos returns up to limit casinos by payout ratio, highest first.
// Ties keep load order; casinos without a ratio sort last.
func (s *Store) TopCasinos(limit int) ([]Casino, error) {
	rows, err := s.query(
		"SELECT "+casinoCols+" FROM casinos ORDER BY payout_ratio IS NULL, payout_ratio DESC, rowid ASC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("top casinos: %w", err)
	}
	return collect(rows, scanCasinoRow, "casino")
}

// CasinosByIDs fetches a batch of casinos in one query, ordered by name.
// Keys with no row are skipped.
func (s *Store) CasinosByIDs(ids []string) ([]Casino, error) {
	if len(ids) == 0 {
		return []Casino{}, nil
	}
	rows, err := s.query(
		"SELECT "+casinoCols+" FROM casinos WHERE id IN ("+placeholderList(len(ids))+") ORDER BY name ASC, id ASC",
		stringsToArgs(ids)...,
	)
	if err != nil {
		return nil, fmt.Errorf("casinos by ids: %w", err)
	}
	return collect(rows, scanCasinoRow, "casino")
}

// CasinosByPaymentMethod returns summaries of casinos accepting methodID.
func (s *Store) CasinosByPaymentMethod(methodID string, limit int) ([]CasinoSummary, error) {
	rows, err := s.query(
		`SELECT c.id, c.name, c.logo_url, c.bonus_offer, c.payout_speed_minutes
		 FROM casinos c
		 JOIN casino_payment_methods cpm ON c.id = cpm.casino_id
		 WHERE cpm.method_id = ?
		 ORDER BY c.name ASC, c.id ASC
		 LIMIT ?`,
		methodID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("casinos by payment method: %w", err)
	}
	return collect(rows, func(sc rowScanner) (CasinoSummary, error) {
		var cs CasinoSummary
		err := sc.Scan(&cs.ID, &cs.Name, &cs.LogoURL, &cs.BonusOffer, &cs.PayoutSpeedMinutes)
		return cs, err
	}, "casino summary")
}

// CasinosBySoftwareProvider returns casinos offering games from providerID.
func (s *Store) CasinosBySoftwareProvider(providerID string, limit int) ([]Casino, error) {
	rows, err := s.query(
		`SELECT `+casinoColsC+`
		 FROM casinos c
		 JOIN casino_software cs ON c.id = cs.casino_id
		 WHERE cs.provider_id = ?
		 ORDER BY c.name ASC, c.id ASC
		 LIMIT ?`,
		providerID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("casinos by software provider: %w", err)
	}
	return collect(rows, scanCasinoRow, "casino")
}
