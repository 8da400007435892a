package store

import (
	"database/sql"
	"fmt"
)

// CommitBatch inserts all buffered rows from a Batch within a single
// transaction. Nothing is visible to readers until the commit succeeds.
//
// Insert order respects FK dependencies:
//  1. Software providers
//  2. Casinos
//  3. Payment methods
//  4. Slots (depend on provider_id)
//  5. Casino software links (depend on casino_id, provider_id)
//  6. Casino payment links (depend on casino_id, method_id)
func (s *Store) CommitBatch(batch *Batch) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("commit batch: begin: %w", err)
	}
	defer tx.Rollback()

	// 1. Providers. Seeds may repeat a provider; the first row wins.
	for _, p := range batch.Providers {
		if _, err := tx.Exec(
			"INSERT OR IGNORE INTO software_providers (id, name, logo_url) VALUES (?, ?, ?)",
			p.ID, p.Name, p.LogoURL,
		); err != nil {
			return fmt.Errorf("commit batch: provider %q: %w", p.ID, err)
		}
	}

	// 2. Casinos
	for _, c := range batch.Casinos {
		if err := insertCasinoTx(tx, &c); err != nil {
			return fmt.Errorf("commit batch: casino %q: %w", c.ID, err)
		}
	}

	// 3. Payment methods
	for _, pm := range batch.PaymentMethods {
		if err := insertPaymentMethodTx(tx, &pm); err != nil {
			return fmt.Errorf("commit batch: payment method %q: %w", pm.ID, err)
		}
	}

	// 4. Slots
	for _, sl := range batch.Slots {
		if err := insertSlotTx(tx, &sl); err != nil {
			return fmt.Errorf("commit batch: slot %q: %w", sl.Slug, err)
		}
	}

	// 5. Software links
	for _, l := range batch.SoftwareLinks {
		if _, err := tx.Exec(
			"INSERT INTO casino_software (casino_id, provider_id) VALUES (?, ?)",
			l.CasinoID, l.ProviderID,
		); err != nil {
			return fmt.Errorf("commit batch: link %s -> provider %s: %w", l.CasinoID, l.ProviderID, err)
		}
	}

	// 6. Payment links
	for _, l := range batch.PaymentLinks {
		if _, err := tx.Exec(
			"INSERT INTO casino_payment_methods (casino_id, method_id) VALUES (?, ?)",
			l.CasinoID, l.MethodID,
		); err != nil {
			return fmt.Errorf("commit batch: link %s -> method %s: %w", l.CasinoID, l.MethodID, err)
		}
	}

	return tx.Commit()
}

func insertCasinoTx(tx *sql.Tx, c *Casino) error {
	_, err := tx.Exec(
		`INSERT INTO casinos (`+casinoCols+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.Name, c.WebsiteURL, c.Established, c.License, c.Owner,
		c.PayoutSpeedMinutes, c.PayoutRatio, c.ThemeColor, c.LogoURL,
		c.ThumbnailURL, c.BonusOffer, c.BonusSpins,
	)
	return err
}

func insertPaymentMethodTx(tx *sql.Tx, pm *PaymentMethod) error {
	_, err := tx.Exec(
		`INSERT INTO payment_methods (`+paymentMethodCols+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		pm.ID, pm.Name, pm.LogoURL, pm.Description, pm.Type, pm.AvgSpeed,
		pm.Fees, pm.MinDeposit, pm.MaxWithdrawal, marshalList(pm.Pros), marshalList(pm.Cons),
	)
	return err
}

func insertSlotTx(tx *sql.Tx, sl *Slot) error {
	_, err := tx.Exec(
		`INSERT INTO slots (`+slotCols+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		sl.Slug, sl.Title, sl.ProviderID, sl.RTP, sl.Volatility, sl.MaxWin,
		sl.Paylines, sl.ReleaseDate, sl.Description, sl.ImageURL, sl.Featured,
		sl.MinBet, sl.MaxBet, sl.Layout, marshalList(sl.Features),
	)
	return err
}
