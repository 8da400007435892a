package store

import (
	"database/sql"
	"errors"
	"fmt"
)

var (
	paymentMethodCols   = columns("", paymentMethodColumns)
	paymentMethodColsPM = columns("pm", paymentMethodColumns)
)

func (s *Store) PaymentMethodByID(id string) (*PaymentMethod, error) {
	row := s.queryRow("SELECT "+paymentMethodCols+" FROM payment_methods WHERE id = ?", id)
	return scanOne(row, scanPaymentMethod, "payment method by id")
}

// AllPaymentMethods returns every payment method ordered by name.
func (s *Store) AllPaymentMethods() ([]PaymentMethod, error) {
	rows, err := s.query("SELECT " + paymentMethodCols + " FROM payment_methods ORDER BY name ASC, id ASC")
	if err != nil {
		return nil, fmt.Errorf("all payment methods: %w", err)
	}
	return collect(rows, scanPaymentMethodRow, "payment method")
}

// LowestDepositMethod returns the linked method with the smallest positive
// minimum deposit, or nil when no linked method has one.
func (s *Store) LowestDepositMethod(casinoID string) (*DepositMethod, error) {
	var dm DepositMethod
	err := s.queryRow(
		`SELECT pm.name, pm.min_deposit
		 FROM payment_methods pm
		 JOIN casino_payment_methods cpm ON pm.id = cpm.method_id
		 WHERE cpm.casino_id = ? AND pm.min_deposit > 0
		 ORDER BY pm.min_deposit ASC, pm.name ASC
		 LIMIT 1`,
		casinoID,
	).Scan(&dm.Name, &dm.MinDeposit)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("lowest deposit method: %w", err)
	}
	return &dm, nil
}
