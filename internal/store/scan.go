package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// columns qualifies each column name with alias ("c.id, c.name, ...").
// An empty alias returns the bare list.
func columns(alias string, names []string) string {
	if alias == "" {
		return strings.Join(names, ", ")
	}
	qualified := make([]string, len(names))
	for i, n := range names {
		qualified[i] = alias + "." + n
	}
	return strings.Join(qualified, ", ")
}

var casinoColumns = []string{
	"id", "name", "website_url", "established", "license", "owner",
	"payout_speed_minutes", "payout_ratio", "theme_color", "logo_url",
	"thumbnail_url", "bonus_offer", "bonus_spins",
}

var slotColumns = []string{
	"slug", "title", "provider_id", "rtp", "volatility", "max_win", "paylines",
	"release_date", "description", "image_url", "featured", "min_bet",
	"max_bet", "layout", "features",
}

var providerColumns = []string{"id", "name", "logo_url"}

var paymentMethodColumns = []string{
	"id", "name", "logo_url", "description", "type", "avg_speed", "fees",
	"min_deposit", "max_withdrawal", "pros", "cons",
}

// The scan functions below are the only place raw rows become entities.
// Each takes optional leading destinations for joined columns that precede
// the entity columns in the SELECT list.

func scanCasino(sc rowScanner, extra ...any) (Casino, error) {
	var c Casino
	dest := append(extra,
		&c.ID, &c.Name, &c.WebsiteURL, &c.Established, &c.License, &c.Owner,
		&c.PayoutSpeedMinutes, &c.PayoutRatio, &c.ThemeColor, &c.LogoURL,
		&c.ThumbnailURL, &c.BonusOffer, &c.BonusSpins,
	)
	if err := sc.Scan(dest...); err != nil {
		return Casino{}, err
	}
	return c, nil
}

func scanSlot(sc rowScanner, extra ...any) (Slot, error) {
	var sl Slot
	var features *string
	dest := append(extra,
		&sl.Slug, &sl.Title, &sl.ProviderID, &sl.RTP, &sl.Volatility, &sl.MaxWin,
		&sl.Paylines, &sl.ReleaseDate, &sl.Description, &sl.ImageURL,
		&sl.Featured, &sl.MinBet, &sl.MaxBet, &sl.Layout, &features,
	)
	if err := sc.Scan(dest...); err != nil {
		return Slot{}, err
	}
	sl.Features = unmarshalList(features)
	return sl, nil
}

func scanProvider(sc rowScanner, extra ...any) (SoftwareProvider, error) {
	var p SoftwareProvider
	dest := append(extra, &p.ID, &p.Name, &p.LogoURL)
	if err := sc.Scan(dest...); err != nil {
		return SoftwareProvider{}, err
	}
	return p, nil
}

func scanPaymentMethod(sc rowScanner, extra ...any) (PaymentMethod, error) {
	var pm PaymentMethod
	var pros, cons *string
	dest := append(extra,
		&pm.ID, &pm.Name, &pm.LogoURL, &pm.Description, &pm.Type, &pm.AvgSpeed,
		&pm.Fees, &pm.MinDeposit, &pm.MaxWithdrawal, &pros, &cons,
	)
	if err := sc.Scan(dest...); err != nil {
		return PaymentMethod{}, err
	}
	pm.MinDeposit = positiveOrNil(pm.MinDeposit)
	pm.Pros = unmarshalList(pros)
	pm.Cons = unmarshalList(cons)
	return pm, nil
}

// scanOne runs a single-row query. A missing row is (nil, nil).
func scanOne[T any](row *sql.Row, scan func(rowScanner, ...any) (T, error), what string) (*T, error) {
	v, err := scan(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", what, err)
	}
	return &v, nil
}

// collect drains rows through scan. The returned slice is never nil.
func collect[T any](rows *sql.Rows, scan func(rowScanner) (T, error), what string) ([]T, error) {
	defer rows.Close()
	out := []T{}
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", what, err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s rows: %w", what, err)
	}
	return out, nil
}

func scanCasinoRow(sc rowScanner) (Casino, error) { return scanCasino(sc) }

func scanSlotRow(sc rowScanner) (Slot, error) { return scanSlot(sc) }

func scanProviderRow(sc rowScanner) (SoftwareProvider, error) { return scanProvider(sc) }

func scanPaymentMethodRow(sc rowScanner) (PaymentMethod, error) { return scanPaymentMethod(sc) }
