package store

import "fmt"

var (
	slotCols  = columns("", slotColumns)
	slotColsS = columns("s", slotColumns)
)

func (s *Store) SlotBySlug(slug string) (*Slot, error) {
	row := s.queryRow("SELECT "+slotCols+" FROM slots WHERE slug = ?", slug)
	return scanOne(row, scanSlot, "slot by slug")
}

// AllSlots returns every slot ordered by title.
func (s *Store) AllSlots() ([]Slot, error) {
	rows, err := s.query("SELECT " + slotCols + " FROM slots ORDER BY title ASC, slug ASC")
	if err != nil {
		return nil, fmt.Errorf("all slots: %w", err)
	}
	return collect(rows, scanSlotRow, "slot")
}

func (s *Store) FeaturedSlots(limit int) ([]Slot, error) {
	rows, err := s.query(
		"SELECT "+slotCols+" FROM slots WHERE featured = 1 ORDER BY title ASC, slug ASC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("featured slots: %w", err)
	}
	return collect(rows, scanSlotRow, "slot")
}

func (s *Store) SlotsByProvider(providerID string) ([]Slot, error) {
	rows, err := s.query(
		"SELECT "+slotCols+" FROM slots WHERE provider_id = ? ORDER BY title ASC, slug ASC",
		providerID,
	)
	if err != nil {
		return nil, fmt.Errorf("slots by provider: %w", err)
	}
	return collect(rows, scanSlotRow, "slot")
}

// SlotWithProvider returns a slot with its provider's name and logo. Slots
// without a provider still match, with nil provider fields.
func (s *Store) SlotWithProvider(slug string) (*SlotProvider, error) {
	row := s.queryRow(
		`SELECT sp.name, sp.logo_url, `+slotColsS+`
		 FROM slots s
		 LEFT JOIN software_providers sp ON s.provider_id = sp.id
		 WHERE s.slug = ?`,
		slug,
	)
	return scanOne(row, func(sc rowScanner, _ ...any) (SlotProvider, error) {
		var sp SlotProvider
		slot, err := scanSlot(sc, &sp.ProviderName, &sp.ProviderLogoURL)
		if err != nil {
			return SlotProvider{}, err
		}
		sp.Slot = slot
		return sp, nil
	}, "slot with provider")
}
