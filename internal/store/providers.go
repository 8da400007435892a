package store

import "fmt"

var (
	providerCols   = columns("", providerColumns)
	providerColsSP = columns("sp", providerColumns)
)

func (s *Store) SoftwareProviderByID(id string) (*SoftwareProvider, error) {
	row := s.queryRow("SELECT "+providerCols+" FROM software_providers WHERE id = ?", id)
	return scanOne(row, scanProvider, "software provider by id")
}

// AllSoftwareProviders returns every provider ordered by name.
func (s *Store) AllSoftwareProviders() ([]SoftwareProvider, error) {
	rows, err := s.query("SELECT " + providerCols + " FROM software_providers ORDER BY name ASC, id ASC")
	if err != nil {
		return nil, fmt.Errorf("all software providers: %w", err)
	}
	return collect(rows, scanProviderRow, "software provider")
}

// SoftwareProvidersWithCounts returns every provider with the number of
// slots it backs, most games first. Providers with no slots count 0.
func (s *Store) SoftwareProvidersWithCounts() ([]ProviderGameCount, error) {
	rows, err := s.query(
		`SELECT COUNT(s.slug) AS game_count, ` + providerColsSP + `
		 FROM software_providers sp
		 LEFT JOIN slots s ON sp.id = s.provider_id
		 GROUP BY sp.id
		 ORDER BY game_count DESC, sp.name ASC, sp.id ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("software providers with counts: %w", err)
	}
	return collect(rows, func(sc rowScanner) (ProviderGameCount, error) {
		var pc ProviderGameCount
		p, err := scanProvider(sc, &pc.GameCount)
		if err != nil {
			return ProviderGameCount{}, err
		}
		pc.SoftwareProvider = p
		return pc, nil
	}, "provider game count")
}
