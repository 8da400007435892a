package store

import "fmt"

// CatalogEntries returns the key and display name of every row of kind, in
// load order. It backs the search index and never touches relations.
func (s *Store) CatalogEntries(kind EntryKind) ([]Entry, error) {
	var q string
	switch kind {
	case KindCasino:
		q = "SELECT id, name FROM casinos ORDER BY rowid"
	case KindSlot:
		q = "SELECT slug, title FROM slots ORDER BY rowid"
	case KindPaymentMethod:
		q = "SELECT id, name FROM payment_methods ORDER BY rowid"
	default:
		return nil, fmt.Errorf("catalog entries: unknown kind %q", kind)
	}
	rows, err := s.query(q)
	if err != nil {
		return nil, fmt.Errorf("catalog entries %s: %w", kind, err)
	}
	return collect(rows, func(sc rowScanner) (Entry, error) {
		var e Entry
		err := sc.Scan(&e.Key, &e.Title)
		return e, err
	}, "entry")
}
