// Package catalog is the read side of a casino content site's catalog:
// casinos, slots, software providers and payment methods stored in SQLite,
// joined on demand to render pages and the site search index.
//
// # Lifecycle
//
// The database is written once by the offline loader (internal/loader, or
// `catalog seed`) and is read-only afterwards. A process opens one Catalog
// at startup and shares it:
//
//	c, err := catalog.New("catalog.db", catalog.WithLogger(log))
//	if err != nil { ... }
//	defer c.Close()
//
//	q := c.Query()
//	casino := q.CasinoWithRelations("bitstarz")
//
// # Fail-soft reads
//
// Every [QueryBuilder] method absorbs storage faults. A failed lookup is
// logged with the operation and key, then returns nil (single entities) or
// an empty slice (lists). Not-found is the same nil, so callers branch on
// presence, never on errors. A broken query degrades one section of a page
// instead of the whole page.
//
// # Enrichment
//
// Composite views attach many-to-many relations to a casino:
//
//   - [QueryBuilder.CasinoWithPayments], [QueryBuilder.CasinoWithSoftware]
//     and [QueryBuilder.CasinoWithRelations] enrich one casino, one query per
//     relation.
//   - [QueryBuilder.CasinosWithRelations] enriches a batch in a constant
//     number of queries: the casinos, then one batch join per relation kind,
//     partitioned in memory by casino id. Use it for listing pages.
//
// Relation lists are never nil and are ordered by the related entity's name.
//
// # Search
//
// [QueryBuilder.SearchIndex] returns the static routes followed by one entry
// per casino, slot and payment method, with URLs under /reviews, /slots and
// /banking.
package catalog
